package mapper

import (
	"time"

	"github.com/SNcodeur2001/projet-final-todo/internal/adapter/http/dto"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
)

func ToActionEntryItems(entries []domain.ActionEntry) []dto.ActionEntryItem {
	items := make([]dto.ActionEntryItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, ToActionEntryItem(entry))
	}
	return items
}

func ToActionEntryItem(entry domain.ActionEntry) dto.ActionEntryItem {
	return dto.ActionEntryItem{
		ID:        entry.ID,
		TacheID:   entry.TacheID,
		UserID:    entry.UserID,
		Action:    string(entry.Action),
		Timestamp: entry.Timestamp.Format(time.RFC3339Nano),
		User:      ToUserIdentityItem(entry.User),
		Tache: dto.HistoryTaskRef{
			ID:      entry.TacheID,
			Libelle: entry.TacheLibelle,
		},
	}
}
