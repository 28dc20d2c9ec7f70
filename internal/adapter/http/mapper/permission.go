package mapper

import (
	"github.com/SNcodeur2001/projet-final-todo/internal/adapter/http/dto"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
)

func ToGrantItems(grants []domain.Grant) []dto.GrantItem {
	items := make([]dto.GrantItem, 0, len(grants))
	for _, grant := range grants {
		items = append(items, ToGrantItem(grant))
	}
	return items
}

func ToGrantItem(grant domain.Grant) dto.GrantItem {
	item := dto.GrantItem{
		ID:         grant.ID,
		TacheID:    grant.TacheID,
		UserID:     grant.UserID,
		Permission: string(grant.Permission),
	}

	if grant.User != nil {
		identity := ToUserIdentityItem(*grant.User)
		item.User = &identity
	}

	return item
}
