package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/ports"
)

// HistoryRepository is the append-only action recorder. Rows are never
// updated or deleted.
type HistoryRepository struct {
	db *sqlx.DB
}

type historyRow struct {
	ID           uint64         `db:"id"`
	TacheID      uint64         `db:"tache_id"`
	UserID       uint64         `db:"user_id"`
	Action       string         `db:"action"`
	Timestamp    time.Time      `db:"timestamp"`
	UserNom      string         `db:"user_nom"`
	UserPrenom   string         `db:"user_prenom"`
	UserLogin    string         `db:"user_login"`
	TacheLibelle sql.NullString `db:"tache_libelle"`
}

var _ ports.ActionRecorder = (*HistoryRepository)(nil)

func NewHistoryRepository(db *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Record(ctx context.Context, tacheID, userID uint64, kind domain.ActionKind) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO action_history (tache_id, user_id, action) VALUES (?, ?, ?)",
		tacheID, userID, string(kind),
	)
	return err
}

// ByTask joins the acting user's identity and the task label at read
// time; the label is NULL once the task has been deleted.
func (r *HistoryRepository) ByTask(ctx context.Context, tacheID uint64) ([]domain.ActionEntry, error) {
	var rows []historyRow
	err := r.db.SelectContext(ctx, &rows, `
SELECT
  h.id, h.tache_id, h.user_id, h.action, h.timestamp,
  u.nom AS user_nom, u.prenom AS user_prenom, u.login AS user_login,
  t.libelle AS tache_libelle
FROM action_history h
JOIN users u ON u.id = h.user_id
LEFT JOIN taches t ON t.id = h.tache_id
WHERE h.tache_id = ?
ORDER BY h.timestamp DESC, h.id DESC`,
		tacheID,
	)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.ActionEntry, 0, len(rows))
	for _, row := range rows {
		entry := domain.ActionEntry{
			ID:        row.ID,
			TacheID:   row.TacheID,
			UserID:    row.UserID,
			Action:    domain.ActionKind(row.Action),
			Timestamp: row.Timestamp,
			User: domain.UserIdentity{
				ID:     row.UserID,
				Nom:    row.UserNom,
				Prenom: row.UserPrenom,
				Login:  row.UserLogin,
			},
		}
		if row.TacheLibelle.Valid {
			entry.TacheLibelle = row.TacheLibelle.String
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
