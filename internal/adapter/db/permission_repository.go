package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/ports"
)

const selectGrantWithUser = `
SELECT
  p.id, p.tache_id, p.user_id, p.permission,
  u.nom AS user_nom, u.prenom AS user_prenom, u.login AS user_login
FROM tache_permissions p
JOIN users u ON u.id = p.user_id
`

type PermissionRepository struct {
	db *sqlx.DB
}

type grantRow struct {
	ID         uint64 `db:"id"`
	TacheID    uint64 `db:"tache_id"`
	UserID     uint64 `db:"user_id"`
	Permission string `db:"permission"`
	UserNom    string `db:"user_nom"`
	UserPrenom string `db:"user_prenom"`
	UserLogin  string `db:"user_login"`
}

var _ ports.PermissionRepository = (*PermissionRepository)(nil)

func NewPermissionRepository(db *sqlx.DB) *PermissionRepository {
	return &PermissionRepository{db: db}
}

// Upsert relies on the unique (tache_id, user_id) key: a re-grant
// overwrites the tier instead of creating a second row.
func (r *PermissionRepository) Upsert(ctx context.Context, tacheID, userID uint64, tier domain.PermissionTier) (domain.Grant, error) {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO tache_permissions (tache_id, user_id, permission)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE permission = VALUES(permission)`,
		tacheID, userID, string(tier),
	)
	if err != nil {
		return domain.Grant{}, err
	}

	grant, err := r.Find(ctx, tacheID, userID)
	if err != nil {
		return domain.Grant{}, err
	}
	if grant == nil {
		return domain.Grant{}, domain.ErrGrantNotFound
	}
	return *grant, nil
}

func (r *PermissionRepository) Find(ctx context.Context, tacheID, userID uint64) (*domain.Grant, error) {
	var row grantRow
	err := r.db.GetContext(ctx, &row, selectGrantWithUser+"WHERE p.tache_id = ? AND p.user_id = ?", tacheID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	grant := mapGrantRow(row)
	return &grant, nil
}

func (r *PermissionRepository) ListByTask(ctx context.Context, tacheID uint64) ([]domain.Grant, error) {
	var rows []grantRow
	if err := r.db.SelectContext(ctx, &rows, selectGrantWithUser+"WHERE p.tache_id = ? ORDER BY p.id", tacheID); err != nil {
		return nil, err
	}

	grants := make([]domain.Grant, 0, len(rows))
	for _, row := range rows {
		grants = append(grants, mapGrantRow(row))
	}
	return grants, nil
}

func (r *PermissionRepository) Delete(ctx context.Context, tacheID, userID uint64) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM tache_permissions WHERE tache_id = ? AND user_id = ?", tacheID, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrGrantNotFound
	}
	return nil
}

func mapGrantRow(row grantRow) domain.Grant {
	return domain.Grant{
		ID:         row.ID,
		TacheID:    row.TacheID,
		UserID:     row.UserID,
		Permission: domain.PermissionTier(row.Permission),
		User: &domain.UserIdentity{
			ID:     row.UserID,
			Nom:    row.UserNom,
			Prenom: row.UserPrenom,
			Login:  row.UserLogin,
		},
	}
}
