package ports

import (
	"context"

	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
)

type PermissionRepository interface {
	// Upsert creates or overwrites the grant for the (task, user) pair.
	Upsert(ctx context.Context, tacheID, userID uint64, tier domain.PermissionTier) (domain.Grant, error)
	// Find returns (nil, nil) when no grant exists for the pair.
	Find(ctx context.Context, tacheID, userID uint64) (*domain.Grant, error)
	// ListByTask returns all grants with the grantee identity joined in.
	ListByTask(ctx context.Context, tacheID uint64) ([]domain.Grant, error)
	// Delete returns domain.ErrGrantNotFound when no grant existed.
	Delete(ctx context.Context, tacheID, userID uint64) error
}

// PermissionChecker decides whether a user may read, modify or delete a
// task. A missing task yields false, never an error.
type PermissionChecker interface {
	CanRead(ctx context.Context, tacheID, userID uint64) (bool, error)
	CanModify(ctx context.Context, tacheID, userID uint64) (bool, error)
	CanDelete(ctx context.Context, tacheID, userID uint64) (bool, error)
}
