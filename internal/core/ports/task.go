package ports

import (
	"context"
	"time"

	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
)

type TaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
	// FindByID returns domain.ErrTaskNotFound when the id does not resolve.
	FindByID(ctx context.Context, id uint64) (*domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput, creatorID uint64) (domain.Task, error)
	Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, id uint64) error
	MarkDone(ctx context.Context, id uint64) (domain.Task, error)
	// ListCompleted returns tasks owned by userID with status TERMINE and
	// an end date at or before now.
	ListCompleted(ctx context.Context, userID uint64, now time.Time) ([]domain.Task, error)
	// ListOverdue returns tasks whose end date is strictly before now and
	// whose status is not TERMINE.
	ListOverdue(ctx context.Context, now time.Time) ([]domain.Task, error)
}

// TaskService orchestrates task mutations: capability check, store
// mutation, then audit record.
type TaskService interface {
	List(ctx context.Context) ([]domain.Task, error)
	Get(ctx context.Context, id, userID uint64) (domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput, userID uint64) (domain.Task, error)
	Update(ctx context.Context, id uint64, input domain.UpdateTaskInput, userID uint64) (domain.Task, error)
	Delete(ctx context.Context, id, userID uint64) error
	MarkComplete(ctx context.Context, id, userID uint64) (domain.Task, error)
	ListCompleted(ctx context.Context, userID uint64) ([]domain.Task, error)
	AssignPermission(ctx context.Context, tacheID, granteeID uint64, tier domain.PermissionTier, callerID uint64) (domain.Grant, error)
	ListPermissions(ctx context.Context, tacheID, callerID uint64) ([]domain.Grant, error)
	RemovePermission(ctx context.Context, tacheID, granteeID, callerID uint64) error
	History(ctx context.Context, tacheID, userID uint64) ([]domain.ActionEntry, error)
}
