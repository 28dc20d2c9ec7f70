package service

import (
	"context"
	"errors"

	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/ports"
)

// PermissionService answers capability checks for tasks. The creator
// passes every check; grantees pass according to their tier. A task
// that does not exist fails every check without raising.
type PermissionService struct {
	tasks  ports.TaskRepository
	grants ports.PermissionRepository
}

var _ ports.PermissionChecker = (*PermissionService)(nil)

func NewPermissionService(tasks ports.TaskRepository, grants ports.PermissionRepository) *PermissionService {
	return &PermissionService{tasks: tasks, grants: grants}
}

func (s *PermissionService) CanRead(ctx context.Context, tacheID, userID uint64) (bool, error) {
	return s.check(ctx, tacheID, userID, func(tier domain.PermissionTier) bool {
		// Any grant, whatever the tier, allows reading.
		return true
	})
}

func (s *PermissionService) CanModify(ctx context.Context, tacheID, userID uint64) (bool, error) {
	return s.check(ctx, tacheID, userID, domain.PermissionTier.AllowsModify)
}

func (s *PermissionService) CanDelete(ctx context.Context, tacheID, userID uint64) (bool, error) {
	return s.check(ctx, tacheID, userID, domain.PermissionTier.AllowsDelete)
}

func (s *PermissionService) check(ctx context.Context, tacheID, userID uint64, allows func(domain.PermissionTier) bool) (bool, error) {
	task, err := s.tasks.FindByID(ctx, tacheID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return false, nil
		}
		return false, err
	}

	if task.UserID == userID {
		return true, nil
	}

	grant, err := s.grants.Find(ctx, tacheID, userID)
	if err != nil {
		return false, err
	}
	if grant == nil {
		return false, nil
	}

	return allows(grant.Permission), nil
}
