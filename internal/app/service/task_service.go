package service

import (
	"context"
	"time"

	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/ports"
)

// TaskService orchestrates the task lifecycle. Every mutation runs the
// same pipeline: capability check, store mutation, audit record. Grant
// administration is reserved to the task's creator.
type TaskService struct {
	tasks       ports.TaskRepository
	grants      ports.PermissionRepository
	permissions ports.PermissionChecker
	recorder    ports.ActionRecorder
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(
	tasks ports.TaskRepository,
	grants ports.PermissionRepository,
	permissions ports.PermissionChecker,
	recorder ports.ActionRecorder,
) *TaskService {
	return &TaskService{
		tasks:       tasks,
		grants:      grants,
		permissions: permissions,
		recorder:    recorder,
	}
}

func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.List(ctx)
}

func (s *TaskService) Get(ctx context.Context, id, userID uint64) (domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	if err := s.recorder.Record(ctx, id, userID, domain.ActionRead); err != nil {
		return domain.Task{}, err
	}

	return *task, nil
}

func (s *TaskService) Create(ctx context.Context, input domain.CreateTaskInput, userID uint64) (domain.Task, error) {
	task, err := s.tasks.Create(ctx, input, userID)
	if err != nil {
		return domain.Task{}, err
	}

	if err := s.recorder.Record(ctx, task.ID, userID, domain.ActionModify); err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

func (s *TaskService) Update(ctx context.Context, id uint64, input domain.UpdateTaskInput, userID uint64) (domain.Task, error) {
	if err := s.requireModify(ctx, id, userID); err != nil {
		return domain.Task{}, err
	}

	task, err := s.tasks.Update(ctx, id, input)
	if err != nil {
		return domain.Task{}, err
	}

	if err := s.recorder.Record(ctx, id, userID, domain.ActionModify); err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id, userID uint64) error {
	allowed, err := s.permissions.CanDelete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !allowed {
		return domain.ErrForbidden
	}

	// Record before deleting: the audit trail is the system of record
	// for "this task existed and was deleted by X".
	if err := s.recorder.Record(ctx, id, userID, domain.ActionDelete); err != nil {
		return err
	}

	return s.tasks.Delete(ctx, id)
}

func (s *TaskService) MarkComplete(ctx context.Context, id, userID uint64) (domain.Task, error) {
	if err := s.requireModify(ctx, id, userID); err != nil {
		return domain.Task{}, err
	}

	task, err := s.tasks.MarkDone(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	if err := s.recorder.Record(ctx, id, userID, domain.ActionModify); err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

func (s *TaskService) ListCompleted(ctx context.Context, userID uint64) ([]domain.Task, error) {
	return s.tasks.ListCompleted(ctx, userID, time.Now())
}

func (s *TaskService) AssignPermission(ctx context.Context, tacheID, granteeID uint64, tier domain.PermissionTier, callerID uint64) (domain.Grant, error) {
	if err := s.requireCreator(ctx, tacheID, callerID); err != nil {
		return domain.Grant{}, err
	}

	grant, err := s.grants.Upsert(ctx, tacheID, granteeID, tier)
	if err != nil {
		return domain.Grant{}, err
	}

	if err := s.recorder.Record(ctx, tacheID, callerID, domain.ActionModify); err != nil {
		return domain.Grant{}, err
	}

	return grant, nil
}

func (s *TaskService) ListPermissions(ctx context.Context, tacheID, callerID uint64) ([]domain.Grant, error) {
	if err := s.requireCreator(ctx, tacheID, callerID); err != nil {
		return nil, err
	}

	return s.grants.ListByTask(ctx, tacheID)
}

func (s *TaskService) RemovePermission(ctx context.Context, tacheID, granteeID, callerID uint64) error {
	if err := s.requireCreator(ctx, tacheID, callerID); err != nil {
		return err
	}

	if err := s.grants.Delete(ctx, tacheID, granteeID); err != nil {
		return err
	}

	return s.recorder.Record(ctx, tacheID, callerID, domain.ActionModify)
}

func (s *TaskService) History(ctx context.Context, tacheID, userID uint64) ([]domain.ActionEntry, error) {
	allowed, err := s.permissions.CanRead(ctx, tacheID, userID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	return s.recorder.ByTask(ctx, tacheID)
}

func (s *TaskService) requireModify(ctx context.Context, tacheID, userID uint64) error {
	allowed, err := s.permissions.CanModify(ctx, tacheID, userID)
	if err != nil {
		return err
	}
	if !allowed {
		return domain.ErrForbidden
	}
	return nil
}

func (s *TaskService) requireCreator(ctx context.Context, tacheID, callerID uint64) error {
	task, err := s.tasks.FindByID(ctx, tacheID)
	if err != nil {
		return err
	}
	if task.UserID != callerID {
		return domain.ErrNotCreator
	}
	return nil
}
