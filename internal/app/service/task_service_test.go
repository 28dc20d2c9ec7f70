package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SNcodeur2001/projet-final-todo/internal/app/service"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
)

type taskFixture struct {
	tasks    *fakeTaskRepo
	grants   *fakeGrantRepo
	recorder *fakeRecorder
	service  *service.TaskService
}

func newTaskFixture() *taskFixture {
	tasks := newFakeTaskRepo()
	grants := newFakeGrantRepo()
	recorder := newFakeRecorder()
	checker := service.NewPermissionService(tasks, grants)
	return &taskFixture{
		tasks:    tasks,
		grants:   grants,
		recorder: recorder,
		service:  service.NewTaskService(tasks, grants, checker, recorder),
	}
}

func TestTaskService_CreateRecordsModify(t *testing.T) {
	f := newTaskFixture()

	task, err := f.service.Create(context.Background(), domain.CreateTaskInput{
		Libelle: "Écrire le compte-rendu",
		Status:  domain.TaskStatusPending,
	}, 5)
	require.NoError(t, err)
	require.Equal(t, uint64(5), task.UserID)

	require.Equal(t, []domain.ActionKind{domain.ActionModify}, f.recorder.byTaskKinds(task.ID))
}

func TestTaskService_GetRecordsRead(t *testing.T) {
	f := newTaskFixture()
	seeded := f.tasks.seed(domain.Task{Libelle: "Planifier le sprint", Status: domain.TaskStatusPending, UserID: 1})

	got, err := f.service.Get(context.Background(), seeded.ID, 1)
	require.NoError(t, err)
	require.Equal(t, seeded.Libelle, got.Libelle)

	require.Equal(t, []domain.ActionKind{domain.ActionRead}, f.recorder.byTaskKinds(seeded.ID))
}

func TestTaskService_GetMissingTask(t *testing.T) {
	f := newTaskFixture()

	_, err := f.service.Get(context.Background(), 404, 1)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	require.Empty(t, f.recorder.entries)
}

func TestTaskService_UpdateRequiresModifyTier(t *testing.T) {
	f := newTaskFixture()
	task := f.tasks.seed(domain.Task{Libelle: "Corriger le bug", Status: domain.TaskStatusPending, UserID: 1})
	ctx := context.Background()

	_, err := f.grants.Upsert(ctx, task.ID, 2, domain.PermissionReadOnly)
	require.NoError(t, err)

	libelle := "Corriger le bug critique"
	_, err = f.service.Update(ctx, task.ID, domain.UpdateTaskInput{Libelle: &libelle}, 2)
	require.ErrorIs(t, err, domain.ErrForbidden)

	// Denied attempts leave the task and the audit trail untouched.
	current, findErr := f.tasks.FindByID(ctx, task.ID)
	require.NoError(t, findErr)
	require.Equal(t, "Corriger le bug", current.Libelle)
	require.Empty(t, f.recorder.entries)
}

func TestTaskService_UpdateByGranteeRecordsModify(t *testing.T) {
	f := newTaskFixture()
	task := f.tasks.seed(domain.Task{Libelle: "Corriger le bug", Status: domain.TaskStatusPending, UserID: 1})
	ctx := context.Background()

	_, err := f.grants.Upsert(ctx, task.ID, 2, domain.PermissionModifyOnly)
	require.NoError(t, err)

	status := domain.TaskStatusInProgress
	updated, err := f.service.Update(ctx, task.ID, domain.UpdateTaskInput{Status: &status}, 2)
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusInProgress, updated.Status)
	require.Equal(t, "Corriger le bug", updated.Libelle)

	require.Equal(t, []domain.ActionKind{domain.ActionModify}, f.recorder.byTaskKinds(task.ID))
}

func TestTaskService_DeleteRequiresFullAccess(t *testing.T) {
	f := newTaskFixture()
	task := f.tasks.seed(domain.Task{Libelle: "Supprimer les brouillons", Status: domain.TaskStatusPending, UserID: 1})
	ctx := context.Background()

	_, err := f.grants.Upsert(ctx, task.ID, 2, domain.PermissionModifyOnly)
	require.NoError(t, err)

	err = f.service.Delete(ctx, task.ID, 2)
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.tasks.FindByID(ctx, task.ID)
	require.NoError(t, err)
	require.Empty(t, f.recorder.entries)
}

func TestTaskService_DeleteRecordsBeforeRemoving(t *testing.T) {
	f := newTaskFixture()
	task := f.tasks.seed(domain.Task{Libelle: "Supprimer les brouillons", Status: domain.TaskStatusPending, UserID: 1})
	ctx := context.Background()

	require.NoError(t, f.service.Delete(ctx, task.ID, 1))

	_, err := f.tasks.FindByID(ctx, task.ID)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)

	// The DELETE entry survives the task itself.
	require.Equal(t, []domain.ActionKind{domain.ActionDelete}, f.recorder.byTaskKinds(task.ID))
}

func TestTaskService_DeleteAbortsWhenRecordFails(t *testing.T) {
	f := newTaskFixture()
	task := f.tasks.seed(domain.Task{Libelle: "Supprimer les brouillons", Status: domain.TaskStatusPending, UserID: 1})
	f.recorder.recordErr = errors.New("history table unavailable")

	err := f.service.Delete(context.Background(), task.ID, 1)
	require.Error(t, err)

	// No audit row, no deletion.
	_, findErr := f.tasks.FindByID(context.Background(), task.ID)
	require.NoError(t, findErr)
}

func TestTaskService_MarkCompleteForcesDone(t *testing.T) {
	f := newTaskFixture()
	task := f.tasks.seed(domain.Task{Libelle: "Livrer la feature", Status: domain.TaskStatusInProgress, UserID: 1})

	done, err := f.service.MarkComplete(context.Background(), task.ID, 1)
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusDone, done.Status)
	require.Equal(t, []domain.ActionKind{domain.ActionModify}, f.recorder.byTaskKinds(task.ID))
}

func TestTaskService_AssignPermissionCreatorOnly(t *testing.T) {
	f := newTaskFixture()
	task := f.tasks.seed(domain.Task{Libelle: "Partager le dossier", Status: domain.TaskStatusPending, UserID: 1})
	ctx := context.Background()

	// Even FULL_ACCESS does not open grant administration.
	_, err := f.grants.Upsert(ctx, task.ID, 2, domain.PermissionFullAccess)
	require.NoError(t, err)

	_, err = f.service.AssignPermission(ctx, task.ID, 3, domain.PermissionReadOnly, 2)
	require.ErrorIs(t, err, domain.ErrNotCreator)

	grant, err := f.service.AssignPermission(ctx, task.ID, 3, domain.PermissionReadOnly, 1)
	require.NoError(t, err)
	require.Equal(t, domain.PermissionReadOnly, grant.Permission)
	require.Equal(t, []domain.ActionKind{domain.ActionModify}, f.recorder.byTaskKinds(task.ID))
}

func TestTaskService_AssignPermissionMissingTask(t *testing.T) {
	f := newTaskFixture()

	_, err := f.service.AssignPermission(context.Background(), 404, 2, domain.PermissionReadOnly, 1)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskService_RemovePermissionRevokesAccess(t *testing.T) {
	f := newTaskFixture()
	task := f.tasks.seed(domain.Task{Libelle: "Partager le dossier", Status: domain.TaskStatusPending, UserID: 1})
	ctx := context.Background()

	_, err := f.service.AssignPermission(ctx, task.ID, 2, domain.PermissionFullAccess, 1)
	require.NoError(t, err)
	require.NoError(t, f.service.RemovePermission(ctx, task.ID, 2, 1))

	// Revocation is immediate: the former grantee is back to nothing.
	err = f.service.Delete(ctx, task.ID, 2)
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTaskService_RemovePermissionUnknownGrant(t *testing.T) {
	f := newTaskFixture()
	task := f.tasks.seed(domain.Task{Libelle: "Partager le dossier", Status: domain.TaskStatusPending, UserID: 1})

	err := f.service.RemovePermission(context.Background(), task.ID, 42, 1)
	require.ErrorIs(t, err, domain.ErrGrantNotFound)
}

func TestTaskService_HistoryRequiresReadAccess(t *testing.T) {
	f := newTaskFixture()
	task := f.tasks.seed(domain.Task{Libelle: "Auditer la tâche", Status: domain.TaskStatusPending, UserID: 1})
	ctx := context.Background()

	_, err := f.service.Get(ctx, task.ID, 1)
	require.NoError(t, err)

	_, err = f.service.History(ctx, task.ID, 99)
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.grants.Upsert(ctx, task.ID, 99, domain.PermissionReadOnly)
	require.NoError(t, err)

	entries, err := f.service.History(ctx, task.ID, 99)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, domain.ActionRead, entries[0].Action)
}

func TestTaskService_HistoryIsNewestFirst(t *testing.T) {
	f := newTaskFixture()
	task := f.tasks.seed(domain.Task{Libelle: "Auditer la tâche", Status: domain.TaskStatusPending, UserID: 1})
	ctx := context.Background()

	_, err := f.service.Get(ctx, task.ID, 1)
	require.NoError(t, err)
	status := domain.TaskStatusInProgress
	_, err = f.service.Update(ctx, task.ID, domain.UpdateTaskInput{Status: &status}, 1)
	require.NoError(t, err)

	entries, err := f.service.History(ctx, task.ID, 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, domain.ActionModify, entries[0].Action)
	require.Equal(t, domain.ActionRead, entries[1].Action)
}
