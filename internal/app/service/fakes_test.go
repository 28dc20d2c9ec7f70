package service_test

import (
	"context"
	"sort"
	"time"

	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/ports"
)

// In-memory doubles for the repository ports. They mimic the store
// contracts closely enough for service tests: sentinel errors on
// missing rows, upsert-by-pair on grants, append-only history.

type fakeTaskRepo struct {
	nextID uint64
	tasks  map[uint64]domain.Task

	listErr     error
	markDoneErr map[uint64]error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{nextID: 1, tasks: map[uint64]domain.Task{}, markDoneErr: map[uint64]error{}}
}

func (r *fakeTaskRepo) seed(task domain.Task) domain.Task {
	if task.ID == 0 {
		task.ID = r.nextID
	}
	if task.ID >= r.nextID {
		r.nextID = task.ID + 1
	}
	r.tasks[task.ID] = task
	return task
}

func (r *fakeTaskRepo) List(ctx context.Context) ([]domain.Task, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		out = append(out, task)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTaskRepo) FindByID(ctx context.Context, id uint64) (*domain.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return &task, nil
}

func (r *fakeTaskRepo) Create(ctx context.Context, input domain.CreateTaskInput, creatorID uint64) (domain.Task, error) {
	task := domain.Task{
		ID:          r.nextID,
		Libelle:     input.Libelle,
		Description: input.Description,
		Status:      input.Status,
		AudioURL:    input.AudioURL,
		DateDebut:   input.DateDebut,
		DateFin:     input.DateFin,
		UserID:      creatorID,
	}
	r.nextID++
	r.tasks[task.ID] = task
	return task, nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if input.Libelle != nil {
		task.Libelle = *input.Libelle
	}
	if input.Description != nil {
		task.Description = input.Description
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.AudioURL != nil {
		task.AudioURL = input.AudioURL
	}
	if input.DateDebut != nil {
		task.DateDebut = input.DateDebut
	}
	if input.DateFin != nil {
		task.DateFin = input.DateFin
	}
	r.tasks[id] = task
	return task, nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id uint64) error {
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) MarkDone(ctx context.Context, id uint64) (domain.Task, error) {
	if err := r.markDoneErr[id]; err != nil {
		return domain.Task{}, err
	}
	task, ok := r.tasks[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	task.Status = domain.TaskStatusDone
	r.tasks[id] = task
	return task, nil
}

func (r *fakeTaskRepo) ListCompleted(ctx context.Context, userID uint64, now time.Time) ([]domain.Task, error) {
	var out []domain.Task
	for _, task := range r.tasks {
		if task.UserID != userID || task.Status != domain.TaskStatusDone {
			continue
		}
		if task.DateFin == nil || task.DateFin.After(now) {
			continue
		}
		out = append(out, task)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTaskRepo) ListOverdue(ctx context.Context, now time.Time) ([]domain.Task, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []domain.Task
	for _, task := range r.tasks {
		if task.Status == domain.TaskStatusDone {
			continue
		}
		if task.DateFin == nil || !task.DateFin.Before(now) {
			continue
		}
		out = append(out, task)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

var _ ports.TaskRepository = (*fakeTaskRepo)(nil)

type grantKey struct {
	tacheID uint64
	userID  uint64
}

type fakeGrantRepo struct {
	nextID uint64
	grants map[grantKey]domain.Grant
}

func newFakeGrantRepo() *fakeGrantRepo {
	return &fakeGrantRepo{nextID: 1, grants: map[grantKey]domain.Grant{}}
}

func (r *fakeGrantRepo) Upsert(ctx context.Context, tacheID, userID uint64, tier domain.PermissionTier) (domain.Grant, error) {
	key := grantKey{tacheID: tacheID, userID: userID}
	grant, ok := r.grants[key]
	if !ok {
		grant = domain.Grant{ID: r.nextID, TacheID: tacheID, UserID: userID}
		r.nextID++
	}
	grant.Permission = tier
	r.grants[key] = grant
	return grant, nil
}

func (r *fakeGrantRepo) Find(ctx context.Context, tacheID, userID uint64) (*domain.Grant, error) {
	grant, ok := r.grants[grantKey{tacheID: tacheID, userID: userID}]
	if !ok {
		return nil, nil
	}
	return &grant, nil
}

func (r *fakeGrantRepo) ListByTask(ctx context.Context, tacheID uint64) ([]domain.Grant, error) {
	var out []domain.Grant
	for _, grant := range r.grants {
		if grant.TacheID == tacheID {
			out = append(out, grant)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeGrantRepo) Delete(ctx context.Context, tacheID, userID uint64) error {
	key := grantKey{tacheID: tacheID, userID: userID}
	if _, ok := r.grants[key]; !ok {
		return domain.ErrGrantNotFound
	}
	delete(r.grants, key)
	return nil
}

var _ ports.PermissionRepository = (*fakeGrantRepo)(nil)

type fakeRecorder struct {
	nextID    uint64
	entries   []domain.ActionEntry
	recordErr error
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{nextID: 1}
}

func (r *fakeRecorder) Record(ctx context.Context, tacheID, userID uint64, kind domain.ActionKind) error {
	if r.recordErr != nil {
		return r.recordErr
	}
	r.entries = append(r.entries, domain.ActionEntry{
		ID:        r.nextID,
		TacheID:   tacheID,
		UserID:    userID,
		Action:    kind,
		Timestamp: time.Now(),
	})
	r.nextID++
	return nil
}

func (r *fakeRecorder) ByTask(ctx context.Context, tacheID uint64) ([]domain.ActionEntry, error) {
	var out []domain.ActionEntry
	for _, entry := range r.entries {
		if entry.TacheID == tacheID {
			out = append(out, entry)
		}
	}
	// Newest first, like the store.
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeRecorder) byTaskKinds(tacheID uint64) []domain.ActionKind {
	entries, _ := r.ByTask(context.Background(), tacheID)
	kinds := make([]domain.ActionKind, 0, len(entries))
	for _, entry := range entries {
		kinds = append(kinds, entry.Action)
	}
	return kinds
}

var _ ports.ActionRecorder = (*fakeRecorder)(nil)

type fakeAttachmentRepo struct {
	nextID      uint64
	attachments map[uint64]domain.Attachment
}

func newFakeAttachmentRepo() *fakeAttachmentRepo {
	return &fakeAttachmentRepo{nextID: 1, attachments: map[uint64]domain.Attachment{}}
}

func (r *fakeAttachmentRepo) Create(ctx context.Context, att domain.Attachment) (domain.Attachment, error) {
	att.ID = r.nextID
	r.nextID++
	r.attachments[att.ID] = att
	return att, nil
}

func (r *fakeAttachmentRepo) ListByTask(ctx context.Context, tacheID uint64) ([]domain.Attachment, error) {
	var out []domain.Attachment
	for _, att := range r.attachments {
		if att.TacheID == tacheID {
			out = append(out, att)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAttachmentRepo) FindByID(ctx context.Context, id uint64) (*domain.Attachment, error) {
	att, ok := r.attachments[id]
	if !ok {
		return nil, domain.ErrAttachmentNotFound
	}
	return &att, nil
}

func (r *fakeAttachmentRepo) Delete(ctx context.Context, id uint64) error {
	if _, ok := r.attachments[id]; !ok {
		return domain.ErrAttachmentNotFound
	}
	delete(r.attachments, id)
	return nil
}

var _ ports.AttachmentRepository = (*fakeAttachmentRepo)(nil)

type fakeUserRepo struct {
	nextID uint64
	users  map[uint64]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[uint64]domain.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	for _, existing := range r.users {
		if existing.Login == user.Login {
			return domain.User{}, domain.ErrLoginTaken
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Login == login {
			u := user
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint64) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

var _ ports.UserRepository = (*fakeUserRepo)(nil)
