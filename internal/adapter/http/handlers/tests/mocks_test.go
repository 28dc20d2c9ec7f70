package tests

import (
	"context"
	"encoding/json"
	"mime/multipart"

	"github.com/stretchr/testify/mock"

	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) List(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) Get(ctx context.Context, id, userID uint64) (domain.Task, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Create(ctx context.Context, input domain.CreateTaskInput, userID uint64) (domain.Task, error) {
	args := m.Called(ctx, input, userID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Update(ctx context.Context, id uint64, input domain.UpdateTaskInput, userID uint64) (domain.Task, error) {
	args := m.Called(ctx, id, input, userID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Delete(ctx context.Context, id, userID uint64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *taskServiceMock) MarkComplete(ctx context.Context, id, userID uint64) (domain.Task, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ListCompleted(ctx context.Context, userID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, userID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) AssignPermission(ctx context.Context, tacheID, granteeID uint64, tier domain.PermissionTier, callerID uint64) (domain.Grant, error) {
	args := m.Called(ctx, tacheID, granteeID, tier, callerID)
	return args.Get(0).(domain.Grant), args.Error(1)
}

func (m *taskServiceMock) ListPermissions(ctx context.Context, tacheID, callerID uint64) ([]domain.Grant, error) {
	args := m.Called(ctx, tacheID, callerID)

	var grants []domain.Grant
	if value := args.Get(0); value != nil {
		grants = value.([]domain.Grant)
	}
	return grants, args.Error(1)
}

func (m *taskServiceMock) RemovePermission(ctx context.Context, tacheID, granteeID, callerID uint64) error {
	args := m.Called(ctx, tacheID, granteeID, callerID)
	return args.Error(0)
}

func (m *taskServiceMock) History(ctx context.Context, tacheID, userID uint64) ([]domain.ActionEntry, error) {
	args := m.Called(ctx, tacheID, userID)

	var entries []domain.ActionEntry
	if value := args.Get(0); value != nil {
		entries = value.([]domain.ActionEntry)
	}
	return entries, args.Error(1)
}

type attachmentServiceMock struct {
	mock.Mock
}

func (m *attachmentServiceMock) Add(ctx context.Context, tacheID uint64, meta domain.FileMeta, userID uint64) (domain.Attachment, error) {
	args := m.Called(ctx, tacheID, meta, userID)
	return args.Get(0).(domain.Attachment), args.Error(1)
}

func (m *attachmentServiceMock) List(ctx context.Context, tacheID uint64) ([]domain.Attachment, error) {
	args := m.Called(ctx, tacheID)

	var attachments []domain.Attachment
	if value := args.Get(0); value != nil {
		attachments = value.([]domain.Attachment)
	}
	return attachments, args.Error(1)
}

func (m *attachmentServiceMock) Delete(ctx context.Context, attachmentID, userID uint64) error {
	args := m.Called(ctx, attachmentID, userID)
	return args.Error(0)
}

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, input domain.NewUserInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) Login(ctx context.Context, login, password string) (domain.Session, error) {
	args := m.Called(ctx, login, password)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *authServiceMock) Verify(token string) (domain.TokenClaims, error) {
	args := m.Called(token)
	return args.Get(0).(domain.TokenClaims), args.Error(1)
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

type uploadStoreMock struct {
	mock.Mock
}

func (m *uploadStoreMock) Save(file *multipart.FileHeader) (domain.FileMeta, error) {
	args := m.Called(file)
	return args.Get(0).(domain.FileMeta), args.Error(1)
}
