package tests

import (
	"context"

	"taskhub/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, userID string, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ListTasks(ctx context.Context, userID string, filter domain.TaskFilter) (domain.TaskList, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).(domain.TaskList), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, id, userID string) (domain.Task, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, id, userID string, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, userID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *taskServiceMock) GetTaskStats(ctx context.Context, userID string) (domain.TaskStats, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.TaskStats), args.Error(1)
}

func (m *taskServiceMock) BulkUpdateTasks(ctx context.Context, userID string, ids []string, patch domain.BulkTaskPatch) (domain.BulkUpdateResult, error) {
	args := m.Called(ctx, userID, ids, patch)
	return args.Get(0).(domain.BulkUpdateResult), args.Error(1)
}

func (m *taskServiceMock) BulkDeleteTasks(ctx context.Context, userID string, ids []string) (domain.BulkDeleteResult, error) {
	args := m.Called(ctx, userID, ids)
	return args.Get(0).(domain.BulkDeleteResult), args.Error(1)
}

func (m *taskServiceMock) AddNote(ctx context.Context, taskID, userID, content string) (domain.Task, error) {
	args := m.Called(ctx, taskID, userID, content)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) RemoveNote(ctx context.Context, taskID, noteID, userID string) (domain.Task, error) {
	args := m.Called(ctx, taskID, noteID, userID)
	return args.Get(0).(domain.Task), args.Error(1)
}

type categoryServiceMock struct {
	mock.Mock
}

func (m *categoryServiceMock) CreateCategory(ctx context.Context, userID string, input domain.CreateCategoryInput) (domain.Category, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) ListCategories(ctx context.Context, userID string, filter domain.CategoryFilter) (domain.CategoryList, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).(domain.CategoryList), args.Error(1)
}

func (m *categoryServiceMock) GetCategory(ctx context.Context, id, userID string) (domain.Category, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) UpdateCategory(ctx context.Context, id, userID string, input domain.UpdateCategoryInput) (domain.Category, error) {
	args := m.Called(ctx, id, userID, input)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) DeleteCategory(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *categoryServiceMock) GetCategoryStats(ctx context.Context, userID string) (domain.CategoryStats, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.CategoryStats), args.Error(1)
}

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, input domain.RegisterInput) (domain.AuthResult, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.AuthResult), args.Error(1)
}

func (m *authServiceMock) Login(ctx context.Context, input domain.LoginInput) (domain.AuthResult, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.AuthResult), args.Error(1)
}

func (m *authServiceMock) ValidateTokenClaim(ctx context.Context, claims domain.TokenClaims) (*domain.User, error) {
	args := m.Called(ctx, claims)
	var user *domain.User
	if value := args.Get(0); value != nil {
		user = value.(*domain.User)
	}
	return user, args.Error(1)
}

func (m *authServiceMock) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	var user *domain.User
	if value := args.Get(0); value != nil {
		user = value.(*domain.User)
	}
	return user, args.Error(1)
}
