package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Timomoulin/Todo0/internal/core/domain"
)

type categoryServiceMock struct {
	mock.Mock
}

func (m *categoryServiceMock) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *categoryServiceMock) GetCategory(ctx context.Context, id uint64) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) SaveCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) DeleteCategory(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type todoServiceMock struct {
	mock.Mock
}

func (m *todoServiceMock) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	args := m.Called(ctx)
	var todos []domain.Todo
	if value := args.Get(0); value != nil {
		todos = value.([]domain.Todo)
	}
	return todos, args.Error(1)
}

func (m *todoServiceMock) ListTodosByTitle(ctx context.Context) ([]domain.Todo, error) {
	args := m.Called(ctx)
	var todos []domain.Todo
	if value := args.Get(0); value != nil {
		todos = value.([]domain.Todo)
	}
	return todos, args.Error(1)
}

func (m *todoServiceMock) GetTodo(ctx context.Context, id uint64) (domain.Todo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Todo), args.Error(1)
}

func (m *todoServiceMock) SaveTodo(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	args := m.Called(ctx, todo)
	return args.Get(0).(domain.Todo), args.Error(1)
}

func (m *todoServiceMock) DeleteTodo(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) Register(ctx context.Context, input domain.RegisterUserInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userServiceMock) ListRoles(ctx context.Context) ([]domain.Role, error) {
	args := m.Called(ctx)
	var roles []domain.Role
	if value := args.Get(0); value != nil {
		roles = value.([]domain.Role)
	}
	return roles, args.Error(1)
}

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Authenticate(ctx context.Context, email, password string) (domain.Principal, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.Principal), args.Error(1)
}

type auditorMock struct {
	mock.Mock
}

func (m *auditorMock) AccessDenied(ctx context.Context, username, resource string) {
	m.Called(ctx, username, resource)
}

func (m *auditorMock) Unauthenticated(ctx context.Context, resource string) {
	m.Called(ctx, resource)
}

func (m *auditorMock) TodoCreated(ctx context.Context, username string, todo domain.Todo) {
	m.Called(ctx, username, todo)
}
