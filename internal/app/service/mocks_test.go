package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Timomoulin/Todo0/internal/core/domain"
)

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) FindAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userRepositoryMock) FindByID(ctx context.Context, id uint64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *userRepositoryMock) Save(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) DeleteByID(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *userRepositoryMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type roleRepositoryMock struct {
	mock.Mock
}

func (m *roleRepositoryMock) FindAll(ctx context.Context) ([]domain.Role, error) {
	args := m.Called(ctx)
	var roles []domain.Role
	if value := args.Get(0); value != nil {
		roles = value.([]domain.Role)
	}
	return roles, args.Error(1)
}

func (m *roleRepositoryMock) FindByID(ctx context.Context, id uint64) (domain.Role, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Role), args.Error(1)
}

func (m *roleRepositoryMock) FindByNameIgnoreCase(ctx context.Context, name string) (domain.Role, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Role), args.Error(1)
}

func (m *roleRepositoryMock) Save(ctx context.Context, role domain.Role) (domain.Role, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(domain.Role), args.Error(1)
}

func (m *roleRepositoryMock) DeleteByID(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *roleRepositoryMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// plainHasher prefixes passwords instead of hashing them.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Matches(hash, password string) bool {
	return hash == "hashed:"+password
}

type authListenerMock struct {
	mock.Mock
}

func (m *authListenerMock) OnAuthenticationSuccess(ctx context.Context, principal string) {
	m.Called(ctx, principal)
}

func (m *authListenerMock) OnAuthenticationFailure(ctx context.Context, principal string, cause error) {
	m.Called(ctx, principal, cause)
}

type panickingListener struct{}

func (panickingListener) OnAuthenticationSuccess(context.Context, string) {
	panic("listener failure")
}

func (panickingListener) OnAuthenticationFailure(context.Context, string, error) {
	panic("listener failure")
}
