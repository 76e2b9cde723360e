package ports

import (
	"context"

	"github.com/Timomoulin/Todo0/internal/core/domain"
)

type RoleRepository interface {
	FindAll(ctx context.Context) ([]domain.Role, error)
	FindByID(ctx context.Context, id uint64) (domain.Role, error)
	FindByNameIgnoreCase(ctx context.Context, name string) (domain.Role, error)
	Save(ctx context.Context, role domain.Role) (domain.Role, error)
	// DeleteByID removes the role and every user holding it.
	DeleteByID(ctx context.Context, id uint64) error
	Count(ctx context.Context) (int64, error)
}

type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id uint64) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, user domain.User) (domain.User, error)
	DeleteByID(ctx context.Context, id uint64) error
	Count(ctx context.Context) (int64, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(hash, password string) bool
}

// PasswordPolicy reports whether a clear-text password is strong enough.
type PasswordPolicy interface {
	IsStrong(password string) bool
}

type UserService interface {
	Register(ctx context.Context, input domain.RegisterUserInput) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListRoles(ctx context.Context) ([]domain.Role, error)
}
