package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Timomoulin/Todo0/internal/core/domain"
	"github.com/Timomoulin/Todo0/internal/core/ports"
)

type AuthService struct {
	userRepository ports.UserRepository
	hasher         ports.PasswordHasher
	listeners      []ports.AuthEventListener
}

func NewAuthService(userRepository ports.UserRepository, hasher ports.PasswordHasher, listeners ...ports.AuthEventListener) *AuthService {
	return &AuthService{userRepository: userRepository, hasher: hasher, listeners: listeners}
}

// Authenticate checks the credentials and notifies every listener of the
// outcome. Unknown email and wrong password are reported identically.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (domain.Principal, error) {
	email = strings.TrimSpace(email)

	principal, err := s.authenticate(ctx, email, password)
	if err != nil {
		s.notifyFailure(ctx, email, err)
		return domain.Principal{}, err
	}

	s.notifySuccess(ctx, principal.Name)
	return principal, nil
}

func (s *AuthService) authenticate(ctx context.Context, email, password string) (domain.Principal, error) {
	if email == "" || password == "" {
		return domain.Principal{}, domain.ErrInvalidCredentials
	}

	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Principal{}, domain.ErrInvalidCredentials
		}
		return domain.Principal{}, fmt.Errorf("load user: %w", err)
	}

	if !s.hasher.Matches(user.PasswordHash, password) {
		return domain.Principal{}, domain.ErrInvalidCredentials
	}

	var roles []string
	if user.Role != nil {
		roles = append(roles, user.Role.Name)
	}

	return domain.Principal{UserID: user.ID, Name: user.Email, Roles: roles}, nil
}

func (s *AuthService) notifySuccess(ctx context.Context, name string) {
	for _, listener := range s.listeners {
		safeNotify(func() { listener.OnAuthenticationSuccess(ctx, name) })
	}
}

func (s *AuthService) notifyFailure(ctx context.Context, name string, cause error) {
	for _, listener := range s.listeners {
		safeNotify(func() { listener.OnAuthenticationFailure(ctx, name, cause) })
	}
}

// safeNotify keeps a misbehaving listener from changing the authentication
// result.
func safeNotify(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("authentication listener panicked", zap.Any("panic", r))
		}
	}()
	fn()
}

var _ ports.AuthService = (*AuthService)(nil)
