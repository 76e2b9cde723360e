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

const (
	FieldEmail                = "email"
	FieldPassword             = "mdp"
	FieldPasswordConfirmation = "confirmationMdp"
)

type UserService struct {
	userRepository ports.UserRepository
	roleRepository ports.RoleRepository
	hasher         ports.PasswordHasher
	passwordPolicy ports.PasswordPolicy
}

func NewUserService(
	userRepository ports.UserRepository,
	roleRepository ports.RoleRepository,
	hasher ports.PasswordHasher,
	passwordPolicy ports.PasswordPolicy,
) *UserService {
	return &UserService{
		userRepository: userRepository,
		roleRepository: roleRepository,
		hasher:         hasher,
		passwordPolicy: passwordPolicy,
	}
}

// Register validates the registration form and persists a new UTILISATEUR.
// All field errors are collected before returning; nothing is written when
// any rule fails.
func (s *UserService) Register(ctx context.Context, input domain.RegisterUserInput) (domain.User, error) {
	input.LastName = strings.TrimSpace(input.LastName)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.Email = strings.TrimSpace(input.Email)

	errs := validateStruct(registrationRules{
		LastName:  input.LastName,
		FirstName: input.FirstName,
		Email:     input.Email,
		Password:  input.Password,
	}, registrationMessages)

	if input.Email != "" {
		exists, err := s.userRepository.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return domain.User{}, fmt.Errorf("check email: %w", err)
		}
		if exists {
			errs = append(errs, domain.FieldError{Field: FieldEmail, MessageID: "emailAlreadyUsed"})
		}
	}

	if input.Password != input.PasswordConfirmation {
		errs = append(errs, domain.FieldError{Field: FieldPasswordConfirmation, MessageID: "passwordMismatch"})
	}

	if !s.passwordPolicy.IsStrong(input.Password) {
		errs = append(errs, domain.FieldError{Field: FieldPassword, MessageID: "passwordTooWeak"})
	}

	if len(errs) > 0 {
		return domain.User{}, errs
	}

	role, err := s.roleRepository.FindByNameIgnoreCase(ctx, domain.RoleUtilisateur)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			zap.L().Error("registration impossible, default role is missing", zap.String("role", domain.RoleUtilisateur))
			return domain.User{}, domain.ErrDefaultRoleMissing
		}
		return domain.User{}, fmt.Errorf("load default role: %w", err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.userRepository.Save(ctx, domain.User{
		LastName:     input.LastName,
		FirstName:    input.FirstName,
		Email:        input.Email,
		PasswordHash: hash,
		RoleID:       &role.ID,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("save user: %w", err)
	}

	zap.L().Info("user registered", zap.Uint64("user_id", user.ID))
	return user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return s.userRepository.FindByEmail(ctx, email)
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepository.FindAll(ctx)
}

func (s *UserService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	return s.roleRepository.FindAll(ctx)
}

var _ ports.UserService = (*UserService)(nil)
