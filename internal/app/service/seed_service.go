package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Timomoulin/Todo0/internal/core/domain"
	"github.com/Timomoulin/Todo0/internal/core/ports"
)

// SeedService loads the demonstration data. Each group of fixtures is only
// inserted when its table is empty, so running it again is a no-op. A group
// is written in one transaction; a failed run leaves its tables empty.
type SeedService struct {
	categoryRepository ports.CategoryRepository
	todoRepository     ports.TodoRepository
	roleRepository     ports.RoleRepository
	userRepository     ports.UserRepository
	hasher             ports.PasswordHasher
	transactor         ports.Transactor
}

func NewSeedService(
	categoryRepository ports.CategoryRepository,
	todoRepository ports.TodoRepository,
	roleRepository ports.RoleRepository,
	userRepository ports.UserRepository,
	hasher ports.PasswordHasher,
	transactor ports.Transactor,
) *SeedService {
	return &SeedService{
		categoryRepository: categoryRepository,
		todoRepository:     todoRepository,
		roleRepository:     roleRepository,
		userRepository:     userRepository,
		hasher:             hasher,
		transactor:         transactor,
	}
}

func (s *SeedService) Run(ctx context.Context) error {
	if err := s.seedCategories(ctx); err != nil {
		return err
	}
	return s.seedRoles(ctx)
}

func (s *SeedService) seedCategories(ctx context.Context) error {
	total, err := s.categoryRepository.Count(ctx)
	if err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if total > 0 {
		return nil
	}

	return s.transactor.WithinTx(ctx, s.insertCategoriesAndTodos)
}

func (s *SeedService) insertCategoriesAndTodos(ctx context.Context) error {
	leisure, err := s.categoryRepository.Save(ctx, domain.Category{Name: "Loisir", Color: "#FF0000"})
	if err != nil {
		return fmt.Errorf("seed category: %w", err)
	}
	work, err := s.categoryRepository.Save(ctx, domain.Category{Name: "Travail", Color: "#aaaaaa"})
	if err != nil {
		return fmt.Errorf("seed category: %w", err)
	}
	zap.L().Info("seeded categories", zap.Int("count", 2))

	total, err := s.todoRepository.Count(ctx)
	if err != nil {
		return fmt.Errorf("count todos: %w", err)
	}
	if total > 0 {
		return nil
	}

	todos := []domain.Todo{
		{
			Title:       "Faire une vidéo de démonstration",
			Description: "Vidéo de démonstration de l'application Todo0",
			CategoryID:  &work.ID,
		},
		{
			Title:       "Faire du sport",
			Description: "Faire du sport",
			CategoryID:  &leisure.ID,
		},
	}
	for _, todo := range todos {
		if _, err := s.todoRepository.Save(ctx, todo); err != nil {
			return fmt.Errorf("seed todo: %w", err)
		}
	}
	zap.L().Info("seeded todos", zap.Int("count", len(todos)))

	return nil
}

func (s *SeedService) seedRoles(ctx context.Context) error {
	total, err := s.roleRepository.Count(ctx)
	if err != nil {
		return fmt.Errorf("count roles: %w", err)
	}
	if total > 0 {
		return nil
	}

	return s.transactor.WithinTx(ctx, s.insertRolesAndUsers)
}

func (s *SeedService) insertRolesAndUsers(ctx context.Context) error {
	admin, err := s.roleRepository.Save(ctx, domain.Role{Name: domain.RoleAdmin})
	if err != nil {
		return fmt.Errorf("seed role: %w", err)
	}
	member, err := s.roleRepository.Save(ctx, domain.Role{Name: domain.RoleUtilisateur})
	if err != nil {
		return fmt.Errorf("seed role: %w", err)
	}
	zap.L().Info("seeded roles", zap.Int("count", 2))

	total, err := s.userRepository.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if total > 0 {
		return nil
	}

	fixtures := []struct {
		user     domain.User
		password string
	}{
		{
			user:     domain.User{LastName: "Super", FirstName: "Admin", Email: "admin@admin.com", RoleID: &admin.ID},
			password: "Tod0@dmin123",
		},
		{
			user:     domain.User{LastName: "Jean", FirstName: "Client", Email: "client@client.com", RoleID: &member.ID},
			password: "Tod0€lient123",
		},
	}
	for _, fixture := range fixtures {
		hash, err := s.hasher.Hash(fixture.password)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		fixture.user.PasswordHash = hash
		if _, err := s.userRepository.Save(ctx, fixture.user); err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
	}
	zap.L().Info("seeded users", zap.Int("count", len(fixtures)))

	return nil
}
