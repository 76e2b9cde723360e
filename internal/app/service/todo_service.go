package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Timomoulin/Todo0/internal/core/domain"
	"github.com/Timomoulin/Todo0/internal/core/ports"
)

type TodoService struct {
	todoRepository     ports.TodoRepository
	categoryRepository ports.CategoryRepository
}

func NewTodoService(todoRepository ports.TodoRepository, categoryRepository ports.CategoryRepository) *TodoService {
	return &TodoService{todoRepository: todoRepository, categoryRepository: categoryRepository}
}

func (s *TodoService) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	return s.todoRepository.FindAll(ctx)
}

func (s *TodoService) ListTodosByTitle(ctx context.Context) ([]domain.Todo, error) {
	return s.todoRepository.FindAllOrderByTitle(ctx)
}

func (s *TodoService) GetTodo(ctx context.Context, id uint64) (domain.Todo, error) {
	return s.todoRepository.FindByID(ctx, id)
}

// SaveTodo validates the todo and checks that its category exists before
// inserting or updating it.
func (s *TodoService) SaveTodo(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	todo.Title = strings.TrimSpace(todo.Title)
	errs := ValidateTodo(todo)

	if todo.CategoryID != nil {
		if _, err := s.categoryRepository.FindByID(ctx, *todo.CategoryID); err != nil {
			if !errors.Is(err, domain.ErrCategoryNotFound) {
				return domain.Todo{}, fmt.Errorf("load category: %w", err)
			}
			errs = append(errs, domain.FieldError{Field: "categorieId", MessageID: "categoryUnknown"})
		}
	}

	if len(errs) > 0 {
		return domain.Todo{}, errs
	}
	return s.todoRepository.Save(ctx, todo)
}

func (s *TodoService) DeleteTodo(ctx context.Context, id uint64) error {
	return s.todoRepository.DeleteByID(ctx, id)
}

var _ ports.TodoService = (*TodoService)(nil)
