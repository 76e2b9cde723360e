package ports

import (
	"context"

	"github.com/Timomoulin/Todo0/internal/core/domain"
)

type TodoRepository interface {
	FindAll(ctx context.Context) ([]domain.Todo, error)
	FindAllOrderByTitle(ctx context.Context) ([]domain.Todo, error)
	FindByID(ctx context.Context, id uint64) (domain.Todo, error)
	Save(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	DeleteByID(ctx context.Context, id uint64) error
	Count(ctx context.Context) (int64, error)
}

type TodoService interface {
	ListTodos(ctx context.Context) ([]domain.Todo, error)
	ListTodosByTitle(ctx context.Context) ([]domain.Todo, error)
	GetTodo(ctx context.Context, id uint64) (domain.Todo, error)
	SaveTodo(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	DeleteTodo(ctx context.Context, id uint64) error
}
