package ports

import (
	"context"

	"github.com/Timomoulin/Todo0/internal/core/domain"
)

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id uint64) (domain.Category, error)
	Save(ctx context.Context, category domain.Category) (domain.Category, error)
	// DeleteByID removes the category and every todo referencing it.
	DeleteByID(ctx context.Context, id uint64) error
	Count(ctx context.Context) (int64, error)
}

type CategoryService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id uint64) (domain.Category, error)
	SaveCategory(ctx context.Context, category domain.Category) (domain.Category, error)
	DeleteCategory(ctx context.Context, id uint64) error
}
