package service

import (
	"context"
	"strings"

	"github.com/Timomoulin/Todo0/internal/core/domain"
	"github.com/Timomoulin/Todo0/internal/core/ports"
)

type CategoryService struct {
	categoryRepository ports.CategoryRepository
}

func NewCategoryService(categoryRepository ports.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepository: categoryRepository}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepository.FindAll(ctx)
}

func (s *CategoryService) GetCategory(ctx context.Context, id uint64) (domain.Category, error) {
	return s.categoryRepository.FindByID(ctx, id)
}

func (s *CategoryService) SaveCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	category.Name = strings.TrimSpace(category.Name)
	category.Color = strings.TrimSpace(category.Color)
	if errs := ValidateCategory(category); len(errs) > 0 {
		return domain.Category{}, errs
	}
	return s.categoryRepository.Save(ctx, category)
}

// DeleteCategory also removes the todos of the category.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint64) error {
	return s.categoryRepository.DeleteByID(ctx, id)
}

var _ ports.CategoryService = (*CategoryService)(nil)
