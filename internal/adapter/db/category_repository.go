package db

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/Timomoulin/Todo0/internal/core/domain"
	"github.com/Timomoulin/Todo0/internal/core/ports"
)

const categoriesTable = "categories"

var categoryColumns = []string{"id", "name", "color", "created_at", "modified_at"}

type CategoryRepository struct {
	db *sqlx.DB
}

type categoryRow struct {
	ID         uint64    `db:"id"`
	Name       string    `db:"name"`
	Color      string    `db:"color"`
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	var rows []categoryRow
	if err := selectAll(ctx, conn(ctx, r.db), &rows, sq.Select(categoryColumns...).From(categoriesTable).OrderBy("id")); err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.toDomain())
	}
	return categories, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint64) (domain.Category, error) {
	var row categoryRow
	builder := sq.Select(categoryColumns...).From(categoriesTable).Where(squirrel.Eq{"id": id})
	if err := selectOne(ctx, conn(ctx, r.db), &row, builder, domain.ErrCategoryNotFound); err != nil {
		return domain.Category{}, err
	}
	return row.toDomain(), nil
}

// Save inserts the category when it has no id and updates it otherwise.
func (r *CategoryRepository) Save(ctx context.Context, category domain.Category) (domain.Category, error) {
	stamp := now()

	if category.ID == 0 {
		id, err := insertID(ctx, conn(ctx, r.db), sq.Insert(categoriesTable).
			Columns("name", "color", "created_at", "modified_at").
			Values(category.Name, category.Color, stamp, stamp))
		if err != nil {
			return domain.Category{}, fmt.Errorf("insert category: %w", err)
		}
		category.ID = id
		category.CreatedAt = stamp
		category.ModifiedAt = stamp
		return category, nil
	}

	err := updateOne(ctx, conn(ctx, r.db), sq.Update(categoriesTable).
		Set("name", category.Name).
		Set("color", category.Color).
		Set("modified_at", stamp).
		Where(squirrel.Eq{"id": category.ID}), domain.ErrCategoryNotFound)
	if err != nil {
		return domain.Category{}, err
	}
	return r.FindByID(ctx, category.ID)
}

// DeleteByID removes the category together with its todos.
func (r *CategoryRepository) DeleteByID(ctx context.Context, id uint64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := exec(ctx, tx, sq.Delete(todosTable).Where(squirrel.Eq{"category_id": id})); err != nil {
			return fmt.Errorf("delete category todos: %w", err)
		}
		if _, err := exec(ctx, tx, sq.Delete(categoriesTable).Where(squirrel.Eq{"id": id})); err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		return nil
	})
}

func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, conn(ctx, r.db), categoriesTable)
}

func (row categoryRow) toDomain() domain.Category {
	return domain.Category{
		ID:         row.ID,
		Name:       row.Name,
		Color:      row.Color,
		CreatedAt:  row.CreatedAt,
		ModifiedAt: row.ModifiedAt,
	}
}
