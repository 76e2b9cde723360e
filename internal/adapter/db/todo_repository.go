package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/Timomoulin/Todo0/internal/core/domain"
	"github.com/Timomoulin/Todo0/internal/core/ports"
)

const todosTable = "todos"

type TodoRepository struct {
	db *sqlx.DB
}

type todoRow struct {
	ID            uint64         `db:"id"`
	Title         string         `db:"title"`
	Description   string         `db:"description"`
	Done          bool           `db:"done"`
	DueAt         sql.NullTime   `db:"due_at"`
	CategoryID    sql.NullInt64  `db:"category_id"`
	CreatedAt     time.Time      `db:"created_at"`
	ModifiedAt    time.Time      `db:"modified_at"`
	CategoryName  sql.NullString `db:"category_name"`
	CategoryColor sql.NullString `db:"category_color"`
}

var _ ports.TodoRepository = (*TodoRepository)(nil)

func NewTodoRepository(db *sqlx.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func selectTodos() squirrel.SelectBuilder {
	return sq.Select(
		"t.id", "t.title", "t.description", "t.done", "t.due_at", "t.category_id",
		"t.created_at", "t.modified_at",
		"c.name AS category_name", "c.color AS category_color",
	).
		From(todosTable + " t").
		LeftJoin(categoriesTable + " c ON c.id = t.category_id")
}

func (r *TodoRepository) FindAll(ctx context.Context) ([]domain.Todo, error) {
	return r.list(ctx, selectTodos().OrderBy("t.id"))
}

func (r *TodoRepository) FindAllOrderByTitle(ctx context.Context) ([]domain.Todo, error) {
	return r.list(ctx, selectTodos().OrderBy("t.title ASC", "t.id"))
}

func (r *TodoRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]domain.Todo, error) {
	var rows []todoRow
	if err := selectAll(ctx, conn(ctx, r.db), &rows, builder); err != nil {
		return nil, err
	}

	todos := make([]domain.Todo, 0, len(rows))
	for _, row := range rows {
		todos = append(todos, mapTodoRowToDomainTodo(row))
	}
	return todos, nil
}

func (r *TodoRepository) FindByID(ctx context.Context, id uint64) (domain.Todo, error) {
	var row todoRow
	if err := selectOne(ctx, conn(ctx, r.db), &row, selectTodos().Where(squirrel.Eq{"t.id": id}), domain.ErrTodoNotFound); err != nil {
		return domain.Todo{}, err
	}
	return mapTodoRowToDomainTodo(row), nil
}

// Save inserts the todo when it has no id and updates it otherwise. The
// creation stamp of an existing todo is never rewritten.
func (r *TodoRepository) Save(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	stamp := now()

	if todo.ID == 0 {
		id, err := insertID(ctx, conn(ctx, r.db), sq.Insert(todosTable).
			Columns("title", "description", "done", "due_at", "category_id", "created_at", "modified_at").
			Values(todo.Title, todo.Description, todo.Done, nullTime(todo.DueAt), nullID(todo.CategoryID), stamp, stamp))
		if err != nil {
			return domain.Todo{}, fmt.Errorf("insert todo: %w", err)
		}
		return r.FindByID(ctx, id)
	}

	err := updateOne(ctx, conn(ctx, r.db), sq.Update(todosTable).
		Set("title", todo.Title).
		Set("description", todo.Description).
		Set("done", todo.Done).
		Set("due_at", nullTime(todo.DueAt)).
		Set("category_id", nullID(todo.CategoryID)).
		Set("modified_at", stamp).
		Where(squirrel.Eq{"id": todo.ID}), domain.ErrTodoNotFound)
	if err != nil {
		return domain.Todo{}, err
	}
	return r.FindByID(ctx, todo.ID)
}

func (r *TodoRepository) DeleteByID(ctx context.Context, id uint64) error {
	if _, err := exec(ctx, conn(ctx, r.db), sq.Delete(todosTable).Where(squirrel.Eq{"id": id})); err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	return nil
}

func (r *TodoRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, conn(ctx, r.db), todosTable)
}

func mapTodoRowToDomainTodo(row todoRow) domain.Todo {
	todo := domain.Todo{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Done:        row.Done,
		CreatedAt:   row.CreatedAt,
		ModifiedAt:  row.ModifiedAt,
	}

	if row.DueAt.Valid {
		value := row.DueAt.Time
		todo.DueAt = &value
	}

	if row.CategoryID.Valid {
		categoryID := uint64(row.CategoryID.Int64)
		todo.CategoryID = &categoryID
		if row.CategoryName.Valid {
			todo.Category = &domain.Category{
				ID:    categoryID,
				Name:  row.CategoryName.String,
				Color: row.CategoryColor.String,
			}
		}
	}

	return todo
}
