package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Timomoulin/Todo0/internal/core/domain"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(context.Background(), db))
	return db
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Migrate(context.Background(), db))
}

func TestCategoryRepository_SaveStampsTimestamps(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(newTestDB(t))

	created, err := repo.Save(ctx, domain.Category{Name: "Loisir", Color: "#FF0000"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())
	require.Equal(t, created.CreatedAt, created.ModifiedAt)

	original := now
	now = func() time.Time { return created.CreatedAt.Add(time.Hour) }
	t.Cleanup(func() { now = original })

	updated, err := repo.Save(ctx, domain.Category{ID: created.ID, Name: "Sport", Color: "#00FF00"})
	require.NoError(t, err)
	assert.Equal(t, "Sport", updated.Name)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	assert.True(t, updated.ModifiedAt.After(created.ModifiedAt))
}

func TestCategoryRepository_UpdateMissing(t *testing.T) {
	repo := NewCategoryRepository(newTestDB(t))

	_, err := repo.Save(context.Background(), domain.Category{ID: 42, Name: "Ghost", Color: "#000000"})
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)

	_, err = repo.FindByID(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCategoryRepository_DeleteCascadesTodos(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	todos := NewTodoRepository(db)

	work, err := categories.Save(ctx, domain.Category{Name: "Travail", Color: "#aaaaaa"})
	require.NoError(t, err)
	leisure, err := categories.Save(ctx, domain.Category{Name: "Loisir", Color: "#FF0000"})
	require.NoError(t, err)

	for _, title := range []string{"Rapport", "Réunion"} {
		_, err := todos.Save(ctx, domain.Todo{Title: title, CategoryID: &work.ID})
		require.NoError(t, err)
	}
	kept, err := todos.Save(ctx, domain.Todo{Title: "Faire du sport", CategoryID: &leisure.ID})
	require.NoError(t, err)
	orphanless, err := todos.Save(ctx, domain.Todo{Title: "Sans catégorie"})
	require.NoError(t, err)

	require.NoError(t, categories.DeleteByID(ctx, work.ID))

	remaining, err := todos.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, kept.ID, remaining[0].ID)
	assert.Equal(t, orphanless.ID, remaining[1].ID)

	_, err = categories.FindByID(ctx, work.ID)
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestTodoRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	todos := NewTodoRepository(db)

	category, err := categories.Save(ctx, domain.Category{Name: "Travail", Color: "#aaaaaa"})
	require.NoError(t, err)

	due := time.Date(2026, 11, 2, 9, 30, 0, 0, time.UTC)
	created, err := todos.Save(ctx, domain.Todo{
		Title:       "Faire une vidéo",
		Description: "Démonstration",
		DueAt:       &due,
		CategoryID:  &category.ID,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.NotNil(t, created.DueAt)
	assert.True(t, due.Equal(*created.DueAt))
	require.NotNil(t, created.Category)
	assert.Equal(t, "Travail", created.Category.Name)
	assert.Equal(t, "#aaaaaa", created.Category.Color)

	created.Done = true
	created.CategoryID = nil
	created.DueAt = nil
	updated, err := todos.Save(ctx, created)
	require.NoError(t, err)
	assert.True(t, updated.Done)
	assert.Nil(t, updated.CategoryID)
	assert.Nil(t, updated.Category)
	assert.Nil(t, updated.DueAt)

	_, err = todos.FindByID(ctx, 999)
	require.ErrorIs(t, err, domain.ErrTodoNotFound)

	total, err := todos.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	require.NoError(t, todos.DeleteByID(ctx, created.ID))
	total, err = todos.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestTodoRepository_FindAllOrderByTitle(t *testing.T) {
	ctx := context.Background()
	todos := NewTodoRepository(newTestDB(t))

	for _, title := range []string{"Courses", "Anniversaire", "Banque"} {
		_, err := todos.Save(ctx, domain.Todo{Title: title})
		require.NoError(t, err)
	}

	ordered, err := todos.FindAllOrderByTitle(ctx)
	require.NoError(t, err)
	require.Len(t, ordered, 3)
	assert.Equal(t, "Anniversaire", ordered[0].Title)
	assert.Equal(t, "Banque", ordered[1].Title)
	assert.Equal(t, "Courses", ordered[2].Title)
}

func TestRoleRepository_FindByNameIgnoreCase(t *testing.T) {
	ctx := context.Background()
	roles := NewRoleRepository(newTestDB(t))

	saved, err := roles.Save(ctx, domain.Role{Name: "UTILISATEUR"})
	require.NoError(t, err)

	found, err := roles.FindByNameIgnoreCase(ctx, "utilisateur")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)

	_, err = roles.FindByNameIgnoreCase(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrRoleNotFound)

	_, err = roles.Save(ctx, domain.Role{ID: 99, Name: "GHOST"})
	require.ErrorIs(t, err, domain.ErrRoleNotFound)
}

func TestRoleRepository_DeleteCascadesUsers(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	roles := NewRoleRepository(db)
	users := NewUserRepository(db)

	admin, err := roles.Save(ctx, domain.Role{Name: domain.RoleAdmin})
	require.NoError(t, err)
	member, err := roles.Save(ctx, domain.Role{Name: domain.RoleUtilisateur})
	require.NoError(t, err)

	_, err = users.Save(ctx, domain.User{LastName: "Super", FirstName: "Admin", Email: "admin@admin.com", PasswordHash: "x", RoleID: &admin.ID})
	require.NoError(t, err)
	client, err := users.Save(ctx, domain.User{LastName: "Jean", FirstName: "Client", Email: "client@client.com", PasswordHash: "y", RoleID: &member.ID})
	require.NoError(t, err)

	require.NoError(t, roles.DeleteByID(ctx, admin.ID))

	remaining, err := users.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, client.ID, remaining[0].ID)
	require.NotNil(t, remaining[0].Role)
	assert.Equal(t, domain.RoleUtilisateur, remaining[0].Role.Name)
}

func TestUserRepository_EmailLookups(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(newTestDB(t))

	_, err := users.Save(ctx, domain.User{LastName: "Doe", FirstName: "Jane", Email: "Jane@Example.com", PasswordHash: "hash"})
	require.NoError(t, err)

	exists, err := users.ExistsByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = users.ExistsByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	found, err := users.FindByEmail(ctx, " JANE@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "hash", found.PasswordHash)
	assert.Nil(t, found.Role)

	_, err = users.FindByEmail(ctx, "john@example.com")
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = users.Save(ctx, domain.User{LastName: "Doe", FirstName: "Jane", Email: "Jane@Example.com", PasswordHash: "other"})
	require.Error(t, err)
}

func TestCategoryRepository_FindAllPropagatesQueryError(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectQuery(`SELECT id, name, color, created_at, modified_at FROM categories`).
		WillReturnError(errors.New("db is down"))

	repo := NewCategoryRepository(sqlx.NewDb(conn, "sqlite"))
	_, err = repo.FindAll(context.Background())
	require.EqualError(t, err, "db is down")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_DeleteRollsBackOnFailure(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM todos WHERE category_id = \?`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM categories WHERE id = \?`).
		WithArgs(int64(3)).
		WillReturnError(errors.New("locked"))
	mock.ExpectRollback()

	repo := NewCategoryRepository(sqlx.NewDb(conn, "sqlite"))
	err = repo.DeleteByID(context.Background(), 3)
	require.ErrorContains(t, err, "delete category: locked")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCount_UsesTable(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM roles`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	total, err := NewRoleRepository(sqlx.NewDb(conn, "sqlite")).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_WithinTx(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	tx := NewTransactor(db)

	boom := errors.New("boom")
	err := tx.WithinTx(ctx, func(ctx context.Context) error {
		_, err := categories.Save(ctx, domain.Category{Name: "Loisir", Color: "#FF0000"})
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)
	total, err := categories.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	err = tx.WithinTx(ctx, func(ctx context.Context) error {
		_, err := categories.Save(ctx, domain.Category{Name: "Loisir", Color: "#FF0000"})
		return err
	})
	require.NoError(t, err)
	total, err = categories.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}
