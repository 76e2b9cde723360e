package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/Timomoulin/Todo0/internal/core/domain"
	"github.com/Timomoulin/Todo0/internal/core/ports"
)

const usersTable = "users"

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID           uint64         `db:"id"`
	LastName     string         `db:"last_name"`
	FirstName    string         `db:"first_name"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	RoleID       sql.NullInt64  `db:"role_id"`
	CreatedAt    time.Time      `db:"created_at"`
	ModifiedAt   time.Time      `db:"modified_at"`
	RoleName     sql.NullString `db:"role_name"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func selectUsers() squirrel.SelectBuilder {
	return sq.Select(
		"u.id", "u.last_name", "u.first_name", "u.email", "u.password_hash", "u.role_id",
		"u.created_at", "u.modified_at", "r.name AS role_name",
	).
		From(usersTable + " u").
		LeftJoin(rolesTable + " r ON r.id = u.role_id")
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	if err := selectAll(ctx, conn(ctx, r.db), &rows, selectUsers().OrderBy("u.id")); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toDomain())
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (domain.User, error) {
	var row userRow
	if err := selectOne(ctx, conn(ctx, r.db), &row, selectUsers().Where(squirrel.Eq{"u.id": id}), domain.ErrUserNotFound); err != nil {
		return domain.User{}, err
	}
	return row.toDomain(), nil
}

// FindByEmail matches the address case-insensitively.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var row userRow
	builder := selectUsers().Where(squirrel.Expr("LOWER(u.email) = ?", normalizeEmail(email)))
	if err := selectOne(ctx, conn(ctx, r.db), &row, builder, domain.ErrUserNotFound); err != nil {
		return domain.User{}, err
	}
	return row.toDomain(), nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var total int64
	query, args, err := sq.Select("COUNT(*)").From(usersTable).
		Where(squirrel.Expr("LOWER(email) = ?", normalizeEmail(email))).ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}
	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &total, query, args...); err != nil {
		return false, fmt.Errorf("exists by email: %w", err)
	}
	return total > 0, nil
}

// Save inserts the user when it has no id and updates it otherwise. Only
// the password hash is stored.
func (r *UserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	stamp := now()
	user.Email = strings.TrimSpace(user.Email)

	if user.ID == 0 {
		id, err := insertID(ctx, conn(ctx, r.db), sq.Insert(usersTable).
			Columns("last_name", "first_name", "email", "password_hash", "role_id", "created_at", "modified_at").
			Values(user.LastName, user.FirstName, user.Email, user.PasswordHash, nullID(user.RoleID), stamp, stamp))
		if err != nil {
			return domain.User{}, fmt.Errorf("insert user: %w", err)
		}
		return r.FindByID(ctx, id)
	}

	err := updateOne(ctx, conn(ctx, r.db), sq.Update(usersTable).
		Set("last_name", user.LastName).
		Set("first_name", user.FirstName).
		Set("email", user.Email).
		Set("password_hash", user.PasswordHash).
		Set("role_id", nullID(user.RoleID)).
		Set("modified_at", stamp).
		Where(squirrel.Eq{"id": user.ID}), domain.ErrUserNotFound)
	if err != nil {
		return domain.User{}, err
	}
	return r.FindByID(ctx, user.ID)
}

func (r *UserRepository) DeleteByID(ctx context.Context, id uint64) error {
	if _, err := exec(ctx, conn(ctx, r.db), sq.Delete(usersTable).Where(squirrel.Eq{"id": id})); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, conn(ctx, r.db), usersTable)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (row userRow) toDomain() domain.User {
	user := domain.User{
		ID:           row.ID,
		LastName:     row.LastName,
		FirstName:    row.FirstName,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
		ModifiedAt:   row.ModifiedAt,
	}

	if row.RoleID.Valid {
		roleID := uint64(row.RoleID.Int64)
		user.RoleID = &roleID
		if row.RoleName.Valid {
			user.Role = &domain.Role{ID: roleID, Name: row.RoleName.String}
		}
	}

	return user
}
