package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/Timomoulin/Todo0/internal/core/domain"
	"github.com/Timomoulin/Todo0/internal/core/ports"
)

const rolesTable = "roles"

type RoleRepository struct {
	db *sqlx.DB
}

type roleRow struct {
	ID   uint64 `db:"id"`
	Name string `db:"name"`
}

var _ ports.RoleRepository = (*RoleRepository)(nil)

func NewRoleRepository(db *sqlx.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) FindAll(ctx context.Context) ([]domain.Role, error) {
	var rows []roleRow
	if err := selectAll(ctx, conn(ctx, r.db), &rows, sq.Select("id", "name").From(rolesTable).OrderBy("id")); err != nil {
		return nil, err
	}

	roles := make([]domain.Role, 0, len(rows))
	for _, row := range rows {
		roles = append(roles, domain.Role{ID: row.ID, Name: row.Name})
	}
	return roles, nil
}

func (r *RoleRepository) FindByID(ctx context.Context, id uint64) (domain.Role, error) {
	var row roleRow
	builder := sq.Select("id", "name").From(rolesTable).Where(squirrel.Eq{"id": id})
	if err := selectOne(ctx, conn(ctx, r.db), &row, builder, domain.ErrRoleNotFound); err != nil {
		return domain.Role{}, err
	}
	return domain.Role{ID: row.ID, Name: row.Name}, nil
}

func (r *RoleRepository) FindByNameIgnoreCase(ctx context.Context, name string) (domain.Role, error) {
	var row roleRow
	builder := sq.Select("id", "name").From(rolesTable).
		Where(squirrel.Expr("LOWER(name) = ?", strings.ToLower(name))).
		OrderBy("id").
		Limit(1)
	if err := selectOne(ctx, conn(ctx, r.db), &row, builder, domain.ErrRoleNotFound); err != nil {
		return domain.Role{}, err
	}
	return domain.Role{ID: row.ID, Name: row.Name}, nil
}

func (r *RoleRepository) Save(ctx context.Context, role domain.Role) (domain.Role, error) {
	if role.ID == 0 {
		id, err := insertID(ctx, conn(ctx, r.db), sq.Insert(rolesTable).Columns("name").Values(role.Name))
		if err != nil {
			return domain.Role{}, fmt.Errorf("insert role: %w", err)
		}
		role.ID = id
		return role, nil
	}

	// A rename to the same value matches no changed row on mysql, so the
	// existence check is done separately.
	if _, err := r.FindByID(ctx, role.ID); err != nil {
		return domain.Role{}, err
	}
	if _, err := exec(ctx, conn(ctx, r.db), sq.Update(rolesTable).Set("name", role.Name).Where(squirrel.Eq{"id": role.ID})); err != nil {
		return domain.Role{}, fmt.Errorf("update role: %w", err)
	}
	return role, nil
}

// DeleteByID removes the role together with the users holding it.
func (r *RoleRepository) DeleteByID(ctx context.Context, id uint64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := exec(ctx, tx, sq.Delete(usersTable).Where(squirrel.Eq{"role_id": id})); err != nil {
			return fmt.Errorf("delete role users: %w", err)
		}
		if _, err := exec(ctx, tx, sq.Delete(rolesTable).Where(squirrel.Eq{"id": id})); err != nil {
			return fmt.Errorf("delete role: %w", err)
		}
		return nil
	})
}

func (r *RoleRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, conn(ctx, r.db), rolesTable)
}
