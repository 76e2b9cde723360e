package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Timomoulin/Todo0/internal/core/ports"
)

// Transactor runs a unit of work in one database transaction. Repository
// calls made with the context passed to fn join that transaction.
type Transactor struct {
	db *sqlx.DB
}

var _ ports.Transactor = (*Transactor)(nil)

func NewTransactor(db *sqlx.DB) *Transactor {
	return &Transactor{db: db}
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, t.db, func(tx *sqlx.Tx) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
