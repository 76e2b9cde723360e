package ports

import "context"

// Transactor groups repository calls into a single transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
