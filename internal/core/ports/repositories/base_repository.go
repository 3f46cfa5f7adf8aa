package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager exposes explicit transaction control to repositories that write
// several tables at once.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error

	// WithinTx runs fn inside a transaction. The transaction is committed when fn
	// returns nil and rolled back otherwise.
	WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}
