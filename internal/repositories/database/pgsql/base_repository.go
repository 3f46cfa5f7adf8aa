package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/SscSPs/monetary_correction_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository holds the pool and the transaction helpers shared by repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, dbError("failed to begin transaction", err)
	}
	return tx, nil
}

func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return dbError("failed to commit transaction", err)
	}
	return nil
}

// Rollback is a no-op on a transaction that was already committed.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return dbError("failed to rollback transaction", err)
	}
	return nil
}

func (r *BaseRepository) WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}
	return r.Commit(ctx, tx)
}

func dbError(msg string, err error) *apperrors.AppError {
	return apperrors.NewAppError(http.StatusInternalServerError, msg, err)
}
