package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wishinsured/fx_backend/internal/apperrors"
)

// BaseRepository holds the shared connection pool and the transaction helper
// the concrete repositories build on.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// withTx runs fn inside a transaction, committing when fn returns nil and
// rolling back otherwise.
func (r *BaseRepository) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	// Rollback after a successful commit reports the transaction as closed;
	// that error is discarded.
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}
