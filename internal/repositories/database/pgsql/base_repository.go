package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/adops_erp/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres error codes with a meaning for the application.
const (
	pgUniqueViolation      = "23505"
	pgCheckViolation       = "23514"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, translateError("begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return translateError("commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return translateError("rollback transaction", err)
	}
	return nil
}

// withinTx runs fn in a transaction, committing on nil and rolling back otherwise.
func withinTx[U any](ctx context.Context, r *BaseRepository, wrap func(pgx.Tx) U, fn func(uow U) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Will be ignored if transaction is committed successfully
	defer r.Rollback(context.WithoutCancel(ctx), tx)

	if err := fn(wrap(tx)); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// translateError maps driver errors onto application errors. Serialization
// failures, deadlocks, lock timeouts and dropped connections are transient.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w (%s)", op, apperrors.ErrDuplicate, pgErr.ConstraintName)
		case pgCheckViolation:
			return fmt.Errorf("%s: %w: constraint %s", op, apperrors.ErrValidation, pgErr.ConstraintName)
		case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
			return apperrors.NewStorageError(op, true, err)
		}
		return apperrors.NewStorageError(op, false, err)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewStorageError(op, false, err)
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return apperrors.NewStorageError(op, true, err)
	}
	return apperrors.NewStorageError(op, false, err)
}
