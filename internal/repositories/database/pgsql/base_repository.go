package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bizledger/internal/apperrors"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgx shared by a pool and a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// DB is a Querier that can also open transactions.
type DB interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

var (
	_ DB      = (*pgxpool.Pool)(nil)
	_ Querier = (pgx.Tx)(nil)
)

const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func pgConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// TxManager serializes writers of one business with a transaction-scoped advisory lock.
type TxManager struct {
	db              DB
	retryMaxElapsed time.Duration
}

var _ portsrepo.TransactionManager = (*TxManager)(nil)

// NewTxManager returns a TxManager. Serialization failures and deadlocks are retried
// with exponential backoff for up to retryMaxElapsed; zero disables retries.
func NewTxManager(db DB, retryMaxElapsed time.Duration) *TxManager {
	return &TxManager{db: db, retryMaxElapsed: retryMaxElapsed}
}

func (m *TxManager) newBackOff(ctx context.Context) backoff.BackOff {
	if m.retryMaxElapsed <= 0 {
		return backoff.WithContext(&backoff.StopBackOff{}, ctx)
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 10 * time.Millisecond
	b.MaxInterval = 250 * time.Millisecond
	b.MaxElapsedTime = m.retryMaxElapsed
	return backoff.WithContext(b, ctx)
}

func isRetryable(err error) bool {
	switch pgErrorCode(err) {
	case pgSerializationFailure, pgDeadlockDetected:
		return true
	}
	return pgconn.SafeToRetry(err)
}

// RunInBusinessTx runs fn in one database transaction holding the business's advisory lock.
func (m *TxManager) RunInBusinessTx(ctx context.Context, businessID string, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	attempts := 0
	err := backoff.Retry(func() error {
		attempts++
		err := m.runOnce(ctx, businessID, fn)
		if err == nil {
			return nil
		}
		if isRetryable(err) {
			slog.WarnContext(ctx, "Retrying business transaction", "businessID", businessID, "attempt", attempts, "error", err)
			return err
		}
		return backoff.Permanent(err)
	}, m.newBackOff(ctx))
	if err != nil && isRetryable(err) {
		return fmt.Errorf("%w: business %s after %d attempts: %v", apperrors.ErrConcurrency, businessID, attempts, err)
	}
	return err
}

func (m *TxManager) runOnce(ctx context.Context, businessID string, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) (err error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}

	committed := false
	defer func() {
		if p := recover(); p != nil {
			rollback(ctx, tx)
			panic(p)
		}
		if !committed {
			rollback(ctx, tx)
		}
	}()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, businessID); err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to lock business %s", businessID), err)
	}

	if err := fn(ctx, portsrepo.TxRepositories{
		Accounts: newPgxAccountRepository(tx),
		Journals: newPgxJournalRepository(tx),
	}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	committed = true
	return nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.WarnContext(ctx, "Failed to roll back transaction", "error", err)
	}
}
