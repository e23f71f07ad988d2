package pgsql

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/SscSPs/bizledger/internal/apperrors"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lockSQL = regexp.QuoteMeta(`SELECT pg_advisory_xact_lock(hashtext($1))`)

func newTxMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestTxManager_CommitsUnderBusinessLock(t *testing.T) {
	mock := newTxMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(lockSQL).WithArgs("biz-1").WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM journal_entries`).
		WithArgs("biz-1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectCommit()

	m := NewTxManager(mock, 0)
	err := m.RunInBusinessTx(context.Background(), "biz-1", func(ctx context.Context, repos portsrepo.TxRepositories) error {
		n, err := repos.Journals.CountJournalEntries(ctx, "biz-1")
		assert.Zero(t, n)
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	mock := newTxMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(lockSQL).WithArgs("biz-1").WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := NewTxManager(mock, time.Second).RunInBusinessTx(context.Background(), "biz-1", func(context.Context, portsrepo.TxRepositories) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet(), "non-retryable errors are not retried")
}

func TestTxManager_RetriesSerializationFailure(t *testing.T) {
	mock := newTxMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(lockSQL).WithArgs("biz-1").WillReturnError(&pgconn.PgError{Code: "40001"})
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec(lockSQL).WithArgs("biz-1").WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectCommit()

	calls := 0
	err := NewTxManager(mock, 5*time.Second).RunInBusinessTx(context.Background(), "biz-1", func(context.Context, portsrepo.TxRepositories) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_ConcurrencyErrorWhenRetriesExhausted(t *testing.T) {
	mock := newTxMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(lockSQL).WithArgs("biz-1").WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectRollback()

	err := NewTxManager(mock, 0).RunInBusinessTx(context.Background(), "biz-1", func(context.Context, portsrepo.TxRepositories) error {
		return &pgconn.PgError{Code: "40P01"}
	})
	assert.ErrorIs(t, err, apperrors.ErrConcurrency)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewRepositoryProvider(t *testing.T) {
	mock := newTxMock(t)
	repos := NewRepositoryProvider(mock, time.Second)

	assert.IsType(t, &PgxAccountRepository{}, repos.AccountRepo)
	assert.IsType(t, &PgxJournalRepository{}, repos.JournalRepo)
	assert.IsType(t, &TxManager{}, repos.TxManager)
}
