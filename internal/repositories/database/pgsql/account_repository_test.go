package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	accountCols = []string{"account_id", "business_id", "code", "name", "account_type", "subcategory", "inventory_role", "bank_account_id", "is_active", "created_at", "created_by", "last_updated_at", "last_updated_by"}
	testTime    = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
)

func newAccountRepoMock(t *testing.T) (pgxmock.PgxPoolIface, *PgxAccountRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, newPgxAccountRepository(mock)
}

func TestPgxAccountRepository_FindAccountByID(t *testing.T) {
	mock, repo := newAccountRepoMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM accounts WHERE business_id = \$1 AND account_id = \$2`).
		WithArgs("biz-1", "acc-rm").
		WillReturnRows(pgxmock.NewRows(accountCols).AddRow(
			"acc-rm", "biz-1", "1200", "Raw Materials", models.AccountType("ASSET"), "Inventory",
			sql.NullString{String: "RAW_MATERIALS", Valid: true}, nil,
			true, testTime, "user-1", testTime, "user-1",
		))

	acc, err := repo.FindAccountByID(context.Background(), "biz-1", "acc-rm")
	require.NoError(t, err)
	assert.Equal(t, domain.Asset, acc.AccountType)
	require.NotNil(t, acc.InventoryRole)
	assert.Equal(t, domain.RoleRawMaterials, *acc.InventoryRole)
	assert.Nil(t, acc.BankAccountID)
	assert.False(t, acc.IsBankLinked())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxAccountRepository_FindAccountByID_NotFound(t *testing.T) {
	mock, repo := newAccountRepoMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM accounts WHERE business_id = \$1 AND account_id = \$2`).
		WithArgs("biz-1", "missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindAccountByID(context.Background(), "biz-1", "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxAccountRepository_ListAccountsOrderedByCode(t *testing.T) {
	mock, repo := newAccountRepoMock(t)

	bank := sql.NullString{String: "bank-7", Valid: true}
	mock.ExpectQuery(`SELECT (.+) FROM accounts WHERE business_id = \$1 ORDER BY code`).
		WithArgs("biz-1").
		WillReturnRows(pgxmock.NewRows(accountCols).
			AddRow("acc-cash", "biz-1", "1000", "Cash", models.AccountType("ASSET"), "", nil, bank, true, testTime, "user-1", testTime, "user-1").
			AddRow("acc-cap", "biz-1", "3000", "Capital", models.AccountType("EQUITY"), "", nil, nil, true, testTime, "user-1", testTime, "user-1"))

	accounts, err := repo.ListAccounts(context.Background(), "biz-1")
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.True(t, accounts[0].IsBankLinked())
	assert.Equal(t, "bank-7", *accounts[0].BankAccountID)
	assert.Equal(t, "3000", accounts[1].Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxAccountRepository_FindAccountsByIDs_Empty(t *testing.T) {
	mock, repo := newAccountRepoMock(t)

	got, err := repo.FindAccountsByIDs(context.Background(), "biz-1", nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet(), "no query for an empty id list")
}

func TestPgxAccountRepository_SaveAccount(t *testing.T) {
	role := domain.RoleWIP
	acc := domain.Account{
		AccountID:     "acc-wip",
		BusinessID:    "biz-1",
		Code:          "1220",
		Name:          "Work in Progress",
		AccountType:   domain.Asset,
		InventoryRole: &role,
		IsActive:      true,
		AuditFields:   domain.AuditFields{CreatedAt: testTime, CreatedBy: "user-1", LastUpdatedAt: testTime, LastUpdatedBy: "user-1"},
	}
	insert := `INSERT INTO accounts`

	tests := []struct {
		name    string
		dbErr   error
		wantErr error
		wantMsg string
	}{
		{name: "ok"},
		{name: "duplicate code", dbErr: &pgconn.PgError{Code: "23505", ConstraintName: "accounts_business_code_key"}, wantErr: apperrors.ErrDuplicate, wantMsg: "account code 1220"},
		{name: "role taken", dbErr: &pgconn.PgError{Code: "23505", ConstraintName: "accounts_business_role_key"}, wantErr: apperrors.ErrDuplicate, wantMsg: "inventory role WIP"},
		{name: "connection lost", dbErr: errors.New("conn closed"), wantErr: apperrors.ErrInternal, wantMsg: "failed to save account acc-wip"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, repo := newAccountRepoMock(t)

			exec := mock.ExpectExec(insert).WithArgs(
				"acc-wip", "biz-1", "1220", "Work in Progress", models.AccountType("ASSET"), "",
				sql.NullString{String: "WIP", Valid: true}, sql.NullString{},
				true, testTime, "user-1", testTime, "user-1",
			)
			if tt.dbErr != nil {
				exec.WillReturnError(tt.dbErr)
			} else {
				exec.WillReturnResult(pgxmock.NewResult("INSERT", 1))
			}

			err := repo.SaveAccount(context.Background(), acc)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), tt.wantMsg)
				var appErr *apperrors.AppError
				if errors.As(err, &appErr) {
					assert.Equal(t, 500, appErr.Code)
				}
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPgxAccountRepository_DeleteAccount(t *testing.T) {
	t.Run("referenced by lines", func(t *testing.T) {
		mock, repo := newAccountRepoMock(t)
		mock.ExpectExec(`DELETE FROM accounts WHERE account_id = \$1`).
			WithArgs("acc-1").
			WillReturnError(&pgconn.PgError{Code: "23503"})

		assert.ErrorIs(t, repo.DeleteAccount(context.Background(), "acc-1"), apperrors.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		mock, repo := newAccountRepoMock(t)
		mock.ExpectExec(`DELETE FROM accounts WHERE account_id = \$1`).
			WithArgs("acc-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.DeleteAccount(context.Background(), "acc-1"), apperrors.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPgxAccountRepository_AccountHasActivity(t *testing.T) {
	mock, repo := newAccountRepoMock(t)
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("acc-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	active, err := repo.AccountHasActivity(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.True(t, active)
	assert.NoError(t, mock.ExpectationsWereMet())
}
