package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	"github.com/SscSPs/bizledger/internal/models"
	"github.com/SscSPs/bizledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const accountColumns = `account_id, business_id, code, name, account_type, subcategory, inventory_role, bank_account_id, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	db Querier
}

func newPgxAccountRepository(db Querier) *PgxAccountRepository {
	return &PgxAccountRepository{db: db}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAccount(row rowScanner) (domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.BusinessID,
		&m.Code,
		&m.Name,
		&m.AccountType,
		&m.Subcategory,
		&m.InventoryRole,
		&m.BankAccountID,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Account{}, err
	}
	return mapping.ToDomainAccount(m), nil
}

func (r *PgxAccountRepository) findOne(ctx context.Context, what string, query string, args ...interface{}) (*domain.Account, error) {
	acc, err := scanAccount(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, what)
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find account %s", what), err)
	}
	return &acc, nil
}

func (r *PgxAccountRepository) queryAccounts(ctx context.Context, query string, args ...interface{}) ([]domain.Account, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return accounts, nil
}

// FindAccountByID retrieves an account of a business by its id.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, businessID string, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE business_id = $1 AND account_id = $2;`
	return r.findOne(ctx, accountID, query, businessID, accountID)
}

// FindAccountByCode retrieves an account of a business by its code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, businessID string, code string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE business_id = $1 AND code = $2;`
	return r.findOne(ctx, "with code "+code, query, businessID, code)
}

// FindAccountsByIDs retrieves several accounts keyed by id. Ids that are not found are absent from the map.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, businessID string, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE business_id = $1 AND account_id = ANY($2);`
	accounts, err := r.queryAccounts(ctx, query, businessID, accountIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		byID[acc.AccountID] = acc
	}
	return byID, nil
}

// ListAccounts retrieves every account of a business ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, businessID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE business_id = $1 ORDER BY code, account_id;`
	return r.queryAccounts(ctx, query, businessID)
}

// FindAccountsByBankAccountID retrieves the accounts mirroring an external bank record.
func (r *PgxAccountRepository) FindAccountsByBankAccountID(ctx context.Context, businessID string, bankAccountID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE business_id = $1 AND bank_account_id = $2 ORDER BY code, account_id;`
	return r.queryAccounts(ctx, query, businessID, bankAccountID)
}

// AccountHasActivity reports whether any journal line references the account.
func (r *PgxAccountRepository) AccountHasActivity(ctx context.Context, accountID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM journal_lines WHERE account_id = $1);`, accountID).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, fmt.Sprintf("failed to check activity of account %s", accountID), err)
	}
	return exists, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db.Exec(ctx, query,
		m.AccountID,
		m.BusinessID,
		m.Code,
		m.Name,
		m.AccountType,
		m.Subcategory,
		m.InventoryRole,
		m.BankAccountID,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			if pgConstraint(err) == "accounts_business_role_key" {
				return fmt.Errorf("%w: inventory role %s is already assigned", apperrors.ErrDuplicate, m.InventoryRole.String)
			}
			return fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, m.Code)
		}
		return apperrors.NewAppError(500, fmt.Sprintf("failed to save account %s", m.AccountID), err)
	}
	return nil
}

// UpdateAccount updates name, subcategory and inventory role.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		UPDATE accounts
		SET name = $3, subcategory = $4, inventory_role = $5, last_updated_at = $6, last_updated_by = $7
		WHERE business_id = $1 AND account_id = $2;
	`
	tag, err := r.db.Exec(ctx, query,
		m.BusinessID,
		m.AccountID,
		m.Name,
		m.Subcategory,
		m.InventoryRole,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return fmt.Errorf("%w: inventory role %s is already assigned", apperrors.ErrDuplicate, m.InventoryRole.String)
		}
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update account %s", m.AccountID), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, m.AccountID)
	}
	return nil
}

// DeactivateAccount marks an account as inactive.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	query := `UPDATE accounts SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3 WHERE account_id = $1;`
	tag, err := r.db.Exec(ctx, query, accountID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to deactivate account %s", accountID), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return nil
}

// DeleteAccount removes an account row.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("%w: account %s is referenced by journal lines", apperrors.ErrConflict, accountID)
		}
		return apperrors.NewAppError(500, fmt.Sprintf("failed to delete account %s", accountID), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return nil
}
