package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves an account of a business by its id.
	FindAccountByID(ctx context.Context, businessID string, accountID string) (*domain.Account, error)

	// FindAccountByCode retrieves an account of a business by its 4-digit code.
	FindAccountByCode(ctx context.Context, businessID string, code string) (*domain.Account, error)

	// FindAccountsByIDs retrieves several accounts of a business keyed by id. Missing ids are absent from the map.
	FindAccountsByIDs(ctx context.Context, businessID string, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves every account of a business ordered by code.
	ListAccounts(ctx context.Context, businessID string) ([]domain.Account, error)

	// FindAccountsByBankAccountID retrieves the accounts backing an external bank record.
	FindAccountsByBankAccountID(ctx context.Context, businessID string, bankAccountID string) ([]domain.Account, error)

	// AccountHasActivity reports whether any journal line, draft or posted, references the account.
	AccountHasActivity(ctx context.Context, accountID string) (bool, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account. A code already used in the business yields apperrors.ErrDuplicate.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates name, subcategory and inventory role of an account.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error

	// DeleteAccount removes an account row. Callers must ensure it has no activity.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
