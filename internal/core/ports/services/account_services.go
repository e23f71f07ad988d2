package services

import (
	"context"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/dto"
)

// AccountReaderSvc defines read operations for the chart of accounts
type AccountReaderSvc interface {
	// GetAccountByID retrieves an account of a business by id.
	GetAccountByID(ctx context.Context, businessID string, accountID string) (*domain.Account, error)

	// GetAccountByCode retrieves an account of a business by its 4-digit code.
	GetAccountByCode(ctx context.Context, businessID string, code string) (*domain.Account, error)

	// ListAccounts lists the chart of accounts ordered by code.
	ListAccounts(ctx context.Context, businessID string, params dto.ListAccountsParams) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for the chart of accounts
type AccountWriterSvc interface {
	// CreateAccount validates and adds an account.
	CreateAccount(ctx context.Context, businessID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount changes name, subcategory or inventory role.
	UpdateAccount(ctx context.Context, businessID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// DeactivateAccount hides an account from new entries.
	DeactivateAccount(ctx context.Context, businessID string, accountID string, userID string) error

	// DeleteAccount soft-deletes an account. Bank-linked accounts are refused with apperrors.ErrConflict.
	DeleteAccount(ctx context.Context, businessID string, accountID string, userID string) error

	// CreateDefaultChart seeds the default chart, skipping codes already in use.
	CreateDefaultChart(ctx context.Context, businessID string, userID string) (created []domain.Account, skipped []string, err error)
}

// BankAccountCascadeSvc is called by the bank-account owner when one of its records is removed.
type BankAccountCascadeSvc interface {
	// RemoveBankLinkedAccounts deletes accounts backing the bank record that have
	// no journal activity and deactivates the rest.
	RemoveBankLinkedAccounts(ctx context.Context, businessID string, bankAccountID string, userID string) (*dto.BankAccountCascadeResponse, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	BankAccountCascadeSvc
}
