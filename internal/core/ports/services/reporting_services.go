package services

import (
	"context"
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingService derives balances and reports from posted entries on every call.
type ReportingService interface {
	// TrialBalance builds the trial balance over posted entries dated up to asOf (all when nil).
	TrialBalance(ctx context.Context, businessID string, asOf *time.Time) (*domain.TrialBalanceReport, error)

	// AccountBalance returns Σdebit − Σcredit over the account's posted lines.
	AccountBalance(ctx context.Context, businessID string, accountID string) (decimal.Decimal, error)

	// GeneralLedger builds the running-balance ledger of one account.
	GeneralLedger(ctx context.Context, businessID string, accountID string) (*domain.AccountLedger, error)

	// GeneralLedgerBook builds the ledger of every account with posted activity, ordered by code.
	GeneralLedgerBook(ctx context.Context, businessID string) ([]domain.AccountLedger, error)

	// ProfitAndLoss generates a profit and loss report for a specific period
	ProfitAndLoss(ctx context.Context, businessID string, from, to time.Time) (*domain.PAndLReport, error)

	// BalanceSheet generates a balance sheet report as of a specific date
	BalanceSheet(ctx context.Context, businessID string, asOf time.Time) (*domain.BalanceSheetReport, error)

	// CheckBooks reports unbalanced posted entries, duplicate references and trial balance drift.
	CheckBooks(ctx context.Context, businessID string) (*domain.IntegrityReport, error)
}
