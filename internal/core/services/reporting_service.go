package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/utils/accounting"
	"github.com/panjf2000/ants/v2"
	"github.com/shopspring/decimal"
)

const defaultLedgerWorkers = 4

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	accountRepo   portsrepo.AccountReader
	journalRepo   portsrepo.JournalReader
	ledgerWorkers int
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithLedgerWorkers bounds the number of ledgers built concurrently for the ledger book.
func WithLedgerWorkers(n int) ReportingServiceOption {
	return func(s *reportingService) {
		if n > 0 {
			s.ledgerWorkers = n
		}
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(accountRepo portsrepo.AccountReader, journalRepo portsrepo.JournalReader, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		accountRepo:   accountRepo,
		journalRepo:   journalRepo,
		ledgerWorkers: defaultLedgerWorkers,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// loadBooks reads the chart and every entry of the business.
func (s *reportingService) loadBooks(ctx context.Context, businessID string) ([]domain.Account, []domain.JournalEntry, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for report")
		return nil, nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	entries, err := s.journalRepo.ListJournalEntries(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries for report")
		return nil, nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return accounts, entries, nil
}

// TrialBalance generates a trial balance report as of a specific date
func (s *reportingService) TrialBalance(ctx context.Context, businessID string, asOf *time.Time) (*domain.TrialBalanceReport, error) {
	accounts, entries, err := s.loadBooks(ctx, businessID)
	if err != nil {
		return nil, err
	}

	report := accounting.BuildTrialBalance(accounts, accounting.PostedAsOf(entries, asOf))
	report.AsOf = asOf
	if !report.IsBalanced {
		s.GetLogger(ctx).Warn("Trial balance does not balance",
			slog.String("business_id", businessID),
			slog.String("difference", report.Difference.String()))
	}

	s.LogDebug(ctx, "Trial balance generated",
		slog.Int("row_count", len(report.Rows)),
		slog.Int("entries", report.EntriesCount))
	return &report, nil
}

func (s *reportingService) AccountBalance(ctx context.Context, businessID string, accountID string) (decimal.Decimal, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, businessID, accountID); err != nil {
		return decimal.Zero, fmt.Errorf("failed to get account %s: %w", accountID, err)
	}
	balance, err := s.journalRepo.SumPostedLinesForAccount(ctx, businessID, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum account balance", slog.String("account_id", accountID))
		return decimal.Zero, fmt.Errorf("failed to compute balance of account %s: %w", accountID, err)
	}
	return balance, nil
}

func (s *reportingService) GeneralLedger(ctx context.Context, businessID string, accountID string) (*domain.AccountLedger, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, businessID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account %s: %w", accountID, err)
	}
	entries, err := s.journalRepo.ListJournalEntries(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries for ledger", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}

	ledger := accounting.BuildGeneralLedger(*account, entries)
	return &ledger, nil
}

func (s *reportingService) GeneralLedgerBook(ctx context.Context, businessID string) ([]domain.AccountLedger, error) {
	accounts, entries, err := s.loadBooks(ctx, businessID)
	if err != nil {
		return nil, err
	}

	touched := make(map[string]bool)
	for _, e := range entries {
		if !e.IsPosted {
			continue
		}
		for _, l := range e.Lines {
			touched[l.AccountID] = true
		}
	}
	active := make([]domain.Account, 0, len(touched))
	for _, acc := range accounts {
		if touched[acc.AccountID] {
			active = append(active, acc)
		}
	}

	pool, err := ants.NewPool(s.ledgerWorkers)
	if err != nil {
		return nil, fmt.Errorf("failed to create ledger worker pool: %w", err)
	}
	defer pool.Release()

	ledgers := make([]domain.AccountLedger, len(active))
	var wg sync.WaitGroup
	for i := range active {
		i := i
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			ledgers[i] = accounting.BuildGeneralLedger(active[i], entries)
		}); err != nil {
			wg.Done()
			wg.Wait()
			s.LogError(ctx, err, "Failed to submit ledger job", slog.String("account_id", active[i].AccountID))
			return nil, fmt.Errorf("failed to build ledger book: %w", err)
		}
	}
	wg.Wait()

	s.LogDebug(ctx, "Ledger book generated", slog.Int("accounts", len(ledgers)), slog.Int("workers", s.ledgerWorkers))
	return ledgers, nil
}

// ProfitAndLoss generates a profit and loss report for a specific period
func (s *reportingService) ProfitAndLoss(ctx context.Context, businessID string, from, to time.Time) (*domain.PAndLReport, error) {
	accounts, entries, err := s.loadBooks(ctx, businessID)
	if err != nil {
		return nil, err
	}

	tb := accounting.BuildTrialBalance(accounts, accounting.PostedBetween(entries, from, to))
	report := accounting.BuildProfitAndLoss(tb.Rows)

	s.LogDebug(ctx, "Profit and loss report generated",
		slog.String("from", from.Format(time.RFC3339)),
		slog.String("to", to.Format(time.RFC3339)),
		slog.String("net_profit", report.NetProfit.String()))
	return &report, nil
}

// BalanceSheet generates a balance sheet report as of a specific date
func (s *reportingService) BalanceSheet(ctx context.Context, businessID string, asOf time.Time) (*domain.BalanceSheetReport, error) {
	accounts, entries, err := s.loadBooks(ctx, businessID)
	if err != nil {
		return nil, err
	}

	tb := accounting.BuildTrialBalance(accounts, accounting.PostedAsOf(entries, &asOf))
	report := accounting.BuildBalanceSheet(tb.Rows)
	if !report.IsBalanced {
		s.GetLogger(ctx).Warn("Balance sheet does not balance",
			slog.String("business_id", businessID),
			slog.String("assets", report.TotalAssets.String()),
			slog.String("liabilities_and_equity", report.TotalLiabilities.Add(report.TotalEquity).String()))
	}
	return &report, nil
}

func (s *reportingService) CheckBooks(ctx context.Context, businessID string) (*domain.IntegrityReport, error) {
	accounts, entries, err := s.loadBooks(ctx, businessID)
	if err != nil {
		return nil, err
	}

	report := accounting.CheckBooks(businessID, accounts, entries)
	if !report.Healthy() {
		s.GetLogger(ctx).Warn("Books integrity check found defects",
			slog.String("business_id", businessID),
			slog.Int("unbalanced_entries", len(report.UnbalancedEntries)),
			slog.Int("duplicate_references", len(report.DuplicateReferences)),
			slog.Bool("trial_balance_balanced", report.TrialBalanceBalanced))
	}
	return &report, nil
}
