package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, businessID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByCode(ctx context.Context, businessID string, code string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, businessID string, params dto.ListAccountsParams) ([]domain.Account, error) {
	args := m.Called(ctx, businessID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, businessID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, businessID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, businessID string, accountID string, userID string) error {
	return m.Called(ctx, businessID, accountID, userID).Error(0)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, businessID string, accountID string, userID string) error {
	return m.Called(ctx, businessID, accountID, userID).Error(0)
}

func (m *MockAccountService) CreateDefaultChart(ctx context.Context, businessID string, userID string) ([]domain.Account, []string, error) {
	args := m.Called(ctx, businessID, userID)
	created, _ := args.Get(0).([]domain.Account)
	skipped, _ := args.Get(1).([]string)
	return created, skipped, args.Error(2)
}

func (m *MockAccountService) RemoveBankLinkedAccounts(ctx context.Context, businessID string, bankAccountID string, userID string) (*dto.BankAccountCascadeResponse, error) {
	args := m.Called(ctx, businessID, bankAccountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BankAccountCascadeResponse), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) entry(args mock.Arguments) (*domain.JournalEntry, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) GetJournalEntry(ctx context.Context, businessID string, entryID string) (*domain.JournalEntry, error) {
	return m.entry(m.Called(ctx, businessID, entryID))
}

func (m *MockJournalService) ListJournalEntries(ctx context.Context, businessID string, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	args := m.Called(ctx, businessID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalEntriesResponse), args.Error(1)
}

func (m *MockJournalService) CreateJournalEntry(ctx context.Context, businessID string, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	return m.entry(m.Called(ctx, businessID, req, userID))
}

func (m *MockJournalService) UpdateDraftJournalEntry(ctx context.Context, businessID string, entryID string, req dto.UpdateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	return m.entry(m.Called(ctx, businessID, entryID, req, userID))
}

func (m *MockJournalService) DeleteDraftJournalEntry(ctx context.Context, businessID string, entryID string, userID string) error {
	return m.Called(ctx, businessID, entryID, userID).Error(0)
}

func (m *MockJournalService) PostJournalEntry(ctx context.Context, businessID string, entryID string, userID string) (*domain.JournalEntry, error) {
	return m.entry(m.Called(ctx, businessID, entryID, userID))
}

func (m *MockJournalService) ReverseJournalEntry(ctx context.Context, businessID string, entryID string, req dto.ReverseJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	return m.entry(m.Called(ctx, businessID, entryID, req, userID))
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TrialBalance(ctx context.Context, businessID string, asOf *time.Time) (*domain.TrialBalanceReport, error) {
	args := m.Called(ctx, businessID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalanceReport), args.Error(1)
}

func (m *MockReportingService) AccountBalance(ctx context.Context, businessID string, accountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, businessID, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingService) GeneralLedger(ctx context.Context, businessID string, accountID string) (*domain.AccountLedger, error) {
	args := m.Called(ctx, businessID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountLedger), args.Error(1)
}

func (m *MockReportingService) GeneralLedgerBook(ctx context.Context, businessID string) ([]domain.AccountLedger, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountLedger), args.Error(1)
}

func (m *MockReportingService) ProfitAndLoss(ctx context.Context, businessID string, from, to time.Time) (*domain.PAndLReport, error) {
	args := m.Called(ctx, businessID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PAndLReport), args.Error(1)
}

func (m *MockReportingService) BalanceSheet(ctx context.Context, businessID string, asOf time.Time) (*domain.BalanceSheetReport, error) {
	args := m.Called(ctx, businessID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetReport), args.Error(1)
}

func (m *MockReportingService) CheckBooks(ctx context.Context, businessID string) (*domain.IntegrityReport, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IntegrityReport), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)
