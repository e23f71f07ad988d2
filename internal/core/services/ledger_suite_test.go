package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/core/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/SscSPs/bizledger/internal/platform/config"
	"github.com/SscSPs/bizledger/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const (
	testBusiness = "biz-1"
	owner        = "user-1"
	otherUser    = "user-2"
)

var fixedNow = time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

// LedgerSuite runs services against the in-memory store seeded with the default chart.
type LedgerSuite struct {
	suite.Suite
	ctx   context.Context
	repos portsrepo.RepositoryProvider
	svc   *portssvc.ServiceContainer
	ids   map[string]string // account code -> id
}

func (s *LedgerSuite) SetupTest() {
	s.ctx = context.Background()
	s.repos = memory.NewRepositoryProvider(memory.NewStore())
	s.svc = services.NewServiceContainer(&config.Config{LedgerWorkers: 2}, s.repos,
		services.WithClock(func() time.Time { return fixedNow }))

	created, skipped, err := s.svc.Account.CreateDefaultChart(s.ctx, testBusiness, owner)
	s.Require().NoError(err)
	s.Require().Empty(skipped)

	s.ids = make(map[string]string, len(created))
	for _, acc := range created {
		s.ids[acc.Code] = acc.AccountID
	}
}

func amt(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func (s *LedgerSuite) dr(code, amount string) dto.JournalLineRequest {
	s.Require().Contains(s.ids, code)
	return dto.JournalLineRequest{AccountID: s.ids[code], DebitAmount: amt(amount)}
}

func (s *LedgerSuite) cr(code, amount string) dto.JournalLineRequest {
	s.Require().Contains(s.ids, code)
	return dto.JournalLineRequest{AccountID: s.ids[code], CreditAmount: amt(amount)}
}

func (s *LedgerSuite) create(post bool, date time.Time, lines ...dto.JournalLineRequest) (*domain.JournalEntry, error) {
	return s.svc.Journal.CreateJournalEntry(s.ctx, testBusiness, dto.CreateJournalEntryRequest{
		EntryDate: date,
		Lines:     lines,
		Post:      post,
	}, owner)
}

func (s *LedgerSuite) mustPost(date time.Time, lines ...dto.JournalLineRequest) *domain.JournalEntry {
	e, err := s.create(true, date, lines...)
	s.Require().NoError(err)
	return e
}

func (s *LedgerSuite) balance(code string) decimal.Decimal {
	b, err := s.svc.Reporting.AccountBalance(s.ctx, testBusiness, s.ids[code])
	s.Require().NoError(err)
	return b
}

func (s *LedgerSuite) assertBalance(code, want string) {
	got := s.balance(code)
	s.True(amt(want).Equal(got), "account %s: want %s, got %s", code, want, got)
}

func (s *LedgerSuite) entryCount() int {
	n, err := s.repos.JournalRepo.CountJournalEntries(s.ctx, testBusiness)
	s.Require().NoError(err)
	return n
}

func march(day int) time.Time {
	return time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC)
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerSuite))
}
