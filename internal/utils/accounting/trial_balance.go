package accounting

import (
	"sort"
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostedAsOf keeps posted entries dated on or before asOf, preserving order.
// A nil asOf keeps every posted entry.
func PostedAsOf(entries []domain.JournalEntry, asOf *time.Time) []domain.JournalEntry {
	posted := make([]domain.JournalEntry, 0, len(entries))
	for _, e := range entries {
		if !e.IsPosted {
			continue
		}
		if asOf != nil && e.EntryDate.After(*asOf) {
			continue
		}
		posted = append(posted, e)
	}
	return posted
}

// BuildTrialBalance derives one row per account from the posted entries.
// Accounts with no activity get a zero row. Lines pointing at accounts that are
// not in accounts still get a row so stray data shows up in the totals.
func BuildTrialBalance(accounts []domain.Account, entries []domain.JournalEntry) domain.TrialBalanceReport {
	rowsByID := make(map[string]*domain.TrialBalanceRow, len(accounts))
	for _, acc := range accounts {
		rowsByID[acc.AccountID] = &domain.TrialBalanceRow{
			AccountID:     acc.AccountID,
			AccountCode:   acc.Code,
			AccountName:   acc.Name,
			AccountType:   acc.AccountType,
			DebitBalance:  decimal.Zero,
			CreditBalance: decimal.Zero,
		}
	}

	postedCount := 0
	for _, e := range entries {
		if !e.IsPosted {
			continue
		}
		postedCount++
		for _, l := range e.Lines {
			row, ok := rowsByID[l.AccountID]
			if !ok {
				row = &domain.TrialBalanceRow{
					AccountID:     l.AccountID,
					AccountCode:   l.AccountCode,
					AccountName:   l.AccountName,
					DebitBalance:  decimal.Zero,
					CreditBalance: decimal.Zero,
				}
				rowsByID[l.AccountID] = row
			}
			row.DebitBalance = row.DebitBalance.Add(l.DebitAmount)
			row.CreditBalance = row.CreditBalance.Add(l.CreditAmount)
		}
	}

	report := domain.TrialBalanceReport{
		Rows:         make([]domain.TrialBalanceRow, 0, len(rowsByID)),
		TotalDebit:   decimal.Zero,
		TotalCredit:  decimal.Zero,
		EntriesCount: postedCount,
	}
	for _, row := range rowsByID {
		row.NetBalance = row.DebitBalance.Sub(row.CreditBalance)
		row.DisplayDebit = maxZero(row.NetBalance)
		row.DisplayCredit = maxZero(row.NetBalance.Neg())
		report.TotalDebit = report.TotalDebit.Add(row.DisplayDebit)
		report.TotalCredit = report.TotalCredit.Add(row.DisplayCredit)
		report.Rows = append(report.Rows, *row)
	}
	sort.Slice(report.Rows, func(i, j int) bool {
		if report.Rows[i].AccountCode != report.Rows[j].AccountCode {
			return report.Rows[i].AccountCode < report.Rows[j].AccountCode
		}
		return report.Rows[i].AccountID < report.Rows[j].AccountID
	})

	report.Difference = report.TotalDebit.Sub(report.TotalCredit)
	report.IsBalanced = WithinTolerance(report.Difference)
	return report
}

// NonZeroRows drops rows whose net balance is zero, for display.
func NonZeroRows(rows []domain.TrialBalanceRow) []domain.TrialBalanceRow {
	filtered := make([]domain.TrialBalanceRow, 0, len(rows))
	for _, r := range rows {
		if !r.NetBalance.IsZero() {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
