package accounting

import (
	"sort"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildGeneralLedger lists every posted line touching account in entry-date
// order with the running balance after each line. entries must be in creation
// order; entries on the same date keep that order.
func BuildGeneralLedger(account domain.Account, entries []domain.JournalEntry) domain.AccountLedger {
	touching := make([]domain.JournalEntry, 0)
	for _, e := range entries {
		if !e.IsPosted {
			continue
		}
		for _, l := range e.Lines {
			if l.AccountID == account.AccountID {
				touching = append(touching, e)
				break
			}
		}
	}
	sort.SliceStable(touching, func(i, j int) bool {
		return touching[i].EntryDate.Before(touching[j].EntryDate)
	})

	ledger := domain.AccountLedger{
		Account:        account,
		Entries:        make([]domain.LedgerEntry, 0, len(touching)),
		ClosingBalance: decimal.Zero,
	}
	running := decimal.Zero
	for _, e := range touching {
		for _, l := range e.Lines {
			if l.AccountID != account.AccountID {
				continue
			}
			running = running.Add(l.DebitAmount).Sub(l.CreditAmount)
			ledger.Entries = append(ledger.Entries, domain.LedgerEntry{
				EntryID:         e.EntryID,
				LineID:          l.LineID,
				EntryDate:       e.EntryDate,
				ReferenceNumber: e.ReferenceNumber,
				Description:     e.Description,
				Memo:            l.Memo,
				Debit:           l.DebitAmount,
				Credit:          l.CreditAmount,
				RunningBalance:  running,
			})
		}
	}
	ledger.ClosingBalance = running
	return ledger
}
