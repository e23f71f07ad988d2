package accounting

import (
	"sort"

	"github.com/SscSPs/bizledger/internal/core/domain"
)

// FindUnbalancedEntries returns posted entries whose lines do not balance.
func FindUnbalancedEntries(entries []domain.JournalEntry) []domain.UnbalancedEntry {
	found := make([]domain.UnbalancedEntry, 0)
	for _, e := range entries {
		if !e.IsPosted {
			continue
		}
		d, c := SumLines(e.Lines)
		if diff := d.Sub(c); !WithinTolerance(diff) {
			found = append(found, domain.UnbalancedEntry{
				EntryID:         e.EntryID,
				ReferenceNumber: e.ReferenceNumber,
				Difference:      diff,
			})
		}
	}
	return found
}

// FindDuplicateReferences groups entries that share a reference number.
// Results are ordered by reference; entry ids keep input order.
func FindDuplicateReferences(entries []domain.JournalEntry) []domain.DuplicateReference {
	byRef := make(map[string][]string)
	for _, e := range entries {
		if e.ReferenceNumber == "" {
			continue
		}
		byRef[e.ReferenceNumber] = append(byRef[e.ReferenceNumber], e.EntryID)
	}

	dups := make([]domain.DuplicateReference, 0)
	for ref, ids := range byRef {
		if len(ids) > 1 {
			dups = append(dups, domain.DuplicateReference{ReferenceNumber: ref, EntryIDs: ids})
		}
	}
	sort.Slice(dups, func(i, j int) bool { return dups[i].ReferenceNumber < dups[j].ReferenceNumber })
	return dups
}

// CheckBooks combines the trial balance diagnostic with per-entry checks.
func CheckBooks(businessID string, accounts []domain.Account, entries []domain.JournalEntry) domain.IntegrityReport {
	tb := BuildTrialBalance(accounts, entries)
	return domain.IntegrityReport{
		BusinessID:           businessID,
		TrialBalanceBalanced: tb.IsBalanced,
		Difference:           tb.Difference,
		UnbalancedEntries:    FindUnbalancedEntries(entries),
		DuplicateReferences:  FindDuplicateReferences(entries),
	}
}
