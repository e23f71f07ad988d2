package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus is the derived lifecycle state of a journal entry.
type JournalStatus string

const (
	Draft  JournalStatus = "DRAFT"
	Posted JournalStatus = "POSTED"
)

// JournalEntry is a dated, balanced group of debit and credit lines.
// Once IsPosted is true the entry and its lines never change.
type JournalEntry struct {
	EntryID         string        `json:"entryID"`
	BusinessID      string        `json:"businessID"`
	EntryDate       time.Time     `json:"entryDate"`
	ReferenceNumber string        `json:"referenceNumber"`
	Description     string        `json:"description"`
	IsPosted        bool          `json:"isPosted"`
	PostedAt        *time.Time    `json:"postedAt,omitempty"`
	ReversesEntryID *string       `json:"reversesEntryID,omitempty"`
	Lines           []JournalLine `json:"lines"`
	Sequence        int64         `json:"-"` // store-assigned creation order
	AuditFields
}

// Status returns DRAFT or POSTED.
func (e JournalEntry) Status() JournalStatus {
	if e.IsPosted {
		return Posted
	}
	return Draft
}

// TotalDebit sums the debit side of all lines.
func (e JournalEntry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.DebitAmount)
	}
	return total
}

// TotalCredit sums the credit side of all lines.
func (e JournalEntry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.CreditAmount)
	}
	return total
}

// JournalLine is one debit or credit against a single account.
type JournalLine struct {
	LineID       string          `json:"lineID"`
	EntryID      string          `json:"entryID"`
	LineNo       int             `json:"lineNo"`
	AccountID    string          `json:"accountID"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Memo         string          `json:"memo,omitempty"`

	// Filled on reads by joining the account.
	AccountCode string `json:"accountCode,omitempty"`
	AccountName string `json:"accountName,omitempty"`
}

// Net returns debit minus credit for the line.
func (l JournalLine) Net() decimal.Decimal {
	return l.DebitAmount.Sub(l.CreditAmount)
}
