package models

import "github.com/shopspring/decimal"

// JournalLine is a row of the journal_lines table. Exactly one of
// DebitAmount and CreditAmount is positive; the table enforces it.
type JournalLine struct {
	LineID       string          `db:"line_id"`
	EntryID      string          `db:"entry_id"`
	LineNo       int             `db:"line_no"`
	AccountID    string          `db:"account_id"`
	DebitAmount  decimal.Decimal `db:"debit_amount"`
	CreditAmount decimal.Decimal `db:"credit_amount"`
	Memo         string          `db:"memo"`
}
