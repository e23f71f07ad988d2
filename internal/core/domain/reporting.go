package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow is one account's line in a trial balance.
// NetBalance is DebitBalance minus CreditBalance; exactly one of the display
// columns is non-zero when the net is non-zero.
type TrialBalanceRow struct {
	AccountID     string          `json:"accountID"`
	AccountCode   string          `json:"accountCode"`
	AccountName   string          `json:"accountName"`
	AccountType   AccountType     `json:"accountType"`
	DebitBalance  decimal.Decimal `json:"debitBalance"`
	CreditBalance decimal.Decimal `json:"creditBalance"`
	NetBalance    decimal.Decimal `json:"netBalance"`
	DisplayDebit  decimal.Decimal `json:"displayDebit"`
	DisplayCredit decimal.Decimal `json:"displayCredit"`
}

// TrialBalanceReport holds all rows plus the balanced diagnostic.
type TrialBalanceReport struct {
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebit   decimal.Decimal   `json:"totalDebit"`
	TotalCredit  decimal.Decimal   `json:"totalCredit"`
	Difference   decimal.Decimal   `json:"difference"`
	IsBalanced   bool              `json:"isBalanced"`
	AsOf         *time.Time        `json:"asOf,omitempty"`
	EntriesCount int               `json:"entriesCount"`
}

// LedgerEntry is one line of an account's general ledger with the balance after it.
type LedgerEntry struct {
	EntryID         string          `json:"entryID"`
	LineID          string          `json:"lineID"`
	EntryDate       time.Time       `json:"entryDate"`
	ReferenceNumber string          `json:"referenceNumber"`
	Description     string          `json:"description"`
	Memo            string          `json:"memo,omitempty"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	RunningBalance  decimal.Decimal `json:"runningBalance"`
}

// AccountLedger is the general ledger of a single account.
type AccountLedger struct {
	Account        Account         `json:"account"`
	Entries        []LedgerEntry   `json:"entries"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// AccountAmount represents an account with its net amount for financial reports
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// PAndLReport represents a profit and loss report
type PAndLReport struct {
	Revenue       []AccountAmount `json:"revenue"`
	CostOfSales   []AccountAmount `json:"costOfSales"`
	Expenses      []AccountAmount `json:"expenses"`
	OtherIncome   []AccountAmount `json:"otherIncome"`
	OtherExpenses []AccountAmount `json:"otherExpenses"`
	GrossProfit   decimal.Decimal `json:"grossProfit"`
	NetProfit     decimal.Decimal `json:"netProfit"`
}

// BalanceSheetReport represents a balance sheet report.
// RetainedEarnings is the current-period profit not yet closed to equity.
type BalanceSheetReport struct {
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	RetainedEarnings decimal.Decimal `json:"retainedEarnings"`
	IsBalanced       bool            `json:"isBalanced"`
}

// DuplicateReference lists the entries sharing one reference number.
type DuplicateReference struct {
	ReferenceNumber string   `json:"referenceNumber"`
	EntryIDs        []string `json:"entryIDs"`
}

// UnbalancedEntry is a posted entry whose totals differ.
type UnbalancedEntry struct {
	EntryID         string          `json:"entryID"`
	ReferenceNumber string          `json:"referenceNumber"`
	Difference      decimal.Decimal `json:"difference"`
}

// IntegrityReport surfaces defects in stored books that validation alone cannot prevent.
type IntegrityReport struct {
	BusinessID           string               `json:"businessID"`
	TrialBalanceBalanced bool                 `json:"trialBalanceBalanced"`
	Difference           decimal.Decimal      `json:"difference"`
	UnbalancedEntries    []UnbalancedEntry    `json:"unbalancedEntries"`
	DuplicateReferences  []DuplicateReference `json:"duplicateReferences"`
}

// Healthy reports whether no defect was found.
func (r IntegrityReport) Healthy() bool {
	return r.TrialBalanceBalanced && len(r.UnbalancedEntries) == 0 && len(r.DuplicateReferences) == 0
}
