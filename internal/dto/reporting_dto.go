package dto

import (
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

const reportDateLayout = "2006-01-02"

// TrialBalanceParams defines query parameters for the trial balance.
type TrialBalanceParams struct {
	AsOf        string `form:"asOf" binding:"omitempty,datetime=2006-01-02"`
	HideZeroRow bool   `form:"hideZero"`
}

// PeriodParams defines a from/to reporting window.
type PeriodParams struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

// AsOfParams defines a point-in-time reporting date.
type AsOfParams struct {
	AsOf string `form:"asOf" binding:"omitempty,datetime=2006-01-02"`
}

// ParseReportDate parses a yyyy-mm-dd date as the end of that day in UTC.
func ParseReportDate(s string) (time.Time, error) {
	t, err := time.Parse(reportDateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.Add(24*time.Hour - time.Nanosecond), nil
}

// ParseReportStartDate parses a yyyy-mm-dd date as the start of that day in UTC.
func ParseReportStartDate(s string) (time.Time, error) {
	return time.Parse(reportDateLayout, s)
}

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID     string          `json:"accountID"`
	AccountCode   string          `json:"accountCode"`
	AccountName   string          `json:"accountName"`
	AccountType   string          `json:"accountType"`
	DebitBalance  decimal.Decimal `json:"debitBalance"`
	CreditBalance decimal.Decimal `json:"creditBalance"`
	NetBalance    decimal.Decimal `json:"netBalance"`
	DisplayDebit  decimal.Decimal `json:"displayDebit"`
	DisplayCredit decimal.Decimal `json:"displayCredit"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	AsOf       string                    `json:"asOf,omitempty"`
	Rows       []TrialBalanceRowResponse `json:"rows"`
	IsBalanced bool                      `json:"isBalanced"`
	Difference decimal.Decimal           `json:"difference"`
	Totals     struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
}

// ToTrialBalanceResponse converts a trial balance report to a DTO response.
// Totals always cover every row, including hidden zero rows.
func ToTrialBalanceResponse(report *domain.TrialBalanceReport, hideZero bool) TrialBalanceResponse {
	rows := report.Rows
	if hideZero {
		rows = accounting.NonZeroRows(rows)
	}
	response := TrialBalanceResponse{
		Rows:       make([]TrialBalanceRowResponse, len(rows)),
		IsBalanced: report.IsBalanced,
		Difference: report.Difference,
	}
	if report.AsOf != nil {
		response.AsOf = report.AsOf.Format(reportDateLayout)
	}
	for i, row := range rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountID:     row.AccountID,
			AccountCode:   row.AccountCode,
			AccountName:   row.AccountName,
			AccountType:   string(row.AccountType),
			DebitBalance:  row.DebitBalance,
			CreditBalance: row.CreditBalance,
			NetBalance:    row.NetBalance,
			DisplayDebit:  row.DisplayDebit,
			DisplayCredit: row.DisplayCredit,
		}
	}
	response.Totals.Debit = report.TotalDebit
	response.Totals.Credit = report.TotalCredit
	return response
}

// LedgerRowResponse is one general ledger line.
type LedgerRowResponse struct {
	EntryID         string          `json:"entryID"`
	EntryDate       string          `json:"entryDate"`
	ReferenceNumber string          `json:"referenceNumber"`
	Description     string          `json:"description"`
	Memo            string          `json:"memo,omitempty"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	RunningBalance  decimal.Decimal `json:"runningBalance"`
}

// AccountLedgerResponse is the general ledger of one account.
type AccountLedgerResponse struct {
	AccountID      string              `json:"accountID"`
	AccountCode    string              `json:"accountCode"`
	AccountName    string              `json:"accountName"`
	Rows           []LedgerRowResponse `json:"rows"`
	ClosingBalance decimal.Decimal     `json:"closingBalance"`
}

// ToAccountLedgerResponse converts an account ledger to its DTO.
func ToAccountLedgerResponse(l *domain.AccountLedger) AccountLedgerResponse {
	res := AccountLedgerResponse{
		AccountID:      l.Account.AccountID,
		AccountCode:    l.Account.Code,
		AccountName:    l.Account.Name,
		Rows:           make([]LedgerRowResponse, len(l.Entries)),
		ClosingBalance: l.ClosingBalance,
	}
	for i, e := range l.Entries {
		res.Rows[i] = LedgerRowResponse{
			EntryID:         e.EntryID,
			EntryDate:       e.EntryDate.Format(reportDateLayout),
			ReferenceNumber: e.ReferenceNumber,
			Description:     e.Description,
			Memo:            e.Memo,
			Debit:           e.Debit,
			Credit:          e.Credit,
			RunningBalance:  e.RunningBalance,
		}
	}
	return res
}

// GeneralLedgerResponse is the ledger of every account with activity.
type GeneralLedgerResponse struct {
	Accounts []AccountLedgerResponse `json:"accounts"`
}

// ProfitAndLossResponse represents the profit and loss report response
type ProfitAndLossResponse struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
	domain.PAndLReport
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	AsOf string `json:"asOf"`
	domain.BalanceSheetReport
}
