package accounting

import (
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IsDebitNormal reports whether a debit increases accounts of type t.
func IsDebitNormal(t domain.AccountType) bool {
	switch t {
	case domain.Asset, domain.COGS, domain.Expense, domain.OtherExpense:
		return true
	}
	return false
}

// NaturalAmount expresses a debit-minus-credit net in the account type's normal direction.
func NaturalAmount(t domain.AccountType, net decimal.Decimal) decimal.Decimal {
	if IsDebitNormal(t) {
		return net
	}
	return net.Neg()
}

// PostedBetween keeps posted entries dated within [from, to], preserving order.
func PostedBetween(entries []domain.JournalEntry, from, to time.Time) []domain.JournalEntry {
	kept := make([]domain.JournalEntry, 0, len(entries))
	for _, e := range entries {
		if !e.IsPosted || e.EntryDate.Before(from) || e.EntryDate.After(to) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

func groupAmounts(rows []domain.TrialBalanceRow, t domain.AccountType) ([]domain.AccountAmount, decimal.Decimal) {
	amounts := make([]domain.AccountAmount, 0)
	total := decimal.Zero
	for _, r := range rows {
		if r.AccountType != t || r.NetBalance.IsZero() {
			continue
		}
		amt := NaturalAmount(t, r.NetBalance)
		amounts = append(amounts, domain.AccountAmount{
			AccountID: r.AccountID,
			Code:      r.AccountCode,
			Name:      r.AccountName,
			NetAmount: amt,
		})
		total = total.Add(amt)
	}
	return amounts, total
}

// BuildProfitAndLoss derives the income statement from trial balance rows of the period.
func BuildProfitAndLoss(rows []domain.TrialBalanceRow) domain.PAndLReport {
	revenue, totalRevenue := groupAmounts(rows, domain.Revenue)
	cogs, totalCOGS := groupAmounts(rows, domain.COGS)
	expenses, totalExpenses := groupAmounts(rows, domain.Expense)
	otherIncome, totalOtherIncome := groupAmounts(rows, domain.OtherIncome)
	otherExpenses, totalOtherExpenses := groupAmounts(rows, domain.OtherExpense)

	gross := totalRevenue.Sub(totalCOGS)
	return domain.PAndLReport{
		Revenue:       revenue,
		CostOfSales:   cogs,
		Expenses:      expenses,
		OtherIncome:   otherIncome,
		OtherExpenses: otherExpenses,
		GrossProfit:   gross,
		NetProfit:     gross.Sub(totalExpenses).Add(totalOtherIncome).Sub(totalOtherExpenses),
	}
}

// BuildBalanceSheet derives the balance sheet from trial balance rows as of a date.
// Unclosed profit is reported as RetainedEarnings and counted towards equity.
func BuildBalanceSheet(rows []domain.TrialBalanceRow) domain.BalanceSheetReport {
	assets, totalAssets := groupAmounts(rows, domain.Asset)
	liabilities, totalLiabilities := groupAmounts(rows, domain.Liability)
	equity, totalEquity := groupAmounts(rows, domain.Equity)
	retained := BuildProfitAndLoss(rows).NetProfit

	return domain.BalanceSheetReport{
		Assets:           assets,
		Liabilities:      liabilities,
		Equity:           equity,
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		TotalEquity:      totalEquity.Add(retained),
		RetainedEarnings: retained,
		IsBalanced:       WithinTolerance(totalAssets.Sub(totalLiabilities).Sub(totalEquity).Sub(retained)),
	}
}
