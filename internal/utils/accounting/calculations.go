package accounting

import (
	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountScale is the number of decimal places amounts are kept at.
const AmountScale = 2

// BalanceTolerance is the largest debit/credit difference still treated as balanced.
var BalanceTolerance = decimal.New(1, -AmountScale)

// WithinTolerance reports whether |diff| < BalanceTolerance.
func WithinTolerance(diff decimal.Decimal) bool {
	return diff.Abs().LessThan(BalanceTolerance)
}

// SumLines returns the debit and credit totals of lines.
func SumLines(lines []domain.JournalLine) (totalDebit, totalCredit decimal.Decimal) {
	totalDebit, totalCredit = decimal.Zero, decimal.Zero
	for _, l := range lines {
		totalDebit = totalDebit.Add(l.DebitAmount)
		totalCredit = totalCredit.Add(l.CreditAmount)
	}
	return totalDebit, totalCredit
}

// IsEntryBalanced reports whether an entry's debits and credits agree within tolerance.
func IsEntryBalanced(entry domain.JournalEntry) bool {
	d, c := SumLines(entry.Lines)
	return WithinTolerance(d.Sub(c))
}

// SumPostedForAccount returns Σdebit − Σcredit over posted lines touching accountID.
func SumPostedForAccount(entries []domain.JournalEntry, accountID string) decimal.Decimal {
	net := decimal.Zero
	for _, e := range entries {
		if !e.IsPosted {
			continue
		}
		for _, l := range e.Lines {
			if l.AccountID == accountID {
				net = net.Add(l.Net())
			}
		}
	}
	return net
}

// ReverseLines swaps the debit and credit sides of every line, keeping account and memo.
func ReverseLines(lines []domain.JournalLine) []domain.JournalLine {
	reversed := make([]domain.JournalLine, len(lines))
	for i, l := range lines {
		reversed[i] = domain.JournalLine{
			LineNo:       i + 1,
			AccountID:    l.AccountID,
			DebitAmount:  l.CreditAmount,
			CreditAmount: l.DebitAmount,
			Memo:         l.Memo,
		}
	}
	return reversed
}

func maxZero(d decimal.Decimal) decimal.Decimal {
	if d.IsPositive() {
		return d
	}
	return decimal.Zero
}
