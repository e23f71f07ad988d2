package accounting

import (
	"fmt"
	"strings"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
)

// Mode selects which checks ValidateEntry applies.
type Mode int

const (
	// ModeDraft applies structural checks only.
	ModeDraft Mode = iota
	// ModePost additionally requires the entry to balance.
	ModePost
)

func (m Mode) String() string {
	if m == ModePost {
		return "post"
	}
	return "draft"
}

// ValidateEntry checks the lines of a candidate journal entry and returns the
// first failure as an *apperrors.ValidationError. It has no side effects.
func ValidateEntry(lines []domain.JournalLine, mode Mode) error {
	if len(lines) == 0 {
		return apperrors.NewStructuralError(apperrors.KindNoLines, 0, "journal entry has no lines")
	}
	if len(lines) < 2 {
		return apperrors.NewStructuralError(apperrors.KindTooFewLines, 0, "journal entry needs at least two lines")
	}

	for i, l := range lines {
		lineNo := i + 1
		if strings.TrimSpace(l.AccountID) == "" {
			return apperrors.NewStructuralError(apperrors.KindMissingAccount, lineNo, "line has no account")
		}
		if l.DebitAmount.IsNegative() || l.CreditAmount.IsNegative() {
			return apperrors.NewStructuralError(apperrors.KindNegativeAmount, lineNo, "amounts must not be negative")
		}
		if !l.DebitAmount.IsZero() && !l.CreditAmount.IsZero() {
			return apperrors.NewStructuralError(apperrors.KindDebitAndCredit, lineNo, "line must be either a debit or a credit")
		}
	}

	totalDebit, totalCredit := SumLines(lines)
	if totalDebit.IsZero() && totalCredit.IsZero() {
		return apperrors.NewStructuralError(apperrors.KindEmptyEntry, 0, "total debit and total credit are both zero")
	}

	for i, l := range lines {
		lineNo := i + 1
		if l.DebitAmount.IsZero() && l.CreditAmount.IsZero() {
			return apperrors.NewStructuralError(apperrors.KindEmptyLine, lineNo, "line has no amount")
		}
		if exceedsScale(l) {
			return apperrors.NewStructuralError(apperrors.KindPrecisionExceeded, lineNo,
				fmt.Sprintf("amounts may have at most %d decimal places", AmountScale))
		}
	}

	if mode == ModePost && !WithinTolerance(totalDebit.Sub(totalCredit)) {
		return apperrors.NewBalanceError(totalDebit, totalCredit)
	}
	return nil
}

func exceedsScale(l domain.JournalLine) bool {
	return !l.DebitAmount.Equal(l.DebitAmount.Truncate(AmountScale)) ||
		!l.CreditAmount.Equal(l.CreditAmount.Truncate(AmountScale))
}
