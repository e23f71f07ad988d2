package accounting_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func debit(accountID, amount string) domain.JournalLine {
	return domain.JournalLine{AccountID: accountID, DebitAmount: d(amount), CreditAmount: decimal.Zero}
}

func credit(accountID, amount string) domain.JournalLine {
	return domain.JournalLine{AccountID: accountID, DebitAmount: decimal.Zero, CreditAmount: d(amount)}
}

func TestValidateEntry(t *testing.T) {
	tests := []struct {
		name     string
		lines    []domain.JournalLine
		mode     accounting.Mode
		wantKind apperrors.ValidationKind
		wantLine int
	}{
		{name: "no lines", lines: nil, mode: accounting.ModeDraft, wantKind: apperrors.KindNoLines},
		{name: "single line", lines: []domain.JournalLine{debit("cash", "10")}, mode: accounting.ModeDraft, wantKind: apperrors.KindTooFewLines},
		{name: "missing account", lines: []domain.JournalLine{debit("cash", "10"), credit("  ", "10")}, mode: accounting.ModeDraft, wantKind: apperrors.KindMissingAccount, wantLine: 2},
		{name: "negative amount", lines: []domain.JournalLine{debit("cash", "-10"), credit("sales", "10")}, mode: accounting.ModeDraft, wantKind: apperrors.KindNegativeAmount, wantLine: 1},
		{
			name: "debit and credit on one line",
			lines: []domain.JournalLine{
				{AccountID: "cash", DebitAmount: d("10"), CreditAmount: d("10")},
				credit("sales", "10"),
			},
			mode:     accounting.ModeDraft,
			wantKind: apperrors.KindDebitAndCredit,
			wantLine: 1,
		},
		{name: "empty entry", lines: []domain.JournalLine{debit("cash", "0"), credit("sales", "0")}, mode: accounting.ModeDraft, wantKind: apperrors.KindEmptyEntry},
		{name: "empty line", lines: []domain.JournalLine{debit("cash", "10"), credit("sales", "10"), debit("misc", "0")}, mode: accounting.ModeDraft, wantKind: apperrors.KindEmptyLine, wantLine: 3},
		{name: "too many decimals", lines: []domain.JournalLine{debit("cash", "10.005"), credit("sales", "10.005")}, mode: accounting.ModeDraft, wantKind: apperrors.KindPrecisionExceeded, wantLine: 1},
		{name: "unbalanced post", lines: []domain.JournalLine{debit("cash", "100"), credit("sales", "80")}, mode: accounting.ModePost, wantKind: apperrors.KindUnbalanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := accounting.ValidateEntry(tt.lines, tt.mode)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))

			var vErr *apperrors.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantKind, vErr.Kind)
			assert.Equal(t, tt.wantLine, vErr.LineNo)
		})
	}
}

func TestValidateEntry_DraftMayBeUnbalanced(t *testing.T) {
	lines := []domain.JournalLine{debit("cash", "100"), credit("sales", "80")}

	assert.NoError(t, accounting.ValidateEntry(lines, accounting.ModeDraft))

	err := accounting.ValidateEntry(lines, accounting.ModePost)
	var vErr *apperrors.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, apperrors.CategoryBalance, vErr.Category)
	assert.True(t, vErr.TotalDebit.Equal(d("100")))
	assert.True(t, vErr.TotalCredit.Equal(d("80")))
	assert.True(t, vErr.Difference.Equal(d("20")))
}

func TestValidateEntry_BalanceTolerance(t *testing.T) {
	balanced := []domain.JournalLine{debit("cash", "33.33"), debit("bank", "33.33"), credit("sales", "66.66")}
	assert.NoError(t, accounting.ValidateEntry(balanced, accounting.ModePost))

	offByOneCent := []domain.JournalLine{debit("cash", "10.01"), credit("sales", "10.00")}
	err := accounting.ValidateEntry(offByOneCent, accounting.ModePost)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	assert.True(t, accounting.WithinTolerance(d("0.009")))
	assert.False(t, accounting.WithinTolerance(d("-0.01")))
}

func TestValidateEntry_BalancedPostSucceeds(t *testing.T) {
	lines := []domain.JournalLine{debit("wip", "200"), credit("rm", "150"), credit("labor", "50.00")}
	assert.NoError(t, accounting.ValidateEntry(lines, accounting.ModePost))
}
