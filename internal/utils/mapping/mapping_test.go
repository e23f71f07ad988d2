package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountMapping_NullableColumns(t *testing.T) {
	role := domain.RoleFinishedGoods
	acc := domain.Account{AccountID: "a1", Code: "1230", AccountType: domain.Asset, InventoryRole: &role, IsActive: true}

	m := ToModelAccount(acc)
	assert.True(t, m.InventoryRole.Valid)
	assert.False(t, m.BankAccountID.Valid)

	back := ToDomainAccount(m)
	require.NotNil(t, back.InventoryRole)
	assert.Equal(t, domain.RoleFinishedGoods, *back.InventoryRole)
	assert.Nil(t, back.BankAccountID)
}

func TestNullString_EmptyIsNull(t *testing.T) {
	empty := ""
	assert.False(t, NullString(&empty).Valid)
	assert.False(t, NullString(nil).Valid)
	bank := "bank-1"
	assert.Equal(t, "bank-1", NullString(&bank).String)
}

func TestJournalEntryMapping_PostedAndReversal(t *testing.T) {
	postedAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	original := "e0"
	entry := domain.JournalEntry{EntryID: "e1", Sequence: 9, IsPosted: true, PostedAt: &postedAt, ReversesEntryID: &original}

	m := ToModelJournalEntry(entry)
	assert.True(t, m.PostedAt.Valid)
	assert.Equal(t, int64(9), m.Seq)

	back := ToDomainJournalEntry(m)
	require.NotNil(t, back.PostedAt)
	assert.True(t, postedAt.Equal(*back.PostedAt))
	require.NotNil(t, back.ReversesEntryID)
	assert.Equal(t, "e0", *back.ReversesEntryID)
	assert.NotNil(t, back.Lines)
}

func TestJournalLineMapping_SetsEntryID(t *testing.T) {
	line := domain.JournalLine{LineID: "l1", LineNo: 1, AccountID: "cash", DebitAmount: decimal.NewFromInt(5)}

	m := ToModelJournalLine("e1", line)
	assert.Equal(t, "e1", m.EntryID)
	assert.True(t, decimal.NewFromInt(5).Equal(ToDomainJournalLine(m).DebitAmount))
}
