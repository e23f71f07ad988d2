package domain_test

import (
	"testing"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccountType_CodePrefix(t *testing.T) {
	tests := []struct {
		accountType domain.AccountType
		want        byte
		ok          bool
	}{
		{domain.Asset, '1', true},
		{domain.Liability, '2', true},
		{domain.Equity, '3', true},
		{domain.Revenue, '4', true},
		{domain.COGS, '5', true},
		{domain.Expense, '6', true},
		{domain.OtherIncome, '7', true},
		{domain.OtherExpense, '7', true},
		{domain.AccountType("INCOME"), 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.accountType), func(t *testing.T) {
			got, ok := tt.accountType.CodePrefix()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveInventoryRoles(t *testing.T) {
	rm := domain.RoleRawMaterials
	fg := domain.RoleFinishedGoods
	accounts := []domain.Account{
		{AccountID: "a-1", Code: "1200", InventoryRole: &rm},
		{AccountID: "a-2", Code: "1000"},
		{AccountID: "a-3", Code: "1230", InventoryRole: &fg},
	}

	roles := domain.ResolveInventoryRoles(accounts)

	assert.Len(t, roles, 2)
	assert.Equal(t, "a-1", roles[domain.RoleRawMaterials])
	assert.Equal(t, "a-3", roles[domain.RoleFinishedGoods])
	_, hasWIP := roles[domain.RoleWIP]
	assert.False(t, hasWIP)

	role, ok := roles.RoleOf("a-3")
	assert.True(t, ok)
	assert.Equal(t, domain.RoleFinishedGoods, role)
	_, ok = roles.RoleOf("a-2")
	assert.False(t, ok)
}

func TestAccountRole_RequiredAccountType(t *testing.T) {
	assert.Equal(t, domain.Asset, domain.RoleRawMaterials.RequiredAccountType())
	assert.Equal(t, domain.Asset, domain.RoleWIP.RequiredAccountType())
	assert.Equal(t, domain.Asset, domain.RoleFinishedGoods.RequiredAccountType())
	assert.Equal(t, domain.COGS, domain.RoleCOGS.RequiredAccountType())
	assert.False(t, domain.AccountRole("SCRAP").IsValid())
}

func TestJournalEntry_Totals(t *testing.T) {
	entry := domain.JournalEntry{
		Lines: []domain.JournalLine{
			{AccountID: "a", DebitAmount: decimal.RequireFromString("10.25")},
			{AccountID: "b", DebitAmount: decimal.RequireFromString("4.75")},
			{AccountID: "c", CreditAmount: decimal.RequireFromString("15.00")},
		},
	}

	assert.True(t, entry.TotalDebit().Equal(decimal.RequireFromString("15")))
	assert.True(t, entry.TotalCredit().Equal(decimal.RequireFromString("15")))
	assert.Equal(t, domain.Draft, entry.Status())

	entry.IsPosted = true
	assert.Equal(t, domain.Posted, entry.Status())
	assert.True(t, entry.Lines[2].Net().Equal(decimal.RequireFromString("-15")))
}
