package services_test

import (
	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/dto"
)

func (s *LedgerSuite) TestDefaultChart_IsIdempotentAndMapsRoles() {
	created, skipped, err := s.svc.Account.CreateDefaultChart(s.ctx, testBusiness, owner)
	s.Require().NoError(err)
	s.Empty(created)
	s.Len(skipped, len(s.ids))

	accounts, err := s.svc.Account.ListAccounts(s.ctx, testBusiness, dto.ListAccountsParams{})
	s.Require().NoError(err)
	roles := domain.ResolveInventoryRoles(accounts)
	s.Equal(s.ids["1200"], roles[domain.RoleRawMaterials])
	s.Equal(s.ids["1220"], roles[domain.RoleWIP])
	s.Equal(s.ids["1230"], roles[domain.RoleFinishedGoods])
	s.Equal(s.ids["5000"], roles[domain.RoleCOGS])
}

func (s *LedgerSuite) TestCreateAccount() {
	acc, err := s.svc.Account.CreateAccount(s.ctx, testBusiness, dto.CreateAccountRequest{
		Code:        "6400",
		Name:        "  Insurance ",
		AccountType: domain.Expense,
		Subcategory: "OPEX",
	}, owner)
	s.Require().NoError(err)
	s.Equal("Insurance", acc.Name)
	s.True(acc.IsActive)
	s.Equal(owner, acc.CreatedBy)
	s.Equal(fixedNow, acc.CreatedAt)

	byCode, err := s.svc.Account.GetAccountByCode(s.ctx, testBusiness, "6400")
	s.Require().NoError(err)
	s.Equal(acc.AccountID, byCode.AccountID)
}

func (s *LedgerSuite) TestCreateAccount_Rejects() {
	rm := domain.RoleRawMaterials
	cogs := domain.RoleCOGS

	tests := []struct {
		name    string
		req     dto.CreateAccountRequest
		wantErr error
	}{
		{"wrong prefix", dto.CreateAccountRequest{Code: "4500", Name: "Misc", AccountType: domain.Expense}, apperrors.ErrValidation},
		{"three digits", dto.CreateAccountRequest{Code: "650", Name: "Misc", AccountType: domain.Expense}, apperrors.ErrValidation},
		{"blank name", dto.CreateAccountRequest{Code: "6500", Name: " ", AccountType: domain.Expense}, apperrors.ErrValidation},
		{"duplicate code", dto.CreateAccountRequest{Code: "1000", Name: "Petty Cash", AccountType: domain.Asset}, apperrors.ErrDuplicate},
		{"role on wrong type", dto.CreateAccountRequest{Code: "6500", Name: "Misc", AccountType: domain.Expense, InventoryRole: &cogs}, apperrors.ErrValidation},
		{"role taken", dto.CreateAccountRequest{Code: "1210", Name: "More Raw Materials", AccountType: domain.Asset, InventoryRole: &rm}, apperrors.ErrDuplicate},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.svc.Account.CreateAccount(s.ctx, testBusiness, tt.req, owner)
			s.ErrorIs(err, tt.wantErr)
		})
	}
}

func (s *LedgerSuite) TestUpdateAccount_MovesInventoryRole() {
	rm := domain.RoleRawMaterials

	_, err := s.svc.Account.UpdateAccount(s.ctx, testBusiness, s.ids["1100"], dto.UpdateAccountRequest{InventoryRole: &rm}, owner)
	s.ErrorIs(err, apperrors.ErrDuplicate)

	_, err = s.svc.Account.UpdateAccount(s.ctx, testBusiness, s.ids["1200"], dto.UpdateAccountRequest{ClearRole: true}, owner)
	s.Require().NoError(err)

	name := "Raw Stock"
	updated, err := s.svc.Account.UpdateAccount(s.ctx, testBusiness, s.ids["1100"], dto.UpdateAccountRequest{InventoryRole: &rm, Name: &name}, owner)
	s.Require().NoError(err)
	s.Equal(name, updated.Name)
	s.Require().NotNil(updated.InventoryRole)
	s.Equal(rm, *updated.InventoryRole)

	s.mustPost(march(1), s.dr("1100", "40"), s.cr("3000", "40"))
	s.mustPost(march(2), s.dr("1220", "40"), s.cr("1100", "40"))
	s.assertBalance("1100", "0")
}

func (s *LedgerSuite) TestDeleteAccount_SoftDeletes() {
	s.Require().NoError(s.svc.Account.DeleteAccount(s.ctx, testBusiness, s.ids["6300"], owner))

	acc, err := s.svc.Account.GetAccountByID(s.ctx, testBusiness, s.ids["6300"])
	s.Require().NoError(err)
	s.False(acc.IsActive)

	active, err := s.svc.Account.ListAccounts(s.ctx, testBusiness, dto.ListAccountsParams{})
	s.Require().NoError(err)
	s.Len(active, len(s.ids)-1)

	all, err := s.svc.Account.ListAccounts(s.ctx, testBusiness, dto.ListAccountsParams{IncludeInactive: true})
	s.Require().NoError(err)
	s.Len(all, len(s.ids))
}

func (s *LedgerSuite) TestBankLinkedAccounts() {
	bankID := "bank-42"
	linked := func(code, name string) *domain.Account {
		acc, err := s.svc.Account.CreateAccount(s.ctx, testBusiness, dto.CreateAccountRequest{
			Code: code, Name: name, AccountType: domain.Asset, BankAccountID: &bankID,
		}, owner)
		s.Require().NoError(err)
		s.ids[code] = acc.AccountID
		return acc
	}
	used := linked("1020", "Savings")
	unused := linked("1030", "Payroll Account")

	s.ErrorIs(s.svc.Account.DeleteAccount(s.ctx, testBusiness, used.AccountID, owner), apperrors.ErrConflict)

	s.mustPost(march(1), s.dr("1020", "10"), s.cr("3000", "10"))

	res, err := s.svc.Account.RemoveBankLinkedAccounts(s.ctx, testBusiness, bankID, owner)
	s.Require().NoError(err)
	s.Equal([]string{used.AccountID}, res.Deactivated)
	s.Equal([]string{unused.AccountID}, res.Deleted)

	_, err = s.svc.Account.GetAccountByID(s.ctx, testBusiness, unused.AccountID)
	s.ErrorIs(err, apperrors.ErrNotFound)

	kept, err := s.svc.Account.GetAccountByID(s.ctx, testBusiness, used.AccountID)
	s.Require().NoError(err)
	s.False(kept.IsActive)
	s.assertBalance("1020", "10")
}
