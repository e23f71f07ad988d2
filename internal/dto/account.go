package dto

import (
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code          string              `json:"code" binding:"required,acctcode"`
	Name          string              `json:"name" binding:"required,max=120"`
	AccountType   domain.AccountType  `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE COGS EXPENSE OTHER_INCOME OTHER_EXPENSE"`
	Subcategory   string              `json:"subcategory" binding:"max=80"`
	InventoryRole *domain.AccountRole `json:"inventoryRole" binding:"omitempty,oneof=RAW_MATERIALS WIP FINISHED_GOODS COGS"`
	BankAccountID *string             `json:"bankAccountID"` // set by the bank-account collaborator only
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Code and type are fixed once created.
type UpdateAccountRequest struct {
	Name          *string             `json:"name" binding:"omitempty,max=120"`
	Subcategory   *string             `json:"subcategory" binding:"omitempty,max=80"`
	InventoryRole *domain.AccountRole `json:"inventoryRole" binding:"omitempty,oneof=RAW_MATERIALS WIP FINISHED_GOODS COGS"`
	ClearRole     bool                `json:"clearRole"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string              `json:"accountID"`
	BusinessID    string              `json:"businessID"`
	Code          string              `json:"code"`
	Name          string              `json:"name"`
	AccountType   domain.AccountType  `json:"accountType"`
	Subcategory   string              `json:"subcategory,omitempty"`
	InventoryRole *domain.AccountRole `json:"inventoryRole,omitempty"`
	BankAccountID *string             `json:"bankAccountID,omitempty"`
	IsActive      bool                `json:"isActive"`
	CreatedAt     time.Time           `json:"createdAt"`
	CreatedBy     string              `json:"createdBy"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
	LastUpdatedBy string              `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		BusinessID:    acc.BusinessID,
		Code:          acc.Code,
		Name:          acc.Name,
		AccountType:   acc.AccountType,
		Subcategory:   acc.Subcategory,
		InventoryRole: acc.InventoryRole,
		BankAccountID: acc.BankAccountID,
		IsActive:      acc.IsActive,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	IncludeInactive bool `form:"includeInactive"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// AccountBalanceResponse defines the data returned for an account balance query.
// Balance is Σdebit − Σcredit over posted lines.
type AccountBalanceResponse struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Balance   decimal.Decimal `json:"balance"`
}

// BankAccountCascadeResponse reports what happened to accounts backing a removed bank record.
type BankAccountCascadeResponse struct {
	BankAccountID string   `json:"bankAccountID"`
	Deleted       []string `json:"deleted"`
	Deactivated   []string `json:"deactivated"`
}

// SeedChartResponse lists the accounts created from the default chart.
type SeedChartResponse struct {
	Created []AccountResponse `json:"created"`
	Skipped []string          `json:"skipped"` // codes that already existed
}
