package mapping

import (
	"database/sql"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	var role sql.NullString
	if d.InventoryRole != nil {
		role = sql.NullString{String: string(*d.InventoryRole), Valid: true}
	}
	return models.Account{
		AccountID:     d.AccountID,
		BusinessID:    d.BusinessID,
		Code:          d.Code,
		Name:          d.Name,
		AccountType:   models.AccountType(d.AccountType),
		Subcategory:   d.Subcategory,
		InventoryRole: role,
		BankAccountID: NullString(d.BankAccountID),
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	acc := domain.Account{
		AccountID:     m.AccountID,
		BusinessID:    m.BusinessID,
		Code:          m.Code,
		Name:          m.Name,
		AccountType:   domain.AccountType(m.AccountType),
		Subcategory:   m.Subcategory,
		BankAccountID: stringPtr(m.BankAccountID),
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.InventoryRole.Valid {
		role := domain.AccountRole(m.InventoryRole.String)
		acc.InventoryRole = &role
	}
	return acc
}
