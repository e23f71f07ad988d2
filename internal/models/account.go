package models

import "database/sql"

// AccountType is the stored form of domain.AccountType.
type AccountType string

// Account is a row of the accounts table.
// Nullable columns use sql.NullString.
type Account struct {
	AccountID     string         `db:"account_id"`
	BusinessID    string         `db:"business_id"`
	Code          string         `db:"code"`
	Name          string         `db:"name"`
	AccountType   AccountType    `db:"account_type"`
	Subcategory   string         `db:"subcategory"`
	InventoryRole sql.NullString `db:"inventory_role"`
	BankAccountID sql.NullString `db:"bank_account_id"`
	IsActive      bool           `db:"is_active"`
	AuditFields
}
