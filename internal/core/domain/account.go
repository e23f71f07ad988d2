package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset        AccountType = "ASSET"
	Liability    AccountType = "LIABILITY"
	Equity       AccountType = "EQUITY"
	Revenue      AccountType = "REVENUE"
	COGS         AccountType = "COGS"
	Expense      AccountType = "EXPENSE"
	OtherIncome  AccountType = "OTHER_INCOME"
	OtherExpense AccountType = "OTHER_EXPENSE"
)

// AllAccountTypes lists the account types in chart order.
var AllAccountTypes = []AccountType{Asset, Liability, Equity, Revenue, COGS, Expense, OtherIncome, OtherExpense}

// CodePrefix returns the leading digit an account code of this type must start with.
func (t AccountType) CodePrefix() (byte, bool) {
	switch t {
	case Asset:
		return '1', true
	case Liability:
		return '2', true
	case Equity:
		return '3', true
	case Revenue:
		return '4', true
	case COGS:
		return '5', true
	case Expense:
		return '6', true
	case OtherIncome, OtherExpense:
		return '7', true
	}
	return 0, false
}

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	_, ok := t.CodePrefix()
	return ok
}

// AccountRole marks the accounts that take part in the manufacturing inventory flow.
type AccountRole string

const (
	RoleRawMaterials  AccountRole = "RAW_MATERIALS"
	RoleWIP           AccountRole = "WIP"
	RoleFinishedGoods AccountRole = "FINISHED_GOODS"
	RoleCOGS          AccountRole = "COGS"
)

// IsValid reports whether r is a known inventory role.
func (r AccountRole) IsValid() bool {
	switch r {
	case RoleRawMaterials, RoleWIP, RoleFinishedGoods, RoleCOGS:
		return true
	}
	return false
}

// RequiredAccountType is the account type an account must have to carry the role.
func (r AccountRole) RequiredAccountType() AccountType {
	if r == RoleCOGS {
		return COGS
	}
	return Asset
}

// Account represents a chart-of-accounts entry for one business.
type Account struct {
	AccountID     string       `json:"accountID"`
	BusinessID    string       `json:"businessID"`
	Code          string       `json:"code"` // 4 digits, leading digit fixed by AccountType
	Name          string       `json:"name"`
	AccountType   AccountType  `json:"accountType"`
	Subcategory   string       `json:"subcategory,omitempty"`
	InventoryRole *AccountRole `json:"inventoryRole,omitempty"`
	BankAccountID *string      `json:"bankAccountID,omitempty"` // set when the account mirrors an external bank record
	IsActive      bool         `json:"isActive"`
	AuditFields
}

// IsBankLinked reports whether the account is owned by an external bank record.
func (a Account) IsBankLinked() bool {
	return a.BankAccountID != nil && *a.BankAccountID != ""
}

// InventoryRoles maps each inventory role to the account id that carries it for a business.
// Roles with no mapped account are absent.
type InventoryRoles map[AccountRole]string

// ResolveInventoryRoles builds the role map from a business's accounts.
func ResolveInventoryRoles(accounts []Account) InventoryRoles {
	roles := make(InventoryRoles)
	for _, acc := range accounts {
		if acc.InventoryRole != nil {
			roles[*acc.InventoryRole] = acc.AccountID
		}
	}
	return roles
}

// RoleOf returns the role carried by accountID, if any.
func (r InventoryRoles) RoleOf(accountID string) (AccountRole, bool) {
	for role, id := range r {
		if id == accountID {
			return role, true
		}
	}
	return "", false
}
