package accounting

import (
	"fmt"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
)

// AccountCodeLength is the fixed number of digits in an account code.
const AccountCodeLength = 4

// ValidateAccountCode checks that code is exactly four digits and that its
// leading digit matches the prefix of accountType.
func ValidateAccountCode(code string, accountType domain.AccountType) error {
	prefix, ok := accountType.CodePrefix()
	if !ok {
		return fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, accountType)
	}
	if len(code) != AccountCodeLength {
		return fmt.Errorf("%w: account code %q must be exactly %d digits", apperrors.ErrValidation, code, AccountCodeLength)
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return fmt.Errorf("%w: account code %q must be exactly %d digits", apperrors.ErrValidation, code, AccountCodeLength)
		}
	}
	if code[0] != prefix {
		return fmt.Errorf("%w: account code %q for %s accounts must start with %c", apperrors.ErrValidation, code, accountType, prefix)
	}
	return nil
}

// ChartTemplateAccount is one row of a seed chart of accounts.
type ChartTemplateAccount struct {
	Code        string
	Name        string
	Type        domain.AccountType
	Subcategory string
	Role        *domain.AccountRole
}

func role(r domain.AccountRole) *domain.AccountRole { return &r }

// DefaultChart is the starter chart for a small manufacturing business.
func DefaultChart() []ChartTemplateAccount {
	return []ChartTemplateAccount{
		{Code: "1000", Name: "Cash on Hand", Type: domain.Asset, Subcategory: "Current Assets"},
		{Code: "1010", Name: "Business Checking", Type: domain.Asset, Subcategory: "Current Assets"},
		{Code: "1100", Name: "Accounts Receivable", Type: domain.Asset, Subcategory: "Current Assets"},
		{Code: "1200", Name: "Raw Materials", Type: domain.Asset, Subcategory: "Inventory", Role: role(domain.RoleRawMaterials)},
		{Code: "1220", Name: "Work in Progress", Type: domain.Asset, Subcategory: "Inventory", Role: role(domain.RoleWIP)},
		{Code: "1230", Name: "Finished Goods", Type: domain.Asset, Subcategory: "Inventory", Role: role(domain.RoleFinishedGoods)},
		{Code: "1500", Name: "Equipment", Type: domain.Asset, Subcategory: "CAPEX"},
		{Code: "2000", Name: "Accounts Payable", Type: domain.Liability, Subcategory: "Current Liabilities"},
		{Code: "2100", Name: "Taxes Payable", Type: domain.Liability, Subcategory: "Current Liabilities"},
		{Code: "2500", Name: "Loans Payable", Type: domain.Liability, Subcategory: "Long-term Liabilities"},
		{Code: "3000", Name: "Owner's Capital", Type: domain.Equity},
		{Code: "3100", Name: "Owner's Drawings", Type: domain.Equity},
		{Code: "4000", Name: "Sales Revenue", Type: domain.Revenue},
		{Code: "4100", Name: "Service Revenue", Type: domain.Revenue},
		{Code: "5000", Name: "Cost of Goods Sold", Type: domain.COGS, Role: role(domain.RoleCOGS)},
		{Code: "6000", Name: "Rent Expense", Type: domain.Expense, Subcategory: "OPEX"},
		{Code: "6100", Name: "Utilities Expense", Type: domain.Expense, Subcategory: "OPEX"},
		{Code: "6200", Name: "Salaries and Wages", Type: domain.Expense, Subcategory: "OPEX"},
		{Code: "6300", Name: "Marketing Expense", Type: domain.Expense, Subcategory: "OPEX"},
		{Code: "7000", Name: "Interest Income", Type: domain.OtherIncome},
		{Code: "7500", Name: "Interest Expense", Type: domain.OtherExpense},
	}
}
