package apperrors

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidationCategory groups validation failures by the check that produced them.
type ValidationCategory string

const (
	CategoryStructural    ValidationCategory = "STRUCTURAL"
	CategoryBalance       ValidationCategory = "BALANCE"
	CategoryInventoryFlow ValidationCategory = "INVENTORY_FLOW"
)

// ValidationKind identifies the exact failing check.
type ValidationKind string

const (
	KindNoLines           ValidationKind = "NO_LINES"
	KindTooFewLines       ValidationKind = "TOO_FEW_LINES"
	KindMissingAccount    ValidationKind = "MISSING_ACCOUNT"
	KindNegativeAmount    ValidationKind = "NEGATIVE_AMOUNT"
	KindDebitAndCredit    ValidationKind = "DEBIT_AND_CREDIT"
	KindEmptyEntry        ValidationKind = "EMPTY_ENTRY"
	KindEmptyLine         ValidationKind = "EMPTY_LINE"
	KindPrecisionExceeded ValidationKind = "PRECISION_EXCEEDED"
	KindUnbalanced        ValidationKind = "UNBALANCED"
	KindInventoryFlow     ValidationKind = "INVENTORY_FLOW"
)

// InventoryRule names one of the manufacturing flow rules checked at post time.
type InventoryRule string

const (
	RuleCOGSWithoutFinishedGoodsCredit InventoryRule = "COGS_WITHOUT_FINISHED_GOODS_CREDIT"
	RuleInsufficientFinishedGoods      InventoryRule = "INSUFFICIENT_FINISHED_GOODS"
	RuleProductionWithoutWIPCredit     InventoryRule = "PRODUCTION_WITHOUT_WIP_CREDIT"
	RuleWIPWithoutRawMaterialsCredit   InventoryRule = "WIP_WITHOUT_RAW_MATERIALS_CREDIT"
	RuleInsufficientRawMaterials       InventoryRule = "INSUFFICIENT_RAW_MATERIALS"
)

// IsInsufficiency reports whether the rule compares a posted balance with a required amount.
func (r InventoryRule) IsInsufficiency() bool {
	return r == RuleInsufficientFinishedGoods || r == RuleInsufficientRawMaterials
}

// ValidationError describes why a journal entry was rejected.
// LineNo is 1-based; zero means the failure is not tied to a single line.
type ValidationError struct {
	Category ValidationCategory
	Kind     ValidationKind
	Message  string
	LineNo   int

	// Set for UNBALANCED.
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Difference  decimal.Decimal

	// Set for INVENTORY_FLOW.
	Rule       InventoryRule
	AccountIDs []string
	Balance    decimal.Decimal
	Required   decimal.Decimal
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Rule != "" {
		b.WriteString("/")
		b.WriteString(string(e.Rule))
	}
	if e.LineNo > 0 {
		fmt.Fprintf(&b, " (line %d)", e.LineNo)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is lets callers match any ValidationError with errors.Is(err, ErrValidation).
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewStructuralError builds a STRUCTURAL validation error.
func NewStructuralError(kind ValidationKind, lineNo int, message string) *ValidationError {
	return &ValidationError{Category: CategoryStructural, Kind: kind, LineNo: lineNo, Message: message}
}

// NewBalanceError builds the UNBALANCED error carrying both totals and their difference.
func NewBalanceError(totalDebit, totalCredit decimal.Decimal) *ValidationError {
	diff := totalDebit.Sub(totalCredit)
	return &ValidationError{
		Category:    CategoryBalance,
		Kind:        KindUnbalanced,
		Message:     fmt.Sprintf("debits %s do not equal credits %s (difference %s)", totalDebit.StringFixed(2), totalCredit.StringFixed(2), diff.StringFixed(2)),
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		Difference:  diff,
	}
}

// NewInventoryFlowError builds an INVENTORY_FLOW error for rule.
func NewInventoryFlowError(rule InventoryRule, message string, accountIDs ...string) *ValidationError {
	return &ValidationError{
		Category:   CategoryInventoryFlow,
		Kind:       KindInventoryFlow,
		Rule:       rule,
		Message:    message,
		AccountIDs: accountIDs,
	}
}
