package accounting

import (
	"context"
	"fmt"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostedBalanceReader returns Σdebit − Σcredit over all posted lines of an account.
type PostedBalanceReader interface {
	SumPostedLinesForAccount(ctx context.Context, businessID string, accountID string) (decimal.Decimal, error)
}

type roleMovement struct {
	debit    decimal.Decimal
	credited bool
}

// CheckInventoryFlow enforces the Raw Materials → WIP → Finished Goods → COGS
// ordering for an entry about to be posted. Rules are evaluated in order and the
// first violation is returned. Rules only fire for roles mapped in roles; a
// rule that needs a counterpart credit fails when the counterpart is unmapped.
func CheckInventoryFlow(ctx context.Context, businessID string, lines []domain.JournalLine, roles domain.InventoryRoles, balances PostedBalanceReader) error {
	moves := make(map[domain.AccountRole]*roleMovement, len(roles))
	for role := range roles {
		moves[role] = &roleMovement{debit: decimal.Zero}
	}
	for _, l := range lines {
		role, ok := roles.RoleOf(l.AccountID)
		if !ok {
			continue
		}
		m := moves[role]
		m.debit = m.debit.Add(l.DebitAmount)
		if l.CreditAmount.IsPositive() {
			m.credited = true
		}
	}

	debited := func(role domain.AccountRole) bool {
		m, ok := moves[role]
		return ok && m.debit.IsPositive()
	}
	credited := func(role domain.AccountRole) bool {
		m, ok := moves[role]
		return ok && m.credited
	}

	if debited(domain.RoleCOGS) {
		if !credited(domain.RoleFinishedGoods) {
			return apperrors.NewInventoryFlowError(apperrors.RuleCOGSWithoutFinishedGoodsCredit,
				"an entry debiting cost of goods sold must also credit finished goods",
				accountIDs(roles, domain.RoleCOGS, domain.RoleFinishedGoods)...)
		}
		if err := requireBalance(ctx, businessID, balances, roles, domain.RoleFinishedGoods, moves[domain.RoleCOGS].debit,
			apperrors.RuleInsufficientFinishedGoods, "finished goods"); err != nil {
			return err
		}
	}

	if debited(domain.RoleFinishedGoods) && !credited(domain.RoleWIP) {
		return apperrors.NewInventoryFlowError(apperrors.RuleProductionWithoutWIPCredit,
			"an entry debiting finished goods must also credit work in progress",
			accountIDs(roles, domain.RoleFinishedGoods, domain.RoleWIP)...)
	}

	if debited(domain.RoleWIP) {
		if !credited(domain.RoleRawMaterials) {
			return apperrors.NewInventoryFlowError(apperrors.RuleWIPWithoutRawMaterialsCredit,
				"an entry debiting work in progress must also credit raw materials",
				accountIDs(roles, domain.RoleWIP, domain.RoleRawMaterials)...)
		}
		if err := requireBalance(ctx, businessID, balances, roles, domain.RoleRawMaterials, moves[domain.RoleWIP].debit,
			apperrors.RuleInsufficientRawMaterials, "raw materials"); err != nil {
			return err
		}
	}

	return nil
}

func requireBalance(ctx context.Context, businessID string, balances PostedBalanceReader, roles domain.InventoryRoles,
	role domain.AccountRole, required decimal.Decimal, rule apperrors.InventoryRule, label string) error {
	accountID := roles[role]
	balance, err := balances.SumPostedLinesForAccount(ctx, businessID, accountID)
	if err != nil {
		return fmt.Errorf("failed to read posted balance for %s account %s: %w", label, accountID, err)
	}
	if balance.LessThan(required) {
		vErr := apperrors.NewInventoryFlowError(rule,
			fmt.Sprintf("%s balance %s is less than the required %s", label, balance.StringFixed(AmountScale), required.StringFixed(AmountScale)),
			accountID)
		vErr.Balance = balance
		vErr.Required = required
		return vErr
	}
	return nil
}

func accountIDs(roles domain.InventoryRoles, wanted ...domain.AccountRole) []string {
	ids := make([]string, 0, len(wanted))
	for _, role := range wanted {
		if id, ok := roles[role]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
