package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/SscSPs/bizledger/internal/utils/accounting"
	"github.com/google/uuid"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	txManager   portsrepo.TransactionManager
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountClock overrides the clock used for audit fields.
func WithAccountClock(now func() time.Time) AccountServiceOption {
	return func(s *accountService) {
		s.now = now
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, txManager portsrepo.TransactionManager, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: repo,
		txManager:   txManager,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, businessID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	if err := accounting.ValidateAccountCode(req.Code, req.AccountType); err != nil {
		s.LogWarn(ctx, err, "Rejected account code", slog.String("code", req.Code), slog.String("account_type", string(req.AccountType)))
		return nil, err
	}
	if req.InventoryRole != nil {
		if err := validateRole(*req.InventoryRole, req.AccountType); err != nil {
			return nil, err
		}
	}

	now := s.Now()
	account := domain.Account{
		AccountID:     uuid.NewString(),
		BusinessID:    businessID,
		Code:          req.Code,
		Name:          name,
		AccountType:   req.AccountType,
		Subcategory:   strings.TrimSpace(req.Subcategory),
		InventoryRole: req.InventoryRole,
		BankAccountID: req.BankAccountID,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	err := s.txManager.RunInBusinessTx(ctx, businessID, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		if account.InventoryRole != nil {
			if err := ensureRoleFree(ctx, repos.Accounts, businessID, *account.InventoryRole, ""); err != nil {
				return err
			}
		}
		if err := repos.Accounts.SaveAccount(ctx, account); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				return fmt.Errorf("account code %s already exists: %w", account.Code, err)
			}
			return fmt.Errorf("failed to save account: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to create account", slog.String("code", req.Code))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, businessID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, businessID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get account", slog.String("account_id", accountID))
		}
		return nil, fmt.Errorf("failed to get account %s: %w", accountID, err)
	}
	return account, nil
}

func (s *accountService) GetAccountByCode(ctx context.Context, businessID string, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, businessID, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get account by code", slog.String("code", code))
		}
		return nil, fmt.Errorf("failed to get account with code %s: %w", code, err)
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, businessID string, params dto.ListAccountsParams) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if params.IncludeInactive {
		return accounts, nil
	}
	active := make([]domain.Account, 0, len(accounts))
	for _, acc := range accounts {
		if acc.IsActive {
			active = append(active, acc)
		}
	}
	return active, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, businessID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	var updated domain.Account
	err := s.txManager.RunInBusinessTx(ctx, businessID, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		account, err := repos.Accounts.FindAccountByID(ctx, businessID, accountID)
		if err != nil {
			return fmt.Errorf("failed to get account %s: %w", accountID, err)
		}

		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return fmt.Errorf("%w: account name cannot be empty", apperrors.ErrValidation)
			}
			account.Name = name
		}
		if req.Subcategory != nil {
			account.Subcategory = strings.TrimSpace(*req.Subcategory)
		}
		switch {
		case req.ClearRole:
			account.InventoryRole = nil
		case req.InventoryRole != nil:
			if err := validateRole(*req.InventoryRole, account.AccountType); err != nil {
				return err
			}
			if err := ensureRoleFree(ctx, repos.Accounts, businessID, *req.InventoryRole, account.AccountID); err != nil {
				return err
			}
			role := *req.InventoryRole
			account.InventoryRole = &role
		}

		account.LastUpdatedAt = s.Now()
		account.LastUpdatedBy = userID
		if err := repos.Accounts.UpdateAccount(ctx, *account); err != nil {
			return fmt.Errorf("failed to update account: %w", err)
		}
		updated = *account
		return nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return &updated, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, businessID string, accountID string, userID string) error {
	account, err := s.accountRepo.FindAccountByID(ctx, businessID, accountID)
	if err != nil {
		return fmt.Errorf("failed to get account %s: %w", accountID, err)
	}
	if !account.IsActive {
		return nil
	}
	if err := s.accountRepo.DeactivateAccount(ctx, accountID, userID, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		return fmt.Errorf("failed to deactivate account: %w", err)
	}
	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID))
	return nil
}

func (s *accountService) DeleteAccount(ctx context.Context, businessID string, accountID string, userID string) error {
	account, err := s.accountRepo.FindAccountByID(ctx, businessID, accountID)
	if err != nil {
		return fmt.Errorf("failed to get account %s: %w", accountID, err)
	}
	if account.IsBankLinked() {
		return fmt.Errorf("%w: account %s backs bank account %s and must be removed through it",
			apperrors.ErrConflict, account.Code, *account.BankAccountID)
	}
	return s.DeactivateAccount(ctx, businessID, accountID, userID)
}

func (s *accountService) CreateDefaultChart(ctx context.Context, businessID string, userID string) ([]domain.Account, []string, error) {
	created := make([]domain.Account, 0)
	skipped := make([]string, 0)

	err := s.txManager.RunInBusinessTx(ctx, businessID, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		existing, err := repos.Accounts.ListAccounts(ctx, businessID)
		if err != nil {
			return fmt.Errorf("failed to list accounts: %w", err)
		}
		codes := make(map[string]bool, len(existing))
		for _, acc := range existing {
			codes[acc.Code] = true
		}
		roles := domain.ResolveInventoryRoles(existing)

		now := s.Now()
		for _, tpl := range accounting.DefaultChart() {
			if codes[tpl.Code] {
				skipped = append(skipped, tpl.Code)
				continue
			}
			account := domain.Account{
				AccountID:   uuid.NewString(),
				BusinessID:  businessID,
				Code:        tpl.Code,
				Name:        tpl.Name,
				AccountType: tpl.Type,
				Subcategory: tpl.Subcategory,
				IsActive:    true,
				AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID},
			}
			if tpl.Role != nil {
				if _, taken := roles[*tpl.Role]; !taken {
					role := *tpl.Role
					account.InventoryRole = &role
					roles[role] = account.AccountID
				}
			}
			if err := repos.Accounts.SaveAccount(ctx, account); err != nil {
				return fmt.Errorf("failed to save default account %s: %w", tpl.Code, err)
			}
			created = append(created, account)
		}
		return nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to seed default chart")
		return nil, nil, err
	}

	s.LogInfo(ctx, "Default chart seeded", slog.Int("created", len(created)), slog.Int("skipped", len(skipped)))
	return created, skipped, nil
}

func (s *accountService) RemoveBankLinkedAccounts(ctx context.Context, businessID string, bankAccountID string, userID string) (*dto.BankAccountCascadeResponse, error) {
	result := &dto.BankAccountCascadeResponse{BankAccountID: bankAccountID, Deleted: []string{}, Deactivated: []string{}}

	err := s.txManager.RunInBusinessTx(ctx, businessID, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		linked, err := repos.Accounts.FindAccountsByBankAccountID(ctx, businessID, bankAccountID)
		if err != nil {
			return fmt.Errorf("failed to find accounts for bank account %s: %w", bankAccountID, err)
		}
		now := s.Now()
		for _, acc := range linked {
			used, err := repos.Accounts.AccountHasActivity(ctx, acc.AccountID)
			if err != nil {
				return fmt.Errorf("failed to check activity of account %s: %w", acc.AccountID, err)
			}
			if used {
				if err := repos.Accounts.DeactivateAccount(ctx, acc.AccountID, userID, now); err != nil {
					return fmt.Errorf("failed to deactivate account %s: %w", acc.AccountID, err)
				}
				result.Deactivated = append(result.Deactivated, acc.AccountID)
				continue
			}
			if err := repos.Accounts.DeleteAccount(ctx, acc.AccountID); err != nil {
				return fmt.Errorf("failed to delete account %s: %w", acc.AccountID, err)
			}
			result.Deleted = append(result.Deleted, acc.AccountID)
		}
		return nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to remove bank-linked accounts", slog.String("bank_account_id", bankAccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Bank-linked accounts removed",
		slog.String("bank_account_id", bankAccountID),
		slog.Int("deleted", len(result.Deleted)),
		slog.Int("deactivated", len(result.Deactivated)))
	return result, nil
}

func (s *accountService) logFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrDuplicate) ||
		errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrConflict) {
		s.LogWarn(ctx, err, msg, keyvals...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}

func validateRole(role domain.AccountRole, accountType domain.AccountType) error {
	if !role.IsValid() {
		return fmt.Errorf("%w: unknown inventory role %q", apperrors.ErrValidation, role)
	}
	if want := role.RequiredAccountType(); want != accountType {
		return fmt.Errorf("%w: inventory role %s requires a %s account, got %s", apperrors.ErrValidation, role, want, accountType)
	}
	return nil
}

func ensureRoleFree(ctx context.Context, repo portsrepo.AccountReader, businessID string, role domain.AccountRole, exceptAccountID string) error {
	accounts, err := repo.ListAccounts(ctx, businessID)
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}
	if holder, ok := domain.ResolveInventoryRoles(accounts)[role]; ok && holder != exceptAccountID {
		return fmt.Errorf("inventory role %s is already assigned to account %s: %w", role, holder, apperrors.ErrDuplicate)
	}
	return nil
}
