package memory

import (
	"context"
	"sort"
	"time"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
)

// AccountRepository implements portsrepo.AccountRepositoryFacade in memory.
type AccountRepository struct {
	view
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return r.write(ctx, account.BusinessID, func(b *books) error {
		if _, exists := b.accounts[account.AccountID]; exists {
			return apperrors.ErrDuplicate
		}
		for _, acc := range b.accounts {
			if acc.Code == account.Code {
				return apperrors.ErrDuplicate
			}
		}
		b.accounts[account.AccountID] = account
		return nil
	})
}

func (r *AccountRepository) FindAccountByID(_ context.Context, businessID string, accountID string) (*domain.Account, error) {
	acc, ok := r.read(businessID).accounts[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &acc, nil
}

func (r *AccountRepository) FindAccountByCode(_ context.Context, businessID string, code string) (*domain.Account, error) {
	for _, acc := range r.read(businessID).accounts {
		if acc.Code == code {
			return &acc, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *AccountRepository) FindAccountsByIDs(_ context.Context, businessID string, accountIDs []string) (map[string]domain.Account, error) {
	b := r.read(businessID)
	found := make(map[string]domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		if acc, ok := b.accounts[id]; ok {
			found[id] = acc
		}
	}
	return found, nil
}

func (r *AccountRepository) ListAccounts(_ context.Context, businessID string) ([]domain.Account, error) {
	b := r.read(businessID)
	accounts := make([]domain.Account, 0, len(b.accounts))
	for _, acc := range b.accounts {
		accounts = append(accounts, acc)
	}
	sortAccounts(accounts)
	return accounts, nil
}

func (r *AccountRepository) FindAccountsByBankAccountID(_ context.Context, businessID string, bankAccountID string) ([]domain.Account, error) {
	accounts := make([]domain.Account, 0)
	for _, acc := range r.read(businessID).accounts {
		if acc.BankAccountID != nil && *acc.BankAccountID == bankAccountID {
			accounts = append(accounts, acc)
		}
	}
	sortAccounts(accounts)
	return accounts, nil
}

func (r *AccountRepository) AccountHasActivity(_ context.Context, accountID string) (bool, error) {
	businessID, ok := r.ownerOfAccount(accountID)
	if !ok {
		return false, apperrors.ErrNotFound
	}
	for _, e := range r.read(businessID).entries {
		for _, l := range e.Lines {
			if l.AccountID == accountID {
				return true, nil
			}
		}
	}
	return false, nil
}

func (r *AccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	return r.write(ctx, account.BusinessID, func(b *books) error {
		current, ok := b.accounts[account.AccountID]
		if !ok {
			return apperrors.ErrNotFound
		}
		current.Name = account.Name
		current.Subcategory = account.Subcategory
		current.InventoryRole = account.InventoryRole
		current.LastUpdatedAt = account.LastUpdatedAt
		current.LastUpdatedBy = account.LastUpdatedBy
		b.accounts[account.AccountID] = current
		return nil
	})
}

func (r *AccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	businessID, ok := r.ownerOfAccount(accountID)
	if !ok {
		return apperrors.ErrNotFound
	}
	return r.write(ctx, businessID, func(b *books) error {
		acc, ok := b.accounts[accountID]
		if !ok {
			return apperrors.ErrNotFound
		}
		acc.IsActive = false
		acc.LastUpdatedAt = now
		acc.LastUpdatedBy = userID
		b.accounts[accountID] = acc
		return nil
	})
}

func (r *AccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	businessID, ok := r.ownerOfAccount(accountID)
	if !ok {
		return apperrors.ErrNotFound
	}
	return r.write(ctx, businessID, func(b *books) error {
		if _, ok := b.accounts[accountID]; !ok {
			return apperrors.ErrNotFound
		}
		delete(b.accounts, accountID)
		return nil
	})
}

func sortAccounts(accounts []domain.Account) {
	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].Code != accounts[j].Code {
			return accounts[i].Code < accounts[j].Code
		}
		return accounts[i].AccountID < accounts[j].AccountID
	})
}
