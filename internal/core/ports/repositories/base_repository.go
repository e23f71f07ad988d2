package repositories

import (
	"context"
)

// TxRepositories are the repositories bound to one business-scoped unit of work.
type TxRepositories struct {
	Accounts AccountRepositoryFacade
	Journals JournalRepositoryFacade
}

// TransactionManager runs work that must not interleave with other writers of the same business.
type TransactionManager interface {
	// RunInBusinessTx calls fn while holding the business's write lock. Everything fn
	// writes through repos becomes visible together when fn returns nil, and not at all
	// when it returns an error.
	RunInBusinessTx(ctx context.Context, businessID string, fn func(ctx context.Context, repos TxRepositories) error) error
}
