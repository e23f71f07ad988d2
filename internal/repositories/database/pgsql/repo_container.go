package pgsql

import (
	"time"

	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the PostgreSQL repositories. Reads outside a unit
// of work go straight to db; writers are expected to use the TxManager.
func NewRepositoryProvider(db DB, retryMaxElapsed time.Duration) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: newPgxAccountRepository(db),
		JournalRepo: newPgxJournalRepository(db),
		TxManager:   NewTxManager(db, retryMaxElapsed),
	}
}
