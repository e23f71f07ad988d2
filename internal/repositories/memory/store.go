// Package memory is an in-process implementation of the repository ports.
// Each business's books are replaced wholesale on commit, so readers always
// see either all or none of a unit of work.
package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/SscSPs/bizledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
)

// books is the state of one business. A published *books is never mutated.
type books struct {
	accounts map[string]domain.Account
	entries  map[string]domain.JournalEntry
}

func newBooks() *books {
	return &books{
		accounts: make(map[string]domain.Account),
		entries:  make(map[string]domain.JournalEntry),
	}
}

func (b *books) clone() *books {
	c := &books{
		accounts: make(map[string]domain.Account, len(b.accounts)),
		entries:  make(map[string]domain.JournalEntry, len(b.entries)),
	}
	for id, acc := range b.accounts {
		c.accounts[id] = acc
	}
	for id, e := range b.entries {
		e.Lines = append([]domain.JournalLine(nil), e.Lines...)
		c.entries[id] = e
	}
	return c
}

// Store keeps every business's books in memory.
type Store struct {
	mu         sync.RWMutex
	byBusiness map[string]*books

	lockMu sync.Mutex
	locks  map[string]*sync.Mutex

	seq atomic.Int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		byBusiness: make(map[string]*books),
		locks:      make(map[string]*sync.Mutex),
	}
}

// NewRepositoryProvider wires repositories and a transaction manager over one store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	v := view{store: store}
	return portsrepo.RepositoryProvider{
		AccountRepo: &AccountRepository{view: v},
		JournalRepo: &JournalRepository{view: v},
		TxManager:   store,
	}
}

var _ portsrepo.TransactionManager = (*Store)(nil)

func (s *Store) businessLock(businessID string) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	l, ok := s.locks[businessID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[businessID] = l
	}
	return l
}

func (s *Store) snapshot(businessID string) *books {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.byBusiness[businessID]; ok {
		return b
	}
	return newBooks()
}

func (s *Store) publish(businessID string, b *books) {
	s.mu.Lock()
	s.byBusiness[businessID] = b
	s.mu.Unlock()
}

// ownerOfAccount finds the business an account belongs to.
func (s *Store) ownerOfAccount(accountID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for businessID, b := range s.byBusiness {
		if _, ok := b.accounts[accountID]; ok {
			return businessID, true
		}
	}
	return "", false
}

// RunInBusinessTx serializes fn with every other writer of the business and
// publishes its changes only when fn succeeds.
func (s *Store) RunInBusinessTx(ctx context.Context, businessID string, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	lock := s.businessLock(businessID)
	lock.Lock()
	defer lock.Unlock()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("unit of work cancelled: %w", err)
	}

	staged := s.snapshot(businessID).clone()
	v := view{store: s, staged: staged, businessID: businessID}
	repos := portsrepo.TxRepositories{
		Accounts: &AccountRepository{view: v},
		Journals: &JournalRepository{view: v},
	}
	if err := fn(ctx, repos); err != nil {
		return err
	}
	s.publish(businessID, staged)
	return nil
}

func (s *Store) nextSequence() int64 {
	return s.seq.Add(1)
}

// view routes reads and writes either to the published books or to a unit of work's staging copy.
type view struct {
	store      *Store
	staged     *books
	businessID string
}

func (v view) read(businessID string) *books {
	if v.staged != nil {
		if businessID == v.businessID {
			return v.staged
		}
		return newBooks()
	}
	return v.store.snapshot(businessID)
}

func (v view) write(ctx context.Context, businessID string, fn func(b *books) error) error {
	if v.staged != nil {
		if businessID != v.businessID {
			return fmt.Errorf("write to business %s inside unit of work for %s", businessID, v.businessID)
		}
		return fn(v.staged)
	}
	return v.store.RunInBusinessTx(ctx, businessID, func(_ context.Context, repos portsrepo.TxRepositories) error {
		return fn(repos.Accounts.(*AccountRepository).staged)
	})
}

func (v view) ownerOfAccount(accountID string) (string, bool) {
	if v.staged != nil {
		_, ok := v.staged.accounts[accountID]
		return v.businessID, ok
	}
	return v.store.ownerOfAccount(accountID)
}
