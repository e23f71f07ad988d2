package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	"github.com/SscSPs/bizledger/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// JournalRepository implements portsrepo.JournalRepositoryFacade in memory.
type JournalRepository struct {
	view
}

var _ portsrepo.JournalRepositoryFacade = (*JournalRepository)(nil)

// hydrate returns a copy of the entry with account code and name joined onto its lines.
func hydrate(b *books, e domain.JournalEntry) domain.JournalEntry {
	lines := make([]domain.JournalLine, len(e.Lines))
	for i, l := range e.Lines {
		if acc, ok := b.accounts[l.AccountID]; ok {
			l.AccountCode = acc.Code
			l.AccountName = acc.Name
		}
		lines[i] = l
	}
	e.Lines = lines
	return e
}

func orderedEntries(b *books) []domain.JournalEntry {
	entries := make([]domain.JournalEntry, 0, len(b.entries))
	for _, e := range b.entries {
		entries = append(entries, hydrate(b, e))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Sequence < entries[j].Sequence })
	return entries
}

func (r *JournalRepository) FindJournalEntryByID(_ context.Context, businessID string, entryID string) (*domain.JournalEntry, error) {
	b := r.read(businessID)
	e, ok := b.entries[entryID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	e = hydrate(b, e)
	return &e, nil
}

func (r *JournalRepository) ListJournalEntries(_ context.Context, businessID string) ([]domain.JournalEntry, error) {
	return orderedEntries(r.read(businessID)), nil
}

func (r *JournalRepository) ListJournalEntriesPage(_ context.Context, businessID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	var after int64
	if nextToken != nil && *nextToken != "" {
		seq, err := pagination.DecodeCursor(*nextToken, businessID)
		if err != nil {
			return nil, nil, err
		}
		after = seq
	}

	page := make([]domain.JournalEntry, 0, limit)
	var next *string
	for _, e := range orderedEntries(r.read(businessID)) {
		if e.Sequence <= after {
			continue
		}
		if len(page) == limit {
			token := pagination.EncodeCursor(businessID, page[len(page)-1].Sequence)
			next = &token
			break
		}
		page = append(page, e)
	}
	return page, next, nil
}

func (r *JournalRepository) CountJournalEntries(_ context.Context, businessID string) (int, error) {
	return len(r.read(businessID).entries), nil
}

func (r *JournalRepository) FindReversalOf(_ context.Context, businessID string, entryID string) (*domain.JournalEntry, error) {
	b := r.read(businessID)
	for _, e := range orderedEntries(b) {
		if e.ReversesEntryID != nil && *e.ReversesEntryID == entryID {
			return &e, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *JournalRepository) SumPostedLinesForAccount(_ context.Context, businessID string, accountID string) (decimal.Decimal, error) {
	net := decimal.Zero
	for _, e := range r.read(businessID).entries {
		if !e.IsPosted {
			continue
		}
		for _, l := range e.Lines {
			if l.AccountID == accountID {
				net = net.Add(l.Net())
			}
		}
	}
	return net, nil
}

func (r *JournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	return r.write(ctx, entry.BusinessID, func(b *books) error {
		if _, exists := b.entries[entry.EntryID]; exists {
			return fmt.Errorf("journal entry %s: %w", entry.EntryID, apperrors.ErrDuplicate)
		}
		entry.Sequence = r.store.nextSequence()
		entry.Lines = stripJoined(entry.Lines)
		b.entries[entry.EntryID] = entry
		return nil
	})
}

func (r *JournalRepository) ReplaceDraftJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	return r.write(ctx, entry.BusinessID, func(b *books) error {
		current, ok := b.entries[entry.EntryID]
		if !ok {
			return apperrors.ErrNotFound
		}
		if current.IsPosted {
			return fmt.Errorf("journal entry %s is posted: %w", entry.EntryID, apperrors.ErrConflict)
		}
		current.EntryDate = entry.EntryDate
		current.ReferenceNumber = entry.ReferenceNumber
		current.Description = entry.Description
		current.Lines = stripJoined(entry.Lines)
		current.LastUpdatedAt = entry.LastUpdatedAt
		current.LastUpdatedBy = entry.LastUpdatedBy
		b.entries[entry.EntryID] = current
		return nil
	})
}

func (r *JournalRepository) MarkJournalEntryPosted(ctx context.Context, businessID string, entryID string, userID string, postedAt time.Time) error {
	return r.write(ctx, businessID, func(b *books) error {
		current, ok := b.entries[entryID]
		if !ok {
			return apperrors.ErrNotFound
		}
		if current.IsPosted {
			return fmt.Errorf("journal entry %s is already posted: %w", entryID, apperrors.ErrConflict)
		}
		current.IsPosted = true
		current.PostedAt = &postedAt
		current.LastUpdatedAt = postedAt
		current.LastUpdatedBy = userID
		b.entries[entryID] = current
		return nil
	})
}

func (r *JournalRepository) DeleteJournalEntry(ctx context.Context, businessID string, entryID string) error {
	return r.write(ctx, businessID, func(b *books) error {
		current, ok := b.entries[entryID]
		if !ok {
			return apperrors.ErrNotFound
		}
		if current.IsPosted {
			return fmt.Errorf("journal entry %s is posted: %w", entryID, apperrors.ErrConflict)
		}
		delete(b.entries, entryID)
		return nil
	})
}

func stripJoined(lines []domain.JournalLine) []domain.JournalLine {
	out := make([]domain.JournalLine, len(lines))
	for i, l := range lines {
		l.AccountCode = ""
		l.AccountName = ""
		out[i] = l
	}
	return out
}
