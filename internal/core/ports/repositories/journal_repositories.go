package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalReader defines read operations for journal data.
// Entries are always returned whole, with their lines and the joined account code and name.
type JournalReader interface {
	// FindJournalEntryByID retrieves a single entry of a business.
	FindJournalEntryByID(ctx context.Context, businessID string, entryID string) (*domain.JournalEntry, error)

	// ListJournalEntries retrieves every entry of a business in creation order.
	ListJournalEntries(ctx context.Context, businessID string) ([]domain.JournalEntry, error)

	// ListJournalEntriesPage retrieves up to limit entries in creation order after nextToken.
	// It returns the entries and a token for the next page, nil when there are no more.
	ListJournalEntriesPage(ctx context.Context, businessID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)

	// CountJournalEntries counts draft and posted entries of a business.
	CountJournalEntries(ctx context.Context, businessID string) (int, error)

	// FindReversalOf retrieves the entry that reverses entryID, or apperrors.ErrNotFound.
	FindReversalOf(ctx context.Context, businessID string, entryID string) (*domain.JournalEntry, error)

	// SumPostedLinesForAccount returns Σdebit − Σcredit over all posted lines of the account.
	SumPostedLinesForAccount(ctx context.Context, businessID string, accountID string) (decimal.Decimal, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// SaveJournalEntry persists an entry together with its lines, all or nothing.
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error

	// ReplaceDraftJournalEntry overwrites the header and lines of a draft.
	// It fails with apperrors.ErrConflict if the stored entry is posted.
	ReplaceDraftJournalEntry(ctx context.Context, entry domain.JournalEntry) error

	// MarkJournalEntryPosted flips a draft to posted. Posting is one-way;
	// an already posted entry yields apperrors.ErrConflict.
	MarkJournalEntryPosted(ctx context.Context, businessID string, entryID string, userID string, postedAt time.Time) error

	// DeleteJournalEntry removes a draft and its lines. Posted entries yield apperrors.ErrConflict.
	DeleteJournalEntry(ctx context.Context, businessID string, entryID string) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
