package services

import (
	"context"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/dto"
)

// JournalReaderSvc defines read operations for journal entries
type JournalReaderSvc interface {
	// GetJournalEntry retrieves an entry with its lines.
	GetJournalEntry(ctx context.Context, businessID string, entryID string) (*domain.JournalEntry, error)

	// ListJournalEntries lists entries in creation order, optionally paginated.
	ListJournalEntries(ctx context.Context, businessID string, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error)
}

// JournalWriterSvc defines write operations for journal entries
type JournalWriterSvc interface {
	// CreateJournalEntry saves a draft, or a posted entry when req.Post is set.
	CreateJournalEntry(ctx context.Context, businessID string, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// UpdateDraftJournalEntry edits a draft owned by userID.
	UpdateDraftJournalEntry(ctx context.Context, businessID string, entryID string, req dto.UpdateJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// DeleteDraftJournalEntry removes a draft owned by userID.
	DeleteDraftJournalEntry(ctx context.Context, businessID string, entryID string, userID string) error

	// PostJournalEntry validates and posts a draft owned by userID.
	PostJournalEntry(ctx context.Context, businessID string, entryID string, userID string) (*domain.JournalEntry, error)

	// ReverseJournalEntry posts a new entry that cancels a posted entry.
	ReverseJournalEntry(ctx context.Context, businessID string, entryID string, req dto.ReverseJournalEntryRequest, userID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
