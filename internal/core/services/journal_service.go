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

// journalService implements the JournalSvcFacade interface
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	txManager   portsrepo.TransactionManager
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithJournalClock overrides the clock used for posting timestamps and audit fields.
func WithJournalClock(now func() time.Time) JournalServiceOption {
	return func(s *journalService) {
		s.now = now
	}
}

// NewJournalService creates a new journal service with the provided options
func NewJournalService(repo portsrepo.JournalRepositoryFacade, txManager portsrepo.TransactionManager, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		journalRepo: repo,
		txManager:   txManager,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure journalService implements the JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) CreateJournalEntry(ctx context.Context, businessID string, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	mode := accounting.ModeDraft
	if req.Post {
		mode = accounting.ModePost
	}
	lines := dto.ToDomainLines(req.Lines)
	if err := accounting.ValidateEntry(lines, mode); err != nil {
		s.LogWarn(ctx, err, "Rejected journal entry", slog.String("mode", mode.String()))
		return nil, err
	}

	now := s.Now()
	requestedRef := strings.TrimSpace(req.ReferenceNumber)
	entry := domain.JournalEntry{
		EntryID:     uuid.NewString(),
		BusinessID:  businessID,
		EntryDate:   req.EntryDate,
		Description: strings.TrimSpace(req.Description),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	err := s.txManager.RunInBusinessTx(ctx, businessID, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		// The unit of work may run more than once; state from an aborted attempt is discarded.
		entry.ReferenceNumber = requestedRef
		entry.IsPosted = false
		entry.PostedAt = nil
		entry.Lines = nil

		if err := checkLineAccounts(ctx, repos.Accounts, businessID, lines); err != nil {
			return err
		}
		if req.Post {
			if err := s.checkInventoryFlow(ctx, repos, businessID, lines); err != nil {
				return err
			}
			entry.IsPosted = true
			entry.PostedAt = &now
		}
		if entry.ReferenceNumber == "" {
			ref, err := nextReference(ctx, repos.Journals, businessID, entry.EntryDate)
			if err != nil {
				return err
			}
			entry.ReferenceNumber = ref
		}
		entry.Lines = assignLineIDs(entry.EntryID, lines)
		if err := repos.Journals.SaveJournalEntry(ctx, entry); err != nil {
			return fmt.Errorf("failed to save journal entry: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to create journal entry")
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("reference", entry.ReferenceNumber),
		slog.String("status", string(entry.Status())))
	return &entry, nil
}

func (s *journalService) GetJournalEntry(ctx context.Context, businessID string, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindJournalEntryByID(ctx, businessID, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get journal entry", slog.String("entry_id", entryID))
		}
		return nil, fmt.Errorf("failed to get journal entry %s: %w", entryID, err)
	}
	return entry, nil
}

func (s *journalService) ListJournalEntries(ctx context.Context, businessID string, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	if params.Limit <= 0 {
		entries, err := s.journalRepo.ListJournalEntries(ctx, businessID)
		if err != nil {
			s.LogError(ctx, err, "Failed to list journal entries")
			return nil, fmt.Errorf("failed to list journal entries: %w", err)
		}
		return &dto.ListJournalEntriesResponse{Entries: dto.ToJournalEntryResponses(entries)}, nil
	}

	var token *string
	if params.NextToken != "" {
		token = &params.NextToken
	}
	entries, next, err := s.journalRepo.ListJournalEntriesPage(ctx, businessID, params.Limit, token)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list journal entries page", slog.Int("limit", params.Limit))
		}
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return &dto.ListJournalEntriesResponse{Entries: dto.ToJournalEntryResponses(entries), NextToken: next}, nil
}

func (s *journalService) UpdateDraftJournalEntry(ctx context.Context, businessID string, entryID string, req dto.UpdateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	var updated domain.JournalEntry
	err := s.txManager.RunInBusinessTx(ctx, businessID, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		entry, err := s.loadOwnDraft(ctx, repos.Journals, businessID, entryID, userID)
		if err != nil {
			return err
		}

		if req.EntryDate != nil {
			entry.EntryDate = *req.EntryDate
		}
		if req.ReferenceNumber != nil {
			entry.ReferenceNumber = strings.TrimSpace(*req.ReferenceNumber)
		}
		if req.Description != nil {
			entry.Description = strings.TrimSpace(*req.Description)
		}

		lines := entry.Lines
		if req.Lines != nil {
			lines = dto.ToDomainLines(req.Lines)
		}
		if err := accounting.ValidateEntry(lines, accounting.ModeDraft); err != nil {
			return err
		}
		if err := checkLineAccounts(ctx, repos.Accounts, businessID, lines); err != nil {
			return err
		}
		if entry.ReferenceNumber == "" {
			ref, err := nextReference(ctx, repos.Journals, businessID, entry.EntryDate)
			if err != nil {
				return err
			}
			entry.ReferenceNumber = ref
		}

		entry.Lines = assignLineIDs(entry.EntryID, lines)
		entry.LastUpdatedAt = s.Now()
		entry.LastUpdatedBy = userID
		if err := repos.Journals.ReplaceDraftJournalEntry(ctx, *entry); err != nil {
			return fmt.Errorf("failed to update journal entry: %w", err)
		}
		updated = *entry
		return nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to update draft journal entry", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Draft journal entry updated", slog.String("entry_id", entryID))
	return &updated, nil
}

func (s *journalService) DeleteDraftJournalEntry(ctx context.Context, businessID string, entryID string, userID string) error {
	err := s.txManager.RunInBusinessTx(ctx, businessID, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		if _, err := s.loadOwnDraft(ctx, repos.Journals, businessID, entryID, userID); err != nil {
			return err
		}
		if err := repos.Journals.DeleteJournalEntry(ctx, businessID, entryID); err != nil {
			return fmt.Errorf("failed to delete journal entry: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to delete draft journal entry", slog.String("entry_id", entryID))
		return err
	}

	s.LogInfo(ctx, "Draft journal entry deleted", slog.String("entry_id", entryID))
	return nil
}

func (s *journalService) PostJournalEntry(ctx context.Context, businessID string, entryID string, userID string) (*domain.JournalEntry, error) {
	var posted domain.JournalEntry
	err := s.txManager.RunInBusinessTx(ctx, businessID, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		entry, err := s.loadOwnDraft(ctx, repos.Journals, businessID, entryID, userID)
		if err != nil {
			return err
		}
		if err := accounting.ValidateEntry(entry.Lines, accounting.ModePost); err != nil {
			return err
		}
		if err := checkLineAccounts(ctx, repos.Accounts, businessID, entry.Lines); err != nil {
			return err
		}
		if err := s.checkInventoryFlow(ctx, repos, businessID, entry.Lines); err != nil {
			return err
		}

		now := s.Now()
		if err := repos.Journals.MarkJournalEntryPosted(ctx, businessID, entryID, userID, now); err != nil {
			return fmt.Errorf("failed to post journal entry: %w", err)
		}
		entry.IsPosted = true
		entry.PostedAt = &now
		entry.LastUpdatedAt = now
		entry.LastUpdatedBy = userID
		posted = *entry
		return nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to post journal entry", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry posted", slog.String("entry_id", entryID), slog.String("reference", posted.ReferenceNumber))
	return &posted, nil
}

func (s *journalService) ReverseJournalEntry(ctx context.Context, businessID string, entryID string, req dto.ReverseJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	now := s.Now()
	var reversal domain.JournalEntry
	err := s.txManager.RunInBusinessTx(ctx, businessID, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		original, err := repos.Journals.FindJournalEntryByID(ctx, businessID, entryID)
		if err != nil {
			return fmt.Errorf("failed to get journal entry %s: %w", entryID, err)
		}
		if !original.IsPosted {
			return fmt.Errorf("%w: draft entries are edited or deleted, not reversed", apperrors.ErrConflict)
		}
		if original.ReversesEntryID != nil {
			return fmt.Errorf("%w: entry %s is itself a reversal", apperrors.ErrConflict, original.ReferenceNumber)
		}
		existing, err := repos.Journals.FindReversalOf(ctx, businessID, entryID)
		switch {
		case err == nil:
			return fmt.Errorf("%w: entry %s was already reversed by %s", apperrors.ErrConflict, original.ReferenceNumber, existing.ReferenceNumber)
		case !errors.Is(err, apperrors.ErrNotFound):
			return fmt.Errorf("failed to look up reversal of %s: %w", entryID, err)
		}

		lines := accounting.ReverseLines(original.Lines)
		if err := accounting.ValidateEntry(lines, accounting.ModePost); err != nil {
			return err
		}

		entryDate := now
		if req.EntryDate != nil {
			entryDate = *req.EntryDate
		}
		description := strings.TrimSpace(req.Description)
		if description == "" {
			description = "Reversal of " + original.ReferenceNumber
		}
		ref, err := nextReference(ctx, repos.Journals, businessID, entryDate)
		if err != nil {
			return err
		}

		reversesID := original.EntryID
		reversal = domain.JournalEntry{
			EntryID:         uuid.NewString(),
			BusinessID:      businessID,
			EntryDate:       entryDate,
			ReferenceNumber: ref,
			Description:     description,
			IsPosted:        true,
			PostedAt:        &now,
			ReversesEntryID: &reversesID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
		reversal.Lines = assignLineIDs(reversal.EntryID, lines)
		if err := repos.Journals.SaveJournalEntry(ctx, reversal); err != nil {
			return fmt.Errorf("failed to save reversing entry: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to reverse journal entry", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry reversed",
		slog.String("entry_id", entryID),
		slog.String("reversal_id", reversal.EntryID),
		slog.String("reference", reversal.ReferenceNumber))
	return &reversal, nil
}

// loadOwnDraft fetches a draft that userID may still change.
func (s *journalService) loadOwnDraft(ctx context.Context, repo portsrepo.JournalReader, businessID, entryID, userID string) (*domain.JournalEntry, error) {
	entry, err := repo.FindJournalEntryByID(ctx, businessID, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entry %s: %w", entryID, err)
	}
	if entry.IsPosted {
		return nil, fmt.Errorf("%w: journal entry %s is posted and cannot be changed", apperrors.ErrConflict, entry.ReferenceNumber)
	}
	if entry.CreatedBy != userID {
		return nil, fmt.Errorf("%w: only the author of a draft can change it", apperrors.ErrForbidden)
	}
	return entry, nil
}

func (s *journalService) checkInventoryFlow(ctx context.Context, repos portsrepo.TxRepositories, businessID string, lines []domain.JournalLine) error {
	accounts, err := repos.Accounts.ListAccounts(ctx, businessID)
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}
	roles := domain.ResolveInventoryRoles(accounts)
	return accounting.CheckInventoryFlow(ctx, businessID, lines, roles, repos.Journals)
}

func (s *journalService) logFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrForbidden):
		s.LogWarn(ctx, err, msg, keyvals...)
	default:
		s.LogError(ctx, err, msg, keyvals...)
	}
}

// checkLineAccounts requires every line account to exist and be active in the business,
// and fills in the joined code and name.
func checkLineAccounts(ctx context.Context, repo portsrepo.AccountReader, businessID string, lines []domain.JournalLine) error {
	ids := make([]string, 0, len(lines))
	seen := make(map[string]bool, len(lines))
	for _, l := range lines {
		if !seen[l.AccountID] {
			seen[l.AccountID] = true
			ids = append(ids, l.AccountID)
		}
	}
	found, err := repo.FindAccountsByIDs(ctx, businessID, ids)
	if err != nil {
		return fmt.Errorf("failed to load line accounts: %w", err)
	}
	for i := range lines {
		acc, ok := found[lines[i].AccountID]
		if !ok {
			return fmt.Errorf("%w: line %d references unknown account %s", apperrors.ErrValidation, lines[i].LineNo, lines[i].AccountID)
		}
		if !acc.IsActive {
			return fmt.Errorf("%w: line %d references inactive account %s", apperrors.ErrValidation, lines[i].LineNo, acc.Code)
		}
		lines[i].AccountCode = acc.Code
		lines[i].AccountName = acc.Name
	}
	return nil
}

func nextReference(ctx context.Context, repo portsrepo.JournalReader, businessID string, entryDate time.Time) (string, error) {
	count, err := repo.CountJournalEntries(ctx, businessID)
	if err != nil {
		return "", fmt.Errorf("failed to count journal entries: %w", err)
	}
	return accounting.NextReference(entryDate.Year(), count), nil
}

func assignLineIDs(entryID string, lines []domain.JournalLine) []domain.JournalLine {
	out := make([]domain.JournalLine, len(lines))
	for i, l := range lines {
		l.LineID = uuid.NewString()
		l.EntryID = entryID
		l.LineNo = i + 1
		out[i] = l
	}
	return out
}
