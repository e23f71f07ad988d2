package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	"github.com/SscSPs/bizledger/internal/models"
	"github.com/SscSPs/bizledger/internal/utils/mapping"
	"github.com/SscSPs/bizledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const entryColumns = `entry_id, business_id, seq, entry_date, reference_number, description, is_posted, posted_at, reverses_entry_id, created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `l.line_id, l.entry_id, l.line_no, l.account_id, l.debit_amount, l.credit_amount, l.memo, a.code, a.name`

type PgxJournalRepository struct {
	db Querier
}

func newPgxJournalRepository(db Querier) *PgxJournalRepository {
	return &PgxJournalRepository{db: db}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

func scanJournalEntry(row rowScanner) (domain.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.BusinessID,
		&m.Seq,
		&m.EntryDate,
		&m.ReferenceNumber,
		&m.Description,
		&m.IsPosted,
		&m.PostedAt,
		&m.ReversesEntryID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.JournalEntry{}, err
	}
	return mapping.ToDomainJournalEntry(m), nil
}

// queryEntries loads entry headers and then their lines in one extra round trip.
func (r *PgxJournalRepository) queryEntries(ctx context.Context, query string, args ...interface{}) ([]domain.JournalEntry, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entries", err)
	}

	entries := []domain.JournalEntry{}
	for rows.Next() {
		e, err := scanJournalEntry(rows)
		if err != nil {
			rows.Close()
			return nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		entries = append(entries, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}

	if len(entries) == 0 {
		return entries, nil
	}
	if err := r.attachLines(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PgxJournalRepository) attachLines(ctx context.Context, entries []domain.JournalEntry) error {
	ids := make([]string, len(entries))
	index := make(map[string]int, len(entries))
	for i, e := range entries {
		ids[i] = e.EntryID
		index[e.EntryID] = i
	}

	query := `
		SELECT ` + lineColumns + `
		FROM journal_lines l
		JOIN accounts a ON a.account_id = l.account_id
		WHERE l.entry_id = ANY($1)
		ORDER BY l.entry_id, l.line_no;
	`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return apperrors.NewAppError(500, "failed to query journal lines", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.JournalLine
		var code, name string
		if err := rows.Scan(&m.LineID, &m.EntryID, &m.LineNo, &m.AccountID, &m.DebitAmount, &m.CreditAmount, &m.Memo, &code, &name); err != nil {
			return apperrors.NewAppError(500, "failed to scan journal line row", err)
		}
		i, ok := index[m.EntryID]
		if !ok {
			continue
		}
		line := mapping.ToDomainJournalLine(m)
		line.AccountCode, line.AccountName = code, name
		entries[i].Lines = append(entries[i].Lines, line)
	}
	if err := rows.Err(); err != nil {
		return apperrors.NewAppError(500, "error iterating journal line rows", err)
	}
	return nil
}

func (r *PgxJournalRepository) findOne(ctx context.Context, what string, query string, args ...interface{}) (*domain.JournalEntry, error) {
	entries, err := r.queryEntries(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, what)
	}
	return &entries[0], nil
}

// FindJournalEntryByID retrieves a single entry with its lines.
func (r *PgxJournalRepository) FindJournalEntryByID(ctx context.Context, businessID string, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE business_id = $1 AND entry_id = $2;`
	return r.findOne(ctx, entryID, query, businessID, entryID)
}

// FindReversalOf retrieves the entry reversing entryID.
func (r *PgxJournalRepository) FindReversalOf(ctx context.Context, businessID string, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE business_id = $1 AND reverses_entry_id = $2;`
	return r.findOne(ctx, "reversing "+entryID, query, businessID, entryID)
}

// ListJournalEntries retrieves every entry of a business in creation order.
func (r *PgxJournalRepository) ListJournalEntries(ctx context.Context, businessID string) ([]domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE business_id = $1 ORDER BY seq;`
	return r.queryEntries(ctx, query, businessID)
}

// ListJournalEntriesPage retrieves up to limit entries created after the cursor in nextToken.
func (r *PgxJournalRepository) ListJournalEntriesPage(ctx context.Context, businessID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		return nil, nil, fmt.Errorf("%w: limit must be positive", apperrors.ErrValidation)
	}

	var afterSeq int64
	if nextToken != nil && *nextToken != "" {
		seq, err := pagination.DecodeCursor(*nextToken, businessID)
		if err != nil {
			return nil, nil, err
		}
		afterSeq = seq
	}

	// One extra row tells whether another page exists.
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE business_id = $1 AND seq > $2 ORDER BY seq LIMIT $3;`
	entries, err := r.queryEntries(ctx, query, businessID, afterSeq, limit+1)
	if err != nil {
		return nil, nil, err
	}

	if len(entries) <= limit {
		return entries, nil, nil
	}
	entries = entries[:limit]
	next := pagination.EncodeCursor(businessID, entries[limit-1].Sequence)
	return entries, &next, nil
}

// CountJournalEntries counts draft and posted entries of a business.
func (r *PgxJournalRepository) CountJournalEntries(ctx context.Context, businessID string) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM journal_entries WHERE business_id = $1;`, businessID).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, fmt.Sprintf("failed to count journal entries of business %s", businessID), err)
	}
	return count, nil
}

// SumPostedLinesForAccount returns the signed sum of posted lines of an account.
func (r *PgxJournalRepository) SumPostedLinesForAccount(ctx context.Context, businessID string, accountID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(l.debit_amount - l.credit_amount), 0)
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE e.business_id = $1 AND l.account_id = $2 AND e.is_posted;
	`
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, businessID, accountID).Scan(&sum); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, fmt.Sprintf("failed to sum posted lines of account %s", accountID), err)
	}
	return sum, nil
}

// SaveJournalEntry inserts the header and all lines. Callers run it inside RunInBusinessTx.
func (r *PgxJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)

	query := `
		INSERT INTO journal_entries (entry_id, business_id, entry_date, reference_number, description, is_posted, posted_at, reverses_entry_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.db.Exec(ctx, query,
		m.EntryID,
		m.BusinessID,
		m.EntryDate,
		m.ReferenceNumber,
		m.Description,
		m.IsPosted,
		m.PostedAt,
		m.ReversesEntryID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return fmt.Errorf("%w: journal entry %s", apperrors.ErrDuplicate, m.EntryID)
		}
		return apperrors.NewAppError(500, fmt.Sprintf("failed to save journal entry %s", m.EntryID), err)
	}

	return r.insertLines(ctx, entry.EntryID, entry.Lines)
}

func (r *PgxJournalRepository) insertLines(ctx context.Context, entryID string, lines []domain.JournalLine) error {
	if len(lines) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO journal_lines (line_id, entry_id, line_no, account_id, debit_amount, credit_amount, memo)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, line := range lines {
		m := mapping.ToModelJournalLine(entryID, line)
		batch.Queue(query, m.LineID, m.EntryID, m.LineNo, m.AccountID, m.DebitAmount, m.CreditAmount, m.Memo)
	}

	br := r.db.SendBatch(ctx, batch)
	for i := range lines {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return apperrors.NewAppError(500, fmt.Sprintf("failed to insert line %d of journal entry %s", i+1, entryID), err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to insert lines of journal entry %s", entryID), err)
	}
	return nil
}

// lockedStatus locks the entry row and reports whether it is posted.
func (r *PgxJournalRepository) lockedStatus(ctx context.Context, businessID string, entryID string) (bool, error) {
	var posted bool
	err := r.db.QueryRow(ctx, `SELECT is_posted FROM journal_entries WHERE business_id = $1 AND entry_id = $2 FOR UPDATE;`, businessID, entryID).Scan(&posted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
		}
		return false, apperrors.NewAppError(500, fmt.Sprintf("failed to load journal entry %s", entryID), err)
	}
	return posted, nil
}

// ReplaceDraftJournalEntry overwrites the header and lines of a draft.
func (r *PgxJournalRepository) ReplaceDraftJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	posted, err := r.lockedStatus(ctx, entry.BusinessID, entry.EntryID)
	if err != nil {
		return err
	}
	if posted {
		return fmt.Errorf("%w: journal entry %s is posted", apperrors.ErrConflict, entry.EntryID)
	}

	m := mapping.ToModelJournalEntry(entry)
	query := `
		UPDATE journal_entries
		SET entry_date = $3, reference_number = $4, description = $5, last_updated_at = $6, last_updated_by = $7
		WHERE business_id = $1 AND entry_id = $2;
	`
	if _, err := r.db.Exec(ctx, query, m.BusinessID, m.EntryID, m.EntryDate, m.ReferenceNumber, m.Description, m.LastUpdatedAt, m.LastUpdatedBy); err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update journal entry %s", m.EntryID), err)
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM journal_lines WHERE entry_id = $1;`, m.EntryID); err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to clear lines of journal entry %s", m.EntryID), err)
	}
	return r.insertLines(ctx, entry.EntryID, entry.Lines)
}

// MarkJournalEntryPosted flips a draft to posted.
func (r *PgxJournalRepository) MarkJournalEntryPosted(ctx context.Context, businessID string, entryID string, userID string, postedAt time.Time) error {
	query := `
		UPDATE journal_entries
		SET is_posted = TRUE, posted_at = $3, last_updated_at = $3, last_updated_by = $4
		WHERE business_id = $1 AND entry_id = $2 AND NOT is_posted;
	`
	tag, err := r.db.Exec(ctx, query, businessID, entryID, postedAt, userID)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to post journal entry %s", entryID), err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	return r.explainNoDraft(ctx, businessID, entryID)
}

// DeleteJournalEntry removes a draft; its lines cascade.
func (r *PgxJournalRepository) DeleteJournalEntry(ctx context.Context, businessID string, entryID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM journal_entries WHERE business_id = $1 AND entry_id = $2 AND NOT is_posted;`, businessID, entryID)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to delete journal entry %s", entryID), err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	return r.explainNoDraft(ctx, businessID, entryID)
}

// explainNoDraft tells a missing entry from a posted one after a draft-only statement matched nothing.
func (r *PgxJournalRepository) explainNoDraft(ctx context.Context, businessID string, entryID string) error {
	posted, err := r.lockedStatus(ctx, businessID, entryID)
	if err != nil {
		return err
	}
	if posted {
		return fmt.Errorf("%w: journal entry %s is posted", apperrors.ErrConflict, entryID)
	}
	return fmt.Errorf("journal entry %s changed concurrently: %w", entryID, apperrors.ErrConcurrency)
}
