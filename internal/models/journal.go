package models

import (
	"database/sql"
	"time"
)

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	EntryID         string         `db:"entry_id"`
	BusinessID      string         `db:"business_id"`
	Seq             int64          `db:"seq"` // BIGSERIAL, creation order
	EntryDate       time.Time      `db:"entry_date"`
	ReferenceNumber string         `db:"reference_number"`
	Description     string         `db:"description"`
	IsPosted        bool           `db:"is_posted"`
	PostedAt        sql.NullTime   `db:"posted_at"`
	ReversesEntryID sql.NullString `db:"reverses_entry_id"`
	AuditFields
}
