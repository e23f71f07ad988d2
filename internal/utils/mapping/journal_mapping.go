package mapping

import (
	"database/sql"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry header to a model JournalEntry.
// Lines are mapped separately.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	m := models.JournalEntry{
		EntryID:         d.EntryID,
		BusinessID:      d.BusinessID,
		Seq:             d.Sequence,
		EntryDate:       d.EntryDate,
		ReferenceNumber: d.ReferenceNumber,
		Description:     d.Description,
		IsPosted:        d.IsPosted,
		ReversesEntryID: NullString(d.ReversesEntryID),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	if d.PostedAt != nil {
		m.PostedAt = sql.NullTime{Time: *d.PostedAt, Valid: true}
	}
	return m
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry with no lines.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	e := domain.JournalEntry{
		EntryID:         m.EntryID,
		BusinessID:      m.BusinessID,
		Sequence:        m.Seq,
		EntryDate:       m.EntryDate,
		ReferenceNumber: m.ReferenceNumber,
		Description:     m.Description,
		IsPosted:        m.IsPosted,
		ReversesEntryID: stringPtr(m.ReversesEntryID),
		Lines:           []domain.JournalLine{},
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	if m.PostedAt.Valid {
		postedAt := m.PostedAt.Time
		e.PostedAt = &postedAt
	}
	return e
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine of entryID.
func ToModelJournalLine(entryID string, d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:       d.LineID,
		EntryID:      entryID,
		LineNo:       d.LineNo,
		AccountID:    d.AccountID,
		DebitAmount:  d.DebitAmount,
		CreditAmount: d.CreditAmount,
		Memo:         d.Memo,
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine.
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:       m.LineID,
		EntryID:      m.EntryID,
		LineNo:       m.LineNo,
		AccountID:    m.AccountID,
		DebitAmount:  m.DebitAmount,
		CreditAmount: m.CreditAmount,
		Memo:         m.Memo,
	}
}
