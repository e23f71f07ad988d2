package dto

import (
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one debit or credit line in a create/update request.
type JournalLineRequest struct {
	AccountID    string          `json:"accountID"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Memo         string          `json:"memo" binding:"max=255"`
}

// CreateJournalEntryRequest defines the data needed to create a journal entry.
// ReferenceNumber is generated when empty. Post saves the entry directly as posted.
type CreateJournalEntryRequest struct {
	EntryDate       time.Time            `json:"entryDate" binding:"required"`
	ReferenceNumber string               `json:"referenceNumber" binding:"max=40"`
	Description     string               `json:"description" binding:"max=500"`
	Lines           []JournalLineRequest `json:"lines" binding:"dive"`
	Post            bool                 `json:"post"`
}

// UpdateJournalEntryRequest replaces the header and lines of a draft.
type UpdateJournalEntryRequest struct {
	EntryDate       *time.Time           `json:"entryDate"`
	ReferenceNumber *string              `json:"referenceNumber" binding:"omitempty,max=40"`
	Description     *string              `json:"description" binding:"omitempty,max=500"`
	Lines           []JournalLineRequest `json:"lines" binding:"dive"` // nil keeps the current lines
}

// ReverseJournalEntryRequest sets the date and description of a reversing entry.
type ReverseJournalEntryRequest struct {
	EntryDate   *time.Time `json:"entryDate"`
	Description string     `json:"description" binding:"max=500"`
}

// ToDomainLines converts request lines, numbering them from 1.
func ToDomainLines(lines []JournalLineRequest) []domain.JournalLine {
	out := make([]domain.JournalLine, len(lines))
	for i, l := range lines {
		out[i] = domain.JournalLine{
			LineNo:       i + 1,
			AccountID:    l.AccountID,
			DebitAmount:  l.DebitAmount,
			CreditAmount: l.CreditAmount,
			Memo:         l.Memo,
		}
	}
	return out
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID       string          `json:"lineID"`
	LineNo       int             `json:"lineNo"`
	AccountID    string          `json:"accountID"`
	AccountCode  string          `json:"accountCode,omitempty"`
	AccountName  string          `json:"accountName,omitempty"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Memo         string          `json:"memo,omitempty"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID         string                `json:"entryID"`
	BusinessID      string                `json:"businessID"`
	EntryDate       time.Time             `json:"entryDate"`
	ReferenceNumber string                `json:"referenceNumber"`
	Description     string                `json:"description"`
	Status          domain.JournalStatus  `json:"status"`
	IsPosted        bool                  `json:"isPosted"`
	PostedAt        *time.Time            `json:"postedAt,omitempty"`
	ReversesEntryID *string               `json:"reversesEntryID,omitempty"`
	TotalDebit      decimal.Decimal       `json:"totalDebit"`
	TotalCredit     decimal.Decimal       `json:"totalCredit"`
	Lines           []JournalLineResponse `json:"lines"`
	CreatedAt       time.Time             `json:"createdAt"`
	CreatedBy       string                `json:"createdBy"`
	LastUpdatedAt   time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy   string                `json:"lastUpdatedBy"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLineResponse{
			LineID:       l.LineID,
			LineNo:       l.LineNo,
			AccountID:    l.AccountID,
			AccountCode:  l.AccountCode,
			AccountName:  l.AccountName,
			DebitAmount:  l.DebitAmount,
			CreditAmount: l.CreditAmount,
			Memo:         l.Memo,
		}
	}
	return JournalEntryResponse{
		EntryID:         e.EntryID,
		BusinessID:      e.BusinessID,
		EntryDate:       e.EntryDate,
		ReferenceNumber: e.ReferenceNumber,
		Description:     e.Description,
		Status:          e.Status(),
		IsPosted:        e.IsPosted,
		PostedAt:        e.PostedAt,
		ReversesEntryID: e.ReversesEntryID,
		TotalDebit:      e.TotalDebit(),
		TotalCredit:     e.TotalCredit(),
		Lines:           lines,
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
		LastUpdatedAt:   e.LastUpdatedAt,
		LastUpdatedBy:   e.LastUpdatedBy,
	}
}

// ToJournalEntryResponses converts a slice of entries.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	res := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToJournalEntryResponse(&entries[i])
	}
	return res
}

// ListJournalEntriesParams defines query parameters for listing journal entries.
// A zero Limit returns every entry.
type ListJournalEntriesParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken string `form:"nextToken"`
}

// ListJournalEntriesResponse wraps a page of journal entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}
