package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/SscSPs/bizledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// RegisterJournalRoutes registers journal entry routes under a business-scoped group.
func RegisterJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := &journalHandler{journalService: journalService}

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.createJournalEntry)
		entries.GET("", h.listJournalEntries)
		entries.GET("/:entry_id", h.getJournalEntry)
		entries.PUT("/:entry_id", h.updateJournalEntry)
		entries.DELETE("/:entry_id", h.deleteJournalEntry)
		entries.POST("/:entry_id/post", h.postJournalEntry)
		entries.POST("/:entry_id/reverse", h.reverseJournalEntry)
	}
}

// createJournalEntry godoc
// @Summary Create a journal entry
// @Description Saves a draft, or validates and posts it directly when post is true.
// @Description A blank referenceNumber is replaced by the next JE-YYYY-NNNN number.
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} ErrorResponse "Structural validation failure"
// @Failure 422 {object} ErrorResponse "Unbalanced entry or inventory flow violation"
// @Security BearerAuth
// @Router /businesses/{business_id}/journal-entries [post]
func (h *journalHandler) createJournalEntry(c *gin.Context) {
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "CreateJournalEntryRequest")
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.journalService.CreateJournalEntry(c.Request.Context(), c.Param(middleware.BusinessIDParam), req, userID)
	if err != nil {
		respondError(c, err, "create journal entry")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Journal entry created",
		slog.String("entry_id", entry.EntryID), slog.String("reference", entry.ReferenceNumber), slog.Bool("posted", entry.IsPosted))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// listJournalEntries godoc
// @Summary List journal entries
// @Description Lists entries in creation order. Without limit every entry is returned.
// @Tags journal-entries
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   limit query int false "Page size (1-500)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{business_id}/journal-entries [get]
func (h *journalHandler) listJournalEntries(c *gin.Context) {
	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "ListJournalEntriesParams")
		return
	}

	res, err := h.journalService.ListJournalEntries(c.Request.Context(), c.Param(middleware.BusinessIDParam), params)
	if err != nil {
		respondError(c, err, "list journal entries")
		return
	}
	c.JSON(http.StatusOK, res)
}

// getJournalEntry godoc
// @Summary Get a journal entry
// @Tags journal-entries
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   entry_id path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{business_id}/journal-entries/{entry_id} [get]
func (h *journalHandler) getJournalEntry(c *gin.Context) {
	entry, err := h.journalService.GetJournalEntry(c.Request.Context(), c.Param(middleware.BusinessIDParam), c.Param("entry_id"))
	if err != nil {
		respondError(c, err, "retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// updateJournalEntry godoc
// @Summary Update a draft
// @Description Edits a draft created by the caller. Omitted lines keep the current lines.
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   entry_id path string true "Entry ID"
// @Param   entry body dto.UpdateJournalEntryRequest true "Fields to change"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Draft belongs to another user"
// @Failure 409 {object} ErrorResponse "Entry is posted"
// @Security BearerAuth
// @Router /businesses/{business_id}/journal-entries/{entry_id} [put]
func (h *journalHandler) updateJournalEntry(c *gin.Context) {
	var req dto.UpdateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "UpdateJournalEntryRequest")
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.journalService.UpdateDraftJournalEntry(c.Request.Context(), c.Param(middleware.BusinessIDParam), c.Param("entry_id"), req, userID)
	if err != nil {
		respondError(c, err, "update journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// deleteJournalEntry godoc
// @Summary Delete a draft
// @Tags journal-entries
// @Param   business_id path string true "Business ID"
// @Param   entry_id path string true "Entry ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Entry is posted"
// @Security BearerAuth
// @Router /businesses/{business_id}/journal-entries/{entry_id} [delete]
func (h *journalHandler) deleteJournalEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.journalService.DeleteDraftJournalEntry(c.Request.Context(), c.Param(middleware.BusinessIDParam), c.Param("entry_id"), userID); err != nil {
		respondError(c, err, "delete journal entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// postJournalEntry godoc
// @Summary Post a draft
// @Description Validates balance and inventory flow, then posts. Posting cannot be undone; use reverse.
// @Tags journal-entries
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   entry_id path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 409 {object} ErrorResponse "Entry is already posted"
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{business_id}/journal-entries/{entry_id}/post [post]
func (h *journalHandler) postJournalEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.journalService.PostJournalEntry(c.Request.Context(), c.Param(middleware.BusinessIDParam), c.Param("entry_id"), userID)
	if err != nil {
		respondError(c, err, "post journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// reverseJournalEntry godoc
// @Summary Reverse a posted entry
// @Description Posts a new entry with debits and credits swapped.
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   entry_id path string true "Entry ID"
// @Param   reversal body dto.ReverseJournalEntryRequest false "Date and description of the reversal"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 409 {object} ErrorResponse "Entry is a draft or already reversed"
// @Security BearerAuth
// @Router /businesses/{business_id}/journal-entries/{entry_id}/reverse [post]
func (h *journalHandler) reverseJournalEntry(c *gin.Context) {
	var req dto.ReverseJournalEntryRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err, "ReverseJournalEntryRequest")
			return
		}
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.journalService.ReverseJournalEntry(c.Request.Context(), c.Param(middleware.BusinessIDParam), c.Param("entry_id"), req, userID)
	if err != nil {
		respondError(c, err, "reverse journal entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}
