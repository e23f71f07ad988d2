package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/SscSPs/bizledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

const reportDateLayout = "2006-01-02"

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers routes related to financial reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/general-ledger", h.getGeneralLedger)
		reportingGroup.GET("/profit-and-loss", h.getProfitAndLoss)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
		reportingGroup.GET("/integrity", h.getIntegrity)
	}
}

func badDate(c *gin.Context, param, value string, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid date parameter",
		slog.String("param", param), slog.String("value", value), slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + param + " date format. Use YYYY-MM-DD"})
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Balances of every account over posted entries, optionally up to a date
// @Tags reports
// @Produce json
// @Param business_id path string true "Business ID"
// @Param asOf query string false "Report date (YYYY-MM-DD); all posted entries when omitted"
// @Param hideZero query bool false "Hide accounts with a zero balance"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /businesses/{business_id}/reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	var params dto.TrialBalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "TrialBalanceParams")
		return
	}

	var asOf *time.Time
	if params.AsOf != "" {
		t, err := dto.ParseReportDate(params.AsOf)
		if err != nil {
			badDate(c, "asOf", params.AsOf, err)
			return
		}
		asOf = &t
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), c.Param(middleware.BusinessIDParam), asOf)
	if err != nil {
		respondError(c, err, "generate trial balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report, params.HideZeroRow))
}

// getGeneralLedger godoc
// @Summary Generate the general ledger
// @Description Running-balance ledger of every account with posted activity, ordered by code
// @Tags reports
// @Produce json
// @Param business_id path string true "Business ID"
// @Success 200 {object} dto.GeneralLedgerResponse
// @Security BearerAuth
// @Router /businesses/{business_id}/reports/general-ledger [get]
func (h *reportingHandler) getGeneralLedger(c *gin.Context) {
	book, err := h.reportingService.GeneralLedgerBook(c.Request.Context(), c.Param(middleware.BusinessIDParam))
	if err != nil {
		respondError(c, err, "generate general ledger")
		return
	}

	res := dto.GeneralLedgerResponse{Accounts: make([]dto.AccountLedgerResponse, len(book))}
	for i := range book {
		res.Accounts[i] = dto.ToAccountLedgerResponse(&book[i])
	}
	c.JSON(http.StatusOK, res)
}

// getProfitAndLoss godoc
// @Summary Generate profit and loss report
// @Description Revenue, COGS, expenses and other items for posted entries dated within the period
// @Tags reports
// @Produce json
// @Param business_id path string true "Business ID"
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /businesses/{business_id}/reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	var params dto.PeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "PeriodParams")
		return
	}

	from, err := dto.ParseReportStartDate(params.From)
	if err != nil {
		badDate(c, "from", params.From, err)
		return
	}
	to, err := dto.ParseReportDate(params.To)
	if err != nil {
		badDate(c, "to", params.To, err)
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "End date cannot be before start date"})
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), c.Param(middleware.BusinessIDParam), from, to)
	if err != nil {
		respondError(c, err, "generate profit and loss report")
		return
	}
	c.JSON(http.StatusOK, dto.ProfitAndLossResponse{FromDate: params.From, ToDate: params.To, PAndLReport: *report})
}

// getBalanceSheet godoc
// @Summary Generate balance sheet report
// @Description Assets, liabilities and equity including retained earnings as of a date
// @Tags reports
// @Produce json
// @Param business_id path string true "Business ID"
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /businesses/{business_id}/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	var params dto.AsOfParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "AsOfParams")
		return
	}
	if params.AsOf == "" {
		params.AsOf = time.Now().UTC().Format(reportDateLayout)
	}

	asOf, err := dto.ParseReportDate(params.AsOf)
	if err != nil {
		badDate(c, "asOf", params.AsOf, err)
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), c.Param(middleware.BusinessIDParam), asOf)
	if err != nil {
		respondError(c, err, "generate balance sheet")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceSheetResponse{AsOf: params.AsOf, BalanceSheetReport: *report})
}

// getIntegrity godoc
// @Summary Check the books
// @Description Reports unbalanced posted entries, duplicate reference numbers and trial balance drift
// @Tags reports
// @Produce json
// @Param business_id path string true "Business ID"
// @Success 200 {object} domain.IntegrityReport
// @Security BearerAuth
// @Router /businesses/{business_id}/reports/integrity [get]
func (h *reportingHandler) getIntegrity(c *gin.Context) {
	report, err := h.reportingService.CheckBooks(c.Request.Context(), c.Param(middleware.BusinessIDParam))
	if err != nil {
		respondError(c, err, "check books")
		return
	}
	c.JSON(http.StatusOK, report)
}
