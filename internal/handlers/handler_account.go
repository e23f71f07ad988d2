package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/SscSPs/bizledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	accountService   portssvc.AccountSvcFacade
	reportingService portssvc.ReportingService
}

func newAccountHandler(as portssvc.AccountSvcFacade, rs portssvc.ReportingService) *accountHandler {
	return &accountHandler{
		accountService:   as,
		reportingService: rs,
	}
}

// RegisterAccountRoutes registers account routes under a business-scoped group.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, reportingService portssvc.ReportingService) {
	h := newAccountHandler(accountService, reportingService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.POST("/defaults", h.createDefaultChart)
		accounts.GET("/by-code/:code", h.getAccountByCode)
		accounts.GET("/:account_id", h.getAccount)
		accounts.PATCH("/:account_id", h.updateAccount)
		accounts.DELETE("/:account_id", h.deleteAccount)
		accounts.POST("/:account_id/deactivate", h.deactivateAccount)
		accounts.GET("/:account_id/balance", h.getAccountBalance)
		accounts.GET("/:account_id/ledger", h.getAccountLedger)
	}

	rg.DELETE("/bank-accounts/:bank_account_id/accounts", h.removeBankLinkedAccounts)
}

// createAccount godoc
// @Summary Create an account
// @Description Adds an account to the chart. The code's leading digit must match the account type.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Code or inventory role already in use"
// @Security BearerAuth
// @Router /businesses/{business_id}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "CreateAccountRequest")
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	businessID := c.Param(middleware.BusinessIDParam)

	acc, err := h.accountService.CreateAccount(c.Request.Context(), businessID, req, userID)
	if err != nil {
		respondError(c, err, "create account")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Account created",
		slog.String("account_id", acc.AccountID), slog.String("code", acc.Code))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(acc))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists the chart of accounts ordered by code
// @Tags accounts
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   includeInactive query bool false "Include deactivated accounts"
// @Success 200 {object} dto.ListAccountsResponse
// @Security BearerAuth
// @Router /businesses/{business_id}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "ListAccountsParams")
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), c.Param(middleware.BusinessIDParam), params)
	if err != nil {
		respondError(c, err, "list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

// createDefaultChart godoc
// @Summary Seed the default chart of accounts
// @Description Creates the default chart, skipping codes already in use. Safe to call again.
// @Tags accounts
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Success 200 {object} dto.SeedChartResponse
// @Security BearerAuth
// @Router /businesses/{business_id}/accounts/defaults [post]
func (h *accountHandler) createDefaultChart(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	created, skipped, err := h.accountService.CreateDefaultChart(c.Request.Context(), c.Param(middleware.BusinessIDParam), userID)
	if err != nil {
		respondError(c, err, "seed default chart")
		return
	}
	if skipped == nil {
		skipped = []string{}
	}
	c.JSON(http.StatusOK, dto.SeedChartResponse{Created: dto.ToListAccountResponse(created), Skipped: skipped})
}

// getAccount godoc
// @Summary Get an account
// @Tags accounts
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   account_id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{business_id}/accounts/{account_id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	acc, err := h.accountService.GetAccountByID(c.Request.Context(), c.Param(middleware.BusinessIDParam), c.Param("account_id"))
	if err != nil {
		respondError(c, err, "retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(acc))
}

// getAccountByCode godoc
// @Summary Get an account by code
// @Tags accounts
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   code path string true "4-digit account code"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{business_id}/accounts/by-code/{code} [get]
func (h *accountHandler) getAccountByCode(c *gin.Context) {
	acc, err := h.accountService.GetAccountByCode(c.Request.Context(), c.Param(middleware.BusinessIDParam), c.Param("code"))
	if err != nil {
		respondError(c, err, "retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(acc))
}

// updateAccount godoc
// @Summary Update an account
// @Description Changes name, subcategory or inventory role. Code and type are fixed.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   account_id path string true "Account ID"
// @Param   account body dto.UpdateAccountRequest true "Fields to change"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{business_id}/accounts/{account_id} [patch]
func (h *accountHandler) updateAccount(c *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "UpdateAccountRequest")
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	acc, err := h.accountService.UpdateAccount(c.Request.Context(), c.Param(middleware.BusinessIDParam), c.Param("account_id"), req, userID)
	if err != nil {
		respondError(c, err, "update account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(acc))
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Soft-deletes an account. Bank-linked accounts must be removed through their bank account.
// @Tags accounts
// @Param   business_id path string true "Business ID"
// @Param   account_id path string true "Account ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Account is bank-linked"
// @Security BearerAuth
// @Router /businesses/{business_id}/accounts/{account_id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.accountService.DeleteAccount(c.Request.Context(), c.Param(middleware.BusinessIDParam), c.Param("account_id"), userID); err != nil {
		respondError(c, err, "delete account")
		return
	}
	c.Status(http.StatusNoContent)
}

// deactivateAccount godoc
// @Summary Deactivate an account
// @Tags accounts
// @Param   business_id path string true "Business ID"
// @Param   account_id path string true "Account ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{business_id}/accounts/{account_id}/deactivate [post]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.accountService.DeactivateAccount(c.Request.Context(), c.Param(middleware.BusinessIDParam), c.Param("account_id"), userID); err != nil {
		respondError(c, err, "deactivate account")
		return
	}
	c.Status(http.StatusNoContent)
}

// getAccountBalance godoc
// @Summary Get account balance
// @Description Debits minus credits over the account's posted lines
// @Tags accounts
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   account_id path string true "Account ID"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{business_id}/accounts/{account_id}/balance [get]
func (h *accountHandler) getAccountBalance(c *gin.Context) {
	ctx := c.Request.Context()
	businessID := c.Param(middleware.BusinessIDParam)

	acc, err := h.accountService.GetAccountByID(ctx, businessID, c.Param("account_id"))
	if err != nil {
		respondError(c, err, "retrieve account")
		return
	}
	balance, err := h.reportingService.AccountBalance(ctx, businessID, acc.AccountID)
	if err != nil {
		respondError(c, err, "calculate account balance")
		return
	}
	c.JSON(http.StatusOK, dto.AccountBalanceResponse{AccountID: acc.AccountID, Code: acc.Code, Balance: balance})
}

// getAccountLedger godoc
// @Summary Get the general ledger of an account
// @Tags accounts
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   account_id path string true "Account ID"
// @Success 200 {object} dto.AccountLedgerResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{business_id}/accounts/{account_id}/ledger [get]
func (h *accountHandler) getAccountLedger(c *gin.Context) {
	ledger, err := h.reportingService.GeneralLedger(c.Request.Context(), c.Param(middleware.BusinessIDParam), c.Param("account_id"))
	if err != nil {
		respondError(c, err, "build account ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountLedgerResponse(ledger))
}

// removeBankLinkedAccounts godoc
// @Summary Remove accounts backing a bank account
// @Description Called when a bank account is deleted. Accounts with journal activity are deactivated, the rest deleted.
// @Tags accounts
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   bank_account_id path string true "Bank account ID"
// @Success 200 {object} dto.BankAccountCascadeResponse
// @Security BearerAuth
// @Router /businesses/{business_id}/bank-accounts/{bank_account_id}/accounts [delete]
func (h *accountHandler) removeBankLinkedAccounts(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	res, err := h.accountService.RemoveBankLinkedAccounts(c.Request.Context(), c.Param(middleware.BusinessIDParam), c.Param("bank_account_id"), userID)
	if err != nil {
		respondError(c, err, "remove bank-linked accounts")
		return
	}
	c.JSON(http.StatusOK, res)
}
