package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ErrorResponse is the body of every failed request. The validation fields are
// set only when a journal entry was rejected.
type ErrorResponse struct {
	Error      string           `json:"error"`
	Category   string           `json:"category,omitempty"`
	Kind       string           `json:"kind,omitempty"`
	Rule       string           `json:"rule,omitempty"`
	LineNo     int              `json:"lineNo,omitempty"`
	Difference *decimal.Decimal `json:"difference,omitempty"`
	Balance    *decimal.Decimal `json:"balance,omitempty"`
	Required   *decimal.Decimal `json:"required,omitempty"`
	AccountIDs []string         `json:"accountIDs,omitempty"`
}

func toValidationErrorResponse(vErr *apperrors.ValidationError) ErrorResponse {
	res := ErrorResponse{
		Error:      vErr.Error(),
		Category:   string(vErr.Category),
		Kind:       string(vErr.Kind),
		Rule:       string(vErr.Rule),
		LineNo:     vErr.LineNo,
		AccountIDs: vErr.AccountIDs,
	}
	if vErr.Category == apperrors.CategoryBalance {
		diff := vErr.Difference
		res.Difference = &diff
	}
	if vErr.Rule.IsInsufficiency() {
		balance, required := vErr.Balance, vErr.Required
		res.Balance = &balance
		res.Required = &required
	}
	return res
}

// respondError maps a service error to a status code and JSON body.
// Structural validation failures are 400; balance and inventory flow failures are 422.
func respondError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var vErr *apperrors.ValidationError
	switch {
	case errors.As(err, &vErr):
		status := http.StatusBadRequest
		if vErr.Category != apperrors.CategoryStructural {
			status = http.StatusUnprocessableEntity
		}
		logger.Warn("Journal entry rejected", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(status, toValidationErrorResponse(vErr))
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrConcurrency):
		logger.Warn("Conflict", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("Request failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to " + action})
	}
}

func respondBindError(c *gin.Context, err error, what string) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
}

// requireUserID reads the authenticated user or aborts with 401.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}
