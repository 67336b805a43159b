package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gapy-app/gapy_backend/internal/apperrors"
	portssvc "github.com/gapy-app/gapy_backend/internal/core/ports/services"
	"github.com/gapy-app/gapy_backend/internal/dto"
	"github.com/gapy-app/gapy_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles ledger history requests.
type TransactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ts portssvc.TransactionSvcFacade) *TransactionHandler {
	return &TransactionHandler{transactionService: ts}
}

// registerTransactionRoutes sets up the routes for ledger history.
func registerTransactionRoutes(rg *gin.RouterGroup, txnSvc portssvc.TransactionSvcFacade) {
	h := NewTransactionHandler(txnSvc)
	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.ListTransactions)
		transactions.GET("/stats", h.GetStats)
	}
}

// ListTransactions godoc
// @Summary List transactions
// @Description Returns a newest-first page of ledger entries touching the user's accounts. Supports narrowing to one account and one calendar month, and keyset pagination through nextToken.
// @Tags transactions
// @Produce json
// @Param accountID query string false "Narrow to one owned account"
// @Param month query int false "Calendar month 1-12 (requires year)"
// @Param year query int false "Calendar year"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Account not owned by the user"
// @Security BearerAuth
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	if (params.Month == 0) != (params.Year == 0) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "month and year must be provided together"})
		return
	}

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), userID, params)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Account does not belong to you"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination token"})
		default:
			logger.Error("Failed to list transactions", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list transactions"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetStats godoc
// @Summary Transaction statistics
// @Description Aggregates successful debits and credits across the user's accounts over the trailing months window, including a per-month breakdown.
// @Tags transactions
// @Produce json
// @Param months query int false "Window size in months (default 6, max 24)"
// @Success 200 {object} dto.TransactionStatsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/stats [get]
func (h *TransactionHandler) GetStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	months, err := strconv.Atoi(c.DefaultQuery("months", "6"))
	if err != nil || months < 1 || months > 24 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "months must be between 1 and 24"})
		return
	}

	stats, err := h.transactionService.GetStats(c.Request.Context(), userID, months)
	if err != nil {
		logger.Error("Failed to compute transaction stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
