package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gapy-app/gapy_backend/internal/apperrors"
	portssvc "github.com/gapy-app/gapy_backend/internal/core/ports/services"
	"github.com/gapy-app/gapy_backend/internal/core/services"
	"github.com/gapy-app/gapy_backend/internal/dto"
	"github.com/gapy-app/gapy_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// LedgerHandler handles money movement requests.
type LedgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ls portssvc.LedgerSvcFacade) *LedgerHandler {
	return &LedgerHandler{ledgerService: ls}
}

// registerLedgerRoutes sets up the routes for transfers.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerSvc portssvc.LedgerSvcFacade, moneyLimit gin.HandlerFunc) {
	h := NewLedgerHandler(ledgerSvc)
	rg.POST("/transfers", moneyLimit, h.Transfer)
}

// Transfer godoc
// @Summary Send money
// @Description Moves money from one of the user's accounts to another account, authorized by the sender's transaction PIN. Every attempt that reaches the balance check is recorded in the ledger: a rejected transfer returns 402 along with its FAILED ledger entry.
// @Tags transfers
// @Accept json
// @Produce json
// @Param transfer body dto.TransferRequest true "Transfer details"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "PIN rejected"
// @Failure 402 {object} dto.TransferResponse "Insufficient funds; body carries the FAILED ledger entry"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Receiver account not found"
// @Failure 429 {object} ErrorResponse
// @Security BearerAuth
// @Router /transfers [post]
func (h *LedgerHandler) Transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.ledgerService.Transfer(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			// The attempt was recorded as a FAILED ledger entry; surface it.
			if resp != nil {
				c.JSON(http.StatusPaymentRequired, resp)
			} else {
				c.JSON(http.StatusPaymentRequired, ErrorResponse{Error: "Insufficient funds"})
			}
		case errors.Is(err, services.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrSelfTransfer):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Sender and receiver accounts must differ"})
		case errors.Is(err, services.ErrInvalidPIN):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Transaction PIN rejected"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Sender account does not belong to you"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Receiver account not found"})
		default:
			logger.Error("Transfer failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Transfer failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}
