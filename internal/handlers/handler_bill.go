package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gapy-app/gapy_backend/internal/apperrors"
	portssvc "github.com/gapy-app/gapy_backend/internal/core/ports/services"
	"github.com/gapy-app/gapy_backend/internal/core/services"
	"github.com/gapy-app/gapy_backend/internal/dto"
	"github.com/gapy-app/gapy_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// BillHandler handles bill payment requests.
type BillHandler struct {
	billService portssvc.BillSvcFacade
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(bs portssvc.BillSvcFacade) *BillHandler {
	return &BillHandler{billService: bs}
}

// registerBillRoutes sets up the routes for bill payments.
func registerBillRoutes(rg *gin.RouterGroup, billSvc portssvc.BillSvcFacade, moneyLimit gin.HandlerFunc) {
	h := NewBillHandler(billSvc)
	bills := rg.Group("/bills")
	{
		bills.GET("/billers", h.ListBillers)
		bills.POST("/fetch", h.FetchBill)
		bills.POST("/pay", moneyLimit, h.PayBill)
		bills.GET("/payments", h.ListBillPayments)
	}
}

// ListBillers godoc
// @Summary List billers
// @Description Returns billers, optionally filtered by category (ELECTRICITY, WATER, GAS, DTH, BROADBAND).
// @Tags bills
// @Produce json
// @Param category query string false "Biller category"
// @Success 200 {array} dto.BillerResponse
// @Security BearerAuth
// @Router /bills/billers [get]
func (h *BillHandler) ListBillers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	billers, err := h.billService.ListBillers(c.Request.Context(), c.Query("category"))
	if err != nil {
		logger.Error("Failed to list billers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list billers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBillerResponses(billers))
}

// FetchBill godoc
// @Summary Fetch an outstanding bill
// @Description Looks up the outstanding bill for a consumer number at a biller.
// @Tags bills
// @Accept json
// @Produce json
// @Param fetch body dto.FetchBillRequest true "Biller and consumer number"
// @Success 200 {object} dto.FetchBillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Biller not found"
// @Security BearerAuth
// @Router /bills/fetch [post]
func (h *BillHandler) FetchBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.FetchBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	bill, err := h.billService.FetchBill(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Biller not found"})
			return
		}
		logger.Error("Failed to fetch bill", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch bill"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFetchBillResponse(bill))
}

// PayBill godoc
// @Summary Pay a bill
// @Description Debits the user's account for the bill amount and settles the order with the provider. An insufficient balance returns 402 with the FAILED order.
// @Tags bills
// @Accept json
// @Produce json
// @Param payment body dto.PayBillRequest true "Bill payment order"
// @Success 201 {object} dto.BillPaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "PIN rejected"
// @Failure 402 {object} dto.BillPaymentResponse "Insufficient funds; body carries the FAILED order"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Biller not found"
// @Failure 429 {object} ErrorResponse
// @Security BearerAuth
// @Router /bills/pay [post]
func (h *BillHandler) PayBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.PayBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	payment, err := h.billService.PayBill(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			if payment != nil {
				c.JSON(http.StatusPaymentRequired, dto.ToBillPaymentResponse(payment))
			} else {
				c.JSON(http.StatusPaymentRequired, ErrorResponse{Error: "Insufficient funds"})
			}
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Biller not found"})
		case errors.Is(err, services.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrInvalidPIN):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Transaction PIN rejected"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Account does not belong to you"})
		default:
			logger.Error("Bill payment failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Bill payment failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToBillPaymentResponse(payment))
}

// ListBillPayments godoc
// @Summary Bill payment history
// @Description Returns the user's bill payment orders, newest first.
// @Tags bills
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {array} dto.BillPaymentResponse
// @Security BearerAuth
// @Router /bills/payments [get]
func (h *BillHandler) ListBillPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be between 1 and 100"})
		return
	}

	payments, err := h.billService.ListBillPayments(c.Request.Context(), userID, limit)
	if err != nil {
		logger.Error("Failed to list bill payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list bill payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBillPaymentResponses(payments))
}
