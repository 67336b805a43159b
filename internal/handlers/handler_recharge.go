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

// RechargeHandler handles mobile recharge requests.
type RechargeHandler struct {
	rechargeService portssvc.RechargeSvcFacade
}

// NewRechargeHandler creates a new RechargeHandler.
func NewRechargeHandler(rs portssvc.RechargeSvcFacade) *RechargeHandler {
	return &RechargeHandler{rechargeService: rs}
}

// registerRechargeRoutes sets up the routes for mobile recharges.
func registerRechargeRoutes(rg *gin.RouterGroup, rechargeSvc portssvc.RechargeSvcFacade, moneyLimit gin.HandlerFunc) {
	h := NewRechargeHandler(rechargeSvc)
	recharges := rg.Group("/recharges")
	{
		recharges.GET("/operators", h.ListOperators)
		recharges.GET("/operators/:operatorID/plans", h.ListPlans)
		recharges.POST("", moneyLimit, h.Recharge)
		recharges.GET("", h.ListRecharges)
	}
}

// ListOperators godoc
// @Summary List mobile operators
// @Description Returns the operator catalog for recharges.
// @Tags recharges
// @Produce json
// @Success 200 {array} dto.OperatorResponse
// @Security BearerAuth
// @Router /recharges/operators [get]
func (h *RechargeHandler) ListOperators(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operators, err := h.rechargeService.ListOperators(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list operators", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list operators"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOperatorResponses(operators))
}

// ListPlans godoc
// @Summary List recharge plans
// @Description Returns the plans offered by an operator.
// @Tags recharges
// @Produce json
// @Param operatorID path string true "Operator ID"
// @Success 200 {array} dto.PlanResponse
// @Failure 404 {object} ErrorResponse "Operator not found"
// @Security BearerAuth
// @Router /recharges/operators/{operatorID}/plans [get]
func (h *RechargeHandler) ListPlans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	plans, err := h.rechargeService.ListPlans(c.Request.Context(), c.Param("operatorID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Operator not found"})
			return
		}
		logger.Error("Failed to list plans", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list plans"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPlanResponses(plans))
}

// Recharge godoc
// @Summary Pay for a mobile recharge
// @Description Debits the user's account for the plan amount and settles the order with the provider. An insufficient balance returns 402 with the FAILED order.
// @Tags recharges
// @Accept json
// @Produce json
// @Param recharge body dto.RechargeRequest true "Recharge order"
// @Success 201 {object} dto.RechargeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "PIN rejected"
// @Failure 402 {object} dto.RechargeResponse "Insufficient funds; body carries the FAILED order"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Operator or plan not found"
// @Failure 429 {object} ErrorResponse
// @Security BearerAuth
// @Router /recharges [post]
func (h *RechargeHandler) Recharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.RechargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	order, err := h.rechargeService.Recharge(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			if order != nil {
				resp := dto.ToRechargeResponse(order)
				c.JSON(http.StatusPaymentRequired, resp)
			} else {
				c.JSON(http.StatusPaymentRequired, ErrorResponse{Error: "Insufficient funds"})
			}
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Operator or plan not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Plan does not belong to the operator"})
		case errors.Is(err, services.ErrInvalidPIN):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Transaction PIN rejected"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Account does not belong to you"})
		default:
			logger.Error("Recharge failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Recharge failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToRechargeResponse(order))
}

// ListRecharges godoc
// @Summary Recharge history
// @Description Returns the user's recharge orders, newest first.
// @Tags recharges
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {array} dto.RechargeResponse
// @Security BearerAuth
// @Router /recharges [get]
func (h *RechargeHandler) ListRecharges(c *gin.Context) {
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

	recharges, err := h.rechargeService.ListRecharges(c.Request.Context(), userID, limit)
	if err != nil {
		logger.Error("Failed to list recharges", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list recharges"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRechargeResponses(recharges))
}
