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

// PayeeHandler handles saved payee requests.
type PayeeHandler struct {
	payeeService portssvc.PayeeSvcFacade
}

// NewPayeeHandler creates a new PayeeHandler.
func NewPayeeHandler(ps portssvc.PayeeSvcFacade) *PayeeHandler {
	return &PayeeHandler{payeeService: ps}
}

// registerPayeeRoutes sets up the routes for the saved payee list.
func registerPayeeRoutes(rg *gin.RouterGroup, payeeSvc portssvc.PayeeSvcFacade) {
	h := NewPayeeHandler(payeeSvc)
	payees := rg.Group("/payees")
	{
		payees.POST("", h.AddPayee)
		payees.GET("", h.ListPayees)
		payees.GET("/search", h.SearchPayees)
		payees.DELETE("/:savedPayeeID", h.RemovePayee)
	}
}

// AddPayee godoc
// @Summary Save a payee
// @Description Resolves the target account by payment address or account ID and saves it to the user's payee list.
// @Tags payees
// @Accept json
// @Produce json
// @Param payee body dto.AddPayeeRequest true "Payee target"
// @Success 201 {object} dto.PayeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Target account not found"
// @Failure 409 {object} ErrorResponse "Payee already saved"
// @Security BearerAuth
// @Router /payees [post]
func (h *PayeeHandler) AddPayee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.AddPayeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Provide upiID or accountID"})
		return
	}

	payee, err := h.payeeService.AddPayee(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No account found for the given details"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Payee already saved"})
		case errors.Is(err, services.ErrOwnAccountPayee):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Cannot save your own account as a payee"})
		default:
			logger.Error("Failed to add payee", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to add payee"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPayeeResponse(payee))
}

// ListPayees godoc
// @Summary List saved payees
// @Description Returns the user's saved payees, newest first.
// @Tags payees
// @Produce json
// @Success 200 {array} dto.PayeeResponse
// @Security BearerAuth
// @Router /payees [get]
func (h *PayeeHandler) ListPayees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	payees, err := h.payeeService.ListPayees(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list payees", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list payees"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPayeeResponses(payees))
}

// SearchPayees godoc
// @Summary Search payees
// @Description Finds transfer targets by holder name, mobile or payment address. The user's own accounts are excluded.
// @Tags payees
// @Produce json
// @Param q query string true "Search query (min 3 characters)"
// @Param limit query int false "Max results (default 20, max 50)"
// @Success 200 {array} dto.PayeeSearchResult
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /payees/search [get]
func (h *PayeeHandler) SearchPayees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	matches, err := h.payeeService.SearchPayees(c.Request.Context(), userID, c.Query("q"), limit)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to search payees", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to search payees"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPayeeSearchResults(matches))
}

// RemovePayee godoc
// @Summary Remove a saved payee
// @Description Deletes a payee entry owned by the user.
// @Tags payees
// @Produce json
// @Param savedPayeeID path string true "Saved payee ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payees/{savedPayeeID} [delete]
func (h *PayeeHandler) RemovePayee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.payeeService.RemovePayee(c.Request.Context(), userID, c.Param("savedPayeeID")); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payee not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Payee does not belong to you"})
		default:
			logger.Error("Failed to remove payee", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to remove payee"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
