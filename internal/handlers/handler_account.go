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

// AccountHandler handles bank account requests.
type AccountHandler struct {
	accountService portssvc.AccountSvcFacade
	qrService      portssvc.QRSvcFacade
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(as portssvc.AccountSvcFacade, qs portssvc.QRSvcFacade) *AccountHandler {
	return &AccountHandler{accountService: as, qrService: qs}
}

// registerAccountRoutes sets up the routes for bank account management.
func registerAccountRoutes(rg *gin.RouterGroup, accountSvc portssvc.AccountSvcFacade, qrSvc portssvc.QRSvcFacade) {
	h := NewAccountHandler(accountSvc, qrSvc)
	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.LinkAccount)
		accounts.GET("", h.ListAccounts)
		accounts.GET("/resolve", h.ResolveAccount)
		accounts.GET("/:accountID", h.GetAccount)
		accounts.DELETE("/:accountID", h.UnlinkAccount)
		accounts.GET("/:accountID/balance", h.GetBalance)
		accounts.POST("/:accountID/topup", h.TopUp)
		accounts.GET("/:accountID/qr", h.GetAccountQR)
		accounts.POST("/:accountID/pin", h.SetPIN)
		accounts.PUT("/:accountID/pin", h.ChangePIN)
		accounts.POST("/:accountID/pin/verify", h.VerifyPIN)
	}
}

// requireUserID resolves the authenticated user or writes a 401.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}
	return userID, ok
}

// accountErrorResponse maps account ownership and lookup errors to HTTP codes.
func accountErrorResponse(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Account not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Account does not belong to you"})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Account operation failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to " + action})
	}
}

// LinkAccount godoc
// @Summary Link a bank account
// @Description Links a new bank account to the authenticated user and assigns it a payment address.
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.LinkAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Account already linked"
// @Security BearerAuth
// @Router /accounts [post]
func (h *AccountHandler) LinkAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.LinkAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	account, err := h.accountService.LinkAccount(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Account is already linked"})
			return
		}
		accountErrorResponse(c, err, "link account")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// ListAccounts godoc
// @Summary List linked accounts
// @Description Returns all bank accounts linked by the authenticated user.
// @Tags accounts
// @Produce json
// @Success 200 {array} dto.AccountResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), userID)
	if err != nil {
		accountErrorResponse(c, err, "list accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

// ResolveAccount godoc
// @Summary Resolve a transfer target
// @Description Looks up an account by payment address or by account number and IFSC, returning a masked preview. Used before sending money or saving a payee.
// @Tags accounts
// @Produce json
// @Param upiID query string false "Payment address"
// @Param accountNumber query string false "Account number (requires ifsc)"
// @Param ifsc query string false "IFSC code"
// @Success 200 {object} dto.ResolvePayeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/resolve [get]
func (h *AccountHandler) ResolveAccount(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	upiID := c.Query("upiID")
	accountNumber := c.Query("accountNumber")
	ifsc := c.Query("ifsc")
	if upiID == "" && (accountNumber == "" || ifsc == "") {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Provide upiID, or accountNumber with ifsc"})
		return
	}

	account, err := h.accountService.ResolveAccount(c.Request.Context(), upiID, accountNumber, ifsc)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No account found for the given details"})
			return
		}
		accountErrorResponse(c, err, "resolve account")
		return
	}

	c.JSON(http.StatusOK, dto.ToResolvePayeeResponse(account))
}

// GetAccount godoc
// @Summary Get an account
// @Description Returns a linked account the authenticated user owns.
// @Tags accounts
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{accountID} [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), userID, c.Param("accountID"))
	if err != nil {
		accountErrorResponse(c, err, "get account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// UnlinkAccount godoc
// @Summary Unlink an account
// @Description Removes a linked account. Ledger history referencing the account is retained.
// @Tags accounts
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{accountID} [delete]
func (h *AccountHandler) UnlinkAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.accountService.UnlinkAccount(c.Request.Context(), userID, c.Param("accountID")); err != nil {
		accountErrorResponse(c, err, "unlink account")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetBalance godoc
// @Summary Get account balance
// @Description Returns the current balance of an account the user owns.
// @Tags accounts
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{accountID}/balance [get]
func (h *AccountHandler) GetBalance(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	accountID := c.Param("accountID")
	balance, err := h.accountService.GetBalance(c.Request.Context(), userID, accountID)
	if err != nil {
		accountErrorResponse(c, err, "get balance")
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{AccountID: accountID, Balance: balance})
}

// TopUp godoc
// @Summary Top up demo funds
// @Description Credits demo funds to an account the user owns. No ledger entry is written.
// @Tags accounts
// @Accept json
// @Produce json
// @Param accountID path string true "Account ID"
// @Param topup body dto.TopUpRequest true "Amount to credit"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{accountID}/topup [post]
func (h *AccountHandler) TopUp(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	accountID := c.Param("accountID")
	newBalance, err := h.accountService.TopUp(c.Request.Context(), userID, accountID, req.Amount)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		accountErrorResponse(c, err, "top up account")
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{AccountID: accountID, Balance: newBalance})
}

// GetAccountQR godoc
// @Summary Receive-money QR code
// @Description Renders a PNG QR code other users can scan to send money to this account.
// @Tags accounts
// @Produce png
// @Param accountID path string true "Account ID"
// @Param size query int false "Image size in pixels (default 256)"
// @Success 200 {string} binary "PNG image"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{accountID}/qr [get]
func (h *AccountHandler) GetAccountQR(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	size, _ := strconv.Atoi(c.DefaultQuery("size", "256"))
	png, err := h.qrService.GenerateAccountQR(c.Request.Context(), userID, c.Param("accountID"), size)
	if err != nil {
		accountErrorResponse(c, err, "generate QR code")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// SetPIN godoc
// @Summary Set transaction PIN
// @Description Sets the transaction PIN on an account that has none.
// @Tags accounts
// @Accept json
// @Produce json
// @Param accountID path string true "Account ID"
// @Param pin body dto.SetPINRequest true "New PIN"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "PIN already set"
// @Security BearerAuth
// @Router /accounts/{accountID}/pin [post]
func (h *AccountHandler) SetPIN(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.SetPINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "PIN must be 4 to 6 digits"})
		return
	}

	if err := h.accountService.SetPIN(c.Request.Context(), userID, c.Param("accountID"), req.PIN); err != nil {
		if errors.Is(err, services.ErrPINAlreadySet) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "PIN is already set; use change PIN"})
			return
		}
		accountErrorResponse(c, err, "set PIN")
		return
	}

	c.Status(http.StatusNoContent)
}

// ChangePIN godoc
// @Summary Change transaction PIN
// @Description Replaces the transaction PIN after verifying the current one.
// @Tags accounts
// @Accept json
// @Produce json
// @Param accountID path string true "Account ID"
// @Param pin body dto.ChangePINRequest true "Current and new PIN"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Current PIN incorrect"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{accountID}/pin [put]
func (h *AccountHandler) ChangePIN(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "PINs must be 4 to 6 digits"})
		return
	}

	err := h.accountService.ChangePIN(c.Request.Context(), userID, c.Param("accountID"), req.CurrentPIN, req.NewPIN)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPIN):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Current PIN is incorrect"})
		case errors.Is(err, services.ErrPINNotSet):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "No PIN set on this account"})
		default:
			accountErrorResponse(c, err, "change PIN")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// VerifyPIN godoc
// @Summary Verify transaction PIN
// @Description Checks the supplied PIN against the account without moving money. An account with no PIN set verifies false.
// @Tags accounts
// @Accept json
// @Produce json
// @Param accountID path string true "Account ID"
// @Param pin body dto.VerifyPINRequest true "PIN to check"
// @Success 200 {object} dto.VerifyPINResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{accountID}/pin/verify [post]
func (h *AccountHandler) VerifyPIN(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.VerifyPINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "PIN must be 4 to 6 digits"})
		return
	}

	valid, err := h.accountService.VerifyPIN(c.Request.Context(), userID, c.Param("accountID"), req.PIN)
	if err != nil {
		accountErrorResponse(c, err, "verify PIN")
		return
	}

	c.JSON(http.StatusOK, dto.VerifyPINResponse{Valid: valid})
}
