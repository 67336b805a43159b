package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	portssvc "github.com/gapy-app/gapy_backend/internal/core/ports/services"
	"github.com/gapy-app/gapy_backend/internal/core/services"

	"github.com/gapy-app/gapy_backend/internal/apperrors"
	"github.com/gapy-app/gapy_backend/internal/dto"
	"github.com/gapy-app/gapy_backend/internal/handlers"
	"github.com/gapy-app/gapy_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Transfer(ctx context.Context, userID string, req dto.TransferRequest) (*dto.TransferResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransferResponse), args.Error(1)
}

func (m *MockLedgerService) ExternalDebit(ctx context.Context, userID, accountID string, amount decimal.Decimal, pin, counterpartyLabel, reference string) (string, decimal.Decimal, error) {
	args := m.Called(ctx, userID, accountID, amount, pin, counterpartyLabel, reference)
	return args.String(0), args.Get(1).(decimal.Decimal), args.Error(2)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type LedgerHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
	jwtSecret         string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *LedgerHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "gapy-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterCustomValidators()
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockLedgerService = new(MockLedgerService)

	v1 := suite.router.Group("/api/v1")
	h := handlers.NewLedgerHandler(suite.mockLedgerService)
	v1.POST("/transfers", h.Transfer)
}

func (suite *LedgerHandlerTestSuite) postTransfer(token string, body dto.TransferRequest) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transfers", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *LedgerHandlerTestSuite) TestTransfer_Success() {
	userID := uuid.NewString()
	body := dto.TransferRequest{
		SenderAccountID:   uuid.NewString(),
		ReceiverAccountID: uuid.NewString(),
		Amount:            "150.00",
		PIN:               "1234",
		Reference:         "rent share",
	}
	expected := &dto.TransferResponse{
		TransactionID:    uuid.NewString(),
		Status:           "SUCCESS",
		Amount:           decimal.RequireFromString("150.00"),
		NewSenderBalance: decimal.NewFromInt(850),
	}

	suite.mockLedgerService.On("Transfer",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		mock.MatchedBy(func(req dto.TransferRequest) bool {
			return req.SenderAccountID == body.SenderAccountID && req.Amount == body.Amount
		}),
	).Return(expected, nil).Once()

	w := suite.postTransfer(suite.generateTestToken(userID), body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.TransferResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.TransactionID, resp.TransactionID)
	suite.Equal("SUCCESS", resp.Status)
	suite.True(resp.NewSenderBalance.Equal(expected.NewSenderBalance))
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestTransfer_InsufficientFunds_ReturnsFailedEntry() {
	userID := uuid.NewString()
	body := dto.TransferRequest{
		SenderAccountID:   uuid.NewString(),
		ReceiverAccountID: uuid.NewString(),
		Amount:            "9999.00",
		PIN:               "1234",
	}
	failed := &dto.TransferResponse{
		TransactionID: uuid.NewString(),
		Status:        "FAILED",
		Amount:        decimal.RequireFromString("9999.00"),
	}

	suite.mockLedgerService.On("Transfer",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		mock.AnythingOfType("dto.TransferRequest"),
	).Return(failed, apperrors.ErrInsufficientFunds).Once()

	w := suite.postTransfer(suite.generateTestToken(userID), body)

	suite.Equal(http.StatusPaymentRequired, w.Code)

	var resp dto.TransferResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(failed.TransactionID, resp.TransactionID, "the FAILED ledger entry is surfaced in the body")
	suite.Equal("FAILED", resp.Status)
}

func (suite *LedgerHandlerTestSuite) TestTransfer_WrongPIN() {
	userID := uuid.NewString()
	body := dto.TransferRequest{
		SenderAccountID:   uuid.NewString(),
		ReceiverAccountID: uuid.NewString(),
		Amount:            "10.00",
		PIN:               "0000",
	}

	suite.mockLedgerService.On("Transfer",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		mock.AnythingOfType("dto.TransferRequest"),
	).Return(nil, services.ErrInvalidPIN).Once()

	w := suite.postTransfer(suite.generateTestToken(userID), body)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestTransfer_MalformedPINRejectedByBinding() {
	userID := uuid.NewString()
	body := dto.TransferRequest{
		SenderAccountID:   uuid.NewString(),
		ReceiverAccountID: uuid.NewString(),
		Amount:            "10.00",
		PIN:               "12", // too short for the txnpin rule
	}

	w := suite.postTransfer(suite.generateTestToken(userID), body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "Transfer")
}

func (suite *LedgerHandlerTestSuite) TestTransfer_MissingToken() {
	body := dto.TransferRequest{
		SenderAccountID:   uuid.NewString(),
		ReceiverAccountID: uuid.NewString(),
		Amount:            "10.00",
		PIN:               "1234",
	}

	w := suite.postTransfer("", body)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "Transfer")
}

// --- Run Test Suite ---
func TestLedgerHandler(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
