package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/gapy-app/gapy_backend/internal/apperrors"
	"github.com/gapy-app/gapy_backend/internal/core/domain"
	"github.com/gapy-app/gapy_backend/internal/core/services"
	"github.com/gapy-app/gapy_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BillServiceTestSuite struct {
	suite.Suite
	mockCatalogRepo *MockCatalogRepository
	mockBillRepo    *MockBillRepository
	mockLedgerSvc   *MockLedgerService
}

func (suite *BillServiceTestSuite) SetupTest() {
	suite.mockCatalogRepo = new(MockCatalogRepository)
	suite.mockBillRepo = new(MockBillRepository)
	suite.mockLedgerSvc = new(MockLedgerService)
}

func testBiller() *domain.Biller {
	return &domain.Biller{
		BillerID: "biller-mseb",
		Code:     "MSEB",
		Name:     "Maharashtra State Electricity Board",
		Category: domain.CategoryElectricity,
		Circle:   "Maharashtra",
	}
}

func (suite *BillServiceTestSuite) TestFetchBill_Deterministic() {
	ctx := context.Background()
	biller := testBiller()
	req := dto.FetchBillRequest{BillerID: biller.BillerID, ConsumerNumber: "210045678901"}
	svc := services.NewBillService(suite.mockCatalogRepo, suite.mockBillRepo, suite.mockLedgerSvc)

	suite.mockCatalogRepo.On("FindBillerByID", ctx, biller.BillerID).Return(biller, nil).Twice()

	first, err := svc.FetchBill(ctx, req)
	suite.Require().NoError(err)
	second, err := svc.FetchBill(ctx, req)
	suite.Require().NoError(err)

	suite.Equal(biller.Code, first.BillerCode)
	suite.Equal("Consumer 8901", first.NameOnBill)
	suite.True(first.Amount.Equal(second.Amount), "repeated fetches agree on the amount")
	suite.True(first.Amount.GreaterThanOrEqual(decimal.NewFromInt(200)))
	suite.True(first.Amount.LessThan(decimal.NewFromInt(1500)))
	suite.False(first.DueDate.IsZero())
}

func (suite *BillServiceTestSuite) TestPayBill_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	biller := testBiller()
	req := dto.PayBillRequest{
		AccountID:      uuid.NewString(),
		BillerID:       biller.BillerID,
		ConsumerNumber: "210045678901",
		Amount:         "842.50",
		PIN:            "1234",
	}
	svc := services.NewBillService(suite.mockCatalogRepo, suite.mockBillRepo, suite.mockLedgerSvc)

	amount := decimal.RequireFromString("842.50")
	suite.mockCatalogRepo.On("FindBillerByID", ctx, biller.BillerID).Return(biller, nil).Once()
	suite.mockBillRepo.On("SaveBillPayment", ctx, mock.MatchedBy(func(order domain.BillPayment) bool {
		return order.Status == domain.BillPending &&
			order.UserID == userID &&
			order.Amount.Equal(amount)
	})).Return(nil).Once()
	suite.mockLedgerSvc.On("ExternalDebit", ctx, userID, req.AccountID, amount, req.PIN,
		biller.Name+" bill "+req.ConsumerNumber, mock.AnythingOfType("string")).
		Return(uuid.NewString(), decimal.NewFromInt(157), nil).Once()
	suite.mockBillRepo.On("UpdateBillPaymentOutcome", ctx, mock.AnythingOfType("string"), domain.BillSuccess, mock.MatchedBy(func(providerTxn string) bool {
		return strings.HasPrefix(providerTxn, "MOCK-")
	})).Return(nil).Once()

	order, err := svc.PayBill(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.BillSuccess, order.Status)
	suite.Require().NotNil(order.PaidOn)
	suite.True(strings.HasPrefix(order.ProviderTxn, "MOCK-"))
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestPayBill_InsufficientFunds_ReturnsFailedOrder() {
	ctx := context.Background()
	userID := uuid.NewString()
	biller := testBiller()
	req := dto.PayBillRequest{
		AccountID:      uuid.NewString(),
		BillerID:       biller.BillerID,
		ConsumerNumber: "210045678901",
		Amount:         "842.50",
		PIN:            "1234",
	}
	svc := services.NewBillService(suite.mockCatalogRepo, suite.mockBillRepo, suite.mockLedgerSvc)

	suite.mockCatalogRepo.On("FindBillerByID", ctx, biller.BillerID).Return(biller, nil).Once()
	suite.mockBillRepo.On("SaveBillPayment", ctx, mock.AnythingOfType("domain.BillPayment")).Return(nil).Once()
	suite.mockLedgerSvc.On("ExternalDebit", ctx, userID, req.AccountID, mock.AnythingOfType("decimal.Decimal"), req.PIN,
		mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return("", decimal.Zero, apperrors.ErrInsufficientFunds).Once()
	suite.mockBillRepo.On("UpdateBillPaymentOutcome", ctx, mock.AnythingOfType("string"), domain.BillFailed, "").
		Return(nil).Once()

	order, err := svc.PayBill(ctx, userID, req)

	suite.Require().ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.Require().NotNil(order)
	suite.Equal(domain.BillFailed, order.Status)
	suite.Nil(order.PaidOn)
}

func (suite *BillServiceTestSuite) TestPayBill_InvalidAmount() {
	ctx := context.Background()
	biller := testBiller()
	req := dto.PayBillRequest{
		AccountID:      uuid.NewString(),
		BillerID:       biller.BillerID,
		ConsumerNumber: "210045678901",
		Amount:         "842.505",
		PIN:            "1234",
	}
	svc := services.NewBillService(suite.mockCatalogRepo, suite.mockBillRepo, suite.mockLedgerSvc)

	suite.mockCatalogRepo.On("FindBillerByID", ctx, biller.BillerID).Return(biller, nil).Once()

	_, err := svc.PayBill(ctx, uuid.NewString(), req)

	suite.Require().ErrorIs(err, services.ErrInvalidAmount)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "SaveBillPayment")
}

func (suite *BillServiceTestSuite) TestListBillers_CategoryPassthrough() {
	ctx := context.Background()
	svc := services.NewBillService(suite.mockCatalogRepo, suite.mockBillRepo, suite.mockLedgerSvc)

	billers := []domain.Biller{*testBiller()}
	suite.mockCatalogRepo.On("ListBillers", ctx, "ELECTRICITY").Return(billers, nil).Once()

	got, err := svc.ListBillers(ctx, "ELECTRICITY")

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.mockCatalogRepo.AssertExpectations(suite.T())
}

func TestBillService(t *testing.T) {
	suite.Run(t, new(BillServiceTestSuite))
}
