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

type RechargeServiceTestSuite struct {
	suite.Suite
	mockCatalogRepo  *MockCatalogRepository
	mockRechargeRepo *MockRechargeRepository
	mockLedgerSvc    *MockLedgerService
}

func (suite *RechargeServiceTestSuite) SetupTest() {
	suite.mockCatalogRepo = new(MockCatalogRepository)
	suite.mockRechargeRepo = new(MockRechargeRepository)
	suite.mockLedgerSvc = new(MockLedgerService)
}

func testOperator() *domain.Operator {
	return &domain.Operator{
		OperatorID: "op-airtel",
		Code:       "AIRTEL",
		Name:       "Airtel",
	}
}

func testPlan(operatorID string, amount int64) *domain.Plan {
	return &domain.Plan{
		PlanID:     uuid.NewString(),
		OperatorID: operatorID,
		Category:   "unlimited",
		Amount:     decimal.NewFromInt(amount),
		Title:      "Unlimited Calls + 1GB/day",
		Validity:   "24 days",
	}
}

func (suite *RechargeServiceTestSuite) TestRecharge_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	operator := testOperator()
	plan := testPlan(operator.OperatorID, 149)
	req := dto.RechargeRequest{
		AccountID:  uuid.NewString(),
		OperatorID: operator.OperatorID,
		PlanID:     plan.PlanID,
		Mobile:     "9876543210",
		Circle:     "Maharashtra",
		PIN:        "1234",
	}
	svc := services.NewRechargeService(suite.mockCatalogRepo, suite.mockRechargeRepo, suite.mockLedgerSvc)

	suite.mockCatalogRepo.On("FindOperatorByID", ctx, operator.OperatorID).Return(operator, nil).Once()
	suite.mockCatalogRepo.On("FindPlanByID", ctx, plan.PlanID).Return(plan, nil).Once()
	suite.mockRechargeRepo.On("SaveRecharge", ctx, mock.MatchedBy(func(order domain.MobileRecharge) bool {
		return order.Status == domain.RechargePending &&
			order.UserID == userID &&
			order.Mobile == req.Mobile &&
			order.Amount.Equal(plan.Amount)
	})).Return(nil).Once()
	suite.mockLedgerSvc.On("ExternalDebit", ctx, userID, req.AccountID, plan.Amount, req.PIN,
		"Airtel recharge 9876543210", "Recharge "+plan.Title).
		Return(uuid.NewString(), decimal.NewFromInt(851), nil).Once()
	suite.mockRechargeRepo.On("UpdateRechargeOutcome", ctx, mock.AnythingOfType("string"), domain.RechargeSuccess, mock.MatchedBy(func(providerTxn string) bool {
		return strings.HasPrefix(providerTxn, "MOCK-")
	})).Return(nil).Once()

	order, err := svc.Recharge(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.Equal(domain.RechargeSuccess, order.Status)
	suite.True(strings.HasPrefix(order.ProviderTxn, "MOCK-"))
	suite.mockRechargeRepo.AssertExpectations(suite.T())
}

func (suite *RechargeServiceTestSuite) TestRecharge_InsufficientFunds_ReturnsFailedOrder() {
	ctx := context.Background()
	userID := uuid.NewString()
	operator := testOperator()
	plan := testPlan(operator.OperatorID, 719)
	req := dto.RechargeRequest{
		AccountID:  uuid.NewString(),
		OperatorID: operator.OperatorID,
		PlanID:     plan.PlanID,
		Mobile:     "9876543210",
		PIN:        "1234",
	}
	svc := services.NewRechargeService(suite.mockCatalogRepo, suite.mockRechargeRepo, suite.mockLedgerSvc)

	suite.mockCatalogRepo.On("FindOperatorByID", ctx, operator.OperatorID).Return(operator, nil).Once()
	suite.mockCatalogRepo.On("FindPlanByID", ctx, plan.PlanID).Return(plan, nil).Once()
	suite.mockRechargeRepo.On("SaveRecharge", ctx, mock.AnythingOfType("domain.MobileRecharge")).Return(nil).Once()
	suite.mockLedgerSvc.On("ExternalDebit", ctx, userID, req.AccountID, plan.Amount, req.PIN,
		mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return("", decimal.Zero, apperrors.ErrInsufficientFunds).Once()
	suite.mockRechargeRepo.On("UpdateRechargeOutcome", ctx, mock.AnythingOfType("string"), domain.RechargeFailed, "").
		Return(nil).Once()

	order, err := svc.Recharge(ctx, userID, req)

	suite.Require().ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.Require().NotNil(order, "the failed order is returned alongside the error")
	suite.Equal(domain.RechargeFailed, order.Status)
	suite.Empty(order.ProviderTxn)
}

func (suite *RechargeServiceTestSuite) TestRecharge_WrongPIN_MarksOrderFailed() {
	ctx := context.Background()
	userID := uuid.NewString()
	operator := testOperator()
	plan := testPlan(operator.OperatorID, 299)
	req := dto.RechargeRequest{
		AccountID:  uuid.NewString(),
		OperatorID: operator.OperatorID,
		PlanID:     plan.PlanID,
		Mobile:     "9876543210",
		PIN:        "0000",
	}
	svc := services.NewRechargeService(suite.mockCatalogRepo, suite.mockRechargeRepo, suite.mockLedgerSvc)

	suite.mockCatalogRepo.On("FindOperatorByID", ctx, operator.OperatorID).Return(operator, nil).Once()
	suite.mockCatalogRepo.On("FindPlanByID", ctx, plan.PlanID).Return(plan, nil).Once()
	suite.mockRechargeRepo.On("SaveRecharge", ctx, mock.AnythingOfType("domain.MobileRecharge")).Return(nil).Once()
	suite.mockLedgerSvc.On("ExternalDebit", ctx, userID, req.AccountID, plan.Amount, req.PIN,
		mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return("", decimal.Zero, services.ErrInvalidPIN).Once()
	suite.mockRechargeRepo.On("UpdateRechargeOutcome", ctx, mock.AnythingOfType("string"), domain.RechargeFailed, "").
		Return(nil).Once()

	order, err := svc.Recharge(ctx, userID, req)

	suite.Require().ErrorIs(err, services.ErrInvalidPIN)
	suite.Nil(order, "precondition failures surface as bare errors")
	suite.mockRechargeRepo.AssertExpectations(suite.T())
}

func (suite *RechargeServiceTestSuite) TestRecharge_PlanFromAnotherOperator() {
	ctx := context.Background()
	operator := testOperator()
	plan := testPlan("op-jio", 239)
	req := dto.RechargeRequest{
		AccountID:  uuid.NewString(),
		OperatorID: operator.OperatorID,
		PlanID:     plan.PlanID,
		Mobile:     "9876543210",
		PIN:        "1234",
	}
	svc := services.NewRechargeService(suite.mockCatalogRepo, suite.mockRechargeRepo, suite.mockLedgerSvc)

	suite.mockCatalogRepo.On("FindOperatorByID", ctx, operator.OperatorID).Return(operator, nil).Once()
	suite.mockCatalogRepo.On("FindPlanByID", ctx, plan.PlanID).Return(plan, nil).Once()

	_, err := svc.Recharge(ctx, uuid.NewString(), req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockRechargeRepo.AssertNotCalled(suite.T(), "SaveRecharge")
	suite.mockLedgerSvc.AssertNotCalled(suite.T(), "ExternalDebit")
}

func (suite *RechargeServiceTestSuite) TestListPlans_UnknownOperator() {
	ctx := context.Background()
	svc := services.NewRechargeService(suite.mockCatalogRepo, suite.mockRechargeRepo, suite.mockLedgerSvc)

	suite.mockCatalogRepo.On("FindOperatorByID", ctx, "op-nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.ListPlans(ctx, "op-nope")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCatalogRepo.AssertNotCalled(suite.T(), "ListPlansByOperator")
}

func TestRechargeService(t *testing.T) {
	suite.Run(t, new(RechargeServiceTestSuite))
}
