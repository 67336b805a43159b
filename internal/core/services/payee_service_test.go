package services_test

import (
	"context"
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

type PayeeServiceTestSuite struct {
	suite.Suite
	mockPayeeRepo   *MockPayeeRepository
	mockAccountRepo *MockAccountRepository
}

func (suite *PayeeServiceTestSuite) SetupTest() {
	suite.mockPayeeRepo = new(MockPayeeRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
}

func (suite *PayeeServiceTestSuite) TestAddPayee_ByUPIID() {
	ctx := context.Background()
	userID := uuid.NewString()
	target := testAccount(uuid.NewString(), decimal.Zero, "")
	target.HolderName = "Asha Rao"
	target.UPIID = "asha.sbi1234@gapy"
	svc := services.NewPayeeService(suite.mockPayeeRepo, suite.mockAccountRepo)

	suite.mockAccountRepo.On("FindAccountByUPIID", ctx, target.UPIID).Return(target, nil).Once()
	suite.mockPayeeRepo.On("FindSavedPayee", ctx, userID, target.AccountID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPayeeRepo.On("SaveSavedPayee", ctx, mock.MatchedBy(func(p domain.SavedPayee) bool {
		return p.OwnerUserID == userID && p.AccountID == target.AccountID
	})).Return(nil).Once()

	payee, err := svc.AddPayee(ctx, userID, dto.AddPayeeRequest{UPIID: target.UPIID})

	suite.Require().NoError(err)
	suite.Equal(target.AccountID, payee.AccountID)
	suite.Equal(target.HolderName, payee.HolderName)
	suite.mockPayeeRepo.AssertExpectations(suite.T())
}

func (suite *PayeeServiceTestSuite) TestAddPayee_OwnAccountRejected() {
	ctx := context.Background()
	userID := uuid.NewString()
	own := testAccount(userID, decimal.Zero, "")
	svc := services.NewPayeeService(suite.mockPayeeRepo, suite.mockAccountRepo)

	suite.mockAccountRepo.On("FindAccountByID", ctx, own.AccountID).Return(own, nil).Once()

	_, err := svc.AddPayee(ctx, userID, dto.AddPayeeRequest{AccountID: own.AccountID})

	suite.Require().ErrorIs(err, services.ErrOwnAccountPayee)
	suite.mockPayeeRepo.AssertNotCalled(suite.T(), "SaveSavedPayee")
}

func (suite *PayeeServiceTestSuite) TestAddPayee_AlreadySaved() {
	ctx := context.Background()
	userID := uuid.NewString()
	target := testAccount(uuid.NewString(), decimal.Zero, "")
	svc := services.NewPayeeService(suite.mockPayeeRepo, suite.mockAccountRepo)

	existing := &domain.SavedPayee{
		SavedPayeeID: uuid.NewString(),
		OwnerUserID:  userID,
		AccountID:    target.AccountID,
	}
	suite.mockAccountRepo.On("FindAccountByID", ctx, target.AccountID).Return(target, nil).Once()
	suite.mockPayeeRepo.On("FindSavedPayee", ctx, userID, target.AccountID).Return(existing, nil).Once()

	_, err := svc.AddPayee(ctx, userID, dto.AddPayeeRequest{AccountID: target.AccountID})

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockPayeeRepo.AssertNotCalled(suite.T(), "SaveSavedPayee")
}

func (suite *PayeeServiceTestSuite) TestSearchPayees_FiltersOwnAccounts() {
	ctx := context.Background()
	userID := uuid.NewString()
	mine := testAccount(userID, decimal.Zero, "")
	other := testAccount(uuid.NewString(), decimal.Zero, "")
	svc := services.NewPayeeService(suite.mockPayeeRepo, suite.mockAccountRepo)

	suite.mockAccountRepo.On("SearchAccounts", ctx, "rao", 20).
		Return([]domain.BankAccount{*mine, *other}, nil).Once()

	results, err := svc.SearchPayees(ctx, userID, " rao ", 0)

	suite.Require().NoError(err)
	suite.Require().Len(results, 1)
	suite.Equal(other.AccountID, results[0].AccountID)
}

func (suite *PayeeServiceTestSuite) TestSearchPayees_QueryTooShort() {
	svc := services.NewPayeeService(suite.mockPayeeRepo, suite.mockAccountRepo)

	_, err := svc.SearchPayees(context.Background(), uuid.NewString(), "ab", 20)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SearchAccounts")
}

func TestPayeeService(t *testing.T) {
	suite.Run(t, new(PayeeServiceTestSuite))
}
