package services_test

import (
	"context"
	"testing"

	"github.com/gapy-app/gapy_backend/internal/apperrors"
	"github.com/gapy-app/gapy_backend/internal/core/services"
	"github.com/gapy-app/gapy_backend/internal/dto"
	"github.com/gapy-app/gapy_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
}

func (suite *AccountServiceTestSuite) TestLinkAccount_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.LinkAccountRequest{
		HolderName:    "Asha Rao",
		BankName:      "State Bank",
		Branch:        "MG Road",
		AccountNumber: "123456789012",
		IFSC:          "SBIN0001234",
		Mobile:        "9876543210",
	}
	svc := services.NewAccountService(suite.mockRepo)

	suite.mockRepo.On("FindAccountByNumber", ctx, req.AccountNumber, req.IFSC).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindAccountByUPIID", ctx, mock.AnythingOfType("string")).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.BankAccount")).
		Return(nil).Once()

	account, err := svc.LinkAccount(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.NotEmpty(account.AccountID)
	suite.Equal(userID, account.UserID)
	suite.NotEmpty(account.UPIID)
	suite.True(account.Balance.IsZero(), "a newly linked account starts empty")
	suite.False(account.PINEnabled)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestLinkAccount_DuplicateNumber() {
	ctx := context.Background()
	req := dto.LinkAccountRequest{
		HolderName:    "Asha Rao",
		BankName:      "State Bank",
		AccountNumber: "123456789012",
		IFSC:          "SBIN0001234",
		Mobile:        "9876543210",
	}
	svc := services.NewAccountService(suite.mockRepo)

	existing := testAccount(uuid.NewString(), decimal.Zero, "")
	suite.mockRepo.On("FindAccountByNumber", ctx, req.AccountNumber, req.IFSC).
		Return(existing, nil).Once()

	_, err := svc.LinkAccount(ctx, uuid.NewString(), req)

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestSetPIN_FirstTime() {
	ctx := context.Background()
	userID := uuid.NewString()
	account := testAccount(userID, decimal.Zero, "")
	svc := services.NewAccountService(suite.mockRepo)

	suite.mockRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockRepo.On("UpdatePIN", ctx, account.AccountID, mock.MatchedBy(func(hash string) bool {
		return utils.CheckPINHash("4321", hash)
	}), userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := svc.SetPIN(ctx, userID, account.AccountID, "4321")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestSetPIN_AlreadySet() {
	ctx := context.Background()
	userID := uuid.NewString()
	account := testAccount(userID, decimal.Zero, "1234")
	svc := services.NewAccountService(suite.mockRepo)

	suite.mockRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()

	err := svc.SetPIN(ctx, userID, account.AccountID, "4321")

	suite.Require().ErrorIs(err, services.ErrPINAlreadySet)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdatePIN")
}

func (suite *AccountServiceTestSuite) TestChangePIN_WrongCurrentPIN() {
	ctx := context.Background()
	userID := uuid.NewString()
	account := testAccount(userID, decimal.Zero, "1234")
	svc := services.NewAccountService(suite.mockRepo)

	suite.mockRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()

	err := svc.ChangePIN(ctx, userID, account.AccountID, "0000", "5678")

	suite.Require().ErrorIs(err, services.ErrInvalidPIN)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdatePIN")
}

func (suite *AccountServiceTestSuite) TestChangePIN_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	account := testAccount(userID, decimal.Zero, "1234")
	svc := services.NewAccountService(suite.mockRepo)

	suite.mockRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockRepo.On("UpdatePIN", ctx, account.AccountID, mock.MatchedBy(func(hash string) bool {
		return utils.CheckPINHash("5678", hash)
	}), userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := svc.ChangePIN(ctx, userID, account.AccountID, "1234", "5678")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestVerifyPIN() {
	ctx := context.Background()
	userID := uuid.NewString()
	account := testAccount(userID, decimal.Zero, "1234")
	svc := services.NewAccountService(suite.mockRepo)

	suite.mockRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Twice()

	valid, err := svc.VerifyPIN(ctx, userID, account.AccountID, "1234")
	suite.Require().NoError(err)
	suite.True(valid)

	valid, err = svc.VerifyPIN(ctx, userID, account.AccountID, "9999")
	suite.Require().NoError(err)
	suite.False(valid)
}

func (suite *AccountServiceTestSuite) TestVerifyPIN_NoPINSet() {
	ctx := context.Background()
	userID := uuid.NewString()
	account := testAccount(userID, decimal.Zero, "")
	svc := services.NewAccountService(suite.mockRepo)

	suite.mockRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()

	valid, err := svc.VerifyPIN(ctx, userID, account.AccountID, "1234")

	suite.Require().NoError(err)
	suite.False(valid, "an account with no PIN set must verify false")
}

func (suite *AccountServiceTestSuite) TestTopUp_InvalidAmount() {
	svc := services.NewAccountService(suite.mockRepo)

	_, err := svc.TopUp(context.Background(), uuid.NewString(), uuid.NewString(), "-20")

	suite.Require().ErrorIs(err, services.ErrInvalidAmount)
	suite.mockRepo.AssertNotCalled(suite.T(), "AddToBalance")
}

func (suite *AccountServiceTestSuite) TestTopUp_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	account := testAccount(userID, decimal.NewFromInt(100), "")
	svc := services.NewAccountService(suite.mockRepo)

	suite.mockRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockRepo.On("AddToBalance", ctx, account.AccountID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(250))
	}), userID, mock.AnythingOfType("time.Time")).
		Return(decimal.NewFromInt(350), nil).Once()

	newBalance, err := svc.TopUp(ctx, userID, account.AccountID, "250")

	suite.Require().NoError(err)
	suite.True(newBalance.Equal(decimal.NewFromInt(350)))
}

func (suite *AccountServiceTestSuite) TestGetBalance_Forbidden() {
	ctx := context.Background()
	account := testAccount(uuid.NewString(), decimal.NewFromInt(75), "")
	svc := services.NewAccountService(suite.mockRepo)

	suite.mockRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()

	_, err := svc.GetBalance(ctx, uuid.NewString(), account.AccountID)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
