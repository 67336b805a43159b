package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/gapy-app/gapy_backend/internal/apperrors"
	"github.com/gapy-app/gapy_backend/internal/core/domain"
	portsrepo "github.com/gapy-app/gapy_backend/internal/core/ports/repositories"
	"github.com/gapy-app/gapy_backend/internal/core/services"
	"github.com/gapy-app/gapy_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockTxnRepo     *MockTransactionRepository
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_DirectionMapping() {
	ctx := context.Background()
	userID := uuid.NewString()
	mine := testAccount(userID, decimal.NewFromInt(500), "")
	theirsID := uuid.NewString()
	externalLabel := "Airtel recharge 9876543210"

	svc := services.NewTransactionService(suite.mockAccountRepo, suite.mockTxnRepo)

	suite.mockAccountRepo.On("ListAccountsByUserID", ctx, userID).
		Return([]domain.BankAccount{*mine}, nil).Once()

	now := time.Now()
	entries := []domain.Transaction{
		{
			TransactionID:   uuid.NewString(),
			SenderAccountID: mine.AccountID,
			ReceiverAccountID: func() *string {
				id := theirsID
				return &id
			}(),
			Amount:    decimal.NewFromInt(100),
			Status:    domain.TxnSuccess,
			Timestamp: now,
		},
		{
			TransactionID:   uuid.NewString(),
			SenderAccountID: theirsID,
			ReceiverAccountID: func() *string {
				id := mine.AccountID
				return &id
			}(),
			Amount:    decimal.NewFromInt(40),
			Status:    domain.TxnSuccess,
			Timestamp: now.Add(-time.Minute),
		},
		{
			TransactionID:   uuid.NewString(),
			SenderAccountID: mine.AccountID,
			ReceiverLabel:   &externalLabel,
			Amount:          decimal.NewFromInt(9999),
			Status:          domain.TxnFailed,
			Timestamp:       now.Add(-2 * time.Minute),
		},
	}
	suite.mockTxnRepo.On("ListTransactionsByAccountIDs", ctx, []string{mine.AccountID}, portsrepo.ListTransactionsFilter{}, 20, (*string)(nil)).
		Return(entries, nil, nil).Once()

	resp, err := svc.ListTransactions(ctx, userID, dto.ListTransactionsParams{Limit: 20})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Transactions, 3)
	suite.Equal("DEBIT", resp.Transactions[0].Direction)
	suite.Equal("CREDIT", resp.Transactions[1].Direction)
	suite.Equal("DEBIT", resp.Transactions[2].Direction)
	suite.Equal("FAILED", resp.Transactions[2].Status, "failed entries stay in the history")
	suite.Require().NotNil(resp.Transactions[2].ReceiverLabel)
	suite.Equal(externalLabel, *resp.Transactions[2].ReceiverLabel)
	suite.Nil(resp.NextToken)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_NarrowsToRequestedAccount() {
	ctx := context.Background()
	userID := uuid.NewString()
	first := testAccount(userID, decimal.Zero, "")
	second := testAccount(userID, decimal.Zero, "")

	svc := services.NewTransactionService(suite.mockAccountRepo, suite.mockTxnRepo)

	suite.mockAccountRepo.On("ListAccountsByUserID", ctx, userID).
		Return([]domain.BankAccount{*first, *second}, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByAccountIDs", ctx, []string{second.AccountID}, portsrepo.ListTransactionsFilter{}, 50, (*string)(nil)).
		Return([]domain.Transaction{}, nil, nil).Once()

	resp, err := svc.ListTransactions(ctx, userID, dto.ListTransactionsParams{AccountID: second.AccountID, Limit: 50})

	suite.Require().NoError(err)
	suite.Empty(resp.Transactions)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_ForeignAccountForbidden() {
	ctx := context.Background()
	userID := uuid.NewString()
	mine := testAccount(userID, decimal.Zero, "")

	svc := services.NewTransactionService(suite.mockAccountRepo, suite.mockTxnRepo)

	suite.mockAccountRepo.On("ListAccountsByUserID", ctx, userID).
		Return([]domain.BankAccount{*mine}, nil).Once()

	_, err := svc.ListTransactions(ctx, userID, dto.ListTransactionsParams{AccountID: uuid.NewString(), Limit: 20})

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactionsByAccountIDs")
}

func (suite *TransactionServiceTestSuite) TestListTransactions_MonthFilterPassedThrough() {
	ctx := context.Background()
	userID := uuid.NewString()
	mine := testAccount(userID, decimal.Zero, "")

	svc := services.NewTransactionService(suite.mockAccountRepo, suite.mockTxnRepo)

	suite.mockAccountRepo.On("ListAccountsByUserID", ctx, userID).
		Return([]domain.BankAccount{*mine}, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByAccountIDs", ctx, []string{mine.AccountID}, portsrepo.ListTransactionsFilter{Month: 6, Year: 2026}, 20, (*string)(nil)).
		Return([]domain.Transaction{}, nil, nil).Once()

	_, err := svc.ListTransactions(ctx, userID, dto.ListTransactionsParams{Month: 6, Year: 2026, Limit: 20})

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestGetStats_Totals() {
	ctx := context.Background()
	userID := uuid.NewString()
	mine := testAccount(userID, decimal.Zero, "")

	svc := services.NewTransactionService(suite.mockAccountRepo, suite.mockTxnRepo)

	suite.mockAccountRepo.On("ListAccountsByUserID", ctx, userID).
		Return([]domain.BankAccount{*mine}, nil).Once()

	monthly := []domain.MonthlyFlow{
		{Month: "2026-07", Label: "Jul 2026", Debited: decimal.NewFromInt(300), Credited: decimal.NewFromInt(120)},
		{Month: "2026-08", Label: "Aug 2026", Debited: decimal.NewFromInt(50), Credited: decimal.NewFromInt(400)},
	}
	suite.mockTxnRepo.On("SumMonthlyFlows", ctx, []string{mine.AccountID}, 2, mock.AnythingOfType("time.Time")).
		Return(monthly, nil).Once()

	stats, err := svc.GetStats(ctx, userID, 2)

	suite.Require().NoError(err)
	suite.True(stats.TotalDebited.Equal(decimal.NewFromInt(350)))
	suite.True(stats.TotalCredited.Equal(decimal.NewFromInt(520)))
	suite.True(stats.NetChange.Equal(decimal.NewFromInt(170)))
	suite.Len(stats.Monthly, 2)
}

func (suite *TransactionServiceTestSuite) TestGetStats_DefaultsToSixMonths() {
	ctx := context.Background()
	userID := uuid.NewString()
	mine := testAccount(userID, decimal.Zero, "")

	svc := services.NewTransactionService(suite.mockAccountRepo, suite.mockTxnRepo)

	suite.mockAccountRepo.On("ListAccountsByUserID", ctx, userID).
		Return([]domain.BankAccount{*mine}, nil).Once()
	suite.mockTxnRepo.On("SumMonthlyFlows", ctx, []string{mine.AccountID}, 6, mock.AnythingOfType("time.Time")).
		Return([]domain.MonthlyFlow{}, nil).Once()

	_, err := svc.GetStats(ctx, userID, 0)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
