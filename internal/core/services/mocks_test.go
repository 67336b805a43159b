package services_test

import (
	"context"
	"time"

	"github.com/gapy-app/gapy_backend/internal/core/domain"
	portsrepo "github.com/gapy-app/gapy_backend/internal/core/ports/repositories"
	portssvc "github.com/gapy-app/gapy_backend/internal/core/ports/services"
	"github.com/gapy-app/gapy_backend/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByUPIID(ctx context.Context, upiID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, upiID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber, ifsc string) (*domain.BankAccount, error) {
	args := m.Called(ctx, accountNumber, ifsc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByUserID(ctx context.Context, userID string) ([]domain.BankAccount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockAccountRepository) SearchAccounts(ctx context.Context, query string, limit int) ([]domain.BankAccount, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdatePIN(ctx context.Context, accountID string, pinHash string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, pinHash, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) AddToBalance(ctx context.Context, accountID string, amount decimal.Decimal, userID string, now time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID, amount, userID, now)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.BankAccount, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.BankAccount), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, balanceChanges, userID, now)
	return args.Error(0)
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) RecordTransfer(ctx context.Context, txn domain.Transaction) (*domain.Transaction, decimal.Decimal, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Get(1).(decimal.Decimal), args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByAccountIDs(ctx context.Context, accountIDs []string, filter portsrepo.ListTransactionsFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, accountIDs, filter, limit, nextToken)
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, token, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), token, args.Error(2)
}

func (m *MockTransactionRepository) SumMonthlyFlows(ctx context.Context, accountIDs []string, months int, now time.Time) ([]domain.MonthlyFlow, error) {
	args := m.Called(ctx, accountIDs, months, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyFlow), args.Error(1)
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, now time.Time) error {
	args := m.Called(ctx, userID, now)
	return args.Error(0)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// --- Mock PayeeRepository ---

type MockPayeeRepository struct {
	mock.Mock
}

func (m *MockPayeeRepository) ListSavedPayees(ctx context.Context, ownerUserID string) ([]domain.SavedPayee, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedPayee), args.Error(1)
}

func (m *MockPayeeRepository) FindSavedPayee(ctx context.Context, ownerUserID, accountID string) (*domain.SavedPayee, error) {
	args := m.Called(ctx, ownerUserID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedPayee), args.Error(1)
}

func (m *MockPayeeRepository) SaveSavedPayee(ctx context.Context, payee domain.SavedPayee) error {
	args := m.Called(ctx, payee)
	return args.Error(0)
}

func (m *MockPayeeRepository) DeleteSavedPayee(ctx context.Context, ownerUserID, savedPayeeID string) error {
	args := m.Called(ctx, ownerUserID, savedPayeeID)
	return args.Error(0)
}

var _ portsrepo.PayeeRepositoryFacade = (*MockPayeeRepository)(nil)

// --- Mock CatalogRepository ---

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListOperators(ctx context.Context) ([]domain.Operator, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Operator), args.Error(1)
}

func (m *MockCatalogRepository) FindOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error) {
	args := m.Called(ctx, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}

func (m *MockCatalogRepository) ListPlansByOperator(ctx context.Context, operatorID string) ([]domain.Plan, error) {
	args := m.Called(ctx, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Plan), args.Error(1)
}

func (m *MockCatalogRepository) FindPlanByID(ctx context.Context, planID string) (*domain.Plan, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plan), args.Error(1)
}

func (m *MockCatalogRepository) ListBillers(ctx context.Context, category string) ([]domain.Biller, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Biller), args.Error(1)
}

func (m *MockCatalogRepository) FindBillerByID(ctx context.Context, billerID string) (*domain.Biller, error) {
	args := m.Called(ctx, billerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Biller), args.Error(1)
}

var _ portsrepo.CatalogRepositoryFacade = (*MockCatalogRepository)(nil)

// --- Mock RechargeRepository ---

type MockRechargeRepository struct {
	mock.Mock
}

func (m *MockRechargeRepository) FindRechargeByID(ctx context.Context, rechargeID string) (*domain.MobileRecharge, error) {
	args := m.Called(ctx, rechargeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MobileRecharge), args.Error(1)
}

func (m *MockRechargeRepository) ListRechargesByUser(ctx context.Context, userID string, limit int) ([]domain.MobileRecharge, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MobileRecharge), args.Error(1)
}

func (m *MockRechargeRepository) SaveRecharge(ctx context.Context, recharge domain.MobileRecharge) error {
	args := m.Called(ctx, recharge)
	return args.Error(0)
}

func (m *MockRechargeRepository) UpdateRechargeOutcome(ctx context.Context, rechargeID string, status domain.RechargeStatus, providerTxn string) error {
	args := m.Called(ctx, rechargeID, status, providerTxn)
	return args.Error(0)
}

var _ portsrepo.RechargeRepositoryFacade = (*MockRechargeRepository)(nil)

// --- Mock BillRepository ---

type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) FindBillPaymentByID(ctx context.Context, billPaymentID string) (*domain.BillPayment, error) {
	args := m.Called(ctx, billPaymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillPayment), args.Error(1)
}

func (m *MockBillRepository) ListBillPaymentsByUser(ctx context.Context, userID string, limit int) ([]domain.BillPayment, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BillPayment), args.Error(1)
}

func (m *MockBillRepository) SaveBillPayment(ctx context.Context, payment domain.BillPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockBillRepository) UpdateBillPaymentOutcome(ctx context.Context, billPaymentID string, status domain.BillPaymentStatus, providerTxn string) error {
	args := m.Called(ctx, billPaymentID, status, providerTxn)
	return args.Error(0)
}

var _ portsrepo.BillRepositoryFacade = (*MockBillRepository)(nil)

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
