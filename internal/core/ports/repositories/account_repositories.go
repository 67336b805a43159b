package repositories

import (
	"context"
	"time"

	"github.com/gapy-app/gapy_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for bank account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error)

	// FindAccountByUPIID retrieves an account by its payment address.
	FindAccountByUPIID(ctx context.Context, upiID string) (*domain.BankAccount, error)

	// FindAccountByNumber retrieves an account by bank account number and IFSC.
	FindAccountByNumber(ctx context.Context, accountNumber, ifsc string) (*domain.BankAccount, error)

	// ListAccountsByUserID retrieves every account linked by a user.
	ListAccountsByUserID(ctx context.Context, userID string) ([]domain.BankAccount, error)

	// SearchAccounts retrieves accounts whose holder name, mobile or payment
	// address matches the query. Used for payee search.
	SearchAccounts(ctx context.Context, query string, limit int) ([]domain.BankAccount, error)
}

// AccountWriter defines write operations for bank account data
type AccountWriter interface {
	// SaveAccount persists a newly linked account.
	SaveAccount(ctx context.Context, account domain.BankAccount) error

	// UpdatePIN stores a new PIN hash and marks the PIN enabled.
	UpdatePIN(ctx context.Context, accountID string, pinHash string, userID string, now time.Time) error

	// AddToBalance atomically credits the account with the given amount.
	// Used only by the demo top-up path; no ledger entry is written.
	AddToBalance(ctx context.Context, accountID string, amount decimal.Decimal, userID string, now time.Time) (decimal.Decimal, error)

	// DeleteAccount removes an account row. Ledger entries referencing it are retained.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountTransferSupport defines operations used inside the ledger write transaction
type AccountTransferSupport interface {
	// FindAccountsByIDsForUpdate selects accounts in ascending accountID order
	// and locks them for update within a transaction.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.BankAccount, error)

	// UpdateAccountBalancesInTx applies signed balance deltas within a given transaction.
	UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransferSupport
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
