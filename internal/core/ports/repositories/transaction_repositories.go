package repositories

import (
	"context"
	"time"

	"github.com/gapy-app/gapy_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListTransactionsFilter narrows a transaction listing.
// A zero Month/Year means no month filter.
type ListTransactionsFilter struct {
	Month int
	Year  int
}

// LedgerWriter performs the atomic transfer write.
type LedgerWriter interface {
	// RecordTransfer locks the involved accounts, checks the sender's balance
	// and persists the ledger entry in one database transaction. On
	// insufficient funds it commits a FAILED entry without touching balances
	// and returns apperrors.ErrInsufficientFunds alongside the recorded
	// entry. On success it applies both balance changes and returns the new
	// sender balance.
	RecordTransfer(ctx context.Context, txn domain.Transaction) (*domain.Transaction, decimal.Decimal, error)
}

// TransactionReader defines read operations for ledger data
type TransactionReader interface {
	// FindTransactionByID retrieves a single ledger entry.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByAccountIDs retrieves a newest-first page of entries
	// touching any of the given accounts, using token-based pagination.
	ListTransactionsByAccountIDs(ctx context.Context, accountIDs []string, filter ListTransactionsFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// SumMonthlyFlows aggregates successful debits and credits per calendar
	// month over the trailing window ending at now.
	SumMonthlyFlows(ctx context.Context, accountIDs []string, months int, now time.Time) ([]domain.MonthlyFlow, error)
}

// TransactionRepositoryFacade combines all ledger repository interfaces
type TransactionRepositoryFacade interface {
	LedgerWriter
	TransactionReader
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
