package services

import (
	"context"

	"github.com/gapy-app/gapy_backend/internal/dto"
)

// TransactionSvcFacade reads the user's ledger history.
type TransactionSvcFacade interface {
	// ListTransactions retrieves a newest-first page of ledger entries
	// touching the user's accounts, optionally filtered to one account
	// and one calendar month.
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// GetStats aggregates successful debits and credits over the trailing
	// months window.
	GetStats(ctx context.Context, userID string, months int) (*dto.TransactionStatsResponse, error)
}
