package services

import (
	"context"

	"github.com/gapy-app/gapy_backend/internal/apperrors"
	"github.com/gapy-app/gapy_backend/internal/core/domain"
	portsrepo "github.com/gapy-app/gapy_backend/internal/core/ports/repositories"
	portssvc "github.com/gapy-app/gapy_backend/internal/core/ports/services"
	"github.com/gapy-app/gapy_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// transactionService reads the user's ledger history.
type transactionService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	txnRepo     portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(accountRepo portsrepo.AccountRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{accountRepo: accountRepo, txnRepo: txnRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// ownedAccountIDs resolves the user's account ids, optionally narrowed to one
// account after an ownership check.
func (s *transactionService) ownedAccountIDs(ctx context.Context, userID, accountID string) ([]string, map[string]bool, error) {
	accounts, err := s.accountRepo.ListAccountsByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	owned := make(map[string]bool, len(accounts))
	for _, acc := range accounts {
		owned[acc.AccountID] = true
	}

	if accountID != "" {
		if !owned[accountID] {
			return nil, nil, apperrors.ErrForbidden
		}
		return []string{accountID}, owned, nil
	}

	ids := make([]string, 0, len(accounts))
	for _, acc := range accounts {
		ids = append(ids, acc.AccountID)
	}
	return ids, owned, nil
}

// ListTransactions retrieves a newest-first page of ledger entries touching
// the user's accounts. FAILED entries are included; they are part of the
// audit trail.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	ids, owned, err := s.ownedAccountIDs(ctx, userID, params.AccountID)
	if err != nil {
		return nil, err
	}

	filter := portsrepo.ListTransactionsFilter{Month: params.Month, Year: params.Year}
	transactions, nextToken, err := s.txnRepo.ListTransactionsByAccountIDs(ctx, ids, filter, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TransactionResponse, len(transactions))
	for i, txn := range transactions {
		responses[i] = dto.ToTransactionResponse(&txn, owned)
	}

	return &dto.ListTransactionsResponse{
		Transactions: responses,
		NextToken:    nextToken,
	}, nil
}

// GetStats aggregates successful debits and credits over the trailing months
// window. Months defaults to six.
func (s *transactionService) GetStats(ctx context.Context, userID string, months int) (*dto.TransactionStatsResponse, error) {
	if months <= 0 {
		months = 6
	}

	ids, _, err := s.ownedAccountIDs(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	monthly, err := s.txnRepo.SumMonthlyFlows(ctx, ids, months, timeNow())
	if err != nil {
		return nil, err
	}

	totalDebited := decimal.Zero
	totalCredited := decimal.Zero
	for _, flow := range monthly {
		totalDebited = totalDebited.Add(flow.Debited)
		totalCredited = totalCredited.Add(flow.Credited)
	}

	stats := domain.TransactionStats{
		TotalDebited:  totalDebited,
		TotalCredited: totalCredited,
		NetChange:     totalCredited.Sub(totalDebited),
		Monthly:       monthly,
	}
	resp := dto.ToTransactionStatsResponse(&stats)
	return &resp, nil
}
