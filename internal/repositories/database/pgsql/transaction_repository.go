package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gapy-app/gapy_backend/internal/apperrors"
	"github.com/gapy-app/gapy_backend/internal/core/domain"
	portsrepo "github.com/gapy-app/gapy_backend/internal/core/ports/repositories"
	"github.com/gapy-app/gapy_backend/internal/models"
	"github.com/gapy-app/gapy_backend/internal/utils/mapping"
	"github.com/gapy-app/gapy_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// newPgxTransactionRepository creates a new repository for ledger data.
func newPgxTransactionRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryWithTx
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, sender_account_id, receiver_account_id, receiver_label, amount, status, reference, timestamp, created_at, created_by, last_updated_at, last_updated_by`

// RecordTransfer is the single write path for the ledger. It locks the
// involved accounts, checks the sender's balance and persists the entry in
// one database transaction.
//
// Insufficient funds is not an abort: the FAILED entry is committed with no
// balance mutation, and apperrors.ErrInsufficientFunds is returned alongside
// the recorded entry.
func (r *PgxTransactionRepository) RecordTransfer(ctx context.Context, txn domain.Transaction) (*domain.Transaction, decimal.Decimal, error) {
	if !txn.Amount.IsPositive() {
		return nil, decimal.Zero, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, decimal.Zero, err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	accountIDs := []string{txn.SenderAccountID}
	if txn.ReceiverAccountID != nil {
		accountIDs = append(accountIDs, *txn.ReceiverAccountID)
	}

	// Locks are acquired in ascending account_id order inside this call.
	lockedAccounts, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		return nil, decimal.Zero, err
	}

	sender, ok := lockedAccounts[txn.SenderAccountID]
	if !ok {
		return nil, decimal.Zero, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, txn.SenderAccountID)
	}

	if sender.Balance.LessThan(txn.Amount) {
		// Record the rejection. Balances stay untouched; the commit only
		// persists the FAILED ledger entry.
		txn.Status = domain.TxnFailed
		if err := r.insertTransactionTx(ctx, tx, txn); err != nil {
			return nil, decimal.Zero, err
		}
		if err := r.Commit(ctx, tx); err != nil {
			return nil, decimal.Zero, err
		}
		return &txn, sender.Balance, apperrors.ErrInsufficientFunds
	}

	balanceChanges := map[string]decimal.Decimal{
		txn.SenderAccountID: txn.Amount.Neg(),
	}
	if txn.ReceiverAccountID != nil {
		balanceChanges[*txn.ReceiverAccountID] = txn.Amount
	}
	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, txn.CreatedBy, txn.Timestamp); err != nil {
		return nil, decimal.Zero, err
	}

	txn.Status = domain.TxnSuccess
	if err := r.insertTransactionTx(ctx, tx, txn); err != nil {
		return nil, decimal.Zero, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, decimal.Zero, err
	}

	return &txn, sender.Balance.Sub(txn.Amount), nil
}

func (r *PgxTransactionRepository) insertTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.SenderAccountID,
		m.ReceiverAccountID,
		m.ReceiverLabel,
		m.Amount,
		m.Status,
		m.Reference,
		m.Timestamp,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a single ledger entry.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransactionRow(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainTransaction(*m)
	return &d, nil
}

func scanTransactionRow(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.SenderAccountID,
		&m.ReceiverAccountID,
		&m.ReceiverLabel,
		&m.Amount,
		&m.Status,
		&m.Reference,
		&m.Timestamp,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan transaction row: %w", err)
	}
	return &m, nil
}

// ListTransactionsByAccountIDs retrieves a newest-first page of entries
// touching any of the given accounts, using token-based keyset pagination on
// (timestamp, transaction_id).
func (r *PgxTransactionRepository) ListTransactionsByAccountIDs(ctx context.Context, accountIDs []string, filter portsrepo.ListTransactionsFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if len(accountIDs) == 0 {
		return []domain.Transaction{}, nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE (sender_account_id = ANY($1) OR receiver_account_id = ANY($1))
	`
	args := []interface{}{accountIDs}

	if filter.Month != 0 && filter.Year != 0 {
		monthStart := time.Date(filter.Year, time.Month(filter.Month), 1, 0, 0, 0, 0, time.UTC)
		baseQuery += ` AND timestamp >= $2 AND timestamp < $3`
		args = append(args, monthStart, monthStart.AddDate(0, 1, 0))
	}

	if nextToken != nil && *nextToken != "" {
		lastTimestamp, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)
		}
		baseQuery += ` AND (timestamp, transaction_id) < ($` + strconv.Itoa(len(args)+1) + `, $` + strconv.Itoa(len(args)+2) + `)`
		args = append(args, lastTimestamp, lastID)
	}

	query := baseQuery + ` ORDER BY timestamp DESC, transaction_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0, fetchLimit)
	for rows.Next() {
		var m models.Transaction
		err := rows.Scan(
			&m.TransactionID,
			&m.SenderAccountID,
			&m.ReceiverAccountID,
			&m.ReceiverLabel,
			&m.Amount,
			&m.Status,
			&m.Reference,
			&m.Timestamp,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	var newNextToken *string
	if len(transactions) > limit {
		transactions = transactions[:limit]
		last := transactions[limit-1]
		token := pagination.EncodeToken(last.Timestamp, last.TransactionID)
		newNextToken = &token
	}

	return mapping.ToDomainTransactionSlice(transactions), newNextToken, nil
}

// SumMonthlyFlows aggregates successful debits and credits per calendar month
// over the trailing window ending at now. Months with no activity come back
// as zero rows so charts always cover the full window.
func (r *PgxTransactionRepository) SumMonthlyFlows(ctx context.Context, accountIDs []string, months int, now time.Time) ([]domain.MonthlyFlow, error) {
	if months <= 0 {
		months = 6
	}
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	flows := make([]domain.MonthlyFlow, months)
	byMonth := make(map[string]*domain.MonthlyFlow, months)
	for i := 0; i < months; i++ {
		monthStart := windowStart.AddDate(0, i, 0)
		flows[i] = domain.MonthlyFlow{
			Month:    monthStart.Format("2006-01"),
			Label:    monthStart.Format("Jan 2006"),
			Debited:  decimal.Zero,
			Credited: decimal.Zero,
		}
		byMonth[flows[i].Month] = &flows[i]
	}

	if len(accountIDs) == 0 {
		return flows, nil
	}

	// FAILED entries are audit records with no balance effect; only SUCCESS
	// contributes to the sums.
	query := `
		SELECT to_char(date_trunc('month', timestamp), 'YYYY-MM') AS month,
		       COALESCE(SUM(amount) FILTER (WHERE sender_account_id = ANY($1)), 0) AS debited,
		       COALESCE(SUM(amount) FILTER (WHERE receiver_account_id = ANY($1)), 0) AS credited
		FROM transactions
		WHERE status = 'SUCCESS'
		  AND (sender_account_id = ANY($1) OR receiver_account_id = ANY($1))
		  AND timestamp >= $2
		GROUP BY 1;
	`
	rows, err := r.Pool.Query(ctx, query, accountIDs, windowStart)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly flows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var month string
		var debited, credited decimal.Decimal
		if err := rows.Scan(&month, &debited, &credited); err != nil {
			return nil, fmt.Errorf("failed to scan monthly flow row: %w", err)
		}
		if flow, ok := byMonth[month]; ok {
			flow.Debited = debited
			flow.Credited = credited
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly flow rows: %w", err)
	}

	return flows, nil
}
