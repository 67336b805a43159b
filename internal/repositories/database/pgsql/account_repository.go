package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gapy-app/gapy_backend/internal/apperrors"
	"github.com/gapy-app/gapy_backend/internal/core/domain"
	portsrepo "github.com/gapy-app/gapy_backend/internal/core/ports/repositories"
	"github.com/gapy-app/gapy_backend/internal/models"
	"github.com/gapy-app/gapy_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for bank account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryWithTx {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryWithTx
var _ portsrepo.AccountRepositoryWithTx = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, user_id, holder_name, bank_name, branch, account_number, ifsc, mobile, upi_id, balance, pin_hash, pin_enabled, created_at, created_by, last_updated_at, last_updated_by`

func scanAccountRow(row pgx.Row) (*domain.BankAccount, error) {
	var m models.BankAccount
	err := row.Scan(
		&m.AccountID,
		&m.UserID,
		&m.HolderName,
		&m.BankName,
		&m.Branch,
		&m.AccountNumber,
		&m.IFSC,
		&m.Mobile,
		&m.UPIID,
		&m.Balance,
		&m.PINHash,
		&m.PINEnabled,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan account row: %w", err)
	}
	acc := mapping.ToDomainBankAccount(m)
	return &acc, nil
}

// SaveAccount inserts a newly linked account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)

	query := `
		INSERT INTO bank_accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.UserID,
		m.HolderName,
		m.BankName,
		m.Branch,
		m.AccountNumber,
		m.IFSC,
		m.Mobile,
		m.UPIID,
		m.Balance,
		m.PINHash,
		m.PINEnabled,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: account already linked", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM bank_accounts WHERE account_id = $1;`
	return scanAccountRow(r.Pool.QueryRow(ctx, query, accountID))
}

// FindAccountByUPIID retrieves an account by its payment address.
func (r *PgxAccountRepository) FindAccountByUPIID(ctx context.Context, upiID string) (*domain.BankAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM bank_accounts WHERE upi_id = $1;`
	return scanAccountRow(r.Pool.QueryRow(ctx, query, upiID))
}

// FindAccountByNumber retrieves an account by bank account number and IFSC.
func (r *PgxAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber, ifsc string) (*domain.BankAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM bank_accounts WHERE account_number = $1 AND ifsc = $2;`
	return scanAccountRow(r.Pool.QueryRow(ctx, query, accountNumber, ifsc))
}

// ListAccountsByUserID retrieves every account linked by a user.
func (r *PgxAccountRepository) ListAccountsByUserID(ctx context.Context, userID string) ([]domain.BankAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM bank_accounts WHERE user_id = $1 ORDER BY created_at;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for user %s: %w", userID, err)
	}
	defer rows.Close()

	accounts := []models.BankAccount{}
	for rows.Next() {
		var m models.BankAccount
		err := rows.Scan(
			&m.AccountID,
			&m.UserID,
			&m.HolderName,
			&m.BankName,
			&m.Branch,
			&m.AccountNumber,
			&m.IFSC,
			&m.Mobile,
			&m.UPIID,
			&m.Balance,
			&m.PINHash,
			&m.PINEnabled,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows for user %s: %w", userID, err)
	}

	return mapping.ToDomainBankAccountSlice(accounts), nil
}

// SearchAccounts retrieves accounts matching a payee search query: holder name
// substring (case-insensitive), mobile prefix, or payment address prefix.
func (r *PgxAccountRepository) SearchAccounts(ctx context.Context, query string, limit int) ([]domain.BankAccount, error) {
	sql := `
		SELECT ` + accountColumns + `
		FROM bank_accounts
		WHERE holder_name ILIKE '%' || $1 || '%'
		   OR mobile LIKE $1 || '%'
		   OR upi_id ILIKE $1 || '%'
		ORDER BY holder_name
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, sql, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search accounts: %w", err)
	}
	defer rows.Close()

	accounts := []models.BankAccount{}
	for rows.Next() {
		var m models.BankAccount
		err := rows.Scan(
			&m.AccountID,
			&m.UserID,
			&m.HolderName,
			&m.BankName,
			&m.Branch,
			&m.AccountNumber,
			&m.IFSC,
			&m.Mobile,
			&m.UPIID,
			&m.Balance,
			&m.PINHash,
			&m.PINEnabled,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account search rows: %w", err)
	}

	return mapping.ToDomainBankAccountSlice(accounts), nil
}

// UpdatePIN stores a new PIN hash and marks the PIN enabled.
func (r *PgxAccountRepository) UpdatePIN(ctx context.Context, accountID string, pinHash string, userID string, now time.Time) error {
	query := `
		UPDATE bank_accounts
		SET pin_hash = $2, pin_enabled = TRUE, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`
	ct, err := r.Pool.Exec(ctx, query, accountID, pinHash, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update PIN for account %s: %w", accountID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AddToBalance atomically credits the account and returns the new balance.
// This is the demo top-up path; no ledger entry is written.
func (r *PgxAccountRepository) AddToBalance(ctx context.Context, accountID string, amount decimal.Decimal, userID string, now time.Time) (decimal.Decimal, error) {
	query := `
		UPDATE bank_accounts
		SET balance = balance + $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1
		RETURNING balance;
	`
	var newBalance decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, accountID, amount, now, userID).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to top up account %s: %w", accountID, err)
	}
	return newBalance, nil
}

// DeleteAccount removes an account row. Ledger entries referencing it survive,
// so history keeps its audit trail after an unlink.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	query := `DELETE FROM bank_accounts WHERE account_id = $1;`
	ct, err := r.Pool.Exec(ctx, query, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAccountsByIDsForUpdate retrieves accounts by IDs and locks the rows for
// update. Rows lock in ascending account_id order so concurrent transfers
// touching the same pair cannot deadlock. Must be called within a transaction.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.BankAccount, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.BankAccount{}, nil
	}

	query := `
		SELECT ` + accountColumns + `
		FROM bank_accounts
		WHERE account_id = ANY($1)
		ORDER BY account_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for update: %w", err)
	}
	defer rows.Close()

	accountsMap := make(map[string]domain.BankAccount)
	for rows.Next() {
		var m models.BankAccount
		err := rows.Scan(
			&m.AccountID,
			&m.UserID,
			&m.HolderName,
			&m.BankName,
			&m.Branch,
			&m.AccountNumber,
			&m.IFSC,
			&m.Mobile,
			&m.UPIID,
			&m.Balance,
			&m.PINHash,
			&m.PINEnabled,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked account row: %w", err)
		}
		accountsMap[m.AccountID] = mapping.ToDomainBankAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked account rows: %w", err)
	}

	if len(accountsMap) != len(accountIDs) {
		for _, id := range accountIDs {
			if _, ok := accountsMap[id]; !ok {
				return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
			}
		}
	}

	return accountsMap, nil
}

// UpdateAccountBalancesInTx applies signed balance deltas within a transaction.
// Callers must hold FOR UPDATE locks on every touched row.
func (r *PgxAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	if len(balanceChanges) == 0 {
		return nil
	}

	query := `
		UPDATE bank_accounts
		SET balance = balance + $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`

	batch := &pgx.Batch{}
	accountIDs := make([]string, 0, len(balanceChanges))
	for accountID, delta := range balanceChanges {
		if !delta.IsZero() {
			batch.Queue(query, accountID, delta, now, userID)
			accountIDs = append(accountIDs, accountID)
		}
	}
	if batch.Len() == 0 {
		return nil
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		ct, err := br.Exec()
		if err != nil {
			if batchErr == nil {
				batchErr = fmt.Errorf("failed to update balance for account %s: %w", accountIDs[i], err)
			}
		} else if ct.RowsAffected() == 0 && batchErr == nil {
			batchErr = fmt.Errorf("%w: account %s not found during balance update", apperrors.ErrNotFound, accountIDs[i])
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close balance update batch: %w", err)
	}

	return batchErr
}
