package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gapy-app/gapy_backend/internal/apperrors"
	"github.com/gapy-app/gapy_backend/internal/core/domain"
	portsrepo "github.com/gapy-app/gapy_backend/internal/core/ports/repositories"
	"github.com/gapy-app/gapy_backend/internal/models"
	"github.com/gapy-app/gapy_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPayeeRepository struct {
	BaseRepository
}

// newPgxPayeeRepository creates a new repository for saved payee data.
func newPgxPayeeRepository(pool *pgxpool.Pool) portsrepo.PayeeRepositoryFacade {
	return &PgxPayeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PayeeRepositoryFacade = (*PgxPayeeRepository)(nil)

// payeeSelect joins the payee row with its target account's display columns.
const payeeSelect = `
	SELECT p.saved_payee_id, p.owner_user_id, p.account_id, p.added_at,
	       a.holder_name, a.bank_name, a.upi_id, a.mobile
	FROM saved_payees p
	JOIN bank_accounts a ON a.account_id = p.account_id
`

func scanPayeeRow(row pgx.Row) (*models.SavedPayee, error) {
	var m models.SavedPayee
	err := row.Scan(
		&m.SavedPayeeID,
		&m.OwnerUserID,
		&m.AccountID,
		&m.AddedAt,
		&m.HolderName,
		&m.BankName,
		&m.UPIID,
		&m.Mobile,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan saved payee row: %w", err)
	}
	return &m, nil
}

// ListSavedPayees retrieves a user's payee list, newest first.
func (r *PgxPayeeRepository) ListSavedPayees(ctx context.Context, ownerUserID string) ([]domain.SavedPayee, error) {
	query := payeeSelect + ` WHERE p.owner_user_id = $1 ORDER BY p.added_at DESC;`

	rows, err := r.Pool.Query(ctx, query, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved payees for user %s: %w", ownerUserID, err)
	}
	defer rows.Close()

	payees := []models.SavedPayee{}
	for rows.Next() {
		var m models.SavedPayee
		err := rows.Scan(
			&m.SavedPayeeID,
			&m.OwnerUserID,
			&m.AccountID,
			&m.AddedAt,
			&m.HolderName,
			&m.BankName,
			&m.UPIID,
			&m.Mobile,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan saved payee row: %w", err)
		}
		payees = append(payees, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating saved payee rows: %w", err)
	}

	return mapping.ToDomainSavedPayeeSlice(payees), nil
}

// FindSavedPayee retrieves a payee entry by owner and target account.
func (r *PgxPayeeRepository) FindSavedPayee(ctx context.Context, ownerUserID, accountID string) (*domain.SavedPayee, error) {
	query := payeeSelect + ` WHERE p.owner_user_id = $1 AND p.account_id = $2;`

	m, err := scanPayeeRow(r.Pool.QueryRow(ctx, query, ownerUserID, accountID))
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainSavedPayee(*m)
	return &d, nil
}

// SaveSavedPayee persists a new payee entry.
func (r *PgxPayeeRepository) SaveSavedPayee(ctx context.Context, payee domain.SavedPayee) error {
	query := `
		INSERT INTO saved_payees (saved_payee_id, owner_user_id, account_id, added_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, payee.SavedPayeeID, payee.OwnerUserID, payee.AccountID, payee.AddedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: payee already saved", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save payee %s: %w", payee.SavedPayeeID, err)
	}
	return nil
}

// DeleteSavedPayee removes a payee entry owned by the user.
func (r *PgxPayeeRepository) DeleteSavedPayee(ctx context.Context, ownerUserID, savedPayeeID string) error {
	query := `DELETE FROM saved_payees WHERE owner_user_id = $1 AND saved_payee_id = $2;`
	ct, err := r.Pool.Exec(ctx, query, ownerUserID, savedPayeeID)
	if err != nil {
		return fmt.Errorf("failed to delete payee %s: %w", savedPayeeID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
