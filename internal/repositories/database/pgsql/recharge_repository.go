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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRechargeRepository struct {
	BaseRepository
}

// newPgxRechargeRepository creates a new repository for recharge orders.
func newPgxRechargeRepository(pool *pgxpool.Pool) portsrepo.RechargeRepositoryFacade {
	return &PgxRechargeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RechargeRepositoryFacade = (*PgxRechargeRepository)(nil)

const rechargeColumns = `recharge_id, user_id, mobile, operator_id, circle, plan_id, amount, status, provider_txn, created_at`

func scanRechargeRow(row pgx.Row) (*models.MobileRecharge, error) {
	var m models.MobileRecharge
	err := row.Scan(
		&m.RechargeID,
		&m.UserID,
		&m.Mobile,
		&m.OperatorID,
		&m.Circle,
		&m.PlanID,
		&m.Amount,
		&m.Status,
		&m.ProviderTxn,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan recharge row: %w", err)
	}
	return &m, nil
}

// SaveRecharge persists a new recharge order.
func (r *PgxRechargeRepository) SaveRecharge(ctx context.Context, recharge domain.MobileRecharge) error {
	m := mapping.ToModelMobileRecharge(recharge)

	query := `
		INSERT INTO recharges (` + rechargeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RechargeID,
		m.UserID,
		m.Mobile,
		m.OperatorID,
		m.Circle,
		m.PlanID,
		m.Amount,
		m.Status,
		m.ProviderTxn,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save recharge %s: %w", m.RechargeID, err)
	}
	return nil
}

// UpdateRechargeOutcome moves an order out of PENDING.
func (r *PgxRechargeRepository) UpdateRechargeOutcome(ctx context.Context, rechargeID string, status domain.RechargeStatus, providerTxn string) error {
	query := `
		UPDATE recharges
		SET status = $2, provider_txn = $3
		WHERE recharge_id = $1;
	`
	ct, err := r.Pool.Exec(ctx, query, rechargeID, string(status), providerTxn)
	if err != nil {
		return fmt.Errorf("failed to update recharge %s: %w", rechargeID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindRechargeByID retrieves a recharge order.
func (r *PgxRechargeRepository) FindRechargeByID(ctx context.Context, rechargeID string) (*domain.MobileRecharge, error) {
	query := `SELECT ` + rechargeColumns + ` FROM recharges WHERE recharge_id = $1;`

	m, err := scanRechargeRow(r.Pool.QueryRow(ctx, query, rechargeID))
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainMobileRecharge(*m)
	return &d, nil
}

// ListRechargesByUser retrieves a user's recharge orders, newest first.
func (r *PgxRechargeRepository) ListRechargesByUser(ctx context.Context, userID string, limit int) ([]domain.MobileRecharge, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT ` + rechargeColumns + ` FROM recharges WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2;`

	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recharges for user %s: %w", userID, err)
	}
	defer rows.Close()

	recharges := []models.MobileRecharge{}
	for rows.Next() {
		var m models.MobileRecharge
		err := rows.Scan(
			&m.RechargeID,
			&m.UserID,
			&m.Mobile,
			&m.OperatorID,
			&m.Circle,
			&m.PlanID,
			&m.Amount,
			&m.Status,
			&m.ProviderTxn,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recharge row: %w", err)
		}
		recharges = append(recharges, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recharge rows: %w", err)
	}

	return mapping.ToDomainMobileRechargeSlice(recharges), nil
}
