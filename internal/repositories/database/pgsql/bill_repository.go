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

type PgxBillRepository struct {
	BaseRepository
}

// newPgxBillRepository creates a new repository for bill payment orders.
func newPgxBillRepository(pool *pgxpool.Pool) portsrepo.BillRepositoryFacade {
	return &PgxBillRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BillRepositoryFacade = (*PgxBillRepository)(nil)

const billPaymentColumns = `bill_payment_id, user_id, biller_id, consumer_number, name_on_bill, period, amount, due_date, status, provider_txn, paid_on, reminder_date, created_at`

func scanBillPaymentRow(row pgx.Row) (*models.BillPayment, error) {
	var m models.BillPayment
	err := row.Scan(
		&m.BillPaymentID,
		&m.UserID,
		&m.BillerID,
		&m.ConsumerNumber,
		&m.NameOnBill,
		&m.Period,
		&m.Amount,
		&m.DueDate,
		&m.Status,
		&m.ProviderTxn,
		&m.PaidOn,
		&m.ReminderDate,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan bill payment row: %w", err)
	}
	return &m, nil
}

// SaveBillPayment persists a new bill payment order.
func (r *PgxBillRepository) SaveBillPayment(ctx context.Context, payment domain.BillPayment) error {
	m := mapping.ToModelBillPayment(payment)

	query := `
		INSERT INTO bill_payments (` + billPaymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BillPaymentID,
		m.UserID,
		m.BillerID,
		m.ConsumerNumber,
		m.NameOnBill,
		m.Period,
		m.Amount,
		m.DueDate,
		m.Status,
		m.ProviderTxn,
		m.PaidOn,
		m.ReminderDate,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save bill payment %s: %w", m.BillPaymentID, err)
	}
	return nil
}

// UpdateBillPaymentOutcome moves an order out of PENDING. On success the
// paid-on time is set to the database clock.
func (r *PgxBillRepository) UpdateBillPaymentOutcome(ctx context.Context, billPaymentID string, status domain.BillPaymentStatus, providerTxn string) error {
	query := `
		UPDATE bill_payments
		SET status = $2, provider_txn = $3,
		    paid_on = CASE WHEN $2 = 'SUCCESS' THEN NOW() ELSE paid_on END
		WHERE bill_payment_id = $1;
	`
	ct, err := r.Pool.Exec(ctx, query, billPaymentID, string(status), providerTxn)
	if err != nil {
		return fmt.Errorf("failed to update bill payment %s: %w", billPaymentID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindBillPaymentByID retrieves a bill payment order.
func (r *PgxBillRepository) FindBillPaymentByID(ctx context.Context, billPaymentID string) (*domain.BillPayment, error) {
	query := `SELECT ` + billPaymentColumns + ` FROM bill_payments WHERE bill_payment_id = $1;`

	m, err := scanBillPaymentRow(r.Pool.QueryRow(ctx, query, billPaymentID))
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainBillPayment(*m)
	return &d, nil
}

// ListBillPaymentsByUser retrieves a user's bill payments, newest first.
func (r *PgxBillRepository) ListBillPaymentsByUser(ctx context.Context, userID string, limit int) ([]domain.BillPayment, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT ` + billPaymentColumns + ` FROM bill_payments WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2;`

	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query bill payments for user %s: %w", userID, err)
	}
	defer rows.Close()

	payments := []models.BillPayment{}
	for rows.Next() {
		var m models.BillPayment
		err := rows.Scan(
			&m.BillPaymentID,
			&m.UserID,
			&m.BillerID,
			&m.ConsumerNumber,
			&m.NameOnBill,
			&m.Period,
			&m.Amount,
			&m.DueDate,
			&m.Status,
			&m.ProviderTxn,
			&m.PaidOn,
			&m.ReminderDate,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill payment row: %w", err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bill payment rows: %w", err)
	}

	return mapping.ToDomainBillPaymentSlice(payments), nil
}
