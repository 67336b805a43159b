package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gapy-app/gapy_backend/internal/apperrors"
	"github.com/gapy-app/gapy_backend/internal/core/domain"
	portsrepo "github.com/gapy-app/gapy_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCatalogRepository reads the operator, plan and biller catalogs. The
// catalog is seeded by migrations; nothing writes to it at runtime, so the
// rows scan straight into domain types.
type PgxCatalogRepository struct {
	BaseRepository
}

// newPgxCatalogRepository creates a new repository for catalog data.
func newPgxCatalogRepository(pool *pgxpool.Pool) portsrepo.CatalogRepositoryFacade {
	return &PgxCatalogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CatalogRepositoryFacade = (*PgxCatalogRepository)(nil)

// ListOperators retrieves all mobile operators.
func (r *PgxCatalogRepository) ListOperators(ctx context.Context) ([]domain.Operator, error) {
	query := `SELECT operator_id, code, name, logo_url FROM operators ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query operators: %w", err)
	}
	defer rows.Close()

	operators := []domain.Operator{}
	for rows.Next() {
		var op domain.Operator
		if err := rows.Scan(&op.OperatorID, &op.Code, &op.Name, &op.LogoURL); err != nil {
			return nil, fmt.Errorf("failed to scan operator row: %w", err)
		}
		operators = append(operators, op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating operator rows: %w", err)
	}
	return operators, nil
}

// FindOperatorByID retrieves a single operator.
func (r *PgxCatalogRepository) FindOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error) {
	query := `SELECT operator_id, code, name, logo_url FROM operators WHERE operator_id = $1;`

	var op domain.Operator
	err := r.Pool.QueryRow(ctx, query, operatorID).Scan(&op.OperatorID, &op.Code, &op.Name, &op.LogoURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find operator %s: %w", operatorID, err)
	}
	return &op, nil
}

// ListPlansByOperator retrieves the plans offered by an operator.
func (r *PgxCatalogRepository) ListPlansByOperator(ctx context.Context, operatorID string) ([]domain.Plan, error) {
	query := `
		SELECT plan_id, operator_id, category, plan_code, amount, title, validity, description
		FROM plans
		WHERE operator_id = $1
		ORDER BY amount;
	`
	rows, err := r.Pool.Query(ctx, query, operatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query plans for operator %s: %w", operatorID, err)
	}
	defer rows.Close()

	plans := []domain.Plan{}
	for rows.Next() {
		var p domain.Plan
		if err := rows.Scan(&p.PlanID, &p.OperatorID, &p.Category, &p.PlanCode, &p.Amount, &p.Title, &p.Validity, &p.Description); err != nil {
			return nil, fmt.Errorf("failed to scan plan row: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plan rows: %w", err)
	}
	return plans, nil
}

// FindPlanByID retrieves a single plan.
func (r *PgxCatalogRepository) FindPlanByID(ctx context.Context, planID string) (*domain.Plan, error) {
	query := `
		SELECT plan_id, operator_id, category, plan_code, amount, title, validity, description
		FROM plans
		WHERE plan_id = $1;
	`
	var p domain.Plan
	err := r.Pool.QueryRow(ctx, query, planID).Scan(&p.PlanID, &p.OperatorID, &p.Category, &p.PlanCode, &p.Amount, &p.Title, &p.Validity, &p.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find plan %s: %w", planID, err)
	}
	return &p, nil
}

// ListBillers retrieves billers, optionally filtered by category.
func (r *PgxCatalogRepository) ListBillers(ctx context.Context, category string) ([]domain.Biller, error) {
	query := `SELECT biller_id, code, name, category, logo_url, circle FROM billers`
	args := []interface{}{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query billers: %w", err)
	}
	defer rows.Close()

	billers := []domain.Biller{}
	for rows.Next() {
		var b domain.Biller
		if err := rows.Scan(&b.BillerID, &b.Code, &b.Name, &b.Category, &b.LogoURL, &b.Circle); err != nil {
			return nil, fmt.Errorf("failed to scan biller row: %w", err)
		}
		billers = append(billers, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating biller rows: %w", err)
	}
	return billers, nil
}

// FindBillerByID retrieves a single biller.
func (r *PgxCatalogRepository) FindBillerByID(ctx context.Context, billerID string) (*domain.Biller, error) {
	query := `SELECT biller_id, code, name, category, logo_url, circle FROM billers WHERE biller_id = $1;`

	var b domain.Biller
	err := r.Pool.QueryRow(ctx, query, billerID).Scan(&b.BillerID, &b.Code, &b.Name, &b.Category, &b.LogoURL, &b.Circle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find biller %s: %w", billerID, err)
	}
	return &b, nil
}
