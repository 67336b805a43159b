package repositories

import (
	"context"

	"github.com/gapy-app/gapy_backend/internal/core/domain"
)

// CatalogReader defines read operations for the recharge and bill catalogs.
// The catalog is seeded by migrations and read-only at runtime.
type CatalogReader interface {
	// ListOperators retrieves all mobile operators.
	ListOperators(ctx context.Context) ([]domain.Operator, error)

	// FindOperatorByID retrieves a single operator.
	FindOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error)

	// ListPlansByOperator retrieves the plans offered by an operator.
	ListPlansByOperator(ctx context.Context, operatorID string) ([]domain.Plan, error)

	// FindPlanByID retrieves a single plan.
	FindPlanByID(ctx context.Context, planID string) (*domain.Plan, error)

	// ListBillers retrieves billers, optionally filtered by category.
	ListBillers(ctx context.Context, category string) ([]domain.Biller, error)

	// FindBillerByID retrieves a single biller.
	FindBillerByID(ctx context.Context, billerID string) (*domain.Biller, error)
}

// CatalogRepositoryFacade is the full catalog repository interface.
type CatalogRepositoryFacade interface {
	CatalogReader
}
