package services

import (
	"context"

	"github.com/gapy-app/gapy_backend/internal/core/domain"
	"github.com/gapy-app/gapy_backend/internal/dto"
)

// RechargeSvcFacade manages the recharge catalog and recharge orders.
type RechargeSvcFacade interface {
	// ListOperators retrieves the operator catalog.
	ListOperators(ctx context.Context) ([]domain.Operator, error)

	// ListPlans retrieves the plans offered by an operator.
	ListPlans(ctx context.Context, operatorID string) ([]domain.Plan, error)

	// Recharge debits the user's account for the plan amount and settles the
	// order with the mock provider.
	Recharge(ctx context.Context, userID string, req dto.RechargeRequest) (*domain.MobileRecharge, error)

	// ListRecharges retrieves the user's recharge history, newest first.
	ListRecharges(ctx context.Context, userID string, limit int) ([]domain.MobileRecharge, error)
}
