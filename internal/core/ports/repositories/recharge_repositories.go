package repositories

import (
	"context"

	"github.com/gapy-app/gapy_backend/internal/core/domain"
)

// RechargeReader defines read operations for recharge orders
type RechargeReader interface {
	// FindRechargeByID retrieves a recharge order.
	FindRechargeByID(ctx context.Context, rechargeID string) (*domain.MobileRecharge, error)

	// ListRechargesByUser retrieves a user's recharge orders, newest first.
	ListRechargesByUser(ctx context.Context, userID string, limit int) ([]domain.MobileRecharge, error)
}

// RechargeWriter defines write operations for recharge orders
type RechargeWriter interface {
	// SaveRecharge persists a new recharge order.
	SaveRecharge(ctx context.Context, recharge domain.MobileRecharge) error

	// UpdateRechargeOutcome moves an order out of PENDING, recording the
	// provider transaction reference when the provider accepted it.
	UpdateRechargeOutcome(ctx context.Context, rechargeID string, status domain.RechargeStatus, providerTxn string) error
}

// RechargeRepositoryFacade combines all recharge repository interfaces
type RechargeRepositoryFacade interface {
	RechargeReader
	RechargeWriter
}
