package repositories

import (
	"context"

	"github.com/gapy-app/gapy_backend/internal/core/domain"
)

// PayeeReader defines read operations for saved payees
type PayeeReader interface {
	// ListSavedPayees retrieves a user's payee list, newest first.
	ListSavedPayees(ctx context.Context, ownerUserID string) ([]domain.SavedPayee, error)

	// FindSavedPayee retrieves a payee entry by owner and target account.
	FindSavedPayee(ctx context.Context, ownerUserID, accountID string) (*domain.SavedPayee, error)
}

// PayeeWriter defines write operations for saved payees
type PayeeWriter interface {
	// SaveSavedPayee persists a new payee entry.
	SaveSavedPayee(ctx context.Context, payee domain.SavedPayee) error

	// DeleteSavedPayee removes a payee entry owned by the user.
	DeleteSavedPayee(ctx context.Context, ownerUserID, savedPayeeID string) error
}

// PayeeRepositoryFacade combines all payee repository interfaces
type PayeeRepositoryFacade interface {
	PayeeReader
	PayeeWriter
}
