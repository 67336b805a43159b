package services

import (
	"context"

	"github.com/gapy-app/gapy_backend/internal/core/domain"
	"github.com/gapy-app/gapy_backend/internal/dto"
)

// PayeeSvcFacade manages a user's saved payee list.
type PayeeSvcFacade interface {
	// AddPayee resolves the target account and saves it to the user's list.
	AddPayee(ctx context.Context, userID string, req dto.AddPayeeRequest) (*domain.SavedPayee, error)

	// ListPayees retrieves the user's saved payees, newest first.
	ListPayees(ctx context.Context, userID string) ([]domain.SavedPayee, error)

	// RemovePayee deletes a payee entry owned by the user.
	RemovePayee(ctx context.Context, userID, savedPayeeID string) error

	// SearchPayees finds transfer targets by holder name, mobile or payment
	// address, excluding the user's own accounts.
	SearchPayees(ctx context.Context, userID, query string, limit int) ([]domain.BankAccount, error)
}
