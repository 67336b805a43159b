package repositories

import (
	"context"

	"github.com/gapy-app/gapy_backend/internal/core/domain"
)

// BillPaymentReader defines read operations for bill payment orders
type BillPaymentReader interface {
	// FindBillPaymentByID retrieves a bill payment order.
	FindBillPaymentByID(ctx context.Context, billPaymentID string) (*domain.BillPayment, error)

	// ListBillPaymentsByUser retrieves a user's bill payments, newest first.
	ListBillPaymentsByUser(ctx context.Context, userID string, limit int) ([]domain.BillPayment, error)
}

// BillPaymentWriter defines write operations for bill payment orders
type BillPaymentWriter interface {
	// SaveBillPayment persists a new bill payment order.
	SaveBillPayment(ctx context.Context, payment domain.BillPayment) error

	// UpdateBillPaymentOutcome moves an order out of PENDING, recording the
	// provider transaction reference and paid-on time on success.
	UpdateBillPaymentOutcome(ctx context.Context, billPaymentID string, status domain.BillPaymentStatus, providerTxn string) error
}

// BillRepositoryFacade combines all bill payment repository interfaces
type BillRepositoryFacade interface {
	BillPaymentReader
	BillPaymentWriter
}
