package services

import (
	"context"

	"github.com/gapy-app/gapy_backend/internal/core/domain"
	"github.com/gapy-app/gapy_backend/internal/dto"
)

// BillSvcFacade manages the biller catalog and bill payment orders.
type BillSvcFacade interface {
	// ListBillers retrieves billers, optionally filtered by category.
	ListBillers(ctx context.Context, category string) ([]domain.Biller, error)

	// FetchBill looks up the outstanding bill for a consumer at a biller.
	FetchBill(ctx context.Context, req dto.FetchBillRequest) (*domain.FetchedBill, error)

	// PayBill debits the user's account for the bill amount and settles the
	// order with the mock provider.
	PayBill(ctx context.Context, userID string, req dto.PayBillRequest) (*domain.BillPayment, error)

	// ListBillPayments retrieves the user's bill payment history, newest first.
	ListBillPayments(ctx context.Context, userID string, limit int) ([]domain.BillPayment, error)
}
