package services

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gapy-app/gapy_backend/internal/apperrors"
	"github.com/gapy-app/gapy_backend/internal/core/domain"
	portsrepo "github.com/gapy-app/gapy_backend/internal/core/ports/repositories"
	portssvc "github.com/gapy-app/gapy_backend/internal/core/ports/services"
	"github.com/gapy-app/gapy_backend/internal/dto"
	"github.com/gapy-app/gapy_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// billService manages the biller catalog and bill payment orders. The
// provider lookup is mocked: bill details derive deterministically from the
// consumer number so repeated fetches agree.
type billService struct {
	catalogRepo portsrepo.CatalogRepositoryFacade
	billRepo    portsrepo.BillRepositoryFacade
	ledgerSvc   portssvc.LedgerSvcFacade
}

// NewBillService creates a new BillService.
func NewBillService(catalogRepo portsrepo.CatalogRepositoryFacade, billRepo portsrepo.BillRepositoryFacade, ledgerSvc portssvc.LedgerSvcFacade) portssvc.BillSvcFacade {
	return &billService{
		catalogRepo: catalogRepo,
		billRepo:    billRepo,
		ledgerSvc:   ledgerSvc,
	}
}

var _ portssvc.BillSvcFacade = (*billService)(nil)

// ListBillers retrieves billers, optionally filtered by category.
func (s *billService) ListBillers(ctx context.Context, category string) ([]domain.Biller, error) {
	return s.catalogRepo.ListBillers(ctx, category)
}

// mockBillAmount derives a stable bill amount in the 200.00-1499.00 range
// from the consumer number.
func mockBillAmount(consumerNumber string) decimal.Decimal {
	h := fnv.New32a()
	h.Write([]byte(consumerNumber))
	rupees := 200 + int64(h.Sum32()%1300)
	return decimal.NewFromInt(rupees)
}

// mockConsumerName derives a stable consumer display name.
func mockConsumerName(consumerNumber string) string {
	tail := consumerNumber
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	return "Consumer " + tail
}

// FetchBill looks up the outstanding bill for a consumer at a biller.
func (s *billService) FetchBill(ctx context.Context, req dto.FetchBillRequest) (*domain.FetchedBill, error) {
	biller, err := s.catalogRepo.FindBillerByID(ctx, req.BillerID)
	if err != nil {
		return nil, err
	}

	now := timeNow()
	return &domain.FetchedBill{
		BillerCode:     biller.Code,
		BillerName:     biller.Name,
		ConsumerNumber: req.ConsumerNumber,
		NameOnBill:     mockConsumerName(req.ConsumerNumber),
		Period:         now.Format("Jan 2006"),
		Amount:         mockBillAmount(req.ConsumerNumber),
		DueDate:        now.AddDate(0, 0, 10),
	}, nil
}

// PayBill debits the user's account for the bill amount and settles the order
// with the mock provider.
func (s *billService) PayBill(ctx context.Context, userID string, req dto.PayBillRequest) (*domain.BillPayment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	biller, err := s.catalogRepo.FindBillerByID(ctx, req.BillerID)
	if err != nil {
		return nil, err
	}

	amount, err := parsePositiveAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dueDate := now.AddDate(0, 0, 10)
	order := domain.BillPayment{
		BillPaymentID:  uuid.NewString(),
		UserID:         userID,
		BillerID:       biller.BillerID,
		ConsumerNumber: req.ConsumerNumber,
		NameOnBill:     mockConsumerName(req.ConsumerNumber),
		Period:         now.Format("Jan 2006"),
		Amount:         amount,
		DueDate:        &dueDate,
		Status:         domain.BillPending,
		CreatedAt:      now,
	}
	if err := s.billRepo.SaveBillPayment(ctx, order); err != nil {
		return nil, err
	}

	label := biller.Name + " bill " + req.ConsumerNumber
	reference := fmt.Sprintf("%s bill for %s", biller.Name, order.Period)
	_, _, err = s.ledgerSvc.ExternalDebit(ctx, userID, req.AccountID, amount, req.PIN, label, reference)
	if err != nil {
		if updErr := s.billRepo.UpdateBillPaymentOutcome(ctx, order.BillPaymentID, domain.BillFailed, ""); updErr != nil {
			logger.Error("Failed to mark bill payment failed", slog.String("bill_payment_id", order.BillPaymentID), slog.String("error", updErr.Error()))
		}
		if errors.Is(err, apperrors.ErrInsufficientFunds) {
			order.Status = domain.BillFailed
			return &order, err
		}
		return nil, err
	}

	providerTxn := newProviderTxnID()
	if err := s.billRepo.UpdateBillPaymentOutcome(ctx, order.BillPaymentID, domain.BillSuccess, providerTxn); err != nil {
		return nil, err
	}

	paidOn := time.Now()
	order.Status = domain.BillSuccess
	order.ProviderTxn = providerTxn
	order.PaidOn = &paidOn

	logger.Info("Bill payment completed",
		slog.String("bill_payment_id", order.BillPaymentID),
		slog.String("provider_txn", providerTxn),
	)
	return &order, nil
}

// ListBillPayments retrieves the user's bill payment history, newest first.
func (s *billService) ListBillPayments(ctx context.Context, userID string, limit int) ([]domain.BillPayment, error) {
	return s.billRepo.ListBillPaymentsByUser(ctx, userID, limit)
}
