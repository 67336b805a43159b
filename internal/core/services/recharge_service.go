package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gapy-app/gapy_backend/internal/apperrors"
	"github.com/gapy-app/gapy_backend/internal/core/domain"
	portsrepo "github.com/gapy-app/gapy_backend/internal/core/ports/repositories"
	portssvc "github.com/gapy-app/gapy_backend/internal/core/ports/services"
	"github.com/gapy-app/gapy_backend/internal/dto"
	"github.com/gapy-app/gapy_backend/internal/middleware"
	"github.com/gapy-app/gapy_backend/internal/utils"
)

// rechargeService manages the recharge catalog and recharge orders.
//
// An order starts PENDING, the account is debited through the ledger, and
// only then does the mock provider settle the order. A crash between debit
// and settlement leaves a PENDING order with a completed debit, which mirrors
// how a real provider integration degrades.
type rechargeService struct {
	catalogRepo  portsrepo.CatalogRepositoryFacade
	rechargeRepo portsrepo.RechargeRepositoryFacade
	ledgerSvc    portssvc.LedgerSvcFacade
}

// NewRechargeService creates a new RechargeService.
func NewRechargeService(catalogRepo portsrepo.CatalogRepositoryFacade, rechargeRepo portsrepo.RechargeRepositoryFacade, ledgerSvc portssvc.LedgerSvcFacade) portssvc.RechargeSvcFacade {
	return &rechargeService{
		catalogRepo:  catalogRepo,
		rechargeRepo: rechargeRepo,
		ledgerSvc:    ledgerSvc,
	}
}

var _ portssvc.RechargeSvcFacade = (*rechargeService)(nil)

// newProviderTxnID mints a mock provider reference, e.g. "MOCK-3fa91b2c".
func newProviderTxnID() string {
	suffix, err := utils.GenerateSecureRandomString(4)
	if err != nil {
		suffix = strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	}
	return "MOCK-" + suffix
}

// ListOperators retrieves the operator catalog.
func (s *rechargeService) ListOperators(ctx context.Context) ([]domain.Operator, error) {
	return s.catalogRepo.ListOperators(ctx)
}

// ListPlans retrieves the plans offered by an operator.
func (s *rechargeService) ListPlans(ctx context.Context, operatorID string) ([]domain.Plan, error) {
	if _, err := s.catalogRepo.FindOperatorByID(ctx, operatorID); err != nil {
		return nil, err
	}
	return s.catalogRepo.ListPlansByOperator(ctx, operatorID)
}

// Recharge debits the user's account for the plan amount and settles the
// order with the mock provider.
func (s *rechargeService) Recharge(ctx context.Context, userID string, req dto.RechargeRequest) (*domain.MobileRecharge, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	operator, err := s.catalogRepo.FindOperatorByID(ctx, req.OperatorID)
	if err != nil {
		return nil, err
	}
	plan, err := s.catalogRepo.FindPlanByID(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}
	if plan.OperatorID != operator.OperatorID {
		return nil, fmt.Errorf("%w: plan does not belong to operator", apperrors.ErrValidation)
	}

	planID := plan.PlanID
	order := domain.MobileRecharge{
		RechargeID: uuid.NewString(),
		UserID:     userID,
		Mobile:     req.Mobile,
		OperatorID: operator.OperatorID,
		Circle:     req.Circle,
		PlanID:     &planID,
		Amount:     plan.Amount,
		Status:     domain.RechargePending,
		CreatedAt:  time.Now(),
	}
	if err := s.rechargeRepo.SaveRecharge(ctx, order); err != nil {
		return nil, err
	}

	label := operator.Name + " recharge " + req.Mobile
	reference := "Recharge " + plan.Title
	_, _, err = s.ledgerSvc.ExternalDebit(ctx, userID, req.AccountID, plan.Amount, req.PIN, label, reference)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientFunds) {
			if updErr := s.rechargeRepo.UpdateRechargeOutcome(ctx, order.RechargeID, domain.RechargeFailed, ""); updErr != nil {
				logger.Error("Failed to mark recharge failed", slog.String("recharge_id", order.RechargeID), slog.String("error", updErr.Error()))
			}
			order.Status = domain.RechargeFailed
			return &order, err
		}
		// Precondition failures leave the order PENDING with no debit;
		// mark it failed so it does not linger.
		if updErr := s.rechargeRepo.UpdateRechargeOutcome(ctx, order.RechargeID, domain.RechargeFailed, ""); updErr != nil {
			logger.Error("Failed to mark recharge failed", slog.String("recharge_id", order.RechargeID), slog.String("error", updErr.Error()))
		}
		return nil, err
	}

	providerTxn := newProviderTxnID()
	if err := s.rechargeRepo.UpdateRechargeOutcome(ctx, order.RechargeID, domain.RechargeSuccess, providerTxn); err != nil {
		return nil, err
	}

	order.Status = domain.RechargeSuccess
	order.ProviderTxn = providerTxn

	logger.Info("Recharge completed",
		slog.String("recharge_id", order.RechargeID),
		slog.String("provider_txn", providerTxn),
	)
	return &order, nil
}

// ListRecharges retrieves the user's recharge history, newest first.
func (s *rechargeService) ListRecharges(ctx context.Context, userID string, limit int) ([]domain.MobileRecharge, error) {
	return s.rechargeRepo.ListRechargesByUser(ctx, userID, limit)
}
