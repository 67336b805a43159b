package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gapy-app/gapy_backend/internal/apperrors"
	"github.com/gapy-app/gapy_backend/internal/core/domain"
	portsrepo "github.com/gapy-app/gapy_backend/internal/core/ports/repositories"
	portssvc "github.com/gapy-app/gapy_backend/internal/core/ports/services"
	"github.com/gapy-app/gapy_backend/internal/dto"
)

var ErrOwnAccountPayee = errors.New("cannot save your own account as a payee")

// payeeService manages a user's saved payee list.
type payeeService struct {
	payeeRepo   portsrepo.PayeeRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewPayeeService creates a new PayeeService.
func NewPayeeService(payeeRepo portsrepo.PayeeRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.PayeeSvcFacade {
	return &payeeService{payeeRepo: payeeRepo, accountRepo: accountRepo}
}

var _ portssvc.PayeeSvcFacade = (*payeeService)(nil)

// AddPayee resolves the target account and saves it to the user's list.
func (s *payeeService) AddPayee(ctx context.Context, userID string, req dto.AddPayeeRequest) (*domain.SavedPayee, error) {
	var target *domain.BankAccount
	var err error
	switch {
	case req.UPIID != "":
		target, err = s.accountRepo.FindAccountByUPIID(ctx, req.UPIID)
	case req.AccountID != "":
		target, err = s.accountRepo.FindAccountByID(ctx, req.AccountID)
	default:
		return nil, fmt.Errorf("%w: a payment address or account id is required", apperrors.ErrValidation)
	}
	if err != nil {
		return nil, err
	}

	if target.UserID == userID {
		return nil, ErrOwnAccountPayee
	}

	if _, err := s.payeeRepo.FindSavedPayee(ctx, userID, target.AccountID); err == nil {
		return nil, fmt.Errorf("%w: payee already saved", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	payee := domain.SavedPayee{
		SavedPayeeID: uuid.NewString(),
		OwnerUserID:  userID,
		AccountID:    target.AccountID,
		AddedAt:      time.Now(),
		HolderName:   target.HolderName,
		BankName:     target.BankName,
		UPIID:        target.UPIID,
		Mobile:       target.Mobile,
	}

	if err := s.payeeRepo.SaveSavedPayee(ctx, payee); err != nil {
		return nil, err
	}
	return &payee, nil
}

// ListPayees retrieves the user's saved payees, newest first.
func (s *payeeService) ListPayees(ctx context.Context, userID string) ([]domain.SavedPayee, error) {
	return s.payeeRepo.ListSavedPayees(ctx, userID)
}

// RemovePayee deletes a payee entry owned by the user.
func (s *payeeService) RemovePayee(ctx context.Context, userID, savedPayeeID string) error {
	return s.payeeRepo.DeleteSavedPayee(ctx, userID, savedPayeeID)
}

// SearchPayees finds transfer targets by holder name, mobile or payment
// address. The user's own accounts are filtered out; a payee search that
// surfaces yourself only invites self-transfer attempts.
func (s *payeeService) SearchPayees(ctx context.Context, userID, query string, limit int) ([]domain.BankAccount, error) {
	query = strings.TrimSpace(query)
	if len(query) < 3 {
		return nil, fmt.Errorf("%w: search query must be at least 3 characters", apperrors.ErrValidation)
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	matches, err := s.accountRepo.SearchAccounts(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	results := make([]domain.BankAccount, 0, len(matches))
	for _, acc := range matches {
		if acc.UserID == userID {
			continue
		}
		results = append(results, acc)
	}
	return results, nil
}
