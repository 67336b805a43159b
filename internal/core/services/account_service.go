package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gapy-app/gapy_backend/internal/apperrors"
	"github.com/gapy-app/gapy_backend/internal/core/domain"
	portsrepo "github.com/gapy-app/gapy_backend/internal/core/ports/repositories"
	portssvc "github.com/gapy-app/gapy_backend/internal/core/ports/services"
	"github.com/gapy-app/gapy_backend/internal/dto"
	"github.com/gapy-app/gapy_backend/internal/middleware"
	"github.com/gapy-app/gapy_backend/internal/utils"
	"github.com/shopspring/decimal"
)

var (
	ErrPINAlreadySet = errors.New("transaction PIN is already set")
	ErrPINNotSet     = errors.New("transaction PIN is not set")
)

// accountService provides bank account management operations.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// getOwnedAccount fetches an account and verifies the requesting user owns it.
func (s *accountService) getOwnedAccount(ctx context.Context, userID, accountID string) (*domain.BankAccount, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return account, nil
}

// LinkAccount links a new bank account and assigns its payment address.
func (s *accountService) LinkAccount(ctx context.Context, userID string, req dto.LinkAccountRequest) (*domain.BankAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.accountRepo.FindAccountByNumber(ctx, req.AccountNumber, req.IFSC); err == nil {
		return nil, fmt.Errorf("%w: account number already linked", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	upiID, err := utils.GenerateUPIID(req.HolderName, req.BankName)
	if err != nil {
		return nil, fmt.Errorf("failed to generate payment address: %w", err)
	}
	// The random suffix makes collisions unlikely; fall back to a
	// timestamped address rather than retrying in a loop.
	if _, err := s.accountRepo.FindAccountByUPIID(ctx, upiID); err == nil {
		upiID = utils.MakeUPIIDUnique(upiID)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	account := domain.BankAccount{
		AccountID:     uuid.NewString(),
		UserID:        userID,
		HolderName:    req.HolderName,
		BankName:      req.BankName,
		Branch:        req.Branch,
		AccountNumber: req.AccountNumber,
		IFSC:          req.IFSC,
		Mobile:        req.Mobile,
		UPIID:         upiID,
		Balance:       decimal.Zero,
		PINEnabled:    false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, err
	}

	logger.Info("Bank account linked", slog.String("account_id", account.AccountID))
	return &account, nil
}

// GetAccountByID retrieves an account after checking ownership.
func (s *accountService) GetAccountByID(ctx context.Context, userID, accountID string) (*domain.BankAccount, error) {
	return s.getOwnedAccount(ctx, userID, accountID)
}

// ListAccounts retrieves all accounts linked by the user.
func (s *accountService) ListAccounts(ctx context.Context, userID string) ([]domain.BankAccount, error) {
	return s.accountRepo.ListAccountsByUserID(ctx, userID)
}

// GetBalance retrieves the balance of an account the user owns.
func (s *accountService) GetBalance(ctx context.Context, userID, accountID string) (decimal.Decimal, error) {
	account, err := s.getOwnedAccount(ctx, userID, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// ResolveAccount looks up a transfer target by payment address or account
// number, without an ownership check.
func (s *accountService) ResolveAccount(ctx context.Context, upiID, accountNumber, ifsc string) (*domain.BankAccount, error) {
	if upiID != "" {
		return s.accountRepo.FindAccountByUPIID(ctx, upiID)
	}
	if accountNumber != "" && ifsc != "" {
		return s.accountRepo.FindAccountByNumber(ctx, accountNumber, ifsc)
	}
	return nil, fmt.Errorf("%w: a payment address or account number with IFSC is required", apperrors.ErrValidation)
}

// TopUp credits demo funds to an account the user owns and returns the new
// balance. The credit is a single atomic update; no ledger entry is written.
func (s *accountService) TopUp(ctx context.Context, userID, accountID string, amount string) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	parsed, err := parsePositiveAmount(amount)
	if err != nil {
		return decimal.Zero, err
	}

	if _, err := s.getOwnedAccount(ctx, userID, accountID); err != nil {
		return decimal.Zero, err
	}

	newBalance, err := s.accountRepo.AddToBalance(ctx, accountID, parsed, userID, time.Now())
	if err != nil {
		return decimal.Zero, err
	}

	logger.Info("Account topped up", slog.String("account_id", accountID), slog.String("amount", parsed.String()))
	return newBalance, nil
}

// UnlinkAccount removes an account the user owns. Ledger entries referencing
// the account survive the unlink.
func (s *accountService) UnlinkAccount(ctx context.Context, userID, accountID string) error {
	if _, err := s.getOwnedAccount(ctx, userID, accountID); err != nil {
		return err
	}
	return s.accountRepo.DeleteAccount(ctx, accountID)
}

// SetPIN sets the transaction PIN on an account that has none.
func (s *accountService) SetPIN(ctx context.Context, userID, accountID, pin string) error {
	account, err := s.getOwnedAccount(ctx, userID, accountID)
	if err != nil {
		return err
	}
	if account.HasPIN() {
		return ErrPINAlreadySet
	}

	pinHash, err := utils.HashPIN(pin)
	if err != nil {
		return fmt.Errorf("failed to hash PIN: %w", err)
	}
	return s.accountRepo.UpdatePIN(ctx, accountID, pinHash, userID, time.Now())
}

// ChangePIN replaces the PIN after verifying the current one.
func (s *accountService) ChangePIN(ctx context.Context, userID, accountID, currentPIN, newPIN string) error {
	account, err := s.getOwnedAccount(ctx, userID, accountID)
	if err != nil {
		return err
	}
	if !account.HasPIN() {
		return ErrPINNotSet
	}
	if !utils.CheckPINHash(currentPIN, account.PINHash) {
		return ErrInvalidPIN
	}

	pinHash, err := utils.HashPIN(newPIN)
	if err != nil {
		return fmt.Errorf("failed to hash PIN: %w", err)
	}
	return s.accountRepo.UpdatePIN(ctx, accountID, pinHash, userID, time.Now())
}

// VerifyPIN reports whether the supplied PIN matches, without moving money.
// An account with no PIN set verifies false rather than erroring; the PIN
// status endpoint exposes pin_enabled for callers that need the distinction.
func (s *accountService) VerifyPIN(ctx context.Context, userID, accountID, pin string) (bool, error) {
	account, err := s.getOwnedAccount(ctx, userID, accountID)
	if err != nil {
		return false, err
	}
	if !account.HasPIN() {
		return false, nil
	}
	return utils.CheckPINHash(pin, account.PINHash), nil
}
