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
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("amount must be a positive number with at most two decimal places")
	ErrInvalidPIN    = errors.New("invalid transaction PIN")
	ErrSelfTransfer  = errors.New("sender and receiver accounts must differ")
)

// ledgerService is the money-movement service. Every precondition is checked
// here, before any ledger write: a request that fails a precondition leaves
// no trace in the ledger. Only the balance check happens later, under the
// row locks inside the repository, where it can be trusted.
type ledgerService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	txnRepo     portsrepo.TransactionRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(accountRepo portsrepo.AccountRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{accountRepo: accountRepo, txnRepo: txnRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// parsePositiveAmount parses a decimal string, requiring a positive value
// with at most two decimal places.
func parsePositiveAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !amount.IsPositive() || amount.Exponent() < -2 {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

// authorizeDebit verifies the sender account exists, is owned by the user and
// that the PIN gate passes. It returns the sender account.
func (s *ledgerService) authorizeDebit(ctx context.Context, userID, accountID, pin string) (*domain.BankAccount, error) {
	sender, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if sender.UserID != userID {
		return nil, apperrors.ErrForbidden
	}

	// The gate fails closed: an account with no PIN set cannot authorize a
	// debit, and a wrong or empty PIN never reaches the ledger.
	if !sender.HasPIN() || !utils.CheckPINHash(pin, sender.PINHash) {
		return nil, ErrInvalidPIN
	}

	return sender, nil
}

// Transfer moves money from one of the user's accounts to a receiver account.
func (s *ledgerService) Transfer(ctx context.Context, userID string, req dto.TransferRequest) (*dto.TransferResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amount, err := parsePositiveAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	if _, err := s.authorizeDebit(ctx, userID, req.SenderAccountID, req.PIN); err != nil {
		return nil, err
	}

	if _, err := s.accountRepo.FindAccountByID(ctx, req.ReceiverAccountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: receiver account", apperrors.ErrNotFound)
		}
		return nil, err
	}

	if req.SenderAccountID == req.ReceiverAccountID {
		return nil, ErrSelfTransfer
	}

	receiverID := req.ReceiverAccountID
	now := time.Now()
	txn := domain.Transaction{
		TransactionID:     uuid.NewString(),
		SenderAccountID:   req.SenderAccountID,
		ReceiverAccountID: &receiverID,
		Amount:            amount,
		Reference:         req.Reference,
		Timestamp:         now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	recorded, newSenderBalance, err := s.txnRepo.RecordTransfer(ctx, txn)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientFunds) && recorded != nil {
			// The rejection is itself a ledger entry; hand it back with the error.
			logger.Info("Transfer rejected for insufficient funds",
				slog.String("transaction_id", recorded.TransactionID),
				slog.String("sender_account_id", recorded.SenderAccountID),
			)
			resp := dto.ToTransferResponse(recorded, newSenderBalance)
			return &resp, err
		}
		return nil, err
	}

	logger.Info("Transfer completed",
		slog.String("transaction_id", recorded.TransactionID),
		slog.String("sender_account_id", recorded.SenderAccountID),
		slog.String("amount", recorded.Amount.String()),
	)

	resp := dto.ToTransferResponse(recorded, newSenderBalance)
	return &resp, nil
}

// ExternalDebit debits one of the user's accounts against an external
// counterparty label. Used by the recharge and bill payment flows.
func (s *ledgerService) ExternalDebit(ctx context.Context, userID, accountID string, amount decimal.Decimal, pin, counterpartyLabel, reference string) (string, decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !amount.IsPositive() {
		return "", decimal.Zero, ErrInvalidAmount
	}

	if _, err := s.authorizeDebit(ctx, userID, accountID, pin); err != nil {
		return "", decimal.Zero, err
	}

	label := counterpartyLabel
	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		SenderAccountID: accountID,
		ReceiverLabel:   &label,
		Amount:          amount,
		Reference:       reference,
		Timestamp:       now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	recorded, newBalance, err := s.txnRepo.RecordTransfer(ctx, txn)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientFunds) && recorded != nil {
			logger.Info("External debit rejected for insufficient funds",
				slog.String("transaction_id", recorded.TransactionID),
				slog.String("sender_account_id", recorded.SenderAccountID),
			)
			return recorded.TransactionID, newBalance, err
		}
		return "", decimal.Zero, err
	}

	logger.Info("External debit completed",
		slog.String("transaction_id", recorded.TransactionID),
		slog.String("counterparty", label),
		slog.String("amount", amount.String()),
	)

	return recorded.TransactionID, newBalance, nil
}
