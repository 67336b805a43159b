package services

import (
	"context"

	"github.com/gapy-app/gapy_backend/internal/core/domain"
	"github.com/gapy-app/gapy_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for bank accounts
type AccountReaderSvc interface {
	// GetAccountByID retrieves an account after checking the requesting user owns it.
	GetAccountByID(ctx context.Context, userID, accountID string) (*domain.BankAccount, error)

	// ListAccounts retrieves all accounts linked by the user.
	ListAccounts(ctx context.Context, userID string) ([]domain.BankAccount, error)

	// GetBalance retrieves the balance of an account the user owns.
	GetBalance(ctx context.Context, userID, accountID string) (decimal.Decimal, error)

	// ResolveAccount looks up a transfer target by payment address or account
	// number, without an ownership check. Used to preview a payee.
	ResolveAccount(ctx context.Context, upiID, accountNumber, ifsc string) (*domain.BankAccount, error)
}

// AccountWriterSvc defines write operations for bank accounts
type AccountWriterSvc interface {
	// LinkAccount links a new bank account and assigns its payment address.
	LinkAccount(ctx context.Context, userID string, req dto.LinkAccountRequest) (*domain.BankAccount, error)

	// TopUp credits demo funds to an account the user owns and returns the
	// new balance. No ledger entry is written.
	TopUp(ctx context.Context, userID, accountID string, amount string) (decimal.Decimal, error)

	// UnlinkAccount removes an account the user owns. Ledger history is retained.
	UnlinkAccount(ctx context.Context, userID, accountID string) error
}

// AccountPINSvc manages per-account transaction PINs
type AccountPINSvc interface {
	// SetPIN sets the transaction PIN on an account that has none.
	SetPIN(ctx context.Context, userID, accountID, pin string) error

	// ChangePIN replaces the PIN after verifying the current one.
	ChangePIN(ctx context.Context, userID, accountID, currentPIN, newPIN string) error

	// VerifyPIN reports whether the supplied PIN matches, without moving money.
	VerifyPIN(ctx context.Context, userID, accountID, pin string) (bool, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountPINSvc
}
