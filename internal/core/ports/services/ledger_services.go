package services

import (
	"context"

	"github.com/gapy-app/gapy_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade performs money movement against the append-only ledger.
type LedgerSvcFacade interface {
	// Transfer moves money from one of the user's accounts to a receiver
	// account. Preconditions (ownership, PIN, target) are checked before any
	// ledger write; insufficient funds yields a recorded FAILED entry.
	Transfer(ctx context.Context, userID string, req dto.TransferRequest) (*dto.TransferResponse, error)

	// ExternalDebit debits one of the user's accounts against an external
	// counterparty label (recharge provider, biller). Same precondition and
	// failure semantics as Transfer. It returns the ledger entry ID and new balance.
	ExternalDebit(ctx context.Context, userID, accountID string, amount decimal.Decimal, pin, counterpartyLabel, reference string) (string, decimal.Decimal, error)
}
