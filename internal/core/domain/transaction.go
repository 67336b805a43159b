package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus indicates the terminal outcome of a transfer attempt.
type TransactionStatus string

const (
	TxnSuccess TransactionStatus = "SUCCESS"
	TxnFailed  TransactionStatus = "FAILED"
)

// Transaction is an immutable ledger entry for an attempted transfer or
// debit. A FAILED entry records a rejected attempt (insufficient funds) for
// audit purposes and corresponds to no balance mutation.
//
// Exactly one of ReceiverAccountID / ReceiverLabel is set: peer transfers
// reference a receiver account, debit-only entries (recharge, bill payment)
// carry a free-text counterparty label instead.
type Transaction struct {
	TransactionID     string            `json:"transactionID"`
	SenderAccountID   string            `json:"senderAccountID"`
	ReceiverAccountID *string           `json:"receiverAccountID,omitempty"`
	ReceiverLabel     *string           `json:"receiverLabel,omitempty"`
	Amount            decimal.Decimal   `json:"amount"` // Always positive
	Status            TransactionStatus `json:"status"`
	Reference         string            `json:"reference"` // Free-text memo
	Timestamp         time.Time         `json:"timestamp"`
	AuditFields
}

// IsExternal reports whether the entry debits against a non-ledger
// counterparty (no receiver account row).
func (t *Transaction) IsExternal() bool {
	return t.ReceiverAccountID == nil
}
