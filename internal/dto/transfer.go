package dto

import (
	"github.com/gapy-app/gapy_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferRequest defines the data needed to move money between two accounts.
// Amount is a string so the handler never touches float arithmetic.
type TransferRequest struct {
	SenderAccountID   string `json:"senderAccountID" binding:"required"`
	ReceiverAccountID string `json:"receiverAccountID" binding:"required"`
	Amount            string `json:"amount" binding:"required"`
	PIN               string `json:"pin" binding:"omitempty,txnpin"`
	Reference         string `json:"reference" binding:"max=120"`
}

// TransferResponse reports the outcome of a transfer.
type TransferResponse struct {
	TransactionID    string          `json:"transactionID"`
	Status           string          `json:"status"`
	Amount           decimal.Decimal `json:"amount"`
	NewSenderBalance decimal.Decimal `json:"newSenderBalance"`
}

// ToTransferResponse converts a recorded transaction and resulting balance into a TransferResponse.
func ToTransferResponse(txn *domain.Transaction, newSenderBalance decimal.Decimal) TransferResponse {
	return TransferResponse{
		TransactionID:    txn.TransactionID,
		Status:           string(txn.Status),
		Amount:           txn.Amount,
		NewSenderBalance: newSenderBalance,
	}
}
