package dto

import (
	"time"

	"github.com/gapy-app/gapy_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListTransactionsParams defines query parameters for listing transactions.
// Month and Year of zero mean no month filter.
type ListTransactionsParams struct {
	AccountID string  `form:"accountID"`
	Month     int     `form:"month" binding:"omitempty,min=1,max=12"`
	Year      int     `form:"year" binding:"omitempty,min=2000,max=2200"`
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a ledger entry.
// Direction is DEBIT or CREDIT relative to the requesting user's accounts.
type TransactionResponse struct {
	TransactionID     string          `json:"transactionID"`
	SenderAccountID   string          `json:"senderAccountID"`
	ReceiverAccountID *string         `json:"receiverAccountID,omitempty"`
	ReceiverLabel     *string         `json:"receiverLabel,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	Status            string          `json:"status"`
	Direction         string          `json:"direction"`
	Reference         string          `json:"reference,omitempty"`
	Timestamp         time.Time       `json:"timestamp"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// MonthlyFlowResponse is one month's debit and credit totals.
type MonthlyFlowResponse struct {
	Month    string          `json:"month"`
	Label    string          `json:"label"`
	Debited  decimal.Decimal `json:"debited"`
	Credited decimal.Decimal `json:"credited"`
}

// TransactionStatsResponse aggregates flows over the reporting window.
type TransactionStatsResponse struct {
	TotalDebited  decimal.Decimal       `json:"totalDebited"`
	TotalCredited decimal.Decimal       `json:"totalCredited"`
	NetChange     decimal.Decimal       `json:"netChange"`
	Monthly       []MonthlyFlowResponse `json:"monthly"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
// ownedAccounts decides the direction: a transaction sent from one of the
// requesting user's accounts is a DEBIT, everything else a CREDIT.
func ToTransactionResponse(txn *domain.Transaction, ownedAccounts map[string]bool) TransactionResponse {
	direction := "CREDIT"
	if ownedAccounts[txn.SenderAccountID] {
		direction = "DEBIT"
	}
	return TransactionResponse{
		TransactionID:     txn.TransactionID,
		SenderAccountID:   txn.SenderAccountID,
		ReceiverAccountID: txn.ReceiverAccountID,
		ReceiverLabel:     txn.ReceiverLabel,
		Amount:            txn.Amount,
		Status:            string(txn.Status),
		Direction:         direction,
		Reference:         txn.Reference,
		Timestamp:         txn.Timestamp,
	}
}

// ToTransactionStatsResponse converts domain stats to the response DTO.
func ToTransactionStatsResponse(stats *domain.TransactionStats) TransactionStatsResponse {
	monthly := make([]MonthlyFlowResponse, len(stats.Monthly))
	for i, m := range stats.Monthly {
		monthly[i] = MonthlyFlowResponse{
			Month:    m.Month,
			Label:    m.Label,
			Debited:  m.Debited,
			Credited: m.Credited,
		}
	}
	return TransactionStatsResponse{
		TotalDebited:  stats.TotalDebited,
		TotalCredited: stats.TotalCredited,
		NetChange:     stats.NetChange,
		Monthly:       monthly,
	}
}
