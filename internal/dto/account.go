package dto

import (
	"time"

	"github.com/gapy-app/gapy_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LinkAccountRequest defines the data needed to link a bank account.
type LinkAccountRequest struct {
	HolderName    string `json:"holderName" binding:"required"`
	BankName      string `json:"bankName" binding:"required"`
	Branch        string `json:"branch"`
	AccountNumber string `json:"accountNumber" binding:"required,numeric,min=9,max=18"`
	IFSC          string `json:"ifsc" binding:"required,len=11"`
	Mobile        string `json:"mobile" binding:"required,numeric,len=10"`
}

// AccountResponse defines the data returned for a bank account.
// The account number is masked to its last four digits.
type AccountResponse struct {
	AccountID     string          `json:"accountID"`
	HolderName    string          `json:"holderName"`
	BankName      string          `json:"bankName"`
	Branch        string          `json:"branch"`
	AccountNumber string          `json:"accountNumber"`
	IFSC          string          `json:"ifsc"`
	Mobile        string          `json:"mobile"`
	UPIID         string          `json:"upiID"`
	Balance       decimal.Decimal `json:"balance"`
	PINEnabled    bool            `json:"pinEnabled"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// BalanceResponse defines the data returned for a balance query.
type BalanceResponse struct {
	AccountID string          `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
}

// SetPINRequest defines the data needed to set a transaction PIN for the first time.
type SetPINRequest struct {
	PIN string `json:"pin" binding:"required,txnpin"`
}

// ChangePINRequest defines the data needed to change an existing transaction PIN.
type ChangePINRequest struct {
	CurrentPIN string `json:"currentPin" binding:"required,txnpin"`
	NewPIN     string `json:"newPin" binding:"required,txnpin"`
}

// VerifyPINRequest defines the data needed to check a PIN without moving money.
type VerifyPINRequest struct {
	PIN string `json:"pin" binding:"required,txnpin"`
}

// VerifyPINResponse reports whether the supplied PIN matched.
type VerifyPINResponse struct {
	Valid bool `json:"valid"`
}

// TopUpRequest defines the data needed to add demo funds to an account.
type TopUpRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// maskAccountNumber keeps the last four digits visible.
func maskAccountNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	masked := make([]byte, len(number)-4)
	for i := range masked {
		masked[i] = 'X'
	}
	return string(masked) + number[len(number)-4:]
}

// ToAccountResponse converts a domain.BankAccount to AccountResponse DTO
func ToAccountResponse(acc *domain.BankAccount) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		HolderName:    acc.HolderName,
		BankName:      acc.BankName,
		Branch:        acc.Branch,
		AccountNumber: maskAccountNumber(acc.AccountNumber),
		IFSC:          acc.IFSC,
		Mobile:        acc.Mobile,
		UPIID:         acc.UPIID,
		Balance:       acc.Balance,
		PINEnabled:    acc.PINEnabled,
		CreatedAt:     acc.CreatedAt,
	}
}

// ToAccountResponses converts a slice of domain.BankAccount to []AccountResponse.
func ToAccountResponses(accounts []domain.BankAccount) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		responses[i] = ToAccountResponse(&acc)
	}
	return responses
}
