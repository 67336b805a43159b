package dto

import (
	"time"

	"github.com/gapy-app/gapy_backend/internal/core/domain"
)

// AddPayeeRequest defines the data needed to save a payee.
// Exactly one of UPIID or AccountID identifies the target account.
type AddPayeeRequest struct {
	UPIID     string `json:"upiID" binding:"required_without=AccountID"`
	AccountID string `json:"accountID" binding:"required_without=UPIID"`
}

// PayeeResponse defines the data returned for a saved payee.
type PayeeResponse struct {
	SavedPayeeID string    `json:"savedPayeeID"`
	AccountID    string    `json:"accountID"`
	HolderName   string    `json:"holderName"`
	BankName     string    `json:"bankName"`
	UPIID        string    `json:"upiID"`
	Mobile       string    `json:"mobile"`
	AddedAt      time.Time `json:"addedAt"`
}

// ResolvePayeeResponse is what a sender sees before confirming a transfer.
type ResolvePayeeResponse struct {
	AccountID  string `json:"accountID"`
	HolderName string `json:"holderName"`
	BankName   string `json:"bankName"`
	UPIID      string `json:"upiID"`
}

// ToResolvePayeeResponse converts a resolved account to the preview DTO.
func ToResolvePayeeResponse(acc *domain.BankAccount) ResolvePayeeResponse {
	return ResolvePayeeResponse{
		AccountID:  acc.AccountID,
		HolderName: acc.HolderName,
		BankName:   acc.BankName,
		UPIID:      acc.UPIID,
	}
}

// PayeeSearchResult defines one match from a payee search.
type PayeeSearchResult struct {
	AccountID  string `json:"accountID"`
	HolderName string `json:"holderName"`
	BankName   string `json:"bankName"`
	UPIID      string `json:"upiID"`
	Mobile     string `json:"mobile"`
}

// ToPayeeSearchResults converts matched accounts to search result DTOs.
func ToPayeeSearchResults(accounts []domain.BankAccount) []PayeeSearchResult {
	results := make([]PayeeSearchResult, len(accounts))
	for i, acc := range accounts {
		results[i] = PayeeSearchResult{
			AccountID:  acc.AccountID,
			HolderName: acc.HolderName,
			BankName:   acc.BankName,
			UPIID:      acc.UPIID,
			Mobile:     acc.Mobile,
		}
	}
	return results
}

// ToPayeeResponse converts a domain.SavedPayee to PayeeResponse DTO
func ToPayeeResponse(p *domain.SavedPayee) PayeeResponse {
	return PayeeResponse{
		SavedPayeeID: p.SavedPayeeID,
		AccountID:    p.AccountID,
		HolderName:   p.HolderName,
		BankName:     p.BankName,
		UPIID:        p.UPIID,
		Mobile:       p.Mobile,
		AddedAt:      p.AddedAt,
	}
}

// ToPayeeResponses converts a slice of domain.SavedPayee to []PayeeResponse.
func ToPayeeResponses(payees []domain.SavedPayee) []PayeeResponse {
	responses := make([]PayeeResponse, len(payees))
	for i, p := range payees {
		responses[i] = ToPayeeResponse(&p)
	}
	return responses
}
