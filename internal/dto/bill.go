package dto

import (
	"time"

	"github.com/gapy-app/gapy_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BillerResponse defines the data returned for a biller.
type BillerResponse struct {
	BillerID string `json:"billerID"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
	LogoURL  string `json:"logoURL"`
	Circle   string `json:"circle"`
}

// FetchBillRequest identifies a consumer at a biller.
type FetchBillRequest struct {
	BillerID       string `json:"billerID" binding:"required"`
	ConsumerNumber string `json:"consumerNumber" binding:"required"`
}

// FetchBillResponse defines the data returned for an outstanding bill.
type FetchBillResponse struct {
	BillerCode     string          `json:"billerCode"`
	BillerName     string          `json:"billerName"`
	ConsumerNumber string          `json:"consumerNumber"`
	NameOnBill     string          `json:"nameOnBill"`
	Period         string          `json:"period"`
	Amount         decimal.Decimal `json:"amount"`
	DueDate        time.Time       `json:"dueDate"`
}

// PayBillRequest defines the data needed to pay a fetched bill.
type PayBillRequest struct {
	AccountID      string `json:"accountID" binding:"required"`
	BillerID       string `json:"billerID" binding:"required"`
	ConsumerNumber string `json:"consumerNumber" binding:"required"`
	Amount         string `json:"amount" binding:"required"`
	PIN            string `json:"pin" binding:"omitempty,txnpin"`
}

// BillPaymentResponse defines the data returned for a bill payment order.
type BillPaymentResponse struct {
	BillPaymentID  string          `json:"billPaymentID"`
	BillerID       string          `json:"billerID"`
	ConsumerNumber string          `json:"consumerNumber"`
	NameOnBill     string          `json:"nameOnBill"`
	Period         string          `json:"period"`
	Amount         decimal.Decimal `json:"amount"`
	DueDate        *time.Time      `json:"dueDate,omitempty"`
	Status         string          `json:"status"`
	ProviderTxn    string          `json:"providerTxn,omitempty"`
	PaidOn         *time.Time      `json:"paidOn,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToBillerResponse converts a domain.Biller to BillerResponse DTO
func ToBillerResponse(b *domain.Biller) BillerResponse {
	return BillerResponse{
		BillerID: b.BillerID,
		Code:     b.Code,
		Name:     b.Name,
		Category: string(b.Category),
		LogoURL:  b.LogoURL,
		Circle:   b.Circle,
	}
}

// ToBillerResponses converts a slice of domain.Biller to []BillerResponse.
func ToBillerResponses(billers []domain.Biller) []BillerResponse {
	responses := make([]BillerResponse, len(billers))
	for i, b := range billers {
		responses[i] = ToBillerResponse(&b)
	}
	return responses
}

// ToFetchBillResponse converts a domain.FetchedBill to FetchBillResponse DTO
func ToFetchBillResponse(bill *domain.FetchedBill) FetchBillResponse {
	return FetchBillResponse{
		BillerCode:     bill.BillerCode,
		BillerName:     bill.BillerName,
		ConsumerNumber: bill.ConsumerNumber,
		NameOnBill:     bill.NameOnBill,
		Period:         bill.Period,
		Amount:         bill.Amount,
		DueDate:        bill.DueDate,
	}
}

// ToBillPaymentResponse converts a domain.BillPayment to BillPaymentResponse DTO
func ToBillPaymentResponse(p *domain.BillPayment) BillPaymentResponse {
	return BillPaymentResponse{
		BillPaymentID:  p.BillPaymentID,
		BillerID:       p.BillerID,
		ConsumerNumber: p.ConsumerNumber,
		NameOnBill:     p.NameOnBill,
		Period:         p.Period,
		Amount:         p.Amount,
		DueDate:        p.DueDate,
		Status:         string(p.Status),
		ProviderTxn:    p.ProviderTxn,
		PaidOn:         p.PaidOn,
		CreatedAt:      p.CreatedAt,
	}
}

// ToBillPaymentResponses converts a slice of domain.BillPayment to []BillPaymentResponse.
func ToBillPaymentResponses(payments []domain.BillPayment) []BillPaymentResponse {
	responses := make([]BillPaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = ToBillPaymentResponse(&p)
	}
	return responses
}
