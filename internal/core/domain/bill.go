package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillerCategory enumerates the supported bill categories.
type BillerCategory string

const (
	CategoryElectricity BillerCategory = "ELECTRICITY"
	CategoryWater       BillerCategory = "WATER"
	CategoryGas         BillerCategory = "GAS"
	CategoryDTH         BillerCategory = "DTH"
	CategoryBroadband   BillerCategory = "BROADBAND"
)

// Biller is a bill issuer offered in the bill-payment catalog.
type Biller struct {
	BillerID string         `json:"billerID"`
	Code     string         `json:"code"`
	Name     string         `json:"name"`
	Category BillerCategory `json:"category"`
	LogoURL  string         `json:"logoURL"`
	Circle   string         `json:"circle"`
}

// BillPaymentStatus tracks the provider-facing lifecycle of a bill payment.
type BillPaymentStatus string

const (
	BillPending BillPaymentStatus = "PENDING"
	BillSuccess BillPaymentStatus = "SUCCESS"
	BillFailed  BillPaymentStatus = "FAILED"
)

// BillPayment is a bill payment order placed by a user.
type BillPayment struct {
	BillPaymentID  string            `json:"billPaymentID"`
	UserID         string            `json:"userID"`
	BillerID       string            `json:"billerID"`
	ConsumerNumber string            `json:"consumerNumber"`
	NameOnBill     string            `json:"nameOnBill"`
	Period         string            `json:"period"`
	Amount         decimal.Decimal   `json:"amount"`
	DueDate        *time.Time        `json:"dueDate,omitempty"`
	Status         BillPaymentStatus `json:"status"`
	ProviderTxn    string            `json:"providerTxn"`
	PaidOn         *time.Time        `json:"paidOn,omitempty"`
	ReminderDate   *time.Time        `json:"reminderDate,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// FetchedBill is the mock bill detail returned by the provider lookup.
type FetchedBill struct {
	BillerCode     string          `json:"billerCode"`
	BillerName     string          `json:"billerName"`
	ConsumerNumber string          `json:"consumerNumber"`
	NameOnBill     string          `json:"nameOnBill"`
	Period         string          `json:"period"`
	Amount         decimal.Decimal `json:"amount"`
	DueDate        time.Time       `json:"dueDate"`
}
