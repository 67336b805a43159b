package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Operator is a mobile network operator offered in the recharge catalog.
type Operator struct {
	OperatorID string `json:"operatorID"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	LogoURL    string `json:"logoURL"`
}

// Plan is a recharge plan belonging to an operator.
type Plan struct {
	PlanID      string          `json:"planID"`
	OperatorID  string          `json:"operatorID"`
	Category    string          `json:"category"` // data / 5g / topup / unlimited
	PlanCode    string          `json:"planCode"`
	Amount      decimal.Decimal `json:"amount"`
	Title       string          `json:"title"`
	Validity    string          `json:"validity"`
	Description string          `json:"description"`
}

// RechargeStatus tracks the provider-facing lifecycle of a recharge order.
// The ledger entry backing the debit is SUCCESS|FAILED only; PENDING exists
// solely between the order being accepted and the provider call settling.
type RechargeStatus string

const (
	RechargePending RechargeStatus = "PENDING"
	RechargeSuccess RechargeStatus = "SUCCESS"
	RechargeFailed  RechargeStatus = "FAILED"
)

// MobileRecharge is a recharge order placed by a user.
type MobileRecharge struct {
	RechargeID  string          `json:"rechargeID"`
	UserID      string          `json:"userID"`
	Mobile      string          `json:"mobile"`
	OperatorID  string          `json:"operatorID"`
	Circle      string          `json:"circle"`
	PlanID      *string         `json:"planID,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Status      RechargeStatus  `json:"status"`
	ProviderTxn string          `json:"providerTxn"`
	CreatedAt   time.Time       `json:"createdAt"`
}
