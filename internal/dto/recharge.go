package dto

import (
	"time"

	"github.com/gapy-app/gapy_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OperatorResponse defines the data returned for a mobile operator.
type OperatorResponse struct {
	OperatorID string `json:"operatorID"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	LogoURL    string `json:"logoURL"`
}

// PlanResponse defines the data returned for a recharge plan.
type PlanResponse struct {
	PlanID      string          `json:"planID"`
	OperatorID  string          `json:"operatorID"`
	Category    string          `json:"category"`
	PlanCode    string          `json:"planCode"`
	Amount      decimal.Decimal `json:"amount"`
	Title       string          `json:"title"`
	Validity    string          `json:"validity"`
	Description string          `json:"description"`
}

// RechargeRequest defines the data needed to pay for a mobile recharge.
type RechargeRequest struct {
	AccountID  string `json:"accountID" binding:"required"`
	OperatorID string `json:"operatorID" binding:"required"`
	PlanID     string `json:"planID" binding:"required"`
	Mobile     string `json:"mobile" binding:"required,numeric,len=10"`
	Circle     string `json:"circle"`
	PIN        string `json:"pin" binding:"omitempty,txnpin"`
}

// RechargeResponse defines the data returned for a recharge order.
type RechargeResponse struct {
	RechargeID  string          `json:"rechargeID"`
	Mobile      string          `json:"mobile"`
	OperatorID  string          `json:"operatorID"`
	Circle      string          `json:"circle"`
	PlanID      *string         `json:"planID,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	ProviderTxn string          `json:"providerTxn,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToOperatorResponse converts a domain.Operator to OperatorResponse DTO
func ToOperatorResponse(op *domain.Operator) OperatorResponse {
	return OperatorResponse{
		OperatorID: op.OperatorID,
		Code:       op.Code,
		Name:       op.Name,
		LogoURL:    op.LogoURL,
	}
}

// ToOperatorResponses converts a slice of domain.Operator to []OperatorResponse.
func ToOperatorResponses(ops []domain.Operator) []OperatorResponse {
	responses := make([]OperatorResponse, len(ops))
	for i, op := range ops {
		responses[i] = ToOperatorResponse(&op)
	}
	return responses
}

// ToPlanResponse converts a domain.Plan to PlanResponse DTO
func ToPlanResponse(p *domain.Plan) PlanResponse {
	return PlanResponse{
		PlanID:      p.PlanID,
		OperatorID:  p.OperatorID,
		Category:    p.Category,
		PlanCode:    p.PlanCode,
		Amount:      p.Amount,
		Title:       p.Title,
		Validity:    p.Validity,
		Description: p.Description,
	}
}

// ToPlanResponses converts a slice of domain.Plan to []PlanResponse.
func ToPlanResponses(plans []domain.Plan) []PlanResponse {
	responses := make([]PlanResponse, len(plans))
	for i, p := range plans {
		responses[i] = ToPlanResponse(&p)
	}
	return responses
}

// ToRechargeResponse converts a domain.MobileRecharge to RechargeResponse DTO
func ToRechargeResponse(r *domain.MobileRecharge) RechargeResponse {
	return RechargeResponse{
		RechargeID:  r.RechargeID,
		Mobile:      r.Mobile,
		OperatorID:  r.OperatorID,
		Circle:      r.Circle,
		PlanID:      r.PlanID,
		Amount:      r.Amount,
		Status:      string(r.Status),
		ProviderTxn: r.ProviderTxn,
		CreatedAt:   r.CreatedAt,
	}
}

// ToRechargeResponses converts a slice of domain.MobileRecharge to []RechargeResponse.
func ToRechargeResponses(recharges []domain.MobileRecharge) []RechargeResponse {
	responses := make([]RechargeResponse, len(recharges))
	for i, r := range recharges {
		responses[i] = ToRechargeResponse(&r)
	}
	return responses
}
