package mapping

import (
	"database/sql"

	"github.com/gapy-app/gapy_backend/internal/core/domain"
	"github.com/gapy-app/gapy_backend/internal/models"
)

// ToModelMobileRecharge converts a domain MobileRecharge to a model MobileRecharge.
func ToModelMobileRecharge(d domain.MobileRecharge) models.MobileRecharge {
	m := models.MobileRecharge{
		RechargeID:  d.RechargeID,
		UserID:      d.UserID,
		Mobile:      d.Mobile,
		OperatorID:  d.OperatorID,
		Circle:      d.Circle,
		Amount:      d.Amount,
		Status:      models.RechargeStatus(d.Status),
		ProviderTxn: d.ProviderTxn,
		CreatedAt:   d.CreatedAt,
	}
	if d.PlanID != nil {
		m.PlanID = sql.NullString{String: *d.PlanID, Valid: true}
	}
	return m
}

// ToDomainMobileRecharge converts a model MobileRecharge to a domain MobileRecharge.
func ToDomainMobileRecharge(m models.MobileRecharge) domain.MobileRecharge {
	d := domain.MobileRecharge{
		RechargeID:  m.RechargeID,
		UserID:      m.UserID,
		Mobile:      m.Mobile,
		OperatorID:  m.OperatorID,
		Circle:      m.Circle,
		Amount:      m.Amount,
		Status:      domain.RechargeStatus(m.Status),
		ProviderTxn: m.ProviderTxn,
		CreatedAt:   m.CreatedAt,
	}
	if m.PlanID.Valid {
		v := m.PlanID.String
		d.PlanID = &v
	}
	return d
}

// ToDomainMobileRechargeSlice converts a slice of model MobileRecharges.
func ToDomainMobileRechargeSlice(ms []models.MobileRecharge) []domain.MobileRecharge {
	ds := make([]domain.MobileRecharge, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMobileRecharge(m)
	}
	return ds
}
