package mapping

import (
	"database/sql"

	"github.com/gapy-app/gapy_backend/internal/core/domain"
	"github.com/gapy-app/gapy_backend/internal/models"
)

// ToModelBillPayment converts a domain BillPayment to a model BillPayment.
func ToModelBillPayment(d domain.BillPayment) models.BillPayment {
	m := models.BillPayment{
		BillPaymentID:  d.BillPaymentID,
		UserID:         d.UserID,
		BillerID:       d.BillerID,
		ConsumerNumber: d.ConsumerNumber,
		NameOnBill:     d.NameOnBill,
		Period:         d.Period,
		Amount:         d.Amount,
		Status:         models.BillPaymentStatus(d.Status),
		ProviderTxn:    d.ProviderTxn,
		CreatedAt:      d.CreatedAt,
	}
	if d.DueDate != nil {
		m.DueDate = sql.NullTime{Time: *d.DueDate, Valid: true}
	}
	if d.PaidOn != nil {
		m.PaidOn = sql.NullTime{Time: *d.PaidOn, Valid: true}
	}
	if d.ReminderDate != nil {
		m.ReminderDate = sql.NullTime{Time: *d.ReminderDate, Valid: true}
	}
	return m
}

// ToDomainBillPayment converts a model BillPayment to a domain BillPayment.
func ToDomainBillPayment(m models.BillPayment) domain.BillPayment {
	d := domain.BillPayment{
		BillPaymentID:  m.BillPaymentID,
		UserID:         m.UserID,
		BillerID:       m.BillerID,
		ConsumerNumber: m.ConsumerNumber,
		NameOnBill:     m.NameOnBill,
		Period:         m.Period,
		Amount:         m.Amount,
		Status:         domain.BillPaymentStatus(m.Status),
		ProviderTxn:    m.ProviderTxn,
		CreatedAt:      m.CreatedAt,
	}
	if m.DueDate.Valid {
		t := m.DueDate.Time
		d.DueDate = &t
	}
	if m.PaidOn.Valid {
		t := m.PaidOn.Time
		d.PaidOn = &t
	}
	if m.ReminderDate.Valid {
		t := m.ReminderDate.Time
		d.ReminderDate = &t
	}
	return d
}

// ToDomainBillPaymentSlice converts a slice of model BillPayments.
func ToDomainBillPaymentSlice(ms []models.BillPayment) []domain.BillPayment {
	ds := make([]domain.BillPayment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBillPayment(m)
	}
	return ds
}
