package mapping

import (
	"database/sql"

	"github.com/gapy-app/gapy_backend/internal/core/domain"
	"github.com/gapy-app/gapy_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:   d.TransactionID,
		SenderAccountID: d.SenderAccountID,
		Amount:          d.Amount,
		Status:          models.TransactionStatus(d.Status),
		Reference:       d.Reference,
		Timestamp:       d.Timestamp,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	if d.ReceiverAccountID != nil {
		m.ReceiverAccountID = sql.NullString{String: *d.ReceiverAccountID, Valid: true}
	}
	if d.ReceiverLabel != nil {
		m.ReceiverLabel = sql.NullString{String: *d.ReceiverLabel, Valid: true}
	}
	return m
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID:   m.TransactionID,
		SenderAccountID: m.SenderAccountID,
		Amount:          m.Amount,
		Status:          domain.TransactionStatus(m.Status),
		Reference:       m.Reference,
		Timestamp:       m.Timestamp,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	if m.ReceiverAccountID.Valid {
		v := m.ReceiverAccountID.String
		d.ReceiverAccountID = &v
	}
	if m.ReceiverLabel.Valid {
		v := m.ReceiverLabel.String
		d.ReceiverLabel = &v
	}
	return d
}

// ToDomainTransactionSlice converts a slice of model Transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
