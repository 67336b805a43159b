package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus mirrors the status enum on the transactions table.
type TransactionStatus string

const (
	TxnSuccess TransactionStatus = "SUCCESS"
	TxnFailed  TransactionStatus = "FAILED"
)

// Transaction represents a transactions row. Rows are write-once: no code
// path updates or deletes them after insert.
type Transaction struct {
	TransactionID     string            `db:"transaction_id"`
	SenderAccountID   string            `db:"sender_account_id"`
	ReceiverAccountID sql.NullString    `db:"receiver_account_id"`
	ReceiverLabel     sql.NullString    `db:"receiver_label"`
	Amount            decimal.Decimal   `db:"amount"`
	Status            TransactionStatus `db:"status"`
	Reference         string            `db:"reference"`
	Timestamp         time.Time         `db:"timestamp"`
	AuditFields
}
