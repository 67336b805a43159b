package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// BillPaymentStatus mirrors the status enum on the bill_payments table.
type BillPaymentStatus string

const (
	BillPending BillPaymentStatus = "PENDING"
	BillSuccess BillPaymentStatus = "SUCCESS"
	BillFailed  BillPaymentStatus = "FAILED"
)

// BillPayment represents a bill_payments row.
type BillPayment struct {
	BillPaymentID  string            `db:"bill_payment_id"`
	UserID         string            `db:"user_id"`
	BillerID       string            `db:"biller_id"`
	ConsumerNumber string            `db:"consumer_number"`
	NameOnBill     string            `db:"name_on_bill"`
	Period         string            `db:"period"`
	Amount         decimal.Decimal   `db:"amount"`
	DueDate        sql.NullTime      `db:"due_date"`
	Status         BillPaymentStatus `db:"status"`
	ProviderTxn    string            `db:"provider_txn"`
	PaidOn         sql.NullTime      `db:"paid_on"`
	ReminderDate   sql.NullTime      `db:"reminder_date"`
	CreatedAt      time.Time         `db:"created_at"`
}
