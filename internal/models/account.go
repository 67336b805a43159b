package models

import (
	"github.com/shopspring/decimal"
)

// BankAccount represents a bank_accounts row.
type BankAccount struct {
	AccountID     string          `db:"account_id"`
	UserID        string          `db:"user_id"`
	HolderName    string          `db:"holder_name"`
	BankName      string          `db:"bank_name"`
	Branch        string          `db:"branch"`
	AccountNumber string          `db:"account_number"`
	IFSC          string          `db:"ifsc"`
	Mobile        string          `db:"mobile"`
	UPIID         string          `db:"upi_id"`
	Balance       decimal.Decimal `db:"balance"`
	PINHash       string          `db:"pin_hash"`
	PINEnabled    bool            `db:"pin_enabled"`
	AuditFields
}
