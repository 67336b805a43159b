package models

import "time"

// SavedPayee represents a saved_payees row joined with the target account's
// display columns.
type SavedPayee struct {
	SavedPayeeID string    `db:"saved_payee_id"`
	OwnerUserID  string    `db:"owner_user_id"`
	AccountID    string    `db:"account_id"`
	AddedAt      time.Time `db:"added_at"`

	// Joined from bank_accounts.
	HolderName string `db:"holder_name"`
	BankName   string `db:"bank_name"`
	UPIID      string `db:"upi_id"`
	Mobile     string `db:"mobile"`
}
