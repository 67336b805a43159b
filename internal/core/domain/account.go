package domain

import (
	"github.com/shopspring/decimal"
)

// BankAccount represents a bank account linked by a user. Each account carries
// its own balance and its own transaction PIN, independent of the user's login
// credentials.
//
// Invariant: Balance is never negative. Only the ledger repository mutates it,
// under an exclusive row hold, except for the explicit top-up path.
type BankAccount struct {
	AccountID     string          `json:"accountID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`    // Owning user
	HolderName    string          `json:"holderName"`
	BankName      string          `json:"bankName"`
	Branch        string          `json:"branch"`
	AccountNumber string          `json:"accountNumber"`
	IFSC          string          `json:"ifsc"`
	Mobile        string          `json:"mobile"`
	UPIID         string          `json:"upiID"` // Unique payment address, e.g. "alice.sbi1234@gapy"
	Balance       decimal.Decimal `json:"balance"`
	PINHash       string          `json:"-"` // bcrypt hash; never serialized
	PINEnabled    bool            `json:"pinEnabled"`
	AuditFields
}

// HasPIN reports whether a usable transaction PIN is set on the account.
func (a *BankAccount) HasPIN() bool {
	return a.PINEnabled && a.PINHash != ""
}
