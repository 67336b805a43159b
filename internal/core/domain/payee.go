package domain

import "time"

// SavedPayee is an entry in a user's personal payee list, pointing at a
// linked bank account that can receive transfers.
type SavedPayee struct {
	SavedPayeeID string    `json:"savedPayeeID"`
	OwnerUserID  string    `json:"ownerUserID"`
	AccountID    string    `json:"accountID"`
	AddedAt      time.Time `json:"addedAt"`

	// Denormalized account fields for list views.
	HolderName string `json:"holderName"`
	BankName   string `json:"bankName"`
	UPIID      string `json:"upiID"`
	Mobile     string `json:"mobile"`
}
