package services

import "context"

// QRSvcFacade renders receive-money QR codes for a user's accounts.
type QRSvcFacade interface {
	// GenerateAccountQR renders a PNG QR code encoding the account's
	// receive-money payload, after checking the user owns the account.
	GenerateAccountQR(ctx context.Context, userID, accountID string, size int) ([]byte, error)
}
