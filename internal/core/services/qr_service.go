package services

import (
	"context"
	"fmt"
	"net/url"

	portsrepo "github.com/gapy-app/gapy_backend/internal/core/ports/repositories"
	portssvc "github.com/gapy-app/gapy_backend/internal/core/ports/services"
	"github.com/gapy-app/gapy_backend/internal/apperrors"
	qrcode "github.com/skip2/go-qrcode"
)

// qrService renders receive-money QR codes for a user's accounts.
type qrService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewQRService creates a new QRService.
func NewQRService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.QRSvcFacade {
	return &qrService{accountRepo: accountRepo}
}

var _ portssvc.QRSvcFacade = (*qrService)(nil)

// GenerateAccountQR renders a PNG QR code encoding the account's
// receive-money payload. Payload shape: gapy://bank?bank_id=<id>&name=<holder>
func (s *qrService) GenerateAccountQR(ctx context.Context, userID, accountID string, size int) ([]byte, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.UserID != userID {
		return nil, apperrors.ErrForbidden
	}

	if size <= 0 {
		size = 256
	}

	payload := fmt.Sprintf("gapy://bank?bank_id=%s&name=%s", account.AccountID, url.QueryEscape(account.HolderName))
	png, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}
