package mapping

import (
	"github.com/gapy-app/gapy_backend/internal/core/domain"
	"github.com/gapy-app/gapy_backend/internal/models"
)

// ToDomainSavedPayee converts a model SavedPayee to a domain SavedPayee.
func ToDomainSavedPayee(m models.SavedPayee) domain.SavedPayee {
	return domain.SavedPayee{
		SavedPayeeID: m.SavedPayeeID,
		OwnerUserID:  m.OwnerUserID,
		AccountID:    m.AccountID,
		AddedAt:      m.AddedAt,
		HolderName:   m.HolderName,
		BankName:     m.BankName,
		UPIID:        m.UPIID,
		Mobile:       m.Mobile,
	}
}

// ToDomainSavedPayeeSlice converts a slice of model SavedPayees.
func ToDomainSavedPayeeSlice(ms []models.SavedPayee) []domain.SavedPayee {
	ds := make([]domain.SavedPayee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSavedPayee(m)
	}
	return ds
}
