package mapping

import (
	"github.com/gapy-app/gapy_backend/internal/core/domain"
	"github.com/gapy-app/gapy_backend/internal/models"
)

// ToModelBankAccount converts a domain BankAccount to a model BankAccount.
func ToModelBankAccount(d domain.BankAccount) models.BankAccount {
	return models.BankAccount{
		AccountID:     d.AccountID,
		UserID:        d.UserID,
		HolderName:    d.HolderName,
		BankName:      d.BankName,
		Branch:        d.Branch,
		AccountNumber: d.AccountNumber,
		IFSC:          d.IFSC,
		Mobile:        d.Mobile,
		UPIID:         d.UPIID,
		Balance:       d.Balance,
		PINHash:       d.PINHash,
		PINEnabled:    d.PINEnabled,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankAccount converts a model BankAccount to a domain BankAccount.
func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		AccountID:     m.AccountID,
		UserID:        m.UserID,
		HolderName:    m.HolderName,
		BankName:      m.BankName,
		Branch:        m.Branch,
		AccountNumber: m.AccountNumber,
		IFSC:          m.IFSC,
		Mobile:        m.Mobile,
		UPIID:         m.UPIID,
		Balance:       m.Balance,
		PINHash:       m.PINHash,
		PINEnabled:    m.PINEnabled,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBankAccountSlice converts a slice of model BankAccounts.
func ToDomainBankAccountSlice(ms []models.BankAccount) []domain.BankAccount {
	ds := make([]domain.BankAccount, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBankAccount(m)
	}
	return ds
}
