package domain

import "github.com/shopspring/decimal"

// MonthlyFlow is one month's debit/credit totals for a user's accounts.
type MonthlyFlow struct {
	Month    string          `json:"month"` // "2025-06"
	Label    string          `json:"label"` // "Jun 2025"
	Debited  decimal.Decimal `json:"debited"`
	Credited decimal.Decimal `json:"credited"`
}

// TransactionStats summarizes successful money movement for a user.
// Only SUCCESS entries contribute; FAILED entries are audit records with no
// balance effect and are excluded from sums.
type TransactionStats struct {
	TotalDebited  decimal.Decimal `json:"totalDebited"`
	TotalCredited decimal.Decimal `json:"totalCredited"`
	NetChange     decimal.Decimal `json:"netChange"`
	Monthly       []MonthlyFlow   `json:"monthly"`
}
