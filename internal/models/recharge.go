package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// RechargeStatus mirrors the status enum on the recharges table.
type RechargeStatus string

const (
	RechargePending RechargeStatus = "PENDING"
	RechargeSuccess RechargeStatus = "SUCCESS"
	RechargeFailed  RechargeStatus = "FAILED"
)

// MobileRecharge represents a recharges row.
type MobileRecharge struct {
	RechargeID  string          `db:"recharge_id"`
	UserID      string          `db:"user_id"`
	Mobile      string          `db:"mobile"`
	OperatorID  string          `db:"operator_id"`
	Circle      string          `db:"circle"`
	PlanID      sql.NullString  `db:"plan_id"`
	Amount      decimal.Decimal `db:"amount"`
	Status      RechargeStatus  `db:"status"`
	ProviderTxn string          `db:"provider_txn"`
	CreatedAt   time.Time       `db:"created_at"`
}
