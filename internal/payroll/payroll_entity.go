package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollHistory is an append-only ledger: one row per payroll run, written
// once and never updated or deleted. It is a derived audit trail, not the
// source of truth for rates or salaries.
type PayrollHistory struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	EmployeeNo  int64           `gorm:"not null;index"`
	PaymentDate time.Time       `gorm:"type:date;not null;index"`
	GrossPay    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FederalTax  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	StateTax    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	OtherTax    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	NetPay      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt   time.Time
}
