package department

import (
	"time"

	"github.com/shopspring/decimal"
)

// Department is a budgeted unit inside a division.
type Department struct {
	Name           string          `gorm:"primaryKey;type:varchar(80)"`
	Budget         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	DivisionName   string          `gorm:"type:varchar(80);not null;index"`
	HeadEmployeeNo *int64          `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
