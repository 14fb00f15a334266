package title

import (
	"time"

	"github.com/shopspring/decimal"
)

// Title is the catalog of job titles. MonthlySalary is only meaningful for
// salaried employees; titles created for hourly staff carry zero.
type Title struct {
	Name          string          `gorm:"primaryKey;type:varchar(80)"`
	MonthlySalary decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
