package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is never hard-deleted; IsActive flips to false on termination so
// payroll history and project assignments keep a valid reference.
type Employee struct {
	EmployeeNo     int64   `gorm:"primaryKey;autoIncrement:false"`
	Name           string  `gorm:"type:varchar(120);not null"`
	Phone          string  `gorm:"type:varchar(30)"`
	TitleName      string  `gorm:"type:varchar(80);not null;index"`
	DepartmentName *string `gorm:"type:varchar(80);index"`
	DivisionName   *string `gorm:"type:varchar(80);index"`
	// Hourly selects the pay scheme: hourly rate times submitted hours, or
	// the title's monthly salary.
	Hourly     bool             `gorm:"not null;default:false"`
	HourlyRate *decimal.Decimal `gorm:"type:decimal(10,2)"`
	IsActive   bool             `gorm:"not null;default:true;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Affiliation lifts the two nullable columns back into the union.
func (e *Employee) Affiliation() Affiliation {
	switch {
	case e.DepartmentName != nil:
		return DepartmentAffiliation(*e.DepartmentName)
	case e.DivisionName != nil:
		return DivisionAffiliation(*e.DivisionName)
	default:
		return NoAffiliation()
	}
}

// SetAffiliation writes the union down to the columns, clearing the other side.
func (e *Employee) SetAffiliation(a Affiliation) {
	e.DepartmentName, e.DivisionName = a.columns()
}
