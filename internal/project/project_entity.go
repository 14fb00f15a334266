package project

import (
	"time"

	"github.com/shopspring/decimal"
)

const ManagerRole = "Project Manager"

// Project numbers are caller-supplied, not generated. DateEnded nil means
// the project is live; a project is closed by setting the date, never by
// deleting the row.
type Project struct {
	ProjectNo         int64           `gorm:"primaryKey;autoIncrement:false"`
	Budget            decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	DateStarted       time.Time       `gorm:"type:date;not null"`
	DateEnded         *time.Time      `gorm:"type:date;index"`
	ManagerEmployeeNo int64           `gorm:"not null;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ProjectAssignment links an employee to a project. A nil DateEnded marks a
// current team member. The surrogate id (rather than a composite key) lets
// an employee serve a second stint on the same project after a closed one;
// only one open row per employee and project is allowed, and the service
// guards that.
type ProjectAssignment struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	ProjectNo   int64           `gorm:"not null;index"`
	EmployeeNo  int64           `gorm:"not null;index"`
	Role        string          `gorm:"type:varchar(80);not null"`
	HoursWorked decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	DateStarted time.Time       `gorm:"type:date;not null"`
	DateEnded   *time.Time      `gorm:"type:date"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectMilestone is an append-only log line on a project.
type ProjectMilestone struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	ProjectNo   int64     `gorm:"not null;index"`
	Description string    `gorm:"type:text;not null"`
	DateLogged  time.Time `gorm:"type:date;not null"`
	CreatedAt   time.Time
}
