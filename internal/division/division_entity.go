package division

import "time"

// Division is a top-level organizational unit. HeadEmployeeNo is the employee
// recorded as its leader; a set head blocks that employee's deactivation.
type Division struct {
	Name           string `gorm:"primaryKey;type:varchar(80)"`
	HeadEmployeeNo *int64 `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
