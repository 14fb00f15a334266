package facility

type Building struct {
	Name    string `gorm:"primaryKey;type:varchar(80)"`
	Address string `gorm:"type:varchar(200);not null"`
}

type Room struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	BuildingName string `gorm:"type:varchar(80);not null;uniqueIndex:uq_rooms_building_number"`
	Number       string `gorm:"type:varchar(20);not null;uniqueIndex:uq_rooms_building_number"`
}

// EmployeeRoom is the employee's office assignment. The employee number as
// primary key keeps each employee in at most one room.
type EmployeeRoom struct {
	EmployeeNo int64 `gorm:"primaryKey;autoIncrement:false"`
	RoomID     int64 `gorm:"not null"`
}

// DepartmentRoom is the department's office assignment, one room at most.
type DepartmentRoom struct {
	DepartmentName string `gorm:"primaryKey;type:varchar(80)"`
	RoomID         int64  `gorm:"not null"`
}
