package facility

type CreateBuildingRequest struct {
	Name    string `json:"name" binding:"required,max=80"`
	Address string `json:"address" binding:"required,max=200"`
}

type CreateRoomRequest struct {
	BuildingName string `json:"building_name" binding:"required,max=80"`
	Number       string `json:"number" binding:"required,max=20"`
}

type AssignEmployeeRoomRequest struct {
	EmployeeNo int64 `json:"employee_no" binding:"required"`
	RoomID     int64 `json:"room_id" binding:"required"`
}

type AssignDepartmentRoomRequest struct {
	DepartmentName string `json:"department_name" binding:"required,max=80"`
	RoomID         int64  `json:"room_id" binding:"required"`
}

type BuildingResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// RoomResponse carries the room with its current occupants for list views.
type RoomResponse struct {
	ID           int64  `json:"id"`
	BuildingName string `json:"building_name"`
	Number       string `json:"number"`
}

type EmployeeRoomResponse struct {
	EmployeeNo int64 `json:"employee_no"`
	RoomID     int64 `json:"room_id"`
}

type DepartmentRoomResponse struct {
	DepartmentName string `json:"department_name"`
	RoomID         int64  `json:"room_id"`
}
