package division

type CreateDivisionRequest struct {
	Name           string `json:"name" binding:"required"`
	HeadEmployeeNo *int64 `json:"head_employee_no"`
}

type UpdateDivisionRequest struct {
	HeadEmployeeNo *int64 `json:"head_employee_no"`
}

type DivisionResponse struct {
	Name           string `json:"name"`
	HeadEmployeeNo *int64 `json:"head_employee_no,omitempty"`
	HeadName       string `json:"head_name,omitempty"`
}
