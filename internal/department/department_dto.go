package department

import "github.com/shopspring/decimal"

type CreateDepartmentRequest struct {
	Name           string          `json:"name" binding:"required"`
	Budget         decimal.Decimal `json:"budget"`
	DivisionName   string          `json:"division_name" binding:"required"`
	HeadEmployeeNo *int64          `json:"head_employee_no"`
}

type UpdateDepartmentRequest struct {
	Budget         decimal.Decimal `json:"budget"`
	HeadEmployeeNo *int64          `json:"head_employee_no"`
}

type DepartmentResponse struct {
	Name           string `json:"name"`
	Budget         string `json:"budget"`
	DivisionName   string `json:"division_name"`
	HeadEmployeeNo *int64 `json:"head_employee_no,omitempty"`
	HeadName       string `json:"head_name,omitempty"`
}
