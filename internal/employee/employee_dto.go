package employee

import "github.com/shopspring/decimal"

type CreateEmployeeRequest struct {
	Name           string           `json:"name" binding:"required"`
	Phone          string           `json:"phone"`
	Title          string           `json:"title" binding:"required"`
	DepartmentName string           `json:"department_name"`
	DivisionName   string           `json:"division_name"`
	PayType        string           `json:"pay_type" binding:"required,oneof=hourly salaried"`
	HourlyRate     *decimal.Decimal `json:"hourly_rate"`
	// MonthlySalary seeds the title's salary when the submitted title does
	// not exist yet; ignored for titles already on file.
	MonthlySalary *decimal.Decimal `json:"monthly_salary"`
}

type UpdateEmployeeRequest struct {
	Name           string           `json:"name" binding:"required"`
	Phone          string           `json:"phone"`
	Title          string           `json:"title" binding:"required"`
	DepartmentName string           `json:"department_name"`
	DivisionName   string           `json:"division_name"`
	PayType        string           `json:"pay_type" binding:"required,oneof=hourly salaried"`
	HourlyRate     *decimal.Decimal `json:"hourly_rate"`
	MonthlySalary  *decimal.Decimal `json:"monthly_salary"`
}

type EmployeeResponse struct {
	EmployeeNo     int64  `json:"employee_no"`
	Name           string `json:"name"`
	Phone          string `json:"phone,omitempty"`
	Title          string `json:"title"`
	DepartmentName string `json:"department_name,omitempty"`
	DivisionName   string `json:"division_name,omitempty"`
	PayType        string `json:"pay_type"`
	HourlyRate     string `json:"hourly_rate,omitempty"`
	IsActive       bool   `json:"is_active"`
}

// RosterAssignment is one open project assignment on the HR dashboard.
type RosterAssignment struct {
	ProjectNo   int64  `json:"project_no"`
	Role        string `json:"role"`
	DateStarted string `json:"date_started"`
}

type RosterEntry struct {
	EmployeeResponse
	OpenAssignments []RosterAssignment `json:"open_assignments"`
}

// EmployeeFormOptions is the data bag behind the add/edit employee form.
type EmployeeFormOptions struct {
	Titles      any `json:"titles"`
	Divisions   any `json:"divisions"`
	Departments any `json:"departments"`
}
