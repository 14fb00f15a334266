package payrollerrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeNo = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee number",
		http.StatusBadRequest,
	)
	ErrEmployeeInactive = apperror.New(
		apperror.CodeInvalidState,
		"Payroll cannot run for an inactive employee",
		http.StatusBadRequest,
	)
	ErrHoursRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Hours worked are required to pay an hourly employee",
		http.StatusBadRequest,
	)
	ErrNoHourlyRate = apperror.New(
		apperror.CodeInvalidState,
		"This hourly employee has no hourly rate on file",
		http.StatusBadRequest,
	)
	ErrNoSalaryConfigured = apperror.New(
		apperror.CodeInvalidState,
		"This employee's title has no monthly salary configured",
		http.StatusBadRequest,
	)
)
