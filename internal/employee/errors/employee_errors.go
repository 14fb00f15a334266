package employeeerrors

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
	ErrAmbiguousAffiliation = apperror.New(
		apperror.CodeInvalidInput,
		"An employee belongs to a department or a division, not both",
		http.StatusBadRequest,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"The chosen department does not exist",
		http.StatusBadRequest,
	)
	ErrDivisionNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"The chosen division does not exist",
		http.StatusBadRequest,
	)
	ErrHourlyRateRequired = apperror.New(
		apperror.CodeInvalidInput,
		"An hourly employee needs an hourly rate",
		http.StatusBadRequest,
	)
	ErrEmployeeIsUnitHead = apperror.New(
		apperror.CodeInvalidState,
		"This employee heads a division or department and cannot be deactivated",
		http.StatusConflict,
	)
	ErrEmployeeAlreadyInactive = apperror.New(
		apperror.CodeInvalidState,
		"This employee is already inactive",
		http.StatusConflict,
	)
	ErrEmployeeNumberTaken = apperror.New(
		apperror.CodeConflict,
		"An employee with this number already exists",
		http.StatusConflict,
	)
)
