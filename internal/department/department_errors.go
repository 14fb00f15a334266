package department

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrDepartmentAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A department with this name already exists",
		http.StatusConflict,
	)
	ErrDivisionNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"The parent division does not exist",
		http.StatusBadRequest,
	)
	ErrHeadNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"The chosen head is not an active employee",
		http.StatusBadRequest,
	)
	ErrNegativeBudget = apperror.New(
		apperror.CodeInvalidInput,
		"Budget cannot be negative",
		http.StatusBadRequest,
	)
)
