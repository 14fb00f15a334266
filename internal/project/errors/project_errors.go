package projecterrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project not found",
		http.StatusNotFound,
	)
	ErrInvalidProjectNo = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid project number",
		http.StatusBadRequest,
	)
	ErrDuplicateProject = apperror.New(
		apperror.CodeConflict,
		"A project with this number already exists",
		http.StatusConflict,
	)
	ErrManagerNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"The chosen manager is not an active employee",
		http.StatusBadRequest,
	)
	ErrManagerHasActiveProject = apperror.New(
		apperror.CodeConflict,
		"This manager already runs an active project",
		http.StatusConflict,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"The chosen employee is not an active employee",
		http.StatusBadRequest,
	)
	ErrAlreadyAssigned = apperror.New(
		apperror.CodeConflict,
		"This employee is already on the project team",
		http.StatusConflict,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
