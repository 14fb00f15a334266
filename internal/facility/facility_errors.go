package facility

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrBuildingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Building not found",
		http.StatusNotFound,
	)
	ErrBuildingAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A building with this name already exists",
		http.StatusConflict,
	)
	ErrRoomNotFound = apperror.New(
		apperror.CodeNotFound,
		"Room not found",
		http.StatusNotFound,
	)
	ErrRoomAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"This building already has a room with this number",
		http.StatusConflict,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"The chosen employee is not an active employee",
		http.StatusBadRequest,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Department not found",
		http.StatusBadRequest,
	)
)
