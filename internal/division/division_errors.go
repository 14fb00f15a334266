package division

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrDivisionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Division not found",
		http.StatusNotFound,
	)
	ErrDivisionAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A division with this name already exists",
		http.StatusConflict,
	)
	ErrHeadNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"The chosen head is not an active employee",
		http.StatusBadRequest,
	)
)
