package title

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrTitleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Title not found",
		http.StatusNotFound,
	)
	ErrTitleAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A title with this name already exists",
		http.StatusConflict,
	)
	ErrNegativeSalary = apperror.New(
		apperror.CodeInvalidInput,
		"Monthly salary cannot be negative",
		http.StatusBadRequest,
	)
)
