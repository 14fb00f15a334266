package employee

import (
	"context"
	"net/http"
	"strconv"

	employeeerrors "go-workforce/internal/employee/errors"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OptionsSource feeds the add/edit form with the dropdown data owned by the
// title, division, and department modules; the app registry wires it up.
type OptionsSource interface {
	TitleOptions(ctx context.Context) (any, error)
	DivisionOptions(ctx context.Context) (any, error)
	DepartmentOptions(ctx context.Context) (any, error)
}

type Handler struct {
	service Service
	options OptionsSource
	logger  *zap.Logger
}

func NewHandler(service Service, options OptionsSource, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, options: options, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func employeeNoParam(c *gin.Context) (int64, error) {
	no, err := strconv.ParseInt(c.Param("employee_no"), 10, 64)
	if err != nil || no <= 0 {
		return 0, employeeerrors.ErrInvalidEmployeeNo
	}
	return no, nil
}

// Roster serves the HR dashboard: active employees and what they are
// currently staffed on.
func (h *Handler) Roster(c *gin.Context) {
	resp, err := h.service.Roster(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// AddEmployeeForm serves the data bag the create form renders from.
func (h *Handler) AddEmployeeForm(c *gin.Context) {
	ctx := c.Request.Context()

	var opts EmployeeFormOptions
	if h.options != nil {
		var err error
		if opts.Titles, err = h.options.TitleOptions(ctx); err != nil {
			h.writeServiceError(c, err)
			return
		}
		if opts.Divisions, err = h.options.DivisionOptions(ctx); err != nil {
			h.writeServiceError(c, err)
			return
		}
		if opts.Departments, err = h.options.DepartmentOptions(ctx); err != nil {
			h.writeServiceError(c, err)
			return
		}
	}

	response.Success(c, http.StatusOK, opts)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, "Employee hired", resp)
}

func (h *Handler) GetByNo(c *gin.Context) {
	no, err := employeeNoParam(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetByNo(c.Request.Context(), no)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Update(c *gin.Context) {
	no, err := employeeNoParam(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update employee validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), no, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "Employee updated", resp)
}

func (h *Handler) Deactivate(c *gin.Context) {
	no, err := employeeNoParam(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), no); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "Employee deactivated", gin.H{"employee_no": no, "is_active": false})
}
