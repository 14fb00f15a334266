package payroll

import (
	"net/http"
	"strconv"

	payrollerrors "go-workforce/internal/payroll/errors"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("payroll.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("payroll request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Run processes one payroll run for the employee in the path.
func (h *Handler) Run(c *gin.Context) {
	no, err := strconv.ParseInt(c.Param("employee_no"), 10, 64)
	if err != nil || no <= 0 {
		h.writeServiceError(c, payrollerrors.ErrInvalidEmployeeNo)
		return
	}

	var req RunPayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http payroll run validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Run(c.Request.Context(), no, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, "Payroll recorded", resp)
}

// Ledger serves the full payroll history, newest payment first.
func (h *Handler) Ledger(c *gin.Context) {
	resp, err := h.service.Ledger(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
