package project

import (
	"context"
	"net/http"
	"strconv"

	projecterrors "go-workforce/internal/project/errors"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OptionsSource feeds the create-project form with the employees who can
// be picked as manager. Wired up in the app registry.
type OptionsSource interface {
	EmployeeOptions(ctx context.Context) (any, error)
}

type Handler struct {
	service Service
	options OptionsSource
	logger  *zap.Logger
}

func NewHandler(service Service, options OptionsSource, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("project.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.handler")
	}
	return &Handler{service: service, options: options, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("project request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func projectNoParam(c *gin.Context) (int64, error) {
	no, err := strconv.ParseInt(c.Param("project_no"), 10, 64)
	if err != nil || no <= 0 {
		return 0, projecterrors.ErrInvalidProjectNo
	}
	return no, nil
}

// Dashboard serves the manager's overview of every project with its
// aggregate stats.
func (h *Handler) Dashboard(c *gin.Context) {
	resp, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Detail serves one project with its team and milestones.
func (h *Handler) Detail(c *gin.Context) {
	no, err := projectNoParam(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetDetail(c.Request.Context(), no)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// CreateForm serves the option lists backing the create-project form.
func (h *Handler) CreateForm(c *gin.Context) {
	employees, err := h.options.EmployeeOptions(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"employees": employees})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create project validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, "Project created", resp)
}

func (h *Handler) Complete(c *gin.Context) {
	no, err := projectNoParam(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.Complete(c.Request.Context(), no)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	msg := "Project completed"
	if resp.AlreadyCompleted {
		msg = "Project was already completed"
	}
	response.SuccessWithMessage(c, http.StatusOK, msg, resp)
}

func (h *Handler) AddMilestone(c *gin.Context) {
	no, err := projectNoParam(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req AddMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http add milestone validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.AddMilestone(c.Request.Context(), no, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, "Milestone logged", resp)
}

func (h *Handler) AddTeamMember(c *gin.Context) {
	no, err := projectNoParam(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req AddTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http add team member validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.AddTeamMember(c.Request.Context(), no, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, "Team member added", resp)
}
