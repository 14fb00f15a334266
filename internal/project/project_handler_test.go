package project_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-workforce/internal/project"
	projecterrors "go-workforce/internal/project/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok      bool            `json:"ok"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeProjectService struct {
	createFn        func(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error)
	completeFn      func(ctx context.Context, projectNo int64) (project.CompleteProjectResponse, error)
	addMilestoneFn  func(ctx context.Context, projectNo int64, req project.AddMilestoneRequest) (project.MilestoneResponse, error)
	addTeamMemberFn func(ctx context.Context, projectNo int64, req project.AddTeamMemberRequest) (project.TeamMemberResponse, error)
	getDetailFn     func(ctx context.Context, projectNo int64) (project.ProjectDetailResponse, error)
	dashboardFn     func(ctx context.Context) ([]project.DashboardEntry, error)
}

func (f *fakeProjectService) Create(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeProjectService) Complete(ctx context.Context, projectNo int64) (project.CompleteProjectResponse, error) {
	return f.completeFn(ctx, projectNo)
}

func (f *fakeProjectService) AddMilestone(ctx context.Context, projectNo int64, req project.AddMilestoneRequest) (project.MilestoneResponse, error) {
	return f.addMilestoneFn(ctx, projectNo, req)
}

func (f *fakeProjectService) AddTeamMember(ctx context.Context, projectNo int64, req project.AddTeamMemberRequest) (project.TeamMemberResponse, error) {
	return f.addTeamMemberFn(ctx, projectNo, req)
}

func (f *fakeProjectService) GetDetail(ctx context.Context, projectNo int64) (project.ProjectDetailResponse, error) {
	return f.getDetailFn(ctx, projectNo)
}

func (f *fakeProjectService) Dashboard(ctx context.Context) ([]project.DashboardEntry, error) {
	return f.dashboardFn(ctx)
}

type fakeOptionsSource struct{}

func (fakeOptionsSource) EmployeeOptions(ctx context.Context) (any, error) {
	return []string{"Dana Reyes"}, nil
}

func TestProjectHandler_Create(t *testing.T) {
	svc := &fakeProjectService{
		createFn: func(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
			assert.Equal(t, int64(7), req.ProjectNo)
			assert.Equal(t, int64(1001), req.ManagerEmployeeNo)
			return project.ProjectResponse{ProjectNo: 7, Active: true}, nil
		},
	}

	h := project.NewHandler(svc, fakeOptionsSource{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"project_no":7,"budget":"150000.00","date_started":"2026-04-01","manager_employee_no":1001}`
	c.Request = httptest.NewRequest(http.MethodPost, "/create_project", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestProjectHandler_Create_ManagerConflict(t *testing.T) {
	svc := &fakeProjectService{
		createFn: func(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
			return project.ProjectResponse{}, projecterrors.ErrManagerHasActiveProject
		},
	}

	h := project.NewHandler(svc, fakeOptionsSource{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"project_no":7,"date_started":"2026-04-01","manager_employee_no":1001}`
	c.Request = httptest.NewRequest(http.MethodPost, "/create_project", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.NotNil(t, env.Error)
}

func TestProjectHandler_Complete_NoOpMessage(t *testing.T) {
	svc := &fakeProjectService{
		completeFn: func(ctx context.Context, projectNo int64) (project.CompleteProjectResponse, error) {
			return project.CompleteProjectResponse{
				ProjectNo:        projectNo,
				DateEnded:        "2026-02-10",
				AlreadyCompleted: true,
			}, nil
		},
	}

	h := project.NewHandler(svc, fakeOptionsSource{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/complete_project/7", nil)
	c.Params = gin.Params{{Key: "project_no", Value: "7"}}

	h.Complete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
	assert.Equal(t, "Project was already completed", env.Message)
}

func TestProjectHandler_Detail_InvalidNumber(t *testing.T) {
	h := project.NewHandler(&fakeProjectService{}, fakeOptionsSource{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/project/abc", nil)
	c.Params = gin.Params{{Key: "project_no", Value: "abc"}}

	h.Detail(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
}

func TestProjectHandler_CreateForm(t *testing.T) {
	h := project.NewHandler(&fakeProjectService{}, fakeOptionsSource{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/create_project", nil)

	h.CreateForm(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var data map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Contains(t, data, "employees")
}
