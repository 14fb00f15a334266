package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-workforce/internal/employee"
	employeeerrors "go-workforce/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeEmployeeService struct {
	createFn     func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	rosterFn     func(ctx context.Context) ([]employee.RosterEntry, error)
	getOptionsFn func(ctx context.Context) ([]employee.EmployeeResponse, error)
	getByNoFn    func(ctx context.Context, employeeNo int64) (employee.EmployeeResponse, error)
	updateFn     func(ctx context.Context, employeeNo int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	deactivateFn func(ctx context.Context, employeeNo int64) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeEmployeeService) Roster(ctx context.Context) ([]employee.RosterEntry, error) {
	return f.rosterFn(ctx)
}

func (f *fakeEmployeeService) GetOptions(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.getOptionsFn(ctx)
}

func (f *fakeEmployeeService) GetByNo(ctx context.Context, employeeNo int64) (employee.EmployeeResponse, error) {
	return f.getByNoFn(ctx, employeeNo)
}

func (f *fakeEmployeeService) Update(ctx context.Context, employeeNo int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.updateFn(ctx, employeeNo, req)
}

func (f *fakeEmployeeService) Deactivate(ctx context.Context, employeeNo int64) error {
	return f.deactivateFn(ctx, employeeNo)
}

type fakeOptionsSource struct{}

func (fakeOptionsSource) TitleOptions(ctx context.Context) (any, error) {
	return []string{"Engineer"}, nil
}

func (fakeOptionsSource) DivisionOptions(ctx context.Context) (any, error) {
	return []string{"Operations"}, nil
}

func (fakeOptionsSource) DepartmentOptions(ctx context.Context) (any, error) {
	return []string{"Accounting"}, nil
}

func TestEmployeeHandler_Create(t *testing.T) {
	svc := &fakeEmployeeService{
		createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
			assert.Equal(t, "Dana Reyes", req.Name)
			assert.Equal(t, "salaried", req.PayType)
			return employee.EmployeeResponse{EmployeeNo: 1001, Name: req.Name, Title: req.Title, PayType: req.PayType, IsActive: true}, nil
		},
	}

	h := employee.NewHandler(svc, fakeOptionsSource{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"name":"Dana Reyes","title":"Engineer","pay_type":"salaried","division_name":"Operations"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/add_employee", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var resp employee.EmployeeResponse
	assert.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, int64(1001), resp.EmployeeNo)
}

func TestEmployeeHandler_Create_MissingPayType(t *testing.T) {
	h := employee.NewHandler(&fakeEmployeeService{}, fakeOptionsSource{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"name":"Dana Reyes","title":"Engineer"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/add_employee", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.NotNil(t, env.Error)
}

func TestEmployeeHandler_AddEmployeeForm(t *testing.T) {
	h := employee.NewHandler(&fakeEmployeeService{}, fakeOptionsSource{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/add_employee", nil)

	h.AddEmployeeForm(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var opts employee.EmployeeFormOptions
	assert.NoError(t, json.Unmarshal(env.Data, &opts))
	assert.NotNil(t, opts.Titles)
	assert.NotNil(t, opts.Divisions)
	assert.NotNil(t, opts.Departments)
}

func TestEmployeeHandler_Deactivate_UnitHead(t *testing.T) {
	svc := &fakeEmployeeService{
		deactivateFn: func(ctx context.Context, employeeNo int64) error {
			return employeeerrors.ErrEmployeeIsUnitHead
		},
	}

	h := employee.NewHandler(svc, fakeOptionsSource{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/fire_employee/1001", nil)
	c.Params = gin.Params{{Key: "employee_no", Value: "1001"}}

	h.Deactivate(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
}

func TestEmployeeHandler_Roster(t *testing.T) {
	svc := &fakeEmployeeService{
		rosterFn: func(ctx context.Context) ([]employee.RosterEntry, error) {
			return []employee.RosterEntry{
				{
					EmployeeResponse: employee.EmployeeResponse{EmployeeNo: 1001, Name: "Dana Reyes", IsActive: true},
					OpenAssignments:  []employee.RosterAssignment{{ProjectNo: 7, Role: "Project Manager"}},
				},
			}, nil
		},
	}

	h := employee.NewHandler(svc, fakeOptionsSource{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/hr_dashboard", nil)

	h.Roster(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var entries []employee.RosterEntry
	assert.NoError(t, json.Unmarshal(env.Data, &entries))
	assert.Len(t, entries, 1)
	assert.Len(t, entries[0].OpenAssignments, 1)
}
