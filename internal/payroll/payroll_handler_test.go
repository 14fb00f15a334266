package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-workforce/internal/payroll"

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

type fakePayrollService struct {
	runFn    func(ctx context.Context, employeeNo int64, req payroll.RunPayrollRequest) (payroll.PayrollRunResponse, error)
	ledgerFn func(ctx context.Context) ([]payroll.LedgerEntryResponse, error)
}

func (f *fakePayrollService) Run(ctx context.Context, employeeNo int64, req payroll.RunPayrollRequest) (payroll.PayrollRunResponse, error) {
	return f.runFn(ctx, employeeNo, req)
}

func (f *fakePayrollService) Ledger(ctx context.Context) ([]payroll.LedgerEntryResponse, error) {
	return f.ledgerFn(ctx)
}

func TestPayrollHandler_Run(t *testing.T) {
	svc := &fakePayrollService{
		runFn: func(ctx context.Context, employeeNo int64, req payroll.RunPayrollRequest) (payroll.PayrollRunResponse, error) {
			assert.Equal(t, int64(1001), employeeNo)
			assert.NotNil(t, req.Hours)
			return payroll.PayrollRunResponse{
				EmployeeNo: employeeNo,
				Name:       "Dana Reyes",
				GrossPay:   "937.50",
				NetPay:     "768.74",
			}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/1001", strings.NewReader(`{"hours":"37.5"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "employee_no", Value: "1001"}}

	h.Run(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var resp payroll.PayrollRunResponse
	assert.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "768.74", resp.NetPay)
}

func TestPayrollHandler_Run_InvalidEmployeeNo(t *testing.T) {
	h := payroll.NewHandler(&fakePayrollService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/zero", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "employee_no", Value: "zero"}}

	h.Run(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.NotNil(t, env.Error)
}

func TestPayrollHandler_Ledger(t *testing.T) {
	svc := &fakePayrollService{
		ledgerFn: func(ctx context.Context) ([]payroll.LedgerEntryResponse, error) {
			return []payroll.LedgerEntryResponse{
				{EmployeeNo: 1001, Name: "Dana Reyes", PaymentDate: "2026-03-15", NetPay: "768.74"},
				{EmployeeNo: 1002, Name: "Priya Shah", PaymentDate: "2026-03-01", NetPay: "4100.00"},
			}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/payroll_history", nil)

	h.Ledger(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var entries []payroll.LedgerEntryResponse
	assert.NoError(t, json.Unmarshal(env.Data, &entries))
	assert.Len(t, entries, 2)
	assert.Equal(t, "Dana Reyes", entries[0].Name)
}
