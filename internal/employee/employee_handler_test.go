package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"leavedesk/internal/employee"
	employeeerrors "leavedesk/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
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

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeEmployeeService struct {
	registerFn    func(ctx context.Context, req employee.RegisterRequest) (employee.EmployeeResponse, error)
	getAllFn      func(ctx context.Context) ([]employee.EmployeeResponse, error)
	getByIDFn     func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	getByEmailFn  func(ctx context.Context, email string) (employee.EmployeeResponse, error)
	getManagersFn func(ctx context.Context) ([]employee.EmployeeResponse, error)
	getReportsFn  func(ctx context.Context, managerID string) ([]employee.EmployeeResponse, error)
}

func (f *fakeEmployeeService) Register(ctx context.Context, req employee.RegisterRequest) (employee.EmployeeResponse, error) {
	return f.registerFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeEmployeeService) GetByEmail(ctx context.Context, email string) (employee.EmployeeResponse, error) {
	return f.getByEmailFn(ctx, email)
}
func (f *fakeEmployeeService) GetManagers(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.getManagersFn(ctx)
}
func (f *fakeEmployeeService) GetReports(ctx context.Context, managerID string) ([]employee.EmployeeResponse, error) {
	return f.getReportsFn(ctx, managerID)
}

func newEmployeeTestRouter(svc employee.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := employee.NewHandler(svc)
	r.GET("/users", h.List)
	r.GET("/users/managers", h.Managers)
	r.GET("/users/by-email", h.ByEmail)
	r.GET("/users/manager/:id/employees", h.Reports)
	return r
}

func TestListEmployeesOK(t *testing.T) {
	svc := &fakeEmployeeService{
		getAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
			return []employee.EmployeeResponse{
				{ID: uuid.NewString(), Name: "Grace Hopper", Role: employee.RoleManager},
				{ID: uuid.NewString(), Name: "Ada Lovelace", Role: employee.RoleEmployee},
			}, nil
		},
	}
	router := newEmployeeTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var list []employee.EmployeeResponse
	assert.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 2)
}

func TestByEmailRequiresQueryParam(t *testing.T) {
	router := newEmployeeTestRouter(&fakeEmployeeService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/by-email", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestByEmailNotFound(t *testing.T) {
	svc := &fakeEmployeeService{
		getByEmailFn: func(ctx context.Context, email string) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		},
	}
	router := newEmployeeTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/by-email?email=nobody@example.com", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestReportsPassesManagerID(t *testing.T) {
	managerID := uuid.NewString()
	svc := &fakeEmployeeService{
		getReportsFn: func(ctx context.Context, id string) ([]employee.EmployeeResponse, error) {
			assert.Equal(t, managerID, id)
			return []employee.EmployeeResponse{}, nil
		},
	}
	router := newEmployeeTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/manager/"+managerID+"/employees", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
