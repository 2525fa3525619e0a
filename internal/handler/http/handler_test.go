package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftline-hr/workforce-backend-go/internal/domain/employee"
	"github.com/shiftline-hr/workforce-backend-go/internal/pkg/jwt"
	"github.com/shiftline-hr/workforce-backend-go/internal/pkg/oauth"
	"github.com/shiftline-hr/workforce-backend-go/internal/repository/memory"
	authService "github.com/shiftline-hr/workforce-backend-go/internal/service/auth"
	employeeService "github.com/shiftline-hr/workforce-backend-go/internal/service/employee"
	leaveService "github.com/shiftline-hr/workforce-backend-go/internal/service/leave"
	payrollService "github.com/shiftline-hr/workforce-backend-go/internal/service/payroll"
	scheduleService "github.com/shiftline-hr/workforce-backend-go/internal/service/schedule"
	timesheetService "github.com/shiftline-hr/workforce-backend-go/internal/service/timesheet"
)

const handlerTestSecret = "test-secret-key-for-jwt"

type testServer struct {
	router        http.Handler
	jwtService    jwt.Service
	adminToken    string
	employeeToken string
	adminID       string
	employeeID    string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	timeEntryRepo, err := memory.NewTimeEntryRepository("")
	require.NoError(t, err)
	scheduleRepo, err := memory.NewScheduleEntryRepository("")
	require.NoError(t, err)
	leaveRequestRepo, err := memory.NewLeaveRequestRepository("")
	require.NoError(t, err)
	employeeRepo, err := memory.NewEmployeeRepository("")
	require.NoError(t, err)

	jwtSvc, err := jwt.NewJWTService(handlerTestSecret, "1h")
	require.NoError(t, err)
	googleSvc := oauth.NewGoogleService("test-client-id", "test-client-secret", "http://localhost:8080/callback", []string{"email"})

	timesheetSvc := timesheetService.NewTimesheetService(timeEntryRepo)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo)
	payrollSvc := payrollService.NewPayrollService(timesheetSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	authSvc := authService.NewAuthService(employeeRepo, jwtSvc, googleSvc)

	router := NewRouter(
		jwtSvc,
		NewAuthHandler(authSvc, googleSvc, "http://localhost:3000"),
		NewTimesheetHandler(timesheetSvc),
		NewScheduleHandler(scheduleSvc),
		NewLeaveHandler(leaveSvc),
		NewPayrollHandler(payrollSvc, employeeSvc),
		NewEmployeeHandler(employeeSvc),
		"test",
	)

	ctx := context.Background()
	admin, err := employeeSvc.Create(ctx, employee.CreateEmployeeRequest{
		Name:       "Ada Admin",
		Email:      "ada@example.com",
		Password:   "SecurePass123!",
		Role:       "admin",
		HourlyRate: 30,
		Department: "Operations",
		Position:   "Manager",
		HireDate:   "2023-01-02",
	})
	require.NoError(t, err)

	emp, err := employeeSvc.Create(ctx, employee.CreateEmployeeRequest{
		Name:       "Eve Employee",
		Email:      "eve@example.com",
		Password:   "SecurePass123!",
		Role:       "employee",
		HourlyRate: 20,
		Department: "Engineering",
		Position:   "Developer",
		HireDate:   "2024-02-01",
	})
	require.NoError(t, err)

	adminToken, _, err := jwtSvc.GenerateAccessToken(admin)
	require.NoError(t, err)
	employeeToken, _, err := jwtSvc.GenerateAccessToken(emp)
	require.NoError(t, err)

	return &testServer{
		router:        router,
		jwtService:    jwtSvc,
		adminToken:    adminToken,
		employeeToken: employeeToken,
		adminID:       admin.ID,
		employeeID:    emp.ID,
	}
}

func (s *testServer) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var envelope struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	return envelope.Data
}

func TestLogin_Success(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.request(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "eve@example.com",
		"password": "SecurePass123!",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.NotEmpty(t, data["accessToken"])

	user, ok := data["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "eve@example.com", user["email"])
	assert.NotContains(t, user, "passwordHash")
}

func TestLogin_WrongPassword(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.request(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "eve@example.com",
		"password": "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTimeEntries_CreateUsesTokenIdentity(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.request(t, http.MethodPost, "/api/v1/time-entries", srv.employeeToken, map[string]interface{}{
		"date":        "2024-03-11",
		"hoursWorked": 7.5,
		"project":     "Website",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Data struct {
			ID         string  `json:"id"`
			EmployeeID string  `json:"userId"`
			Hours      float64 `json:"hoursWorked"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, srv.employeeID, envelope.Data.EmployeeID)
	assert.Equal(t, 7.5, envelope.Data.Hours)
}

func TestTimeEntries_CreateRejectsInvalidHours(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.request(t, http.MethodPost, "/api/v1/time-entries", srv.employeeToken, map[string]interface{}{
		"date":        "2024-03-11",
		"hoursWorked": 0,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestTimeEntries_RequiresAuth(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.request(t, http.MethodGet, "/api/v1/time-entries/my", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSchedules_CreateIsAdminOnly(t *testing.T) {
	srv := newTestServer(t)

	body := map[string]interface{}{
		"userId":    srv.employeeID,
		"date":      "2024-03-11",
		"shiftType": "morning",
		"startTime": "08:00",
		"endTime":   "16:00",
	}

	rec := srv.request(t, http.MethodPost, "/api/v1/schedules", srv.employeeToken, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.request(t, http.MethodPost, "/api/v1/schedules", srv.adminToken, body)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestLeaveRequests_ApproveFlow(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.request(t, http.MethodPost, "/api/v1/leave-requests", srv.employeeToken, map[string]interface{}{
		"startDate": "2024-04-01",
		"endDate":   "2024-04-05",
		"type":      "vacation",
		"reason":    "family trip",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// Employees cannot approve.
	rec = srv.request(t, http.MethodPost, "/api/v1/leave-requests/"+created.Data.ID+"/approve", srv.employeeToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.request(t, http.MethodPost, "/api/v1/leave-requests/"+created.Data.ID+"/approve", srv.adminToken, map[string]string{
		"comments": "enjoy",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// A second review of the same request conflicts.
	rec = srv.request(t, http.MethodPost, "/api/v1/leave-requests/"+created.Data.ID+"/reject", srv.adminToken, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPayroll_MySalaryUsesDirectoryRate(t *testing.T) {
	srv := newTestServer(t)

	// 10 days of 8 hours in March at the directory rate of 20/h.
	for day := 1; day <= 10; day++ {
		rec := srv.request(t, http.MethodPost, "/api/v1/time-entries", srv.employeeToken, map[string]interface{}{
			"date":        fmt.Sprintf("2024-03-%02d", day),
			"hoursWorked": 8,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := srv.request(t, http.MethodGet, "/api/v1/payroll/my?year=2024&month=3", srv.employeeToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	assert.Equal(t, float64(80), data["totalHours"])
	assert.Equal(t, float64(1600), data["regularPay"])
	assert.Equal(t, float64(0), data["overtimePay"])
	assert.Equal(t, float64(1600), data["finalTotal"])
}

func TestEmployees_ListIsAdminOnly(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.request(t, http.MethodGet, "/api/v1/employees", srv.employeeToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.request(t, http.MethodGet, "/api/v1/employees", srv.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

// registerEmployee provisions an extra account through the admin API and
// logs it in, returning the account's id and access token.
func (s *testServer) registerEmployee(t *testing.T, name, email string) (string, string) {
	t.Helper()

	rec := s.request(t, http.MethodPost, "/api/v1/employees", s.adminToken, map[string]interface{}{
		"name":       name,
		"email":      email,
		"password":   "SecurePass123!",
		"role":       "employee",
		"hourlyRate": 18,
		"department": "Engineering",
		"position":   "Developer",
		"hireDate":   "2024-03-01",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	id, ok := decodeData(t, rec)["id"].(string)
	require.True(t, ok)

	rec = s.request(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": "SecurePass123!",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	token, ok := decodeData(t, rec)["accessToken"].(string)
	require.True(t, ok)

	return id, token
}

func (s *testServer) createTimeEntry(t *testing.T, token, date string, hours float64) string {
	t.Helper()

	rec := s.request(t, http.MethodPost, "/api/v1/time-entries", token, map[string]interface{}{
		"date":        date,
		"hoursWorked": hours,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	id, ok := decodeData(t, rec)["id"].(string)
	require.True(t, ok)
	return id
}

func TestTimeEntries_UpdateRejectsOtherEmployee(t *testing.T) {
	srv := newTestServer(t)
	entryID := srv.createTimeEntry(t, srv.employeeToken, "2024-03-11", 8)

	_, otherToken := srv.registerEmployee(t, "Omar Other", "omar@example.com")

	rec := srv.request(t, http.MethodPut, "/api/v1/time-entries/"+entryID, otherToken, map[string]interface{}{
		"hoursWorked": 0.5,
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// The entry is untouched.
	rec = srv.request(t, http.MethodGet, "/api/v1/time-entries/my", srv.employeeToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed struct {
		Data []struct {
			ID    string  `json:"id"`
			Hours float64 `json:"hoursWorked"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed.Data, 1)
	assert.Equal(t, 8.0, listed.Data[0].Hours)

	// The owner's own update still goes through.
	rec = srv.request(t, http.MethodPut, "/api/v1/time-entries/"+entryID, srv.employeeToken, map[string]interface{}{
		"hoursWorked": 6,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTimeEntries_DeleteRejectsOtherEmployee(t *testing.T) {
	srv := newTestServer(t)
	entryID := srv.createTimeEntry(t, srv.employeeToken, "2024-03-11", 8)

	_, otherToken := srv.registerEmployee(t, "Omar Other", "omar@example.com")

	rec := srv.request(t, http.MethodDelete, "/api/v1/time-entries/"+entryID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.request(t, http.MethodGet, "/api/v1/time-entries/my", srv.employeeToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed.Data, 1)

	// Admins may remove any entry, and repeating the delete stays a no-op.
	rec = srv.request(t, http.MethodDelete, "/api/v1/time-entries/"+entryID, srv.adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = srv.request(t, http.MethodDelete, "/api/v1/time-entries/"+entryID, srv.employeeToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLeaveRequests_WithdrawRejectsOtherEmployee(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.request(t, http.MethodPost, "/api/v1/leave-requests", srv.employeeToken, map[string]interface{}{
		"startDate": "2024-04-01",
		"endDate":   "2024-04-05",
		"type":      "vacation",
		"reason":    "family trip",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	requestID, ok := decodeData(t, rec)["id"].(string)
	require.True(t, ok)

	_, otherToken := srv.registerEmployee(t, "Omar Other", "omar@example.com")

	rec = srv.request(t, http.MethodDelete, "/api/v1/leave-requests/"+requestID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Still pending and visible to its owner.
	rec = srv.request(t, http.MethodGet, "/api/v1/leave-requests/my", srv.employeeToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed struct {
		Data []struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed.Data, 1)
	assert.Equal(t, "pending", listed.Data[0].Status)

	rec = srv.request(t, http.MethodDelete, "/api/v1/leave-requests/"+requestID, srv.employeeToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
