package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shiftline-hr/workforce-backend-go/internal/domain/employee"
	"github.com/shiftline-hr/workforce-backend-go/internal/domain/payroll"
	"github.com/shiftline-hr/workforce-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	MySalary(w http.ResponseWriter, r *http.Request)
	EmployeeSalary(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService  payroll.PayrollService
	employeeService employee.EmployeeService
}

func NewPayrollHandler(payrollService payroll.PayrollService, employeeService employee.EmployeeService) PayrollHandler {
	return &PayrollHandlerImpl{
		payrollService:  payrollService,
		employeeService: employeeService,
	}
}

// MySalary implements PayrollHandler.
func (h *PayrollHandlerImpl) MySalary(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	h.calculate(w, r, employeeID)
}

// EmployeeSalary implements PayrollHandler.
func (h *PayrollHandlerImpl) EmployeeSalary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	h.calculate(w, r, employeeID)
}

func (h *PayrollHandlerImpl) calculate(w http.ResponseWriter, r *http.Request, employeeID string) {
	req := payroll.CalculateSalaryRequest{EmployeeID: employeeID}

	year, month, ok := parseYearMonth(r)
	if !ok {
		response.BadRequest(w, "Query parameters year and month are required", nil)
		return
	}
	req.Year = year
	req.Month = month

	// An explicit hourly_rate overrides the directory rate.
	if rateStr := r.URL.Query().Get("hourly_rate"); rateStr != "" {
		rate, err := strconv.ParseFloat(rateStr, 64)
		if err != nil {
			response.BadRequest(w, "Query parameter hourly_rate must be a number", nil)
			return
		}
		req.HourlyRate = &rate
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	hourlyRate, err := h.resolveRate(r, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	breakdown, err := h.payrollService.CalculateSalary(r.Context(), req.EmployeeID, req.Year, req.Month, hourlyRate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, breakdown)
}

func (h *PayrollHandlerImpl) resolveRate(r *http.Request, req payroll.CalculateSalaryRequest) (float64, error) {
	if req.HourlyRate != nil {
		return *req.HourlyRate, nil
	}

	emp, err := h.employeeService.GetByID(r.Context(), req.EmployeeID)
	if err != nil {
		return 0, err
	}
	return emp.HourlyRate, nil
}
