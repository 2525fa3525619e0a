package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shiftline-hr/workforce-backend-go/internal/domain/timesheet"
	"github.com/shiftline-hr/workforce-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListMineByMonth(w http.ResponseWriter, r *http.Request)
	MyMonthlyTotal(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

// Create implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req timesheet.CreateTimeEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create time entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	employeeID, ok := employeeIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}
	req.EmployeeID = employeeID

	entry, err := h.timesheetService.AddEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time entry created successfully", entry)
}

// Update implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Time entry ID is required", nil)
		return
	}

	var req timesheet.UpdateTimeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update time entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.authorizeEntryAccess(r, id); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.timesheetService.UpdateEntry(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry updated successfully", nil)
}

// Delete implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Time entry ID is required", nil)
		return
	}

	if err := h.authorizeEntryAccess(r, id); err != nil {
		// Deletion stays idempotent: an absent id is not an error.
		if !errors.Is(err, timesheet.ErrTimeEntryNotFound) {
			response.HandleError(w, err)
			return
		}
	}

	if err := h.timesheetService.DeleteEntry(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry deleted successfully", nil)
}

// authorizeEntryAccess ensures the caller owns the entry or holds the admin
// role before a mutation is allowed through.
func (h *TimesheetHandlerImpl) authorizeEntryAccess(r *http.Request, id string) error {
	if isAdminFromClaims(r) {
		return nil
	}

	employeeID, ok := employeeIDFromClaims(r)
	if !ok {
		return timesheet.ErrUnauthorizedAccess
	}

	entry, err := h.timesheetService.EntryByID(r.Context(), id)
	if err != nil {
		return err
	}
	if entry.EmployeeID != employeeID {
		return timesheet.ErrUnauthorizedAccess
	}
	return nil
}

// ListMine implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	entries, err := h.timesheetService.EntriesForUser(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// ListMineByMonth implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ListMineByMonth(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	year, month, ok := parseYearMonth(r)
	if !ok {
		response.BadRequest(w, "Query parameters year and month are required", nil)
		return
	}

	entries, err := h.timesheetService.EntriesInMonth(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// MyMonthlyTotal implements TimesheetHandler.
func (h *TimesheetHandlerImpl) MyMonthlyTotal(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	year, month, ok := parseYearMonth(r)
	if !ok {
		response.BadRequest(w, "Query parameters year and month are required", nil)
		return
	}

	totalHours, err := h.timesheetService.TotalHoursInMonth(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"year":       year,
		"month":      month,
		"totalHours": totalHours,
	})
}

// ListForEmployee implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	entries, err := h.timesheetService.EntriesForUser(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// parseYearMonth reads year and month query parameters, defaulting to the
// current month when both are absent.
func parseYearMonth(r *http.Request) (int, int, bool) {
	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")

	if yearStr == "" && monthStr == "" {
		now := time.Now()
		return now.Year(), int(now.Month()), true
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		return 0, 0, false
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}
