package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shiftline-hr/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftline-hr/workforce-backend-go/internal/handler/http/response"
	"github.com/shiftline-hr/workforce-backend-go/internal/pkg/dateutil"
)

type ScheduleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	MyWeek(w http.ResponseWriter, r *http.Request)
	Week(w http.ResponseWriter, r *http.Request)
	Range(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// Create implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateScheduleEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create schedule entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	adminID, ok := employeeIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}
	req.CreatedBy = adminID

	entry, err := h.scheduleService.AddEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule entry created successfully", entry)
}

// Update implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Schedule entry ID is required", nil)
		return
	}

	var req schedule.UpdateScheduleEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update schedule entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.scheduleService.UpdateEntry(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule entry updated successfully", nil)
}

// Delete implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Schedule entry ID is required", nil)
		return
	}

	if err := h.scheduleService.DeleteEntry(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule entry deleted successfully", nil)
}

// ListMine implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	entries, err := h.scheduleService.ByUser(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// MyWeek implements ScheduleHandler.
func (h *ScheduleHandlerImpl) MyWeek(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	anchor, ok := parseAnchorDate(r)
	if !ok {
		response.BadRequest(w, "Query parameter date must be in YYYY-MM-DD format", nil)
		return
	}

	entries, err := h.scheduleService.ForUserByWeek(r.Context(), employeeID, anchor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// Week implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Week(w http.ResponseWriter, r *http.Request) {
	anchor, ok := parseAnchorDate(r)
	if !ok {
		response.BadRequest(w, "Query parameter date must be in YYYY-MM-DD format", nil)
		return
	}

	entries, err := h.scheduleService.ByWeek(r.Context(), anchor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// Range implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Range(w http.ResponseWriter, r *http.Request) {
	start, err := dateutil.ParseDate(r.URL.Query().Get("start"))
	if err != nil {
		response.BadRequest(w, "Query parameter start must be in YYYY-MM-DD format", nil)
		return
	}
	end, err := dateutil.ParseDate(r.URL.Query().Get("end"))
	if err != nil {
		response.BadRequest(w, "Query parameter end must be in YYYY-MM-DD format", nil)
		return
	}

	entries, err := h.scheduleService.ByDateRange(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// parseAnchorDate reads the date query parameter, defaulting to today so
// the week endpoints return the current week when called without one.
func parseAnchorDate(r *http.Request) (time.Time, bool) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		return time.Now(), true
	}

	anchor, err := dateutil.ParseDate(dateStr)
	if err != nil {
		return time.Time{}, false
	}
	return anchor, true
}
