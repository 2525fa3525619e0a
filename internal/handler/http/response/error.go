package response

import (
	"errors"
	"net/http"

	"github.com/shiftline-hr/workforce-backend-go/internal/domain/auth"
	"github.com/shiftline-hr/workforce-backend-go/internal/domain/employee"
	"github.com/shiftline-hr/workforce-backend-go/internal/domain/leave"
	"github.com/shiftline-hr/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftline-hr/workforce-backend-go/internal/domain/timesheet"
	"github.com/shiftline-hr/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrTimeEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timesheet.ErrUnauthorizedAccess):
		Forbidden(w, "Time entry belongs to another employee")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleEntryNotFound):
		NotFound(w, "Schedule entry not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrUnauthorizedAccess):
		Forbidden(w, "Leave request belongs to another employee")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
