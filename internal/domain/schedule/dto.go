package schedule

import "github.com/shiftline-hr/workforce-backend-go/internal/pkg/validator"

type CreateScheduleEntryRequest struct {
	EmployeeID string `json:"userId"`
	Date       string `json:"date"`
	ShiftType  string `json:"shiftType"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	CreatedBy  string `json:"-"`
}

func (r *CreateScheduleEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "userId",
			Message: "userId is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.ShiftType, ValidShiftTypes()) {
		errs = append(errs, validator.ValidationError{
			Field:   "shiftType",
			Message: "shiftType must be one of morning, afternoon, night, dayOff",
		})
	}

	if !validator.IsValidTimeOfDay(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "startTime",
			Message: "startTime must be in HH:MM format",
		})
	}
	if !validator.IsValidTimeOfDay(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "endTime",
			Message: "endTime must be in HH:MM format",
		})
	}

	// HH:MM strings order lexicographically, so a plain compare is enough.
	if len(errs) == 0 && r.ShiftType != string(ShiftTypeDayOff) && r.StartTime >= r.EndTime {
		errs = append(errs, validator.ValidationError{
			Field:   "startTime",
			Message: "startTime must be before endTime",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateScheduleEntryRequest struct {
	ID         string  `json:"-"`
	EmployeeID *string `json:"userId,omitempty"`
	Date       *string `json:"date,omitempty"`
	ShiftType  *string `json:"shiftType,omitempty"`
	StartTime  *string `json:"startTime,omitempty"`
	EndTime    *string `json:"endTime,omitempty"`
}

func (r *UpdateScheduleEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.EmployeeID != nil && validator.IsEmpty(*r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "userId",
			Message: "userId must not be empty",
		})
	}

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.ShiftType != nil && !validator.IsInSlice(*r.ShiftType, ValidShiftTypes()) {
		errs = append(errs, validator.ValidationError{
			Field:   "shiftType",
			Message: "shiftType must be one of morning, afternoon, night, dayOff",
		})
	}

	if r.StartTime != nil && !validator.IsValidTimeOfDay(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "startTime",
			Message: "startTime must be in HH:MM format",
		})
	}
	if r.EndTime != nil && !validator.IsValidTimeOfDay(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "endTime",
			Message: "endTime must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
