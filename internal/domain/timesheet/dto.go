package timesheet

import "github.com/shiftline-hr/workforce-backend-go/internal/pkg/validator"

const maxHoursPerDay = 24

type CreateTimeEntryRequest struct {
	EmployeeID  string  `json:"-"`
	Date        string  `json:"date"`
	HoursWorked float64 `json:"hoursWorked"`
	Project     *string `json:"project,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

func (r *CreateTimeEntryRequest) Validate() error {
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

	if r.HoursWorked <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hoursWorked",
			Message: "hoursWorked must be greater than 0",
		})
	}
	if r.HoursWorked > maxHoursPerDay {
		errs = append(errs, validator.ValidationError{
			Field:   "hoursWorked",
			Message: "hoursWorked must not exceed 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTimeEntryRequest struct {
	ID          string   `json:"-"`
	Date        *string  `json:"date,omitempty"`
	HoursWorked *float64 `json:"hoursWorked,omitempty"`
	Project     *string  `json:"project,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}

func (r *UpdateTimeEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
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

	if r.HoursWorked != nil {
		if *r.HoursWorked <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "hoursWorked",
				Message: "hoursWorked must be greater than 0",
			})
		}
		if *r.HoursWorked > maxHoursPerDay {
			errs = append(errs, validator.ValidationError{
				Field:   "hoursWorked",
				Message: "hoursWorked must not exceed 24",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
