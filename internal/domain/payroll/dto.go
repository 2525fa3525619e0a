package payroll

import "github.com/shiftline-hr/workforce-backend-go/internal/pkg/validator"

type CalculateSalaryRequest struct {
	EmployeeID string   `json:"-"`
	Year       int      `json:"year"`
	Month      int      `json:"month"`
	HourlyRate *float64 `json:"hourlyRate,omitempty"`
}

func (r *CalculateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "userId",
			Message: "userId is required",
		})
	}
	if r.Year < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is required",
		})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if r.HourlyRate != nil && *r.HourlyRate <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourlyRate",
			Message: "hourlyRate must be greater than 0",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
