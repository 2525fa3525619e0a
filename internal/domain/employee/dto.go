package employee

import (
	"time"

	"github.com/shiftline-hr/workforce-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Role       string  `json:"role"`
	HourlyRate float64 `json:"hourlyRate"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	HireDate   string  `json:"hireDate"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid address",
		})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}
	if !validator.IsInSlice(r.Role, ValidRoles()) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of admin, employee",
		})
	}
	if r.HourlyRate <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourlyRate",
			Message: "hourlyRate must be greater than 0",
		})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hireDate",
			Message: "hireDate must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID         string   `json:"-"`
	Name       *string  `json:"name,omitempty"`
	Role       *string  `json:"role,omitempty"`
	HourlyRate *float64 `json:"hourlyRate,omitempty"`
	Department *string  `json:"department,omitempty"`
	Position   *string  `json:"position,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	Address    *string  `json:"address,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Role != nil && !validator.IsInSlice(*r.Role, ValidRoles()) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of admin, employee",
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

// EmployeeResponse is the directory record without credential fields.
type EmployeeResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	HourlyRate float64   `json:"hourlyRate"`
	Department string    `json:"department"`
	Position   string    `json:"position"`
	HireDate   time.Time `json:"hireDate"`
	Phone      *string   `json:"phone,omitempty"`
	Address    *string   `json:"address,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Role:       e.Role,
		HourlyRate: e.HourlyRate,
		Department: e.Department,
		Position:   e.Position,
		HireDate:   e.HireDate,
		Phone:      e.Phone,
		Address:    e.Address,
		CreatedAt:  e.CreatedAt,
	}
}
