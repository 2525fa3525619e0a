package employee

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

func ValidRoles() []string {
	return []string{string(RoleAdmin), string(RoleEmployee)}
}

// Employee is a directory record. It doubles as the login identity and
// supplies the default hourly rate for payroll.
type Employee struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	HourlyRate   float64   `json:"hourlyRate"`
	Department   string    `json:"department"`
	Position     string    `json:"position"`
	HireDate     time.Time `json:"hireDate"`
	Phone        *string   `json:"phone,omitempty"`
	Address      *string   `json:"address,omitempty"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (e Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}
