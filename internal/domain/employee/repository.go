package employee

import (
	"context"
)

// EmployeeRepository - storage for the employee directory
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee) error
	// Delete is idempotent: removing an absent id is not an error.
	Delete(ctx context.Context, id string) error
}
