package leave

import (
	"context"
)

// LeaveRequestRepository - storage for leave requests
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	GetByStatus(ctx context.Context, status LeaveStatus) ([]LeaveRequest, error)
	Update(ctx context.Context, request LeaveRequest) error
	// Delete is idempotent: removing an absent id is not an error.
	Delete(ctx context.Context, id string) error
}
