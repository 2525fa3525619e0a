package leave

import (
	"context"

	"github.com/shiftline-hr/workforce-backend-go/internal/pkg/dateutil"
)

type LeaveService interface {
	Submit(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequest, error)
	Approve(ctx context.Context, req ReviewLeaveRequestRequest) (LeaveRequest, error)
	Reject(ctx context.Context, req ReviewLeaveRequestRequest) (LeaveRequest, error)
	// Withdraw removes a request while it is still pending.
	Withdraw(ctx context.Context, id string) error
	ByID(ctx context.Context, id string) (LeaveRequest, error)
	ByUser(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	ByStatus(ctx context.Context, status string) ([]LeaveRequest, error)
}

// DurationDays counts the calendar days a request spans, both boundary dates
// included: a single-day request yields 1.
func DurationDays(request LeaveRequest) int {
	return dateutil.DaysInclusive(request.StartDate, request.EndDate)
}
