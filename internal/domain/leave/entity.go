package leave

import "time"

type LeaveType string

const (
	LeaveTypeVacation LeaveType = "vacation"
	LeaveTypeSick     LeaveType = "sick"
	LeaveTypePersonal LeaveType = "personal"
	LeaveTypeUnpaid   LeaveType = "unpaid"
)

func ValidLeaveTypes() []string {
	return []string{
		string(LeaveTypeVacation),
		string(LeaveTypeSick),
		string(LeaveTypePersonal),
		string(LeaveTypeUnpaid),
	}
}

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

func ValidLeaveStatuses() []string {
	return []string{
		string(LeaveStatusPending),
		string(LeaveStatusApproved),
		string(LeaveStatusRejected),
	}
}

// LeaveRequest is an employee-initiated absence request. Status starts at
// pending; approved and rejected are terminal. ReviewedBy/ReviewedAt are set
// exactly when the request leaves pending.
type LeaveRequest struct {
	ID         string      `json:"id"`
	EmployeeID string      `json:"userId"`
	StartDate  time.Time   `json:"startDate"`
	EndDate    time.Time   `json:"endDate"`
	Type       LeaveType   `json:"type"`
	Reason     string      `json:"reason"`
	Status     LeaveStatus `json:"status"`
	ReviewedBy *string     `json:"reviewedBy,omitempty"`
	ReviewedAt *time.Time  `json:"reviewedAt,omitempty"`
	Comments   *string     `json:"comments,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
}
