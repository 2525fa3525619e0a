package timesheet

import "time"

// TimeEntry is one logged block of hours for an employee on a calendar day.
// JSON field names match the persisted record format.
type TimeEntry struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"userId"`
	Date        time.Time `json:"date"`
	HoursWorked float64   `json:"hoursWorked"`
	Project     *string   `json:"project,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
