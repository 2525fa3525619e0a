package timesheet

import "errors"

var (
	ErrTimeEntryNotFound  = errors.New("Time entry not found")
	ErrUnauthorizedAccess = errors.New("Unauthorized access to time entry")
)
