package schedule

import "errors"

var (
	ErrScheduleEntryNotFound = errors.New("Schedule entry not found")
)
