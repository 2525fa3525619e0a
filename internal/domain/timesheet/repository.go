package timesheet

import (
	"context"
	"time"
)

// TimeEntryRepository - storage for the time entry ledger
type TimeEntryRepository interface {
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)
	GetByID(ctx context.Context, id string) (TimeEntry, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]TimeEntry, error)
	GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]TimeEntry, error)
	Update(ctx context.Context, entry TimeEntry) error
	// Delete is idempotent: removing an absent id is not an error.
	Delete(ctx context.Context, id string) error
}
