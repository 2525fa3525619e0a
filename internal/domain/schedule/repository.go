package schedule

import (
	"context"
	"time"
)

// ScheduleEntryRepository - storage for the shift schedule board
type ScheduleEntryRepository interface {
	Create(ctx context.Context, entry ScheduleEntry) (ScheduleEntry, error)
	GetByID(ctx context.Context, id string) (ScheduleEntry, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]ScheduleEntry, error)
	// GetByDateRange is inclusive on both ends, compared on calendar date only.
	GetByDateRange(ctx context.Context, start, end time.Time) ([]ScheduleEntry, error)
	Update(ctx context.Context, entry ScheduleEntry) error
	// Delete is idempotent: removing an absent id is not an error.
	Delete(ctx context.Context, id string) error
}
