package timesheet

import (
	"context"
)

type TimesheetService interface {
	AddEntry(ctx context.Context, req CreateTimeEntryRequest) (TimeEntry, error)
	UpdateEntry(ctx context.Context, req UpdateTimeEntryRequest) error
	DeleteEntry(ctx context.Context, id string) error
	EntryByID(ctx context.Context, id string) (TimeEntry, error)
	EntriesForUser(ctx context.Context, employeeID string) ([]TimeEntry, error)
	EntriesInMonth(ctx context.Context, employeeID string, year, month int) ([]TimeEntry, error)
	TotalHoursInMonth(ctx context.Context, employeeID string, year, month int) (float64, error)
}
