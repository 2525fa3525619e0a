package schedule

import (
	"context"
	"time"
)

type ScheduleService interface {
	AddEntry(ctx context.Context, req CreateScheduleEntryRequest) (ScheduleEntry, error)
	UpdateEntry(ctx context.Context, req UpdateScheduleEntryRequest) error
	DeleteEntry(ctx context.Context, id string) error
	ByUser(ctx context.Context, employeeID string) ([]ScheduleEntry, error)
	ByDateRange(ctx context.Context, start, end time.Time) ([]ScheduleEntry, error)
	ByWeek(ctx context.Context, anchor time.Time) ([]ScheduleEntry, error)
	ForUserByWeek(ctx context.Context, employeeID string, anchor time.Time) ([]ScheduleEntry, error)
}
