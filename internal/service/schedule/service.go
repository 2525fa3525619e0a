package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shiftline-hr/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftline-hr/workforce-backend-go/internal/pkg/dateutil"
	"github.com/shiftline-hr/workforce-backend-go/internal/pkg/validator"
)

type ScheduleServiceImpl struct {
	scheduleRepo schedule.ScheduleEntryRepository
	now          func() time.Time
}

func NewScheduleService(scheduleRepo schedule.ScheduleEntryRepository) *ScheduleServiceImpl {
	return &ScheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		now:          time.Now,
	}
}

func (s *ScheduleServiceImpl) AddEntry(ctx context.Context, req schedule.CreateScheduleEntryRequest) (schedule.ScheduleEntry, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleEntry{}, err
	}

	date, err := dateutil.ParseDate(req.Date)
	if err != nil {
		return schedule.ScheduleEntry{}, fmt.Errorf("failed to parse date: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return schedule.ScheduleEntry{}, fmt.Errorf("failed to generate entry id: %w", err)
	}

	entry := schedule.ScheduleEntry{
		ID:         id.String(),
		EmployeeID: req.EmployeeID,
		Date:       date,
		ShiftType:  schedule.ShiftType(req.ShiftType),
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		CreatedBy:  req.CreatedBy,
		CreatedAt:  s.now(),
	}

	created, err := s.scheduleRepo.Create(ctx, entry)
	if err != nil {
		return schedule.ScheduleEntry{}, fmt.Errorf("failed to create schedule entry: %w", err)
	}
	return created, nil
}

func (s *ScheduleServiceImpl) UpdateEntry(ctx context.Context, req schedule.UpdateScheduleEntryRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entry, err := s.scheduleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	// Merge provided fields; ID, CreatedBy and CreatedAt never change.
	if req.EmployeeID != nil {
		entry.EmployeeID = *req.EmployeeID
	}
	if req.Date != nil {
		date, err := dateutil.ParseDate(*req.Date)
		if err != nil {
			return fmt.Errorf("failed to parse date: %w", err)
		}
		entry.Date = date
	}
	if req.ShiftType != nil {
		entry.ShiftType = schedule.ShiftType(*req.ShiftType)
	}
	if req.StartTime != nil {
		entry.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		entry.EndTime = *req.EndTime
	}

	// The window invariant holds on the merged entry, not on the patch.
	if entry.ShiftType != schedule.ShiftTypeDayOff && entry.StartTime >= entry.EndTime {
		return validator.ValidationErrors{{
			Field:   "startTime",
			Message: "startTime must be before endTime",
		}}
	}

	if err := s.scheduleRepo.Update(ctx, entry); err != nil {
		return fmt.Errorf("failed to update schedule entry: %w", err)
	}
	return nil
}

func (s *ScheduleServiceImpl) DeleteEntry(ctx context.Context, id string) error {
	return s.scheduleRepo.Delete(ctx, id)
}

func (s *ScheduleServiceImpl) ByUser(ctx context.Context, employeeID string) ([]schedule.ScheduleEntry, error) {
	return s.scheduleRepo.GetByEmployeeID(ctx, employeeID)
}

func (s *ScheduleServiceImpl) ByDateRange(ctx context.Context, start, end time.Time) ([]schedule.ScheduleEntry, error) {
	return s.scheduleRepo.GetByDateRange(ctx, start, end)
}

func (s *ScheduleServiceImpl) ByWeek(ctx context.Context, anchor time.Time) ([]schedule.ScheduleEntry, error) {
	monday, sunday := dateutil.WeekBounds(anchor)
	return s.scheduleRepo.GetByDateRange(ctx, monday, sunday)
}

func (s *ScheduleServiceImpl) ForUserByWeek(ctx context.Context, employeeID string, anchor time.Time) ([]schedule.ScheduleEntry, error) {
	weekEntries, err := s.ByWeek(ctx, anchor)
	if err != nil {
		return nil, err
	}

	var entries []schedule.ScheduleEntry
	for _, entry := range weekEntries {
		if entry.EmployeeID == employeeID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}
