package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shiftline-hr/workforce-backend-go/internal/domain/timesheet"
	"github.com/shiftline-hr/workforce-backend-go/internal/pkg/dateutil"
)

type TimesheetServiceImpl struct {
	timeEntryRepo timesheet.TimeEntryRepository
	now           func() time.Time
}

func NewTimesheetService(timeEntryRepo timesheet.TimeEntryRepository) *TimesheetServiceImpl {
	return &TimesheetServiceImpl{
		timeEntryRepo: timeEntryRepo,
		now:           time.Now,
	}
}

func (s *TimesheetServiceImpl) AddEntry(ctx context.Context, req timesheet.CreateTimeEntryRequest) (timesheet.TimeEntry, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimeEntry{}, err
	}

	date, err := dateutil.ParseDate(req.Date)
	if err != nil {
		return timesheet.TimeEntry{}, fmt.Errorf("failed to parse date: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return timesheet.TimeEntry{}, fmt.Errorf("failed to generate entry id: %w", err)
	}

	entry := timesheet.TimeEntry{
		ID:          id.String(),
		EmployeeID:  req.EmployeeID,
		Date:        date,
		HoursWorked: req.HoursWorked,
		Project:     req.Project,
		Notes:       req.Notes,
		CreatedAt:   s.now(),
	}

	created, err := s.timeEntryRepo.Create(ctx, entry)
	if err != nil {
		return timesheet.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}
	return created, nil
}

func (s *TimesheetServiceImpl) UpdateEntry(ctx context.Context, req timesheet.UpdateTimeEntryRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entry, err := s.timeEntryRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	// Merge provided fields; ID and CreatedAt never change.
	if req.Date != nil {
		date, err := dateutil.ParseDate(*req.Date)
		if err != nil {
			return fmt.Errorf("failed to parse date: %w", err)
		}
		entry.Date = date
	}
	if req.HoursWorked != nil {
		entry.HoursWorked = *req.HoursWorked
	}
	if req.Project != nil {
		entry.Project = req.Project
	}
	if req.Notes != nil {
		entry.Notes = req.Notes
	}

	if err := s.timeEntryRepo.Update(ctx, entry); err != nil {
		return fmt.Errorf("failed to update time entry: %w", err)
	}
	return nil
}

func (s *TimesheetServiceImpl) DeleteEntry(ctx context.Context, id string) error {
	return s.timeEntryRepo.Delete(ctx, id)
}

func (s *TimesheetServiceImpl) EntryByID(ctx context.Context, id string) (timesheet.TimeEntry, error) {
	return s.timeEntryRepo.GetByID(ctx, id)
}

func (s *TimesheetServiceImpl) EntriesForUser(ctx context.Context, employeeID string) ([]timesheet.TimeEntry, error) {
	return s.timeEntryRepo.GetByEmployeeID(ctx, employeeID)
}

func (s *TimesheetServiceImpl) EntriesInMonth(ctx context.Context, employeeID string, year, month int) ([]timesheet.TimeEntry, error) {
	start, end := dateutil.MonthBounds(year, month)
	return s.timeEntryRepo.GetByEmployeeAndRange(ctx, employeeID, start, end)
}

func (s *TimesheetServiceImpl) TotalHoursInMonth(ctx context.Context, employeeID string, year, month int) (float64, error) {
	entries, err := s.EntriesInMonth(ctx, employeeID, year, month)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, entry := range entries {
		total += entry.HoursWorked
	}
	return total, nil
}
