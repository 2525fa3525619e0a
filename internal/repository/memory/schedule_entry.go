package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shiftline-hr/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftline-hr/workforce-backend-go/internal/pkg/dateutil"
)

type scheduleEntryRepositoryImpl struct {
	mu      sync.RWMutex
	entries map[string]schedule.ScheduleEntry
	path    string
}

func NewScheduleEntryRepository(dir string) (schedule.ScheduleEntryRepository, error) {
	r := &scheduleEntryRepositoryImpl{
		entries: make(map[string]schedule.ScheduleEntry),
		path:    storeFile(dir, "schedule-entries"),
	}

	var records []schedule.ScheduleEntry
	if err := loadSnapshot(r.path, &records); err != nil {
		return nil, err
	}
	for _, e := range records {
		r.entries[e.ID] = e
	}
	return r, nil
}

func (r *scheduleEntryRepositoryImpl) persistLocked() error {
	records := make([]schedule.ScheduleEntry, 0, len(r.entries))
	for _, e := range r.entries {
		records = append(records, e)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return saveSnapshot(r.path, records)
}

func (r *scheduleEntryRepositoryImpl) Create(ctx context.Context, entry schedule.ScheduleEntry) (schedule.ScheduleEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[entry.ID] = entry
	if err := r.persistLocked(); err != nil {
		delete(r.entries, entry.ID)
		return schedule.ScheduleEntry{}, err
	}
	return entry, nil
}

func (r *scheduleEntryRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.ScheduleEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	if !ok {
		return schedule.ScheduleEntry{}, schedule.ErrScheduleEntryNotFound
	}
	return entry, nil
}

func (r *scheduleEntryRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]schedule.ScheduleEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []schedule.ScheduleEntry
	for _, e := range r.entries {
		if e.EmployeeID == employeeID {
			entries = append(entries, e)
		}
	}
	sortShifts(entries)
	return entries, nil
}

func (r *scheduleEntryRepositoryImpl) GetByDateRange(ctx context.Context, start, end time.Time) ([]schedule.ScheduleEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []schedule.ScheduleEntry
	for _, e := range r.entries {
		if dateutil.InRange(e.Date, start, end) {
			entries = append(entries, e)
		}
	}
	sortShifts(entries)
	return entries, nil
}

func (r *scheduleEntryRepositoryImpl) Update(ctx context.Context, entry schedule.ScheduleEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.entries[entry.ID]
	if !ok {
		return schedule.ErrScheduleEntryNotFound
	}
	r.entries[entry.ID] = entry
	if err := r.persistLocked(); err != nil {
		r.entries[entry.ID] = prev
		return err
	}
	return nil
}

func (r *scheduleEntryRepositoryImpl) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.entries[id]
	if !ok {
		return nil
	}
	delete(r.entries, id)
	if err := r.persistLocked(); err != nil {
		r.entries[id] = prev
		return err
	}
	return nil
}

func sortShifts(entries []schedule.ScheduleEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		if entries[i].StartTime != entries[j].StartTime {
			return entries[i].StartTime < entries[j].StartTime
		}
		return entries[i].ID < entries[j].ID
	})
}
