package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shiftline-hr/workforce-backend-go/internal/domain/timesheet"
	"github.com/shiftline-hr/workforce-backend-go/internal/pkg/dateutil"
)

type timeEntryRepositoryImpl struct {
	mu      sync.RWMutex
	entries map[string]timesheet.TimeEntry
	path    string
}

// NewTimeEntryRepository opens the time entry store. dir may be empty for a
// purely in-memory store (tests); otherwise records load from and persist to
// dir/time-entries.json.
func NewTimeEntryRepository(dir string) (timesheet.TimeEntryRepository, error) {
	r := &timeEntryRepositoryImpl{
		entries: make(map[string]timesheet.TimeEntry),
		path:    storeFile(dir, "time-entries"),
	}

	var records []timesheet.TimeEntry
	if err := loadSnapshot(r.path, &records); err != nil {
		return nil, err
	}
	for _, e := range records {
		r.entries[e.ID] = e
	}
	return r, nil
}

func (r *timeEntryRepositoryImpl) persistLocked() error {
	records := make([]timesheet.TimeEntry, 0, len(r.entries))
	for _, e := range r.entries {
		records = append(records, e)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return saveSnapshot(r.path, records)
}

func (r *timeEntryRepositoryImpl) Create(ctx context.Context, entry timesheet.TimeEntry) (timesheet.TimeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[entry.ID] = entry
	if err := r.persistLocked(); err != nil {
		delete(r.entries, entry.ID)
		return timesheet.TimeEntry{}, err
	}
	return entry, nil
}

func (r *timeEntryRepositoryImpl) GetByID(ctx context.Context, id string) (timesheet.TimeEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	if !ok {
		return timesheet.TimeEntry{}, timesheet.ErrTimeEntryNotFound
	}
	return entry, nil
}

func (r *timeEntryRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]timesheet.TimeEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []timesheet.TimeEntry
	for _, e := range r.entries {
		if e.EmployeeID == employeeID {
			entries = append(entries, e)
		}
	}
	sortByDate(entries)
	return entries, nil
}

func (r *timeEntryRepositoryImpl) GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]timesheet.TimeEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []timesheet.TimeEntry
	for _, e := range r.entries {
		if e.EmployeeID == employeeID && dateutil.InRange(e.Date, start, end) {
			entries = append(entries, e)
		}
	}
	sortByDate(entries)
	return entries, nil
}

func (r *timeEntryRepositoryImpl) Update(ctx context.Context, entry timesheet.TimeEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.entries[entry.ID]
	if !ok {
		return timesheet.ErrTimeEntryNotFound
	}
	r.entries[entry.ID] = entry
	if err := r.persistLocked(); err != nil {
		r.entries[entry.ID] = prev
		return err
	}
	return nil
}

func (r *timeEntryRepositoryImpl) Delete(ctx context.Context, id string) error {
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

func sortByDate(entries []timesheet.TimeEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entries[i].ID < entries[j].ID
	})
}
