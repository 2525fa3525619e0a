package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftline-hr/workforce-backend-go/internal/domain/timesheet"
	"github.com/shiftline-hr/workforce-backend-go/internal/pkg/database"
)

type timeEntryRepositoryImpl struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timesheet.TimeEntryRepository {
	return &timeEntryRepositoryImpl{db: db}
}

func (r *timeEntryRepositoryImpl) Create(ctx context.Context, entry timesheet.TimeEntry) (timesheet.TimeEntry, error) {
	query := `
		INSERT INTO time_entries (id, employee_id, entry_date, hours_worked, project, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		entry.ID, entry.EmployeeID, entry.Date, entry.HoursWorked,
		entry.Project, entry.Notes, entry.CreatedAt,
	)
	if err != nil {
		return timesheet.TimeEntry{}, err
	}
	return entry, nil
}

func (r *timeEntryRepositoryImpl) GetByID(ctx context.Context, id string) (timesheet.TimeEntry, error) {
	query := `
		SELECT id, employee_id, entry_date, hours_worked, project, notes, created_at
		FROM time_entries
		WHERE id = $1
	`
	var entry timesheet.TimeEntry
	err := r.db.QueryRow(ctx, query, id).Scan(
		&entry.ID, &entry.EmployeeID, &entry.Date, &entry.HoursWorked,
		&entry.Project, &entry.Notes, &entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.TimeEntry{}, timesheet.ErrTimeEntryNotFound
		}
		return timesheet.TimeEntry{}, err
	}
	return entry, nil
}

func (r *timeEntryRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]timesheet.TimeEntry, error) {
	query := `
		SELECT id, employee_id, entry_date, hours_worked, project, notes, created_at
		FROM time_entries
		WHERE employee_id = $1
		ORDER BY entry_date, id
	`
	rows, err := r.db.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTimeEntries(rows)
}

func (r *timeEntryRepositoryImpl) GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]timesheet.TimeEntry, error) {
	query := `
		SELECT id, employee_id, entry_date, hours_worked, project, notes, created_at
		FROM time_entries
		WHERE employee_id = $1 AND entry_date >= $2 AND entry_date <= $3
		ORDER BY entry_date, id
	`
	rows, err := r.db.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTimeEntries(rows)
}

func (r *timeEntryRepositoryImpl) Update(ctx context.Context, entry timesheet.TimeEntry) error {
	query := `
		UPDATE time_entries
		SET entry_date = $2, hours_worked = $3, project = $4, notes = $5
		WHERE id = $1
	`
	commandTag, err := r.db.Exec(ctx, query,
		entry.ID, entry.Date, entry.HoursWorked, entry.Project, entry.Notes,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return timesheet.ErrTimeEntryNotFound
	}
	return nil
}

func (r *timeEntryRepositoryImpl) Delete(ctx context.Context, id string) error {
	// Removal is idempotent: deleting an absent id is not an error.
	_, err := r.db.Exec(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	return err
}

func scanTimeEntries(rows pgx.Rows) ([]timesheet.TimeEntry, error) {
	var entries []timesheet.TimeEntry
	for rows.Next() {
		var entry timesheet.TimeEntry
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.Date, &entry.HoursWorked,
			&entry.Project, &entry.Notes, &entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
