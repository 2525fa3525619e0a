package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftline-hr/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftline-hr/workforce-backend-go/internal/pkg/database"
)

type scheduleEntryRepositoryImpl struct {
	db *database.DB
}

func NewScheduleEntryRepository(db *database.DB) schedule.ScheduleEntryRepository {
	return &scheduleEntryRepositoryImpl{db: db}
}

func (r *scheduleEntryRepositoryImpl) Create(ctx context.Context, entry schedule.ScheduleEntry) (schedule.ScheduleEntry, error) {
	query := `
		INSERT INTO schedule_entries (id, employee_id, shift_date, shift_type, start_time, end_time, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		entry.ID, entry.EmployeeID, entry.Date, string(entry.ShiftType),
		entry.StartTime, entry.EndTime, entry.CreatedBy, entry.CreatedAt,
	)
	if err != nil {
		return schedule.ScheduleEntry{}, err
	}
	return entry, nil
}

func (r *scheduleEntryRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.ScheduleEntry, error) {
	query := `
		SELECT id, employee_id, shift_date, shift_type, start_time, end_time, created_by, created_at
		FROM schedule_entries
		WHERE id = $1
	`
	var entry schedule.ScheduleEntry
	err := r.db.QueryRow(ctx, query, id).Scan(
		&entry.ID, &entry.EmployeeID, &entry.Date, &entry.ShiftType,
		&entry.StartTime, &entry.EndTime, &entry.CreatedBy, &entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ScheduleEntry{}, schedule.ErrScheduleEntryNotFound
		}
		return schedule.ScheduleEntry{}, err
	}
	return entry, nil
}

func (r *scheduleEntryRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]schedule.ScheduleEntry, error) {
	query := `
		SELECT id, employee_id, shift_date, shift_type, start_time, end_time, created_by, created_at
		FROM schedule_entries
		WHERE employee_id = $1
		ORDER BY shift_date, start_time, id
	`
	rows, err := r.db.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanScheduleEntries(rows)
}

func (r *scheduleEntryRepositoryImpl) GetByDateRange(ctx context.Context, start, end time.Time) ([]schedule.ScheduleEntry, error) {
	query := `
		SELECT id, employee_id, shift_date, shift_type, start_time, end_time, created_by, created_at
		FROM schedule_entries
		WHERE shift_date >= $1 AND shift_date <= $2
		ORDER BY shift_date, start_time, id
	`
	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanScheduleEntries(rows)
}

func (r *scheduleEntryRepositoryImpl) Update(ctx context.Context, entry schedule.ScheduleEntry) error {
	query := `
		UPDATE schedule_entries
		SET employee_id = $2, shift_date = $3, shift_type = $4, start_time = $5, end_time = $6
		WHERE id = $1
	`
	commandTag, err := r.db.Exec(ctx, query,
		entry.ID, entry.EmployeeID, entry.Date, string(entry.ShiftType),
		entry.StartTime, entry.EndTime,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return schedule.ErrScheduleEntryNotFound
	}
	return nil
}

func (r *scheduleEntryRepositoryImpl) Delete(ctx context.Context, id string) error {
	// Removal is idempotent: deleting an absent id is not an error.
	_, err := r.db.Exec(ctx, `DELETE FROM schedule_entries WHERE id = $1`, id)
	return err
}

func scanScheduleEntries(rows pgx.Rows) ([]schedule.ScheduleEntry, error) {
	var entries []schedule.ScheduleEntry
	for rows.Next() {
		var entry schedule.ScheduleEntry
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.Date, &entry.ShiftType,
			&entry.StartTime, &entry.EndTime, &entry.CreatedBy, &entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
