package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftline-hr/workforce-backend-go/internal/domain/employee"
	"github.com/shiftline-hr/workforce-backend-go/internal/domain/leave"
	"github.com/shiftline-hr/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftline-hr/workforce-backend-go/internal/domain/timesheet"
	"github.com/shiftline-hr/workforce-backend-go/internal/pkg/database"
	"github.com/shiftline-hr/workforce-backend-go/internal/repository/postgresql"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		role          TEXT NOT NULL,
		hourly_rate   DOUBLE PRECISION NOT NULL,
		department    TEXT NOT NULL,
		position      TEXT NOT NULL,
		hire_date     TIMESTAMPTZ NOT NULL,
		phone         TEXT,
		address       TEXT,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS time_entries (
		id           TEXT PRIMARY KEY,
		employee_id  TEXT NOT NULL,
		entry_date   TIMESTAMPTZ NOT NULL,
		hours_worked DOUBLE PRECISION NOT NULL,
		project      TEXT,
		notes        TEXT,
		created_at   TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS schedule_entries (
		id          TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		shift_date  TIMESTAMPTZ NOT NULL,
		shift_type  TEXT NOT NULL,
		start_time  TEXT NOT NULL,
		end_time    TEXT NOT NULL,
		created_by  TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS leave_requests (
		id          TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		start_date  TIMESTAMPTZ NOT NULL,
		end_date    TIMESTAMPTZ NOT NULL,
		leave_type  TEXT NOT NULL,
		reason      TEXT NOT NULL,
		status      TEXT NOT NULL,
		reviewed_by TEXT,
		reviewed_at TIMESTAMPTZ,
		comments    TEXT,
		created_at  TIMESTAMPTZ NOT NULL
	)`,
}

// testDatabase connects to TEST_DATABASE_URL, ensures the schema exists and
// truncates all tables. Tests are skipped when the variable is unset so the
// suite stays runnable without a local PostgreSQL instance.
func testDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping PostgreSQL repository tests")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	ctx := context.Background()
	for _, stmt := range schemaStatements {
		_, err := db.Exec(ctx, stmt)
		require.NoError(t, err)
	}
	for _, table := range []string{"employees", "time_entries", "schedule_entries", "leave_requests"} {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
	return db
}

func newID(t *testing.T) string {
	t.Helper()
	id, err := uuid.NewV7()
	require.NoError(t, err)
	return id.String()
}

func strPtr(s string) *string { return &s }

func TestEmployeeRepository_CreateAndGet(t *testing.T) {
	db := testDatabase(t)
	repo := postgresql.NewEmployeeRepository(db)
	ctx := context.Background()

	emp := employee.Employee{
		ID:           newID(t),
		Name:         "Ada Lovelace",
		Email:        "ada@example.com",
		Role:         employee.RoleAdmin,
		HourlyRate:   30,
		Department:   "Engineering",
		Position:     "Lead",
		HireDate:     time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		Phone:        strPtr("+3120000000"),
		PasswordHash: "$2a$10$notarealhash",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
	_, err := repo.Create(ctx, emp)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, emp.Name, got.Name)
	assert.Equal(t, employee.RoleAdmin, got.Role)
	assert.Equal(t, emp.HourlyRate, got.HourlyRate)
	require.NotNil(t, got.Phone)
	assert.Equal(t, *emp.Phone, *got.Phone)
	assert.Nil(t, got.Address)

	byEmail, err := repo.GetByEmail(ctx, "ADA@example.com")
	require.NoError(t, err)
	assert.Equal(t, emp.ID, byEmail.ID)

	_, err = repo.GetByID(ctx, newID(t))
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_DuplicateEmail(t *testing.T) {
	db := testDatabase(t)
	repo := postgresql.NewEmployeeRepository(db)
	ctx := context.Background()

	emp := employee.Employee{
		ID:           newID(t),
		Name:         "Eve Example",
		Email:        "eve@example.com",
		Role:         employee.RoleEmployee,
		HourlyRate:   20,
		Department:   "Support",
		Position:     "Agent",
		HireDate:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		PasswordHash: "$2a$10$notarealhash",
		CreatedAt:    time.Now().UTC(),
	}
	_, err := repo.Create(ctx, emp)
	require.NoError(t, err)

	emp.ID = newID(t)
	_, err = repo.Create(ctx, emp)
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestTimeEntryRepository_CRUD(t *testing.T) {
	db := testDatabase(t)
	repo := postgresql.NewTimeEntryRepository(db)
	ctx := context.Background()

	employeeID := newID(t)
	entry := timesheet.TimeEntry{
		ID:          newID(t),
		EmployeeID:  employeeID,
		Date:        time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		HoursWorked: 8,
		Project:     strPtr("apollo"),
		CreatedAt:   time.Now().UTC(),
	}
	_, err := repo.Create(ctx, entry)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, employeeID, got.EmployeeID)
	assert.Equal(t, 8.0, got.HoursWorked)
	require.NotNil(t, got.Project)
	assert.Equal(t, "apollo", *got.Project)
	assert.Nil(t, got.Notes)

	got.HoursWorked = 6.5
	got.Notes = strPtr("left early")
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 6.5, updated.HoursWorked)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "left early", *updated.Notes)

	missing := updated
	missing.ID = newID(t)
	assert.ErrorIs(t, repo.Update(ctx, missing), timesheet.ErrTimeEntryNotFound)

	require.NoError(t, repo.Delete(ctx, entry.ID))
	_, err = repo.GetByID(ctx, entry.ID)
	assert.ErrorIs(t, err, timesheet.ErrTimeEntryNotFound)

	// Deleting an absent id succeeds.
	require.NoError(t, repo.Delete(ctx, entry.ID))
}

func TestTimeEntryRepository_RangeIsInclusiveAndOrdered(t *testing.T) {
	db := testDatabase(t)
	repo := postgresql.NewTimeEntryRepository(db)
	ctx := context.Background()

	employeeID := newID(t)
	days := []int{14, 10, 12, 17}
	for _, day := range days {
		_, err := repo.Create(ctx, timesheet.TimeEntry{
			ID:          newID(t),
			EmployeeID:  employeeID,
			Date:        time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
			HoursWorked: 8,
			CreatedAt:   time.Now().UTC(),
		})
		require.NoError(t, err)
	}

	start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	entries, err := repo.GetByEmployeeAndRange(ctx, employeeID, start, end)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 10, entries[0].Date.Day())
	assert.Equal(t, 12, entries[1].Date.Day())
	assert.Equal(t, 14, entries[2].Date.Day())
}

func TestScheduleEntryRepository_DateRange(t *testing.T) {
	db := testDatabase(t)
	repo := postgresql.NewScheduleEntryRepository(db)
	ctx := context.Background()

	adminID := newID(t)
	add := func(day int, shiftType schedule.ShiftType, start, end string) {
		_, err := repo.Create(ctx, schedule.ScheduleEntry{
			ID:         newID(t),
			EmployeeID: newID(t),
			Date:       time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
			ShiftType:  shiftType,
			StartTime:  start,
			EndTime:    end,
			CreatedBy:  adminID,
			CreatedAt:  time.Now().UTC(),
		})
		require.NoError(t, err)
	}
	add(12, schedule.ShiftTypeAfternoon, "14:00", "22:00")
	add(11, schedule.ShiftTypeMorning, "08:00", "16:00")
	add(18, schedule.ShiftTypeNight, "22:00", "23:59")

	entries, err := repo.GetByDateRange(ctx,
		time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, schedule.ShiftTypeMorning, entries[0].ShiftType)
	assert.Equal(t, schedule.ShiftTypeAfternoon, entries[1].ShiftType)
}

func TestLeaveRequestRepository_StatusTransition(t *testing.T) {
	db := testDatabase(t)
	repo := postgresql.NewLeaveRequestRepository(db)
	ctx := context.Background()

	request := leave.LeaveRequest{
		ID:         newID(t),
		EmployeeID: newID(t),
		StartDate:  time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC),
		Type:       leave.LeaveTypeVacation,
		Reason:     "spring break",
		Status:     leave.LeaveStatusPending,
		CreatedAt:  time.Now().UTC(),
	}
	_, err := repo.Create(ctx, request)
	require.NoError(t, err)

	pending, err := repo.GetByStatus(ctx, leave.LeaveStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Nil(t, pending[0].ReviewedBy)
	assert.Nil(t, pending[0].ReviewedAt)

	reviewerID := newID(t)
	reviewedAt := time.Now().UTC().Truncate(time.Microsecond)
	request.Status = leave.LeaveStatusApproved
	request.ReviewedBy = &reviewerID
	request.ReviewedAt = &reviewedAt
	request.Comments = strPtr("enjoy")
	require.NoError(t, repo.Update(ctx, request))

	got, err := repo.GetByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveStatusApproved, got.Status)
	require.NotNil(t, got.ReviewedBy)
	assert.Equal(t, reviewerID, *got.ReviewedBy)
	require.NotNil(t, got.ReviewedAt)
	assert.True(t, got.ReviewedAt.Equal(reviewedAt))
	require.NotNil(t, got.Comments)
	assert.Equal(t, "enjoy", *got.Comments)

	approved, err := repo.GetByStatus(ctx, leave.LeaveStatusApproved)
	require.NoError(t, err)
	assert.Len(t, approved, 1)
	pending, err = repo.GetByStatus(ctx, leave.LeaveStatusPending)
	require.NoError(t, err)
	assert.Empty(t, pending)
}
