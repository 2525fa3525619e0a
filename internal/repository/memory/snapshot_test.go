package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftline-hr/workforce-backend-go/internal/domain/timesheet"
)

func TestTimeEntryRepository_SnapshotRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewTimeEntryRepository(dir)
	require.NoError(t, err)

	entry := timesheet.TimeEntry{
		ID:          "entry-1",
		EmployeeID:  "emp-1",
		Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		HoursWorked: 8,
		CreatedAt:   time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC),
	}
	_, err = repo.Create(ctx, entry)
	require.NoError(t, err)

	// A fresh repository over the same directory sees the persisted record.
	reopened, err := NewTimeEntryRepository(dir)
	require.NoError(t, err)

	got, err := reopened.GetByID(ctx, "entry-1")
	require.NoError(t, err)
	assert.Equal(t, entry, got)
}

func TestTimeEntryRepository_SnapshotFilePerStore(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewTimeEntryRepository(dir)
	require.NoError(t, err)

	_, err = repo.Create(ctx, timesheet.TimeEntry{
		ID:          "entry-1",
		EmployeeID:  "emp-1",
		Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		HoursWorked: 8,
	})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "time-entries.json"))
	assert.NoError(t, err)
}

func TestTimeEntryRepository_DeleteIdempotent(t *testing.T) {
	ctx := context.Background()

	repo, err := NewTimeEntryRepository("")
	require.NoError(t, err)

	_, err = repo.Create(ctx, timesheet.TimeEntry{ID: "entry-1", EmployeeID: "emp-1", HoursWorked: 4})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "entry-1"))
	assert.NoError(t, repo.Delete(ctx, "entry-1"))

	_, err = repo.GetByID(ctx, "entry-1")
	assert.ErrorIs(t, err, timesheet.ErrTimeEntryNotFound)
}

func TestLoadSnapshot_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "time-entries.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewTimeEntryRepository(dir)
	assert.Error(t, err)
}
