package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		start time.Time
		end   time.Time
	}{
		{"january", 2024, 1, date(2024, 1, 1), date(2024, 1, 31)},
		{"february leap year", 2024, 2, date(2024, 2, 1), date(2024, 2, 29)},
		{"february non-leap", 2023, 2, date(2023, 2, 1), date(2023, 2, 28)},
		{"december", 2024, 12, date(2024, 12, 1), date(2024, 12, 31)},
		{"thirty day month", 2024, 4, date(2024, 4, 1), date(2024, 4, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthBounds(tt.year, tt.month)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestWeekBounds(t *testing.T) {
	// Week of 2024-03-11 (Monday) through 2024-03-17 (Sunday).
	monday := date(2024, 3, 11)
	sunday := date(2024, 3, 17)

	tests := []struct {
		name   string
		anchor time.Time
	}{
		{"anchor on monday", date(2024, 3, 11)},
		{"anchor midweek", date(2024, 3, 13)},
		{"anchor on sunday", date(2024, 3, 17)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekBounds(tt.anchor)
			assert.Equal(t, monday, start)
			assert.Equal(t, sunday, end)
		})
	}
}

func TestWeekBounds_CrossesMonthBoundary(t *testing.T) {
	// 2024-03-01 is a Friday; its week starts the preceding Monday in February.
	start, end := WeekBounds(date(2024, 3, 1))
	assert.Equal(t, date(2024, 2, 26), start)
	assert.Equal(t, date(2024, 3, 3), end)
}

func TestInRange(t *testing.T) {
	start := date(2024, 1, 1)
	end := date(2024, 1, 31)

	assert.True(t, InRange(date(2024, 1, 1), start, end))
	assert.True(t, InRange(date(2024, 1, 31), start, end))
	assert.True(t, InRange(date(2024, 1, 15), start, end))
	assert.False(t, InRange(date(2023, 12, 31), start, end))
	assert.False(t, InRange(date(2024, 2, 1), start, end))
}

func TestInRange_IgnoresTimeOfDay(t *testing.T) {
	start := date(2024, 1, 1)
	end := date(2024, 1, 31)
	late := time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC)
	assert.True(t, InRange(late, start, end))
}

func TestDaysInclusive(t *testing.T) {
	assert.Equal(t, 1, DaysInclusive(date(2024, 3, 1), date(2024, 3, 1)))
	assert.Equal(t, 3, DaysInclusive(date(2024, 3, 1), date(2024, 3, 3)))
	assert.Equal(t, 31, DaysInclusive(date(2024, 1, 1), date(2024, 1, 31)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, date(2024, 3, 1), d)

	_, err = ParseDate("03/01/2024")
	assert.Error(t, err)
}
