// Package dateutil holds the calendar windowing rules shared by the
// timesheet and schedule services. All helpers are timezone-naive: they
// operate on calendar dates normalized to midnight UTC, never on instants.
package dateutil

import "time"

// DateLayout is the wire format for calendar dates across the API.
const DateLayout = "2006-01-02"

// Normalize strips the time-of-day and location from t, keeping only the
// calendar date.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a "YYYY-MM-DD" string into a normalized date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Normalize(t), nil
}

// FormatDate renders a date back into "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthBounds returns the first and last day of the given calendar month.
// Month is 1-indexed.
func MonthBounds(year int, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// WeekBounds returns the Monday and Sunday of the week containing date.
// Weeks start on Monday.
func WeekBounds(date time.Time) (time.Time, time.Time) {
	d := Normalize(date)
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	monday := d.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	return monday, sunday
}

// InRange reports whether date falls within [start, end], inclusive on both
// ends and compared on calendar date only.
func InRange(date, start, end time.Time) bool {
	d := Normalize(date)
	return !d.Before(Normalize(start)) && !d.After(Normalize(end))
}

// DaysInclusive counts the whole days between start and end with both
// boundary dates included: a single-day range yields 1.
func DaysInclusive(start, end time.Time) int {
	return int(Normalize(end).Sub(Normalize(start)).Hours()/24) + 1
}
