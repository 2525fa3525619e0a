package schedule

import "time"

type ShiftType string

const (
	ShiftTypeMorning   ShiftType = "morning"
	ShiftTypeAfternoon ShiftType = "afternoon"
	ShiftTypeNight     ShiftType = "night"
	ShiftTypeDayOff    ShiftType = "dayOff"
)

func ValidShiftTypes() []string {
	return []string{
		string(ShiftTypeMorning),
		string(ShiftTypeAfternoon),
		string(ShiftTypeNight),
		string(ShiftTypeDayOff),
	}
}

// ScheduleEntry assigns an employee to one shift window on a calendar date.
// dayOff entries carry placeholder start/end times.
type ScheduleEntry struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"userId"`
	Date       time.Time `json:"date"`
	ShiftType  ShiftType `json:"shiftType"`
	StartTime  string    `json:"startTime"` // "HH:MM"
	EndTime    string    `json:"endTime"`   // "HH:MM"
	CreatedBy  string    `json:"createdBy"`
	CreatedAt  time.Time `json:"createdAt"`
}
