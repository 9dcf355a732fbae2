package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half-day" // stored and filterable, never produced by check-in/out
)

// LateThresholdHour is the local hour-of-day at or after which a check-in
// counts as late.
const LateThresholdHour = 10

// Attendance is one record per (user, calendar day). Absence is never
// materialized; a missing row for a day within range means absent.
type Attendance struct {
	ID           string
	UserID       string
	Date         time.Time // local midnight, no time component
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	Status       Status
	TotalHours   *decimal.Decimal // set iff both timestamps are set
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined employee display fields (manager queries)
	EmployeeName  *string
	EmployeeEmail *string
	EmployeeCode  *string
	Department    *string
}

// DayOf truncates t to local midnight, the natural-key date component.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DeriveStatus classifies a check-in timestamp: late at or after the
// threshold hour, present before it.
func DeriveStatus(checkIn time.Time) Status {
	if checkIn.Hour() >= LateThresholdHour {
		return StatusLate
	}
	return StatusPresent
}

// TotalHoursBetween returns (out - in) in hours rounded to two decimals.
// Callers guarantee out > in for same-day sessions; sessions spanning
// midnight are keyed by the check-in day and produce uncapped values.
func TotalHoursBetween(in, out time.Time) decimal.Decimal {
	hours := decimal.NewFromFloat(out.Sub(in).Hours())
	return hours.Round(2)
}

// DaysInMonth returns the number of calendar days in (year, month).
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthBounds returns the first and last day of (year, month) as local dates.
func MonthBounds(year int, month time.Month) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end = time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local)
	return start, end
}
