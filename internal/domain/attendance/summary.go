package attendance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
)

// The aggregation engine: pure functions over caller-supplied record sets.
// No I/O, no mutation; callers fetch exactly the records for the window they
// want summarized.

type MonthlyTally struct {
	Present    int
	Absent     int
	Late       int
	HalfDay    int
	TotalHours decimal.Decimal
}

// MonthlySummary tallies one employee's records for (year, month).
// Absent is daysInMonth minus the record count, deliberately unclamped:
// feeding records outside the month produces nonsensical output, matching
// the caller contract.
func MonthlySummary(records []Attendance, year int, month time.Month) MonthlyTally {
	tally := MonthlyTally{TotalHours: decimal.Zero}
	for _, r := range records {
		switch r.Status {
		case StatusPresent:
			tally.Present++
		case StatusLate:
			tally.Late++
		case StatusHalfDay:
			tally.HalfDay++
		}
		if r.TotalHours != nil {
			tally.TotalHours = tally.TotalHours.Add(*r.TotalHours)
		}
	}
	tally.Absent = DaysInMonth(year, month) - len(records)
	return tally
}

// TeamSummary tallies a record set across employees. Absent stays 0: with no
// population reference there is nothing to subtract from, and the historical
// behavior is kept as-is rather than silently changed.
func TeamSummary(records []Attendance) TeamSummaryResponse {
	summary := TeamSummaryResponse{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case StatusPresent:
			summary.Present++
		case StatusLate:
			summary.Late++
		case StatusHalfDay:
			summary.HalfDay++
		}
	}
	return summary
}

type DailySnapshot struct {
	Present []Attendance
	Absent  []user.User
	Late    []Attendance
}

// TeamDailySnapshot partitions the role=employee population into present
// (has a checked-in record for the date) and absent (set difference by user
// ID). The two sets are disjoint and exhaustive over the population; absent
// order follows the employees slice.
func TeamDailySnapshot(employees []user.User, records []Attendance) DailySnapshot {
	snapshot := DailySnapshot{
		Present: make([]Attendance, 0, len(records)),
		Absent:  make([]user.User, 0),
		Late:    make([]Attendance, 0),
	}

	presentIDs := make(map[string]struct{}, len(records))
	for _, r := range records {
		if r.CheckInTime == nil {
			continue
		}
		presentIDs[r.UserID] = struct{}{}
		snapshot.Present = append(snapshot.Present, r)
		if r.Status == StatusLate {
			snapshot.Late = append(snapshot.Late, r)
		}
	}

	for _, e := range employees {
		if _, ok := presentIDs[e.ID]; !ok {
			snapshot.Absent = append(snapshot.Absent, e)
		}
	}

	return snapshot
}

type DateCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// DateHistogram group-counts records by calendar date, ascending by date.
func DateHistogram(records []Attendance) []DateCount {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Date.Format("2006-01-02")]++
	}

	histogram := make([]DateCount, 0, len(counts))
	for date, count := range counts {
		histogram = append(histogram, DateCount{Date: date, Count: count})
	}
	sort.Slice(histogram, func(i, j int) bool {
		return histogram[i].Date < histogram[j].Date
	})
	return histogram
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// DepartmentHistogram group-counts the employee population by department,
// skipping employees with no department label. Independent of any date range.
func DepartmentHistogram(employees []user.User) []DepartmentCount {
	counts := make(map[string]int)
	for _, e := range employees {
		if e.Department == "" {
			continue
		}
		counts[e.Department]++
	}

	histogram := make([]DepartmentCount, 0, len(counts))
	for department, count := range counts {
		histogram = append(histogram, DepartmentCount{Department: department, Count: count})
	}
	sort.Slice(histogram, func(i, j int) bool {
		return histogram[i].Department < histogram[j].Department
	})
	return histogram
}
