package attendance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
)

func record(userID string, date time.Time, status Status, hours float64) Attendance {
	checkIn := date.Add(9 * time.Hour)
	checkOut := checkIn.Add(time.Duration(hours * float64(time.Hour)))
	h := decimal.NewFromFloat(hours)
	return Attendance{
		UserID:       userID,
		Date:         date,
		CheckInTime:  &checkIn,
		CheckOutTime: &checkOut,
		Status:       status,
		TotalHours:   &h,
	}
}

func TestMonthlySummary(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 4, d, 0, 0, 0, 0, time.Local) }

	records := []Attendance{
		record("u1", day(1), StatusPresent, 8),
		record("u1", day(2), StatusLate, 7.5),
		record("u1", day(3), StatusPresent, 8),
		record("u1", day(4), StatusHalfDay, 4),
	}

	tally := MonthlySummary(records, 2025, time.April)
	assert.Equal(t, 2, tally.Present)
	assert.Equal(t, 1, tally.Late)
	assert.Equal(t, 1, tally.HalfDay)
	assert.Equal(t, 26, tally.Absent) // 30 days - 4 records
	assert.True(t, tally.TotalHours.Equal(decimal.NewFromFloat(27.5)))
}

func TestMonthlySummaryEmpty(t *testing.T) {
	tally := MonthlySummary(nil, 2025, time.April)
	assert.Equal(t, 0, tally.Present)
	assert.Equal(t, 30, tally.Absent)
	assert.True(t, tally.TotalHours.IsZero())
}

func TestMonthlySummarySkipsMissingHours(t *testing.T) {
	day := time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local)
	open := record("u1", day, StatusPresent, 8)
	open.CheckOutTime = nil
	open.TotalHours = nil

	tally := MonthlySummary([]Attendance{open}, 2025, time.April)
	assert.Equal(t, 1, tally.Present)
	assert.True(t, tally.TotalHours.IsZero())
}

func TestTeamSummary(t *testing.T) {
	day := time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local)
	records := []Attendance{
		record("u1", day, StatusPresent, 8),
		record("u2", day, StatusLate, 7),
		record("u3", day, StatusLate, 6),
		record("u4", day, StatusHalfDay, 4),
	}

	summary := TeamSummary(records)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 1, summary.Present)
	assert.Equal(t, 2, summary.Late)
	assert.Equal(t, 1, summary.HalfDay)
	// absence requires a population reference the range query does not have
	assert.Equal(t, 0, summary.Absent)
}

func TestTeamDailySnapshot(t *testing.T) {
	day := time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local)
	employees := []user.User{
		{ID: "u1", Name: "John"},
		{ID: "u2", Name: "Jane"},
		{ID: "u3", Name: "Bob"},
	}
	records := []Attendance{
		record("u1", day, StatusPresent, 8),
		record("u2", day, StatusLate, 7),
	}

	snapshot := TeamDailySnapshot(employees, records)

	assert.Len(t, snapshot.Present, 2)
	assert.Len(t, snapshot.Late, 1)
	assert.Equal(t, "u2", snapshot.Late[0].UserID)
	assert.Len(t, snapshot.Absent, 1)
	assert.Equal(t, "u3", snapshot.Absent[0].ID)

	// the partition is disjoint and exhaustive over the population
	seen := make(map[string]bool)
	for _, r := range snapshot.Present {
		seen[r.UserID] = true
	}
	for _, u := range snapshot.Absent {
		assert.False(t, seen[u.ID], "user %s is both present and absent", u.ID)
		seen[u.ID] = true
	}
	assert.Len(t, seen, len(employees))
}

func TestTeamDailySnapshotSkipsRecordsWithoutCheckIn(t *testing.T) {
	day := time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local)
	employees := []user.User{{ID: "u1"}}

	r := record("u1", day, StatusPresent, 8)
	r.CheckInTime = nil

	snapshot := TeamDailySnapshot(employees, []Attendance{r})
	assert.Empty(t, snapshot.Present)
	assert.Len(t, snapshot.Absent, 1)
}

func TestDateHistogram(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 4, d, 0, 0, 0, 0, time.Local) }
	records := []Attendance{
		record("u1", day(2), StatusPresent, 8),
		record("u2", day(2), StatusLate, 7),
		record("u1", day(1), StatusPresent, 8),
	}

	histogram := DateHistogram(records)
	assert.Equal(t, []DateCount{
		{Date: "2025-04-01", Count: 1},
		{Date: "2025-04-02", Count: 2},
	}, histogram)
}

func TestDepartmentHistogram(t *testing.T) {
	employees := []user.User{
		{ID: "u1", Department: "Engineering"},
		{ID: "u2", Department: "Design"},
		{ID: "u3", Department: "Engineering"},
		{ID: "u4"}, // no department, skipped
	}

	histogram := DepartmentHistogram(employees)
	assert.Equal(t, []DepartmentCount{
		{Department: "Design", Count: 1},
		{Department: "Engineering", Count: 2},
	}, histogram)
}
