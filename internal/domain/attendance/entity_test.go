package attendance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name    string
		checkIn time.Time
		want    Status
	}{
		{"early morning", time.Date(2025, 3, 10, 7, 0, 0, 0, time.Local), StatusPresent},
		{"one second before threshold", time.Date(2025, 3, 10, 9, 59, 59, 0, time.Local), StatusPresent},
		{"exactly at threshold", time.Date(2025, 3, 10, 10, 0, 0, 0, time.Local), StatusLate},
		{"late afternoon", time.Date(2025, 3, 10, 15, 30, 0, 0, time.Local), StatusLate},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, DeriveStatus(c.checkIn))
		})
	}
}

func TestTotalHoursBetween(t *testing.T) {
	in := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)

	out := in.Add(8*time.Hour + 30*time.Minute)
	assert.True(t, TotalHoursBetween(in, out).Equal(decimal.NewFromFloat(8.5)))

	// rounds to two decimals
	out = in.Add(7*time.Hour + 20*time.Minute)
	assert.True(t, TotalHoursBetween(in, out).Equal(decimal.NewFromFloat(7.33)))

	// a session spanning midnight stays on the check-in day and is uncapped
	out = in.Add(30 * time.Hour)
	assert.True(t, TotalHoursBetween(in, out).Equal(decimal.NewFromInt(30)))
}

func TestDayOf(t *testing.T) {
	ts := time.Date(2025, 3, 10, 18, 45, 12, 999, time.Local)
	day := DayOf(ts)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local), day)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2025, time.January))
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 30, DaysInMonth(2025, time.April))
	assert.Equal(t, 31, DaysInMonth(2025, time.December))
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(2025, time.February)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.Local), end)

	start, end = MonthBounds(2024, time.December)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.Local), end)
}
