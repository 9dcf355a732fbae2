package attendance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

func strPtr(s string) *string { return &s }

func TestMonthFilterValidate(t *testing.T) {
	cases := []struct {
		name   string
		filter MonthFilter
		ok     bool
	}{
		{"empty is valid", MonthFilter{}, true},
		{"month and year", MonthFilter{Month: 3, Year: 2025}, true},
		{"month without year", MonthFilter{Month: 3}, false},
		{"year without month", MonthFilter{Year: 2025}, false},
		{"month out of range", MonthFilter{Month: 13, Year: 2025}, false},
		{"year out of range", MonthFilter{Month: 1, Year: 123}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.filter.Validate()
			if c.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.IsType(t, validator.ValidationErrors{}, err)
			}
		})
	}
}

func TestListFilterValidate(t *testing.T) {
	cases := []struct {
		name   string
		filter ListFilter
		ok     bool
	}{
		{"empty is valid", ListFilter{}, true},
		{"valid status", ListFilter{Status: strPtr("late")}, true},
		{"unknown status", ListFilter{Status: strPtr("absent")}, false},
		{"full range", ListFilter{StartDate: strPtr("2025-03-01"), EndDate: strPtr("2025-03-31")}, true},
		{"start date only", ListFilter{StartDate: strPtr("2025-03-01")}, false},
		{"malformed date", ListFilter{StartDate: strPtr("03/01/2025"), EndDate: strPtr("2025-03-31")}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.filter.Validate()
			if c.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRangeFilterValidate(t *testing.T) {
	assert.NoError(t, (&RangeFilter{}).Validate())
	assert.NoError(t, (&RangeFilter{StartDate: strPtr("2025-03-01")}).Validate())
	assert.Error(t, (&RangeFilter{StartDate: strPtr("not-a-date")}).Validate())
	assert.Error(t, (&RangeFilter{EndDate: strPtr("2025-3-1")}).Validate())
}

func TestAttendanceToResponse(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 9, 15, 0, 0, time.Local)
	checkOut := time.Date(2025, 3, 10, 17, 45, 0, 0, time.Local)
	hours := decimal.NewFromFloat(8.5)

	a := Attendance{
		ID:           "rec-1",
		UserID:       "u1",
		Date:         time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local),
		CheckInTime:  &checkIn,
		CheckOutTime: &checkOut,
		Status:       StatusPresent,
		TotalHours:   &hours,
	}

	resp := a.ToResponse()
	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Equal(t, "2025-03-10 09:15:00", *resp.CheckInTime)
	assert.Equal(t, "2025-03-10 17:45:00", *resp.CheckOutTime)
	assert.Equal(t, "present", resp.Status)
	assert.Equal(t, 8.5, *resp.TotalHours)
}

func TestAttendanceToResponseOpenSession(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 9, 15, 0, 0, time.Local)
	a := Attendance{
		ID:          "rec-1",
		UserID:      "u1",
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local),
		CheckInTime: &checkIn,
		Status:      StatusPresent,
	}

	resp := a.ToResponse()
	assert.Nil(t, resp.CheckOutTime)
	assert.Nil(t, resp.TotalHours)
}
