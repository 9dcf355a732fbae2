package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
)

func strPtr(s string) *string { return &s }

func TestWriteCSV(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	checkIn := date.Add(9*time.Hour + 30*time.Minute)
	checkOut := date.Add(18 * time.Hour)
	hours := decimal.NewFromFloat(8.5)

	records := []attendance.Attendance{
		{
			Date:         date,
			CheckInTime:  &checkIn,
			CheckOutTime: &checkOut,
			Status:       attendance.StatusPresent,
			TotalHours:   &hours,
			EmployeeName: strPtr("John Doe"),
			EmployeeCode: strPtr("EMP001"),
			Department:   strPtr("Engineering"),
		},
		{
			Date:         date,
			CheckInTime:  &checkIn,
			Status:       attendance.StatusLate,
			EmployeeName: strPtr("Jane Smith"),
			EmployeeCode: strPtr("EMP002"),
			Department:   strPtr("Design"),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Date", "Employee", "EmployeeId", "Department", "CheckIn", "CheckOut", "Status", "TotalHours"}, rows[0])
	assert.Equal(t, []string{"2025-03-10", "John Doe", "EMP001", "Engineering", "09:30:00", "18:00:00", "present", "8.5"}, rows[1])
	// open session: check-out renders as a dash and hours as 0
	assert.Equal(t, []string{"2025-03-10", "Jane Smith", "EMP002", "Design", "09:30:00", "-", "late", "0"}, rows[2])
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
