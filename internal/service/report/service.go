package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
)

// ExportFile is a rendered tabular export ready to be served as a download.
type ExportFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// ReportService renders attendance record sets as downloadable exports
type ReportService interface {
	// ExportAttendanceCSV renders all records matching filter (no row cap,
	// unlike the listing endpoint) as CSV
	ExportAttendanceCSV(ctx context.Context, filter attendance.ListFilter) (ExportFile, error)
}

type ReportServiceImpl struct {
	attendance.AttendanceRepository
}

func NewReportService(attendanceRepository attendance.AttendanceRepository) ReportService {
	return &ReportServiceImpl{AttendanceRepository: attendanceRepository}
}

// ExportAttendanceCSV implements ReportService.
func (s *ReportServiceImpl) ExportAttendanceCSV(ctx context.Context, filter attendance.ListFilter) (ExportFile, error) {
	if err := filter.Validate(); err != nil {
		return ExportFile{}, err
	}

	records, err := s.AttendanceRepository.List(ctx, filter, 0)
	if err != nil {
		return ExportFile{}, err
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		return ExportFile{}, fmt.Errorf("failed to render CSV: %w", err)
	}

	return ExportFile{
		Name:        fmt.Sprintf("attendance-%d.csv", time.Now().UnixMilli()),
		ContentType: "text/csv",
		Content:     buf.Bytes(),
	}, nil
}

var csvHeader = []string{"Date", "Employee", "EmployeeId", "Department", "CheckIn", "CheckOut", "Status", "TotalHours"}

// WriteCSV renders one row per record. Missing timestamps render as a dash;
// missing total hours render as 0.
func WriteCSV(w io.Writer, records []attendance.Attendance) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Date.Format("2006-01-02"),
			strOrEmpty(r.EmployeeName),
			strOrEmpty(r.EmployeeCode),
			strOrEmpty(r.Department),
			timeOrDash(r.CheckInTime),
			timeOrDash(r.CheckOutTime),
			string(r.Status),
			totalHoursOrZero(r),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func timeOrDash(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("15:04:05")
}

func totalHoursOrZero(r attendance.Attendance) string {
	if r.TotalHours == nil {
		return "0"
	}
	return r.TotalHours.String()
}
