package attendance

import (
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

type AttendanceResponse struct {
	ID            string   `json:"id"`
	UserID        string   `json:"user_id"`
	Date          string   `json:"date"`
	CheckInTime   *string  `json:"check_in_time,omitempty"`
	CheckOutTime  *string  `json:"check_out_time,omitempty"`
	Status        string   `json:"status"`
	TotalHours    *float64 `json:"total_hours,omitempty"`
	EmployeeName  *string  `json:"employee_name,omitempty"`
	EmployeeEmail *string  `json:"employee_email,omitempty"`
	EmployeeCode  *string  `json:"employee_code,omitempty"`
	Department    *string  `json:"department,omitempty"`
}

func (a *Attendance) ToResponse() AttendanceResponse {
	resp := AttendanceResponse{
		ID:            a.ID,
		UserID:        a.UserID,
		Date:          a.Date.Format("2006-01-02"),
		CheckInTime:   timePtrToString(a.CheckInTime),
		CheckOutTime:  timePtrToString(a.CheckOutTime),
		Status:        string(a.Status),
		EmployeeName:  a.EmployeeName,
		EmployeeEmail: a.EmployeeEmail,
		EmployeeCode:  a.EmployeeCode,
		Department:    a.Department,
	}
	if a.TotalHours != nil {
		hours := a.TotalHours.InexactFloat64()
		resp.TotalHours = &hours
	}
	return resp
}

// MonthFilter selects an optional (month, year) pair for history queries.
// Both must be given together; zero values mean no month restriction.
type MonthFilter struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (f *MonthFilter) Validate() error {
	var errs validator.ValidationErrors

	if (f.Month == 0) != (f.Year == 0) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month and year must be provided together",
		})
	}
	if f.Month != 0 && !validator.IsValidMonth(f.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if f.Year != 0 && (f.Year < 1970 || f.Year > 9999) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a four-digit year",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListFilter narrows the manager-wide record listing.
type ListFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status     *string `json:"status,omitempty"`
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil {
		validStatuses := []string{"present", "late", "half-day"}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: present, late, half-day",
			})
		}
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if (f.StartDate == nil) != (f.EndDate == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date and end_date must be provided together",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RangeFilter selects an optional date range; the service supplies
// month-to-date defaults when empty.
type RangeFilter struct {
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f *RangeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MonthlySummaryResponse struct {
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Late       int     `json:"late"`
	HalfDay    int     `json:"halfDay"`
	TotalHours float64 `json:"totalHours"`
}

type TeamSummaryResponse struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Late    int `json:"late"`
	Absent  int `json:"absent"`
	HalfDay int `json:"halfDay"`
}

type DailySnapshotResponse struct {
	Present      []AttendanceResponse `json:"present"`
	Absent       []user.UserResponse  `json:"absent"`
	PresentCount int                  `json:"presentCount"`
	AbsentCount  int                  `json:"absentCount"`
	Late         []AttendanceResponse `json:"late"`
}
