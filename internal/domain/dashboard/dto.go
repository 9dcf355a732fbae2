package dashboard

import (
	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
)

// EmployeeDashboardResponse backs the employee self-service landing view
type EmployeeDashboardResponse struct {
	Today            *attendance.AttendanceResponse  `json:"today"`
	Stats            EmployeeStats                   `json:"stats"`
	RecentAttendance []attendance.AttendanceResponse `json:"recentAttendance"`
}

// EmployeeStats is the month-to-date tally for one employee. Unlike the
// monthly summary, absent is clamped at zero here.
type EmployeeStats struct {
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Late       int     `json:"late"`
	TotalHours float64 `json:"totalHours"`
}

// ManagerDashboardResponse backs the manager oversight landing view
type ManagerDashboardResponse struct {
	TotalEmployees int                             `json:"totalEmployees"`
	TodayPresent   int                             `json:"todayPresent"`
	TodayAbsent    int                             `json:"todayAbsent"`
	LateToday      int                             `json:"lateToday"`
	AbsentList     []user.UserResponse             `json:"absentList"`
	LateList       []attendance.AttendanceResponse `json:"lateList"`
	WeeklyTrend    []attendance.DateCount          `json:"weeklyTrend"`
	DepartmentWise []attendance.DepartmentCount    `json:"departmentWise"`
}
