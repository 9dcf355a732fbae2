package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/dashboard"
	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
)

const recentDays = 7

type DashboardServiceImpl struct {
	attendance.AttendanceRepository
	user.UserRepository
}

func NewDashboardService(attendanceRepository attendance.AttendanceRepository, userRepository user.UserRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		AttendanceRepository: attendanceRepository,
		UserRepository:       userRepository,
	}
}

// EmployeeDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) EmployeeDashboard(ctx context.Context, userID string) (dashboard.EmployeeDashboardResponse, error) {
	now := time.Now()
	today := attendance.DayOf(now)

	todayRecord, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return dashboard.EmployeeDashboardResponse{}, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthRecords, err := s.AttendanceRepository.ListByUser(ctx, userID, &monthStart, &now, 100)
	if err != nil {
		return dashboard.EmployeeDashboardResponse{}, err
	}

	stats := dashboard.EmployeeStats{}
	totalHours := decimal.Zero
	for _, r := range monthRecords {
		switch r.Status {
		case attendance.StatusPresent:
			stats.Present++
		case attendance.StatusLate:
			stats.Late++
		}
		if r.TotalHours != nil {
			totalHours = totalHours.Add(*r.TotalHours)
		}
	}
	stats.TotalHours = totalHours.InexactFloat64()
	// Month-to-date absence, clamped at zero; the unclamped variant lives in
	// the monthly summary.
	if absent := now.Day() - len(monthRecords); absent > 0 {
		stats.Absent = absent
	}

	weekAgo := now.AddDate(0, 0, -recentDays)
	recent, err := s.AttendanceRepository.ListByUser(ctx, userID, &weekAgo, &now, recentDays)
	if err != nil {
		return dashboard.EmployeeDashboardResponse{}, err
	}

	resp := dashboard.EmployeeDashboardResponse{
		Stats:            stats,
		RecentAttendance: make([]attendance.AttendanceResponse, 0, len(recent)),
	}
	if todayRecord != nil {
		r := todayRecord.ToResponse()
		resp.Today = &r
	}
	for _, r := range recent {
		resp.RecentAttendance = append(resp.RecentAttendance, r.ToResponse())
	}

	return resp, nil
}

// ManagerDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) ManagerDashboard(ctx context.Context) (dashboard.ManagerDashboardResponse, error) {
	now := time.Now()
	today := attendance.DayOf(now)

	employees, err := s.UserRepository.ListByRole(ctx, user.RoleEmployee)
	if err != nil {
		return dashboard.ManagerDashboardResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	todayRecords, err := s.AttendanceRepository.ListCheckedInForDate(ctx, today)
	if err != nil {
		return dashboard.ManagerDashboardResponse{}, err
	}

	snapshot := attendance.TeamDailySnapshot(employees, todayRecords)

	weekStart := today.AddDate(0, 0, -recentDays)
	weekRecords, err := s.AttendanceRepository.ListInRange(ctx, weekStart, today)
	if err != nil {
		return dashboard.ManagerDashboardResponse{}, err
	}

	resp := dashboard.ManagerDashboardResponse{
		TotalEmployees: len(employees),
		TodayPresent:   len(snapshot.Present),
		TodayAbsent:    len(snapshot.Absent),
		LateToday:      len(snapshot.Late),
		AbsentList:     make([]user.UserResponse, 0, len(snapshot.Absent)),
		LateList:       make([]attendance.AttendanceResponse, 0, len(snapshot.Late)),
		WeeklyTrend:    attendance.DateHistogram(weekRecords),
		DepartmentWise: attendance.DepartmentHistogram(employees),
	}
	for _, e := range snapshot.Absent {
		resp.AbsentList = append(resp.AbsentList, e.ToResponse())
	}
	for _, r := range snapshot.Late {
		resp.LateList = append(resp.LateList, r.ToResponse())
	}

	return resp, nil
}
