package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

const (
	historyLimit = 100
	listLimit    = 500
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	user.UserRepository
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, userRepository user.UserRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		UserRepository:       userRepository,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	now := time.Now()
	today := attendance.DayOf(now)

	existing, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if existing != nil && existing.CheckInTime != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	status := attendance.DeriveStatus(now)

	if existing != nil {
		// A row without a check-in should not occur under normal flow;
		// populate it in place instead of failing.
		existing.CheckInTime = &now
		existing.Status = status
		if err := s.AttendanceRepository.Update(ctx, *existing); err != nil {
			return attendance.AttendanceResponse{}, err
		}
		return existing.ToResponse(), nil
	}

	record, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		UserID:      userID,
		Date:        today,
		CheckInTime: &now,
		Status:      status,
	})
	if err != nil {
		// The store's (user_id, date) uniqueness turns a lost race between
		// two concurrent check-ins into ErrAlreadyCheckedIn.
		return attendance.AttendanceResponse{}, err
	}

	return record.ToResponse(), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	now := time.Now()
	today := attendance.DayOf(now)

	record, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if record == nil || record.CheckInTime == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOutTime != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	record.CheckOutTime = &now
	totalHours := attendance.TotalHoursBetween(*record.CheckInTime, now)
	record.TotalHours = &totalHours
	// Status stays as set at check-in; check-out never reclassifies.

	if err := s.AttendanceRepository.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return record.ToResponse(), nil
}

// TodayStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TodayStatus(ctx context.Context, userID string) (*attendance.AttendanceResponse, error) {
	today := attendance.DayOf(time.Now())

	record, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	resp := record.ToResponse()
	return &resp, nil
}

// MyHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MyHistory(ctx context.Context, userID string, filter attendance.MonthFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var start, end *time.Time
	if filter.Month != 0 {
		first, last := attendance.MonthBounds(filter.Year, time.Month(filter.Month))
		start, end = &first, &last
	}

	records, err := s.AttendanceRepository.ListByUser(ctx, userID, start, end, historyLimit)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// MySummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MySummary(ctx context.Context, userID string, filter attendance.MonthFilter) (attendance.MonthlySummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	now := time.Now()
	year, month := filter.Year, time.Month(filter.Month)
	if filter.Month == 0 {
		year, month = now.Year(), now.Month()
	}

	start, end := attendance.MonthBounds(year, month)
	records, err := s.AttendanceRepository.ListByUser(ctx, userID, &start, &end, historyLimit)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	tally := attendance.MonthlySummary(records, year, month)
	return attendance.MonthlySummaryResponse{
		Present:    tally.Present,
		Absent:     tally.Absent,
		Late:       tally.Late,
		HalfDay:    tally.HalfDay,
		TotalHours: tally.TotalHours.InexactFloat64(),
	}, nil
}

// ListAll implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAll(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.List(ctx, filter, listLimit)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// EmployeeHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) EmployeeHistory(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	if validator.IsEmpty(employeeID) {
		return nil, validator.ValidationErrors{{
			Field:   "id",
			Message: "employee id is required",
		}}
	}

	records, err := s.AttendanceRepository.ListByUser(ctx, employeeID, nil, nil, historyLimit)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// TeamSummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TeamSummary(ctx context.Context, filter attendance.RangeFilter) (attendance.TeamSummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.TeamSummaryResponse{}, err
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := now

	if filter.StartDate != nil && *filter.StartDate != "" {
		parsed, _ := validator.IsValidDate(*filter.StartDate)
		start = parsed
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		parsed, _ := validator.IsValidDate(*filter.EndDate)
		end = parsed
	}

	records, err := s.AttendanceRepository.ListInRange(ctx, start, end)
	if err != nil {
		return attendance.TeamSummaryResponse{}, err
	}

	return attendance.TeamSummary(records), nil
}

// TodaySnapshot implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TodaySnapshot(ctx context.Context) (attendance.DailySnapshotResponse, error) {
	today := attendance.DayOf(time.Now())

	records, err := s.AttendanceRepository.ListCheckedInForDate(ctx, today)
	if err != nil {
		return attendance.DailySnapshotResponse{}, err
	}

	employees, err := s.UserRepository.ListByRole(ctx, user.RoleEmployee)
	if err != nil {
		return attendance.DailySnapshotResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	snapshot := attendance.TeamDailySnapshot(employees, records)

	resp := attendance.DailySnapshotResponse{
		Present:      toResponses(snapshot.Present),
		Absent:       make([]user.UserResponse, 0, len(snapshot.Absent)),
		Late:         toResponses(snapshot.Late),
		PresentCount: len(snapshot.Present),
		AbsentCount:  len(snapshot.Absent),
	}
	for _, e := range snapshot.Absent {
		resp.Absent = append(resp.Absent, e.ToResponse())
	}

	return resp, nil
}

func toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, r.ToResponse())
	}
	return responses
}
