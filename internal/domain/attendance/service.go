package attendance

import "context"

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records the first check-in of the day for the employee
	CheckIn(ctx context.Context, userID string) (AttendanceResponse, error)

	// CheckOut closes today's open session and computes total hours
	CheckOut(ctx context.Context, userID string) (AttendanceResponse, error)

	// TodayStatus returns today's record, or nil when none exists
	TodayStatus(ctx context.Context, userID string) (*AttendanceResponse, error)

	// MyHistory retrieves the employee's records newest first, capped at 100
	MyHistory(ctx context.Context, userID string, filter MonthFilter) ([]AttendanceResponse, error)

	// MySummary tallies the employee's records for a month (default current)
	MySummary(ctx context.Context, userID string, filter MonthFilter) (MonthlySummaryResponse, error)

	// ListAll retrieves records across employees (manager), capped at 500
	ListAll(ctx context.Context, filter ListFilter) ([]AttendanceResponse, error)

	// EmployeeHistory retrieves one employee's records (manager), capped at 100
	EmployeeHistory(ctx context.Context, employeeID string) ([]AttendanceResponse, error)

	// TeamSummary tallies all records in a range (manager, default month-to-date)
	TeamSummary(ctx context.Context, filter RangeFilter) (TeamSummaryResponse, error)

	// TodaySnapshot partitions the employee population for today (manager)
	TodaySnapshot(ctx context.Context) (DailySnapshotResponse, error)
}
