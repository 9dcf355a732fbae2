package dashboard

import "context"

// DashboardService assembles the role-scoped landing views
type DashboardService interface {
	// EmployeeDashboard builds today's record, month-to-date stats and the
	// last week of history for one employee
	EmployeeDashboard(ctx context.Context, userID string) (EmployeeDashboardResponse, error)

	// ManagerDashboard builds today's team partition, the weekly trend and
	// the department histogram
	ManagerDashboard(ctx context.Context) (ManagerDashboardResponse, error)
}
