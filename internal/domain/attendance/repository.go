package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// The store enforces UNIQUE (user_id, date); Create surfaces a conflict on
// that key as ErrAlreadyCheckedIn so concurrent same-day check-ins cannot
// both commit.
type AttendanceRepository interface {
	// Create inserts a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// Update mutates check-in/check-out/status/total-hours of an existing record
	Update(ctx context.Context, attendance Attendance) error

	// GetByUserAndDate retrieves the record for (user, date).
	// Returns (nil, nil) when no record exists; absence is not an error.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	// ListByUser retrieves a user's records newest first, capped at limit.
	// A non-nil month range restricts to [start, end].
	ListByUser(ctx context.Context, userID string, start, end *time.Time, limit int) ([]Attendance, error)

	// List retrieves records across employees with filters, newest first,
	// joined with employee display fields. A limit <= 0 means no cap.
	List(ctx context.Context, filter ListFilter, limit int) ([]Attendance, error)

	// ListCheckedInForDate retrieves records for one date that have a
	// check-in, joined with employee display fields
	ListCheckedInForDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// ListInRange retrieves all records with date in [start, end]
	ListInRange(ctx context.Context, start, end time.Time) ([]Attendance, error)
}
