package ports

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hrms-lite/hrms-api/internal/core/domain"
)

// ListAttendanceFilter carries the query parameters for listing attendance.
// Stored dates are always normalized to start-of-day, so every date window
// is expressed as a half-open interval [From, To).
type ListAttendanceFilter struct {
	EmployeeID *primitive.ObjectID // nil = all employees
	From       time.Time           // inclusive; zero = unbounded
	To         time.Time           // exclusive; zero = unbounded
}

// AttendanceRepository defines persistence operations for the attendance ledger.
type AttendanceRepository interface {
	// Upsert atomically creates or updates the record for (employeeID, date)
	// and reports whether a new record was created. date must already be
	// normalized to start-of-day.
	Upsert(ctx context.Context, employeeID primitive.ObjectID, date time.Time, status domain.AttendanceStatus) (*domain.Attendance, bool, error)
	// ListRecords returns attendance rows joined with minimal employee
	// fields, ordered by date descending then creation time descending.
	ListRecords(ctx context.Context, filter ListAttendanceFilter) ([]*domain.AttendanceRecord, error)
	// SummaryByEmployee aggregates the employee's records by status.
	SummaryByEmployee(ctx context.Context, employeeID primitive.ObjectID) (*domain.AttendanceSummary, error)
	// CountByStatus counts records with date in [from, to), split by status.
	CountByStatus(ctx context.Context, from, to time.Time) (present, absent int64, err error)
	// DeleteByEmployee removes all records referencing the employee and
	// returns how many were deleted.
	DeleteByEmployee(ctx context.Context, employeeID primitive.ObjectID) (int64, error)
}
