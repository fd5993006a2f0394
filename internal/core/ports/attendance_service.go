package ports

import (
	"context"
	"time"

	"github.com/hrms-lite/hrms-api/internal/core/domain"
)

// ListAttendanceInput carries the optional date filters for the list endpoint.
// Zero values mean the filter was not supplied. When both a single Date and a
// complete [StartDate, EndDate] range are present, the range takes precedence.
type ListAttendanceInput struct {
	Date      time.Time
	StartDate time.Time
	EndDate   time.Time
}

// MarkAttendanceInput carries the data for the mark (upsert) operation.
type MarkAttendanceInput struct {
	EmployeeID string
	Date       time.Time
	Status     string
}

// MarkResult is returned by Mark. Created distinguishes a fresh record (201)
// from an in-place status update (200).
type MarkResult struct {
	Record  *domain.AttendanceRecord
	Created bool
}

// EmployeeSummaryResult pairs an employee with their attendance summary.
type EmployeeSummaryResult struct {
	Employee *domain.Employee
	Summary  *domain.AttendanceSummary
}

// TodayStats is the dashboard's attendance split for the current day.
type TodayStats struct {
	Date      string
	Present   int64
	Absent    int64
	NotMarked int64
}

// DashboardResult is the aggregate dashboard view.
type DashboardResult struct {
	TotalEmployees  int64
	Today           TodayStats
	DepartmentStats []domain.DepartmentCount
}

// AttendanceService defines use-case operations for the attendance ledger.
type AttendanceService interface {
	List(ctx context.Context, input ListAttendanceInput) ([]*domain.AttendanceRecord, error)
	// ListByEmployee requires the employee to exist and accepts an optional
	// inclusive [startDate, endDate] window.
	ListByEmployee(ctx context.Context, id string, startDate, endDate time.Time) ([]*domain.AttendanceRecord, error)
	Mark(ctx context.Context, input MarkAttendanceInput) (*MarkResult, error)
	Summary(ctx context.Context, id string) (*EmployeeSummaryResult, error)
	Dashboard(ctx context.Context) (*DashboardResult, error)
}
