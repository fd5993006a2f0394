package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hrms-lite/hrms-api/internal/core/domain"
	"github.com/hrms-lite/hrms-api/internal/core/ports"
)

const dayFormat = "2006-01-02"

type attendanceService struct {
	attendance ports.AttendanceRepository
	employees  ports.EmployeeRepository
	log        zerolog.Logger
}

// NewAttendanceService returns an AttendanceService implementation.
func NewAttendanceService(attendance ports.AttendanceRepository, employees ports.EmployeeRepository, log zerolog.Logger) ports.AttendanceService {
	return &attendanceService{attendance: attendance, employees: employees, log: log}
}

// List returns attendance records, optionally windowed by a single date or an
// inclusive date range. A complete range wins over a single date when both
// are supplied.
func (s *attendanceService) List(ctx context.Context, input ports.ListAttendanceInput) ([]*domain.AttendanceRecord, error) {
	var filter ports.ListAttendanceFilter

	switch {
	case !input.StartDate.IsZero() && !input.EndDate.IsZero():
		filter.From = domain.NormalizeDate(input.StartDate)
		filter.To = domain.NormalizeDate(input.EndDate).AddDate(0, 0, 1)
	case !input.Date.IsZero():
		filter.From = domain.NormalizeDate(input.Date)
		filter.To = filter.From.AddDate(0, 0, 1)
	}

	return s.attendance.ListRecords(ctx, filter)
}

// ListByEmployee returns the employee's records, optionally windowed by an
// inclusive [startDate, endDate] range.
func (s *attendanceService) ListByEmployee(ctx context.Context, id string, startDate, endDate time.Time) ([]*domain.AttendanceRecord, error) {
	employee, err := s.resolveEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	filter := ports.ListAttendanceFilter{EmployeeID: &employee.ID}
	if !startDate.IsZero() && !endDate.IsZero() {
		filter.From = domain.NormalizeDate(startDate)
		filter.To = domain.NormalizeDate(endDate).AddDate(0, 0, 1)
	}

	return s.attendance.ListRecords(ctx, filter)
}

// Mark upserts the record for (employee, calendar day). The upsert is a
// single conditional write in the repository, so two concurrent marks for
// the same pair cannot create duplicates or lose an update.
func (s *attendanceService) Mark(ctx context.Context, input ports.MarkAttendanceInput) (*ports.MarkResult, error) {
	status := domain.AttendanceStatus(input.Status)
	if !status.Valid() {
		return nil, &domain.ValidationError{Messages: []string{`status must be either "Present" or "Absent"`}}
	}

	employee, err := s.resolveEmployee(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}

	date := domain.NormalizeDate(input.Date)
	record, created, err := s.attendance.Upsert(ctx, employee.ID, date, status)
	if err != nil {
		s.log.Error().Err(err).Str("employee_id", input.EmployeeID).Msg("failed to mark attendance")
		return nil, err
	}

	s.log.Info().
		Str("employee_id", employee.EmployeeID).
		Str("date", date.Format(dayFormat)).
		Str("status", string(status)).
		Bool("created", created).
		Msg("attendance marked")

	return &ports.MarkResult{
		Record:  joinRecord(record, employee),
		Created: created,
	}, nil
}

// Summary aggregates the employee's records by status.
func (s *attendanceService) Summary(ctx context.Context, id string) (*ports.EmployeeSummaryResult, error) {
	employee, err := s.resolveEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	summary, err := s.attendance.SummaryByEmployee(ctx, employee.ID)
	if err != nil {
		return nil, err
	}

	return &ports.EmployeeSummaryResult{Employee: employee, Summary: summary}, nil
}

// Dashboard computes the aggregate view: headcount, today's attendance split,
// and per-department counts.
func (s *attendanceService) Dashboard(ctx context.Context) (*ports.DashboardResult, error) {
	total, err := s.employees.Count(ctx)
	if err != nil {
		return nil, err
	}

	today := domain.NormalizeDate(time.Now())
	tomorrow := today.AddDate(0, 0, 1)

	present, absent, err := s.attendance.CountByStatus(ctx, today, tomorrow)
	if err != nil {
		return nil, err
	}

	departments, err := s.employees.CountByDepartment(ctx)
	if err != nil {
		return nil, err
	}

	notMarked := total - present - absent
	if notMarked < 0 {
		// More marks than employees means an orphaned attendance row
		// survived a cascade delete.
		s.log.Error().
			Int64("total", total).
			Int64("present", present).
			Int64("absent", absent).
			Msg("attendance count exceeds employee count")
	}

	return &ports.DashboardResult{
		TotalEmployees: total,
		Today: ports.TodayStats{
			Date:      today.Format(dayFormat),
			Present:   present,
			Absent:    absent,
			NotMarked: notMarked,
		},
		DepartmentStats: departments,
	}, nil
}

func (s *attendanceService) resolveEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.employees.FindByID(ctx, oid)
}

// joinRecord shapes an upserted attendance row into the joined view using the
// employee already fetched for the existence check.
func joinRecord(a *domain.Attendance, e *domain.Employee) *domain.AttendanceRecord {
	return &domain.AttendanceRecord{
		ID: a.ID,
		Employee: domain.EmployeeRef{
			ID:         e.ID,
			EmployeeID: e.EmployeeID,
			FullName:   e.FullName,
			Email:      e.Email,
			Department: e.Department,
		},
		Date:      a.Date,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
