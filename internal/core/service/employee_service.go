package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hrms-lite/hrms-api/internal/core/domain"
	"github.com/hrms-lite/hrms-api/internal/core/ports"
)

type EmployeeService struct {
	employees  ports.EmployeeRepository
	attendance ports.AttendanceRepository
	logger     zerolog.Logger
}

func NewEmployeeService(employees ports.EmployeeRepository, attendance ports.AttendanceRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{employees: employees, attendance: attendance, logger: logger}
}

// List returns all employees, newest first.
func (s *EmployeeService) List(ctx context.Context) ([]*domain.Employee, error) {
	return s.employees.List(ctx)
}

// Get resolves a single employee by its opaque id.
func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.employees.FindByID(ctx, oid)
}

// Create normalizes the natural keys, rejects collisions, and persists a new
// employee. The pre-checks give deterministic field attribution; the unique
// indexes remain the authority under concurrent creates.
func (s *EmployeeService) Create(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	employeeID := strings.ToUpper(strings.TrimSpace(input.EmployeeID))
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if existing, err := s.employees.FindByEmployeeID(ctx, employeeID); err != nil && !errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, &domain.DuplicateKeyError{Field: "employeeId"}
	}

	if existing, err := s.employees.FindByEmail(ctx, email); err != nil && !errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, &domain.DuplicateKeyError{Field: "email"}
	}

	now := time.Now().UTC()
	employee := &domain.Employee{
		EmployeeID: employeeID,
		FullName:   strings.TrimSpace(input.FullName),
		Email:      email,
		Department: strings.TrimSpace(input.Department),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.employees.Create(ctx, employee); err != nil {
		s.logger.Error().Err(err).Str("employee_id", employeeID).Msg("failed to create employee")
		return nil, err
	}

	s.logger.Info().
		Str("id", employee.ID.Hex()).
		Str("employee_id", employee.EmployeeID).
		Str("department", employee.Department).
		Msg("employee created")

	return employee, nil
}

// Delete removes the employee and all attendance records referencing it.
// Children go first so a concurrent reader can never observe an orphaned
// attendance row.
func (s *EmployeeService) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	employee, err := s.employees.FindByID(ctx, oid)
	if err != nil {
		return 0, err
	}

	removed, err := s.attendance.DeleteByEmployee(ctx, oid)
	if err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("failed to cascade attendance delete")
		return 0, err
	}

	if err := s.employees.Delete(ctx, oid); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("failed to delete employee")
		return removed, err
	}

	s.logger.Info().
		Str("id", id).
		Str("employee_id", employee.EmployeeID).
		Int64("attendance_removed", removed).
		Msg("employee deleted")

	return removed, nil
}

// parseID converts an opaque id into an ObjectID, distinguishing a malformed
// id (Bad Request) from a well-formed id with no match (Not Found).
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}
