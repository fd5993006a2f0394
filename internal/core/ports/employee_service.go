package ports

import (
	"context"

	"github.com/hrms-lite/hrms-api/internal/core/domain"
)

// CreateEmployeeInput carries the data needed to create an employee.
// The service normalizes casing and whitespace before persisting.
type CreateEmployeeInput struct {
	EmployeeID string
	FullName   string
	Email      string
	Department string
}

// EmployeeService defines use-case operations for the employee directory.
type EmployeeService interface {
	List(ctx context.Context) ([]*domain.Employee, error)
	// Get resolves an opaque id. A malformed id yields domain.ErrInvalidID,
	// a well-formed id with no match yields domain.ErrEmployeeNotFound.
	Get(ctx context.Context, id string) (*domain.Employee, error)
	Create(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error)
	// Delete removes the employee and cascades to all of its attendance
	// records (children first). Returns the number of attendance rows removed.
	Delete(ctx context.Context, id string) (int64, error)
}
