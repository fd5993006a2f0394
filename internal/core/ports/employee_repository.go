package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hrms-lite/hrms-api/internal/core/domain"
)

// EmployeeRepository defines persistence operations for employee records.
type EmployeeRepository interface {
	// Create inserts a new employee and fills in its generated ID.
	// A racing insert on a natural key surfaces as *domain.DuplicateKeyError.
	Create(ctx context.Context, e *domain.Employee) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Employee, error)
	// FindByEmployeeID looks up by the uppercase-normalized business key.
	FindByEmployeeID(ctx context.Context, employeeID string) (*domain.Employee, error)
	// FindByEmail looks up by the lowercase-normalized email.
	FindByEmail(ctx context.Context, email string) (*domain.Employee, error)
	// List returns all employees ordered by creation time, newest first.
	List(ctx context.Context) ([]*domain.Employee, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	// CountByDepartment returns employee counts per department,
	// sorted by count descending.
	CountByDepartment(ctx context.Context) ([]domain.DepartmentCount, error)
}
