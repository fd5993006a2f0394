package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Departments is the fixed set of valid department values.
var Departments = []string{
	"Engineering",
	"Human Resources",
	"Finance",
	"Marketing",
	"Sales",
	"Operations",
	"IT",
	"Legal",
	"Other",
}

// ValidDepartment reports whether d is one of the allowed departments.
func ValidDepartment(d string) bool {
	for _, v := range Departments {
		if v == d {
			return true
		}
	}
	return false
}

// Employee is an employee directory record. EmployeeID is stored uppercase
// and Email lowercase so the unique indexes are effectively case-insensitive.
type Employee struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EmployeeID string             `json:"employeeId" bson:"employee_id"`
	FullName   string             `json:"fullName" bson:"full_name"`
	Email      string             `json:"email" bson:"email"`
	Department string             `json:"department" bson:"department"`
	CreatedAt  time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updated_at"`
}

// DepartmentCount is one bucket of the per-department employee aggregation.
type DepartmentCount struct {
	Department string `json:"department" bson:"_id"`
	Count      int64  `json:"count" bson:"count"`
}
