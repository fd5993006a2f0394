package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttendanceStatus is the two-valued attendance state.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// Valid reports whether s is a known attendance status.
func (s AttendanceStatus) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Attendance is a single attendance record. At most one record exists per
// (employee, date) pair; Date always holds a normalized start-of-day instant.
type Attendance struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EmployeeID primitive.ObjectID `json:"employeeId" bson:"employee_id"`
	Date       time.Time          `json:"date" bson:"date"`
	Status     AttendanceStatus   `json:"status" bson:"status"`
	CreatedAt  time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updated_at"`
}

// EmployeeRef carries the minimal employee fields attendance reads are
// joined with.
type EmployeeRef struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	EmployeeID string             `json:"employeeId" bson:"employee_id"`
	FullName   string             `json:"fullName" bson:"full_name"`
	Email      string             `json:"email" bson:"email"`
	Department string             `json:"department" bson:"department"`
}

// AttendanceRecord is an attendance row joined with its employee.
type AttendanceRecord struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Employee  EmployeeRef        `json:"employee" bson:"employee"`
	Date      time.Time          `json:"date" bson:"date"`
	Status    AttendanceStatus   `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"`
}

// AttendanceSummary aggregates an employee's records by status.
// TotalDays is always PresentDays + AbsentDays.
type AttendanceSummary struct {
	TotalDays   int64 `json:"totalDays"`
	PresentDays int64 `json:"presentDays"`
	AbsentDays  int64 `json:"absentDays"`
}

// NormalizeDate strips the time-of-day component so all instants within the
// same UTC calendar day compare equal.
func NormalizeDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
