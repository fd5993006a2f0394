package domain

import (
	"errors"
	"strings"
)

var ErrEmployeeNotFound = errors.New("employee not found")
var ErrAttendanceNotFound = errors.New("attendance record not found")
var ErrInvalidID = errors.New("invalid id format")

// DuplicateKeyError signals a unique-constraint violation on a natural key.
// Field names the offending JSON field (e.g. "employeeId", "email").
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return "duplicate value for " + e.Field
}

// ValidationError carries per-field validation messages for a 400 response.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}
