package handler

import "time"

// --- Request types ---

type createEmployeeRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	FullName   string `json:"fullName"   validate:"required,min=2,max=100"`
	Email      string `json:"email"      validate:"required,email"`
	Department string `json:"department" validate:"required,oneof=Engineering 'Human Resources' Finance Marketing Sales Operations IT Legal Other"`
}

// --- Response types ---
// Response shapes are owned by the transport layer so the JSON contract is
// not coupled to internal domain changes.

type employeeResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	FullName   string    `json:"fullName"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type listEmployeesResponse struct {
	Success bool               `json:"success"`
	Count   int                `json:"count"`
	Data    []employeeResponse `json:"data"`
}

type getEmployeeResponse struct {
	Success bool             `json:"success"`
	Data    employeeResponse `json:"data"`
}

type createEmployeeResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    employeeResponse `json:"data"`
}

type deleteEmployeeResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}
