package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrms-lite/hrms-api/internal/api/metrics"
	"github.com/hrms-lite/hrms-api/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for the employee directory.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// List handles GET /api/employees.
//
// @Summary      List all employees
// @Tags         employees
// @Produce      json
// @Success      200  {object}  listEmployeesResponse
// @Failure      500  {object}  map[string]any
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeListResponse(employees))
}

// Get handles GET /api/employees/:id.
//
// @Summary      Get a single employee by id
// @Tags         employees
// @Produce      json
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  getEmployeeResponse
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	employee, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, getEmployeeResponse{
		Success: true,
		Data:    toEmployeeResponse(employee),
	})
}

// Create handles POST /api/employees.
//
// @Summary      Create a new employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body      createEmployeeRequest  true  "Employee details"
// @Success      201   {object}  createEmployeeResponse
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	employee, err := h.service.Create(c.Request().Context(), ports.CreateEmployeeInput{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		return err
	}

	metrics.EmployeesCreatedTotal.WithLabelValues(employee.Department).Inc()

	return c.JSON(http.StatusCreated, createEmployeeResponse{
		Success: true,
		Message: "Employee created successfully",
		Data:    toEmployeeResponse(employee),
	})
}

// Delete handles DELETE /api/employees/:id. The employee's attendance records
// are removed along with it.
//
// @Summary      Delete an employee and its attendance records
// @Tags         employees
// @Produce      json
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  deleteEmployeeResponse
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if _, err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.EmployeesDeletedTotal.Inc()

	return c.JSON(http.StatusOK, deleteEmployeeResponse{
		Success: true,
		Message: "Employee and associated attendance records deleted successfully",
		Data:    map[string]any{},
	})
}
