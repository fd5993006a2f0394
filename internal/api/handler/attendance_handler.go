package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hrms-lite/hrms-api/internal/api/metrics"
	"github.com/hrms-lite/hrms-api/internal/core/domain"
	"github.com/hrms-lite/hrms-api/internal/core/ports"
)

// AttendanceHandler handles HTTP requests for the attendance ledger.
type AttendanceHandler struct {
	service ports.AttendanceService
}

func NewAttendanceHandler(service ports.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

// List handles GET /api/attendance with optional ?date= or ?startDate=&endDate=.
//
// @Summary      List attendance records
// @Tags         attendance
// @Produce      json
// @Param        date       query     string  false  "Single day filter (YYYY-MM-DD)"
// @Param        startDate  query     string  false  "Range start (YYYY-MM-DD)"
// @Param        endDate    query     string  false  "Range end, inclusive (YYYY-MM-DD)"
// @Success      200        {object}  listAttendanceResponse
// @Failure      400        {object}  map[string]any
// @Router       /api/attendance [get]
func (h *AttendanceHandler) List(c echo.Context) error {
	date, err := parseQueryDate(c, "date")
	if err != nil {
		return err
	}
	startDate, endDate, err := parseQueryRange(c)
	if err != nil {
		return err
	}

	records, err := h.service.List(c.Request().Context(), ports.ListAttendanceInput{
		Date:      date,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAttendanceListResponse(records))
}

// ListByEmployee handles GET /api/attendance/employee/:employeeId.
//
// @Summary      List attendance for one employee
// @Tags         attendance
// @Produce      json
// @Param        employeeId  path      string  true   "Employee id"
// @Param        startDate   query     string  false  "Range start (YYYY-MM-DD)"
// @Param        endDate     query     string  false  "Range end, inclusive (YYYY-MM-DD)"
// @Success      200         {object}  listAttendanceResponse
// @Failure      400         {object}  map[string]any
// @Failure      404         {object}  map[string]any
// @Router       /api/attendance/employee/{employeeId} [get]
func (h *AttendanceHandler) ListByEmployee(c echo.Context) error {
	startDate, endDate, err := parseQueryRange(c)
	if err != nil {
		return err
	}

	records, err := h.service.ListByEmployee(c.Request().Context(), c.Param("employeeId"), startDate, endDate)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAttendanceListResponse(records))
}

// Mark handles POST /api/attendance. Marking the same employee and day twice
// updates the existing record in place: 201 on creation, 200 on update.
//
// @Summary      Mark attendance for an employee
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        body  body      markAttendanceRequest  true  "Attendance details"
// @Success      200   {object}  markAttendanceResponse  "existing record updated"
// @Success      201   {object}  markAttendanceResponse  "new record created"
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/attendance [post]
func (h *AttendanceHandler) Mark(c echo.Context) error {
	var req markAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return &domain.ValidationError{Messages: []string{fmt.Sprintf("date %q is not a valid date", req.Date)}}
	}

	result, err := h.service.Mark(c.Request().Context(), ports.MarkAttendanceInput{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     req.Status,
	})
	if err != nil {
		return err
	}

	outcome := "updated"
	code := http.StatusOK
	message := "Attendance updated successfully"
	if result.Created {
		outcome = "created"
		code = http.StatusCreated
		message = "Attendance marked successfully"
	}
	metrics.AttendanceMarkedTotal.WithLabelValues(req.Status, outcome).Inc()

	return c.JSON(code, markAttendanceResponse{
		Success: true,
		Message: message,
		Data:    toAttendanceRecordResponse(result.Record),
	})
}

// Summary handles GET /api/attendance/summary/:employeeId.
//
// @Summary      Attendance summary for an employee
// @Tags         attendance
// @Produce      json
// @Param        employeeId  path      string  true  "Employee id"
// @Success      200         {object}  summaryResponse
// @Failure      400         {object}  map[string]any
// @Failure      404         {object}  map[string]any
// @Router       /api/attendance/summary/{employeeId} [get]
func (h *AttendanceHandler) Summary(c echo.Context) error {
	result, err := h.service.Summary(c.Request().Context(), c.Param("employeeId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSummaryResponse(result))
}

// Dashboard handles GET /api/attendance/dashboard.
//
// @Summary      Dashboard totals
// @Tags         attendance
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Failure      500  {object}  map[string]any
// @Router       /api/attendance/dashboard [get]
func (h *AttendanceHandler) Dashboard(c echo.Context) error {
	result, err := h.service.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDashboardResponse(result))
}

// parseDate accepts a plain calendar date or an RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// parseQueryDate reads an optional date query parameter; a zero time means
// the parameter was not supplied.
func parseQueryDate(c echo.Context, name string) (time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := parseDate(raw)
	if err != nil {
		return time.Time{}, &domain.ValidationError{Messages: []string{fmt.Sprintf("%s %q is not a valid date", name, raw)}}
	}
	return t, nil
}

func parseQueryRange(c echo.Context) (start, end time.Time, err error) {
	if start, err = parseQueryDate(c, "startDate"); err != nil {
		return
	}
	end, err = parseQueryDate(c, "endDate")
	return
}
