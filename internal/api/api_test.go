package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hrms-lite/hrms-api/internal/api/handler"
	"github.com/hrms-lite/hrms-api/internal/core/domain"
	"github.com/hrms-lite/hrms-api/internal/core/ports"
	"github.com/hrms-lite/hrms-api/internal/core/service"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories (transport-level tests run against the real
// services wired over these)
// ---------------------------------------------------------------------------

type memEmployeeRepo struct {
	employees map[primitive.ObjectID]*domain.Employee
	order     []primitive.ObjectID
}

func newMemEmployeeRepo() *memEmployeeRepo {
	return &memEmployeeRepo{employees: make(map[primitive.ObjectID]*domain.Employee)}
}

func (r *memEmployeeRepo) Create(_ context.Context, e *domain.Employee) error {
	e.ID = primitive.NewObjectID()
	clone := *e
	r.employees[e.ID] = &clone
	r.order = append(r.order, e.ID)
	return nil
}

func (r *memEmployeeRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *memEmployeeRepo) FindByEmployeeID(_ context.Context, employeeID string) (*domain.Employee, error) {
	for _, e := range r.employees {
		if e.EmployeeID == employeeID {
			clone := *e
			return &clone, nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *memEmployeeRepo) FindByEmail(_ context.Context, email string) (*domain.Employee, error) {
	for _, e := range r.employees {
		if e.Email == email {
			clone := *e
			return &clone, nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *memEmployeeRepo) List(_ context.Context) ([]*domain.Employee, error) {
	out := make([]*domain.Employee, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		clone := *r.employees[r.order[i]]
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memEmployeeRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

func (r *memEmployeeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.employees)), nil
}

func (r *memEmployeeRepo) CountByDepartment(_ context.Context) ([]domain.DepartmentCount, error) {
	byDept := make(map[string]int64)
	for _, e := range r.employees {
		byDept[e.Department]++
	}
	counts := make([]domain.DepartmentCount, 0, len(byDept))
	for dept, n := range byDept {
		counts = append(counts, domain.DepartmentCount{Department: dept, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	return counts, nil
}

type memAttendanceRepo struct {
	records   map[string]*domain.Attendance
	employees *memEmployeeRepo
}

func newMemAttendanceRepo(employees *memEmployeeRepo) *memAttendanceRepo {
	return &memAttendanceRepo{records: make(map[string]*domain.Attendance), employees: employees}
}

func attKey(employeeID primitive.ObjectID, date time.Time) string {
	return employeeID.Hex() + "|" + date.Format("2006-01-02")
}

func (r *memAttendanceRepo) Upsert(_ context.Context, employeeID primitive.ObjectID, date time.Time, status domain.AttendanceStatus) (*domain.Attendance, bool, error) {
	key := attKey(employeeID, date)
	if existing, ok := r.records[key]; ok {
		existing.Status = status
		existing.UpdatedAt = existing.UpdatedAt.Add(time.Second)
		clone := *existing
		return &clone, false, nil
	}
	now := time.Now().UTC()
	a := &domain.Attendance{
		ID:         primitive.NewObjectID(),
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	r.records[key] = a
	clone := *a
	return &clone, true, nil
}

func (r *memAttendanceRepo) ListRecords(_ context.Context, f ports.ListAttendanceFilter) ([]*domain.AttendanceRecord, error) {
	matched := make([]*domain.AttendanceRecord, 0)
	for _, a := range r.records {
		if f.EmployeeID != nil && a.EmployeeID != *f.EmployeeID {
			continue
		}
		if !f.From.IsZero() && a.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && !a.Date.Before(f.To) {
			continue
		}
		emp := r.employees.employees[a.EmployeeID]
		if emp == nil {
			continue
		}
		matched = append(matched, &domain.AttendanceRecord{
			ID: a.ID,
			Employee: domain.EmployeeRef{
				ID:         emp.ID,
				EmployeeID: emp.EmployeeID,
				FullName:   emp.FullName,
				Email:      emp.Email,
				Department: emp.Department,
			},
			Date:      a.Date,
			Status:    a.Status,
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
		})
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Date.After(matched[j].Date) })
	return matched, nil
}

func (r *memAttendanceRepo) SummaryByEmployee(_ context.Context, employeeID primitive.ObjectID) (*domain.AttendanceSummary, error) {
	summary := &domain.AttendanceSummary{}
	for _, a := range r.records {
		if a.EmployeeID != employeeID {
			continue
		}
		if a.Status == domain.StatusPresent {
			summary.PresentDays++
		} else {
			summary.AbsentDays++
		}
		summary.TotalDays++
	}
	return summary, nil
}

func (r *memAttendanceRepo) CountByStatus(_ context.Context, from, to time.Time) (int64, int64, error) {
	var present, absent int64
	for _, a := range r.records {
		if a.Date.Before(from) || !a.Date.Before(to) {
			continue
		}
		if a.Status == domain.StatusPresent {
			present++
		} else {
			absent++
		}
	}
	return present, absent, nil
}

func (r *memAttendanceRepo) DeleteByEmployee(_ context.Context, employeeID primitive.ObjectID) (int64, error) {
	var removed int64
	for key, a := range r.records {
		if a.EmployeeID == employeeID {
			delete(r.records, key)
			removed++
		}
	}
	return removed, nil
}

// ---------------------------------------------------------------------------
// Test server
// ---------------------------------------------------------------------------

// newTestAPI wires the real handlers, services, validator, and error handler
// onto a bare Echo instance, skipping the metrics/swagger plumbing that
// registers global state.
func newTestAPI() (*echo.Echo, *memEmployeeRepo, *memAttendanceRepo) {
	employees := newMemEmployeeRepo()
	attendance := newMemAttendanceRepo(employees)

	log := zerolog.Nop()
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, true)

	registerAPIRoutes(e,
		handler.NewEmployeeHandler(service.NewEmployeeService(employees, attendance, log)),
		handler.NewAttendanceHandler(service.NewAttendanceService(attendance, employees, log)),
	)
	return e, employees, attendance
}

func do(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json response (%d): %s", rec.Code, rec.Body.String())
	}
	return rec, resp
}

func createEmployee(t *testing.T, e *echo.Echo, employeeID, email string) string {
	t.Helper()
	body := fmt.Sprintf(`{"employeeId":%q,"fullName":"Test Person","email":%q,"department":"Engineering"}`, employeeID, email)
	rec, resp := do(t, e, http.MethodPost, "/api/employees", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create employee failed (%d): %s", rec.Code, rec.Body.String())
	}
	return resp["data"].(map[string]any)["id"].(string)
}

// ---------------------------------------------------------------------------
// Employee endpoints
// ---------------------------------------------------------------------------

func TestAPI_CreateEmployee_Success(t *testing.T) {
	e, _, _ := newTestAPI()

	rec, resp := do(t, e, http.MethodPost, "/api/employees",
		`{"employeeId":"emp001","fullName":"Ana Torres","email":"ANA@Example.com","department":"Engineering"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if resp["success"] != true {
		t.Error("expected success=true")
	}
	data := resp["data"].(map[string]any)
	if data["employeeId"] != "EMP001" || data["email"] != "ana@example.com" {
		t.Errorf("natural keys not normalized: %v", data)
	}
}

func TestAPI_CreateEmployee_MissingFields(t *testing.T) {
	e, _, _ := newTestAPI()

	rec, resp := do(t, e, http.MethodPost, "/api/employees", `{"fullName":"X Y"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if resp["success"] != false {
		t.Error("expected success=false")
	}
	errs, ok := resp["errors"].([]any)
	if !ok || len(errs) != 3 {
		t.Fatalf("expected 3 field errors (employeeId, email, department), got %v", resp["errors"])
	}
}

func TestAPI_CreateEmployee_InvalidDepartment(t *testing.T) {
	e, _, _ := newTestAPI()

	rec, _ := do(t, e, http.MethodPost, "/api/employees",
		`{"employeeId":"EMP001","fullName":"Ana Torres","email":"ana@example.com","department":"Astronautics"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown department, got %d", rec.Code)
	}
}

func TestAPI_CreateEmployee_DuplicateConflict(t *testing.T) {
	e, _, _ := newTestAPI()
	createEmployee(t, e, "EMP001", "ana@example.com")

	rec, resp := do(t, e, http.MethodPost, "/api/employees",
		`{"employeeId":"emp001","fullName":"Impostor","email":"other@example.com","department":"Sales"}`)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if msg, _ := resp["message"].(string); !strings.Contains(msg, "employeeId") {
		t.Errorf("conflict must name the duplicated field, got %q", msg)
	}
}

func TestAPI_GetEmployee_MalformedID(t *testing.T) {
	e, _, _ := newTestAPI()

	rec, resp := do(t, e, http.MethodGet, "/api/employees/not-hex", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg, _ := resp["message"].(string); !strings.Contains(msg, "Invalid employee ID") {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestAPI_GetEmployee_NotFound(t *testing.T) {
	e, _, _ := newTestAPI()

	rec, _ := do(t, e, http.MethodGet, "/api/employees/"+primitive.NewObjectID().Hex(), "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAPI_DeleteEmployee_CascadesAndDisappears(t *testing.T) {
	e, _, attendance := newTestAPI()
	id := createEmployee(t, e, "EMP001", "ana@example.com")

	body := fmt.Sprintf(`{"employeeId":%q,"date":"2026-02-03","status":"Present"}`, id)
	if rec, _ := do(t, e, http.MethodPost, "/api/attendance", body); rec.Code != http.StatusCreated {
		t.Fatalf("mark failed: %d", rec.Code)
	}

	rec, resp := do(t, e, http.MethodDelete, "/api/employees/"+id, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp["success"] != true {
		t.Error("expected success=true")
	}

	if len(attendance.records) != 0 {
		t.Errorf("expected no attendance rows to survive the cascade, found %d", len(attendance.records))
	}
	if rec, _ := do(t, e, http.MethodGet, "/api/attendance/employee/"+id, ""); rec.Code != http.StatusNotFound {
		t.Errorf("list-by-employee after delete must be 404, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// Attendance endpoints
// ---------------------------------------------------------------------------

func TestAPI_MarkAttendance_CreateThenUpdate(t *testing.T) {
	e, _, _ := newTestAPI()
	id := createEmployee(t, e, "EMP001", "ana@example.com")

	rec, resp := do(t, e, http.MethodPost, "/api/attendance",
		fmt.Sprintf(`{"employeeId":%q,"date":"2026-02-03","status":"Present"}`, id))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 on first mark, got %d: %s", rec.Code, rec.Body.String())
	}
	if msg, _ := resp["message"].(string); !strings.Contains(msg, "marked") {
		t.Errorf("creation message must contain %q, got %q", "marked", msg)
	}

	rec, resp = do(t, e, http.MethodPost, "/api/attendance",
		fmt.Sprintf(`{"employeeId":%q,"date":"2026-02-03","status":"Absent"}`, id))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on repeat mark, got %d", rec.Code)
	}
	if msg, _ := resp["message"].(string); !strings.Contains(msg, "updated") {
		t.Errorf("update message must contain %q, got %q", "updated", msg)
	}

	rec, resp = do(t, e, http.MethodGet, "/api/attendance/employee/"+id+"?startDate=2026-02-03&endDate=2026-02-03", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: %d", rec.Code)
	}
	data := resp["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("expected exactly one record for the day, got %d", len(data))
	}
	if status := data[0].(map[string]any)["status"]; status != "Absent" {
		t.Errorf("status must follow the latest mark, got %v", status)
	}
}

func TestAPI_MarkAttendance_InvalidStatus(t *testing.T) {
	e, _, _ := newTestAPI()
	id := createEmployee(t, e, "EMP001", "ana@example.com")

	rec, resp := do(t, e, http.MethodPost, "/api/attendance",
		fmt.Sprintf(`{"employeeId":%q,"date":"2026-02-03","status":"Late"}`, id))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if resp["success"] != false {
		t.Error("expected success=false")
	}
}

func TestAPI_MarkAttendance_UnknownEmployee(t *testing.T) {
	e, _, _ := newTestAPI()

	rec, _ := do(t, e, http.MethodPost, "/api/attendance",
		fmt.Sprintf(`{"employeeId":%q,"date":"2026-02-03","status":"Present"}`, primitive.NewObjectID().Hex()))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAPI_MarkAttendance_BadDate(t *testing.T) {
	e, _, _ := newTestAPI()
	id := createEmployee(t, e, "EMP001", "ana@example.com")

	rec, _ := do(t, e, http.MethodPost, "/api/attendance",
		fmt.Sprintf(`{"employeeId":%q,"date":"03/02/2026","status":"Present"}`, id))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unparseable date, got %d", rec.Code)
	}
}

func TestAPI_ListAttendance_SingleDateFilter(t *testing.T) {
	e, _, _ := newTestAPI()
	id := createEmployee(t, e, "EMP001", "ana@example.com")

	for _, day := range []string{"2026-02-02", "2026-02-03", "2026-02-04"} {
		body := fmt.Sprintf(`{"employeeId":%q,"date":%q,"status":"Present"}`, id, day)
		if rec, _ := do(t, e, http.MethodPost, "/api/attendance", body); rec.Code != http.StatusCreated {
			t.Fatalf("mark %s failed: %d", day, rec.Code)
		}
	}

	rec, resp := do(t, e, http.MethodGet, "/api/attendance?date=2026-02-03", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: %d", rec.Code)
	}
	if resp["count"] != float64(1) {
		t.Fatalf("expected count=1, got %v", resp["count"])
	}
	date := resp["data"].([]any)[0].(map[string]any)["date"].(string)
	if !strings.HasPrefix(date, "2026-02-03") {
		t.Errorf("adjacent days must be excluded, got %s", date)
	}
}

func TestAPI_Summary(t *testing.T) {
	e, _, _ := newTestAPI()
	id := createEmployee(t, e, "EMP001", "ana@example.com")

	marks := map[string]string{
		"2026-02-02": "Present",
		"2026-02-03": "Present",
		"2026-02-04": "Absent",
		"2026-02-05": "Absent",
		"2026-02-06": "Absent",
	}
	for day, status := range marks {
		body := fmt.Sprintf(`{"employeeId":%q,"date":%q,"status":%q}`, id, day, status)
		if rec, _ := do(t, e, http.MethodPost, "/api/attendance", body); rec.Code != http.StatusCreated {
			t.Fatalf("mark %s failed: %d", day, rec.Code)
		}
	}

	rec, resp := do(t, e, http.MethodGet, "/api/attendance/summary/"+id, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("summary failed: %d", rec.Code)
	}
	summary := resp["data"].(map[string]any)["summary"].(map[string]any)
	if summary["totalDays"] != float64(5) || summary["presentDays"] != float64(2) || summary["absentDays"] != float64(3) {
		t.Errorf("expected {5 2 3}, got %v", summary)
	}
}

func TestAPI_Dashboard(t *testing.T) {
	e, _, _ := newTestAPI()
	id := createEmployee(t, e, "EMP001", "ana@example.com")
	createEmployee(t, e, "EMP002", "bob@example.com")

	today := time.Now().UTC().Format("2006-01-02")
	body := fmt.Sprintf(`{"employeeId":%q,"date":%q,"status":"Present"}`, id, today)
	if rec, _ := do(t, e, http.MethodPost, "/api/attendance", body); rec.Code != http.StatusCreated {
		t.Fatalf("mark failed: %d", rec.Code)
	}

	rec, resp := do(t, e, http.MethodGet, "/api/attendance/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard failed: %d", rec.Code)
	}
	data := resp["data"].(map[string]any)
	if data["totalEmployees"] != float64(2) {
		t.Errorf("expected totalEmployees=2, got %v", data["totalEmployees"])
	}
	stats := data["todayStats"].(map[string]any)
	if stats["present"] != float64(1) || stats["absent"] != float64(0) || stats["notMarked"] != float64(1) {
		t.Errorf("unexpected today stats: %v", stats)
	}
	if stats["date"] != today {
		t.Errorf("expected date %s, got %v", today, stats["date"])
	}
}

// ---------------------------------------------------------------------------
// Envelope behavior
// ---------------------------------------------------------------------------

func TestAPI_UnknownRoute(t *testing.T) {
	e, _, _ := newTestAPI()

	rec, resp := do(t, e, http.MethodGet, "/api/unknown", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if resp["success"] != false {
		t.Error("expected success=false")
	}
	if resp["message"] != "Route /api/unknown not found" {
		t.Errorf("unexpected message: %v", resp["message"])
	}
}

func TestAPI_ListEmployees_EnvelopeAndOrder(t *testing.T) {
	e, _, _ := newTestAPI()
	createEmployee(t, e, "EMP001", "a@example.com")
	createEmployee(t, e, "EMP002", "b@example.com")

	rec, resp := do(t, e, http.MethodGet, "/api/employees", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp["success"] != true || resp["count"] != float64(2) {
		t.Errorf("unexpected envelope: %v", resp)
	}
	data := resp["data"].([]any)
	if data[0].(map[string]any)["employeeId"] != "EMP002" {
		t.Errorf("expected newest first, got %v", data[0])
	}
}
