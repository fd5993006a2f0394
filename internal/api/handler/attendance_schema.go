package handler

import "time"

// --- Request types ---

type markAttendanceRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Date       string `json:"date"       validate:"required"`
	Status     string `json:"status"     validate:"required,oneof=Present Absent"`
}

// --- Response types ---

// employeeRefResponse is the minimal employee view embedded in attendance rows.
type employeeRefResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type attendanceRecordResponse struct {
	ID        string              `json:"id"`
	Employee  employeeRefResponse `json:"employee"`
	Date      time.Time           `json:"date"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

type listAttendanceResponse struct {
	Success bool                       `json:"success"`
	Count   int                        `json:"count"`
	Data    []attendanceRecordResponse `json:"data"`
}

type markAttendanceResponse struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message"`
	Data    attendanceRecordResponse `json:"data"`
}

// summaryEmployeeResponse identifies the employee a summary belongs to.
type summaryEmployeeResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	FullName   string `json:"fullName"`
}

type attendanceSummaryResponse struct {
	TotalDays   int64 `json:"totalDays"`
	PresentDays int64 `json:"presentDays"`
	AbsentDays  int64 `json:"absentDays"`
}

type summaryResponse struct {
	Success bool        `json:"success"`
	Data    summaryData `json:"data"`
}

type summaryData struct {
	Employee summaryEmployeeResponse   `json:"employee"`
	Summary  attendanceSummaryResponse `json:"summary"`
}

type todayStatsResponse struct {
	Date      string `json:"date"`
	Present   int64  `json:"present"`
	Absent    int64  `json:"absent"`
	NotMarked int64  `json:"notMarked"`
}

type departmentStatResponse struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

type dashboardResponse struct {
	Success bool          `json:"success"`
	Data    dashboardData `json:"data"`
}

type dashboardData struct {
	TotalEmployees  int64                    `json:"totalEmployees"`
	TodayStats      todayStatsResponse       `json:"todayStats"`
	DepartmentStats []departmentStatResponse `json:"departmentStats"`
}
