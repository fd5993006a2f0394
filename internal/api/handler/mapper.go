package handler

import (
	"github.com/hrms-lite/hrms-api/internal/core/domain"
	"github.com/hrms-lite/hrms-api/internal/core/ports"
)

// --- Domain → HTTP response ---

func toEmployeeResponse(e *domain.Employee) employeeResponse {
	return employeeResponse{
		ID:         e.ID.Hex(),
		EmployeeID: e.EmployeeID,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
		CreatedAt:  e.CreatedAt.UTC(),
		UpdatedAt:  e.UpdatedAt.UTC(),
	}
}

func toEmployeeListResponse(employees []*domain.Employee) listEmployeesResponse {
	items := make([]employeeResponse, len(employees))
	for i, e := range employees {
		items[i] = toEmployeeResponse(e)
	}
	return listEmployeesResponse{Success: true, Count: len(items), Data: items}
}

func toAttendanceRecordResponse(r *domain.AttendanceRecord) attendanceRecordResponse {
	return attendanceRecordResponse{
		ID: r.ID.Hex(),
		Employee: employeeRefResponse{
			ID:         r.Employee.ID.Hex(),
			EmployeeID: r.Employee.EmployeeID,
			FullName:   r.Employee.FullName,
			Email:      r.Employee.Email,
			Department: r.Employee.Department,
		},
		Date:      r.Date.UTC(),
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}

func toAttendanceListResponse(records []*domain.AttendanceRecord) listAttendanceResponse {
	items := make([]attendanceRecordResponse, len(records))
	for i, r := range records {
		items[i] = toAttendanceRecordResponse(r)
	}
	return listAttendanceResponse{Success: true, Count: len(items), Data: items}
}

func toSummaryResponse(r *ports.EmployeeSummaryResult) summaryResponse {
	return summaryResponse{
		Success: true,
		Data: summaryData{
			Employee: summaryEmployeeResponse{
				ID:         r.Employee.ID.Hex(),
				EmployeeID: r.Employee.EmployeeID,
				FullName:   r.Employee.FullName,
			},
			Summary: attendanceSummaryResponse{
				TotalDays:   r.Summary.TotalDays,
				PresentDays: r.Summary.PresentDays,
				AbsentDays:  r.Summary.AbsentDays,
			},
		},
	}
}

func toDashboardResponse(r *ports.DashboardResult) dashboardResponse {
	stats := make([]departmentStatResponse, len(r.DepartmentStats))
	for i, d := range r.DepartmentStats {
		stats[i] = departmentStatResponse{Department: d.Department, Count: d.Count}
	}
	return dashboardResponse{
		Success: true,
		Data: dashboardData{
			TotalEmployees: r.TotalEmployees,
			TodayStats: todayStatsResponse{
				Date:      r.Today.Date,
				Present:   r.Today.Present,
				Absent:    r.Today.Absent,
				NotMarked: r.Today.NotMarked,
			},
			DepartmentStats: stats,
		},
	}
}
