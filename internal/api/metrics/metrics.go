// Package metrics defines and registers all custom Prometheus metrics for the
// HRMS Lite API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto; request-level metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hrms"

// EmployeesCreatedTotal counts created employee records.
// Label:
//   - department: the department the employee was created under
var EmployeesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employees_created_total",
		Help:      "Total number of employees created, by department.",
	},
	[]string{"department"},
)

// EmployeesDeletedTotal counts employee deletions (each includes the cascade
// over the employee's attendance records).
var EmployeesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employees_deleted_total",
		Help:      "Total number of employees deleted.",
	},
)

// AttendanceMarkedTotal counts attendance mark operations.
// Labels:
//   - status: "Present" or "Absent"
//   - outcome: "created" (new record) or "updated" (upsert hit an existing day)
var AttendanceMarkedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "attendance_marked_total",
		Help:      "Total number of attendance mark operations, by status and outcome.",
	},
	[]string{"status", "outcome"},
)
