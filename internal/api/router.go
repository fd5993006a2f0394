package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hrms-lite/hrms-api/internal/api/handler"
	"github.com/hrms-lite/hrms-api/internal/core/ports"
	"github.com/hrms-lite/hrms-api/internal/core/service"
	"github.com/hrms-lite/hrms-api/internal/infrastructure/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	cfg *config.Config,
	log zerolog.Logger,
	db *mongo.Database,
	employees ports.EmployeeRepository,
	attendance ports.AttendanceRepository,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Production())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: cfg.CORSOrigin != "*",
	}))
	e.Use(echoprometheus.NewMiddleware("hrms"))

	// --- Dependencies ---
	employeeService := service.NewEmployeeService(employees, attendance, log)
	attendanceService := service.NewAttendanceService(attendance, employees, log)

	employeeHandler := handler.NewEmployeeHandler(employeeService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)

	// --- Service routes ---
	e.GET("/", handler.Index)
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(db).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	registerAPIRoutes(e, employeeHandler, attendanceHandler)

	return e
}

// registerAPIRoutes mounts the /api route tree. Split out so tests can wire
// the same routes onto a bare Echo instance.
func registerAPIRoutes(e *echo.Echo, employees *handler.EmployeeHandler, attendance *handler.AttendanceHandler) {
	emp := e.Group("/api/employees")
	emp.GET("", employees.List)
	emp.POST("", employees.Create)
	emp.GET("/:id", employees.Get)
	emp.DELETE("/:id", employees.Delete)

	att := e.Group("/api/attendance")
	att.GET("/dashboard", attendance.Dashboard)
	att.GET("/summary/:employeeId", attendance.Summary)
	att.GET("/employee/:employeeId", attendance.ListByEmployee)
	att.GET("", attendance.List)
	att.POST("", attendance.Mark)
}
