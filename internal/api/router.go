package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/workpulse/attendance-system/internal/api/handler"
	"github.com/workpulse/attendance-system/internal/api/middleware"
	"github.com/workpulse/attendance-system/internal/core/domain"
	"github.com/workpulse/attendance-system/internal/core/service"
	mongodb "github.com/workpulse/attendance-system/internal/infrastructure/db/mongo"
	redisdb "github.com/workpulse/attendance-system/internal/infrastructure/db/redis"
	"github.com/workpulse/attendance-system/pkg/clock"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, clk clock.Clock, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("attendance"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	attendanceRepo := mongodb.NewAttendanceRepository(db)
	statsCache := redisdb.NewStatsCache(rdb)

	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	attendanceService := service.NewAttendanceService(attendanceRepo, userRepo, clk, log)
	reportService := service.NewReportService(attendanceRepo, userRepo, statsCache, clk, log)

	authHandler := handler.NewAuthHandler(authService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	reportHandler := handler.NewReportHandler(reportService, log)
	dashboardHandler := handler.NewDashboardHandler(attendanceService, reportService)

	auth := middleware.Auth(jwtSecret)
	employeeOnly := middleware.RBAC(domain.RoleEmployee)
	managerOnly := middleware.RBAC(domain.RoleManager)
	anyRole := middleware.RBAC(domain.RoleEmployee, domain.RoleManager)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, auth, anyRole)

	// --- Employee-scoped attendance routes ---
	attendance := e.Group("/attendance", auth)
	attendance.POST("/checkin", attendanceHandler.CheckIn, employeeOnly)
	attendance.POST("/checkout", attendanceHandler.CheckOut, employeeOnly)
	attendance.GET("/today", attendanceHandler.Today, employeeOnly)
	attendance.GET("/my-history", attendanceHandler.History, employeeOnly)
	attendance.GET("/my-summary", attendanceHandler.Summary, employeeOnly)

	// --- Manager-scoped attendance routes ---
	attendance.GET("/all", reportHandler.ListAll, managerOnly)
	attendance.GET("/employee/:id", reportHandler.EmployeeHistory, managerOnly)
	attendance.GET("/summary", reportHandler.Summary, managerOnly)
	attendance.GET("/today-status", reportHandler.TodayStatus, managerOnly)
	attendance.GET("/export", reportHandler.Export, managerOnly)

	// --- Dashboards ---
	dashboard := e.Group("/dashboard", auth)
	dashboard.GET("/employee", dashboardHandler.Employee, employeeOnly)
	dashboard.GET("/manager", dashboardHandler.Manager, managerOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
