package main

import (
	"timesheet-service/internal/handler"
	mid "timesheet-service/internal/middleware"
	"timesheet-service/pkg/config"
	"timesheet-service/pkg/database"
	"timesheet-service/pkg/jwtutil"
	"timesheet-service/pkg/logger"
	"timesheet-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(&logger.LogConfig{
		Level:       appConfig.Log.Level,
		Environment: appConfig.Server.Env,
		ServiceName: appConfig.ServiceName,
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting timesheet-service", appConfig.LogConfig()...)

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if err := database.Initialize(&appConfig.DB); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(logger.Middleware())
	e.Use(prometheus.MetricsMiddleware())

	// Metrics and health endpoints stay public
	e.GET("/metrics", prometheus.HandlerFunc())
	e.GET("/health", handler.HealthCheck)

	// Timesheet aggregation routes - tenant-scoped behind JWT auth
	timesheetAPI := e.Group("/api/timesheet", mid.AuthMiddleware, mid.RequireTenantContext)
	timesheetAPI.GET("/member/:id/header", handler.GetMemberTimesheetHeader)
	timesheetAPI.GET("/member/:id", handler.GetMemberTimesheet)
	timesheetAPI.GET("/project/:id/header", handler.GetProjectTimesheetHeader)
	timesheetAPI.GET("/project/:id", handler.GetProjectTimesheet)
	timesheetAPI.GET("/daily", handler.GetDailyBreakdown)

	// Time log write routes
	taskAPI := e.Group("/api/tasks", mid.AuthMiddleware, mid.RequireTenantContext)
	taskAPI.POST("/:id/logs", handler.AddTimeLog)
	taskAPI.PUT("/:id/logs/:logId", handler.UpdateTimeLog)

	// Project listing
	projectAPI := e.Group("/api/projects", mid.AuthMiddleware, mid.RequireTenantContext)
	projectAPI.GET("", handler.ListProjects)

	// Attendance routes
	attendanceAPI := e.Group("/api/attendance", mid.AuthMiddleware, mid.RequireTenantContext)
	attendanceAPI.POST("/punch-in", handler.PunchIn)
	attendanceAPI.POST("/punch-out", handler.PunchOut)
	attendanceAPI.GET("", handler.ListAttendance)
	attendanceAPI.GET("/me", handler.MyAttendance)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
