package app

import (
	"database/sql"

	"go-attend/internal/attendance"
	"go-attend/internal/calendar"
	"go-attend/internal/employee"
	"go-attend/internal/leave"
	"go-attend/internal/messaging/kafka"
	"go-attend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID())

	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo)
	ledger := leave.NewLedger(attendanceRepo, employeeService, calendar.NewPersianConverter())
	attendanceService := attendance.NewServiceWithOutbox(
		db,
		attendanceRepo,
		ledger,
		employeeService,
		outboxRepo,
		attendance.PolicyFromEnv(),
	)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandlerWithRedis(attendanceService, rdb)
	employeeHandler := employee.NewHandler(employeeService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		attendance.RegisterRoutes(api, attendanceHandler, rdb)
		employee.RegisterRoutes(api, employeeHandler)
	}

	return nil
}
