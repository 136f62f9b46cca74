package app

import (
	"leavedesk/internal/attendance"
	"leavedesk/internal/auth"
	"leavedesk/internal/employee"
	"leavedesk/internal/leave"
	"leavedesk/internal/messaging/kafka"
	"leavedesk/internal/middleware"
	"leavedesk/internal/profile"
	"leavedesk/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	policy *leave.Policy,
) error {
	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	profileRepo := profile.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	attendanceService := attendance.NewService(attendanceRepo, rdb)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo)
	leaveService := leave.NewServiceWithOutbox(db, leaveRepo, policy, outboxRepo)
	profileService := profile.NewService(db, profileRepo)
	authService := auth.NewService(employeeRepo, employeeService)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandlerWithRedis(attendanceService, rdb)
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandlerWithRedis(leaveService, rdb)
	profileHandler := profile.NewHandler(profileService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, rdb)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService, rdb)
		profile.RegisterRoutes(api, profileHandler, rbacService)
	}

	return nil
}
