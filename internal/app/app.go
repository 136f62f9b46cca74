package app

import (
	"os"
	"strconv"

	"leavedesk/internal/calendar"
	"leavedesk/internal/leave"
	"leavedesk/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects infrastructure and wires every module's routes onto the
// router. Configuration comes from the environment:
//
//	DB_HOST, DB_USER, DB_PASSWORD, DB_NAME, DB_PORT, DB_SSLMODE
//	REDIS_ADDR
//	HOLIDAYS_FILE          optional JSON holiday calendar
//	ANNUAL_LEAVE_ALLOTMENT optional, defaults to 10 working days
func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	cal, err := calendar.Load(os.Getenv("HOLIDAYS_FILE"))
	if err != nil {
		return err
	}

	allotment := leave.DefaultAnnualAllotment
	if raw := os.Getenv("ANNUAL_LEAVE_ALLOTMENT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			logger.Warn("invalid ANNUAL_LEAVE_ALLOTMENT, using default",
				zap.String("value", raw),
			)
		} else {
			allotment = parsed
		}
	}
	policy := leave.NewPolicy(cal, allotment)

	return registerModules(router, gormDB, redisClient, policy)
}
