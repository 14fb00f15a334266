package app

import (
	"fmt"
	"os"

	"go-workforce/internal/department"
	"go-workforce/internal/division"
	"go-workforce/internal/employee"
	"go-workforce/internal/facility"
	"go-workforce/internal/payroll"
	"go-workforce/internal/project"
	"go-workforce/internal/shared/connection"
	"go-workforce/internal/shared/counter"
	"go-workforce/internal/title"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var requiredEnv = []string{
	"DB_HOST",
	"DB_USER",
	"DB_PASSWORD",
	"DB_NAME",
	"DB_PORT",
	"SESSION_SECRET",
}

// BuildApp connects the infrastructure, migrates the schema, and registers
// every module's routes on the router.
func BuildApp(router *gin.Engine) error {
	for _, key := range requiredEnv {
		if os.Getenv(key) == "" {
			return fmt.Errorf("missing required environment variable %s", key)
		}
	}

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

	if err := gormDB.AutoMigrate(
		&title.Title{},
		&division.Division{},
		&department.Department{},
		&employee.Employee{},
		&payroll.PayrollHistory{},
		&project.Project{},
		&project.ProjectAssignment{},
		&project.ProjectMilestone{},
		&facility.Building{},
		&facility.Room{},
		&facility.EmployeeRoom{},
		&facility.DepartmentRoom{},
		&counter.SequenceCounter{},
	); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	// Redis backs the form-option caches and the idempotency guard. The app
	// degrades to uncached, unguarded operation when it is not configured.
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			zap.L().Warn("redis unavailable, continuing without cache", zap.Error(err))
			rdb = nil
		}
	} else {
		zap.L().Info("REDIS_ADDR not set, running without redis")
	}

	return registerModules(router, gormDB, rdb)
}
