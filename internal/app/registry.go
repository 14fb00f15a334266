package app

import (
	"context"

	"go-workforce/internal/department"
	"go-workforce/internal/division"
	"go-workforce/internal/employee"
	"go-workforce/internal/facility"
	"go-workforce/internal/middleware"
	"go-workforce/internal/payroll"
	"go-workforce/internal/project"
	"go-workforce/internal/shared/counter"
	"go-workforce/internal/title"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// formOptions adapts the option-serving services to the form-feeding
// interfaces the employee and project handlers declare.
type formOptions struct {
	titles      title.Service
	divisions   division.Service
	departments department.Service
	employees   employee.Service
}

func (o *formOptions) TitleOptions(ctx context.Context) (any, error) {
	return o.titles.GetOptions(ctx)
}

func (o *formOptions) DivisionOptions(ctx context.Context) (any, error) {
	return o.divisions.GetOptions(ctx)
}

func (o *formOptions) DepartmentOptions(ctx context.Context) (any, error) {
	return o.departments.GetOptions(ctx)
}

func (o *formOptions) EmployeeOptions(ctx context.Context) (any, error) {
	return o.employees.GetOptions(ctx)
}

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.RateLimitByIP(rate.Limit(20), 40))

	// --- Repositories ---
	counterRepo := counter.NewRepository(gormDB)
	titleRepo := title.NewRepository(gormDB)
	divisionRepo := division.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	projectRepo := project.NewRepository(gormDB)
	facilityRepo := facility.NewRepository(gormDB)

	// --- Services ---
	titleService := title.NewService(gormDB, titleRepo, rdb)
	divisionService := division.NewService(gormDB, divisionRepo, rdb)
	departmentService := department.NewService(gormDB, departmentRepo, rdb)
	employeeService := employee.NewService(gormDB, employeeRepo, counterRepo, rdb)
	payrollService := payroll.NewService(gormDB, payrollRepo)
	projectService := project.NewService(gormDB, projectRepo)
	facilityService := facility.NewService(gormDB, facilityRepo)

	options := &formOptions{
		titles:      titleService,
		divisions:   divisionService,
		departments: departmentService,
		employees:   employeeService,
	}

	// --- Handlers ---
	titleHandler := title.NewHandler(titleService)
	divisionHandler := division.NewHandler(divisionService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService, options)
	payrollHandler := payroll.NewHandler(payrollService)
	projectHandler := project.NewHandler(projectService, options)
	facilityHandler := facility.NewHandler(facilityService)

	// --- Routes Registration ---
	root := router.Group("")
	{
		title.RegisterRoutes(root, titleHandler)
		division.RegisterRoutes(root, divisionHandler)
		department.RegisterRoutes(root, departmentHandler)
		employee.RegisterRoutes(root, employeeHandler)
		facility.RegisterRoutes(root, facilityHandler)
		if rdb != nil {
			payroll.RegisterRoutes(root, payrollHandler, rdb)
			project.RegisterRoutes(root, projectHandler, rdb)
		} else {
			payroll.RegisterRoutes(root, payrollHandler)
			project.RegisterRoutes(root, projectHandler)
		}
	}

	return nil
}
