package department

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DepartmentRow struct {
	Name           string
	Budget         decimal.Decimal
	DivisionName   string
	HeadEmployeeNo *int64
	HeadName       *string
}

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, d *Department) error
	FindAll(ctx context.Context) ([]DepartmentRow, error)
	FindByName(ctx context.Context, name string) (*Department, error)
	Update(ctx context.Context, d *Department) error
	DivisionExists(ctx context.Context, name string) (bool, error)
	EmployeeIsActive(ctx context.Context, employeeNo int64) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, d *Department) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) FindAll(ctx context.Context) ([]DepartmentRow, error) {
	var rows []DepartmentRow
	err := r.db.WithContext(ctx).
		Table("departments d").
		Select("d.name, d.budget, d.division_name, d.head_employee_no, e.name AS head_name").
		Joins("LEFT JOIN employees e ON e.employee_no = d.head_employee_no").
		Order("d.name asc").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByName(ctx context.Context, name string) (*Department, error) {
	var d Department
	err := r.db.WithContext(ctx).
		First(&d, "name = ?", name).Error
	return &d, err
}

func (r *repository) Update(ctx context.Context, d *Department) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *repository) DivisionExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("divisions").
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) EmployeeIsActive(ctx context.Context, employeeNo int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("employee_no = ?", employeeNo).
		Where("is_active").
		Count(&count).Error
	return count > 0, err
}
