package division

import (
	"context"

	"gorm.io/gorm"
)

// DivisionRow is a division joined with its head's name for list views.
type DivisionRow struct {
	Name           string
	HeadEmployeeNo *int64
	HeadName       *string
}

//go:generate mockgen -source=division_repo.go -destination=mock/division_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, d *Division) error
	FindAll(ctx context.Context) ([]DivisionRow, error)
	FindByName(ctx context.Context, name string) (*Division, error)
	Update(ctx context.Context, d *Division) error
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

func (r *repository) Create(ctx context.Context, d *Division) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) FindAll(ctx context.Context) ([]DivisionRow, error) {
	var rows []DivisionRow
	err := r.db.WithContext(ctx).
		Table("divisions d").
		Select("d.name, d.head_employee_no, e.name AS head_name").
		Joins("LEFT JOIN employees e ON e.employee_no = d.head_employee_no").
		Order("d.name asc").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByName(ctx context.Context, name string) (*Division, error) {
	var d Division
	err := r.db.WithContext(ctx).
		First(&d, "name = ?", name).Error
	return &d, err
}

func (r *repository) Update(ctx context.Context, d *Division) error {
	return r.db.WithContext(ctx).Save(d).Error
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
