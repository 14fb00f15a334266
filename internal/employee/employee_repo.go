package employee

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OpenAssignmentRow is one currently-open project assignment, flattened for
// the roster view.
type OpenAssignmentRow struct {
	EmployeeNo  int64
	ProjectNo   int64
	Role        string
	DateStarted time.Time
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, e *Employee) error
	FindAllActive(ctx context.Context) ([]Employee, error)
	FindByNo(ctx context.Context, employeeNo int64) (*Employee, error)
	Update(ctx context.Context, e *Employee) error
	DepartmentExists(ctx context.Context, name string) (bool, error)
	DivisionExists(ctx context.Context, name string) (bool, error)
	TitleExists(ctx context.Context, name string) (bool, error)
	CreateTitle(ctx context.Context, name string, monthlySalary decimal.Decimal) error
	IsUnitHead(ctx context.Context, employeeNo int64) (bool, error)
	OpenAssignments(ctx context.Context) ([]OpenAssignmentRow, error)
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAllActive(ctx context.Context) ([]Employee, error) {
	var emps []Employee
	err := r.db.WithContext(ctx).
		Where("is_active").
		Order("employee_no asc").
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindByNo(ctx context.Context, employeeNo int64) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		First(&e, "employee_no = ?", employeeNo).Error
	return &e, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) DepartmentExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("departments").
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) DivisionExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("divisions").
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) TitleExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("titles").
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

// CreateTitle inserts the title if it is new; a concurrent insert of the
// same name is absorbed by the conflict clause.
func (r *repository) CreateTitle(ctx context.Context, name string, monthlySalary decimal.Decimal) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO titles (name, monthly_salary, created_at, updated_at)
		VALUES (?, ?, now(), now())
		ON CONFLICT (name) DO NOTHING
	`, name, monthlySalary).Error
}

// IsUnitHead reports whether the employee is the recorded head of any
// division or department, which blocks deactivation.
func (r *repository) IsUnitHead(ctx context.Context, employeeNo int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT (SELECT COUNT(*) FROM divisions WHERE head_employee_no = ?)
		     + (SELECT COUNT(*) FROM departments WHERE head_employee_no = ?)
	`, employeeNo, employeeNo).Scan(&count).Error
	return count > 0, err
}

func (r *repository) OpenAssignments(ctx context.Context) ([]OpenAssignmentRow, error) {
	var rows []OpenAssignmentRow
	err := r.db.WithContext(ctx).
		Table("project_assignments").
		Select("employee_no, project_no, role, date_started").
		Where("date_ended IS NULL").
		Order("employee_no asc, project_no asc").
		Scan(&rows).Error
	return rows, err
}
