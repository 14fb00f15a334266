package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PayProfile is the slice of an employee the calculator needs: the pay-type
// flag, the rate, and the title's configured salary.
type PayProfile struct {
	EmployeeNo    int64
	Name          string
	IsActive      bool
	Hourly        bool
	HourlyRate    *decimal.Decimal
	TitleName     string
	MonthlySalary *decimal.Decimal
}

// LedgerRow is a history row joined with the employee's name.
type LedgerRow struct {
	EmployeeNo  int64
	Name        string
	PaymentDate time.Time
	GrossPay    decimal.Decimal
	FederalTax  decimal.Decimal
	StateTax    decimal.Decimal
	OtherTax    decimal.Decimal
	NetPay      decimal.Decimal
}

// Repository is deliberately append-only for history rows: there is no
// update or delete. The ledger is immutable once written.
//
//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	GetPayProfile(ctx context.Context, employeeNo int64) (*PayProfile, error)
	Create(ctx context.Context, row *PayrollHistory) error
	Ledger(ctx context.Context) ([]LedgerRow, error)
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

func (r *repository) GetPayProfile(ctx context.Context, employeeNo int64) (*PayProfile, error) {
	var profile PayProfile
	res := r.db.WithContext(ctx).
		Table("employees e").
		Select("e.employee_no, e.name, e.is_active, e.hourly, e.hourly_rate, e.title_name, t.monthly_salary").
		Joins("LEFT JOIN titles t ON t.name = e.title_name").
		Where("e.employee_no = ?", employeeNo).
		Scan(&profile)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &profile, nil
}

func (r *repository) Create(ctx context.Context, row *PayrollHistory) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// Ledger returns every run with the employee name resolved, newest first.
func (r *repository) Ledger(ctx context.Context) ([]LedgerRow, error) {
	var rows []LedgerRow
	err := r.db.WithContext(ctx).
		Table("payroll_histories p").
		Select("p.employee_no, e.name, p.payment_date, p.gross_pay, p.federal_tax, p.state_tax, p.other_tax, p.net_pay").
		Joins("JOIN employees e ON e.employee_no = p.employee_no").
		Order("p.payment_date desc, p.id desc").
		Scan(&rows).Error
	return rows, err
}
