package payroll

import (
	"context"
	"errors"
	"time"

	payrollerrors "go-workforce/internal/payroll/errors"
	"go-workforce/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Run(ctx context.Context, employeeNo int64, req RunPayrollRequest) (PayrollRunResponse, error)
	Ledger(ctx context.Context) ([]LedgerEntryResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
	// now is swapped out by tests to pin the payment date.
	now func() time.Time
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithClock(db, repo, time.Now, logger...)
}

// NewServiceWithClock pins the payment-date clock; tests use it to make runs
// deterministic.
func NewServiceWithClock(db *gorm.DB, repo Repository, now func() time.Time, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		logger: l,
		now:    now,
	}
}

// Run executes one payroll run for one employee and appends the result to
// the history ledger. Nothing else is mutated.
func (s *service) Run(ctx context.Context, employeeNo int64, req RunPayrollRequest) (PayrollRunResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("payroll run requested",
		zap.String("request_id", rid),
		zap.Int64("employee_no", employeeNo),
	)

	tx := s.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		s.logger.Error("payroll run begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return PayrollRunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	profile, err := qtx.GetPayProfile(ctx, employeeNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollRunResponse{}, payrollerrors.ErrEmployeeNotFound
		}
		s.logger.Error("payroll run profile lookup failed", zap.Error(err))
		return PayrollRunResponse{}, err
	}
	if !profile.IsActive {
		return PayrollRunResponse{}, payrollerrors.ErrEmployeeInactive
	}

	var breakdown Breakdown
	if profile.Hourly {
		if req.Hours == nil || !req.Hours.IsPositive() {
			s.logger.Warn("payroll run missing hours for hourly employee",
				zap.Int64("employee_no", employeeNo),
			)
			return PayrollRunResponse{}, payrollerrors.ErrHoursRequired
		}
		if profile.HourlyRate == nil {
			return PayrollRunResponse{}, payrollerrors.ErrNoHourlyRate
		}
		breakdown = CalculateHourly(*profile.HourlyRate, *req.Hours)
	} else {
		if profile.MonthlySalary == nil || profile.MonthlySalary.IsZero() {
			s.logger.Warn("payroll run title has no salary",
				zap.Int64("employee_no", employeeNo),
				zap.String("title", profile.TitleName),
			)
			return PayrollRunResponse{}, payrollerrors.ErrNoSalaryConfigured
		}
		breakdown = CalculateSalaried(*profile.MonthlySalary)
	}

	paymentDate := s.now().UTC().Truncate(24 * time.Hour)
	row := &PayrollHistory{
		EmployeeNo:  employeeNo,
		PaymentDate: paymentDate,
		GrossPay:    breakdown.Gross,
		FederalTax:  breakdown.Federal,
		StateTax:    breakdown.State,
		OtherTax:    breakdown.Other,
		NetPay:      breakdown.Net,
	}
	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("payroll run persist failed", zap.Error(err))
		return PayrollRunResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("payroll run commit failed", zap.String("request_id", rid), zap.Error(err))
		return PayrollRunResponse{}, err
	}

	s.logger.Info("payroll run success",
		zap.String("request_id", rid),
		zap.Int64("employee_no", employeeNo),
		zap.String("net_pay", breakdown.Net.StringFixed(2)),
	)

	return PayrollRunResponse{
		EmployeeNo:  employeeNo,
		Name:        profile.Name,
		PaymentDate: paymentDate.Format("2006-01-02"),
		GrossPay:    breakdown.Gross.StringFixed(2),
		FederalTax:  breakdown.Federal.StringFixed(2),
		StateTax:    breakdown.State.StringFixed(2),
		OtherTax:    breakdown.Other.StringFixed(2),
		NetPay:      breakdown.Net.StringFixed(2),
	}, nil
}

func (s *service) Ledger(ctx context.Context) ([]LedgerEntryResponse, error) {
	rows, err := s.repo.Ledger(ctx)
	if err != nil {
		s.logger.Error("payroll ledger query failed", zap.Error(err))
		return nil, err
	}

	res := make([]LedgerEntryResponse, len(rows))
	for i, row := range rows {
		res[i] = LedgerEntryResponse{
			EmployeeNo:  row.EmployeeNo,
			Name:        row.Name,
			PaymentDate: row.PaymentDate.Format("2006-01-02"),
			GrossPay:    row.GrossPay.StringFixed(2),
			FederalTax:  row.FederalTax.StringFixed(2),
			StateTax:    row.StateTax.StringFixed(2),
			OtherTax:    row.OtherTax.StringFixed(2),
			NetPay:      row.NetPay.StringFixed(2),
		}
	}
	return res, nil
}
