package employee

import (
	"context"
	"encoding/json"
	"time"

	employeeerrors "go-workforce/internal/employee/errors"
	"go-workforce/internal/shared/contextutil"
	"go-workforce/internal/shared/counter"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	OptionsCacheKey = "employees:options"

	// The historical numbering starts at 1001; the counter seed keeps the
	// visible scheme while a database row, not max()+1, hands out numbers.
	employeeNumberCounter = "employee_number"
	employeeNumberSeed    = 1000

	payTypeHourly   = "hourly"
	payTypeSalaried = "salaried"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Roster(ctx context.Context) ([]RosterEntry, error)
	GetOptions(ctx context.Context) ([]EmployeeResponse, error)
	GetByNo(ctx context.Context, employeeNo int64) (EmployeeResponse, error)
	Update(ctx context.Context, employeeNo int64, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, employeeNo int64) error
}

type service struct {
	db      *gorm.DB
	repo    Repository
	counter counter.Repository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, counterRepo counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
		zap.String("title", req.Title),
	)

	affiliation, err := affiliationFromRequest(req.DepartmentName, req.DivisionName)
	if err != nil {
		return EmployeeResponse{}, err
	}

	hourly := req.PayType == payTypeHourly
	if hourly && (req.HourlyRate == nil || !req.HourlyRate.IsPositive()) {
		return EmployeeResponse{}, employeeerrors.ErrHourlyRateRequired
	}

	tx := s.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := s.checkAffiliation(ctx, qtx, affiliation); err != nil {
		return EmployeeResponse{}, err
	}

	if err := s.ensureTitle(ctx, qtx, req.Title, hourly, req.MonthlySalary); err != nil {
		return EmployeeResponse{}, err
	}

	employeeNo, err := s.counter.WithTx(tx).GetNextValue(ctx, employeeNumberCounter, employeeNumberSeed)
	if err != nil {
		s.logger.Error("create employee number allocation failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		EmployeeNo: employeeNo,
		Name:       req.Name,
		Phone:      req.Phone,
		TitleName:  req.Title,
		Hourly:     hourly,
		HourlyRate: req.HourlyRate,
		IsActive:   true,
	}
	empl.SetAffiliation(affiliation)

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_no", empl.EmployeeNo),
	)

	return mapToResponse(*empl), nil
}

func (s *service) Roster(ctx context.Context) ([]RosterEntry, error) {
	s.logger.Debug("employee roster requested")

	emps, err := s.repo.FindAllActive(ctx)
	if err != nil {
		s.logger.Error("employee roster query failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	open, err := s.repo.OpenAssignments(ctx)
	if err != nil {
		s.logger.Error("employee roster assignments query failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	byEmployee := make(map[int64][]RosterAssignment, len(open))
	for _, row := range open {
		byEmployee[row.EmployeeNo] = append(byEmployee[row.EmployeeNo], RosterAssignment{
			ProjectNo:   row.ProjectNo,
			Role:        row.Role,
			DateStarted: row.DateStarted.Format("2006-01-02"),
		})
	}

	entries := make([]RosterEntry, len(emps))
	for i, e := range emps {
		entries[i] = RosterEntry{
			EmployeeResponse: mapToResponse(e),
			OpenAssignments:  byEmployee[e.EmployeeNo],
		}
	}
	return entries, nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		emps, err := s.repo.FindAllActive(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(emps)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, OptionsCacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByNo(ctx context.Context, employeeNo int64) (EmployeeResponse, error) {
	empl, err := s.repo.FindByNo(ctx, employeeNo)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, employeeNo int64, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.Int64("employee_no", employeeNo))

	affiliation, err := affiliationFromRequest(req.DepartmentName, req.DivisionName)
	if err != nil {
		return EmployeeResponse{}, err
	}

	hourly := req.PayType == payTypeHourly
	if hourly && (req.HourlyRate == nil || !req.HourlyRate.IsPositive()) {
		return EmployeeResponse{}, employeeerrors.ErrHourlyRateRequired
	}

	tx := s.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByNo(ctx, employeeNo)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.checkAffiliation(ctx, qtx, affiliation); err != nil {
		return EmployeeResponse{}, err
	}

	if err := s.ensureTitle(ctx, qtx, req.Title, hourly, req.MonthlySalary); err != nil {
		return EmployeeResponse{}, err
	}

	empl.Name = req.Name
	empl.Phone = req.Phone
	empl.TitleName = req.Title
	empl.Hourly = hourly
	empl.HourlyRate = req.HourlyRate
	if !hourly {
		empl.HourlyRate = nil
	}
	empl.SetAffiliation(affiliation)

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("update employee success", zap.Int64("employee_no", employeeNo))

	return mapToResponse(*empl), nil
}

// Deactivate flips the active flag off; the row survives for history. A
// recorded division or department head must be replaced first.
func (s *service) Deactivate(ctx context.Context, employeeNo int64) error {
	s.logger.Debug("deactivate employee requested", zap.Int64("employee_no", employeeNo))

	tx := s.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		s.logger.Error("deactivate employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByNo(ctx, employeeNo)
	if err != nil {
		s.logger.Error("deactivate employee fetch failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if !empl.IsActive {
		return employeeerrors.ErrEmployeeAlreadyInactive
	}

	isHead, err := qtx.IsUnitHead(ctx, employeeNo)
	if err != nil {
		s.logger.Error("deactivate employee head check failed", zap.Error(err))
		return err
	}
	if isHead {
		s.logger.Warn("deactivate employee blocked, employee heads a unit",
			zap.Int64("employee_no", employeeNo),
		)
		return employeeerrors.ErrEmployeeIsUnitHead
	}

	empl.IsActive = false
	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("deactivate employee persist failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("deactivate employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("deactivate employee success", zap.Int64("employee_no", employeeNo))
	return nil
}

func (s *service) checkAffiliation(ctx context.Context, qtx Repository, a Affiliation) error {
	switch a.Kind() {
	case AffiliationDepartment:
		ok, err := qtx.DepartmentExists(ctx, a.Name())
		if err != nil {
			s.logger.Error("affiliation department lookup failed", zap.Error(err))
			return err
		}
		if !ok {
			return employeeerrors.ErrDepartmentNotFound
		}
	case AffiliationDivision:
		ok, err := qtx.DivisionExists(ctx, a.Name())
		if err != nil {
			s.logger.Error("affiliation division lookup failed", zap.Error(err))
			return err
		}
		if !ok {
			return employeeerrors.ErrDivisionNotFound
		}
	}
	return nil
}

// ensureTitle creates an unknown title on the fly, seeded with the submitted
// salary for salaried staff and zero otherwise.
func (s *service) ensureTitle(ctx context.Context, qtx Repository, name string, hourly bool, monthlySalary *decimal.Decimal) error {
	exists, err := qtx.TitleExists(ctx, name)
	if err != nil {
		s.logger.Error("title lookup failed", zap.Error(err))
		return err
	}
	if exists {
		return nil
	}

	salary := decimal.Zero
	if !hourly && monthlySalary != nil {
		salary = *monthlySalary
	}
	if err := qtx.CreateTitle(ctx, name, salary); err != nil {
		s.logger.Error("title create failed", zap.String("title", name), zap.Error(err))
		return err
	}
	s.logger.Info("title created with employee", zap.String("title", name))
	return nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", OptionsCacheKey),
		)
	}
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		EmployeeNo: e.EmployeeNo,
		Name:       e.Name,
		Phone:      e.Phone,
		Title:      e.TitleName,
		PayType:    payTypeSalaried,
		IsActive:   e.IsActive,
	}
	if e.Hourly {
		resp.PayType = payTypeHourly
	}
	if e.HourlyRate != nil {
		resp.HourlyRate = e.HourlyRate.StringFixed(2)
	}
	if e.DepartmentName != nil {
		resp.DepartmentName = *e.DepartmentName
	}
	if e.DivisionName != nil {
		resp.DivisionName = *e.DivisionName
	}
	return resp
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		res[i] = mapToResponse(e)
	}
	return res
}
