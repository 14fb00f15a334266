package department

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const OptionsCacheKey = "departments:options"

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetOptions(ctx context.Context) ([]DepartmentResponse, error)
	Update(ctx context.Context, name string, req UpdateDepartmentRequest) (DepartmentResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	if req.Budget.IsNegative() {
		return DepartmentResponse{}, ErrNegativeBudget
	}

	tx := s.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		s.logger.Error("create department begin tx failed", zap.Error(err))
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByName(ctx, req.Name); err == nil {
		return DepartmentResponse{}, ErrDepartmentAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("create department lookup failed", zap.Error(err))
		return DepartmentResponse{}, err
	}

	ok, err := qtx.DivisionExists(ctx, req.DivisionName)
	if err != nil {
		s.logger.Error("create department division lookup failed", zap.Error(err))
		return DepartmentResponse{}, err
	}
	if !ok {
		return DepartmentResponse{}, ErrDivisionNotFound
	}

	if req.HeadEmployeeNo != nil {
		active, err := qtx.EmployeeIsActive(ctx, *req.HeadEmployeeNo)
		if err != nil {
			s.logger.Error("create department head lookup failed", zap.Error(err))
			return DepartmentResponse{}, err
		}
		if !active {
			return DepartmentResponse{}, ErrHeadNotFound
		}
	}

	d := &Department{
		Name:           req.Name,
		Budget:         req.Budget,
		DivisionName:   req.DivisionName,
		HeadEmployeeNo: req.HeadEmployeeNo,
	}
	if err := qtx.Create(ctx, d); err != nil {
		s.logger.Error("create department persist failed", zap.Error(err))
		return DepartmentResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create department commit failed", zap.Error(err))
		return DepartmentResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("create department success", zap.String("department", d.Name))

	return mapEntityToResponse(*d), nil
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all departments failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetOptions(ctx context.Context) ([]DepartmentResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var resp []DepartmentResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(rows)

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

	return v.([]DepartmentResponse), nil
}

func (s *service) Update(ctx context.Context, name string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	if req.Budget.IsNegative() {
		return DepartmentResponse{}, ErrNegativeBudget
	}

	tx := s.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		s.logger.Error("update department begin tx failed", zap.Error(err))
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	d, err := qtx.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DepartmentResponse{}, ErrDepartmentNotFound
		}
		s.logger.Error("update department lookup failed", zap.Error(err))
		return DepartmentResponse{}, err
	}

	if req.HeadEmployeeNo != nil {
		active, err := qtx.EmployeeIsActive(ctx, *req.HeadEmployeeNo)
		if err != nil {
			s.logger.Error("update department head lookup failed", zap.Error(err))
			return DepartmentResponse{}, err
		}
		if !active {
			return DepartmentResponse{}, ErrHeadNotFound
		}
	}

	d.Budget = req.Budget
	d.HeadEmployeeNo = req.HeadEmployeeNo

	if err := qtx.Update(ctx, d); err != nil {
		s.logger.Error("update department persist failed", zap.Error(err))
		return DepartmentResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update department commit failed", zap.Error(err))
		return DepartmentResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("update department success", zap.String("department", name))

	return mapEntityToResponse(*d), nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate department options cache",
			zap.Error(err),
			zap.String("key", OptionsCacheKey),
		)
	}
}

func mapEntityToResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		Name:           d.Name,
		Budget:         d.Budget.StringFixed(2),
		DivisionName:   d.DivisionName,
		HeadEmployeeNo: d.HeadEmployeeNo,
	}
}

func mapToListResponse(rows []DepartmentRow) []DepartmentResponse {
	res := make([]DepartmentResponse, len(rows))
	for i, row := range rows {
		res[i] = DepartmentResponse{
			Name:           row.Name,
			Budget:         row.Budget.StringFixed(2),
			DivisionName:   row.DivisionName,
			HeadEmployeeNo: row.HeadEmployeeNo,
		}
		if row.HeadName != nil {
			res[i].HeadName = *row.HeadName
		}
	}
	return res
}
