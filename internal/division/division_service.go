package division

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

const OptionsCacheKey = "divisions:options"

//go:generate mockgen -source=division_service.go -destination=mock/division_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDivisionRequest) (DivisionResponse, error)
	GetAll(ctx context.Context) ([]DivisionResponse, error)
	GetOptions(ctx context.Context) ([]DivisionResponse, error)
	Update(ctx context.Context, name string, req UpdateDivisionRequest) (DivisionResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("division.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("division.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateDivisionRequest) (DivisionResponse, error) {
	tx := s.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		s.logger.Error("create division begin tx failed", zap.Error(err))
		return DivisionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByName(ctx, req.Name); err == nil {
		return DivisionResponse{}, ErrDivisionAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("create division lookup failed", zap.Error(err))
		return DivisionResponse{}, err
	}

	if req.HeadEmployeeNo != nil {
		ok, err := qtx.EmployeeIsActive(ctx, *req.HeadEmployeeNo)
		if err != nil {
			s.logger.Error("create division head lookup failed", zap.Error(err))
			return DivisionResponse{}, err
		}
		if !ok {
			return DivisionResponse{}, ErrHeadNotFound
		}
	}

	d := &Division{
		Name:           req.Name,
		HeadEmployeeNo: req.HeadEmployeeNo,
	}
	if err := qtx.Create(ctx, d); err != nil {
		s.logger.Error("create division persist failed", zap.Error(err))
		return DivisionResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create division commit failed", zap.Error(err))
		return DivisionResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("create division success", zap.String("division", d.Name))

	return DivisionResponse{Name: d.Name, HeadEmployeeNo: d.HeadEmployeeNo}, nil
}

func (s *service) GetAll(ctx context.Context) ([]DivisionResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all divisions failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetOptions(ctx context.Context) ([]DivisionResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var resp []DivisionResponse
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

	return v.([]DivisionResponse), nil
}

func (s *service) Update(ctx context.Context, name string, req UpdateDivisionRequest) (DivisionResponse, error) {
	tx := s.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		s.logger.Error("update division begin tx failed", zap.Error(err))
		return DivisionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	d, err := qtx.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DivisionResponse{}, ErrDivisionNotFound
		}
		s.logger.Error("update division lookup failed", zap.Error(err))
		return DivisionResponse{}, err
	}

	if req.HeadEmployeeNo != nil {
		ok, err := qtx.EmployeeIsActive(ctx, *req.HeadEmployeeNo)
		if err != nil {
			s.logger.Error("update division head lookup failed", zap.Error(err))
			return DivisionResponse{}, err
		}
		if !ok {
			return DivisionResponse{}, ErrHeadNotFound
		}
	}

	d.HeadEmployeeNo = req.HeadEmployeeNo

	if err := qtx.Update(ctx, d); err != nil {
		s.logger.Error("update division persist failed", zap.Error(err))
		return DivisionResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update division commit failed", zap.Error(err))
		return DivisionResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("update division success", zap.String("division", name))

	return DivisionResponse{Name: d.Name, HeadEmployeeNo: d.HeadEmployeeNo}, nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate division options cache",
			zap.Error(err),
			zap.String("key", OptionsCacheKey),
		)
	}
}

func mapToListResponse(rows []DivisionRow) []DivisionResponse {
	res := make([]DivisionResponse, len(rows))
	for i, row := range rows {
		res[i] = DivisionResponse{
			Name:           row.Name,
			HeadEmployeeNo: row.HeadEmployeeNo,
		}
		if row.HeadName != nil {
			res[i].HeadName = *row.HeadName
		}
	}
	return res
}
