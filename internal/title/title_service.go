package title

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

const OptionsCacheKey = "titles:options"

//go:generate mockgen -source=title_service.go -destination=mock/title_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateTitleRequest) (TitleResponse, error)
	GetAll(ctx context.Context) ([]TitleResponse, error)
	GetOptions(ctx context.Context) ([]TitleResponse, error)
	Update(ctx context.Context, name string, req UpdateTitleRequest) (TitleResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("title.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("title.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateTitleRequest) (TitleResponse, error) {
	if req.MonthlySalary.IsNegative() {
		return TitleResponse{}, ErrNegativeSalary
	}

	tx := s.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		s.logger.Error("create title begin tx failed", zap.Error(err))
		return TitleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByName(ctx, req.Name); err == nil {
		return TitleResponse{}, ErrTitleAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("create title lookup failed", zap.Error(err))
		return TitleResponse{}, err
	}

	t := &Title{
		Name:          req.Name,
		MonthlySalary: req.MonthlySalary,
	}
	if err := qtx.Create(ctx, t); err != nil {
		s.logger.Error("create title persist failed", zap.Error(err))
		return TitleResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create title commit failed", zap.Error(err))
		return TitleResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("create title success", zap.String("title", t.Name))

	return mapToResponse(*t), nil
}

func (s *service) GetAll(ctx context.Context) ([]TitleResponse, error) {
	titles, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all titles failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(titles), nil
}

// GetOptions serves the title dropdown on the employee forms; redis plus
// singleflight keeps a form-open burst from stampeding the database.
func (s *service) GetOptions(ctx context.Context) ([]TitleResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var resp []TitleResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		titles, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(titles)

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

	return v.([]TitleResponse), nil
}

func (s *service) Update(ctx context.Context, name string, req UpdateTitleRequest) (TitleResponse, error) {
	if req.MonthlySalary.IsNegative() {
		return TitleResponse{}, ErrNegativeSalary
	}

	tx := s.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		s.logger.Error("update title begin tx failed", zap.Error(err))
		return TitleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := qtx.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TitleResponse{}, ErrTitleNotFound
		}
		s.logger.Error("update title lookup failed", zap.Error(err))
		return TitleResponse{}, err
	}

	t.MonthlySalary = req.MonthlySalary

	if err := qtx.Update(ctx, t); err != nil {
		s.logger.Error("update title persist failed", zap.Error(err))
		return TitleResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update title commit failed", zap.Error(err))
		return TitleResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("update title success", zap.String("title", name))

	return mapToResponse(*t), nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate title options cache",
			zap.Error(err),
			zap.String("key", OptionsCacheKey),
		)
	}
}

func mapToResponse(t Title) TitleResponse {
	return TitleResponse{
		Name:          t.Name,
		MonthlySalary: t.MonthlySalary.StringFixed(2),
	}
}

func mapToListResponse(titles []Title) []TitleResponse {
	res := make([]TitleResponse, len(titles))
	for i, t := range titles {
		res[i] = mapToResponse(t)
	}
	return res
}
