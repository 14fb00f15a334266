package facility

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=facility_service.go -destination=mock/facility_service_mock.go -package=mock
type Service interface {
	CreateBuilding(ctx context.Context, req CreateBuildingRequest) (BuildingResponse, error)
	GetBuildings(ctx context.Context) ([]BuildingResponse, error)
	CreateRoom(ctx context.Context, req CreateRoomRequest) (RoomResponse, error)
	GetRooms(ctx context.Context) ([]RoomResponse, error)
	AssignEmployeeRoom(ctx context.Context, req AssignEmployeeRoomRequest) (EmployeeRoomResponse, error)
	AssignDepartmentRoom(ctx context.Context, req AssignDepartmentRoomRequest) (DepartmentRoomResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("facility.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("facility.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		logger: l,
	}
}

func (s *service) CreateBuilding(ctx context.Context, req CreateBuildingRequest) (BuildingResponse, error) {
	tx := s.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		s.logger.Error("create building begin tx failed", zap.Error(err))
		return BuildingResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.BuildingExists(ctx, req.Name)
	if err != nil {
		s.logger.Error("create building exists check failed", zap.Error(err))
		return BuildingResponse{}, err
	}
	if exists {
		return BuildingResponse{}, ErrBuildingAlreadyExists
	}

	b := &Building{Name: req.Name, Address: req.Address}
	if err := qtx.CreateBuilding(ctx, b); err != nil {
		s.logger.Error("create building persist failed", zap.Error(err))
		return BuildingResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create building commit failed", zap.Error(err))
		return BuildingResponse{}, err
	}

	s.logger.Info("create building success", zap.String("building", b.Name))

	return BuildingResponse{Name: b.Name, Address: b.Address}, nil
}

func (s *service) GetBuildings(ctx context.Context) ([]BuildingResponse, error) {
	buildings, err := s.repo.FindAllBuildings(ctx)
	if err != nil {
		s.logger.Error("get buildings failed", zap.Error(err))
		return nil, err
	}

	resp := make([]BuildingResponse, len(buildings))
	for i, b := range buildings {
		resp[i] = BuildingResponse{Name: b.Name, Address: b.Address}
	}
	return resp, nil
}

func (s *service) CreateRoom(ctx context.Context, req CreateRoomRequest) (RoomResponse, error) {
	tx := s.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		s.logger.Error("create room begin tx failed", zap.Error(err))
		return RoomResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.BuildingExists(ctx, req.BuildingName)
	if err != nil {
		s.logger.Error("create room building check failed", zap.Error(err))
		return RoomResponse{}, err
	}
	if !exists {
		return RoomResponse{}, ErrBuildingNotFound
	}

	room := &Room{BuildingName: req.BuildingName, Number: req.Number}
	if err := qtx.CreateRoom(ctx, room); err != nil {
		return RoomResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create room commit failed", zap.Error(err))
		return RoomResponse{}, err
	}

	s.logger.Info("create room success",
		zap.String("building", room.BuildingName),
		zap.String("number", room.Number),
	)

	return RoomResponse{ID: room.ID, BuildingName: room.BuildingName, Number: room.Number}, nil
}

func (s *service) GetRooms(ctx context.Context) ([]RoomResponse, error) {
	rooms, err := s.repo.FindAllRooms(ctx)
	if err != nil {
		s.logger.Error("get rooms failed", zap.Error(err))
		return nil, err
	}

	resp := make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		resp[i] = RoomResponse{ID: room.ID, BuildingName: room.BuildingName, Number: room.Number}
	}
	return resp, nil
}

func (s *service) AssignEmployeeRoom(ctx context.Context, req AssignEmployeeRoomRequest) (EmployeeRoomResponse, error) {
	tx := s.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		s.logger.Error("assign employee room begin tx failed", zap.Error(err))
		return EmployeeRoomResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	active, err := qtx.EmployeeIsActive(ctx, req.EmployeeNo)
	if err != nil {
		s.logger.Error("assign employee room employee check failed", zap.Error(err))
		return EmployeeRoomResponse{}, err
	}
	if !active {
		return EmployeeRoomResponse{}, ErrEmployeeNotFound
	}

	exists, err := qtx.RoomExists(ctx, req.RoomID)
	if err != nil {
		s.logger.Error("assign employee room room check failed", zap.Error(err))
		return EmployeeRoomResponse{}, err
	}
	if !exists {
		return EmployeeRoomResponse{}, ErrRoomNotFound
	}

	if err := qtx.UpsertEmployeeRoom(ctx, req.EmployeeNo, req.RoomID); err != nil {
		s.logger.Error("assign employee room persist failed", zap.Error(err))
		return EmployeeRoomResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("assign employee room commit failed", zap.Error(err))
		return EmployeeRoomResponse{}, err
	}

	s.logger.Info("assign employee room success",
		zap.Int64("employee_no", req.EmployeeNo),
		zap.Int64("room_id", req.RoomID),
	)

	return EmployeeRoomResponse{EmployeeNo: req.EmployeeNo, RoomID: req.RoomID}, nil
}

func (s *service) AssignDepartmentRoom(ctx context.Context, req AssignDepartmentRoomRequest) (DepartmentRoomResponse, error) {
	tx := s.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		s.logger.Error("assign department room begin tx failed", zap.Error(err))
		return DepartmentRoomResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.DepartmentExists(ctx, req.DepartmentName)
	if err != nil {
		s.logger.Error("assign department room department check failed", zap.Error(err))
		return DepartmentRoomResponse{}, err
	}
	if !exists {
		return DepartmentRoomResponse{}, ErrDepartmentNotFound
	}

	roomOK, err := qtx.RoomExists(ctx, req.RoomID)
	if err != nil {
		s.logger.Error("assign department room room check failed", zap.Error(err))
		return DepartmentRoomResponse{}, err
	}
	if !roomOK {
		return DepartmentRoomResponse{}, ErrRoomNotFound
	}

	if err := qtx.UpsertDepartmentRoom(ctx, req.DepartmentName, req.RoomID); err != nil {
		s.logger.Error("assign department room persist failed", zap.Error(err))
		return DepartmentRoomResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("assign department room commit failed", zap.Error(err))
		return DepartmentRoomResponse{}, err
	}

	s.logger.Info("assign department room success",
		zap.String("department", req.DepartmentName),
		zap.Int64("room_id", req.RoomID),
	)

	return DepartmentRoomResponse{DepartmentName: req.DepartmentName, RoomID: req.RoomID}, nil
}
