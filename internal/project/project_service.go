package project

import (
	"context"
	"errors"
	"time"

	projecterrors "go-workforce/internal/project/errors"
	"go-workforce/internal/shared/contextutil"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=project_service.go -destination=mock/project_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	Complete(ctx context.Context, projectNo int64) (CompleteProjectResponse, error)
	AddMilestone(ctx context.Context, projectNo int64, req AddMilestoneRequest) (MilestoneResponse, error)
	AddTeamMember(ctx context.Context, projectNo int64, req AddTeamMemberRequest) (TeamMemberResponse, error)
	GetDetail(ctx context.Context, projectNo int64) (ProjectDetailResponse, error)
	Dashboard(ctx context.Context) ([]DashboardEntry, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithClock(db, repo, time.Now, logger...)
}

func NewServiceWithClock(db *gorm.DB, repo Repository, now func() time.Time, logger ...*zap.Logger) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		logger: l,
		now:    now,
	}
}

// Create inserts the project and the manager's own assignment as one unit;
// either both rows land or neither does.
func (s *service) Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create project requested",
		zap.String("request_id", rid),
		zap.Int64("project_no", req.ProjectNo),
		zap.Int64("manager_employee_no", req.ManagerEmployeeNo),
	)

	dateStarted, err := parseDate(req.DateStarted)
	if err != nil {
		return ProjectResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		s.logger.Error("create project begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ProjectResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ProjectExists(ctx, req.ProjectNo)
	if err != nil {
		s.logger.Error("create project exists check failed", zap.Error(err))
		return ProjectResponse{}, err
	}
	if exists {
		return ProjectResponse{}, projecterrors.ErrDuplicateProject
	}

	active, err := qtx.EmployeeIsActive(ctx, req.ManagerEmployeeNo)
	if err != nil {
		s.logger.Error("create project manager check failed", zap.Error(err))
		return ProjectResponse{}, err
	}
	if !active {
		return ProjectResponse{}, projecterrors.ErrManagerNotFound
	}

	busy, err := qtx.ManagerHasActiveProject(ctx, req.ManagerEmployeeNo)
	if err != nil {
		s.logger.Error("create project manager conflict check failed", zap.Error(err))
		return ProjectResponse{}, err
	}
	if busy {
		s.logger.Warn("create project rejected, manager already has an active project",
			zap.Int64("manager_employee_no", req.ManagerEmployeeNo),
		)
		return ProjectResponse{}, projecterrors.ErrManagerHasActiveProject
	}

	p := &Project{
		ProjectNo:         req.ProjectNo,
		Budget:            req.Budget,
		DateStarted:       dateStarted,
		ManagerEmployeeNo: req.ManagerEmployeeNo,
	}
	if err := qtx.CreateProject(ctx, p); err != nil {
		s.logger.Error("create project persist failed", zap.Error(err))
		return ProjectResponse{}, err
	}

	if err := qtx.CreateAssignment(ctx, &ProjectAssignment{
		ProjectNo:   req.ProjectNo,
		EmployeeNo:  req.ManagerEmployeeNo,
		Role:        ManagerRole,
		HoursWorked: decimal.Zero,
		DateStarted: dateStarted,
	}); err != nil {
		s.logger.Error("create project manager assignment failed", zap.Error(err))
		return ProjectResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create project commit failed", zap.String("request_id", rid), zap.Error(err))
		return ProjectResponse{}, err
	}

	s.logger.Info("create project success",
		zap.String("request_id", rid),
		zap.Int64("project_no", p.ProjectNo),
	)

	return mapProjectToResponse(*p), nil
}

// Complete closes the project and every open assignment with the same end
// date. Completing an already-ended project reports a no-op instead of an
// error; nothing is written twice.
func (s *service) Complete(ctx context.Context, projectNo int64) (CompleteProjectResponse, error) {
	s.logger.Debug("complete project requested", zap.Int64("project_no", projectNo))

	tx := s.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		s.logger.Error("complete project begin tx failed", zap.Error(err))
		return CompleteProjectResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByNo(ctx, projectNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompleteProjectResponse{}, projecterrors.ErrProjectNotFound
		}
		s.logger.Error("complete project lookup failed", zap.Error(err))
		return CompleteProjectResponse{}, err
	}

	if p.DateEnded != nil {
		s.logger.Info("complete project no-op, already ended",
			zap.Int64("project_no", projectNo),
		)
		return CompleteProjectResponse{
			ProjectNo:        projectNo,
			DateEnded:        p.DateEnded.Format("2006-01-02"),
			AlreadyCompleted: true,
		}, nil
	}

	endDate := s.now().UTC().Truncate(24 * time.Hour)

	if err := qtx.CloseProject(ctx, projectNo, endDate); err != nil {
		s.logger.Error("complete project close failed", zap.Error(err))
		return CompleteProjectResponse{}, err
	}

	closed, err := qtx.CloseOpenAssignments(ctx, projectNo, endDate)
	if err != nil {
		s.logger.Error("complete project cascade failed", zap.Error(err))
		return CompleteProjectResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("complete project commit failed", zap.Error(err))
		return CompleteProjectResponse{}, err
	}

	s.logger.Info("complete project success",
		zap.Int64("project_no", projectNo),
		zap.Int64("closed_assignments", closed),
	)

	return CompleteProjectResponse{
		ProjectNo:         projectNo,
		DateEnded:         endDate.Format("2006-01-02"),
		ClosedAssignments: closed,
	}, nil
}

func (s *service) AddMilestone(ctx context.Context, projectNo int64, req AddMilestoneRequest) (MilestoneResponse, error) {
	dateLogged, err := parseDate(req.Date)
	if err != nil {
		return MilestoneResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		s.logger.Error("add milestone begin tx failed", zap.Error(err))
		return MilestoneResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ProjectExists(ctx, projectNo)
	if err != nil {
		s.logger.Error("add milestone project check failed", zap.Error(err))
		return MilestoneResponse{}, err
	}
	if !exists {
		return MilestoneResponse{}, projecterrors.ErrProjectNotFound
	}

	m := &ProjectMilestone{
		ProjectNo:   projectNo,
		Description: req.Description,
		DateLogged:  dateLogged,
	}
	if err := qtx.CreateMilestone(ctx, m); err != nil {
		s.logger.Error("add milestone persist failed", zap.Error(err))
		return MilestoneResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("add milestone commit failed", zap.Error(err))
		return MilestoneResponse{}, err
	}

	s.logger.Info("add milestone success", zap.Int64("project_no", projectNo))

	return MilestoneResponse{
		ID:          m.ID,
		Description: m.Description,
		DateLogged:  m.DateLogged.Format("2006-01-02"),
	}, nil
}

func (s *service) AddTeamMember(ctx context.Context, projectNo int64, req AddTeamMemberRequest) (TeamMemberResponse, error) {
	dateStarted, err := parseDate(req.DateStarted)
	if err != nil {
		return TeamMemberResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		s.logger.Error("add team member begin tx failed", zap.Error(err))
		return TeamMemberResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ProjectExists(ctx, projectNo)
	if err != nil {
		s.logger.Error("add team member project check failed", zap.Error(err))
		return TeamMemberResponse{}, err
	}
	if !exists {
		return TeamMemberResponse{}, projecterrors.ErrProjectNotFound
	}

	active, err := qtx.EmployeeIsActive(ctx, req.EmployeeNo)
	if err != nil {
		s.logger.Error("add team member employee check failed", zap.Error(err))
		return TeamMemberResponse{}, err
	}
	if !active {
		return TeamMemberResponse{}, projecterrors.ErrEmployeeNotFound
	}

	assigned, err := qtx.HasOpenAssignment(ctx, projectNo, req.EmployeeNo)
	if err != nil {
		s.logger.Error("add team member assignment check failed", zap.Error(err))
		return TeamMemberResponse{}, err
	}
	if assigned {
		s.logger.Warn("add team member rejected, employee already assigned",
			zap.Int64("project_no", projectNo),
			zap.Int64("employee_no", req.EmployeeNo),
		)
		return TeamMemberResponse{}, projecterrors.ErrAlreadyAssigned
	}

	a := &ProjectAssignment{
		ProjectNo:   projectNo,
		EmployeeNo:  req.EmployeeNo,
		Role:        req.Role,
		HoursWorked: decimal.Zero,
		DateStarted: dateStarted,
	}
	if err := qtx.CreateAssignment(ctx, a); err != nil {
		s.logger.Error("add team member persist failed", zap.Error(err))
		return TeamMemberResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("add team member commit failed", zap.Error(err))
		return TeamMemberResponse{}, err
	}

	s.logger.Info("add team member success",
		zap.Int64("project_no", projectNo),
		zap.Int64("employee_no", req.EmployeeNo),
	)

	return TeamMemberResponse{
		EmployeeNo:  a.EmployeeNo,
		Role:        a.Role,
		HoursWorked: a.HoursWorked.StringFixed(2),
		DateStarted: a.DateStarted.Format("2006-01-02"),
	}, nil
}

func (s *service) GetDetail(ctx context.Context, projectNo int64) (ProjectDetailResponse, error) {
	p, err := s.repo.FindByNo(ctx, projectNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProjectDetailResponse{}, projecterrors.ErrProjectNotFound
		}
		s.logger.Error("project detail lookup failed", zap.Error(err))
		return ProjectDetailResponse{}, err
	}

	team, err := s.repo.ListTeam(ctx, projectNo)
	if err != nil {
		s.logger.Error("project detail team query failed", zap.Error(err))
		return ProjectDetailResponse{}, err
	}

	milestones, err := s.repo.ListMilestones(ctx, projectNo)
	if err != nil {
		s.logger.Error("project detail milestones query failed", zap.Error(err))
		return ProjectDetailResponse{}, err
	}

	detail := ProjectDetailResponse{
		ProjectResponse: mapProjectToResponse(*p),
		Team:            make([]TeamMemberResponse, len(team)),
		Milestones:      make([]MilestoneResponse, len(milestones)),
	}

	totalHours := decimal.Zero
	for i, row := range team {
		detail.Team[i] = TeamMemberResponse{
			EmployeeNo:  row.EmployeeNo,
			Name:        row.Name,
			Role:        row.Role,
			HoursWorked: row.HoursWorked.StringFixed(2),
			DateStarted: row.DateStarted.Format("2006-01-02"),
		}
		if row.DateEnded != nil {
			detail.Team[i].DateEnded = row.DateEnded.Format("2006-01-02")
		}
		totalHours = totalHours.Add(row.HoursWorked)
		if row.EmployeeNo == p.ManagerEmployeeNo && row.Role == ManagerRole {
			detail.ManagerName = row.Name
		}
	}
	detail.TotalHours = totalHours.StringFixed(2)

	for i, m := range milestones {
		detail.Milestones[i] = MilestoneResponse{
			ID:          m.ID,
			Description: m.Description,
			DateLogged:  m.DateLogged.Format("2006-01-02"),
		}
	}

	return detail, nil
}

func (s *service) Dashboard(ctx context.Context) ([]DashboardEntry, error) {
	rows, err := s.repo.DashboardRows(ctx)
	if err != nil {
		s.logger.Error("project dashboard query failed", zap.Error(err))
		return nil, err
	}

	entries := make([]DashboardEntry, len(rows))
	for i, row := range rows {
		entries[i] = DashboardEntry{
			ProjectResponse: ProjectResponse{
				ProjectNo:         row.ProjectNo,
				Budget:            row.Budget.StringFixed(2),
				DateStarted:       row.DateStarted.Format("2006-01-02"),
				ManagerEmployeeNo: row.ManagerEmployeeNo,
				Active:            row.DateEnded == nil,
			},
			MilestoneCount:  row.MilestoneCount,
			ActiveTeamCount: row.ActiveTeamCount,
			TotalHours:      row.TotalHours.StringFixed(2),
		}
		if row.DateEnded != nil {
			entries[i].DateEnded = row.DateEnded.Format("2006-01-02")
		}
		if row.ManagerName != nil {
			entries[i].ManagerName = *row.ManagerName
		}
	}
	return entries, nil
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, projecterrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapProjectToResponse(p Project) ProjectResponse {
	resp := ProjectResponse{
		ProjectNo:         p.ProjectNo,
		Budget:            p.Budget.StringFixed(2),
		DateStarted:       p.DateStarted.Format("2006-01-02"),
		ManagerEmployeeNo: p.ManagerEmployeeNo,
		Active:            p.DateEnded == nil,
	}
	if p.DateEnded != nil {
		resp.DateEnded = p.DateEnded.Format("2006-01-02")
	}
	return resp
}
