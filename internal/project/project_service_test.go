package project_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-workforce/internal/project"
	projecterrors "go-workforce/internal/project/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeProjectRepository struct {
	withTxFn                  func(tx *gorm.DB) project.Repository
	createProjectFn           func(ctx context.Context, p *project.Project) error
	findByNoFn                func(ctx context.Context, projectNo int64) (*project.Project, error)
	projectExistsFn           func(ctx context.Context, projectNo int64) (bool, error)
	managerHasActiveProjectFn func(ctx context.Context, managerEmployeeNo int64) (bool, error)
	employeeIsActiveFn        func(ctx context.Context, employeeNo int64) (bool, error)
	closeProjectFn            func(ctx context.Context, projectNo int64, endDate time.Time) error
	createAssignmentFn        func(ctx context.Context, a *project.ProjectAssignment) error
	hasOpenAssignmentFn       func(ctx context.Context, projectNo, employeeNo int64) (bool, error)
	closeOpenAssignmentsFn    func(ctx context.Context, projectNo int64, endDate time.Time) (int64, error)
	createMilestoneFn         func(ctx context.Context, m *project.ProjectMilestone) error
	listMilestonesFn          func(ctx context.Context, projectNo int64) ([]project.ProjectMilestone, error)
	listTeamFn                func(ctx context.Context, projectNo int64) ([]project.TeamMemberRow, error)
	dashboardRowsFn           func(ctx context.Context) ([]project.DashboardRow, error)
}

func (f *fakeProjectRepository) WithTx(tx *gorm.DB) project.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeProjectRepository) CreateProject(ctx context.Context, p *project.Project) error {
	if f.createProjectFn != nil {
		return f.createProjectFn(ctx, p)
	}
	return nil
}

func (f *fakeProjectRepository) FindByNo(ctx context.Context, projectNo int64) (*project.Project, error) {
	if f.findByNoFn != nil {
		return f.findByNoFn(ctx, projectNo)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProjectRepository) ProjectExists(ctx context.Context, projectNo int64) (bool, error) {
	if f.projectExistsFn != nil {
		return f.projectExistsFn(ctx, projectNo)
	}
	return false, nil
}

func (f *fakeProjectRepository) ManagerHasActiveProject(ctx context.Context, managerEmployeeNo int64) (bool, error) {
	if f.managerHasActiveProjectFn != nil {
		return f.managerHasActiveProjectFn(ctx, managerEmployeeNo)
	}
	return false, nil
}

func (f *fakeProjectRepository) EmployeeIsActive(ctx context.Context, employeeNo int64) (bool, error) {
	if f.employeeIsActiveFn != nil {
		return f.employeeIsActiveFn(ctx, employeeNo)
	}
	return true, nil
}

func (f *fakeProjectRepository) CloseProject(ctx context.Context, projectNo int64, endDate time.Time) error {
	if f.closeProjectFn != nil {
		return f.closeProjectFn(ctx, projectNo, endDate)
	}
	return nil
}

func (f *fakeProjectRepository) CreateAssignment(ctx context.Context, a *project.ProjectAssignment) error {
	if f.createAssignmentFn != nil {
		return f.createAssignmentFn(ctx, a)
	}
	return nil
}

func (f *fakeProjectRepository) HasOpenAssignment(ctx context.Context, projectNo, employeeNo int64) (bool, error) {
	if f.hasOpenAssignmentFn != nil {
		return f.hasOpenAssignmentFn(ctx, projectNo, employeeNo)
	}
	return false, nil
}

func (f *fakeProjectRepository) CloseOpenAssignments(ctx context.Context, projectNo int64, endDate time.Time) (int64, error) {
	if f.closeOpenAssignmentsFn != nil {
		return f.closeOpenAssignmentsFn(ctx, projectNo, endDate)
	}
	return 0, nil
}

func (f *fakeProjectRepository) CreateMilestone(ctx context.Context, m *project.ProjectMilestone) error {
	if f.createMilestoneFn != nil {
		return f.createMilestoneFn(ctx, m)
	}
	return nil
}

func (f *fakeProjectRepository) ListMilestones(ctx context.Context, projectNo int64) ([]project.ProjectMilestone, error) {
	if f.listMilestonesFn != nil {
		return f.listMilestonesFn(ctx, projectNo)
	}
	return nil, nil
}

func (f *fakeProjectRepository) ListTeam(ctx context.Context, projectNo int64) ([]project.TeamMemberRow, error) {
	if f.listTeamFn != nil {
		return f.listTeamFn(ctx, projectNo)
	}
	return nil, nil
}

func (f *fakeProjectRepository) DashboardRows(ctx context.Context) ([]project.DashboardRow, error) {
	if f.dashboardRowsFn != nil {
		return f.dashboardRowsFn(ctx)
	}
	return nil, nil
}

type projectServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service project.Service
	repo    *fakeProjectRepository
}

func setupProjectServiceTest(t *testing.T) *projectServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{Logger: logger.Discard})
	assert.NoError(t, err)

	repo := &fakeProjectRepository{}
	now := func() time.Time {
		return time.Date(2026, 4, 20, 16, 45, 0, 0, time.UTC)
	}
	svc := project.NewServiceWithClock(gdb, repo, now)

	return &projectServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()
	deps := setupProjectServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)

	var createdProject *project.Project
	deps.repo.createProjectFn = func(ctx context.Context, p *project.Project) error {
		createdProject = p
		return nil
	}

	var managerAssignment *project.ProjectAssignment
	deps.repo.createAssignmentFn = func(ctx context.Context, a *project.ProjectAssignment) error {
		managerAssignment = a
		return nil
	}

	resp, err := deps.service.Create(ctx, project.CreateProjectRequest{
		ProjectNo:         7,
		Budget:            decimal.RequireFromString("150000.00"),
		DateStarted:       "2026-04-01",
		ManagerEmployeeNo: 1001,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), resp.ProjectNo)
	assert.True(t, resp.Active)
	assert.NotNil(t, createdProject)
	assert.NotNil(t, managerAssignment)
	assert.Equal(t, project.ManagerRole, managerAssignment.Role)
	assert.Equal(t, int64(1001), managerAssignment.EmployeeNo)
	assert.True(t, managerAssignment.HoursWorked.IsZero())
	assert.Equal(t, createdProject.DateStarted, managerAssignment.DateStarted)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestProjectService_Create_DuplicateNumber(t *testing.T) {
	ctx := context.Background()
	deps := setupProjectServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.projectExistsFn = func(ctx context.Context, projectNo int64) (bool, error) {
		return true, nil
	}
	deps.repo.createProjectFn = func(ctx context.Context, p *project.Project) error {
		t.Fatal("create must not run for a duplicate number")
		return nil
	}

	_, err := deps.service.Create(ctx, project.CreateProjectRequest{
		ProjectNo:         7,
		DateStarted:       "2026-04-01",
		ManagerEmployeeNo: 1001,
	})

	assert.ErrorIs(t, err, projecterrors.ErrDuplicateProject)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestProjectService_Create_ManagerAlreadyBusy(t *testing.T) {
	ctx := context.Background()
	deps := setupProjectServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.managerHasActiveProjectFn = func(ctx context.Context, managerEmployeeNo int64) (bool, error) {
		return true, nil
	}

	_, err := deps.service.Create(ctx, project.CreateProjectRequest{
		ProjectNo:         8,
		DateStarted:       "2026-04-01",
		ManagerEmployeeNo: 1001,
	})

	assert.ErrorIs(t, err, projecterrors.ErrManagerHasActiveProject)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestProjectService_Create_InactiveManager(t *testing.T) {
	ctx := context.Background()
	deps := setupProjectServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.employeeIsActiveFn = func(ctx context.Context, employeeNo int64) (bool, error) {
		return false, nil
	}

	_, err := deps.service.Create(ctx, project.CreateProjectRequest{
		ProjectNo:         8,
		DateStarted:       "2026-04-01",
		ManagerEmployeeNo: 1001,
	})

	assert.ErrorIs(t, err, projecterrors.ErrManagerNotFound)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestProjectService_Create_AssignmentFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	deps := setupProjectServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.createAssignmentFn = func(ctx context.Context, a *project.ProjectAssignment) error {
		return errors.New("insert failed")
	}

	_, err := deps.service.Create(ctx, project.CreateProjectRequest{
		ProjectNo:         9,
		DateStarted:       "2026-04-01",
		ManagerEmployeeNo: 1001,
	})

	assert.Error(t, err)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestProjectService_Create_BadDate(t *testing.T) {
	ctx := context.Background()
	deps := setupProjectServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.Create(ctx, project.CreateProjectRequest{
		ProjectNo:         9,
		DateStarted:       "04/01/2026",
		ManagerEmployeeNo: 1001,
	})

	assert.ErrorIs(t, err, projecterrors.ErrInvalidDateFormat)
}

func TestProjectService_Complete(t *testing.T) {
	ctx := context.Background()
	deps := setupProjectServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	deps.repo.findByNoFn = func(ctx context.Context, projectNo int64) (*project.Project, error) {
		return &project.Project{
			ProjectNo:         projectNo,
			DateStarted:       time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			ManagerEmployeeNo: 1001,
		}, nil
	}

	var projectEnd, cascadeEnd time.Time
	deps.repo.closeProjectFn = func(ctx context.Context, projectNo int64, endDate time.Time) error {
		projectEnd = endDate
		return nil
	}
	deps.repo.closeOpenAssignmentsFn = func(ctx context.Context, projectNo int64, endDate time.Time) (int64, error) {
		cascadeEnd = endDate
		return 3, nil
	}

	resp, err := deps.service.Complete(ctx, 7)

	assert.NoError(t, err)
	assert.False(t, resp.AlreadyCompleted)
	assert.Equal(t, int64(3), resp.ClosedAssignments)
	assert.Equal(t, "2026-04-20", resp.DateEnded)
	assert.Equal(t, projectEnd, cascadeEnd)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestProjectService_Complete_AlreadyCompleted(t *testing.T) {
	ctx := context.Background()
	deps := setupProjectServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	ended := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	deps.repo.findByNoFn = func(ctx context.Context, projectNo int64) (*project.Project, error) {
		return &project.Project{ProjectNo: projectNo, DateEnded: &ended}, nil
	}
	deps.repo.closeProjectFn = func(ctx context.Context, projectNo int64, endDate time.Time) error {
		t.Fatal("close must not run twice")
		return nil
	}

	resp, err := deps.service.Complete(ctx, 7)

	assert.NoError(t, err)
	assert.True(t, resp.AlreadyCompleted)
	assert.Equal(t, "2026-02-10", resp.DateEnded)
	assert.Zero(t, resp.ClosedAssignments)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestProjectService_Complete_NotFound(t *testing.T) {
	ctx := context.Background()
	deps := setupProjectServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)

	_, err := deps.service.Complete(ctx, 404)

	assert.ErrorIs(t, err, projecterrors.ErrProjectNotFound)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestProjectService_AddTeamMember(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupProjectServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.projectExistsFn = func(ctx context.Context, projectNo int64) (bool, error) {
			return true, nil
		}

		var created *project.ProjectAssignment
		deps.repo.createAssignmentFn = func(ctx context.Context, a *project.ProjectAssignment) error {
			created = a
			return nil
		}

		resp, err := deps.service.AddTeamMember(ctx, 7, project.AddTeamMemberRequest{
			EmployeeNo:  1002,
			Role:        "Analyst",
			DateStarted: "2026-04-05",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1002), resp.EmployeeNo)
		assert.Equal(t, "0.00", resp.HoursWorked)
		assert.NotNil(t, created)
		assert.Nil(t, created.DateEnded)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate open assignment", func(t *testing.T) {
		deps := setupProjectServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.projectExistsFn = func(ctx context.Context, projectNo int64) (bool, error) {
			return true, nil
		}
		deps.repo.hasOpenAssignmentFn = func(ctx context.Context, projectNo, employeeNo int64) (bool, error) {
			return true, nil
		}

		_, err := deps.service.AddTeamMember(ctx, 7, project.AddTeamMemberRequest{
			EmployeeNo:  1002,
			Role:        "Analyst",
			DateStarted: "2026-04-05",
		})

		assert.ErrorIs(t, err, projecterrors.ErrAlreadyAssigned)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown project", func(t *testing.T) {
		deps := setupProjectServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.AddTeamMember(ctx, 404, project.AddTeamMemberRequest{
			EmployeeNo:  1002,
			Role:        "Analyst",
			DateStarted: "2026-04-05",
		})

		assert.ErrorIs(t, err, projecterrors.ErrProjectNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestProjectService_AddMilestone(t *testing.T) {
	ctx := context.Background()
	deps := setupProjectServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	deps.repo.projectExistsFn = func(ctx context.Context, projectNo int64) (bool, error) {
		return true, nil
	}
	deps.repo.createMilestoneFn = func(ctx context.Context, m *project.ProjectMilestone) error {
		m.ID = 42
		return nil
	}

	resp, err := deps.service.AddMilestone(ctx, 7, project.AddMilestoneRequest{
		Description: "Design review passed",
		Date:        "2026-04-10",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2026-04-10", resp.DateLogged)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestProjectService_GetDetail(t *testing.T) {
	ctx := context.Background()
	deps := setupProjectServiceTest(t)
	defer deps.db.Close()

	deps.repo.findByNoFn = func(ctx context.Context, projectNo int64) (*project.Project, error) {
		return &project.Project{
			ProjectNo:         projectNo,
			Budget:            decimal.RequireFromString("150000.00"),
			DateStarted:       time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			ManagerEmployeeNo: 1001,
		}, nil
	}
	deps.repo.listTeamFn = func(ctx context.Context, projectNo int64) ([]project.TeamMemberRow, error) {
		return []project.TeamMemberRow{
			{
				EmployeeNo:  1001,
				Name:        "Dana Reyes",
				Role:        project.ManagerRole,
				HoursWorked: decimal.RequireFromString("12.50"),
				DateStarted: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			},
			{
				EmployeeNo:  1002,
				Name:        "Priya Shah",
				Role:        "Analyst",
				HoursWorked: decimal.RequireFromString("7.25"),
				DateStarted: time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
			},
		}, nil
	}
	deps.repo.listMilestonesFn = func(ctx context.Context, projectNo int64) ([]project.ProjectMilestone, error) {
		return []project.ProjectMilestone{
			{ID: 1, ProjectNo: projectNo, Description: "Kickoff", DateLogged: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)},
		}, nil
	}

	detail, err := deps.service.GetDetail(ctx, 7)

	assert.NoError(t, err)
	assert.Equal(t, "Dana Reyes", detail.ManagerName)
	assert.Len(t, detail.Team, 2)
	assert.Len(t, detail.Milestones, 1)
	assert.Equal(t, "19.75", detail.TotalHours)
	assert.True(t, detail.Active)
}

func TestProjectService_Dashboard(t *testing.T) {
	ctx := context.Background()
	deps := setupProjectServiceTest(t)
	defer deps.db.Close()

	ended := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	manager := "Dana Reyes"
	deps.repo.dashboardRowsFn = func(ctx context.Context) ([]project.DashboardRow, error) {
		return []project.DashboardRow{
			{
				ProjectNo:         7,
				Budget:            decimal.RequireFromString("150000.00"),
				DateStarted:       time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
				ManagerEmployeeNo: 1001,
				ManagerName:       &manager,
				MilestoneCount:    2,
				ActiveTeamCount:   3,
				TotalHours:        decimal.RequireFromString("47.50"),
			},
			{
				ProjectNo:         5,
				Budget:            decimal.RequireFromString("80000.00"),
				DateStarted:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				DateEnded:         &ended,
				ManagerEmployeeNo: 1002,
			},
		}, nil
	}

	entries, err := deps.service.Dashboard(ctx)

	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.True(t, entries[0].Active)
	assert.Equal(t, "Dana Reyes", entries[0].ManagerName)
	assert.Equal(t, "47.50", entries[0].TotalHours)
	assert.False(t, entries[1].Active)
	assert.Equal(t, "2026-03-31", entries[1].DateEnded)
}
