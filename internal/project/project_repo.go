package project

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardRow is one project with its aggregate stats, computed by the
// database in a single grouped query rather than per-project loops.
type DashboardRow struct {
	ProjectNo         int64
	Budget            decimal.Decimal
	DateStarted       time.Time
	DateEnded         *time.Time
	ManagerEmployeeNo int64
	ManagerName       *string
	MilestoneCount    int64
	ActiveTeamCount   int64
	TotalHours        decimal.Decimal
}

// TeamMemberRow is an assignment joined with the employee's name.
type TeamMemberRow struct {
	EmployeeNo  int64
	Name        string
	Role        string
	HoursWorked decimal.Decimal
	DateStarted time.Time
	DateEnded   *time.Time
}

//go:generate mockgen -source=project_repo.go -destination=mock/project_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateProject(ctx context.Context, p *Project) error
	FindByNo(ctx context.Context, projectNo int64) (*Project, error)
	ProjectExists(ctx context.Context, projectNo int64) (bool, error)
	ManagerHasActiveProject(ctx context.Context, managerEmployeeNo int64) (bool, error)
	EmployeeIsActive(ctx context.Context, employeeNo int64) (bool, error)
	CloseProject(ctx context.Context, projectNo int64, endDate time.Time) error
	CreateAssignment(ctx context.Context, a *ProjectAssignment) error
	HasOpenAssignment(ctx context.Context, projectNo, employeeNo int64) (bool, error)
	CloseOpenAssignments(ctx context.Context, projectNo int64, endDate time.Time) (int64, error)
	CreateMilestone(ctx context.Context, m *ProjectMilestone) error
	ListMilestones(ctx context.Context, projectNo int64) ([]ProjectMilestone, error)
	ListTeam(ctx context.Context, projectNo int64) ([]TeamMemberRow, error)
	DashboardRows(ctx context.Context) ([]DashboardRow, error)
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

func (r *repository) CreateProject(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByNo(ctx context.Context, projectNo int64) (*Project, error) {
	var p Project
	err := r.db.WithContext(ctx).
		First(&p, "project_no = ?", projectNo).Error
	return &p, err
}

func (r *repository) ProjectExists(ctx context.Context, projectNo int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Project{}).
		Where("project_no = ?", projectNo).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ManagerHasActiveProject(ctx context.Context, managerEmployeeNo int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Project{}).
		Where("manager_employee_no = ?", managerEmployeeNo).
		Where("date_ended IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) EmployeeIsActive(ctx context.Context, employeeNo int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("employee_no = ?", employeeNo).
		Where("is_active").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CloseProject(ctx context.Context, projectNo int64, endDate time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Project{}).
		Where("project_no = ?", projectNo).
		Update("date_ended", endDate).Error
}

func (r *repository) CreateAssignment(ctx context.Context, a *ProjectAssignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) HasOpenAssignment(ctx context.Context, projectNo, employeeNo int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ProjectAssignment{}).
		Where("project_no = ?", projectNo).
		Where("employee_no = ?", employeeNo).
		Where("date_ended IS NULL").
		Count(&count).Error
	return count > 0, err
}

// CloseOpenAssignments stamps the end date on every still-open assignment of
// the project and reports how many it closed.
func (r *repository) CloseOpenAssignments(ctx context.Context, projectNo int64, endDate time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&ProjectAssignment{}).
		Where("project_no = ?", projectNo).
		Where("date_ended IS NULL").
		Update("date_ended", endDate)
	return res.RowsAffected, res.Error
}

func (r *repository) CreateMilestone(ctx context.Context, m *ProjectMilestone) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) ListMilestones(ctx context.Context, projectNo int64) ([]ProjectMilestone, error) {
	var milestones []ProjectMilestone
	err := r.db.WithContext(ctx).
		Where("project_no = ?", projectNo).
		Order("date_logged asc, id asc").
		Find(&milestones).Error
	return milestones, err
}

func (r *repository) ListTeam(ctx context.Context, projectNo int64) ([]TeamMemberRow, error) {
	var rows []TeamMemberRow
	err := r.db.WithContext(ctx).
		Table("project_assignments a").
		Select("a.employee_no, e.name, a.role, a.hours_worked, a.date_started, a.date_ended").
		Joins("JOIN employees e ON e.employee_no = a.employee_no").
		Where("a.project_no = ?", projectNo).
		Order("a.date_started asc, a.id asc").
		Scan(&rows).Error
	return rows, err
}

// DashboardRows aggregates per project: milestone count, open-assignment
// headcount, and hours summed over every assignment open or closed.
func (r *repository) DashboardRows(ctx context.Context) ([]DashboardRow, error) {
	var rows []DashboardRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.project_no,
		       p.budget,
		       p.date_started,
		       p.date_ended,
		       p.manager_employee_no,
		       e.name AS manager_name,
		       (SELECT COUNT(*) FROM project_milestones m WHERE m.project_no = p.project_no) AS milestone_count,
		       COUNT(a.id) FILTER (WHERE a.date_ended IS NULL) AS active_team_count,
		       COALESCE(SUM(a.hours_worked), 0) AS total_hours
		FROM projects p
		LEFT JOIN project_assignments a ON a.project_no = p.project_no
		LEFT JOIN employees e ON e.employee_no = p.manager_employee_no
		GROUP BY p.project_no, p.budget, p.date_started, p.date_ended, p.manager_employee_no, e.name
		ORDER BY p.project_no
	`).Scan(&rows).Error
	return rows, err
}
