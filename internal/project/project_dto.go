package project

import "github.com/shopspring/decimal"

type CreateProjectRequest struct {
	ProjectNo         int64           `json:"project_no" binding:"required"`
	Budget            decimal.Decimal `json:"budget"`
	DateStarted       string          `json:"date_started" binding:"required"`
	ManagerEmployeeNo int64           `json:"manager_employee_no" binding:"required"`
}

type AddMilestoneRequest struct {
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required"`
}

type AddTeamMemberRequest struct {
	EmployeeNo  int64  `json:"employee_no" binding:"required"`
	Role        string `json:"role" binding:"required"`
	DateStarted string `json:"date_started" binding:"required"`
}

type ProjectResponse struct {
	ProjectNo         int64  `json:"project_no"`
	Budget            string `json:"budget"`
	DateStarted       string `json:"date_started"`
	DateEnded         string `json:"date_ended,omitempty"`
	ManagerEmployeeNo int64  `json:"manager_employee_no"`
	Active            bool   `json:"active"`
}

type TeamMemberResponse struct {
	EmployeeNo  int64  `json:"employee_no"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	HoursWorked string `json:"hours_worked"`
	DateStarted string `json:"date_started"`
	DateEnded   string `json:"date_ended,omitempty"`
}

type MilestoneResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	DateLogged  string `json:"date_logged"`
}

// ProjectDetailResponse is the data bag behind the project screen.
type ProjectDetailResponse struct {
	ProjectResponse
	ManagerName string               `json:"manager_name"`
	Team        []TeamMemberResponse `json:"team"`
	Milestones  []MilestoneResponse  `json:"milestones"`
	TotalHours  string               `json:"total_hours"`
}

// DashboardEntry is one row of the PM dashboard with its aggregate stats.
type DashboardEntry struct {
	ProjectResponse
	ManagerName     string `json:"manager_name"`
	MilestoneCount  int64  `json:"milestone_count"`
	ActiveTeamCount int64  `json:"active_team_count"`
	TotalHours      string `json:"total_hours"`
}

type CompleteProjectResponse struct {
	ProjectNo         int64  `json:"project_no"`
	DateEnded         string `json:"date_ended"`
	ClosedAssignments int64  `json:"closed_assignments"`
	AlreadyCompleted  bool   `json:"already_completed"`
}
