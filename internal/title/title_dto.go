package title

import "github.com/shopspring/decimal"

type CreateTitleRequest struct {
	Name          string          `json:"name" binding:"required"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
}

type UpdateTitleRequest struct {
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
}

type TitleResponse struct {
	Name          string `json:"name"`
	MonthlySalary string `json:"monthly_salary"`
}
