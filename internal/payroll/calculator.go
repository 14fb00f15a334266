package payroll

import "github.com/shopspring/decimal"

// Tax rates are fixed percentages of gross pay.
var (
	federalRate = decimal.RequireFromString("0.10")
	stateRate   = decimal.RequireFromString("0.05")
	otherRate   = decimal.RequireFromString("0.03")
)

// Breakdown is one payroll run's arithmetic result.
type Breakdown struct {
	Gross   decimal.Decimal
	Federal decimal.Decimal
	State   decimal.Decimal
	Other   decimal.Decimal
	Net     decimal.Decimal
}

// CalculateHourly computes the breakdown for rate x hours.
func CalculateHourly(rate, hours decimal.Decimal) Breakdown {
	return breakdownFromGross(rate.Mul(hours))
}

// CalculateSalaried computes the breakdown for a monthly salary.
func CalculateSalaried(monthlySalary decimal.Decimal) Breakdown {
	return breakdownFromGross(monthlySalary)
}

// breakdownFromGross rounds gross to cents, then each tax independently,
// then subtracts the rounded taxes. The round-then-sum order is what the
// historical ledger was built with; changing it shifts net pay by a cent.
func breakdownFromGross(gross decimal.Decimal) Breakdown {
	b := Breakdown{Gross: gross.Round(2)}
	b.Federal = b.Gross.Mul(federalRate).Round(2)
	b.State = b.Gross.Mul(stateRate).Round(2)
	b.Other = b.Gross.Mul(otherRate).Round(2)
	b.Net = b.Gross.Sub(b.Federal).Sub(b.State).Sub(b.Other)
	return b
}
