package payroll

import "github.com/shopspring/decimal"

type RunPayrollRequest struct {
	// Hours is required for hourly employees and ignored for salaried ones.
	Hours *decimal.Decimal `json:"hours"`
}

type PayrollRunResponse struct {
	EmployeeNo  int64  `json:"employee_no"`
	Name        string `json:"name"`
	PaymentDate string `json:"payment_date"`
	GrossPay    string `json:"gross_pay"`
	FederalTax  string `json:"federal_tax"`
	StateTax    string `json:"state_tax"`
	OtherTax    string `json:"other_tax"`
	NetPay      string `json:"net_pay"`
}

type LedgerEntryResponse struct {
	EmployeeNo  int64  `json:"employee_no"`
	Name        string `json:"name"`
	PaymentDate string `json:"payment_date"`
	GrossPay    string `json:"gross_pay"`
	FederalTax  string `json:"federal_tax"`
	StateTax    string `json:"state_tax"`
	OtherTax    string `json:"other_tax"`
	NetPay      string `json:"net_pay"`
}
