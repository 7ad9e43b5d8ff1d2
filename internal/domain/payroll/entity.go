package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryRecord is the one-row-per-(employee, month, year) payroll
// record. Generation computes the prorated figures; the statutory
// deduction fields default to zero and are entered through edits.
type SalaryRecord struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`

	PresentDays      int `json:"present_days"`
	TotalWorkingDays int `json:"total_working_days"`

	DailyWage        decimal.Decimal `json:"daily_wage"`
	BasicSalary      decimal.Decimal `json:"basic_salary"`
	CalculatedSalary decimal.Decimal `json:"calculated_salary"`
	TotalSalary      decimal.Decimal `json:"total_salary"`

	Bonus         decimal.Decimal `json:"bonus"`
	VariableBonus decimal.Decimal `json:"variable_bonus"`
	Advance       decimal.Decimal `json:"advance"`

	EPFEmployee     decimal.Decimal `json:"epf_employee"`
	ESIEmployee     decimal.Decimal `json:"esi_employee"`
	ProfessionalTax decimal.Decimal `json:"professional_tax"`
	TDS             decimal.Decimal `json:"tds"`
	Gratuity        decimal.Decimal `json:"gratuity"`
	GHI             decimal.Decimal `json:"ghi"`

	Deductions decimal.Decimal `json:"deductions"`
	NetSalary  decimal.Decimal `json:"net_salary"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined display fields, populated by listing queries.
	EmployeeName string `json:"employee_name,omitempty"`
	EmployeeCode string `json:"employee_code,omitempty"`
}

// StatutoryDeductions sums the statutory components only, excluding
// the advance.
func (r SalaryRecord) StatutoryDeductions() decimal.Decimal {
	return r.EPFEmployee.
		Add(r.ESIEmployee).
		Add(r.ProfessionalTax).
		Add(r.TDS).
		Add(r.Gratuity).
		Add(r.GHI)
}

// Base names the salary figure net pay is derived from. Generation
// uses the prorated calculation; edits may switch to the manually
// entered total. The choice is explicit on every recompute.
type Base string

const (
	BaseCalculated Base = "calculated"
	BaseTotal      Base = "total"
)

// Recompute applies the canonical payroll formula
//
//	net = base - statutory - advance + bonus + variable bonus
//
// and refreshes the aggregate deductions field (statutory + advance).
func (r *SalaryRecord) Recompute(base Base) {
	b := r.CalculatedSalary
	if base == BaseTotal {
		b = r.TotalSalary
	}

	statutory := r.StatutoryDeductions()
	r.Deductions = statutory.Add(r.Advance)
	r.NetSalary = b.
		Sub(statutory).
		Sub(r.Advance).
		Add(r.Bonus).
		Add(r.VariableBonus)
}
