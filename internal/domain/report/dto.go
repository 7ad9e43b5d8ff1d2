package report

import (
	"github.com/shopspring/decimal"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/validator"
)

// Filter restricts report rows by employee and/or period.
type Filter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Month      *int    `json:"month,omitempty"`
	Year       *int    `json:"year,omitempty"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != nil && (*f.Month < 1 || *f.Month > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if f.Year != nil && *f.Year < 2000 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceRow is one employee's monthly attendance aggregate.
type AttendanceRow struct {
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	EmployeeCode  string  `json:"employee_code"`
	PresentDays   int64   `json:"present_days"`
	PendingDays   int64   `json:"pending_days"`
	RejectedDays  int64   `json:"rejected_days"`
	TotalSessions int64   `json:"total_sessions"`
	TotalHours    float64 `json:"total_hours"`
}

// PayrollRow is one employee's payroll line for the period.
type PayrollRow struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	EmployeeCode string          `json:"employee_code"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	PresentDays  int             `json:"present_days"`
	NetSalary    decimal.Decimal `json:"net_salary"`
	Deductions   decimal.Decimal `json:"deductions"`
}

// SpendTotals aggregates petty cash and expense amounts by status.
type SpendTotals struct {
	PettyCashPending  decimal.Decimal `json:"petty_cash_pending"`
	PettyCashApproved decimal.Decimal `json:"petty_cash_approved"`
	PettyCashRejected decimal.Decimal `json:"petty_cash_rejected"`
	ExpensePending    decimal.Decimal `json:"expense_pending"`
	ExpenseApproved   decimal.Decimal `json:"expense_approved"`
	ExpenseRejected   decimal.Decimal `json:"expense_rejected"`
}

type MonthlyReport struct {
	Attendance []AttendanceRow `json:"attendance"`
	Payroll    []PayrollRow    `json:"payroll"`
	Spend      SpendTotals     `json:"spend"`
}
