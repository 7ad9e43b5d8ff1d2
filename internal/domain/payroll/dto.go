package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/validator"
)

type GenerateRequest struct {
	EmployeeID string          `json:"employee_id"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Bonus      decimal.Decimal `json:"bonus"`
	Advance    decimal.Decimal `json:"advance"`
	Deductions decimal.Decimal `json:"deductions"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if r.Year < 2000 || r.Year > time.Now().Year()+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}
	if r.Bonus.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "bonus",
			Message: "bonus must not be negative",
		})
	}
	if r.Advance.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "advance",
			Message: "advance must not be negative",
		})
	}
	if r.Deductions.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "deductions",
			Message: "deductions must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EditRequest overrides salary fields after generation. Nil fields are
// left untouched. The base choice controls which figure the net salary
// recompute starts from; it defaults to the manually entered total.
type EditRequest struct {
	ID string `json:"-"`

	TotalSalary   *decimal.Decimal `json:"total_salary,omitempty"`
	Bonus         *decimal.Decimal `json:"bonus,omitempty"`
	VariableBonus *decimal.Decimal `json:"variable_bonus,omitempty"`
	Advance       *decimal.Decimal `json:"advance,omitempty"`

	EPFEmployee     *decimal.Decimal `json:"epf_employee,omitempty"`
	ESIEmployee     *decimal.Decimal `json:"esi_employee,omitempty"`
	ProfessionalTax *decimal.Decimal `json:"professional_tax,omitempty"`
	TDS             *decimal.Decimal `json:"tds,omitempty"`
	Gratuity        *decimal.Decimal `json:"gratuity,omitempty"`
	GHI             *decimal.Decimal `json:"ghi,omitempty"`

	Base *string `json:"base,omitempty"` // calculated | total
}

func (r *EditRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Base != nil && !validator.IsInSlice(*r.Base, []string{string(BaseCalculated), string(BaseTotal)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "base",
			Message: "base must be one of: calculated, total",
		})
	}
	for field, v := range map[string]*decimal.Decimal{
		"total_salary":     r.TotalSalary,
		"bonus":            r.Bonus,
		"variable_bonus":   r.VariableBonus,
		"advance":          r.Advance,
		"epf_employee":     r.EPFEmployee,
		"esi_employee":     r.ESIEmployee,
		"professional_tax": r.ProfessionalTax,
		"tds":              r.TDS,
		"gratuity":         r.Gratuity,
		"ghi":              r.GHI,
	} {
		if v != nil && v.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	EmployeeCode string `json:"employee_code,omitempty"`
	Month        int    `json:"month"`
	Year         int    `json:"year"`

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

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Filter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Month      *int    `json:"month,omitempty"`
	Year       *int    `json:"year,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	validator.NormalizePagination(&f.Page, &f.Limit)

	if f.Month != nil && (*f.Month < 1 || *f.Month > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if f.Year != nil && (*f.Year < 2000 || *f.Year > time.Now().Year()+1) {
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

// PayrollSummary mirrors the full filter set, not the current page.
type PayrollSummary struct {
	TotalRecords    int64           `json:"total_records"`
	TotalNetSalary  decimal.Decimal `json:"total_net_salary"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalBonus      decimal.Decimal `json:"total_bonus"`
	TotalAdvance    decimal.Decimal `json:"total_advance"`
}

type ListResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Summary    PayrollSummary   `json:"summary"`
	Records    []SalaryResponse `json:"records"`
}
