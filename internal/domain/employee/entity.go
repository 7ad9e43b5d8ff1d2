package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmploymentStatus string

const (
	StatusActive   EmploymentStatus = "active"
	StatusInactive EmploymentStatus = "inactive"
)

// Employee carries the wage basis used by payroll: a nonzero daily wage
// takes precedence over the monthly basic salary.
type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Phone        *string
	Status       EmploymentStatus
	DailyWage    *decimal.Decimal
	BasicSalary  *decimal.Decimal
	JoinedAt     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsDailyWage reports whether payroll should use the daily-wage basis.
func (e Employee) IsDailyWage() bool {
	return e.DailyWage != nil && !e.DailyWage.IsZero()
}
