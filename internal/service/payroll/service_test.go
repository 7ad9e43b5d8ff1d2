package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/payroll"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, daysInMonth(1, 2025))
	assert.Equal(t, 28, daysInMonth(2, 2025))
	assert.Equal(t, 29, daysInMonth(2, 2024))
	assert.Equal(t, 30, daysInMonth(4, 2025))
	assert.Equal(t, 31, daysInMonth(12, 2025))
}

func TestComputeSalaryMonthlyProration(t *testing.T) {
	basic := dec("30000")
	emp := employee.Employee{BasicSalary: &basic}

	got, err := computeSalary(emp, 20, 30)
	require.NoError(t, err)
	assert.True(t, dec("20000").Equal(got), "got %s", got)
}

func TestComputeSalaryDailyWagePrecedence(t *testing.T) {
	// A nonzero daily wage wins even when a basic salary is present.
	wage := dec("800")
	basic := dec("999999")
	emp := employee.Employee{DailyWage: &wage, BasicSalary: &basic}

	got, err := computeSalary(emp, 18, 30)
	require.NoError(t, err)
	assert.True(t, dec("14400").Equal(got), "got %s", got)
}

func TestComputeSalaryZeroDailyWageFallsBack(t *testing.T) {
	wage := decimal.Zero
	basic := dec("30000")
	emp := employee.Employee{DailyWage: &wage, BasicSalary: &basic}

	got, err := computeSalary(emp, 15, 30)
	require.NoError(t, err)
	assert.True(t, dec("15000").Equal(got), "got %s", got)
}

func TestComputeSalaryNoWageBasis(t *testing.T) {
	_, err := computeSalary(employee.Employee{}, 10, 30)
	assert.ErrorIs(t, err, payroll.ErrNoWageBasis)
}

func TestGenerateNetSalaryFormula(t *testing.T) {
	// present 20/30 days at 30000 basic, bonus 1000, advance 500.
	calculated := dec("20000")
	net := calculated.Add(dec("1000")).Sub(dec("500")).Sub(decimal.Zero)
	assert.True(t, dec("20500").Equal(net), "got %s", net)
}

func TestRecomputeCanonicalFormula(t *testing.T) {
	rec := payroll.SalaryRecord{
		CalculatedSalary: dec("20000"),
		TotalSalary:      dec("25000"),
		Bonus:            dec("1000"),
		VariableBonus:    dec("500"),
		Advance:          dec("2000"),
		EPFEmployee:      dec("1800"),
		ESIEmployee:      dec("200"),
		ProfessionalTax:  dec("150"),
		TDS:              dec("300"),
		Gratuity:         dec("100"),
		GHI:              dec("50"),
	}

	t.Run("total base", func(t *testing.T) {
		r := rec
		r.Recompute(payroll.BaseTotal)

		// 25000 - 2600 statutory - 2000 advance + 1000 + 500
		assert.True(t, dec("21900").Equal(r.NetSalary), "got %s", r.NetSalary)
		assert.True(t, dec("4600").Equal(r.Deductions), "got %s", r.Deductions)
	})

	t.Run("calculated base", func(t *testing.T) {
		r := rec
		r.Recompute(payroll.BaseCalculated)

		// 20000 - 2600 statutory - 2000 advance + 1000 + 500
		assert.True(t, dec("16900").Equal(r.NetSalary), "got %s", r.NetSalary)
	})
}

func TestStatutoryDeductions(t *testing.T) {
	rec := payroll.SalaryRecord{
		EPFEmployee:     dec("1800"),
		ESIEmployee:     dec("200"),
		ProfessionalTax: dec("150"),
		TDS:             dec("300"),
		Gratuity:        dec("100"),
		GHI:             dec("50"),
	}

	assert.True(t, dec("2600").Equal(rec.StatutoryDeductions()))
}
