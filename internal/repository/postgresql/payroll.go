package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/payroll"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.SalaryRepository {
	return &payrollRepositoryImpl{db: db}
}

// Upsert keeps one row per (employee, month, year). Regeneration
// overwrites the prior record in place.
func (r *payrollRepositoryImpl) Upsert(ctx context.Context, rec payroll.SalaryRecord) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_records (
			id, employee_id, month, year,
			present_days, total_working_days,
			daily_wage, basic_salary, calculated_salary, total_salary,
			bonus, variable_bonus, advance,
			epf_employee, esi_employee, professional_tax, tds, gratuity, ghi,
			deductions, net_salary,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3,
			$4, $5,
			$6, $7, $8, $9,
			$10, $11, $12,
			$13, $14, $15, $16, $17, $18,
			$19, $20,
			NOW(), NOW()
		)
		ON CONFLICT (employee_id, month, year) DO UPDATE SET
			present_days = EXCLUDED.present_days,
			total_working_days = EXCLUDED.total_working_days,
			daily_wage = EXCLUDED.daily_wage,
			basic_salary = EXCLUDED.basic_salary,
			calculated_salary = EXCLUDED.calculated_salary,
			total_salary = EXCLUDED.total_salary,
			bonus = EXCLUDED.bonus,
			variable_bonus = EXCLUDED.variable_bonus,
			advance = EXCLUDED.advance,
			epf_employee = EXCLUDED.epf_employee,
			esi_employee = EXCLUDED.esi_employee,
			professional_tax = EXCLUDED.professional_tax,
			tds = EXCLUDED.tds,
			gratuity = EXCLUDED.gratuity,
			ghi = EXCLUDED.ghi,
			deductions = EXCLUDED.deductions,
			net_salary = EXCLUDED.net_salary,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID, rec.Month, rec.Year,
		rec.PresentDays, rec.TotalWorkingDays,
		rec.DailyWage, rec.BasicSalary, rec.CalculatedSalary, rec.TotalSalary,
		rec.Bonus, rec.VariableBonus, rec.Advance,
		rec.EPFEmployee, rec.ESIEmployee, rec.ProfessionalTax, rec.TDS, rec.Gratuity, rec.GHI,
		rec.Deductions, rec.NetSalary,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return payroll.SalaryRecord{}, err
	}

	return rec, nil
}

const salaryColumns = `
	s.id, s.employee_id, s.month, s.year,
	s.present_days, s.total_working_days,
	s.daily_wage, s.basic_salary, s.calculated_salary, s.total_salary,
	s.bonus, s.variable_bonus, s.advance,
	s.epf_employee, s.esi_employee, s.professional_tax, s.tds, s.gratuity, s.ghi,
	s.deductions, s.net_salary,
	s.created_at, s.updated_at`

func scanSalaryRecord(row pgx.Row, withJoins bool) (payroll.SalaryRecord, error) {
	var rec payroll.SalaryRecord
	dest := []any{
		&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year,
		&rec.PresentDays, &rec.TotalWorkingDays,
		&rec.DailyWage, &rec.BasicSalary, &rec.CalculatedSalary, &rec.TotalSalary,
		&rec.Bonus, &rec.VariableBonus, &rec.Advance,
		&rec.EPFEmployee, &rec.ESIEmployee, &rec.ProfessionalTax, &rec.TDS, &rec.Gratuity, &rec.GHI,
		&rec.Deductions, &rec.NetSalary,
		&rec.CreatedAt, &rec.UpdatedAt,
	}
	if withJoins {
		dest = append(dest, &rec.EmployeeName, &rec.EmployeeCode)
	}
	if err := row.Scan(dest...); err != nil {
		return payroll.SalaryRecord{}, err
	}
	return rec, nil
}

func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `,
			   e.full_name, e.employee_code
		FROM salary_records s
		JOIN employees e ON s.employee_id = e.id
		WHERE s.id = $1
	`

	rec, err := scanSalaryRecord(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryRecord{}, payroll.ErrRecordNotFound
		}
		return payroll.SalaryRecord{}, err
	}

	return rec, nil
}

func (r *payrollRepositoryImpl) GetByPeriod(ctx context.Context, employeeID string, month, year int) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `
		FROM salary_records s
		WHERE s.employee_id = $1 AND s.month = $2 AND s.year = $3
	`

	rec, err := scanSalaryRecord(q.QueryRow(ctx, query, employeeID, month, year), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryRecord{}, payroll.ErrRecordNotFound
		}
		return payroll.SalaryRecord{}, err
	}

	return rec, nil
}

func (r *payrollRepositoryImpl) Update(ctx context.Context, rec payroll.SalaryRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_records
		SET total_salary = $2, bonus = $3, variable_bonus = $4, advance = $5,
		    epf_employee = $6, esi_employee = $7, professional_tax = $8,
		    tds = $9, gratuity = $10, ghi = $11,
		    deductions = $12, net_salary = $13,
		    updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		rec.ID, rec.TotalSalary, rec.Bonus, rec.VariableBonus, rec.Advance,
		rec.EPFEmployee, rec.ESIEmployee, rec.ProfessionalTax,
		rec.TDS, rec.Gratuity, rec.GHI,
		rec.Deductions, rec.NetSalary,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRecordNotFound
	}

	return nil
}

func buildPayrollWhere(filter payroll.Filter) (string, []any) {
	whereClause := "WHERE 1=1"
	args := []any{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		whereClause += fmt.Sprintf(" AND s.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Month != nil {
		whereClause += fmt.Sprintf(" AND s.month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		whereClause += fmt.Sprintf(" AND s.year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}

	return whereClause, args
}

func (r *payrollRepositoryImpl) List(ctx context.Context, filter payroll.Filter) ([]payroll.SalaryRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause, args := buildPayrollWhere(filter)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM salary_records s %s`, whereClause)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT %s,
			   e.full_name, e.employee_code
		FROM salary_records s
		JOIN employees e ON s.employee_id = e.id
		%s
		ORDER BY s.year DESC, s.month DESC, e.employee_code
		LIMIT $%d OFFSET $%d
	`, salaryColumns, whereClause, len(args)+1, len(args)+2)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []payroll.SalaryRecord
	for rows.Next() {
		rec, err := scanSalaryRecord(rows, true)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}

	return records, total, rows.Err()
}

// Summarize runs over the full filter set so the summary tracks the
// listing's filters, never the current page.
func (r *payrollRepositoryImpl) Summarize(ctx context.Context, filter payroll.Filter) (payroll.PayrollSummary, error) {
	q := GetQuerier(ctx, r.db)

	whereClause, args := buildPayrollWhere(filter)

	query := fmt.Sprintf(`
		SELECT COUNT(*),
			   COALESCE(SUM(s.net_salary), 0),
			   COALESCE(SUM(s.deductions), 0),
			   COALESCE(SUM(s.bonus + s.variable_bonus), 0),
			   COALESCE(SUM(s.advance), 0)
		FROM salary_records s
		%s
	`, whereClause)

	var s payroll.PayrollSummary
	err := q.QueryRow(ctx, query, args...).Scan(
		&s.TotalRecords, &s.TotalNetSalary, &s.TotalDeductions, &s.TotalBonus, &s.TotalAdvance,
	)
	if err != nil {
		return payroll.PayrollSummary{}, err
	}

	return s, nil
}

func (r *payrollRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM salary_records WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRecordNotFound
	}

	return nil
}
