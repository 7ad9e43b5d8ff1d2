package postgresql

import (
	"context"
	"fmt"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/report"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

func buildReportWhere(filter report.Filter, dateCol string) (string, []any) {
	whereClause := "WHERE 1=1"
	args := []any{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		whereClause += fmt.Sprintf(" AND e.id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Month != nil {
		whereClause += fmt.Sprintf(" AND EXTRACT(MONTH FROM %s) = $%d", dateCol, argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		whereClause += fmt.Sprintf(" AND EXTRACT(YEAR FROM %s) = $%d", dateCol, argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}

	return whereClause, args
}

func (r *reportRepositoryImpl) GetAttendanceReport(ctx context.Context, filter report.Filter) ([]report.AttendanceRow, error) {
	q := GetQuerier(ctx, r.db)

	whereClause, args := buildReportWhere(filter, "a.date")

	query := fmt.Sprintf(`
		SELECT e.id, e.full_name, e.employee_code,
			   COUNT(DISTINCT a.date) FILTER (WHERE a.status = 'approved'),
			   COUNT(DISTINCT a.date) FILTER (WHERE a.status = 'pending'),
			   COUNT(DISTINCT a.date) FILTER (WHERE a.status = 'rejected'),
			   COUNT(a.id),
			   COALESCE(SUM(a.work_minutes), 0) / 60.0
		FROM employees e
		JOIN attendance_sessions a ON a.employee_id = e.id
		%s
		GROUP BY e.id, e.full_name, e.employee_code
		ORDER BY e.employee_code
	`, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []report.AttendanceRow
	for rows.Next() {
		var row report.AttendanceRow
		err := rows.Scan(
			&row.EmployeeID, &row.EmployeeName, &row.EmployeeCode,
			&row.PresentDays, &row.PendingDays, &row.RejectedDays,
			&row.TotalSessions, &row.TotalHours,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

func (r *reportRepositoryImpl) GetPayrollReport(ctx context.Context, filter report.Filter) ([]report.PayrollRow, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE 1=1"
	args := []any{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		whereClause += fmt.Sprintf(" AND e.id = $%d", argIdx)
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

	query := fmt.Sprintf(`
		SELECT e.id, e.full_name, e.employee_code,
			   s.month, s.year, s.present_days, s.net_salary, s.deductions
		FROM salary_records s
		JOIN employees e ON s.employee_id = e.id
		%s
		ORDER BY s.year DESC, s.month DESC, e.employee_code
	`, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []report.PayrollRow
	for rows.Next() {
		var row report.PayrollRow
		err := rows.Scan(
			&row.EmployeeID, &row.EmployeeName, &row.EmployeeCode,
			&row.Month, &row.Year, &row.PresentDays, &row.NetSalary, &row.Deductions,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

func (r *reportRepositoryImpl) GetSpendTotals(ctx context.Context, filter report.Filter) (report.SpendTotals, error) {
	q := GetQuerier(ctx, r.db)

	buildWhere := func(table string) (string, []any) {
		whereClause := "WHERE 1=1"
		args := []any{}
		argIdx := 1

		if filter.EmployeeID != nil && *filter.EmployeeID != "" {
			whereClause += fmt.Sprintf(" AND %s.employee_id = $%d", table, argIdx)
			args = append(args, *filter.EmployeeID)
			argIdx++
		}
		if filter.Month != nil {
			whereClause += fmt.Sprintf(" AND EXTRACT(MONTH FROM %s.created_at) = $%d", table, argIdx)
			args = append(args, *filter.Month)
			argIdx++
		}
		if filter.Year != nil {
			whereClause += fmt.Sprintf(" AND EXTRACT(YEAR FROM %s.created_at) = $%d", table, argIdx)
			args = append(args, *filter.Year)
			argIdx++
		}

		return whereClause, args
	}

	var totals report.SpendTotals

	pcWhere, pcArgs := buildWhere("p")
	pcQuery := fmt.Sprintf(`
		SELECT COALESCE(SUM(p.amount) FILTER (WHERE p.status = 'pending'), 0),
			   COALESCE(SUM(p.amount) FILTER (WHERE p.status = 'approved'), 0),
			   COALESCE(SUM(p.amount) FILTER (WHERE p.status = 'rejected'), 0)
		FROM petty_cash_requests p
		%s
	`, pcWhere)

	err := q.QueryRow(ctx, pcQuery, pcArgs...).Scan(
		&totals.PettyCashPending, &totals.PettyCashApproved, &totals.PettyCashRejected,
	)
	if err != nil {
		return report.SpendTotals{}, err
	}

	exWhere, exArgs := buildWhere("x")
	exQuery := fmt.Sprintf(`
		SELECT COALESCE(SUM(x.amount) FILTER (WHERE x.status = 'pending'), 0),
			   COALESCE(SUM(x.amount) FILTER (WHERE x.status = 'approved'), 0),
			   COALESCE(SUM(x.amount) FILTER (WHERE x.status = 'rejected'), 0)
		FROM expenses x
		%s
	`, exWhere)

	err = q.QueryRow(ctx, exQuery, exArgs...).Scan(
		&totals.ExpensePending, &totals.ExpenseApproved, &totals.ExpenseRejected,
	)
	if err != nil {
		return report.SpendTotals{}, err
	}

	return totals, nil
}
