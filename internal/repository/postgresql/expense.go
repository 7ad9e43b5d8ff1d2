package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/expense"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/database"
)

type expenseRepositoryImpl struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepositoryImpl{db: db}
}

func (r *expenseRepositoryImpl) Create(ctx context.Context, e expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expenses (id, employee_id, category_id, task_id, amount, reason, receipt_url, status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.EmployeeID, e.CategoryID, e.TaskID, e.Amount, e.Reason, e.ReceiptURL, e.Status,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return expense.Expense{}, err
	}

	return e, nil
}

const expenseSelect = `
	SELECT x.id, x.employee_id, x.category_id, x.task_id, x.amount, x.reason, x.receipt_url, x.status,
		   x.approved_by, x.approved_at, x.approval_notes,
		   x.created_at, x.updated_at,
		   e.full_name, e.employee_code,
		   c.name,
		   t.title,
		   u.email
	FROM expenses x
	JOIN employees e ON x.employee_id = e.id
	JOIN expense_categories c ON x.category_id = c.id
	LEFT JOIN tasks t ON x.task_id = t.id
	LEFT JOIN users u ON x.approved_by = u.id`

func scanExpense(row pgx.Row) (expense.Expense, error) {
	var e expense.Expense
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.CategoryID, &e.TaskID, &e.Amount, &e.Reason, &e.ReceiptURL, &e.Status,
		&e.ApprovedBy, &e.ApprovedAt, &e.ApprovalNotes,
		&e.CreatedAt, &e.UpdatedAt,
		&e.EmployeeName, &e.EmployeeCode,
		&e.CategoryName,
		&e.TaskTitle,
		&e.ApproverName,
	)
	if err != nil {
		return expense.Expense{}, err
	}
	return e, nil
}

func (r *expenseRepositoryImpl) GetByID(ctx context.Context, id string) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanExpense(q.QueryRow(ctx, expenseSelect+` WHERE x.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, err
	}

	return e, nil
}

func (r *expenseRepositoryImpl) UpdateStatus(ctx context.Context, e expense.Expense, guardState string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE expenses
		SET status = $2, approved_by = $3, approved_at = $4, approval_notes = $5, updated_at = NOW()
		WHERE id = $1
	`
	args := []any{e.ID, e.Status, e.ApprovedBy, e.ApprovedAt, e.ApprovalNotes}

	if guardState != "" {
		query += ` AND status = $6`
		args = append(args, guardState)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func buildExpenseWhere(filter expense.Filter) (string, []any) {
	whereClause := "WHERE 1=1"
	args := []any{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		whereClause += fmt.Sprintf(" AND x.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.CategoryID != nil && *filter.CategoryID != "" {
		whereClause += fmt.Sprintf(" AND x.category_id = $%d", argIdx)
		args = append(args, *filter.CategoryID)
		argIdx++
	}
	if filter.TaskID != nil && *filter.TaskID != "" {
		whereClause += fmt.Sprintf(" AND x.task_id = $%d", argIdx)
		args = append(args, *filter.TaskID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		whereClause += fmt.Sprintf(" AND x.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.HasDateRange() {
		if filter.StartDate != nil && *filter.StartDate != "" {
			whereClause += fmt.Sprintf(" AND x.created_at::date >= $%d", argIdx)
			args = append(args, *filter.StartDate)
			argIdx++
		}
		if filter.EndDate != nil && *filter.EndDate != "" {
			whereClause += fmt.Sprintf(" AND x.created_at::date <= $%d", argIdx)
			args = append(args, *filter.EndDate)
			argIdx++
		}
	} else if filter.Month != nil && *filter.Month != "" {
		whereClause += fmt.Sprintf(" AND to_char(x.created_at, 'YYYY-MM') = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}

	return whereClause, args
}

func (r *expenseRepositoryImpl) List(ctx context.Context, filter expense.Filter) ([]expense.Expense, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause, args := buildExpenseWhere(filter)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM expenses x %s`, whereClause)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`%s
		%s
		ORDER BY x.created_at DESC
		LIMIT $%d OFFSET $%d
	`, expenseSelect, whereClause, len(args)+1, len(args)+2)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, 0, err
		}
		expenses = append(expenses, e)
	}

	return expenses, total, rows.Err()
}

// Summarize runs over the full filter set, including the per-category
// breakdown, so the figures track the listing's filters rather than
// the current page.
func (r *expenseRepositoryImpl) Summarize(ctx context.Context, filter expense.Filter) (expense.AmountSummary, error) {
	q := GetQuerier(ctx, r.db)

	whereClause, args := buildExpenseWhere(filter)

	totalsQuery := fmt.Sprintf(`
		SELECT COUNT(*), COALESCE(SUM(x.amount), 0),
			   COUNT(*) FILTER (WHERE x.status = 'pending'),
			   COALESCE(SUM(x.amount) FILTER (WHERE x.status = 'pending'), 0),
			   COUNT(*) FILTER (WHERE x.status = 'approved'),
			   COALESCE(SUM(x.amount) FILTER (WHERE x.status = 'approved'), 0),
			   COUNT(*) FILTER (WHERE x.status = 'rejected'),
			   COALESCE(SUM(x.amount) FILTER (WHERE x.status = 'rejected'), 0)
		FROM expenses x
		%s
	`, whereClause)

	var s expense.AmountSummary
	err := q.QueryRow(ctx, totalsQuery, args...).Scan(
		&s.TotalCount, &s.TotalAmount,
		&s.PendingCount, &s.PendingAmount,
		&s.ApprovedCount, &s.ApprovedAmount,
		&s.RejectedCount, &s.RejectedAmount,
	)
	if err != nil {
		return expense.AmountSummary{}, err
	}

	byCategoryQuery := fmt.Sprintf(`
		SELECT c.id, c.name, COUNT(*), COALESCE(SUM(x.amount), 0)
		FROM expenses x
		JOIN expense_categories c ON x.category_id = c.id
		%s
		GROUP BY c.id, c.name
		ORDER BY c.name
	`, whereClause)

	rows, err := q.Query(ctx, byCategoryQuery, args...)
	if err != nil {
		return expense.AmountSummary{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var ca expense.CategoryAmount
		if err := rows.Scan(&ca.CategoryID, &ca.CategoryName, &ca.Count, &ca.Amount); err != nil {
			return expense.AmountSummary{}, err
		}
		s.ByCategory = append(s.ByCategory, ca)
	}

	return s, rows.Err()
}

func (r *expenseRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM expenses WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return expense.ErrExpenseNotFound
	}

	return nil
}

func (r *expenseRepositoryImpl) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM expenses WHERE id = ANY($1)`

	tag, err := q.Exec(ctx, query, ids)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (r *expenseRepositoryImpl) GetCategory(ctx context.Context, id string) (expense.Category, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at FROM expense_categories WHERE id = $1`

	var c expense.Category
	err := q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense.Category{}, expense.ErrCategoryNotFound
		}
		return expense.Category{}, err
	}

	return c, nil
}

func (r *expenseRepositoryImpl) ListCategories(ctx context.Context) ([]expense.Category, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at FROM expense_categories ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []expense.Category
	for rows.Next() {
		var c expense.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}
