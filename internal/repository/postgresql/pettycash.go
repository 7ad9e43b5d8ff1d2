package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/pettycash"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/database"
)

type pettyCashRepositoryImpl struct {
	db *database.DB
}

func NewPettyCashRepository(db *database.DB) pettycash.RequestRepository {
	return &pettyCashRepositoryImpl{db: db}
}

func (r *pettyCashRepositoryImpl) Create(ctx context.Context, req pettycash.Request) (pettycash.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO petty_cash_requests (id, employee_id, amount, reason, status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID, req.Amount, req.Reason, req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return pettycash.Request{}, err
	}

	return req, nil
}

func (r *pettyCashRepositoryImpl) GetByID(ctx context.Context, id string) (pettycash.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.amount, p.reason, p.status,
			   p.approved_by, p.approved_at, p.approval_notes,
			   p.created_at, p.updated_at,
			   e.full_name, e.employee_code,
			   u.email
		FROM petty_cash_requests p
		JOIN employees e ON p.employee_id = e.id
		LEFT JOIN users u ON p.approved_by = u.id
		WHERE p.id = $1
	`

	var req pettycash.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.Amount, &req.Reason, &req.Status,
		&req.ApprovedBy, &req.ApprovedAt, &req.ApprovalNotes,
		&req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName, &req.EmployeeCode,
		&req.ApproverName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pettycash.Request{}, pettycash.ErrRequestNotFound
		}
		return pettycash.Request{}, err
	}

	return req, nil
}

func (r *pettyCashRepositoryImpl) UpdateStatus(ctx context.Context, req pettycash.Request, guardState string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE petty_cash_requests
		SET status = $2, approved_by = $3, approved_at = $4, approval_notes = $5, updated_at = NOW()
		WHERE id = $1
	`
	args := []any{req.ID, req.Status, req.ApprovedBy, req.ApprovedAt, req.ApprovalNotes}

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

func buildPettyCashWhere(filter pettycash.Filter) (string, []any) {
	whereClause := "WHERE 1=1"
	args := []any{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		whereClause += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		whereClause += fmt.Sprintf(" AND p.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.HasDateRange() {
		if filter.StartDate != nil && *filter.StartDate != "" {
			whereClause += fmt.Sprintf(" AND p.created_at::date >= $%d", argIdx)
			args = append(args, *filter.StartDate)
			argIdx++
		}
		if filter.EndDate != nil && *filter.EndDate != "" {
			whereClause += fmt.Sprintf(" AND p.created_at::date <= $%d", argIdx)
			args = append(args, *filter.EndDate)
			argIdx++
		}
	} else if filter.Month != nil && *filter.Month != "" {
		whereClause += fmt.Sprintf(" AND to_char(p.created_at, 'YYYY-MM') = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}

	return whereClause, args
}

func (r *pettyCashRepositoryImpl) List(ctx context.Context, filter pettycash.Filter) ([]pettycash.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause, args := buildPettyCashWhere(filter)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM petty_cash_requests p %s`, whereClause)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT p.id, p.employee_id, p.amount, p.reason, p.status,
			   p.approved_by, p.approved_at, p.approval_notes,
			   p.created_at, p.updated_at,
			   e.full_name, e.employee_code,
			   u.email
		FROM petty_cash_requests p
		JOIN employees e ON p.employee_id = e.id
		LEFT JOIN users u ON p.approved_by = u.id
		%s
		ORDER BY p.created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, len(args)+1, len(args)+2)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []pettycash.Request
	for rows.Next() {
		var req pettycash.Request
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Amount, &req.Reason, &req.Status,
			&req.ApprovedBy, &req.ApprovedAt, &req.ApprovalNotes,
			&req.CreatedAt, &req.UpdatedAt,
			&req.EmployeeName, &req.EmployeeCode,
			&req.ApproverName,
		)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}

	return requests, total, rows.Err()
}

// Summarize runs over the full filter set so the summary tracks the
// listing's filters, never the current page.
func (r *pettyCashRepositoryImpl) Summarize(ctx context.Context, filter pettycash.Filter) (pettycash.AmountSummary, error) {
	q := GetQuerier(ctx, r.db)

	whereClause, args := buildPettyCashWhere(filter)

	query := fmt.Sprintf(`
		SELECT COUNT(*), COALESCE(SUM(p.amount), 0),
			   COUNT(*) FILTER (WHERE p.status = 'pending'),
			   COALESCE(SUM(p.amount) FILTER (WHERE p.status = 'pending'), 0),
			   COUNT(*) FILTER (WHERE p.status = 'approved'),
			   COALESCE(SUM(p.amount) FILTER (WHERE p.status = 'approved'), 0),
			   COUNT(*) FILTER (WHERE p.status = 'rejected'),
			   COALESCE(SUM(p.amount) FILTER (WHERE p.status = 'rejected'), 0)
		FROM petty_cash_requests p
		%s
	`, whereClause)

	var s pettycash.AmountSummary
	err := q.QueryRow(ctx, query, args...).Scan(
		&s.TotalCount, &s.TotalAmount,
		&s.PendingCount, &s.PendingAmount,
		&s.ApprovedCount, &s.ApprovedAmount,
		&s.RejectedCount, &s.RejectedAmount,
	)
	if err != nil {
		return pettycash.AmountSummary{}, err
	}

	return s, nil
}

func (r *pettyCashRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM petty_cash_requests WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pettycash.ErrRequestNotFound
	}

	return nil
}

// BulkDelete reports the rows actually removed; already-deleted ids
// lower the count rather than failing.
func (r *pettyCashRepositoryImpl) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM petty_cash_requests WHERE id = ANY($1)`

	tag, err := q.Exec(ctx, query, ids)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
