package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.RequestRepository {
	return &leaveRepositoryImpl{db: db}
}

func (r *leaveRepositoryImpl) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, employee_id, leave_type, start_date, end_date, reason, status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID, req.LeaveType, req.StartDate, req.EndDate, req.Reason, req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.Request{}, err
	}

	return req, nil
}

const leaveSelect = `
	SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date, lr.reason, lr.status,
		   lr.l1_approved_by, lr.l1_approved_at, lr.l1_comment,
		   lr.l2_approved_by, lr.l2_approved_at, lr.l2_comment,
		   lr.rejected_by, lr.rejected_at, lr.rejection_reason,
		   lr.created_at, lr.updated_at,
		   e.full_name, e.employee_code,
		   u1.email, u2.email, u3.email
	FROM leave_requests lr
	JOIN employees e ON lr.employee_id = e.id
	LEFT JOIN users u1 ON lr.l1_approved_by = u1.id
	LEFT JOIN users u2 ON lr.l2_approved_by = u2.id
	LEFT JOIN users u3 ON lr.rejected_by = u3.id`

func scanLeaveRequest(row pgx.Row) (leave.Request, error) {
	var req leave.Request
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate, &req.Reason, &req.Status,
		&req.L1ApprovedBy, &req.L1ApprovedAt, &req.L1Comment,
		&req.L2ApprovedBy, &req.L2ApprovedAt, &req.L2Comment,
		&req.RejectedBy, &req.RejectedAt, &req.RejectionReason,
		&req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName, &req.EmployeeCode,
		&req.L1ApproverName, &req.L2ApproverName, &req.RejectorName,
	)
	if err != nil {
		return leave.Request{}, err
	}
	return req, nil
}

func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	req, err := scanLeaveRequest(q.QueryRow(ctx, leaveSelect+` WHERE lr.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, err
	}

	return req, nil
}

// ApproveL1 transitions pending -> approved_l1. The status predicate
// guards the update at the data layer; a zero row count means the
// request was not awaiting level 1.
func (r *leaveRepositoryImpl) ApproveL1(ctx context.Context, id, approverID string, comment *string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = 'approved_l1',
		    l1_approved_by = $2, l1_approved_at = NOW(), l1_comment = $3,
		    updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, id, approverID, comment)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

// ApproveL2 transitions approved_l1 -> approved_l2. Applying it to a
// pending request matches no rows and changes nothing.
func (r *leaveRepositoryImpl) ApproveL2(ctx context.Context, id, approverID string, comment *string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = 'approved_l2',
		    l2_approved_by = $2, l2_approved_at = NOW(), l2_comment = $3,
		    updated_at = NOW()
		WHERE id = $1 AND status = 'approved_l1'
	`

	tag, err := q.Exec(ctx, query, id, approverID, comment)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

// Reject is reachable from pending and approved_l1 only; terminal
// states stay untouched.
func (r *leaveRepositoryImpl) Reject(ctx context.Context, id, rejectorID, reason string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = 'rejected',
		    rejected_by = $2, rejected_at = NOW(), rejection_reason = $3,
		    updated_at = NOW()
		WHERE id = $1 AND status IN ('pending', 'approved_l1')
	`

	tag, err := q.Exec(ctx, query, id, rejectorID, reason)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func buildLeaveWhere(filter leave.Filter) (string, []any) {
	whereClause := "WHERE 1=1"
	args := []any{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		whereClause += fmt.Sprintf(" AND lr.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		whereClause += fmt.Sprintf(" AND lr.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.LeaveType != nil && *filter.LeaveType != "" {
		whereClause += fmt.Sprintf(" AND lr.leave_type = $%d", argIdx)
		args = append(args, *filter.LeaveType)
		argIdx++
	}

	if filter.HasDateRange() {
		if filter.StartDate != nil && *filter.StartDate != "" {
			whereClause += fmt.Sprintf(" AND lr.start_date >= $%d", argIdx)
			args = append(args, *filter.StartDate)
			argIdx++
		}
		if filter.EndDate != nil && *filter.EndDate != "" {
			whereClause += fmt.Sprintf(" AND lr.end_date <= $%d", argIdx)
			args = append(args, *filter.EndDate)
			argIdx++
		}
	} else if filter.Month != nil && *filter.Month != "" {
		whereClause += fmt.Sprintf(" AND to_char(lr.start_date, 'YYYY-MM') = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}

	return whereClause, args
}

func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.Filter) ([]leave.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause, args := buildLeaveWhere(filter)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM leave_requests lr %s`, whereClause)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`%s
		%s
		ORDER BY lr.created_at DESC
		LIMIT $%d OFFSET $%d
	`, leaveSelect, whereClause, len(args)+1, len(args)+2)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}

	return requests, total, rows.Err()
}

// Summarize runs over the full filter set so the summary tracks the
// listing's filters, never the current page.
func (r *leaveRepositoryImpl) Summarize(ctx context.Context, filter leave.Filter) (leave.StatusSummary, error) {
	q := GetQuerier(ctx, r.db)

	whereClause, args := buildLeaveWhere(filter)

	query := fmt.Sprintf(`
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE lr.status = 'pending'),
			   COUNT(*) FILTER (WHERE lr.status = 'approved_l1'),
			   COUNT(*) FILTER (WHERE lr.status = 'approved_l2'),
			   COUNT(*) FILTER (WHERE lr.status = 'rejected')
		FROM leave_requests lr
		%s
	`, whereClause)

	var s leave.StatusSummary
	err := q.QueryRow(ctx, query, args...).Scan(
		&s.Total, &s.Pending, &s.ApprovedL1, &s.ApprovedL2, &s.Rejected,
	)
	if err != nil {
		return leave.StatusSummary{}, err
	}

	return s, nil
}

func (r *leaveRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM leave_requests WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}

	return nil
}

// BulkDelete reports the rows actually removed; ids already gone lower
// the count rather than failing.
func (r *leaveRepositoryImpl) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM leave_requests WHERE id = ANY($1)`

	tag, err := q.Exec(ctx, query, ids)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
