package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/approval"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.SessionRepository {
	return &attendanceRepositoryImpl{db: db}
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, s attendance.Session) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_sessions (
			id, employee_id, date,
			check_in, check_in_latitude, check_in_longitude, check_in_proof_url,
			status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2,
			$3, $4, $5, $6,
			$7, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.EmployeeID, s.Date,
		s.CheckIn, s.CheckInLatitude, s.CheckInLongitude, s.CheckInProofURL,
		s.Status,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return attendance.Session{}, err
	}

	return s, nil
}

const sessionColumns = `
	a.id, a.employee_id, a.date,
	a.check_in, a.check_in_latitude, a.check_in_longitude, a.check_in_proof_url,
	a.check_out, a.check_out_latitude, a.check_out_longitude, a.check_out_proof_url,
	a.work_minutes, a.status, a.approved_by, a.approved_at, a.approval_notes,
	a.created_at, a.updated_at`

func scanSession(row pgx.Row, withJoins bool) (attendance.Session, error) {
	var s attendance.Session
	dest := []any{
		&s.ID, &s.EmployeeID, &s.Date,
		&s.CheckIn, &s.CheckInLatitude, &s.CheckInLongitude, &s.CheckInProofURL,
		&s.CheckOut, &s.CheckOutLatitude, &s.CheckOutLongitude, &s.CheckOutProofURL,
		&s.WorkMinutes, &s.Status, &s.ApprovedBy, &s.ApprovedAt, &s.ApprovalNotes,
		&s.CreatedAt, &s.UpdatedAt,
	}
	if withJoins {
		dest = append(dest, &s.EmployeeName, &s.EmployeeCode, &s.ApproverName)
	}
	if err := row.Scan(dest...); err != nil {
		return attendance.Session{}, err
	}
	return s, nil
}

func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `,
			   e.full_name, e.employee_code,
			   u.email
		FROM attendance_sessions a
		JOIN employees e ON a.employee_id = e.id
		LEFT JOIN users u ON a.approved_by = u.id
		WHERE a.id = $1
	`

	s, err := scanSession(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Session{}, attendance.ErrSessionNotFound
		}
		return attendance.Session{}, err
	}

	return s, nil
}

func (r *attendanceRepositoryImpl) GetOpenSession(ctx context.Context, employeeID string, date time.Time) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions a
		WHERE a.employee_id = $1 AND a.date = $2
		  AND a.check_in IS NOT NULL AND a.check_out IS NULL
		ORDER BY a.check_in DESC
		LIMIT 1
	`

	s, err := scanSession(q.QueryRow(ctx, query, employeeID, date), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Session{}, attendance.ErrNoOpenSession
		}
		return attendance.Session{}, err
	}

	return s, nil
}

func (r *attendanceRepositoryImpl) CountSessions(ctx context.Context, employeeID string, date time.Time) (attendance.SessionCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(check_in), COUNT(check_out)
		FROM attendance_sessions
		WHERE employee_id = $1 AND date = $2
	`

	var c attendance.SessionCounts
	if err := q.QueryRow(ctx, query, employeeID, date).Scan(&c.CheckIns, &c.CheckOuts); err != nil {
		return attendance.SessionCounts{}, err
	}

	return c, nil
}

func (r *attendanceRepositoryImpl) LatestCheckOut(ctx context.Context, employeeID string, date time.Time) (*time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT MAX(check_out)
		FROM attendance_sessions
		WHERE employee_id = $1 AND date = $2
	`

	var latest *time.Time
	if err := q.QueryRow(ctx, query, employeeID, date).Scan(&latest); err != nil {
		return nil, err
	}

	return latest, nil
}

func (r *attendanceRepositoryImpl) Update(ctx context.Context, s attendance.Session) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_sessions
		SET check_out = $2, check_out_latitude = $3, check_out_longitude = $4,
		    check_out_proof_url = $5, work_minutes = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		s.ID, s.CheckOut, s.CheckOutLatitude, s.CheckOutLongitude,
		s.CheckOutProofURL, s.WorkMinutes,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrSessionNotFound
	}

	return nil
}

// UpdateStatus writes the approval decision. A non-empty guardState
// restricts the update to rows still in that state; callers read the
// returned row count to detect a lost race.
func (r *attendanceRepositoryImpl) UpdateStatus(ctx context.Context, s attendance.Session, guardState string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_sessions
		SET status = $2, approved_by = $3, approved_at = $4, approval_notes = $5, updated_at = NOW()
		WHERE id = $1
	`
	args := []any{s.ID, s.Status, s.ApprovedBy, s.ApprovedAt, s.ApprovalNotes}

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

func buildAttendanceWhere(filter attendance.Filter) (string, []any) {
	whereClause := "WHERE 1=1"
	args := []any{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		whereClause += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		whereClause += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	// A date range silences any month filter.
	if filter.HasDateRange() {
		if filter.StartDate != nil && *filter.StartDate != "" {
			whereClause += fmt.Sprintf(" AND a.date >= $%d", argIdx)
			args = append(args, *filter.StartDate)
			argIdx++
		}
		if filter.EndDate != nil && *filter.EndDate != "" {
			whereClause += fmt.Sprintf(" AND a.date <= $%d", argIdx)
			args = append(args, *filter.EndDate)
			argIdx++
		}
	} else if filter.Month != nil && *filter.Month != "" {
		whereClause += fmt.Sprintf(" AND to_char(a.date, 'YYYY-MM') = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}

	return whereClause, args
}

func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.Session, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause, args := buildAttendanceWhere(filter)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM attendance_sessions a %s`, whereClause)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT %s,
			   e.full_name, e.employee_code,
			   u.email
		FROM attendance_sessions a
		JOIN employees e ON a.employee_id = e.id
		LEFT JOIN users u ON a.approved_by = u.id
		%s
		ORDER BY a.date DESC, a.check_in DESC
		LIMIT $%d OFFSET $%d
	`, sessionColumns, whereClause, len(args)+1, len(args)+2)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var sessions []attendance.Session
	for rows.Next() {
		s, err := scanSession(rows, true)
		if err != nil {
			return nil, 0, err
		}
		sessions = append(sessions, s)
	}

	return sessions, total, rows.Err()
}

// Summarize runs over the full filter set so the summary tracks the
// listing's filters, never the current page.
func (r *attendanceRepositoryImpl) Summarize(ctx context.Context, filter attendance.Filter) (attendance.StatusSummary, error) {
	q := GetQuerier(ctx, r.db)

	whereClause, args := buildAttendanceWhere(filter)

	query := fmt.Sprintf(`
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE a.status = 'pending'),
			   COUNT(*) FILTER (WHERE a.status = 'approved'),
			   COUNT(*) FILTER (WHERE a.status = 'rejected')
		FROM attendance_sessions a
		%s
	`, whereClause)

	var s attendance.StatusSummary
	err := q.QueryRow(ctx, query, args...).Scan(&s.Total, &s.Pending, &s.Approved, &s.Rejected)
	if err != nil {
		return attendance.StatusSummary{}, err
	}

	return s, nil
}

func (r *attendanceRepositoryImpl) GetDailySummary(ctx context.Context, employeeID string, date time.Time) (attendance.DailySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT MIN(check_in), MAX(check_out), COUNT(*), COALESCE(SUM(work_minutes), 0)
		FROM attendance_sessions
		WHERE employee_id = $1 AND date = $2
	`

	summary := attendance.DailySummary{EmployeeID: employeeID, Date: date}
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&summary.FirstCheckIn, &summary.LastCheckOut,
		&summary.SessionCount, &summary.TotalMinutes,
	)
	if err != nil {
		return attendance.DailySummary{}, err
	}

	rangesQuery := `
		SELECT to_char(check_in, 'HH24:MI') || ' - ' || COALESCE(to_char(check_out, 'HH24:MI'), 'open')
		FROM attendance_sessions
		WHERE employee_id = $1 AND date = $2 AND check_in IS NOT NULL
		ORDER BY check_in
	`

	rows, err := q.Query(ctx, rangesQuery, employeeID, date)
	if err != nil {
		return attendance.DailySummary{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var rng string
		if err := rows.Scan(&rng); err != nil {
			return attendance.DailySummary{}, err
		}
		summary.SessionRanges = append(summary.SessionRanges, rng)
	}

	return summary, rows.Err()
}

func (r *attendanceRepositoryImpl) GetMonthlyStats(ctx context.Context, employeeID string, month, year int) (attendance.MonthlyStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT date), COUNT(*), COALESCE(SUM(work_minutes), 0)
		FROM attendance_sessions
		WHERE employee_id = $1
		  AND EXTRACT(MONTH FROM date) = $2
		  AND EXTRACT(YEAR FROM date) = $3
	`

	stats := attendance.MonthlyStats{
		EmployeeID:   employeeID,
		Month:        month,
		Year:         year,
		StatusCounts: make(map[approval.State]int),
	}
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(
		&stats.DaysWorked, &stats.SessionCount, &stats.TotalMinutes,
	)
	if err != nil {
		return attendance.MonthlyStats{}, err
	}

	statusQuery := `
		SELECT status, COUNT(*)
		FROM attendance_sessions
		WHERE employee_id = $1
		  AND EXTRACT(MONTH FROM date) = $2
		  AND EXTRACT(YEAR FROM date) = $3
		GROUP BY status
	`

	rows, err := q.Query(ctx, statusQuery, employeeID, month, year)
	if err != nil {
		return attendance.MonthlyStats{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var state approval.State
		var count int
		if err := rows.Scan(&state, &count); err != nil {
			return attendance.MonthlyStats{}, err
		}
		stats.StatusCounts[state] = count
	}

	return stats, rows.Err()
}

// CountPresentDays counts distinct dates carrying at least one
// approved session in the month.
func (r *attendanceRepositoryImpl) CountPresentDays(ctx context.Context, employeeID string, month, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT date)
		FROM attendance_sessions
		WHERE employee_id = $1
		  AND EXTRACT(MONTH FROM date) = $2
		  AND EXTRACT(YEAR FROM date) = $3
		  AND status = 'approved'
	`

	var days int
	if err := q.QueryRow(ctx, query, employeeID, month, year).Scan(&days); err != nil {
		return 0, err
	}

	return days, nil
}

// CloseStaleSessions clocks out sessions left open before cutoff,
// stamping the check-out at the session date's midnight.
func (r *attendanceRepositoryImpl) CloseStaleSessions(ctx context.Context, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_sessions
		SET check_out = date + INTERVAL '1 day',
		    work_minutes = EXTRACT(EPOCH FROM (date + INTERVAL '1 day' - check_in)) / 60,
		    updated_at = NOW()
		WHERE check_in IS NOT NULL AND check_out IS NULL AND date < $1
	`

	tag, err := q.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM attendance_sessions WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrSessionNotFound
	}

	return nil
}
