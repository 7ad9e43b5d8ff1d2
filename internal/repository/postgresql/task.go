package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/task"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/database"
)

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

func (r *taskRepositoryImpl) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (id, employee_id, title, description, status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		t.EmployeeID, t.Title, t.Description, t.Status,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return task.Task{}, err
	}

	return t, nil
}

func (r *taskRepositoryImpl) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.employee_id, t.title, t.description, t.status, t.completed_at,
			   t.created_at, t.updated_at,
			   e.full_name, e.employee_code
		FROM tasks t
		JOIN employees e ON t.employee_id = e.id
		WHERE t.id = $1
	`

	var t task.Task
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.EmployeeID, &t.Title, &t.Description, &t.Status, &t.CompletedAt,
		&t.CreatedAt, &t.UpdatedAt,
		&t.EmployeeName, &t.EmployeeCode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, err
	}

	return t, nil
}

func (r *taskRepositoryImpl) CountUnfinished(ctx context.Context, employeeID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM tasks
		WHERE employee_id = $1 AND status IN ('active', 'pending')
	`

	var count int64
	if err := q.QueryRow(ctx, query, employeeID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *taskRepositoryImpl) Update(ctx context.Context, t task.Task) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET title = $2, description = $3, status = $4, completed_at = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, t.ID, t.Title, t.Description, t.Status, t.CompletedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

func (r *taskRepositoryImpl) List(ctx context.Context, filter task.Filter) ([]task.Task, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE 1=1"
	args := []any{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		whereClause += fmt.Sprintf(" AND t.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		whereClause += fmt.Sprintf(" AND t.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM tasks t %s`, whereClause)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT t.id, t.employee_id, t.title, t.description, t.status, t.completed_at,
			   t.created_at, t.updated_at,
			   e.full_name, e.employee_code
		FROM tasks t
		JOIN employees e ON t.employee_id = e.id
		%s
		ORDER BY t.created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, len(args)+1, len(args)+2)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		err := rows.Scan(
			&t.ID, &t.EmployeeID, &t.Title, &t.Description, &t.Status, &t.CompletedAt,
			&t.CreatedAt, &t.UpdatedAt,
			&t.EmployeeName, &t.EmployeeCode,
		)
		if err != nil {
			return nil, 0, err
		}
		tasks = append(tasks, t)
	}

	return tasks, total, rows.Err()
}

func (r *taskRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM tasks WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}
