package task

import "context"

// TaskRepository is the data gateway for employee tasks.
type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)

	GetByID(ctx context.Context, id string) (Task, error)

	// CountUnfinished tallies the employee's active and pending tasks.
	CountUnfinished(ctx context.Context, employeeID string) (int64, error)

	Update(ctx context.Context, t Task) error

	List(ctx context.Context, filter Filter) ([]Task, int64, error)

	Delete(ctx context.Context, id string) error
}
