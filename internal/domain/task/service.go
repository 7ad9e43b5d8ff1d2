package task

import (
	"context"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/user"
)

type TaskService interface {
	// CanCreate reports whether the employee may start a new task: an
	// open attendance session and no active or pending tasks. Data
	// access failures answer false.
	CanCreate(ctx context.Context, employeeID string) (EligibilityResponse, error)

	Create(ctx context.Context, p user.Principal, req CreateRequest) (TaskResponse, error)
	Complete(ctx context.Context, p user.Principal, id string) (TaskResponse, error)
	Get(ctx context.Context, id string) (TaskResponse, error)
	List(ctx context.Context, filter Filter) (ListResponse, error)
	Delete(ctx context.Context, p user.Principal, id string) error
}
