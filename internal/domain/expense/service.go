package expense

import (
	"context"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/user"
)

type ExpenseService interface {
	Create(ctx context.Context, p user.Principal, req CreateRequest) (ExpenseResponse, error)
	Get(ctx context.Context, id string) (ExpenseResponse, error)
	List(ctx context.Context, filter Filter) (ListResponse, error)

	Approve(ctx context.Context, p user.Principal, req ApproveRequest) (ExpenseResponse, error)
	Reject(ctx context.Context, p user.Principal, req RejectRequest) (ExpenseResponse, error)

	Delete(ctx context.Context, p user.Principal, id string) error
	BulkDelete(ctx context.Context, p user.Principal, ids []string) (int64, error)

	ListCategories(ctx context.Context) ([]Category, error)
}
