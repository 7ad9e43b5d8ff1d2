package pettycash

import (
	"context"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/user"
)

type RequestService interface {
	Create(ctx context.Context, p user.Principal, req CreateRequest) (RequestResponse, error)
	Get(ctx context.Context, id string) (RequestResponse, error)
	List(ctx context.Context, filter Filter) (ListResponse, error)

	Approve(ctx context.Context, p user.Principal, req ApproveRequest) (RequestResponse, error)
	Reject(ctx context.Context, p user.Principal, req RejectRequest) (RequestResponse, error)

	Delete(ctx context.Context, p user.Principal, id string) error

	// BulkDelete returns how many of the requested ids were removed.
	BulkDelete(ctx context.Context, p user.Principal, ids []string) (int64, error)
}
