package leave

import (
	"context"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/user"
)

type RequestService interface {
	Create(ctx context.Context, p user.Principal, req CreateRequest) (RequestResponse, error)
	Get(ctx context.Context, id string) (RequestResponse, error)
	List(ctx context.Context, filter Filter) (ListResponse, error)

	// ApproveL1 requires supervisor capability; ApproveL2 requires HR or
	// superadmin. Both rely on the repository's guarded updates.
	ApproveL1(ctx context.Context, p user.Principal, req ApproveRequest) (RequestResponse, error)
	ApproveL2(ctx context.Context, p user.Principal, req ApproveRequest) (RequestResponse, error)
	Reject(ctx context.Context, p user.Principal, req RejectRequest) (RequestResponse, error)

	Delete(ctx context.Context, p user.Principal, id string) error
	BulkDelete(ctx context.Context, p user.Principal, req BulkDeleteRequest) (BulkDeleteResponse, error)
}
