package leave

import "context"

// RequestRepository is the data gateway for leave requests.
type RequestRepository interface {
	Create(ctx context.Context, r Request) (Request, error)

	GetByID(ctx context.Context, id string) (Request, error)

	// ApproveL1 records the level 1 decision. The update is guarded at
	// the SQL layer to rows currently in pending; a zero affected-row
	// count means the request was not awaiting level 1.
	ApproveL1(ctx context.Context, id, approverID string, comment *string) (int64, error)

	// ApproveL2 records the level 2 decision, guarded to rows currently
	// in approved_l1. Applying it to a pending request touches zero rows.
	ApproveL2(ctx context.Context, id, approverID string, comment *string) (int64, error)

	// Reject records the terminal rejection, guarded to rows in pending
	// or approved_l1.
	Reject(ctx context.Context, id, rejectorID, reason string) (int64, error)

	List(ctx context.Context, filter Filter) ([]Request, int64, error)

	// Summarize aggregates status counts over the same filter set the
	// listing uses, ignoring pagination.
	Summarize(ctx context.Context, filter Filter) (StatusSummary, error)

	Delete(ctx context.Context, id string) error

	// BulkDelete removes the given ids and returns how many rows were
	// actually deleted; ids already gone reduce the count, not error.
	BulkDelete(ctx context.Context, ids []string) (int64, error)
}
