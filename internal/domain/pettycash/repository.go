package pettycash

import "context"

// RequestRepository is the data gateway for petty cash requests.
type RequestRepository interface {
	Create(ctx context.Context, r Request) (Request, error)

	GetByID(ctx context.Context, id string) (Request, error)

	// UpdateStatus applies an approval decision. When guardState is
	// non-empty the update is restricted to rows currently in that
	// state and the affected-row count discriminates lost races.
	UpdateStatus(ctx context.Context, r Request, guardState string) (int64, error)

	List(ctx context.Context, filter Filter) ([]Request, int64, error)

	// Summarize aggregates counts and amounts over the same filter set
	// the listing uses, ignoring pagination.
	Summarize(ctx context.Context, filter Filter) (AmountSummary, error)

	Delete(ctx context.Context, id string) error

	// BulkDelete removes the given ids and returns how many rows were
	// actually deleted; missing ids are skipped, not errors.
	BulkDelete(ctx context.Context, ids []string) (int64, error)
}
