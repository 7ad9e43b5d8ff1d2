package expense

import "context"

// ExpenseRepository is the data gateway for expense claims.
type ExpenseRepository interface {
	Create(ctx context.Context, e Expense) (Expense, error)

	GetByID(ctx context.Context, id string) (Expense, error)

	// UpdateStatus applies an approval decision. When guardState is
	// non-empty the update is restricted to rows currently in that
	// state and the affected-row count discriminates lost races.
	UpdateStatus(ctx context.Context, e Expense, guardState string) (int64, error)

	List(ctx context.Context, filter Filter) ([]Expense, int64, error)

	// Summarize aggregates counts, amounts and the per-category
	// breakdown over the same filter set the listing uses, ignoring
	// pagination.
	Summarize(ctx context.Context, filter Filter) (AmountSummary, error)

	Delete(ctx context.Context, id string) error
	BulkDelete(ctx context.Context, ids []string) (int64, error)

	GetCategory(ctx context.Context, id string) (Category, error)
	ListCategories(ctx context.Context) ([]Category, error)
}
