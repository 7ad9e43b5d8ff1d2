package payroll

import "context"

// SalaryRepository is the data gateway for salary records.
type SalaryRepository interface {
	// Upsert writes the one-row-per-(employee, month, year) record,
	// overwriting prior values on regeneration.
	Upsert(ctx context.Context, r SalaryRecord) (SalaryRecord, error)

	GetByID(ctx context.Context, id string) (SalaryRecord, error)
	GetByPeriod(ctx context.Context, employeeID string, month, year int) (SalaryRecord, error)

	Update(ctx context.Context, r SalaryRecord) error

	List(ctx context.Context, filter Filter) ([]SalaryRecord, int64, error)

	// Summarize aggregates totals over the same filter set the listing
	// uses, ignoring pagination.
	Summarize(ctx context.Context, filter Filter) (PayrollSummary, error)

	Delete(ctx context.Context, id string) error
}
