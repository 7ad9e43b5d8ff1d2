package payroll

import (
	"context"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/user"
)

type SalaryService interface {
	// Generate computes the salary record for (employee, month, year)
	// from approved attendance and upserts it, replacing any prior run.
	Generate(ctx context.Context, p user.Principal, req GenerateRequest) (SalaryResponse, error)

	// Edit overrides salary fields and recomputes net pay with the
	// canonical formula.
	Edit(ctx context.Context, p user.Principal, req EditRequest) (SalaryResponse, error)

	Get(ctx context.Context, id string) (SalaryResponse, error)
	List(ctx context.Context, filter Filter) (ListResponse, error)

	Delete(ctx context.Context, p user.Principal, id string) error
}
