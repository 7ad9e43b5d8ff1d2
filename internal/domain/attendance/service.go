package attendance

import (
	"context"
	"time"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/user"
)

type SessionService interface {
	// GetStatus derives the check-in/check-out legality for the
	// employee on the given date (zero date means today).
	GetStatus(ctx context.Context, employeeID string, date time.Time) (StatusResponse, error)

	// ValidateTransition applies the check-in cool-down rule.
	ValidateTransition(ctx context.Context, employeeID string, action string, at time.Time) TransitionResponse

	CheckIn(ctx context.Context, p user.Principal, req CheckInRequest) (SessionResponse, error)
	CheckOut(ctx context.Context, p user.Principal, req CheckOutRequest) (SessionResponse, error)

	List(ctx context.Context, filter Filter) (ListResponse, error)
	Get(ctx context.Context, id string) (SessionResponse, error)

	Approve(ctx context.Context, p user.Principal, req ApproveRequest) (SessionResponse, error)
	Reject(ctx context.Context, p user.Principal, req RejectRequest) (SessionResponse, error)
	Delete(ctx context.Context, p user.Principal, id string) error

	GetDailySummary(ctx context.Context, employeeID string, date time.Time) (DailySummary, error)
	GetMonthlyStats(ctx context.Context, employeeID string, month, year int) (MonthlyStats, error)
}
