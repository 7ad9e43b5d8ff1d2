package attendance

import (
	"context"
	"time"
)

// SessionRepository is the data gateway for attendance sessions.
type SessionRepository interface {
	Create(ctx context.Context, s Session) (Session, error)

	GetByID(ctx context.Context, id string) (Session, error)

	// GetOpenSession returns the most recent open session for the
	// employee on the given date.
	GetOpenSession(ctx context.Context, employeeID string, date time.Time) (Session, error)

	// CountSessions tallies check-ins and check-outs for (employee, date).
	CountSessions(ctx context.Context, employeeID string, date time.Time) (SessionCounts, error)

	// LatestCheckOut returns the most recent check-out time for the
	// employee on the given date, or nil when none exists.
	LatestCheckOut(ctx context.Context, employeeID string, date time.Time) (*time.Time, error)

	Update(ctx context.Context, s Session) error

	// UpdateStatus applies an approval decision. When guardState is
	// non-empty the update is restricted to rows currently in that
	// state and the affected-row count discriminates lost races.
	UpdateStatus(ctx context.Context, s Session, guardState string) (int64, error)

	List(ctx context.Context, filter Filter) ([]Session, int64, error)

	// Summarize aggregates status counts over the same filter set the
	// listing uses, ignoring pagination.
	Summarize(ctx context.Context, filter Filter) (StatusSummary, error)

	GetDailySummary(ctx context.Context, employeeID string, date time.Time) (DailySummary, error)
	GetMonthlyStats(ctx context.Context, employeeID string, month, year int) (MonthlyStats, error)

	// CountPresentDays counts the calendar days in the month with at
	// least one approved session. Pending and rejected sessions do not
	// count toward pay.
	CountPresentDays(ctx context.Context, employeeID string, month, year int) (int, error)

	// CloseStaleSessions force-closes sessions left open before cutoff,
	// returning the number of rows touched.
	CloseStaleSessions(ctx context.Context, cutoff time.Time) (int64, error)

	Delete(ctx context.Context, id string) error
}
