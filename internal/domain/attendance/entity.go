package attendance

import (
	"time"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/approval"
)

// Session is one check-in attempt for an employee on a calendar date.
// An employee may hold several sessions per day; a session with a
// check-in and no check-out is "open". Check-out mutates the same row.
type Session struct {
	ID         string
	EmployeeID string
	Date       time.Time

	CheckIn           *time.Time
	CheckInLatitude   *float64
	CheckInLongitude  *float64
	CheckInProofURL   *string
	CheckOut          *time.Time
	CheckOutLatitude  *float64
	CheckOutLongitude *float64
	CheckOutProofURL  *string

	WorkMinutes *int

	Status        approval.State
	ApprovedBy    *string
	ApprovedAt    *time.Time
	ApprovalNotes *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined display fields
	EmployeeName *string
	EmployeeCode *string
	ApproverName *string
}

// IsOpen reports whether the session has a check-in but no check-out.
func (s Session) IsOpen() bool {
	return s.CheckIn != nil && s.CheckOut == nil
}

// SessionCounts is the per-(employee, date) tally the status derivation
// works from.
type SessionCounts struct {
	CheckIns  int
	CheckOuts int
}

// DailySummary aggregates one employee's sessions for a single day.
type DailySummary struct {
	EmployeeID    string
	Date          time.Time
	FirstCheckIn  *time.Time
	LastCheckOut  *time.Time
	SessionCount  int
	TotalMinutes  int
	SessionRanges []string
}

// MonthlyStats aggregates one employee's attendance for a month.
type MonthlyStats struct {
	EmployeeID   string
	Month        int
	Year         int
	DaysWorked   int
	SessionCount int
	StatusCounts map[approval.State]int
	TotalMinutes int
}
