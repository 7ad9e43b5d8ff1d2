package attendance

import (
	"time"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/attendance"
)

// CheckInCooldown is the minimum gap between a check-out and the next
// check-in on the same day.
const CheckInCooldown = 5 * time.Minute

// deriveStatus maps the day's session tally to a display status: an
// open session means checked_in, anything else (including a day with
// no sessions) is checked_out. "unknown" is reserved for the
// tally-read-failure fallback.
func deriveStatus(c attendance.SessionCounts) string {
	if c.CheckIns > c.CheckOuts {
		return "checked_in"
	}
	return "checked_out"
}

// canCheckIn is unconditionally true: the multi-session model permits a
// new check-in at any point, subject only to the cool-down gate.
func canCheckIn(attendance.SessionCounts) bool {
	return true
}

// canCheckOut requires an open session, i.e. more check-ins than
// check-outs.
func canCheckOut(c attendance.SessionCounts) bool {
	return c.CheckIns > c.CheckOuts
}

// cooldownRemaining returns how long until the next check-in is
// permitted after the latest check-out. Zero means no wait.
func cooldownRemaining(latestCheckOut *time.Time, now time.Time) time.Duration {
	if latestCheckOut == nil {
		return 0
	}
	elapsed := now.Sub(*latestCheckOut)
	if elapsed >= CheckInCooldown {
		return 0
	}
	return CheckInCooldown - elapsed
}
