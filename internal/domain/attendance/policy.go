package attendance

// FailurePolicy is the on-error default for a read-side decision.
// Fail-open answers "yes" when the lookup fails; fail-closed answers
// "no". Keeping the choices in one table makes each one visible and
// testable instead of hiding them in error-swallowing branches.
type FailurePolicy bool

const (
	FailOpen   FailurePolicy = true
	FailClosed FailurePolicy = false
)

var (
	// CheckInOnError: starting work is always permitted when the
	// session tally cannot be read.
	CheckInOnError = FailOpen

	// CheckOutOnError: closing a session requires proof an open
	// session exists.
	CheckOutOnError = FailClosed

	// CooldownOnError: the 5-minute gate after a check-out defaults to
	// valid when the last check-out cannot be read.
	CooldownOnError = FailOpen

	// TaskCreateOnError: starting a new task requires a confirmed open
	// session.
	TaskCreateOnError = FailClosed
)
