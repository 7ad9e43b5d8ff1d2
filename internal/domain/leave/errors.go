package leave

import "errors"

var (
	ErrRequestNotFound  = errors.New("leave request not found")
	ErrRequestProcessed = errors.New("leave request already processed")
	ErrNotAwaitingL1    = errors.New("leave request is not awaiting level 1 approval")
	ErrNotAwaitingL2    = errors.New("leave request is not awaiting level 2 approval")
	ErrInvalidDateRange = errors.New("leave end date must not precede start date")
)
