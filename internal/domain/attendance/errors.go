package attendance

import "errors"

var (
	ErrSessionNotFound  = errors.New("attendance session not found")
	ErrNoOpenSession    = errors.New("no open attendance session")
	ErrCheckInCooldown  = errors.New("check-in attempted too soon after the last check-out")
	ErrSessionProcessed = errors.New("attendance session has already been approved or rejected")
	ErrUnauthorized     = errors.New("unauthorized to access this attendance session")
)
