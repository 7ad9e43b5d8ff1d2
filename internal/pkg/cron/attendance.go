package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/attendance"
)

// SessionSweeper force-closes attendance sessions left open past the
// day boundary so payroll never counts a session that ran forever.
type SessionSweeper struct {
	sessionRepo attendance.SessionRepository
}

func NewSessionSweeper(sessionRepo attendance.SessionRepository) *SessionSweeper {
	return &SessionSweeper{sessionRepo: sessionRepo}
}

// CloseStale closes every open session whose date is before today.
// The check-out is set at that day's midnight boundary.
func (s *SessionSweeper) CloseStale(ctx context.Context) error {
	now := time.Now()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	closed, err := s.sessionRepo.CloseStaleSessions(ctx, cutoff)
	if err != nil {
		return err
	}

	if closed > 0 {
		slog.Info("Closed stale attendance sessions", "count", closed)
	}
	return nil
}
