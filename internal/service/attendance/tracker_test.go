package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/attendance"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name   string
		counts attendance.SessionCounts
		want   string
	}{
		{"no sessions", attendance.SessionCounts{}, "checked_out"},
		{"single open session", attendance.SessionCounts{CheckIns: 1, CheckOuts: 0}, "checked_in"},
		{"closed session", attendance.SessionCounts{CheckIns: 1, CheckOuts: 1}, "checked_out"},
		{"second session open", attendance.SessionCounts{CheckIns: 2, CheckOuts: 1}, "checked_in"},
		{"odd check-ins no check-outs", attendance.SessionCounts{CheckIns: 3, CheckOuts: 0}, "checked_in"},
		{"all sessions closed", attendance.SessionCounts{CheckIns: 3, CheckOuts: 3}, "checked_out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveStatus(tt.counts))
		})
	}
}

func TestCanCheckOut(t *testing.T) {
	assert.False(t, canCheckOut(attendance.SessionCounts{}))
	assert.True(t, canCheckOut(attendance.SessionCounts{CheckIns: 1}))
	assert.False(t, canCheckOut(attendance.SessionCounts{CheckIns: 2, CheckOuts: 2}))
	assert.True(t, canCheckOut(attendance.SessionCounts{CheckIns: 3, CheckOuts: 2}))
}

func TestCanCheckIn(t *testing.T) {
	// A new check-in is always permitted regardless of open sessions.
	assert.True(t, canCheckIn(attendance.SessionCounts{}))
	assert.True(t, canCheckIn(attendance.SessionCounts{CheckIns: 2, CheckOuts: 0}))
}

func TestCooldownRemaining(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("no prior check-out", func(t *testing.T) {
		assert.Zero(t, cooldownRemaining(nil, now))
	})

	t.Run("inside the window", func(t *testing.T) {
		out := now.Add(-2 * time.Minute)
		assert.Equal(t, 3*time.Minute, cooldownRemaining(&out, now))
	})

	t.Run("exactly at the window", func(t *testing.T) {
		out := now.Add(-CheckInCooldown)
		assert.Zero(t, cooldownRemaining(&out, now))
	})

	t.Run("past the window", func(t *testing.T) {
		out := now.Add(-time.Hour)
		assert.Zero(t, cooldownRemaining(&out, now))
	})
}
