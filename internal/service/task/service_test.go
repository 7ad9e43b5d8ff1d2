package task

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/task"
)

type stubSessionRepo struct {
	attendance.SessionRepository
	openSessionErr error
}

func (s *stubSessionRepo) GetOpenSession(ctx context.Context, employeeID string, date time.Time) (attendance.Session, error) {
	if s.openSessionErr != nil {
		return attendance.Session{}, s.openSessionErr
	}
	return attendance.Session{ID: "sess-1", EmployeeID: employeeID}, nil
}

type stubTaskRepo struct {
	task.TaskRepository
	unfinished    int64
	unfinishedErr error
}

func (s *stubTaskRepo) CountUnfinished(ctx context.Context, employeeID string) (int64, error) {
	return s.unfinished, s.unfinishedErr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCanCreateEligible(t *testing.T) {
	svc := NewService(&stubTaskRepo{}, &stubSessionRepo{}, discardLogger())

	resp, err := svc.CanCreate(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.True(t, resp.CanCreate)
	assert.Empty(t, resp.Reason)
}

func TestCanCreateNoOpenSession(t *testing.T) {
	svc := NewService(&stubTaskRepo{}, &stubSessionRepo{openSessionErr: attendance.ErrNoOpenSession}, discardLogger())

	resp, err := svc.CanCreate(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.False(t, resp.CanCreate)
	assert.Equal(t, reasonNoOpenSession, resp.Reason)
}

func TestCanCreateUnfinishedTasks(t *testing.T) {
	svc := NewService(&stubTaskRepo{unfinished: 1}, &stubSessionRepo{}, discardLogger())

	resp, err := svc.CanCreate(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.False(t, resp.CanCreate)
	assert.Equal(t, reasonUnfinishedTasks, resp.Reason)
}

func TestCanCreateFollowsFailurePolicyOnSessionError(t *testing.T) {
	svc := NewService(&stubTaskRepo{}, &stubSessionRepo{openSessionErr: errors.New("connection reset")}, discardLogger())

	resp, err := svc.CanCreate(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, bool(attendance.TaskCreateOnError), resp.CanCreate)
	assert.False(t, resp.CanCreate)
}

func TestCanCreateFollowsFailurePolicyOnCountError(t *testing.T) {
	svc := NewService(&stubTaskRepo{unfinishedErr: errors.New("connection reset")}, &stubSessionRepo{}, discardLogger())

	resp, err := svc.CanCreate(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, bool(attendance.TaskCreateOnError), resp.CanCreate)
	assert.False(t, resp.CanCreate)
}
