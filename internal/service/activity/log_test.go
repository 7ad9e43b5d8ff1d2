package activity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/activity"
)

type stubEntryRepo struct {
	entries   []activity.Entry
	lastLimit int
}

func (s *stubEntryRepo) Create(ctx context.Context, e activity.Entry) error { return nil }

func (s *stubEntryRepo) ListByEntity(ctx context.Context, entityType, entityID string) ([]activity.Entry, error) {
	return s.entries, nil
}

func (s *stubEntryRepo) ListByActor(ctx context.Context, actorID string, limit int) ([]activity.Entry, error) {
	s.lastLimit = limit
	return s.entries, nil
}

func TestEntityHistory(t *testing.T) {
	repo := &stubEntryRepo{entries: []activity.Entry{
		{ID: "a1", Action: activity.ActionApprove, EntityType: "leave_request", EntityID: "lr-1"},
		{ID: "a2", Action: activity.ActionApproveL2, EntityType: "leave_request", EntityID: "lr-1"},
	}}
	log := NewLog(repo)

	resp, err := log.EntityHistory(context.Background(), "leave_request", "lr-1")
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Entries, 2)
}

func TestEntityHistoryEmptyTrail(t *testing.T) {
	log := NewLog(&stubEntryRepo{})

	resp, err := log.EntityHistory(context.Background(), "salary_record", "missing")
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Entries, "an empty trail serializes as [], not null")
}

func TestActorHistoryClampsLimit(t *testing.T) {
	repo := &stubEntryRepo{}
	log := NewLog(repo)

	_, err := log.ActorHistory(context.Background(), "user-1", 0)
	require.NoError(t, err)
	assert.Equal(t, 20, repo.lastLimit)

	_, err = log.ActorHistory(context.Background(), "user-1", 1000)
	require.NoError(t, err)
	assert.Equal(t, 100, repo.lastLimit)

	_, err = log.ActorHistory(context.Background(), "user-1", 50)
	require.NoError(t, err)
	assert.Equal(t, 50, repo.lastLimit)
}
