package activity

import (
	"context"
	"fmt"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/activity"
)

const (
	defaultActorLimit = 20
	maxActorLimit     = 100
)

// Log serves audit-trail reads for the back office.
type Log struct {
	repo activity.EntryRepository
}

func NewLog(repo activity.EntryRepository) *Log {
	return &Log{repo: repo}
}

func (l *Log) EntityHistory(ctx context.Context, entityType, entityID string) (activity.HistoryResponse, error) {
	entries, err := l.repo.ListByEntity(ctx, entityType, entityID)
	if err != nil {
		return activity.HistoryResponse{}, fmt.Errorf("failed to list activity by entity: %w", err)
	}
	return toHistoryResponse(entries), nil
}

func (l *Log) ActorHistory(ctx context.Context, actorID string, limit int) (activity.HistoryResponse, error) {
	if limit <= 0 {
		limit = defaultActorLimit
	}
	if limit > maxActorLimit {
		limit = maxActorLimit
	}

	entries, err := l.repo.ListByActor(ctx, actorID, limit)
	if err != nil {
		return activity.HistoryResponse{}, fmt.Errorf("failed to list activity by actor: %w", err)
	}
	return toHistoryResponse(entries), nil
}

func toHistoryResponse(entries []activity.Entry) activity.HistoryResponse {
	if entries == nil {
		entries = []activity.Entry{}
	}
	return activity.HistoryResponse{
		Entries: entries,
		Count:   len(entries),
	}
}
