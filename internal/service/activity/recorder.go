package activity

import (
	"context"
	"log/slog"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/activity"
)

// Recorder writes audit entries best effort. A failed insert is logged
// and never propagates to the operation that produced it.
type Recorder struct {
	repo   activity.EntryRepository
	logger *slog.Logger
}

func NewRecorder(repo activity.EntryRepository, logger *slog.Logger) *Recorder {
	return &Recorder{repo: repo, logger: logger}
}

func (r *Recorder) Record(ctx context.Context, actorID, action, entityType, entityID string, detail *string) {
	entry := activity.Entry{
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
	}

	if err := r.repo.Create(ctx, entry); err != nil {
		r.logger.Error("activity log write failed",
			"actor_id", actorID,
			"action", action,
			"entity_type", entityType,
			"entity_id", entityID,
			"error", err,
		)
	}
}
