package activity

import "context"

type EntryRepository interface {
	Create(ctx context.Context, e Entry) error
	ListByEntity(ctx context.Context, entityType, entityID string) ([]Entry, error)
	ListByActor(ctx context.Context, actorID string, limit int) ([]Entry, error)
}

// Recorder is the write-side interface services use. Implementations
// must swallow persistence failures after logging them.
type Recorder interface {
	Record(ctx context.Context, actorID, action, entityType, entityID string, detail *string)
}
