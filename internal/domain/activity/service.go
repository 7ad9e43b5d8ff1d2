package activity

import "context"

// HistoryResponse wraps an audit trail slice for the API.
type HistoryResponse struct {
	Entries []Entry `json:"entries"`
	Count   int     `json:"count"`
}

// LogService is the read side of the audit log. The back office uses
// it to trace who acted on a record and what an actor touched.
type LogService interface {
	EntityHistory(ctx context.Context, entityType, entityID string) (HistoryResponse, error)
	ActorHistory(ctx context.Context, actorID string, limit int) (HistoryResponse, error)
}
