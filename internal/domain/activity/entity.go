package activity

import "time"

// Entry is one append-only audit row. Writes are best effort: a failed
// insert is logged and never fails the operation that produced it.
type Entry struct {
	ID         string    `json:"id"`
	ActorID    string    `json:"actor_id"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Detail     *string   `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`

	ActorName string `json:"actor_name,omitempty"`
}

const (
	ActionApprove    = "approve"
	ActionApproveL1  = "approve_l1"
	ActionApproveL2  = "approve_l2"
	ActionReject     = "reject"
	ActionDelete     = "delete"
	ActionBulkDelete = "bulk_delete"
	ActionGenerate   = "generate"
	ActionEdit       = "edit"
)
