package leave

import (
	"time"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/approval"
)

// Type is the category of leave being requested.
type Type string

const (
	TypeCasual    Type = "casual"
	TypeSick      Type = "sick"
	TypeEarned    Type = "earned"
	TypeUnpaid    Type = "unpaid"
	TypeMaternity Type = "maternity"
)

// Request carries two approval slots: level 1 (supervisor) and level 2
// (HR or superadmin). Each level records its own approver, timestamp
// and comment. Rejection is terminal and records a single rejector.
type Request struct {
	ID         string         `json:"id"`
	EmployeeID string         `json:"employee_id"`
	LeaveType  Type           `json:"leave_type"`
	StartDate  time.Time      `json:"start_date"`
	EndDate    time.Time      `json:"end_date"`
	Reason     string         `json:"reason"`
	Status     approval.State `json:"status"`

	L1ApprovedBy *string    `json:"l1_approved_by,omitempty"`
	L1ApprovedAt *time.Time `json:"l1_approved_at,omitempty"`
	L1Comment    *string    `json:"l1_comment,omitempty"`

	L2ApprovedBy *string    `json:"l2_approved_by,omitempty"`
	L2ApprovedAt *time.Time `json:"l2_approved_at,omitempty"`
	L2Comment    *string    `json:"l2_comment,omitempty"`

	RejectedBy      *string    `json:"rejected_by,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined display fields, populated by listing queries.
	EmployeeName   string  `json:"employee_name,omitempty"`
	EmployeeCode   string  `json:"employee_code,omitempty"`
	L1ApproverName *string `json:"l1_approver_name,omitempty"`
	L2ApproverName *string `json:"l2_approver_name,omitempty"`
	RejectorName   *string `json:"rejector_name,omitempty"`
}

// Days is the inclusive calendar-day span of the request.
func (r Request) Days() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}
