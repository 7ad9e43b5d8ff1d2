package pettycash

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/approval"
)

// Request is a single-level petty cash disbursement request.
type Request struct {
	ID         string
	EmployeeID string
	Amount     decimal.Decimal
	Reason     string

	Status        approval.State
	ApprovedBy    *string
	ApprovedAt    *time.Time
	ApprovalNotes *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined display fields
	EmployeeName *string
	EmployeeCode *string
	ApproverName *string
}
