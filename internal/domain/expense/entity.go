package expense

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/approval"
)

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Expense struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	CategoryID string          `json:"category_id"`
	TaskID     *string         `json:"task_id,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
	ReceiptURL *string         `json:"receipt_url,omitempty"`
	Status     approval.State  `json:"status"`

	ApprovedBy    *string    `json:"approved_by,omitempty"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	ApprovalNotes *string    `json:"approval_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined display fields, populated by listing queries.
	EmployeeName string  `json:"employee_name,omitempty"`
	EmployeeCode string  `json:"employee_code,omitempty"`
	CategoryName string  `json:"category_name,omitempty"`
	TaskTitle    *string `json:"task_title,omitempty"`
	ApproverName *string `json:"approver_name,omitempty"`
}
