package expense

import (
	"mime/multipart"

	"github.com/shopspring/decimal"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/approval"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	CategoryID string          `json:"category_id"`
	TaskID     *string         `json:"task_id,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`

	ReceiptURL *string               `json:"-"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CategoryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "category_id",
			Message: "category_id is required",
		})
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}
	if err := validator.CheckProofPhoto(r.FileHeader); err != nil {
		errs = append(errs, *err)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExpenseResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name,omitempty"`
	EmployeeCode  string          `json:"employee_code,omitempty"`
	CategoryID    string          `json:"category_id"`
	CategoryName  string          `json:"category_name,omitempty"`
	TaskID        *string         `json:"task_id,omitempty"`
	TaskTitle     *string         `json:"task_title,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Reason        string          `json:"reason"`
	ReceiptURL    *string         `json:"receipt_url,omitempty"`
	Status        string          `json:"status"`
	ApproverName  *string         `json:"approver_name,omitempty"`
	ApprovedAt    *string         `json:"approved_at,omitempty"`
	ApprovalNotes *string         `json:"approval_notes,omitempty"`
	CreatedAt     string          `json:"created_at"`
}

// Filter follows the shared listing contract, with the expense-only
// category and task filters on top: date range wins over month,
// page >= 1, limit clamped to [10,100] with default 20.
type Filter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	CategoryID *string `json:"category_id,omitempty"`
	TaskID     *string `json:"task_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
	Month      *string `json:"month,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	validator.NormalizePagination(&f.Page, &f.Limit)

	if f.Status != nil {
		valid := []string{
			string(approval.StatePending),
			string(approval.StateApproved),
			string(approval.StateRejected),
		}
		if !validator.IsInSlice(*f.Status, valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: pending, approved, rejected",
			})
		}
	}
	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.Month != nil && *f.Month != "" {
		if !validator.IsValidMonth(*f.Month) {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be in YYYY-MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (f *Filter) HasDateRange() bool {
	return (f.StartDate != nil && *f.StartDate != "") ||
		(f.EndDate != nil && *f.EndDate != "")
}

// CategoryAmount is one row of the per-category breakdown, aggregated
// over the same filter set as the listing.
type CategoryAmount struct {
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Count        int64           `json:"count"`
	Amount       decimal.Decimal `json:"amount"`
}

type AmountSummary struct {
	TotalCount     int64           `json:"total_count"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PendingCount   int64           `json:"pending_count"`
	PendingAmount  decimal.Decimal `json:"pending_amount"`
	ApprovedCount  int64           `json:"approved_count"`
	ApprovedAmount decimal.Decimal `json:"approved_amount"`
	RejectedCount  int64           `json:"rejected_count"`
	RejectedAmount decimal.Decimal `json:"rejected_amount"`

	ByCategory []CategoryAmount `json:"by_category"`
}

type ListResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Summary    AmountSummary     `json:"summary"`
	Expenses   []ExpenseResponse `json:"expenses"`
}

type ApproveRequest struct {
	ID    string  `json:"-"`
	Notes *string `json:"notes,omitempty"`
}

type RejectRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

func (r *RejectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "rejection reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
