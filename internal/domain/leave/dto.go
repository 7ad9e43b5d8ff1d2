package leave

import (
	"time"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/approval"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	validTypes := []string{
		string(TypeCasual), string(TypeSick), string(TypeEarned),
		string(TypeUnpaid), string(TypeMaternity),
	}
	if !validator.IsInSlice(r.LeaveType, validTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of: casual, sick, earned, unpaid, maternity",
		})
	}

	var start, end time.Time
	var okStart, okEnd bool
	if start, okStart = validator.IsValidDate(r.StartDate); !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if end, okEnd = validator.IsValidDate(r.EndDate); !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not precede start_date",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	EmployeeCode string `json:"employee_code,omitempty"`
	LeaveType    string `json:"leave_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Days         int    `json:"days"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`

	L1ApproverName *string `json:"l1_approver_name,omitempty"`
	L1ApprovedAt   *string `json:"l1_approved_at,omitempty"`
	L1Comment      *string `json:"l1_comment,omitempty"`

	L2ApproverName *string `json:"l2_approver_name,omitempty"`
	L2ApprovedAt   *string `json:"l2_approved_at,omitempty"`
	L2Comment      *string `json:"l2_comment,omitempty"`

	RejectorName    *string `json:"rejector_name,omitempty"`
	RejectedAt      *string `json:"rejected_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`

	CreatedAt string `json:"created_at"`
}

// Filter follows the shared listing contract: date range wins over
// month, page >= 1, limit clamped to [10,100] with default 20.
type Filter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	LeaveType  *string `json:"leave_type,omitempty"`
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
			string(approval.StateApprovedL1),
			string(approval.StateApprovedL2),
			string(approval.StateRejected),
		}
		if !validator.IsInSlice(*f.Status, valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: pending, approved_l1, approved_l2, rejected",
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

// StatusSummary mirrors the full filter set, not the current page.
type StatusSummary struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	ApprovedL1 int64 `json:"approved_l1"`
	ApprovedL2 int64 `json:"approved_l2"`
	Rejected   int64 `json:"rejected"`
}

type ListResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Summary    StatusSummary     `json:"summary"`
	Requests   []RequestResponse `json:"requests"`
}

type ApproveRequest struct {
	ID      string  `json:"-"`
	Comment *string `json:"comment,omitempty"`
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

type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

func (r *BulkDeleteRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "ids",
			Message: "at least one id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkDeleteResponse struct {
	Requested int64 `json:"requested"`
	Deleted   int64 `json:"deleted"`
}
