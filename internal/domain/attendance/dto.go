package attendance

import (
	"mime/multipart"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/approval"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	Latitude      *float64              `json:"latitude,omitempty"`
	Longitude     *float64              `json:"longitude,omitempty"`
	ProofPhotoURL *string               `json:"-"`
	File          multipart.File        `json:"-"`
	FileHeader    *multipart.FileHeader `json:"-"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
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

type CheckOutRequest struct {
	Latitude      *float64              `json:"latitude,omitempty"`
	Longitude     *float64              `json:"longitude,omitempty"`
	ProofPhotoURL *string               `json:"-"`
	File          multipart.File        `json:"-"`
	FileHeader    *multipart.FileHeader `json:"-"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
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

// StatusResponse answers "may this employee check in or out right now".
type StatusResponse struct {
	CanCheckIn  bool   `json:"can_check_in"`
	CanCheckOut bool   `json:"can_check_out"`
	Status      string `json:"status"` // checked_in, checked_out, unknown
}

type TransitionResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

type SessionResponse struct {
	ID                string   `json:"id"`
	EmployeeID        string   `json:"employee_id"`
	EmployeeName      string   `json:"employee_name,omitempty"`
	EmployeeCode      string   `json:"employee_code,omitempty"`
	Date              string   `json:"date"`
	CheckInTime       *string  `json:"check_in_time,omitempty"`
	CheckOutTime      *string  `json:"check_out_time,omitempty"`
	CheckInLatitude   *float64 `json:"check_in_latitude,omitempty"`
	CheckInLongitude  *float64 `json:"check_in_longitude,omitempty"`
	CheckOutLatitude  *float64 `json:"check_out_latitude,omitempty"`
	CheckOutLongitude *float64 `json:"check_out_longitude,omitempty"`
	CheckInProofURL   *string  `json:"check_in_proof_url,omitempty"`
	CheckOutProofURL  *string  `json:"check_out_proof_url,omitempty"`
	WorkingHours      *float64 `json:"working_hours,omitempty"`
	DistanceMeters    *float64 `json:"distance_meters,omitempty"`
	Status            string   `json:"status"`
	ApproverName      *string  `json:"approver_name,omitempty"`
	ApprovalNotes     *string  `json:"approval_notes,omitempty"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}

// Filter follows the shared listing contract: date range wins over
// month, page >= 1, limit clamped to [10,100] with default 20.
type Filter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Month      *string `json:"month,omitempty"`      // YYYY-MM

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

// HasDateRange reports whether the range filter should win over month.
func (f *Filter) HasDateRange() bool {
	return (f.StartDate != nil && *f.StartDate != "") ||
		(f.EndDate != nil && *f.EndDate != "")
}

// StatusSummary mirrors the full filter set, not the current page.
type StatusSummary struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

type ListResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Summary    StatusSummary     `json:"summary"`
	Sessions   []SessionResponse `json:"sessions"`
}

// ApproveRequest for approving a session
type ApproveRequest struct {
	ID    string  `json:"-"`
	Notes *string `json:"notes,omitempty"`
}

// RejectRequest for rejecting a session
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
