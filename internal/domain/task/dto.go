package task

import "github.com/staffhub-hr/staffhub-backend-go/internal/pkg/validator"

type CreateRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TaskResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	EmployeeCode string  `json:"employee_code,omitempty"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	Status       string  `json:"status"`
	CompletedAt  *string `json:"completed_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type Filter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	validator.NormalizePagination(&f.Page, &f.Limit)

	if f.Status != nil {
		valid := []string{
			string(StatusActive),
			string(StatusPending),
			string(StatusCompleted),
		}
		if !validator.IsInSlice(*f.Status, valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: active, pending, completed",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListResponse struct {
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
	Tasks      []TaskResponse `json:"tasks"`
}

// EligibilityResponse answers "may this employee start a new task".
type EligibilityResponse struct {
	CanCreate bool   `json:"can_create"`
	Reason    string `json:"reason,omitempty"`
}
