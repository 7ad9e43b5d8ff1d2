package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/expense"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/payroll"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/pettycash"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/task"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrEmployeeInactive):
		Forbidden(w, "Employee account is inactive")

	// Role capability errors
	case errors.Is(err, user.ErrSupervisorAccessRequired):
		Forbidden(w, "Supervisor access required")
	case errors.Is(err, user.ErrHRAccessRequired):
		Forbidden(w, "HR access required")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is inactive")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrSessionNotFound):
		NotFound(w, "Attendance session not found")
	case errors.Is(err, attendance.ErrNoOpenSession):
		Conflict(w, "No open attendance session")
	case errors.Is(err, attendance.ErrCheckInCooldown):
		Conflict(w, "Check-in attempted too soon after the last check-out")
	case errors.Is(err, attendance.ErrSessionProcessed):
		Conflict(w, "Attendance session already processed")
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this attendance session")

	// Petty cash domain errors
	case errors.Is(err, pettycash.ErrRequestNotFound):
		NotFound(w, "Petty cash request not found")
	case errors.Is(err, pettycash.ErrRequestProcessed):
		Conflict(w, "Petty cash request already processed")

	// Expense domain errors
	case errors.Is(err, expense.ErrExpenseNotFound):
		NotFound(w, "Expense not found")
	case errors.Is(err, expense.ErrExpenseProcessed):
		Conflict(w, "Expense already processed")
	case errors.Is(err, expense.ErrCategoryNotFound):
		NotFound(w, "Expense category not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrRequestProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrNotAwaitingL1):
		Conflict(w, "Leave request is not awaiting level 1 approval")
	case errors.Is(err, leave.ErrNotAwaitingL2):
		Conflict(w, "Leave request is not awaiting level 2 approval")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not precede start date", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, payroll.ErrNoWageBasis):
		BadRequest(w, "Employee has neither a daily wage nor a basic salary", nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll month or year", nil)

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrNoOpenSession):
		Conflict(w, "Task creation requires an open attendance session")
	case errors.Is(err, task.ErrUnfinishedTasks):
		Conflict(w, "Employee already has an active or pending task")
	case errors.Is(err, task.ErrTaskAlreadyClosed):
		Conflict(w, "Task is already completed")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
