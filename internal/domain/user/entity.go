package user

import "time"

type Role string

const (
	RoleEmployee   Role = "employee"
	RoleSupervisor Role = "supervisor"
	RoleHR         Role = "hr"
	RoleSuperadmin Role = "superadmin"
)

// User is the authentication principal. Employees carry a linked
// employee record; back-office users (supervisor/hr/superadmin) may not.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal is the authenticated caller, resolved once by the auth
// middleware and passed explicitly into every workflow operation.
type Principal struct {
	UserID     string
	EmployeeID string
	Role       Role
}

// CanApprove reports whether the principal may apply single-level or
// first-level approvals.
func (p Principal) CanApprove() bool {
	switch p.Role {
	case RoleSupervisor, RoleHR, RoleSuperadmin:
		return true
	}
	return false
}

// CanApproveFinal reports whether the principal may apply second-level
// leave approvals.
func (p Principal) CanApproveFinal() bool {
	return p.Role == RoleHR || p.Role == RoleSuperadmin
}

// CanDelete reports whether the principal may hard-delete request rows.
func (p Principal) CanDelete() bool {
	return p.Role == RoleHR || p.Role == RoleSuperadmin
}
