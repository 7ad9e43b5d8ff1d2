package user

import "errors"

var (
	ErrUserNotFound             = errors.New("user not found")
	ErrSupervisorAccessRequired = errors.New("supervisor access required")
	ErrHRAccessRequired         = errors.New("hr or superadmin access required")
)
