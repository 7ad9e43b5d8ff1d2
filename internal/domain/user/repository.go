package user

import "context"

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (User, error)
	Create(ctx context.Context, u User) (User, error)
}
