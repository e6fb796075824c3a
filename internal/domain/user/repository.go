package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	List(ctx context.Context, departmentID string) ([]User, error)
	Save(ctx context.Context, u *User) error
	Delete(ctx context.Context, userID string) (int64, error)
}
