package usermock

import (
	"context"

	domain "tender-crm-backend/internal/domain/user"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn      func(ctx context.Context, u *domain.User) error
	GetByUserIDFn func(ctx context.Context, userID string) (*domain.User, error)
	ListFn        func(ctx context.Context, departmentID string) ([]domain.User, error)
	SaveFn        func(ctx context.Context, u *domain.User) error
	DeleteFn      func(ctx context.Context, userID string) (int64, error)
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, departmentID string) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, departmentID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, userID string) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID)
	}
	return 0, nil
}
