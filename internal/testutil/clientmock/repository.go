package clientmock

import (
	"context"

	domain "tender-crm-backend/internal/domain/client"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                 func(ctx context.Context, c *domain.Client) error
	GetByClientIDFn          func(ctx context.Context, clientID string) (*domain.Client, error)
	GetByClientIDForUpdateFn func(ctx context.Context, clientID string) (*domain.Client, error)
	ListFn                   func(ctx context.Context, status domain.Status) ([]domain.Client, error)
	SaveFn                   func(ctx context.Context, c *domain.Client) error
	DeleteFn                 func(ctx context.Context, clientID string) (int64, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Client) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByClientID(ctx context.Context, clientID string) (*domain.Client, error) {
	if m.GetByClientIDFn != nil {
		return m.GetByClientIDFn(ctx, clientID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByClientIDForUpdate(ctx context.Context, clientID string) (*domain.Client, error) {
	if m.GetByClientIDForUpdateFn != nil {
		return m.GetByClientIDForUpdateFn(ctx, clientID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, status domain.Status) ([]domain.Client, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, status)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, c *domain.Client) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, clientID string) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, clientID)
	}
	return 0, nil
}
