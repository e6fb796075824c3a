package tendermock

import (
	"context"

	domain "tender-crm-backend/internal/domain/tender"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                 func(ctx context.Context, t *domain.Tender) error
	GetByTenderIDFn          func(ctx context.Context, tenderID string) (*domain.Tender, error)
	GetByTenderIDForUpdateFn func(ctx context.Context, tenderID string) (*domain.Tender, error)
	ListFn                   func(ctx context.Context, f domain.Filter) ([]domain.Tender, error)
	SaveFn                   func(ctx context.Context, t *domain.Tender) error
	DeleteFn                 func(ctx context.Context, tenderID string) (int64, error)
}

func (m *Repo) Create(ctx context.Context, t *domain.Tender) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetByTenderID(ctx context.Context, tenderID string) (*domain.Tender, error) {
	if m.GetByTenderIDFn != nil {
		return m.GetByTenderIDFn(ctx, tenderID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByTenderIDForUpdate(ctx context.Context, tenderID string) (*domain.Tender, error) {
	if m.GetByTenderIDForUpdateFn != nil {
		return m.GetByTenderIDForUpdateFn(ctx, tenderID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Tender, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, t *domain.Tender) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, t)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, tenderID string) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, tenderID)
	}
	return 0, nil
}
