package catalogmock

import (
	"context"

	"tender-crm-backend/internal/domain/catalog"
)

var _ catalog.Repository[catalog.OEM] = (*Repo[catalog.OEM])(nil)

// Repo is a function-backed mock for any catalog table.
type Repo[T any] struct {
	CreateFn        func(ctx context.Context, item *T) error
	GetByPublicIDFn func(ctx context.Context, publicID string) (*T, error)
	ListFn          func(ctx context.Context) ([]T, error)
	SaveFn          func(ctx context.Context, item *T) error
	DeleteFn        func(ctx context.Context, publicID string) (int64, error)
}

func (m *Repo[T]) Create(ctx context.Context, item *T) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, item)
	}
	return nil
}

func (m *Repo[T]) GetByPublicID(ctx context.Context, publicID string) (*T, error) {
	if m.GetByPublicIDFn != nil {
		return m.GetByPublicIDFn(ctx, publicID)
	}
	return nil, context.Canceled
}

func (m *Repo[T]) List(ctx context.Context) ([]T, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo[T]) Save(ctx context.Context, item *T) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, item)
	}
	return nil
}

func (m *Repo[T]) Delete(ctx context.Context, publicID string) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, publicID)
	}
	return 0, nil
}
