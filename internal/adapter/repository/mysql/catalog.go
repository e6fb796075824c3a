package mysql

import (
	"context"

	"gorm.io/gorm"
)

// CatalogRepository serves every lookup table keyed by public_id.
type CatalogRepository[T any] struct{ db *gorm.DB }

func NewCatalogRepository[T any](db *gorm.DB) *CatalogRepository[T] {
	return &CatalogRepository[T]{db: db}
}

func (r *CatalogRepository[T]) Create(ctx context.Context, item *T) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *CatalogRepository[T]) Save(ctx context.Context, item *T) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *CatalogRepository[T]) GetByPublicID(ctx context.Context, publicID string) (*T, error) {
	var out T
	res := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&out)
	return &out, res.Error
}

func (r *CatalogRepository[T]) List(ctx context.Context) ([]T, error) {
	out := []T{}
	res := r.db.WithContext(ctx).Order("name ASC").Find(&out)
	return out, res.Error
}

func (r *CatalogRepository[T]) Delete(ctx context.Context, publicID string) (int64, error) {
	var zero T
	res := r.db.WithContext(ctx).Where("public_id = ?", publicID).Delete(&zero)
	return res.RowsAffected, res.Error
}
