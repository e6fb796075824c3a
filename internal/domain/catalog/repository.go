package catalog

import "context"

// Item is satisfied by pointers to the catalog entities.
type Item[T any] interface {
	*T
	Base() *Record
	Prefix() string
	Kind() string
	Apply(patch *T)
}

type Repository[T any] interface {
	Create(ctx context.Context, item *T) error
	GetByPublicID(ctx context.Context, publicID string) (*T, error)
	List(ctx context.Context) ([]T, error)
	Save(ctx context.Context, item *T) error
	Delete(ctx context.Context, publicID string) (int64, error)
}
