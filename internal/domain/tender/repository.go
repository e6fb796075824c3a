package tender

import "context"

type Filter struct {
	Status   Status
	ClientID string
}

type Repository interface {
	Create(ctx context.Context, t *Tender) error
	GetByTenderID(ctx context.Context, tenderID string) (*Tender, error)
	// Row-locked read, only meaningful inside a unit of work.
	GetByTenderIDForUpdate(ctx context.Context, tenderID string) (*Tender, error)
	List(ctx context.Context, f Filter) ([]Tender, error)
	Save(ctx context.Context, t *Tender) error
	Delete(ctx context.Context, tenderID string) (int64, error)
}
