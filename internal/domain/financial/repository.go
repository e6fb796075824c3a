package financial

import "context"

type Filter struct {
	TenderID string
	Status   Status
}

type Repository interface {
	Create(ctx context.Context, r *Request) error
	GetByRequestID(ctx context.Context, requestID string) (*Request, error)
	// Row-locked read, only meaningful inside a unit of work.
	GetByRequestIDForUpdate(ctx context.Context, requestID string) (*Request, error)
	List(ctx context.Context, f Filter) ([]Request, error)
	Save(ctx context.Context, r *Request) error
}
