package uow

import (
	"context"

	"tender-crm-backend/internal/domain/client"
	"tender-crm-backend/internal/domain/financial"
	"tender-crm-backend/internal/domain/tender"
)

// Repos are bound to the same transaction.
type Repos struct {
	Financials financial.Repository
	Tenders    tender.Repository
	Clients    client.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the tender row first, then pass it in
	WithinTenderTx(ctx context.Context, tenderID string, fn func(r Repos, t *tender.Tender) error) error
}
