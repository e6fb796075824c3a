package uowmock

import (
	"context"
	"errors"

	"tender-crm-backend/internal/domain/tender"
	"tender-crm-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn       func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinTenderTxFn func(ctx context.Context, tenderID string, fn func(r uow.Repos, t *tender.Tender) error) error
}

// Passthrough returns a UoW that runs fn directly against repos. WithinTenderTx
// loads the tender through repos.Tenders.GetByTenderIDForUpdate first.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(repos)
		},
		WithinTenderTxFn: func(ctx context.Context, tenderID string, fn func(r uow.Repos, t *tender.Tender) error) error {
			t, err := repos.Tenders.GetByTenderIDForUpdate(ctx, tenderID)
			if err != nil {
				return err
			}
			return fn(repos, t)
		},
	}
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinTenderTx(fn func(context.Context, string, func(uow.Repos, *tender.Tender) error) error) *UoW {
	m.WithinTenderTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinTenderTx(ctx context.Context, tenderID string, fn func(r uow.Repos, t *tender.Tender) error) error {
	if m.WithinTenderTxFn != nil {
		return m.WithinTenderTxFn(ctx, tenderID, fn)
	}
	return errUnimplemented
}
