package mysql

import (
	"context"

	"tender-crm-backend/internal/domain/tender"
	"tender-crm-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Financials: &FinancialRepository{db: tx},
		Tenders:    &TenderRepository{db: tx},
		Clients:    &ClientRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinTenderTx(ctx context.Context, tenderID string, fn func(r uow.Repos, t *tender.Tender) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the tender row up-front to prevent lost updates
		t, err := r.Tenders.GetByTenderIDForUpdate(ctx, tenderID)
		if err != nil {
			return err
		}
		return fn(r, t)
	})
}
