package mysql

import (
	"context"

	"tender-crm-backend/internal/domain/financial"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FinancialRepository struct{ db *gorm.DB }

func NewFinancialRepository(db *gorm.DB) *FinancialRepository { return &FinancialRepository{db: db} }

func (r *FinancialRepository) Create(ctx context.Context, fr *financial.Request) error {
	return r.db.WithContext(ctx).Create(fr).Error
}

func (r *FinancialRepository) Save(ctx context.Context, fr *financial.Request) error {
	return r.db.WithContext(ctx).Save(fr).Error
}

func (r *FinancialRepository) GetByRequestID(ctx context.Context, requestID string) (*financial.Request, error) {
	var out financial.Request
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

func (r *FinancialRepository) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*financial.Request, error) {
	var out financial.Request
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("request_id = ?", requestID).
		First(&out)
	return &out, res.Error
}

func (r *FinancialRepository) List(ctx context.Context, f financial.Filter) ([]financial.Request, error) {
	q := r.db.WithContext(ctx).Model(&financial.Request{})
	if f.TenderID != "" {
		q = q.Where("tender_id = ?", f.TenderID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	out := []financial.Request{}
	res := q.Order("request_date DESC, id DESC").Find(&out)
	return out, res.Error
}
