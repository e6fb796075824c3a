package mysql

import (
	"context"

	"tender-crm-backend/internal/domain/tender"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TenderRepository struct{ db *gorm.DB }

func NewTenderRepository(db *gorm.DB) *TenderRepository { return &TenderRepository{db: db} }

func (r *TenderRepository) Create(ctx context.Context, t *tender.Tender) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TenderRepository) Save(ctx context.Context, t *tender.Tender) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TenderRepository) GetByTenderID(ctx context.Context, tenderID string) (*tender.Tender, error) {
	var out tender.Tender
	res := r.db.WithContext(ctx).Where("tender_id = ?", tenderID).First(&out)
	return &out, res.Error
}

// GetByTenderIDForUpdate locks the row (SELECT ... FOR UPDATE); sqlite ignores the clause.
func (r *TenderRepository) GetByTenderIDForUpdate(ctx context.Context, tenderID string) (*tender.Tender, error) {
	var out tender.Tender
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("tender_id = ?", tenderID).
		First(&out)
	return &out, res.Error
}

func (r *TenderRepository) List(ctx context.Context, f tender.Filter) ([]tender.Tender, error) {
	q := r.db.WithContext(ctx).Model(&tender.Tender{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ClientID != "" {
		q = q.Where("client_id = ?", f.ClientID)
	}
	out := []tender.Tender{}
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *TenderRepository) Delete(ctx context.Context, tenderID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("tender_id = ?", tenderID).Delete(&tender.Tender{})
	return res.RowsAffected, res.Error
}
