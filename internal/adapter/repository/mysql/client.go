package mysql

import (
	"context"

	"tender-crm-backend/internal/domain/client"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClientRepository struct{ db *gorm.DB }

func NewClientRepository(db *gorm.DB) *ClientRepository { return &ClientRepository{db: db} }

func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientRepository) Save(ctx context.Context, c *client.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClientRepository) GetByClientID(ctx context.Context, clientID string) (*client.Client, error) {
	var out client.Client
	res := r.db.WithContext(ctx).Where("client_id = ?", clientID).First(&out)
	return &out, res.Error
}

func (r *ClientRepository) GetByClientIDForUpdate(ctx context.Context, clientID string) (*client.Client, error) {
	var out client.Client
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("client_id = ?", clientID).
		First(&out)
	return &out, res.Error
}

func (r *ClientRepository) List(ctx context.Context, status client.Status) ([]client.Client, error) {
	q := r.db.WithContext(ctx).Model(&client.Client{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	out := []client.Client{}
	res := q.Order("name ASC").Find(&out)
	return out, res.Error
}

func (r *ClientRepository) Delete(ctx context.Context, clientID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("client_id = ?", clientID).Delete(&client.Client{})
	return res.RowsAffected, res.Error
}
