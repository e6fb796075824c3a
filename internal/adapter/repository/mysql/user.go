package mysql

import (
	"context"

	"tender-crm-backend/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*user.User, error) {
	var out user.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *UserRepository) List(ctx context.Context, departmentID string) ([]user.User, error) {
	q := r.db.WithContext(ctx).Model(&user.User{})
	if departmentID != "" {
		q = q.Where("department_id = ?", departmentID)
	}
	out := []user.User{}
	res := q.Order("username ASC").Find(&out)
	return out, res.Error
}

func (r *UserRepository) Delete(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&user.User{})
	return res.RowsAffected, res.Error
}
