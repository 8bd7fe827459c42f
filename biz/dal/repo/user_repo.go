package repo

import (
	"context"
	"errors"

	"moodmate/be/biz/model/convert"
	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/model/storage"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	m := convert.UserDomainToRecord(u)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return convert.UserRecordToDomain(m), nil
}

func (r *UserRepository) FindByPublicID(ctx context.Context, publicID string) (*domain.User, error) {
	return r.findOne(ctx, "public_id = ?", publicID)
}

func (r *UserRepository) FindByName(ctx context.Context, name string) (*domain.User, error) {
	return r.findOne(ctx, "name = ?", name)
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	var ms []*storage.UserRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}
	return convert.UserRecordsToDomain(ms), nil
}

func (r *UserRepository) CountAdmins(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&storage.UserRecord{}).Where("admin = ?", true).Count(&n).Error
	return n, err
}

// Promote returns false when no user carries publicID.
func (r *UserRepository) Promote(ctx context.Context, publicID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&storage.UserRecord{}).
		Where("public_id = ?", publicID).
		Update("admin", true)
	return res.RowsAffected > 0, res.Error
}

func (r *UserRepository) DeleteByPublicID(ctx context.Context, publicID string) (bool, error) {
	res := r.db.WithContext(ctx).Where("public_id = ?", publicID).Delete(&storage.UserRecord{})
	return res.RowsAffected > 0, res.Error
}

func (r *UserRepository) findOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var m storage.UserRecord
	err := r.db.WithContext(ctx).Where(query, args...).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return convert.UserRecordToDomain(&m), nil
}
