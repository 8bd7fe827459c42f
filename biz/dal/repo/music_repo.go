package repo

import (
	"context"
	"errors"

	"moodmate/be/biz/model/convert"
	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/model/storage"

	"gorm.io/gorm"
)

type SongRepository struct {
	db *gorm.DB
}

func NewSongRepository(db *gorm.DB) *SongRepository {
	return &SongRepository{db: db}
}

func (r *SongRepository) Create(ctx context.Context, name, link string) (*domain.Song, error) {
	m := &storage.SongRecord{SongName: name, SongLink: link}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return convert.SongRecordToDomain(m), nil
}

func (r *SongRepository) FindByID(ctx context.Context, id uint) (*domain.Song, error) {
	var m storage.SongRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return convert.SongRecordToDomain(&m), nil
}

func (r *SongRepository) List(ctx context.Context) ([]*domain.Song, error) {
	var ms []*storage.SongRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}
	return convert.SongRecordsToDomain(ms), nil
}

type RatingRepository struct {
	store *OwnedStore[storage.RatingRecord]
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{store: NewOwnedStore[storage.RatingRecord](db, "id")}
}

func (r *RatingRepository) Create(ctx context.Context, owner, songID uint, rating int) (*domain.Rating, error) {
	m := &storage.RatingRecord{SongID: songID, UserID: owner, Rating: rating}
	if err := r.store.Create(ctx, m); err != nil {
		return nil, err
	}
	return convert.RatingRecordToDomain(m), nil
}
