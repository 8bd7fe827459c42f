package repo

import (
	"context"

	"moodmate/be/biz/model/convert"
	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/model/storage"

	"gorm.io/gorm"
)

type ConversationRepository struct {
	store *OwnedStore[storage.ConversationRecord]
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{store: NewOwnedStore[storage.ConversationRecord](db, "public_id")}
}

func (r *ConversationRepository) Create(ctx context.Context, c *domain.Conversation) error {
	return r.store.Create(ctx, convert.ConversationDomainToRecord(c))
}

func (r *ConversationRepository) Find(ctx context.Context, owner uint, publicID string) (*domain.Conversation, error) {
	m, err := r.store.FindOwned(ctx, owner, publicID)
	if err != nil {
		return nil, err
	}
	return convert.ConversationRecordToDomain(m), nil
}

func (r *ConversationRepository) List(ctx context.Context, owner uint) ([]*domain.Conversation, error) {
	ms, err := r.store.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	return convert.ConversationRecordsToDomain(ms), nil
}

func (r *ConversationRepository) Page(ctx context.Context, owner uint, pageIndex int) ([]*domain.Conversation, error) {
	ms, err := r.store.Page(ctx, owner, pageIndex)
	if err != nil {
		return nil, err
	}
	return convert.ConversationRecordsToDomain(ms), nil
}

func (r *ConversationRepository) Delete(ctx context.Context, owner uint, publicID string) (bool, error) {
	n, err := r.store.DeleteOwned(ctx, owner, publicID)
	return n > 0, err
}

func (r *ConversationRepository) DeleteAll(ctx context.Context, owner uint) (int64, error) {
	return r.store.DeleteAllByOwner(ctx, owner)
}

type EmotionRepository struct {
	store *OwnedStore[storage.EmotionRecord]
}

func NewEmotionRepository(db *gorm.DB) *EmotionRepository {
	return &EmotionRepository{store: NewOwnedStore[storage.EmotionRecord](db, "public_id")}
}

func (r *EmotionRepository) Create(ctx context.Context, e *domain.EmotionLog) error {
	return r.store.Create(ctx, convert.EmotionDomainToRecord(e))
}

func (r *EmotionRepository) List(ctx context.Context, owner uint) ([]*domain.EmotionLog, error) {
	ms, err := r.store.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	return convert.EmotionRecordsToDomain(ms), nil
}

func (r *EmotionRepository) Delete(ctx context.Context, owner uint, publicID string) (bool, error) {
	n, err := r.store.DeleteOwned(ctx, owner, publicID)
	return n > 0, err
}

func (r *EmotionRepository) DeleteAll(ctx context.Context, owner uint) (int64, error) {
	return r.store.DeleteAllByOwner(ctx, owner)
}
