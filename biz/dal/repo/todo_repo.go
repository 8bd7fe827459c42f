package repo

import (
	"context"

	"moodmate/be/biz/model/convert"
	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/model/storage"

	"gorm.io/gorm"
)

type TodoRepository struct {
	store *OwnedStore[storage.TodoRecord]
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{store: NewOwnedStore[storage.TodoRecord](db, "id")}
}

func (r *TodoRepository) Create(ctx context.Context, owner uint, text string) (*domain.Todo, error) {
	m := &storage.TodoRecord{Text: text, UserID: owner}
	if err := r.store.Create(ctx, m); err != nil {
		return nil, err
	}
	return convert.TodoRecordToDomain(m), nil
}

func (r *TodoRepository) Find(ctx context.Context, owner, id uint) (*domain.Todo, error) {
	m, err := r.store.FindOwned(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	return convert.TodoRecordToDomain(m), nil
}

func (r *TodoRepository) List(ctx context.Context, owner uint) ([]*domain.Todo, error) {
	ms, err := r.store.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	return convert.TodoRecordsToDomain(ms), nil
}

func (r *TodoRepository) MarkComplete(ctx context.Context, owner, id uint) (bool, error) {
	n, err := r.store.UpdateOwned(ctx, owner, id, map[string]any{"complete": true})
	return n > 0, err
}

func (r *TodoRepository) Delete(ctx context.Context, owner, id uint) (bool, error) {
	n, err := r.store.DeleteOwned(ctx, owner, id)
	return n > 0, err
}
