package repo

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"
)

// PageSize is the fixed number of records returned by Page.
const PageSize = 5

const ownerColumn = "user_id"

// maxPageIndex keeps pageIndex*PageSize from overflowing the offset.
const maxPageIndex = math.MaxInt / PageSize

var ErrInvalidPage = errors.New("page index out of range")

// OwnedStore is the record store for kinds that belong to exactly one user.
// Every read, update and delete is filtered by the owner row key, so a caller
// holding another user's record key can neither observe nor remove it.
type OwnedStore[T any] struct {
	db        *gorm.DB
	keyColumn string
}

func NewOwnedStore[T any](db *gorm.DB, keyColumn string) *OwnedStore[T] {
	return &OwnedStore[T]{db: db, keyColumn: keyColumn}
}

func (s *OwnedStore[T]) Create(ctx context.Context, m *T) error {
	return s.db.WithContext(ctx).Create(m).Error
}

func (s *OwnedStore[T]) FindOwned(ctx context.Context, owner uint, key any) (*T, error) {
	var m T
	err := s.db.WithContext(ctx).
		Where(s.keyColumn+" = ? AND "+ownerColumn+" = ?", key, owner).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *OwnedStore[T]) ListByOwner(ctx context.Context, owner uint) ([]*T, error) {
	var ms []*T
	err := s.db.WithContext(ctx).
		Where(ownerColumn+" = ?", owner).
		Order("id").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return ms, nil
}

// Page returns at most PageSize records starting at pageIndex*PageSize.
func (s *OwnedStore[T]) Page(ctx context.Context, owner uint, pageIndex int) ([]*T, error) {
	if pageIndex < 0 || pageIndex > maxPageIndex {
		return nil, ErrInvalidPage
	}
	var ms []*T
	err := s.db.WithContext(ctx).
		Where(ownerColumn+" = ?", owner).
		Order("id").
		Limit(PageSize).
		Offset(pageIndex * PageSize).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return ms, nil
}

func (s *OwnedStore[T]) UpdateOwned(ctx context.Context, owner uint, key any, updates map[string]any) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(new(T)).
		Where(s.keyColumn+" = ? AND "+ownerColumn+" = ?", key, owner).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (s *OwnedStore[T]) DeleteOwned(ctx context.Context, owner uint, key any) (int64, error) {
	res := s.db.WithContext(ctx).
		Where(s.keyColumn+" = ? AND "+ownerColumn+" = ?", key, owner).
		Delete(new(T))
	return res.RowsAffected, res.Error
}

// DeleteAllByOwner removes every record of the owner in one statement, so a
// failure leaves the set untouched rather than partially deleted.
func (s *OwnedStore[T]) DeleteAllByOwner(ctx context.Context, owner uint) (int64, error) {
	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where(ownerColumn+" = ?", owner).Delete(new(T))
		if res.Error != nil {
			return fmt.Errorf("bulk delete: %w", res.Error)
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
