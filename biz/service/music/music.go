package music

import (
	"context"

	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type songStore interface {
	Create(ctx context.Context, name, link string) (*domain.Song, error)
	FindByID(ctx context.Context, id uint) (*domain.Song, error)
	List(ctx context.Context) ([]*domain.Song, error)
}

type ratingStore interface {
	Create(ctx context.Context, owner, songID uint, rating int) (*domain.Rating, error)
}

type Service struct {
	songs   songStore
	ratings ratingStore
}

func New(songs songStore, ratings ratingStore) *Service {
	return &Service{songs: songs, ratings: ratings}
}

func (s *Service) AddSong(ctx context.Context, name, link string) (*domain.Song, errs.Error) {
	song, err := s.songs.Create(ctx, name, link)
	if err != nil {
		if errs.IsDuplicatedErr(err) {
			return nil, errs.SongDuplicated
		}
		hlog.CtxErrorf(ctx, "create song err: %v", err)
		return nil, errs.ServerError
	}
	return song, nil
}

func (s *Service) ListSongs(ctx context.Context) ([]*domain.Song, errs.Error) {
	songs, err := s.songs.List(ctx)
	if err != nil {
		hlog.CtxErrorf(ctx, "list songs err: %v", err)
		return nil, errs.ServerError
	}
	return songs, nil
}

// Rate stores one more rating of the song by owner. Earlier ratings are kept.
func (s *Service) Rate(ctx context.Context, owner *domain.User, songID uint, rating int) (*domain.Rating, errs.Error) {
	song, err := s.songs.FindByID(ctx, songID)
	if err != nil {
		hlog.CtxErrorf(ctx, "find song %d err: %v", songID, err)
		return nil, errs.ServerError
	}
	if song == nil {
		return nil, errs.SongNotFound
	}

	r, err := s.ratings.Create(ctx, owner.ID, song.ID, rating)
	if err != nil {
		hlog.CtxErrorf(ctx, "create rating err: %v", err)
		return nil, errs.ServerError
	}
	return r, nil
}
