package convert

import (
	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/model/storage"
)

func SongRecordToDomain(m *storage.SongRecord) *domain.Song {
	if m == nil {
		return nil
	}
	return &domain.Song{ID: m.ID, Name: m.SongName, Link: m.SongLink}
}

func SongRecordsToDomain(ms []*storage.SongRecord) []*domain.Song {
	out := make([]*domain.Song, 0, len(ms))
	for _, m := range ms {
		out = append(out, SongRecordToDomain(m))
	}
	return out
}

func RatingRecordToDomain(m *storage.RatingRecord) *domain.Rating {
	if m == nil {
		return nil
	}
	return &domain.Rating{ID: m.ID, SongID: m.SongID, OwnerID: m.UserID, Rating: m.Rating}
}
