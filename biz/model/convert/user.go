package convert

import (
	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/model/storage"
)

func UserDomainToRecord(u *domain.User) *storage.UserRecord {
	if u == nil {
		return nil
	}
	return &storage.UserRecord{
		ID:           u.ID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		PublicID:     u.PublicID,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Admin:        u.Admin,
	}
}

func UserRecordToDomain(m *storage.UserRecord) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:           m.ID,
		PublicID:     m.PublicID,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Admin:        m.Admin,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func UserRecordsToDomain(ms []*storage.UserRecord) []*domain.User {
	out := make([]*domain.User, 0, len(ms))
	for _, m := range ms {
		out = append(out, UserRecordToDomain(m))
	}
	return out
}
