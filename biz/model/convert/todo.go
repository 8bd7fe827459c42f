package convert

import (
	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/model/storage"
)

func TodoRecordToDomain(m *storage.TodoRecord) *domain.Todo {
	if m == nil {
		return nil
	}
	return &domain.Todo{
		ID:        m.ID,
		Text:      m.Text,
		Complete:  m.Complete,
		OwnerID:   m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

func TodoRecordsToDomain(ms []*storage.TodoRecord) []*domain.Todo {
	out := make([]*domain.Todo, 0, len(ms))
	for _, m := range ms {
		out = append(out, TodoRecordToDomain(m))
	}
	return out
}
