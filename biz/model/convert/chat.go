package convert

import (
	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/model/storage"
)

func ConversationDomainToRecord(c *domain.Conversation) *storage.ConversationRecord {
	if c == nil {
		return nil
	}
	return &storage.ConversationRecord{
		PublicID:        c.PublicID,
		UserSentence:    c.UserSentence,
		ChatbotSentence: c.ChatbotSentence,
		UserEmotion:     string(c.UserEmotion),
		UserID:          c.OwnerID,
	}
}

func ConversationRecordToDomain(m *storage.ConversationRecord) *domain.Conversation {
	if m == nil {
		return nil
	}
	return &domain.Conversation{
		PublicID:        m.PublicID,
		OwnerID:         m.UserID,
		UserSentence:    m.UserSentence,
		ChatbotSentence: m.ChatbotSentence,
		UserEmotion:     domain.Emotion(m.UserEmotion),
		CreatedAt:       m.CreatedAt,
	}
}

func ConversationRecordsToDomain(ms []*storage.ConversationRecord) []*domain.Conversation {
	out := make([]*domain.Conversation, 0, len(ms))
	for _, m := range ms {
		out = append(out, ConversationRecordToDomain(m))
	}
	return out
}

func EmotionDomainToRecord(e *domain.EmotionLog) *storage.EmotionRecord {
	if e == nil {
		return nil
	}
	return &storage.EmotionRecord{
		PublicID:    e.PublicID,
		UserInput:   e.UserInput,
		UserEmotion: string(e.UserEmotion),
		UserID:      e.OwnerID,
	}
}

func EmotionRecordToDomain(m *storage.EmotionRecord) *domain.EmotionLog {
	if m == nil {
		return nil
	}
	return &domain.EmotionLog{
		PublicID:    m.PublicID,
		OwnerID:     m.UserID,
		UserInput:   m.UserInput,
		UserEmotion: domain.Emotion(m.UserEmotion),
		CreatedAt:   m.CreatedAt,
	}
}

func EmotionRecordsToDomain(ms []*storage.EmotionRecord) []*domain.EmotionLog {
	out := make([]*domain.EmotionLog, 0, len(ms))
	for _, m := range ms {
		out = append(out, EmotionRecordToDomain(m))
	}
	return out
}
