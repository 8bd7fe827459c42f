package storage

type ConversationRecord struct {
	GormModel
	PublicID        string `gorm:"size:64;not null;uniqueIndex"`
	UserSentence    string `gorm:"size:1024;not null"`
	ChatbotSentence string `gorm:"size:2048;not null"`
	UserEmotion     string `gorm:"size:16;not null"`
	UserID          uint   `gorm:"not null;index"`
}

func (ConversationRecord) TableName() string {
	return "conversations"
}

type EmotionRecord struct {
	GormModel
	PublicID    string `gorm:"size:64;not null;uniqueIndex"`
	UserInput   string `gorm:"size:1024;not null"`
	UserEmotion string `gorm:"size:16;not null"`
	UserID      uint   `gorm:"not null;index"`
}

func (EmotionRecord) TableName() string {
	return "emotions"
}
