package storage

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

type GormModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt soft_delete.DeletedAt
}

// Models lists every table the service owns, in migration order.
func Models() []any {
	return []any{
		&UserRecord{},
		&TodoRecord{},
		&ConversationRecord{},
		&EmotionRecord{},
		&SongRecord{},
		&RatingRecord{},
	}
}
