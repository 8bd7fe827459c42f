package storage

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

// UserRecord keeps name unique among live rows only. deleted_at stays 0 until
// the row is soft deleted, after which the name can be registered again.
type UserRecord struct {
	ID           uint `gorm:"primarykey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    soft_delete.DeletedAt `gorm:"uniqueIndex:idx_users_name_alive,priority:2"`
	PublicID     string                `gorm:"size:64;not null;uniqueIndex"`                                 // 对外暴露的用户标识
	Name         string                `gorm:"size:64;not null;uniqueIndex:idx_users_name_alive,priority:1"` // 登录名
	PasswordHash string                `gorm:"size:128;not null"`
	Admin        bool                  `gorm:"not null;default:false"`
}

func (UserRecord) TableName() string {
	return "users"
}
