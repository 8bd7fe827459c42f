package storage

type SongRecord struct {
	GormModel
	SongName string `gorm:"size:128;not null;uniqueIndex"`
	SongLink string `gorm:"size:1024;not null"`
}

func (SongRecord) TableName() string {
	return "songs"
}

// RatingRecord has no uniqueness on (song, user): repeat ratings accumulate.
type RatingRecord struct {
	GormModel
	SongID uint `gorm:"not null;index"`
	UserID uint `gorm:"not null;index"`
	Rating int  `gorm:"not null"`
}

func (RatingRecord) TableName() string {
	return "ratings"
}
