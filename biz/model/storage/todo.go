package storage

type TodoRecord struct {
	GormModel
	Text     string `gorm:"size:256;not null"`
	Complete bool   `gorm:"not null;default:false"`
	UserID   uint   `gorm:"not null;index"`
}

func (TodoRecord) TableName() string {
	return "todos"
}
