package domain

import "time"

type Todo struct {
	ID        uint
	Text      string
	Complete  bool
	OwnerID   uint
	CreatedAt time.Time
}
