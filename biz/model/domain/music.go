package domain

type Song struct {
	ID   uint
	Name string
	Link string
}

type Rating struct {
	ID      uint
	SongID  uint
	OwnerID uint
	Rating  int
}
