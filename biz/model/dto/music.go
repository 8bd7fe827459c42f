package dto

type Song struct {
	ID       uint   `json:"id"`
	SongName string `json:"song_name"`
	SongLink string `json:"song_link"`
}

type AddSongReq struct {
	SongName string `json:"song_name" validate:"required,max=256"`
	SongLink string `json:"song_link" validate:"required,url,max=1024"`
}

type ListSongResp struct {
	Songs []Song `json:"songs"`
}

type RatingReq struct {
	SongID uint `json:"song_id" validate:"required"`
	Rating int  `json:"rating" validate:"min=1,max=5"`
}

type RatingResp struct {
	ID     uint `json:"id"`
	SongID uint `json:"song_id"`
	Rating int  `json:"rating"`
}
