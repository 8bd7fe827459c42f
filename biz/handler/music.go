package handler

import (
	"context"
	"net/http"

	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/model/dto"
	"moodmate/be/biz/service/music"
	"moodmate/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type Music struct {
	svc *music.Service
}

func NewMusic(svc *music.Service) *Music {
	return &Music{svc: svc}
}

// AddSong 添加歌曲
//
//	@Tags			music
//	@Summary		add a song to the catalog (admin)
//	@Accept			json
//	@Produce		json
//	@Param			x-access-token	header		string			true	"access token"
//	@Param			req				body		dto.AddSongReq	true	"song"
//	@Success		200				{object}	dto.CommonResp{data=dto.Song}
//	@Failure		409				{object}	dto.CommonResp
//	@Router			/add-music [POST]
func (h *Music) AddSong(ctx context.Context, c *app.RequestContext, _ *domain.User) {
	var req dto.AddSongReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, resp.BindErr(err), http.StatusBadRequest)
		return
	}

	s, bizErr := h.svc.AddSong(ctx, req.SongName, req.SongLink)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, dto.Song{ID: s.ID, SongName: s.Name, SongLink: s.Link})
}

// ListSongs 歌曲列表
//
//	@Tags			music
//	@Summary		list the song catalog
//	@Produce		json
//	@Param			x-access-token	header		string	true	"access token"
//	@Success		200				{object}	dto.CommonResp{data=dto.ListSongResp}
//	@Router			/songs [GET]
func (h *Music) ListSongs(ctx context.Context, c *app.RequestContext, _ *domain.User) {
	songs, bizErr := h.svc.ListSongs(ctx)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	out := make([]dto.Song, 0, len(songs))
	for _, s := range songs {
		out = append(out, dto.Song{ID: s.ID, SongName: s.Name, SongLink: s.Link})
	}
	resp.SuccessResp(c, dto.ListSongResp{Songs: out})
}

// Rate 歌曲评分
//
//	@Tags			music
//	@Summary		rate a song from 1 to 5
//	@Accept			json
//	@Produce		json
//	@Param			x-access-token	header		string			true	"access token"
//	@Param			req				body		dto.RatingReq	true	"rating"
//	@Success		200				{object}	dto.CommonResp{data=dto.RatingResp}
//	@Failure		404				{object}	dto.CommonResp
//	@Router			/rating [POST]
func (h *Music) Rate(ctx context.Context, c *app.RequestContext, u *domain.User) {
	var req dto.RatingReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, resp.BindErr(err), http.StatusBadRequest)
		return
	}

	r, bizErr := h.svc.Rate(ctx, u, req.SongID, req.Rating)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, dto.RatingResp{ID: r.ID, SongID: r.SongID, Rating: r.Rating})
}
