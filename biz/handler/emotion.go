package handler

import (
	"context"
	"net/http"

	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/model/dto"
	"moodmate/be/biz/service/emotion"
	"moodmate/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type Emotion struct {
	svc *emotion.Service
}

func NewEmotion(svc *emotion.Service) *Emotion {
	return &Emotion{svc: svc}
}

// Record 情绪识别
//
//	@Tags			emotion
//	@Summary		classify the input and log the emotion
//	@Accept			json
//	@Produce		json
//	@Param			x-access-token	header		string				true	"access token"
//	@Param			req				body		dto.UserInputReq	true	"user input"
//	@Success		200				{object}	dto.CommonResp{data=dto.EmotionResp}
//	@Failure		503				{object}	dto.CommonResp
//	@Router			/emotion [POST]
func (h *Emotion) Record(ctx context.Context, c *app.RequestContext, u *domain.User) {
	var req dto.UserInputReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, resp.BindErr(err), http.StatusBadRequest)
		return
	}

	e, bizErr := h.svc.Record(ctx, u, req.UserInput)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, dto.EmotionResp{PublicID: e.PublicID, UserInputEmotion: string(e.UserEmotion)})
}

// List 情绪记录
//
//	@Tags			emotion
//	@Summary		list own emotion logs
//	@Produce		json
//	@Param			x-access-token	header		string	true	"access token"
//	@Success		200				{object}	dto.CommonResp{data=dto.ListEmotionResp}
//	@Router			/emotions [GET]
func (h *Emotion) List(ctx context.Context, c *app.RequestContext, u *domain.User) {
	logs, bizErr := h.svc.List(ctx, u)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	out := make([]dto.EmotionLog, 0, len(logs))
	for _, e := range logs {
		out = append(out, dto.EmotionLog{
			PublicID:    e.PublicID,
			UserInput:   e.UserInput,
			UserEmotion: string(e.UserEmotion),
			CreatedAt:   e.CreatedAt.Unix(),
		})
	}
	resp.SuccessResp(c, dto.ListEmotionResp{Emotions: out})
}

// Delete 删除情绪记录
//
//	@Tags			emotion
//	@Summary		delete one own emotion log
//	@Produce		json
//	@Param			x-access-token	header		string	true	"access token"
//	@Param			public_id		path		string	true	"emotion public id"
//	@Success		200				{object}	dto.CommonResp{data=dto.MessageResp}
//	@Failure		404				{object}	dto.CommonResp
//	@Router			/emotion/{public_id} [DELETE]
func (h *Emotion) Delete(ctx context.Context, c *app.RequestContext, u *domain.User) {
	var req dto.EmotionIDReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, resp.BindErr(err), http.StatusBadRequest)
		return
	}

	if bizErr := h.svc.Delete(ctx, u, req.PublicID); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, dto.MessageResp{Message: "emotion deleted"})
}

// DeleteAll 清空情绪记录
//
//	@Tags			emotion
//	@Summary		delete all own emotion logs
//	@Produce		json
//	@Param			x-access-token	header		string	true	"access token"
//	@Success		200				{object}	dto.CommonResp{data=dto.DeleteAllResp}
//	@Router			/emotions [DELETE]
func (h *Emotion) DeleteAll(ctx context.Context, c *app.RequestContext, u *domain.User) {
	n, bizErr := h.svc.DeleteAll(ctx, u)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, deleteAllResp(n, "emotions"))
}
