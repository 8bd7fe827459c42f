package handler

import (
	"context"
	"net/http"

	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/model/dto"
	"moodmate/be/biz/service/chat"
	"moodmate/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type Chat struct {
	svc *chat.Service
}

func NewChat(svc *chat.Service) *Chat {
	return &Chat{svc: svc}
}

// Converse 对话
//
//	@Tags			chat
//	@Summary		classify the input, ask the chatbot and keep the exchange
//	@Accept			json
//	@Produce		json
//	@Param			x-access-token	header		string				true	"access token"
//	@Param			req				body		dto.UserInputReq	true	"user input"
//	@Success		200				{object}	dto.CommonResp{data=dto.ChatResp}
//	@Failure		503				{object}	dto.CommonResp
//	@Router			/chat [POST]
func (h *Chat) Converse(ctx context.Context, c *app.RequestContext, u *domain.User) {
	var req dto.UserInputReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, resp.BindErr(err), http.StatusBadRequest)
		return
	}

	res, bizErr := h.svc.Converse(ctx, u, req.UserInput)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, dto.ChatResp{
		ChatBotResponse:  res.ChatbotResponse,
		UserInputEmotion: string(res.UserEmotion),
	})
}

// List 对话记录
//
//	@Tags			chat
//	@Summary		list own conversations
//	@Produce		json
//	@Param			x-access-token	header		string	true	"access token"
//	@Success		200				{object}	dto.CommonResp{data=dto.ListConversationResp}
//	@Router			/chat [GET]
func (h *Chat) List(ctx context.Context, c *app.RequestContext, u *domain.User) {
	convs, bizErr := h.svc.List(ctx, u)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, dto.ListConversationResp{Conversations: toConversationDTOs(convs)})
}

// Page 分页对话记录
//
//	@Tags			chat
//	@Summary		one page (five rows) of own conversations
//	@Produce		json
//	@Param			x-access-token	header		string	true	"access token"
//	@Param			page			path		int		true	"zero based page index"
//	@Success		200				{object}	dto.CommonResp{data=dto.ListConversationResp}
//	@Failure		400				{object}	dto.CommonResp
//	@Router			/chat/sequential/{page} [GET]
func (h *Chat) Page(ctx context.Context, c *app.RequestContext, u *domain.User) {
	var req dto.PageReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, resp.BindErr(err), http.StatusBadRequest)
		return
	}

	convs, bizErr := h.svc.Page(ctx, u, req.Page)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, dto.ListConversationResp{Conversations: toConversationDTOs(convs)})
}

// Delete 删除单条对话
//
//	@Tags			chat
//	@Summary		delete one own conversation
//	@Produce		json
//	@Param			x-access-token	header		string	true	"access token"
//	@Param			public_id		path		string	true	"conversation public id"
//	@Success		200				{object}	dto.CommonResp{data=dto.MessageResp}
//	@Failure		404				{object}	dto.CommonResp
//	@Router			/chat/conversation/{public_id} [DELETE]
func (h *Chat) Delete(ctx context.Context, c *app.RequestContext, u *domain.User) {
	var req dto.ConversationIDReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, resp.BindErr(err), http.StatusBadRequest)
		return
	}

	if bizErr := h.svc.Delete(ctx, u, req.PublicID); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, dto.MessageResp{Message: "conversation deleted"})
}

// DeleteAll 清空对话
//
//	@Tags			chat
//	@Summary		delete all own conversations
//	@Produce		json
//	@Param			x-access-token	header		string	true	"access token"
//	@Success		200				{object}	dto.CommonResp{data=dto.DeleteAllResp}
//	@Router			/chat [DELETE]
func (h *Chat) DeleteAll(ctx context.Context, c *app.RequestContext, u *domain.User) {
	n, bizErr := h.svc.DeleteAll(ctx, u)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, deleteAllResp(n, "conversations"))
}

// DeleteAllOf 清空指定用户对话
//
//	@Tags			chat
//	@Summary		delete all conversations of a user (admin)
//	@Produce		json
//	@Param			x-access-token	header		string	true	"access token"
//	@Param			user_public_id	path		string	true	"user public id"
//	@Success		200				{object}	dto.CommonResp{data=dto.DeleteAllResp}
//	@Failure		404				{object}	dto.CommonResp
//	@Router			/chat/{user_public_id} [DELETE]
func (h *Chat) DeleteAllOf(ctx context.Context, c *app.RequestContext, _ *domain.User) {
	var req dto.UserPublicIDReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, resp.BindErr(err), http.StatusBadRequest)
		return
	}

	n, bizErr := h.svc.DeleteAllOf(ctx, req.UserPublicID)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, deleteAllResp(n, "conversations"))
}

func deleteAllResp(n int64, kind string) dto.DeleteAllResp {
	if n == 0 {
		return dto.DeleteAllResp{Deleted: 0, Message: "no " + kind + " to delete"}
	}
	return dto.DeleteAllResp{Deleted: n, Message: "all " + kind + " deleted"}
}

func toConversationDTOs(convs []*domain.Conversation) []dto.Conversation {
	out := make([]dto.Conversation, 0, len(convs))
	for _, cv := range convs {
		out = append(out, dto.Conversation{
			PublicID:        cv.PublicID,
			UserSentence:    cv.UserSentence,
			ChatbotSentence: cv.ChatbotSentence,
			UserEmotion:     string(cv.UserEmotion),
			CreatedAt:       cv.CreatedAt.Unix(),
		})
	}
	return out
}
