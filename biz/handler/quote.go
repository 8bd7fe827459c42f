package handler

import (
	"context"

	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/model/dto"
	"moodmate/be/biz/service/quote"
	"moodmate/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
)

type Quote struct {
	svc *quote.Service
}

func NewQuote(svc *quote.Service) *Quote {
	return &Quote{svc: svc}
}

// Today 每日一句
//
//	@Tags			quote
//	@Summary		quote of the day
//	@Produce		json
//	@Param			x-access-token	header		string	true	"access token"
//	@Success		200				{object}	dto.CommonResp{data=dto.QuoteResp}
//	@Failure		503				{object}	dto.CommonResp
//	@Router			/quotes [GET]
func (h *Quote) Today(ctx context.Context, c *app.RequestContext, _ *domain.User) {
	q, bizErr := h.svc.Today(ctx)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, dto.QuoteResp{Quote: q.Text, Author: q.Author})
}
