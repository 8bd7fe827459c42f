package handler

import (
	"context"

	"moodmate/be/biz/model/dto"
	"moodmate/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
)

// Ping 健康检查
//
//	@Tags			system
//	@Summary		health check
//	@Produce		json
//	@Success		200	{object}	dto.CommonResp{data=dto.MessageResp}
//	@Router			/ping [GET]
func Ping(ctx context.Context, c *app.RequestContext) {
	resp.SuccessResp(c, dto.MessageResp{Message: "pong"})
}
