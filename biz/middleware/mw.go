package middleware

import (
	"moodmate/be/biz/appctx"
	"moodmate/be/biz/middleware/accesslog"
	"moodmate/be/biz/middleware/cors"
	"moodmate/be/biz/middleware/metrics"
	"moodmate/be/biz/middleware/ratelimit"
	"moodmate/be/biz/middleware/recovery"
	"moodmate/be/biz/middleware/trace"

	"github.com/cloudwego/hertz/pkg/app"
)

func Suite(appCtx *appctx.AppContext) []app.HandlerFunc {
	return []app.HandlerFunc{
		recovery.New(),              // panic handler
		trace.New(),                 // 链路ID
		accesslog.New(),             // 接口日志
		cors.New(appCtx.Conf.CORS),  // 跨域请求
		metrics.New(appCtx.Metrics), // 接口指标
		ratelimit.New(appCtx.Redis, appCtx.Conf.RateLimit), // 限流
	}
}
