package ratelimit

import (
	"context"

	"moodmate/be/biz/config"
	"moodmate/be/biz/model/errs"
	"moodmate/be/biz/util/interceptor"
	"moodmate/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/redis/go-redis/v9"
)

// New limits the configured routes per client ip. Routes without a rule pass
// through untouched.
func New(rdb redis.Scripter, confList []config.RateLimitConf) app.HandlerFunc {
	rules := make(map[string]*interceptor.Interceptor)
	for _, conf := range confList {
		if conf.Path != "" && conf.WindowSeconds > 0 && conf.Limit > 0 {
			rules[conf.Path] = interceptor.NewInterceptor(rdb, conf.WindowSeconds, conf.Limit)
		}
	}

	return func(ctx context.Context, c *app.RequestContext) {
		path := c.FullPath()
		if path == "" {
			path = string(c.Request.URI().Path())
		}

		r, ok := rules[path]
		if !ok {
			c.Next(ctx)
			return
		}

		key := path + ":" + clientIP(c)
		allowed, err := r.Allow(ctx, key)
		if err != nil {
			// fail open
			hlog.CtxErrorf(ctx, "rate limit err for key %s: %v", key, err)
			c.Next(ctx)
			return
		}

		if !allowed {
			hlog.CtxNoticef(ctx, "rate limited: %s", key)
			resp.AbortWithErr(c, errs.TooManyRequest, consts.StatusTooManyRequests)
			return
		}

		c.Next(ctx)
	}
}

func clientIP(c *app.RequestContext) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}
