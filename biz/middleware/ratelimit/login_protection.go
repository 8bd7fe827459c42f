package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"moodmate/be/biz/config"
	"moodmate/be/biz/model/errs"
	"moodmate/be/biz/util/interceptor"
	"moodmate/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
	"github.com/tidwall/gjson"
)

const (
	keyLoginBlockHour   = "login_block_h:"
	keyLoginBlockMinute = "login_block_m:"
	keyLoginFailLvl     = "login_fail_level:"
	keyLoginFail        = "login_fail:"
)

type loginProtection struct {
	rdb       redis.Cmdable
	failures  *interceptor.Interceptor
	blockMin  time.Duration
	blockHour time.Duration
	failLvl   time.Duration
}

// NewLoginProtection blocks a client ip after repeated failed logins. The
// first trip blocks for minutes; tripping again while the level key lives
// blocks for hours.
func NewLoginProtection(rdb redis.Cmdable, conf config.LoginProtectionConf) app.HandlerFunc {
	window := conf.WindowSeconds
	if window <= 0 {
		window = 300
	}

	limit := conf.Limit
	if limit <= 0 {
		limit = 3
	}

	p := &loginProtection{
		rdb: rdb,
		// the interceptor denies when count > limit; block on the limit-th failure
		failures:  interceptor.NewInterceptor(rdb, window, int64(limit-1)),
		blockMin:  durationOr(conf.BlockMinDuration, time.Minute, 5*time.Minute),
		blockHour: durationOr(conf.BlockHourDuration, time.Hour, 24*time.Hour),
		failLvl:   durationOr(conf.LevelDuration, time.Second, 30*time.Minute),
	}
	return p.handle
}

func durationOr(n int, unit, def time.Duration) time.Duration {
	if n <= 0 {
		return def
	}
	return time.Duration(n) * unit
}

func (p *loginProtection) handle(ctx context.Context, c *app.RequestContext) {
	ip := clientIP(c)

	// 先校验小时拦截策略
	if p.blocked(ctx, keyLoginBlockHour+ip) {
		resp.AbortWithErr(c, errs.RequestBlocked.SetMsg(
			fmt.Sprintf("too many login failures, please try again after %v hours", p.blockHour.Hours())),
			http.StatusForbidden)
		return
	}

	// 再校验分钟拦截策略
	if p.blocked(ctx, keyLoginBlockMinute+ip) {
		resp.AbortWithErr(c, errs.RequestBlocked.SetMsg(
			fmt.Sprintf("too many login failures, please try again after %v minutes", p.blockMin.Minutes())),
			http.StatusForbidden)
		return
	}

	c.Next(ctx)

	body := c.Response.Body()
	if !gjson.ValidBytes(body) {
		hlog.CtxWarnf(ctx, "login protection: response body is not json")
		return
	}
	result := gjson.ParseBytes(body)
	if result.Get("success").Bool() || int32(result.Get("code").Int()) != errs.LoginFailed.Code() {
		return
	}

	allowed, err := p.failures.Allow(ctx, keyLoginFail+ip)
	if err != nil {
		hlog.CtxErrorf(ctx, "login failure counter err: %v", err)
		return
	}
	if allowed {
		return
	}

	lvl, _ := p.rdb.Exists(ctx, keyLoginFailLvl+ip).Result()
	if lvl > 0 {
		if err := p.rdb.Set(ctx, interceptor.KeyPrefix+keyLoginBlockHour+ip, "1", p.blockHour).Err(); err != nil {
			hlog.CtxErrorf(ctx, "set login block key err: %v", err)
		}
		hlog.CtxInfof(ctx, "login protection: ip %s blocked for %v (level 2)", ip, p.blockHour)
		return
	}

	pipe := p.rdb.Pipeline()
	pipe.Set(ctx, interceptor.KeyPrefix+keyLoginBlockMinute+ip, "1", p.blockMin)
	pipe.Set(ctx, keyLoginFailLvl+ip, "1", p.failLvl)
	if _, err := pipe.Exec(ctx); err != nil {
		hlog.CtxErrorf(ctx, "set login block keys err: %v", err)
	}
	hlog.CtxInfof(ctx, "login protection: ip %s blocked for %v (level 1)", ip, p.blockMin)
}

func (p *loginProtection) blocked(ctx context.Context, key string) bool {
	n, err := p.rdb.Exists(ctx, interceptor.KeyPrefix+key).Result()
	if err != nil {
		hlog.CtxWarnf(ctx, "check login block err: %v", err)
		return false
	}
	return n > 0
}
