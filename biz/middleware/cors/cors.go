package cors

import (
	"slices"
	"strings"
	"time"

	"moodmate/be/biz/config"
	"moodmate/be/biz/middleware/auth"
	"moodmate/be/biz/middleware/trace"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/cors"
)

var (
	defaultMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	defaultHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With"}
)

func New(corsConf config.CORSConf) app.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     defaultIfEmpty(corsConf.AllowMethods, defaultMethods),
		AllowHeaders:     withHeader(defaultIfEmpty(corsConf.AllowHeaders, defaultHeaders), auth.HeaderAccessToken),
		ExposeHeaders:    []string{trace.HeaderLogID},
		AllowCredentials: corsConf.AllowCredentials,
		MaxAge:           time.Duration(corsConf.MaxAge) * time.Second,
	}

	if cfg.MaxAge <= 0 {
		cfg.MaxAge = 12 * time.Hour
	}

	switch {
	case len(corsConf.AllowOrigins) == 0:
		cfg.AllowOriginFunc = func(origin string) bool { return true }
	case slices.Contains(corsConf.AllowOrigins, "*"):
		// a wildcard cannot be combined with credentials, echo the origin instead
		if corsConf.AllowCredentials {
			cfg.AllowOriginFunc = func(origin string) bool { return true }
		} else {
			cfg.AllowAllOrigins = true
		}
	default:
		cfg.AllowOrigins = corsConf.AllowOrigins
	}

	return cors.New(cfg)
}

func defaultIfEmpty(v, def []string) []string {
	if len(v) == 0 {
		return def
	}
	return v
}

// the gate's token header must always pass preflight
func withHeader(headers []string, h string) []string {
	for _, v := range headers {
		if strings.EqualFold(v, h) {
			return headers
		}
	}
	return append(slices.Clone(headers), h)
}
