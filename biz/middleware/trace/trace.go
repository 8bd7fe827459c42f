package trace

import (
	"context"

	"moodmate/be/biz/util/id_gen"
	"moodmate/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/app"
)

const HeaderLogID = "X-Log-ID"

// New reuses an incoming X-Log-ID or mints one, and echoes it on the response.
func New() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		logID := c.Request.Header.Get(HeaderLogID)
		if logID == "" {
			logID = id_gen.NewLogID()
		}
		c.Header(HeaderLogID, logID)
		c.Next(trace_info.WithLogId(ctx, logID))
	}
}
