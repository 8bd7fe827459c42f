package recovery

import (
	"context"
	"net/http"

	"moodmate/be/biz/model/errs"
	"moodmate/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// New answers a panicking handler with the ServerError envelope.
func New() app.HandlerFunc {
	return recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.CtxErrorf(ctx, "[Recovery] panic recovered: %v\n%s", err, stack)
			resp.AbortWithErr(c, errs.ServerError, http.StatusInternalServerError)
		},
	))
}
