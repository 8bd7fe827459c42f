package auth

import (
	"context"
	"net/http"

	"moodmate/be/biz/middleware/jwt"
	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/model/errs"
	"moodmate/be/biz/util/resp"
	"moodmate/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const HeaderAccessToken = "x-access-token"

// AuthedHandler is a handler that runs on behalf of a verified identity.
type AuthedHandler func(ctx context.Context, c *app.RequestContext, u *domain.User)

type Verifier interface {
	Verify(token string) jwt.Verification
}

type IdentityFinder interface {
	FindByPublicID(ctx context.Context, publicID string) (*domain.User, error)
}

type Gate struct {
	tokens Verifier
	users  IdentityFinder
}

func NewGate(tokens Verifier, users IdentityFinder) *Gate {
	return &Gate{tokens: tokens, users: users}
}

// Protect resolves the caller from the access token header before h runs.
// Every rejection answers 401 with the same message and h is never invoked.
func (g *Gate) Protect(h AuthedHandler) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		v := g.tokens.Verify(c.Request.Header.Get(HeaderAccessToken))
		if !v.Valid() {
			hlog.CtxInfof(ctx, "authorization failed, token %s", v.Status)
			resp.AbortWithErr(c, errs.Unauthorized, http.StatusUnauthorized)
			return
		}

		u, err := g.users.FindByPublicID(ctx, v.Subject)
		if err != nil {
			hlog.CtxErrorf(ctx, "find identity %s err: %v", v.Subject, err)
			resp.AbortWithErr(c, errs.ServerError, http.StatusInternalServerError)
			return
		}
		if u == nil {
			hlog.CtxInfof(ctx, "authorization failed, identity %s no longer exists", v.Subject)
			resp.AbortWithErr(c, errs.Unauthorized, http.StatusUnauthorized)
			return
		}

		h(trace_info.WithUserId(ctx, u.PublicID), c, u)
	}
}
