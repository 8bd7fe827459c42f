package auth

import (
	"context"
	"net/http"

	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/model/errs"
	"moodmate/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// AdminOnly lets only administrators through to h.
func AdminOnly(h AuthedHandler) AuthedHandler {
	return requireRole(domain.RoleAdmin, h)
}

// StandardOnly lets only standard users through to h. Administrators manage
// identities and do not own personal records.
func StandardOnly(h AuthedHandler) AuthedHandler {
	return requireRole(domain.RoleStandard, h)
}

func AnyRole(h AuthedHandler) AuthedHandler {
	return h
}

func requireRole(role domain.Role, h AuthedHandler) AuthedHandler {
	msg := errs.PolicyViolation.Msg() + ", " + string(role) + " role required"
	return func(ctx context.Context, c *app.RequestContext, u *domain.User) {
		if u.Role() != role {
			hlog.CtxInfof(ctx, "policy violation: %s user %s on %s", u.Role(), u.PublicID, c.FullPath())
			resp.AbortWithErr(c, errs.PolicyViolation.SetMsg(msg), http.StatusForbidden)
			return
		}
		h(ctx, c, u)
	}
}
