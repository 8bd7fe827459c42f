package handler

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"moodmate/be/biz/middleware/jwt"
	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/model/dto"
	"moodmate/be/biz/model/errs"
	"moodmate/be/biz/service/user"
	"moodmate/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const basicRealm = `Basic realm="Login required!"`

type User struct {
	svc   *user.Service
	creds *jwt.Service
}

func NewUser(svc *user.Service, creds *jwt.Service) *User {
	return &User{svc: svc, creds: creds}
}

// Login 用户登录接口
//
//	@Tags			user
//	@Summary		exchange HTTP Basic credentials for an access token
//	@Produce		json
//	@Param			Authorization	header		string	true	"Basic credentials"
//	@Success		200				{object}	dto.CommonResp{data=dto.LoginResp}
//	@Failure		401				{object}	dto.CommonResp
//	@Router			/login [GET]
func (h *User) Login(ctx context.Context, c *app.RequestContext) {
	name, password, ok := basicAuth(c)
	if !ok {
		hlog.CtxNoticef(ctx, "login without basic credentials")
		c.Header("WWW-Authenticate", basicRealm)
		resp.FailResp(c, errs.LoginFailed)
		return
	}

	u, bizErr := h.svc.Login(ctx, name, password)
	if bizErr != nil {
		if errs.ErrorEqual(bizErr, errs.LoginFailed) {
			c.Header("WWW-Authenticate", basicRealm)
		}
		resp.FailResp(c, bizErr)
		return
	}

	tok, err := h.creds.Issue(u.PublicID)
	if err != nil {
		hlog.CtxErrorf(ctx, "issue token err: %v", err)
		resp.FailResp(c, errs.ServerError)
		return
	}

	resp.SuccessResp(c, dto.LoginResp{Token: tok.Value, ExpiresAt: tok.ExpiresAt})
}

// List 用户列表
//
//	@Tags			user
//	@Summary		list all users (admin)
//	@Produce		json
//	@Param			x-access-token	header		string	true	"access token"
//	@Success		200				{object}	dto.CommonResp{data=dto.ListUserResp}
//	@Router			/user [GET]
func (h *User) List(ctx context.Context, c *app.RequestContext, _ *domain.User) {
	users, bizErr := h.svc.List(ctx)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	out := make([]dto.User, 0, len(users))
	for _, u := range users {
		out = append(out, toUserDTO(u))
	}
	resp.SuccessResp(c, dto.ListUserResp{Users: out})
}

// Get 用户详情
//
//	@Tags			user
//	@Summary		get one user (admin)
//	@Produce		json
//	@Param			x-access-token	header		string	true	"access token"
//	@Param			public_id		path		string	true	"user public id"
//	@Success		200				{object}	dto.CommonResp{data=dto.GetUserResp}
//	@Failure		404				{object}	dto.CommonResp
//	@Router			/user/{public_id} [GET]
func (h *User) Get(ctx context.Context, c *app.RequestContext, _ *domain.User) {
	var req dto.PublicIDReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, resp.BindErr(err), http.StatusBadRequest)
		return
	}

	u, bizErr := h.svc.Get(ctx, req.PublicID)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, dto.GetUserResp{User: toUserDTO(u)})
}

// Create 创建用户
//
//	@Tags			user
//	@Summary		create a standard user (admin)
//	@Accept			json
//	@Produce		json
//	@Param			x-access-token	header		string				true	"access token"
//	@Param			req				body		dto.CreateUserReq	true	"new user"
//	@Success		200				{object}	dto.CommonResp{data=dto.CreateUserResp}
//	@Failure		409				{object}	dto.CommonResp
//	@Router			/user [POST]
func (h *User) Create(ctx context.Context, c *app.RequestContext, _ *domain.User) {
	var req dto.CreateUserReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, resp.BindErr(err), http.StatusBadRequest)
		return
	}

	u, bizErr := h.svc.Create(ctx, req.Name, req.Password)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, dto.CreateUserResp{User: toUserDTO(u)})
}

// Promote 提升为管理员
//
//	@Tags			user
//	@Summary		promote a user to admin (admin)
//	@Produce		json
//	@Param			x-access-token	header		string	true	"access token"
//	@Param			public_id		path		string	true	"user public id"
//	@Success		200				{object}	dto.CommonResp{data=dto.MessageResp}
//	@Router			/user/{public_id} [PUT]
func (h *User) Promote(ctx context.Context, c *app.RequestContext, _ *domain.User) {
	var req dto.PublicIDReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, resp.BindErr(err), http.StatusBadRequest)
		return
	}

	if bizErr := h.svc.Promote(ctx, req.PublicID); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, dto.MessageResp{Message: "the user has been promoted"})
}

// Delete 删除用户
//
//	@Tags			user
//	@Summary		delete a user (admin)
//	@Produce		json
//	@Param			x-access-token	header		string	true	"access token"
//	@Param			public_id		path		string	true	"user public id"
//	@Success		200				{object}	dto.CommonResp{data=dto.MessageResp}
//	@Router			/user/{public_id} [DELETE]
func (h *User) Delete(ctx context.Context, c *app.RequestContext, _ *domain.User) {
	var req dto.PublicIDReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, resp.BindErr(err), http.StatusBadRequest)
		return
	}

	if bizErr := h.svc.Delete(ctx, req.PublicID); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, dto.MessageResp{Message: "the user has been deleted"})
}

func basicAuth(c *app.RequestContext) (name, password string, ok bool) {
	const prefix = "Basic "
	auth := c.Request.Header.Get("Authorization")
	if len(auth) < len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return "", "", false
	}
	raw, err := base64.StdEncoding.DecodeString(auth[len(prefix):])
	if err != nil {
		return "", "", false
	}
	name, password, ok = strings.Cut(string(raw), ":")
	if !ok || name == "" || password == "" {
		return "", "", false
	}
	return name, password, true
}

func toUserDTO(u *domain.User) dto.User {
	return dto.User{PublicID: u.PublicID, Name: u.Name, Admin: u.Admin}
}
