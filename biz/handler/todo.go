package handler

import (
	"context"
	"net/http"

	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/model/dto"
	"moodmate/be/biz/service/todo"
	"moodmate/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type Todo struct {
	svc *todo.Service
}

func NewTodo(svc *todo.Service) *Todo {
	return &Todo{svc: svc}
}

// List 待办列表
//
//	@Tags			todo
//	@Summary		list own todos
//	@Produce		json
//	@Param			x-access-token	header		string	true	"access token"
//	@Success		200				{object}	dto.CommonResp{data=dto.ListTodoResp}
//	@Router			/todo [GET]
func (h *Todo) List(ctx context.Context, c *app.RequestContext, u *domain.User) {
	todos, bizErr := h.svc.List(ctx, u)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	out := make([]dto.Todo, 0, len(todos))
	for _, t := range todos {
		out = append(out, toTodoDTO(t))
	}
	resp.SuccessResp(c, dto.ListTodoResp{Todos: out})
}

// Get 待办详情
//
//	@Tags			todo
//	@Summary		get one own todo
//	@Produce		json
//	@Param			x-access-token	header		string	true	"access token"
//	@Param			todo_id			path		int		true	"todo id"
//	@Success		200				{object}	dto.CommonResp{data=dto.Todo}
//	@Failure		404				{object}	dto.CommonResp
//	@Router			/todo/{todo_id} [GET]
func (h *Todo) Get(ctx context.Context, c *app.RequestContext, u *domain.User) {
	var req dto.TodoIDReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, resp.BindErr(err), http.StatusBadRequest)
		return
	}

	t, bizErr := h.svc.Get(ctx, u, req.TodoID)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, toTodoDTO(t))
}

// Create 创建待办
//
//	@Tags			todo
//	@Summary		create a todo
//	@Accept			json
//	@Produce		json
//	@Param			x-access-token	header		string				true	"access token"
//	@Param			req				body		dto.CreateTodoReq	true	"todo"
//	@Success		200				{object}	dto.CommonResp{data=dto.Todo}
//	@Router			/todo [POST]
func (h *Todo) Create(ctx context.Context, c *app.RequestContext, u *domain.User) {
	var req dto.CreateTodoReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, resp.BindErr(err), http.StatusBadRequest)
		return
	}

	t, bizErr := h.svc.Create(ctx, u, req.Text)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, toTodoDTO(t))
}

// Complete 完成待办
//
//	@Tags			todo
//	@Summary		mark an own todo complete
//	@Produce		json
//	@Param			x-access-token	header		string	true	"access token"
//	@Param			todo_id			path		int		true	"todo id"
//	@Success		200				{object}	dto.CommonResp{data=dto.MessageResp}
//	@Router			/todo/{todo_id} [PUT]
func (h *Todo) Complete(ctx context.Context, c *app.RequestContext, u *domain.User) {
	var req dto.TodoIDReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, resp.BindErr(err), http.StatusBadRequest)
		return
	}

	if bizErr := h.svc.Complete(ctx, u, req.TodoID); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, dto.MessageResp{Message: "todo item has been completed"})
}

// Delete 删除待办
//
//	@Tags			todo
//	@Summary		delete an own todo
//	@Produce		json
//	@Param			x-access-token	header		string	true	"access token"
//	@Param			todo_id			path		int		true	"todo id"
//	@Success		200				{object}	dto.CommonResp{data=dto.MessageResp}
//	@Router			/todo/{todo_id} [DELETE]
func (h *Todo) Delete(ctx context.Context, c *app.RequestContext, u *domain.User) {
	var req dto.TodoIDReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, resp.BindErr(err), http.StatusBadRequest)
		return
	}

	if bizErr := h.svc.Delete(ctx, u, req.TodoID); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, dto.MessageResp{Message: "todo item deleted"})
}

func toTodoDTO(t *domain.Todo) dto.Todo {
	return dto.Todo{ID: t.ID, Text: t.Text, Complete: t.Complete}
}
