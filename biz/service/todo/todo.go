package todo

import (
	"context"

	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type todoStore interface {
	Create(ctx context.Context, owner uint, text string) (*domain.Todo, error)
	Find(ctx context.Context, owner, id uint) (*domain.Todo, error)
	List(ctx context.Context, owner uint) ([]*domain.Todo, error)
	MarkComplete(ctx context.Context, owner, id uint) (bool, error)
	Delete(ctx context.Context, owner, id uint) (bool, error)
}

type Service struct {
	todos todoStore
}

func New(todos todoStore) *Service {
	return &Service{todos: todos}
}

func (s *Service) List(ctx context.Context, owner *domain.User) ([]*domain.Todo, errs.Error) {
	todos, err := s.todos.List(ctx, owner.ID)
	if err != nil {
		hlog.CtxErrorf(ctx, "list todos err: %v", err)
		return nil, errs.ServerError
	}
	return todos, nil
}

func (s *Service) Get(ctx context.Context, owner *domain.User, id uint) (*domain.Todo, errs.Error) {
	t, err := s.todos.Find(ctx, owner.ID, id)
	if err != nil {
		hlog.CtxErrorf(ctx, "find todo %d err: %v", id, err)
		return nil, errs.ServerError
	}
	if t == nil {
		return nil, errs.TodoNotFound
	}
	return t, nil
}

func (s *Service) Create(ctx context.Context, owner *domain.User, text string) (*domain.Todo, errs.Error) {
	t, err := s.todos.Create(ctx, owner.ID, text)
	if err != nil {
		hlog.CtxErrorf(ctx, "create todo err: %v", err)
		return nil, errs.ServerError
	}
	return t, nil
}

func (s *Service) Complete(ctx context.Context, owner *domain.User, id uint) errs.Error {
	ok, err := s.todos.MarkComplete(ctx, owner.ID, id)
	if err != nil {
		hlog.CtxErrorf(ctx, "complete todo %d err: %v", id, err)
		return errs.ServerError
	}
	if !ok {
		return errs.TodoNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, owner *domain.User, id uint) errs.Error {
	ok, err := s.todos.Delete(ctx, owner.ID, id)
	if err != nil {
		hlog.CtxErrorf(ctx, "delete todo %d err: %v", id, err)
		return errs.ServerError
	}
	if !ok {
		return errs.TodoNotFound
	}
	return nil
}
