package chat

import (
	"context"
	"errors"

	"moodmate/be/biz/dal/repo"
	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func (s *Service) List(ctx context.Context, owner *domain.User) ([]*domain.Conversation, errs.Error) {
	convs, err := s.conversations.List(ctx, owner.ID)
	if err != nil {
		hlog.CtxErrorf(ctx, "list conversations err: %v", err)
		return nil, errs.ServerError
	}
	return convs, nil
}

func (s *Service) Page(ctx context.Context, owner *domain.User, pageIndex int) ([]*domain.Conversation, errs.Error) {
	convs, err := s.conversations.Page(ctx, owner.ID, pageIndex)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidPage) {
			return nil, errs.ParamError.SetErr(err)
		}
		hlog.CtxErrorf(ctx, "page conversations err: %v", err)
		return nil, errs.ServerError
	}
	return convs, nil
}

func (s *Service) Delete(ctx context.Context, owner *domain.User, publicID string) errs.Error {
	ok, err := s.conversations.Delete(ctx, owner.ID, publicID)
	if err != nil {
		hlog.CtxErrorf(ctx, "delete conversation %s err: %v", publicID, err)
		return errs.ServerError
	}
	if !ok {
		return errs.ConversationNotFound
	}
	return nil
}

// DeleteAll removes every conversation of owner. Zero is a valid result.
func (s *Service) DeleteAll(ctx context.Context, owner *domain.User) (int64, errs.Error) {
	n, err := s.conversations.DeleteAll(ctx, owner.ID)
	if err != nil {
		hlog.CtxErrorf(ctx, "delete all conversations err: %v", err)
		return 0, errs.ServerError
	}
	hlog.CtxInfof(ctx, "deleted %d conversations of %s", n, owner.PublicID)
	return n, nil
}

// DeleteAllOf is the administrative bulk delete of another user's history.
func (s *Service) DeleteAllOf(ctx context.Context, userPublicID string) (int64, errs.Error) {
	target, err := s.users.FindByPublicID(ctx, userPublicID)
	if err != nil {
		hlog.CtxErrorf(ctx, "find user %s err: %v", userPublicID, err)
		return 0, errs.ServerError
	}
	if target == nil {
		return 0, errs.UserNotFound
	}
	return s.DeleteAll(ctx, target)
}
