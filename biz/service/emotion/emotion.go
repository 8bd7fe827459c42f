package emotion

import (
	"context"

	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

type Classifier interface {
	Classify(ctx context.Context, text string) (domain.Emotion, error)
}

type emotionStore interface {
	Create(ctx context.Context, e *domain.EmotionLog) error
	List(ctx context.Context, owner uint) ([]*domain.EmotionLog, error)
	Delete(ctx context.Context, owner uint, publicID string) (bool, error)
	DeleteAll(ctx context.Context, owner uint) (int64, error)
}

type Service struct {
	classifier Classifier
	logs       emotionStore
}

func New(classifier Classifier, logs emotionStore) *Service {
	return &Service{classifier: classifier, logs: logs}
}

// Record classifies text and keeps the result in the owner's emotion log.
func (s *Service) Record(ctx context.Context, owner *domain.User, text string) (*domain.EmotionLog, errs.Error) {
	label, err := s.classifier.Classify(ctx, text)
	if err != nil {
		hlog.CtxErrorf(ctx, "classify err: %v", err)
		return nil, errs.ServiceUnavailable
	}

	e := &domain.EmotionLog{
		PublicID:    uuid.NewString(),
		OwnerID:     owner.ID,
		UserInput:   text,
		UserEmotion: label,
	}
	if err := s.logs.Create(ctx, e); err != nil {
		hlog.CtxErrorf(ctx, "create emotion log err: %v", err)
		return nil, errs.ServerError
	}
	return e, nil
}

func (s *Service) List(ctx context.Context, owner *domain.User) ([]*domain.EmotionLog, errs.Error) {
	logs, err := s.logs.List(ctx, owner.ID)
	if err != nil {
		hlog.CtxErrorf(ctx, "list emotion logs err: %v", err)
		return nil, errs.ServerError
	}
	return logs, nil
}

func (s *Service) Delete(ctx context.Context, owner *domain.User, publicID string) errs.Error {
	ok, err := s.logs.Delete(ctx, owner.ID, publicID)
	if err != nil {
		hlog.CtxErrorf(ctx, "delete emotion log %s err: %v", publicID, err)
		return errs.ServerError
	}
	if !ok {
		return errs.EmotionNotFound
	}
	return nil
}

func (s *Service) DeleteAll(ctx context.Context, owner *domain.User) (int64, errs.Error) {
	n, err := s.logs.DeleteAll(ctx, owner.ID)
	if err != nil {
		hlog.CtxErrorf(ctx, "delete all emotion logs err: %v", err)
		return 0, errs.ServerError
	}
	return n, nil
}
