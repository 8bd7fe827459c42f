package chat

import (
	"context"

	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/model/errs"
	"moodmate/be/biz/util/metrics"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

type state string

const (
	stateStart      state = "start"
	stateClassified state = "classified"
	stateReplied    state = "replied"
	stateDone       state = "done"
	stateFailed     state = "failed"
)

type Classifier interface {
	Classify(ctx context.Context, text string) (domain.Emotion, error)
}

type Replier interface {
	Reply(ctx context.Context, uid, msg string) (string, error)
}

type conversationStore interface {
	Create(ctx context.Context, c *domain.Conversation) error
	List(ctx context.Context, owner uint) ([]*domain.Conversation, error)
	Page(ctx context.Context, owner uint, pageIndex int) ([]*domain.Conversation, error)
	Delete(ctx context.Context, owner uint, publicID string) (bool, error)
	DeleteAll(ctx context.Context, owner uint) (int64, error)
}

type identityFinder interface {
	FindByPublicID(ctx context.Context, publicID string) (*domain.User, error)
}

type Service struct {
	classifier    Classifier
	replier       Replier
	conversations conversationStore
	users         identityFinder
	metrics       *metrics.Metrics
}

func New(classifier Classifier, replier Replier, conversations conversationStore, users identityFinder, m *metrics.Metrics) *Service {
	return &Service{
		classifier:    classifier,
		replier:       replier,
		conversations: conversations,
		users:         users,
		metrics:       m,
	}
}

type Result struct {
	ChatbotResponse string
	UserEmotion     domain.Emotion
}

// Converse runs one conversation turn: classify the utterance, ask the chat
// provider for a reply, then store the exchange. A record is written only
// when both upstream calls succeeded.
func (s *Service) Converse(ctx context.Context, u *domain.User, text string) (*Result, errs.Error) {
	s.enter(ctx, stateStart)

	emotion, err := s.classifier.Classify(ctx, text)
	if err != nil {
		return nil, s.failed(ctx, errs.ServiceUnavailable, "classify err: %v", err)
	}
	s.enter(ctx, stateClassified)

	reply, err := s.replier.Reply(ctx, u.PublicID, text)
	if err != nil {
		return nil, s.failed(ctx, errs.ServiceUnavailable, "chat reply err: %v", err)
	}
	s.enter(ctx, stateReplied)

	conv := &domain.Conversation{
		PublicID:        uuid.NewString(),
		OwnerID:         u.ID,
		UserSentence:    text,
		ChatbotSentence: reply,
		UserEmotion:     emotion,
	}
	if err := s.conversations.Create(ctx, conv); err != nil {
		return nil, s.failed(ctx, errs.ServerError, "persist conversation err: %v", err)
	}
	s.enter(ctx, stateDone)

	return &Result{ChatbotResponse: reply, UserEmotion: emotion}, nil
}

func (s *Service) enter(ctx context.Context, st state) {
	hlog.CtxDebugf(ctx, "conversation turn -> %s", st)
	s.metrics.ChatTransition(string(st))
}

func (s *Service) failed(ctx context.Context, bizErr errs.Error, format string, v ...any) errs.Error {
	hlog.CtxErrorf(ctx, "conversation turn failed, "+format, v...)
	s.metrics.ChatTransition(string(stateFailed))
	return bizErr
}
