package quote

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "quote_of_the_day:"

type Fetcher interface {
	QuoteOfTheDay(ctx context.Context) (*domain.Quote, error)
}

// Service serves the quote of the day. The provider allows only a handful of
// calls per hour, so the first successful answer of a day is cached in redis
// until midnight.
type Service struct {
	fetcher Fetcher
	rdb     redis.Cmdable
	now     func() time.Time
}

func New(fetcher Fetcher, rdb redis.Cmdable) *Service {
	return &Service{fetcher: fetcher, rdb: rdb, now: time.Now}
}

type cachedQuote struct {
	Text   string `json:"quote"`
	Author string `json:"author"`
}

func (s *Service) Today(ctx context.Context) (*domain.Quote, errs.Error) {
	now := s.now()
	key := cacheKeyPrefix + now.Format(time.DateOnly)

	if q, ok := s.cached(ctx, key); ok {
		return q, nil
	}

	q, err := s.fetcher.QuoteOfTheDay(ctx)
	if err != nil {
		hlog.CtxErrorf(ctx, "fetch quote of the day err: %v", err)
		return nil, errs.ServiceUnavailable
	}

	if s.rdb != nil {
		midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
		payload, _ := json.Marshal(cachedQuote{Text: q.Text, Author: q.Author})
		if err := s.rdb.Set(ctx, key, payload, midnight.Sub(now)).Err(); err != nil {
			hlog.CtxWarnf(ctx, "cache quote err: %v", err)
		}
	}
	return q, nil
}

func (s *Service) cached(ctx context.Context, key string) (*domain.Quote, bool) {
	if s.rdb == nil {
		return nil, false
	}
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			hlog.CtxWarnf(ctx, "read cached quote err: %v", err)
		}
		return nil, false
	}
	var c cachedQuote
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, false
	}
	return &domain.Quote{Text: c.Text, Author: c.Author}, true
}
