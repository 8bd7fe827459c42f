package provider

import (
	"context"
	"net/url"

	"moodmate/be/biz/config"
	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/util/metrics"

	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/tidwall/gjson"
)

const (
	NameQuote = "quote"

	headerQuoteSecret = "X-TheySaidSo-Api-Secret"
	defaultCategory   = "inspire"
)

type QuoteClient struct {
	upstream
	category string
	secret   string
}

func NewQuoteClient(cli *client.Client, conf config.QuoteConf, m *metrics.Metrics) *QuoteClient {
	category := conf.Category
	if category == "" {
		category = defaultCategory
	}
	return &QuoteClient{
		upstream: upstream{
			name:     NameQuote,
			endpoint: conf.Endpoint,
			timeout:  timeoutOf(conf.TimeoutMS),
			cli:      cli,
			metrics:  m,
		},
		category: category,
		secret:   conf.Secret,
	}
}

func (q *QuoteClient) QuoteOfTheDay(ctx context.Context) (*domain.Quote, error) {
	uri, err := withQuery(q.endpoint, url.Values{"category": {q.category}})
	if err != nil {
		return nil, q.fail(ctx, &Error{Provider: q.name, Kind: KindTransport, Err: err})
	}

	req := protocol.AcquireRequest()
	defer protocol.ReleaseRequest(req)
	req.SetRequestURI(uri)
	req.SetMethod(consts.MethodGet)
	req.Header.Set("Accept", consts.MIMEApplicationJSON)
	if q.secret != "" {
		req.Header.Set(headerQuoteSecret, q.secret)
	}

	body, err := q.do(ctx, req)
	if err != nil {
		return nil, err
	}

	res := gjson.GetManyBytes(body, "contents.quotes.0.quote", "contents.quotes.0.author")
	if res[0].Type != gjson.String {
		return nil, q.malformed(ctx, "quote missing")
	}
	return &domain.Quote{Text: res[0].String(), Author: res[1].String()}, nil
}
