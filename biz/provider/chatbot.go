package provider

import (
	"context"
	"net/url"

	"moodmate/be/biz/config"
	"moodmate/be/biz/util/metrics"

	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/tidwall/gjson"
)

const NameChatbot = "chatbot"

type Chatbot struct {
	upstream
	botID string
	key   string
}

func NewChatbot(cli *client.Client, conf config.ChatbotConf, m *metrics.Metrics) *Chatbot {
	return &Chatbot{
		upstream: upstream{
			name:     NameChatbot,
			endpoint: conf.Endpoint,
			timeout:  timeoutOf(conf.TimeoutMS),
			cli:      cli,
			metrics:  m,
		},
		botID: conf.BotID,
		key:   conf.Key,
	}
}

// Reply asks the chat provider to answer msg. uid keeps the provider side
// conversation per user.
func (c *Chatbot) Reply(ctx context.Context, uid, msg string) (string, error) {
	uri, err := withQuery(c.endpoint, url.Values{
		"bid": {c.botID},
		"key": {c.key},
		"uid": {uid},
		"msg": {msg},
	})
	if err != nil {
		return "", c.fail(ctx, &Error{Provider: c.name, Kind: KindTransport, Err: err})
	}

	req := protocol.AcquireRequest()
	defer protocol.ReleaseRequest(req)
	req.SetRequestURI(uri)
	req.SetMethod(consts.MethodGet)

	body, err := c.do(ctx, req)
	if err != nil {
		return "", err
	}

	cnt := gjson.GetBytes(body, "cnt")
	if cnt.Type != gjson.String {
		return "", c.malformed(ctx, "cnt missing")
	}
	return cnt.String(), nil
}
