package provider

import (
	"context"
	"encoding/json"

	"moodmate/be/biz/config"
	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/util/metrics"

	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/tidwall/gjson"
)

const NameClassifier = "classifier"

type predictReq struct {
	Instances []string `json:"instances"`
}

// Classifier calls a model-serving predict endpoint returning one score per
// label in domain.EmotionLabels order.
type Classifier struct {
	upstream
}

func NewClassifier(cli *client.Client, conf config.ClassifierConf, m *metrics.Metrics) *Classifier {
	return &Classifier{upstream{
		name:     NameClassifier,
		endpoint: conf.Endpoint,
		timeout:  timeoutOf(conf.TimeoutMS),
		cli:      cli,
		metrics:  m,
	}}
}

func (c *Classifier) Classify(ctx context.Context, text string) (domain.Emotion, error) {
	payload, err := json.Marshal(predictReq{Instances: []string{text}})
	if err != nil {
		return "", err
	}

	req := protocol.AcquireRequest()
	defer protocol.ReleaseRequest(req)
	req.SetRequestURI(c.endpoint)
	req.SetMethod(consts.MethodPost)
	req.Header.SetContentTypeBytes([]byte(consts.MIMEApplicationJSON))
	req.SetBody(payload)

	body, err := c.do(ctx, req)
	if err != nil {
		return "", err
	}

	scores := gjson.GetBytes(body, "predictions.0")
	if !scores.IsArray() {
		return "", c.malformed(ctx, "predictions missing")
	}
	values := scores.Array()
	if len(values) != len(domain.EmotionLabels) {
		return "", c.malformed(ctx, "unexpected score count")
	}

	best := -1
	for i, v := range values {
		if v.Type != gjson.Number {
			return "", c.malformed(ctx, "score is not a number")
		}
		if best < 0 || v.Float() > values[best].Float() {
			best = i
		}
	}
	return domain.EmotionLabels[best], nil
}
