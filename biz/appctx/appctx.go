package appctx

import (
	"context"

	"moodmate/be/biz/config"
	"moodmate/be/biz/db"
	"moodmate/be/biz/middleware/jwt"
	"moodmate/be/biz/provider"
	"moodmate/be/biz/service/chat"
	"moodmate/be/biz/service/quote"
	"moodmate/be/biz/util/metrics"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// AppContext carries everything a request may need. It is built once at
// startup and handed to the engine; nothing here is read from globals.
type AppContext struct {
	Conf        *config.ServiceConf
	DB          *gorm.DB
	Redis       *redis.Client
	Metrics     *metrics.Metrics
	Credentials *jwt.Service

	Classifier chat.Classifier
	Chatbot    chat.Replier
	Quotes     quote.Fetcher

	conns *db.Conns
}

func New(ctx context.Context, conf *config.ServiceConf) (*AppContext, error) {
	conns, err := db.Open(ctx, conf)
	if err != nil {
		return nil, err
	}

	cli, err := provider.NewHTTPClient()
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	return &AppContext{
		Conf:        conf,
		DB:          conns.DB,
		Redis:       conns.Redis,
		Metrics:     m,
		Credentials: jwt.New(conf.JWT),
		Classifier:  provider.NewClassifier(cli, conf.Provider.Classifier, m),
		Chatbot:     provider.NewChatbot(cli, conf.Provider.Chatbot, m),
		Quotes:      provider.NewQuoteClient(cli, conf.Provider.Quote, m),
		conns:       conns,
	}, nil
}

// Close releases the connections opened by New.
func (a *AppContext) Close() {
	if a.conns == nil {
		return
	}
	if err := a.conns.Close(); err != nil {
		hlog.Warnf("close connections err: %v", err)
	}
}
