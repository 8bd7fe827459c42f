package appctx

import (
	"context"
	"strconv"
	"testing"

	"moodmate/be/biz/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	mr := miniredis.RunT(t)
	port, _ := strconv.Atoi(mr.Port())

	conf := &config.ServiceConf{
		MySQL: config.MySQLConf{SQLitePath: ":memory:"},
		Redis: config.RedisConf{IP: mr.Host(), Port: port},
		JWT:   config.JWTConf{AccessTokenSecret: "s"},
	}

	a, err := New(context.Background(), conf)
	assert.NoError(t, err)
	assert.NotNil(t, a.DB)
	assert.NotNil(t, a.Redis)
	assert.NotNil(t, a.Metrics)
	assert.NotNil(t, a.Classifier)
	assert.NotNil(t, a.Chatbot)
	assert.NotNil(t, a.Quotes)

	tok, err := a.Credentials.Issue("someone")
	assert.NoError(t, err)
	assert.True(t, a.Credentials.Verify(tok.Value).Valid())

	a.Close()
	assert.Error(t, a.Redis.Ping(context.Background()).Err())

	// a context built by hand owns no connections
	(&AppContext{}).Close()
}

func TestNew_RedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	port, _ := strconv.Atoi(mr.Port())
	mr.Close()

	_, err := New(context.Background(), &config.ServiceConf{
		MySQL: config.MySQLConf{SQLitePath: ":memory:"},
		Redis: config.RedisConf{IP: mr.Host(), Port: port},
	})
	assert.Error(t, err)
}
