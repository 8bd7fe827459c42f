package be_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	be "moodmate/be"
	"moodmate/be/biz/appctx"
	"moodmate/be/biz/config"
	"moodmate/be/biz/dal/repo"
	"moodmate/be/biz/db/mysql"
	"moodmate/be/biz/middleware/jwt"
	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/model/dto"
	"moodmate/be/biz/model/errs"
	"moodmate/be/biz/model/storage"
	"moodmate/be/biz/provider"
	usersvc "moodmate/be/biz/service/user"
	"moodmate/be/biz/util/metrics"

	"github.com/alicebob/miniredis/v2"
	"github.com/bytedance/mockey"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/test/assert"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/redis/go-redis/v9"
)

const (
	adminName = "root"
	adminPass = "root-pw"
	userPass  = "pw"
)

var (
	testEngine *server.Hertz
	testApp    *appctx.AppContext
	testRedis  *miniredis.Miniredis

	classifier = &fakeClassifier{}
	chatbot    = &fakeChatbot{}
	quotes     = &fakeQuotes{}
)

type fakeClassifier struct {
	mu    sync.Mutex
	label domain.Emotion
	err   error
}

func (f *fakeClassifier) set(label domain.Emotion, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.label, f.err = label, err
}

func (f *fakeClassifier) Classify(ctx context.Context, text string) (domain.Emotion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.label, f.err
}

type fakeChatbot struct {
	mu    sync.Mutex
	reply string
	err   error
	uids  []string
}

func (f *fakeChatbot) set(reply string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reply, f.err, f.uids = reply, err, nil
}

func (f *fakeChatbot) Reply(ctx context.Context, uid, msg string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uids = append(f.uids, uid)
	return f.reply, f.err
}

type fakeQuotes struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeQuotes) QuoteOfTheDay(ctx context.Context) (*domain.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return &domain.Quote{Text: "Keep going.", Author: "Someone"}, nil
}

func TestMain(m *testing.M) {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}
	testRedis = mr

	gdb, err := mysql.Open(config.MySQLConf{SQLitePath: ":memory:"})
	if err != nil {
		panic(err)
	}

	conf := &config.ServiceConf{
		JWT: config.JWTConf{Issuer: "test", AccessTokenSecret: "test-secret"},
		RateLimit: []config.RateLimitConf{
			{Path: "/login", WindowSeconds: 1, Limit: 1000},
		},
	}

	testApp = &appctx.AppContext{
		Conf:        conf,
		DB:          gdb,
		Redis:       redis.NewClient(&redis.Options{Addr: mr.Addr()}),
		Metrics:     metrics.New(),
		Credentials: jwt.New(conf.JWT),
		Classifier:  classifier,
		Chatbot:     chatbot,
		Quotes:      quotes,
	}

	if bizErr := usersvc.New(repo.NewUserRepository(gdb)).EnsureAdmin(context.Background(), adminName, adminPass); bizErr != nil {
		panic(bizErr)
	}

	testEngine = be.NewEngine(testApp)
	code := m.Run()
	mr.Close()
	os.Exit(code)
}

func newTestServer(t *testing.T) *server.Hertz {
	t.Helper()
	testRedis.FlushAll()
	classifier.set(domain.EmotionNeutral, nil)
	chatbot.set("hello", nil)
	return testEngine
}

func perform(h *server.Hertz, method, url, body string, headers ...ut.Header) *ut.ResponseRecorder {
	var b *ut.Body
	if body != "" {
		b = &ut.Body{Body: bytes.NewBufferString(body), Len: len(body)}
	}
	allHeaders := append([]ut.Header{{Key: "Content-Type", Value: "application/json"}}, headers...)
	return ut.PerformRequest(h.Engine, method, url, b, allHeaders...)
}

func withToken(token string) ut.Header {
	return ut.Header{Key: "x-access-token", Value: token}
}

func basic(name, password string) ut.Header {
	return ut.Header{Key: "Authorization", Value: "Basic " + base64.StdEncoding.EncodeToString([]byte(name+":"+password))}
}

func decodeCommonResp(t *testing.T, respBody []byte) dto.CommonResp {
	t.Helper()
	var r dto.CommonResp
	err := json.Unmarshal(respBody, &r)
	assert.Nil(t, err)
	return r
}

func decodeData(t *testing.T, respBody []byte, out any) {
	t.Helper()
	r := decodeCommonResp(t, respBody)
	assert.True(t, r.Success)
	raw, err := json.Marshal(r.Data)
	assert.Nil(t, err)
	assert.Nil(t, json.Unmarshal(raw, out))
}

func login(t *testing.T, h *server.Hertz, name, password string) string {
	t.Helper()
	w := perform(h, http.MethodGet, "/login", "", basic(name, password))
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())
	var lr dto.LoginResp
	decodeData(t, w.Result().Body(), &lr)
	return lr.Token
}

// createUser registers a standard user through the admin API and returns its
// public id and an access token.
func createUser(t *testing.T, h *server.Hertz, name string) (string, string) {
	t.Helper()
	admin := login(t, h, adminName, adminPass)
	w := perform(h, http.MethodPost, "/user", `{"name":"`+name+`","password":"`+userPass+`"}`, withToken(admin))
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())

	var cr dto.CreateUserResp
	decodeData(t, w.Result().Body(), &cr)
	return cr.User.PublicID, login(t, h, name, userPass)
}

func conversationCount(t *testing.T, publicID string) int64 {
	t.Helper()
	u, err := repo.NewUserRepository(testApp.DB).FindByPublicID(context.Background(), publicID)
	assert.Nil(t, err)
	assert.NotNil(t, u)

	var n int64
	assert.Nil(t, testApp.DB.Model(&storage.ConversationRecord{}).Where("user_id = ?", u.ID).Count(&n).Error)
	return n
}

// tamper swaps the last payload character so the signature no longer matches.
func tamper(token string) string {
	parts := strings.Split(token, ".")
	p := []byte(parts[1])
	if p[len(p)-1] == 'A' {
		p[len(p)-1] = 'B'
	} else {
		p[len(p)-1] = 'A'
	}
	parts[1] = string(p)
	return strings.Join(parts, ".")
}

func TestPing(t *testing.T) {
	h := newTestServer(t)

	w := perform(h, http.MethodGet, "/ping", "")
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())
	assert.True(t, len(w.Result().Header.Peek("X-Log-ID")) > 0)
}

func TestLogin(t *testing.T) {
	h := newTestServer(t)

	t.Run("success", func(t *testing.T) {
		token := login(t, h, adminName, adminPass)
		v := testApp.Credentials.Verify(token)
		assert.True(t, v.Valid())
	})

	t.Run("wrong password", func(t *testing.T) {
		w := perform(h, http.MethodGet, "/login", "", basic(adminName, "nope"))
		resp := w.Result()
		assert.DeepEqual(t, http.StatusUnauthorized, resp.StatusCode())
		assert.DeepEqual(t, `Basic realm="Login required!"`, string(resp.Header.Peek("WWW-Authenticate")))
		assert.DeepEqual(t, int(errs.LoginFailed.Code()), decodeCommonResp(t, resp.Body()).Code)
	})

	t.Run("missing credentials", func(t *testing.T) {
		w := perform(h, http.MethodGet, "/login", "")
		assert.DeepEqual(t, http.StatusUnauthorized, w.Result().StatusCode())
	})

	t.Run("unknown user is indistinguishable", func(t *testing.T) {
		w := perform(h, http.MethodGet, "/login", "", basic("ghost", "pw"))
		assert.DeepEqual(t, http.StatusUnauthorized, w.Result().StatusCode())
		assert.DeepEqual(t, int(errs.LoginFailed.Code()), decodeCommonResp(t, w.Result().Body()).Code)
	})
}

func TestLogin_BruteForceBlocked(t *testing.T) {
	h := newTestServer(t)

	for i := 0; i < 3; i++ {
		w := perform(h, http.MethodGet, "/login", "", basic(adminName, "nope"))
		assert.DeepEqual(t, http.StatusUnauthorized, w.Result().StatusCode())
	}

	w := perform(h, http.MethodGet, "/login", "", basic(adminName, adminPass))
	assert.DeepEqual(t, http.StatusForbidden, w.Result().StatusCode())
	assert.DeepEqual(t, int(errs.RequestBlocked.Code()), decodeCommonResp(t, w.Result().Body()).Code)
}

func TestLogin_ServiceError(t *testing.T) {
	h := newTestServer(t)

	mockey.PatchConvey("login store failure", t, func() {
		mockey.Mock((*usersvc.Service).Login).Return((*domain.User)(nil), errs.ServerError).Build()

		w := perform(h, http.MethodGet, "/login", "", basic(adminName, adminPass))
		resp := w.Result()
		assert.DeepEqual(t, http.StatusInternalServerError, resp.StatusCode())
		assert.DeepEqual(t, "", string(resp.Header.Peek("WWW-Authenticate")))
	})
}

func TestGate_RejectsBadCredentials(t *testing.T) {
	h := newTestServer(t)
	_, token := createUser(t, h, "gate-user")

	expired, err := testApp.Credentials.
		WithClock(func() time.Time { return time.Now().Add(-301 * time.Minute) }).
		Issue("whoever")
	assert.Nil(t, err)

	other := jwt.New(config.JWTConf{Issuer: "test", AccessTokenSecret: "other-secret"})
	forged, err := other.Issue("whoever")
	assert.Nil(t, err)

	cases := map[string][]ut.Header{
		"missing":      nil,
		"garbled":      {withToken("garbage")},
		"expired":      {withToken(expired.Value)},
		"wrong secret": {withToken(forged.Value)},
		"tampered":     {withToken(tamper(token))},
	}
	for name, headers := range cases {
		t.Run(name, func(t *testing.T) {
			w := perform(h, http.MethodPost, "/todo", `{"text":"should never exist"}`, headers...)
			resp := w.Result()
			assert.DeepEqual(t, http.StatusUnauthorized, resp.StatusCode())

			r := decodeCommonResp(t, resp.Body())
			assert.DeepEqual(t, int(errs.Unauthorized.Code()), r.Code)
			assert.DeepEqual(t, "token is missing or invalid", r.Message)
		})
	}

	var n int64
	assert.Nil(t, testApp.DB.Model(&storage.TodoRecord{}).Where("text = ?", "should never exist").Count(&n).Error)
	assert.DeepEqual(t, int64(0), n)
}

func TestGate_DeletedIdentity(t *testing.T) {
	h := newTestServer(t)
	id, token := createUser(t, h, "short-lived")
	admin := login(t, h, adminName, adminPass)

	w := perform(h, http.MethodDelete, "/user/"+id, "", withToken(admin))
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())

	w = perform(h, http.MethodGet, "/todo", "", withToken(token))
	assert.DeepEqual(t, http.StatusUnauthorized, w.Result().StatusCode())
}

func TestRolePolicy(t *testing.T) {
	h := newTestServer(t)
	_, std := createUser(t, h, "policy-user")
	admin := login(t, h, adminName, adminPass)

	w := perform(h, http.MethodGet, "/user", "", withToken(std))
	assert.DeepEqual(t, http.StatusForbidden, w.Result().StatusCode())
	r := decodeCommonResp(t, w.Result().Body())
	assert.DeepEqual(t, int(errs.PolicyViolation.Code()), r.Code)
	assert.True(t, strings.HasPrefix(r.Message, "cannot perform that function"))

	w = perform(h, http.MethodGet, "/todo", "", withToken(admin))
	assert.DeepEqual(t, http.StatusForbidden, w.Result().StatusCode())

	w = perform(h, http.MethodPost, "/add-music", `{"song_name":"x","song_link":"https://example.com/x"}`, withToken(std))
	assert.DeepEqual(t, http.StatusForbidden, w.Result().StatusCode())

	// the catalog is readable by both roles
	for _, tok := range []string{std, admin} {
		w = perform(h, http.MethodGet, "/songs", "", withToken(tok))
		assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())
	}
}

func TestAdminUserLifecycle(t *testing.T) {
	h := newTestServer(t)
	admin := login(t, h, adminName, adminPass)

	w := perform(h, http.MethodPost, "/user", `{"name":"bob","password":"pw"}`, withToken(admin))
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())
	var cr dto.CreateUserResp
	decodeData(t, w.Result().Body(), &cr)
	assert.DeepEqual(t, "bob", cr.User.Name)
	assert.False(t, cr.User.Admin)
	assert.True(t, cr.User.PublicID != "")

	w = perform(h, http.MethodPost, "/user", `{"name":"bob","password":"pw2"}`, withToken(admin))
	assert.DeepEqual(t, http.StatusConflict, w.Result().StatusCode())

	w = perform(h, http.MethodPost, "/user", `{"name":"multibyte","password":"`+strings.Repeat("é", 40)+`"}`, withToken(admin))
	assert.DeepEqual(t, http.StatusBadRequest, w.Result().StatusCode())
	assert.DeepEqual(t, int(errs.ParamError.Code()), decodeCommonResp(t, w.Result().Body()).Code)

	w = perform(h, http.MethodPut, "/user/"+cr.User.PublicID, "", withToken(admin))
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())

	w = perform(h, http.MethodGet, "/user/"+cr.User.PublicID, "", withToken(admin))
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())
	var gr dto.GetUserResp
	decodeData(t, w.Result().Body(), &gr)
	assert.True(t, gr.User.Admin)

	w = perform(h, http.MethodGet, "/user", "", withToken(admin))
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())
	assert.False(t, strings.Contains(string(w.Result().Body()), "password"))

	w = perform(h, http.MethodGet, "/user/does-not-exist", "", withToken(admin))
	assert.DeepEqual(t, http.StatusNotFound, w.Result().StatusCode())

	w = perform(h, http.MethodPost, "/user", `{"name":""}`, withToken(admin))
	assert.DeepEqual(t, http.StatusBadRequest, w.Result().StatusCode())
}

func TestTodo_OwnerIsolation(t *testing.T) {
	h := newTestServer(t)
	_, alice := createUser(t, h, "todo-alice")
	_, mallory := createUser(t, h, "todo-mallory")

	w := perform(h, http.MethodPost, "/todo", `{"text":"buy milk"}`, withToken(alice))
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())
	var td dto.Todo
	decodeData(t, w.Result().Body(), &td)
	todoURL := "/todo/" + strconv.FormatUint(uint64(td.ID), 10)

	w = perform(h, http.MethodGet, todoURL, "", withToken(mallory))
	assert.DeepEqual(t, http.StatusNotFound, w.Result().StatusCode())
	w = perform(h, http.MethodPut, todoURL, "", withToken(mallory))
	assert.DeepEqual(t, http.StatusNotFound, w.Result().StatusCode())
	w = perform(h, http.MethodDelete, todoURL, "", withToken(mallory))
	assert.DeepEqual(t, http.StatusNotFound, w.Result().StatusCode())

	var list dto.ListTodoResp
	w = perform(h, http.MethodGet, "/todo", "", withToken(mallory))
	decodeData(t, w.Result().Body(), &list)
	assert.DeepEqual(t, 0, len(list.Todos))

	w = perform(h, http.MethodPut, todoURL, "", withToken(alice))
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())
	w = perform(h, http.MethodGet, todoURL, "", withToken(alice))
	decodeData(t, w.Result().Body(), &td)
	assert.True(t, td.Complete)

	w = perform(h, http.MethodDelete, todoURL, "", withToken(alice))
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())
	w = perform(h, http.MethodGet, todoURL, "", withToken(alice))
	assert.DeepEqual(t, http.StatusNotFound, w.Result().StatusCode())
}

func TestChat_Success(t *testing.T) {
	h := newTestServer(t)
	id, token := createUser(t, h, "chat-sad")

	classifier.set(domain.EmotionSadness, nil)
	chatbot.set("I'm sorry to hear that", nil)

	before := conversationCount(t, id)
	w := perform(h, http.MethodPost, "/chat", `{"userInput":"I am sad"}`, withToken(token))
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())

	var cr dto.ChatResp
	decodeData(t, w.Result().Body(), &cr)
	assert.DeepEqual(t, "I'm sorry to hear that", cr.ChatBotResponse)
	assert.DeepEqual(t, "sadness", cr.UserInputEmotion)
	assert.DeepEqual(t, before+1, conversationCount(t, id))
	assert.DeepEqual(t, []string{id}, chatbot.uids)

	var list dto.ListConversationResp
	w = perform(h, http.MethodGet, "/chat", "", withToken(token))
	decodeData(t, w.Result().Body(), &list)
	assert.DeepEqual(t, 1, len(list.Conversations))
	assert.DeepEqual(t, "I am sad", list.Conversations[0].UserSentence)
}

func TestChat_UpstreamFailureStoresNothing(t *testing.T) {
	h := newTestServer(t)
	id, token := createUser(t, h, "chat-fail")

	failures := map[string]func(){
		"chatbot timeout": func() {
			chatbot.set("", &provider.Error{Provider: provider.NameChatbot, Kind: provider.KindTimeout})
		},
		"chatbot malformed": func() {
			chatbot.set("", &provider.Error{Provider: provider.NameChatbot, Kind: provider.KindMalformed})
		},
		"classifier transport": func() {
			classifier.set("", &provider.Error{Provider: provider.NameClassifier, Kind: provider.KindTransport, Err: errors.New("refused")})
		},
	}
	for name, setup := range failures {
		t.Run(name, func(t *testing.T) {
			classifier.set(domain.EmotionJoy, nil)
			chatbot.set("hi", nil)
			setup()

			w := perform(h, http.MethodPost, "/chat", `{"userInput":"hello"}`, withToken(token))
			assert.DeepEqual(t, http.StatusServiceUnavailable, w.Result().StatusCode())
			assert.DeepEqual(t, int(errs.ServiceUnavailable.Code()), decodeCommonResp(t, w.Result().Body()).Code)
			assert.DeepEqual(t, int64(0), conversationCount(t, id))
		})
	}
}

func TestChat_BadInput(t *testing.T) {
	h := newTestServer(t)
	_, token := createUser(t, h, "chat-bad-input")

	for _, body := range []string{"{", `{}`, `{"userInput":""}`} {
		w := perform(h, http.MethodPost, "/chat", body, withToken(token))
		assert.DeepEqual(t, http.StatusBadRequest, w.Result().StatusCode())
		assert.DeepEqual(t, int(errs.ParamError.Code()), decodeCommonResp(t, w.Result().Body()).Code)
	}
}

func TestChat_BulkDeleteNothing(t *testing.T) {
	h := newTestServer(t)
	_, token := createUser(t, h, "chat-empty")

	w := perform(h, http.MethodDelete, "/chat", "", withToken(token))
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())
	var dr dto.DeleteAllResp
	decodeData(t, w.Result().Body(), &dr)
	assert.DeepEqual(t, int64(0), dr.Deleted)
	assert.DeepEqual(t, "no conversations to delete", dr.Message)
}

func TestChat_PaginationAndBulkDelete(t *testing.T) {
	h := newTestServer(t)
	id, token := createUser(t, h, "chat-pager")
	_, other := createUser(t, h, "chat-bystander")

	for i := 0; i < 12; i++ {
		w := perform(h, http.MethodPost, "/chat", `{"userInput":"line `+strconv.Itoa(i)+`"}`, withToken(token))
		assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())
	}
	w := perform(h, http.MethodPost, "/chat", `{"userInput":"not yours"}`, withToken(other))
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())

	pageLen := func(page string) int {
		w := perform(h, http.MethodGet, "/chat/sequential/"+page, "", withToken(token))
		assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())
		var list dto.ListConversationResp
		decodeData(t, w.Result().Body(), &list)
		return len(list.Conversations)
	}
	assert.DeepEqual(t, 5, pageLen("0"))
	assert.DeepEqual(t, 5, pageLen("1"))
	assert.DeepEqual(t, 2, pageLen("2"))
	assert.DeepEqual(t, 0, pageLen("3"))

	w = perform(h, http.MethodGet, "/chat/sequential/-1", "", withToken(token))
	assert.DeepEqual(t, http.StatusBadRequest, w.Result().StatusCode())

	w = perform(h, http.MethodGet, "/chat/sequential/1844674407370955162", "", withToken(token))
	assert.DeepEqual(t, http.StatusBadRequest, w.Result().StatusCode())

	w = perform(h, http.MethodGet, "/chat/sequential/0", "", withToken(token))
	var first dto.ListConversationResp
	decodeData(t, w.Result().Body(), &first)
	assert.DeepEqual(t, "line 0", first.Conversations[0].UserSentence)

	// the bystander cannot delete a conversation it does not own
	w = perform(h, http.MethodDelete, "/chat/conversation/"+first.Conversations[0].PublicID, "", withToken(other))
	assert.DeepEqual(t, http.StatusNotFound, w.Result().StatusCode())
	w = perform(h, http.MethodDelete, "/chat/conversation/"+first.Conversations[0].PublicID, "", withToken(token))
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())

	w = perform(h, http.MethodDelete, "/chat", "", withToken(token))
	var dr dto.DeleteAllResp
	decodeData(t, w.Result().Body(), &dr)
	assert.DeepEqual(t, int64(11), dr.Deleted)
	assert.DeepEqual(t, int64(0), conversationCount(t, id))

	w = perform(h, http.MethodGet, "/chat", "", withToken(other))
	var list dto.ListConversationResp
	decodeData(t, w.Result().Body(), &list)
	assert.DeepEqual(t, 1, len(list.Conversations))
}

func TestChat_AdminBulkDelete(t *testing.T) {
	h := newTestServer(t)
	id, token := createUser(t, h, "chat-target")
	admin := login(t, h, adminName, adminPass)

	for i := 0; i < 3; i++ {
		perform(h, http.MethodPost, "/chat", `{"userInput":"x"}`, withToken(token))
	}

	w := perform(h, http.MethodDelete, "/chat/"+id, "", withToken(token))
	assert.DeepEqual(t, http.StatusForbidden, w.Result().StatusCode())

	w = perform(h, http.MethodDelete, "/chat/"+id, "", withToken(admin))
	var dr dto.DeleteAllResp
	decodeData(t, w.Result().Body(), &dr)
	assert.DeepEqual(t, int64(3), dr.Deleted)

	w = perform(h, http.MethodDelete, "/chat/unknown-user", "", withToken(admin))
	assert.DeepEqual(t, http.StatusNotFound, w.Result().StatusCode())
}

func TestEmotion(t *testing.T) {
	h := newTestServer(t)
	_, token := createUser(t, h, "emotion-user")
	_, other := createUser(t, h, "emotion-other")

	classifier.set(domain.EmotionJoy, nil)
	w := perform(h, http.MethodPost, "/emotion", `{"userInput":"great day"}`, withToken(token))
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())
	var er dto.EmotionResp
	decodeData(t, w.Result().Body(), &er)
	assert.DeepEqual(t, "joy", er.UserInputEmotion)

	w = perform(h, http.MethodDelete, "/emotion/"+er.PublicID, "", withToken(other))
	assert.DeepEqual(t, http.StatusNotFound, w.Result().StatusCode())

	for _, body := range []string{`{}`, `{"userInput":""}`} {
		w = perform(h, http.MethodPost, "/emotion", body, withToken(token))
		assert.DeepEqual(t, http.StatusBadRequest, w.Result().StatusCode())
	}

	var list dto.ListEmotionResp
	w = perform(h, http.MethodGet, "/emotions", "", withToken(token))
	decodeData(t, w.Result().Body(), &list)
	assert.DeepEqual(t, 1, len(list.Emotions))

	classifier.set("", &provider.Error{Provider: provider.NameClassifier, Kind: provider.KindBadStatus, Status: 500})
	w = perform(h, http.MethodPost, "/emotion", `{"userInput":"meh"}`, withToken(token))
	assert.DeepEqual(t, http.StatusServiceUnavailable, w.Result().StatusCode())

	w = perform(h, http.MethodDelete, "/emotions", "", withToken(token))
	var dr dto.DeleteAllResp
	decodeData(t, w.Result().Body(), &dr)
	assert.DeepEqual(t, int64(1), dr.Deleted)

	w = perform(h, http.MethodDelete, "/emotions", "", withToken(token))
	decodeData(t, w.Result().Body(), &dr)
	assert.DeepEqual(t, int64(0), dr.Deleted)
}

func TestMusic(t *testing.T) {
	h := newTestServer(t)
	_, token := createUser(t, h, "music-user")
	admin := login(t, h, adminName, adminPass)

	w := perform(h, http.MethodPost, "/add-music", `{"song_name":"Clair de Lune","song_link":"https://example.com/clair"}`, withToken(admin))
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())
	var song dto.Song
	decodeData(t, w.Result().Body(), &song)

	w = perform(h, http.MethodPost, "/add-music", `{"song_name":"Clair de Lune","song_link":"https://example.com/other"}`, withToken(admin))
	assert.DeepEqual(t, http.StatusConflict, w.Result().StatusCode())

	w = perform(h, http.MethodPost, "/add-music", `{"song_name":"bad","song_link":"not a url"}`, withToken(admin))
	assert.DeepEqual(t, http.StatusBadRequest, w.Result().StatusCode())

	rating := func(body string) int {
		return perform(h, http.MethodPost, "/rating", body, withToken(token)).Result().StatusCode()
	}
	id := strconv.FormatUint(uint64(song.ID), 10)
	assert.DeepEqual(t, http.StatusOK, rating(`{"song_id":`+id+`,"rating":4}`))
	assert.DeepEqual(t, http.StatusOK, rating(`{"song_id":`+id+`,"rating":5}`))
	assert.DeepEqual(t, http.StatusBadRequest, rating(`{"song_id":`+id+`,"rating":9}`))
	assert.DeepEqual(t, http.StatusNotFound, rating(`{"song_id":999999,"rating":3}`))

	var list dto.ListSongResp
	w = perform(h, http.MethodGet, "/songs", "", withToken(token))
	decodeData(t, w.Result().Body(), &list)
	assert.True(t, len(list.Songs) >= 1)
}

func TestQuoteOfTheDayIsCached(t *testing.T) {
	h := newTestServer(t)
	_, token := createUser(t, h, "quote-user")

	before := quotes.calls
	for i := 0; i < 3; i++ {
		w := perform(h, http.MethodGet, "/quotes", "", withToken(token))
		assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())
		var qr dto.QuoteResp
		decodeData(t, w.Result().Body(), &qr)
		assert.DeepEqual(t, "Keep going.", qr.Quote)
	}
	assert.DeepEqual(t, before+1, quotes.calls)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestServer(t)
	perform(h, http.MethodGet, "/ping", "")

	w := perform(h, http.MethodGet, "/metrics", "")
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())
	assert.True(t, strings.Contains(string(w.Result().Body()), "moodmate_http_requests_total"))
}
