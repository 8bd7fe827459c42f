package be

import (
	"moodmate/be/biz/appctx"
	"moodmate/be/biz/dal/repo"
	"moodmate/be/biz/handler"
	"moodmate/be/biz/middleware"
	"moodmate/be/biz/middleware/auth"
	"moodmate/be/biz/middleware/metrics"
	"moodmate/be/biz/middleware/ratelimit"
	"moodmate/be/biz/service/chat"
	"moodmate/be/biz/service/emotion"
	"moodmate/be/biz/service/music"
	"moodmate/be/biz/service/quote"
	"moodmate/be/biz/service/todo"
	"moodmate/be/biz/service/user"
	"moodmate/be/biz/util/resp"
	_ "moodmate/be/docs"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/hertz-contrib/swagger"
	swaggerFiles "github.com/swaggo/files"
)

// NewEngine builds the hertz server with every route registered.
//
//	@title			moodmate API
//	@version		1.0
//	@description	personal assistant backend: todos, chat, emotions, music and quotes
//	@BasePath		/
func NewEngine(appCtx *appctx.AppContext, opts ...config.Option) *server.Hertz {
	base := []config.Option{server.WithCustomValidatorFunc(resp.ValidatorFunc())}
	if appCtx.Conf.Server.Addr != "" {
		base = append(base, server.WithHostPorts(appCtx.Conf.Server.Addr))
	}
	opts = append(base, opts...)
	h := server.New(opts...)
	h.Use(middleware.Suite(appCtx)...)
	register(h, appCtx)
	return h
}

func register(h *server.Hertz, appCtx *appctx.AppContext) {
	users := repo.NewUserRepository(appCtx.DB)
	conversations := repo.NewConversationRepository(appCtx.DB)

	gate := auth.NewGate(appCtx.Credentials, users)

	userH := handler.NewUser(user.New(users), appCtx.Credentials)
	todoH := handler.NewTodo(todo.New(repo.NewTodoRepository(appCtx.DB)))
	chatH := handler.NewChat(chat.New(appCtx.Classifier, appCtx.Chatbot, conversations, users, appCtx.Metrics))
	emotionH := handler.NewEmotion(emotion.New(appCtx.Classifier, repo.NewEmotionRepository(appCtx.DB)))
	musicH := handler.NewMusic(music.New(repo.NewSongRepository(appCtx.DB), repo.NewRatingRepository(appCtx.DB)))
	quoteH := handler.NewQuote(quote.New(appCtx.Quotes, appCtx.Redis))

	h.GET("/ping", handler.Ping)
	h.GET("/metrics", metrics.Handler(appCtx.Metrics))
	h.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler, swagger.URL("/swagger/doc.json")))

	h.GET("/login", ratelimit.NewLoginProtection(appCtx.Redis, appCtx.Conf.LoginProtection), userH.Login)

	h.GET("/user", gate.Protect(auth.AdminOnly(userH.List)))
	h.POST("/user", gate.Protect(auth.AdminOnly(userH.Create)))
	h.GET("/user/:public_id", gate.Protect(auth.AdminOnly(userH.Get)))
	h.PUT("/user/:public_id", gate.Protect(auth.AdminOnly(userH.Promote)))
	h.DELETE("/user/:public_id", gate.Protect(auth.AdminOnly(userH.Delete)))

	h.GET("/todo", gate.Protect(auth.StandardOnly(todoH.List)))
	h.POST("/todo", gate.Protect(auth.StandardOnly(todoH.Create)))
	h.GET("/todo/:todo_id", gate.Protect(auth.StandardOnly(todoH.Get)))
	h.PUT("/todo/:todo_id", gate.Protect(auth.StandardOnly(todoH.Complete)))
	h.DELETE("/todo/:todo_id", gate.Protect(auth.StandardOnly(todoH.Delete)))

	h.POST("/chat", gate.Protect(auth.StandardOnly(chatH.Converse)))
	h.GET("/chat", gate.Protect(auth.StandardOnly(chatH.List)))
	h.DELETE("/chat", gate.Protect(auth.StandardOnly(chatH.DeleteAll)))
	h.GET("/chat/sequential/:page", gate.Protect(auth.StandardOnly(chatH.Page)))
	h.DELETE("/chat/conversation/:public_id", gate.Protect(auth.StandardOnly(chatH.Delete)))
	h.DELETE("/chat/:user_public_id", gate.Protect(auth.AdminOnly(chatH.DeleteAllOf)))

	h.POST("/emotion", gate.Protect(auth.StandardOnly(emotionH.Record)))
	h.DELETE("/emotion/:public_id", gate.Protect(auth.StandardOnly(emotionH.Delete)))
	h.GET("/emotions", gate.Protect(auth.StandardOnly(emotionH.List)))
	h.DELETE("/emotions", gate.Protect(auth.StandardOnly(emotionH.DeleteAll)))

	h.POST("/rating", gate.Protect(auth.StandardOnly(musicH.Rate)))
	h.POST("/add-music", gate.Protect(auth.AdminOnly(musicH.AddSong)))
	h.GET("/songs", gate.Protect(auth.AnyRole(musicH.ListSongs)))

	h.GET("/quotes", gate.Protect(auth.StandardOnly(quoteH.Today)))
}
