package main

import (
	"context"
	"flag"

	be "moodmate/be"
	"moodmate/be/biz/appctx"
	"moodmate/be/biz/config"
	"moodmate/be/biz/dal/repo"
	"moodmate/be/biz/service/user"
	"moodmate/be/biz/util/logger"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func main() {
	confPath := flag.String("conf", "conf/deploy.yml", "path of the yaml config file")
	flag.Parse()

	conf := config.MustLoad(*confPath)
	logger.Init(conf.Logger)

	ctx := context.Background()
	appCtx, err := appctx.New(ctx, conf)
	if err != nil {
		hlog.Fatalf("init app context err: %v", err)
	}

	if bizErr := user.New(repo.NewUserRepository(appCtx.DB)).EnsureAdmin(ctx, conf.Admin.Name, conf.Admin.Password); bizErr != nil {
		hlog.Fatalf("ensure admin err: %v", bizErr)
	}

	h := be.NewEngine(appCtx)
	h.OnShutdown = append(h.OnShutdown, func(ctx context.Context) {
		appCtx.Close()
	})
	h.Spin()
}
