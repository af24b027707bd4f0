package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"

	"tier_standings/internal/config"
	"tier_standings/internal/errorx"
	"tier_standings/internal/handler"
	"tier_standings/internal/svc"
)

var configFile = flag.String("f", "etc/standings.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())

	svcCtx, err := svc.NewServiceContext(c)
	logx.Must(err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 启动时加载失败不退出，列表返回 noData，等待下一次刷新
	if err := svcCtx.Snapshots.Refresh(ctx); err != nil {
		logx.Errorw("initial snapshot load failed", logx.Field("error", err.Error()))
	}
	svcCtx.Snapshots.StartRefresh(ctx, c.RefreshInterval)

	httpx.SetErrorHandlerCtx(errorx.Handler)

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	handler.RegisterHandlers(server, svcCtx)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
