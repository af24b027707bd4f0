package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"tier_standings/internal/svc"
)

func RegisterHandlers(server *rest.Server, svcCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/tiers",
				Handler: TiersHandler(svcCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/standings",
				Handler: StandingsHandler(svcCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/entries/detail",
				Handler: DetailHandler(svcCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/search",
				Handler: SearchHandler(svcCtx),
			},
		},
		rest.WithPrefix("/api"),
	)
}
