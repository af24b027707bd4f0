package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"tier_standings/internal/errorx"
	"tier_standings/internal/svc"
	"tier_standings/internal/types"
)

func TiersHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.OkJsonCtx(r.Context(), w, svcCtx.RankingLogic.Tiers(r.Context()))
	}
}

func StandingsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.StandingsReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.BadRequest(err.Error()))
			return
		}
		resp, err := svcCtx.RankingLogic.Standings(r.Context(), &req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
