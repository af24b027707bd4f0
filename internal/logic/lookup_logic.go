package logic

import (
	"context"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/metric"

	"tier_standings/internal/errorx"
	"tier_standings/internal/model"
	"tier_standings/internal/types"
)

var lookupTotal = metric.NewCounterVec(&metric.CounterVecOpts{
	Namespace: "standings",
	Subsystem: "lookup",
	Name:      "total",
	Help:      "entry lookups by kind and result",
	Labels:    []string{"kind", "result"},
})

// LookupLogic 负责按 ID 查找与搜索
type LookupLogic struct {
	Snapshots Snapshots
	Ranker    *model.Ranker
	Bonus     model.BonusTable
}

// Detail 精确查找一个主播，并对其所在的段位、周期单独排名以给出名次
func (l *LookupLogic) Detail(ctx context.Context, req *types.DetailReq) (*types.DetailResp, error) {
	period, ok := model.ParsePeriod(req.Period)
	if !ok {
		return nil, errorx.BadRequest("invalid period: " + req.Period)
	}
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return nil, errorx.BadRequest("id is required")
	}

	snap := l.Snapshots.Current()
	hit, ok := snap.FindByID(id, period, req.Fallback)
	if !ok {
		lookupTotal.Inc("detail", "miss")
		logx.WithContext(ctx).Infow("entry not found", logx.Field("id", id), logx.Field("period", period))
		return nil, errorx.NotFound("entry not found: " + id)
	}
	lookupTotal.Inc("detail", "hit")

	resp := &types.DetailResp{
		ID:        hit.ID,
		IconURL:   hit.IconURL,
		Tier:      hit.TierID,
		TierLabel: hit.TierID,
		Period:    string(hit.Period),
		Points:    model.CalcScore(hit.Entry),
		Diamonds:  hit.Diamonds,
		LiveMatch: hit.LiveMatchCount,
		Days:      hit.Days,
		Hours:     hit.Hours,
		Eligible:  model.Eligible(hit.Entry),
		Zone:      model.ZoneNone.String(),
	}

	bucket := l.Ranker.Rank(snap.Entries(hit.TierID, hit.Period))
	resp.Total = len(bucket)
	cfg, configured := snap.Tier(hit.TierID)
	if configured && cfg.Label != "" {
		resp.TierLabel = cfg.Label
	}
	for _, e := range bucket {
		if e.ID != hit.ID {
			continue
		}
		resp.Position = e.Position
		if configured {
			resp.Zone = model.ClassifyZone(e, cfg).String()
		}
		break
	}

	bonus := l.Bonus.Effective(hit.Entry)
	resp.BonusLevel = bonus.Level
	resp.Multiplier = bonus.Multiplier

	p := l.Bonus.Project(hit.Entry)
	resp.Next = types.ProjectionItem{
		CurrentLevel:             p.CurrentLevel,
		NextLevel:                p.NextLevel,
		Terminal:                 p.Terminal(),
		NextMinDays:              p.NextMinDays,
		NextMinHours:             p.NextMinHours,
		RemainingDays:            p.RemainingDays,
		RemainingHours:           p.RemainingHours,
		DayRatio:                 p.DayRatio,
		HourRatio:                p.HourRatio,
		RemainingDiamondsToFloor: p.RemainingDiamondsToFloor,
	}
	return resp, nil
}

// Search 先精确查找（允许跨周期回退），再按子串匹配
func (l *LookupLogic) Search(ctx context.Context, req *types.SearchReq) (*types.SearchResp, error) {
	period, ok := model.ParsePeriod(req.Period)
	if !ok {
		return nil, errorx.BadRequest("invalid period: " + req.Period)
	}
	if strings.TrimSpace(req.Q) == "" {
		return nil, errorx.BadRequest("q is required")
	}

	hit, kind, ok := l.Snapshots.Current().Search(req.Q, period)
	if !ok {
		lookupTotal.Inc("search", "miss")
		logx.WithContext(ctx).Infow("search found nothing", logx.Field("q", req.Q))
		return nil, errorx.NotFound("no entry matches: " + req.Q)
	}
	lookupTotal.Inc("search", string(kind))
	return &types.SearchResp{
		ID:     hit.ID,
		Tier:   hit.TierID,
		Period: string(hit.Period),
		Match:  string(kind),
	}, nil
}
