package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"tier_standings/internal/errorx"
	"tier_standings/internal/model"
	"tier_standings/internal/types"
)

// Snapshots 提供当前只读快照
type Snapshots interface {
	Current() *model.Snapshot
}

// RankingLogic 负责段位列表与排行榜展示
// 每次请求取一次快照，保证同一请求内数据一致
type RankingLogic struct {
	Snapshots Snapshots
	Ranker    *model.Ranker
	Windower  *model.Windower
	Bonus     model.BonusTable
}

// Tiers 返回段位标签页，顺序与数据源声明一致
func (l *RankingLogic) Tiers(_ context.Context) *types.TiersResp {
	snap := l.Snapshots.Current()
	resp := &types.TiersResp{List: []types.TierItem{}}
	if snap == nil {
		return resp
	}
	for _, t := range snap.Tiers {
		policy := l.Windower.Policy(t.ID)
		resp.List = append(resp.List, types.TierItem{
			ID:           t.ID,
			Label:        t.Label,
			Capacity:     t.Capacity,
			Unbounded:    policy == model.WindowUncapped || t.Capacity == 0,
			PromoteTop:   t.PromoteTop,
			DemoteBottom: t.DemoteBottom,
			Window:       policy.String(),
		})
	}
	return resp
}

// Standings 对完整列表排名并划分区域，再截取展示窗口
// 段位未配置或没有条目时返回 NoData，而不是错误
func (l *RankingLogic) Standings(ctx context.Context, req *types.StandingsReq) (*types.StandingsResp, error) {
	period, ok := model.ParsePeriod(req.Period)
	if !ok {
		return nil, errorx.BadRequest("invalid period: " + req.Period)
	}

	resp := &types.StandingsResp{
		Tier:   req.Tier,
		Period: string(period),
		Window: l.Windower.Policy(req.Tier).String(),
		List:   []types.StandingRow{},
	}

	snap := l.Snapshots.Current()
	cfg, ok := snap.Tier(req.Tier)
	entries := snap.Entries(req.Tier, period)
	if !ok || len(entries) == 0 {
		resp.NoData = true
		logx.WithContext(ctx).Debugw("no standings data",
			logx.Field("tier", req.Tier), logx.Field("period", period), logx.Field("configured", ok))
		return resp, nil
	}

	ranked := l.Ranker.Rank(entries)
	bounds := model.ZoneBoundaries(cfg)
	resp.Label = cfg.Label
	resp.Total = len(ranked)
	resp.PromoteAfter = bounds.PromoteAfter
	resp.DemoteFrom = bounds.DemoteFrom

	for _, e := range l.Windower.Select(cfg.ID, ranked, cfg) {
		zone := model.ClassifyZone(e, cfg)
		bonus := l.Bonus.Effective(e.Entry)
		resp.List = append(resp.List, types.StandingRow{
			Position:   e.Position,
			ID:         e.ID,
			IconURL:    e.IconURL,
			Points:     e.Score,
			Diamonds:   e.Diamonds,
			Days:       e.Days,
			Hours:      e.Hours,
			BonusLevel: bonus.Level,
			Multiplier: bonus.Multiplier,
			Zone:       zone.String(),
			Eligible:   model.Eligible(e.Entry),
			Badge:      string(model.BadgeFor(e, zone)),
		})
	}
	return resp, nil
}
