package model

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

const (
	tierQuery = "SELECT `id`, `label`, `capacity`, `promote_top`, `demote_bottom` " +
		"FROM `leaderboard_tier` ORDER BY `sort_order`, `id`"
	entryQuery = "SELECT `tier_id`, `period`, `entry_id`, `diamonds`, `live_match`, `days`, `hours`, " +
		"`points`, `multiplier`, `bonus_level`, `icon_url` FROM `leaderboard_entry`"
)

type tierRow struct {
	ID           string `db:"id"`
	Label        string `db:"label"`
	Capacity     int    `db:"capacity"`
	PromoteTop   int    `db:"promote_top"`
	DemoteBottom int    `db:"demote_bottom"`
}

type entryRow struct {
	TierID     string          `db:"tier_id"`
	Period     string          `db:"period"`
	EntryID    string          `db:"entry_id"`
	Diamonds   int64           `db:"diamonds"`
	LiveMatch  int64           `db:"live_match"`
	Days       float64         `db:"days"`
	Hours      float64         `db:"hours"`
	Points     sql.NullFloat64 `db:"points"`
	Multiplier sql.NullFloat64 `db:"multiplier"`
	BonusLevel sql.NullInt64   `db:"bonus_level"`
	IconURL    string          `db:"icon_url"`
}

// RankingModel 从 MySQL 读取段位配置与条目，组装成原始快照
type RankingModel struct {
	conn sqlx.SqlConn
}

func NewRankingModel(conn sqlx.SqlConn) *RankingModel {
	return &RankingModel{conn: conn}
}

// Load 段位按 sort_order 排序，作为声明顺序
func (m *RankingModel) Load(ctx context.Context) (*RawSnapshot, error) {
	var tiers []tierRow
	if err := m.conn.QueryRowsCtx(ctx, &tiers, tierQuery); err != nil {
		return nil, fmt.Errorf("query tiers failed: %w", err)
	}
	var entries []entryRow
	if err := m.conn.QueryRowsCtx(ctx, &entries, entryQuery); err != nil {
		return nil, fmt.Errorf("query entries failed: %w", err)
	}

	raw := &RawSnapshot{
		Tiers: make([]RawTier, 0, len(tiers)),
		Ranks: make(map[string]map[string][]RawEntry),
	}
	for _, t := range tiers {
		raw.Tiers = append(raw.Tiers, RawTier{
			ID:           t.ID,
			Label:        t.Label,
			Capacity:     t.Capacity,
			PromoteTop:   t.PromoteTop,
			DemoteBottom: t.DemoteBottom,
		})
	}
	for _, r := range entries {
		periods, ok := raw.Ranks[r.TierID]
		if !ok {
			periods = make(map[string][]RawEntry)
			raw.Ranks[r.TierID] = periods
		}
		periods[r.Period] = append(periods[r.Period], r.toRaw())
	}
	return raw, nil
}

func (r entryRow) toRaw() RawEntry {
	re := RawEntry{
		ID:        r.EntryID,
		Diamonds:  r.Diamonds,
		LiveMatch: r.LiveMatch,
		Days:      r.Days,
		Hours:     r.Hours,
		IconURL:   r.IconURL,
	}
	if r.Points.Valid {
		re.Points = r.Points.Float64
	}
	if r.Multiplier.Valid {
		re.Multiplier = r.Multiplier.Float64
	}
	if r.BonusLevel.Valid {
		re.BonusLevel = r.BonusLevel.Int64
	}
	return re
}
