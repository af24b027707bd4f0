package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RawTier 数据源中的段位配置
type RawTier struct {
	ID           string `json:"id" validate:"required"`
	Label        string `json:"label"`
	Capacity     int    `json:"capacity" validate:"gte=0"`
	PromoteTop   int    `json:"promoteTop" validate:"gte=0"`
	DemoteBottom int    `json:"demoteBottom" validate:"gte=0"`
}

// RawEntry 数据源中的条目，数值字段可能是数字、数字字符串或 null
type RawEntry struct {
	ID         string `json:"tiktokId"`
	Diamonds   any    `json:"diamonds"`
	LiveMatch  any    `json:"liveMatch"`
	Days       any    `json:"days"`
	Hours      any    `json:"hours"`
	Points     any    `json:"pt"`
	Multiplier any    `json:"multiplier"`
	BonusLevel any    `json:"bonusLevel"`
	IconURL    string `json:"iconUrl"`
}

// RawSnapshot 数据源原始快照
// Ranks: 段位 ID -> 周期 -> 条目
type RawSnapshot struct {
	Tiers []RawTier                        `json:"tiers" validate:"unique=ID,dive"`
	Ranks map[string]map[string][]RawEntry `json:"ranks"`
}

// ErrInvalidSnapshot 快照结构不合法
var ErrInvalidSnapshot = errors.New("invalid snapshot")

var validate = validator.New()

// periodAliases 兼容旧数据中的 last / this
var periodAliases = map[string]Period{
	"previous": PeriodPrevious,
	"last":     PeriodPrevious,
	"current":  PeriodCurrent,
	"this":     PeriodCurrent,
}

// ParsePeriod 解析周期名，支持 last / this 别名
func ParsePeriod(s string) (Period, bool) {
	p, ok := periodAliases[strings.ToLower(strings.TrimSpace(s))]
	return p, ok
}

// Normalize 校验并规整原始快照
// 缺失、非数字或非有限的指标按 0 处理，负数截断为 0，钻石与 LIVE Match 取整；
// 可选字段只有在是有限数字时才保留
func Normalize(raw *RawSnapshot) (*Snapshot, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: empty", ErrInvalidSnapshot)
	}
	if err := validate.Struct(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	snap := &Snapshot{
		Tiers:   make([]TierConfig, 0, len(raw.Tiers)),
		Buckets: make(map[string]map[Period][]Entry, len(raw.Ranks)),
	}
	for _, t := range raw.Tiers {
		snap.Tiers = append(snap.Tiers, TierConfig{
			ID:           t.ID,
			Label:        t.Label,
			Capacity:     t.Capacity,
			PromoteTop:   t.PromoteTop,
			DemoteBottom: t.DemoteBottom,
		})
	}

	for tierID, periods := range raw.Ranks {
		bucket := make(map[Period][]Entry, len(periods))
		for key, list := range periods {
			p, ok := ParsePeriod(key)
			if !ok {
				return nil, fmt.Errorf("%w: tier %q has unknown period %q", ErrInvalidSnapshot, tierID, key)
			}
			entries := make([]Entry, 0, len(list))
			for _, re := range list {
				entries = append(entries, NormalizeEntry(re))
			}
			bucket[p] = append(bucket[p], entries...)
		}
		snap.Buckets[tierID] = bucket
	}
	return snap, nil
}

// NormalizeEntry 把单条原始数据转换为类型明确的 Entry
func NormalizeEntry(re RawEntry) Entry {
	e := Entry{
		ID:             strings.TrimSpace(re.ID),
		Diamonds:       int64(math.Round(nonNegative(re.Diamonds))),
		LiveMatchCount: int64(math.Round(nonNegative(re.LiveMatch))),
		Days:           nonNegative(re.Days),
		Hours:          nonNegative(re.Hours),
		IconURL:        re.IconURL,
	}
	if v, ok := toNumber(re.Points); ok {
		e.Points = &v
	}
	if v, ok := toNumber(re.Multiplier); ok {
		e.Multiplier = &v
	}
	if v, ok := toNumber(re.BonusLevel); ok {
		lv := int(math.Round(v))
		e.BonusLevel = &lv
	}
	return e
}

func nonNegative(v any) float64 {
	n, _ := toNumber(v)
	return math.Max(0, n)
}

// toNumber 把任意 JSON 值转换为有限浮点数
func toNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case bool:
		if n {
			f = 1
		}
	default:
		return 0, false
	}
	if !isFinite(f) {
		return 0, false
	}
	return f, true
}
