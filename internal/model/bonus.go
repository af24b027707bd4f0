package model

import "math"

// BonusLevelDefinition 一档奖励倍率的门槛
type BonusLevelDefinition struct {
	Level      int
	MinDays    float64
	MinHours   float64
	Multiplier float64
}

// BonusTable 奖励等级表，Levels 按 Level 严格递增
type BonusTable struct {
	FloorDiamonds int64
	Levels        []BonusLevelDefinition
}

// DefaultBonusTable 钻石 150k 以上才参与判定
var DefaultBonusTable = BonusTable{
	FloorDiamonds: 150000,
	Levels: []BonusLevelDefinition{
		{Level: 1, MinDays: 18, MinHours: 40, Multiplier: 1.2},
		{Level: 2, MinDays: 20, MinHours: 80, Multiplier: 1.4},
		{Level: 3, MinDays: 20, MinHours: 100, Multiplier: 1.6},
		{Level: 4, MinDays: 22, MinHours: 120, Multiplier: 1.8},
		{Level: 5, MinDays: 24, MinHours: 140, Multiplier: 2.0},
	},
}

// BonusLevel 奖励等级及对应倍率，0 级倍率为 1.0
type BonusLevel struct {
	Level      int
	Multiplier float64
}

// Projection 距离下一档奖励的进度
type Projection struct {
	CurrentLevel int
	// NextLevel 为 0 表示已达到最高档
	NextLevel                int
	NextMinDays              float64
	NextMinHours             float64
	RemainingDays            float64
	RemainingHours           float64
	DayRatio                 float64
	HourRatio                float64
	RemainingDiamondsToFloor int64
}

// Terminal 是否已无下一档
func (p Projection) Terminal() bool {
	return p.NextLevel == 0
}

// Level 根据钻石、天数、时长计算奖励等级
func (t BonusTable) Level(e Entry) BonusLevel {
	best := BonusLevel{Multiplier: 1.0}
	if e.Diamonds < t.FloorDiamonds {
		return best
	}
	for _, lv := range t.Levels {
		if e.Days >= lv.MinDays && e.Hours >= lv.MinHours && lv.Level > best.Level {
			best = BonusLevel{Level: lv.Level, Multiplier: lv.Multiplier}
		}
	}
	return best
}

// Effective 展示用的等级与倍率：优先使用数据源给出的值
func (t BonusTable) Effective(e Entry) BonusLevel {
	computed := t.Level(e)
	if e.BonusLevel != nil {
		computed.Level = *e.BonusLevel
	}
	if e.Multiplier != nil && isFinite(*e.Multiplier) {
		computed.Multiplier = *e.Multiplier
	}
	return computed
}

// Project 计算到下一档的剩余天数、时长与比例
func (t BonusTable) Project(e Entry) Projection {
	cur := t.Level(e).Level
	if e.BonusLevel != nil {
		cur = *e.BonusLevel
	}

	next, ok := t.find(cur + 1)
	if !ok {
		return Projection{CurrentLevel: cur, DayRatio: 1, HourRatio: 1}
	}

	return Projection{
		CurrentLevel:             cur,
		NextLevel:                next.Level,
		NextMinDays:              next.MinDays,
		NextMinHours:             next.MinHours,
		RemainingDays:            math.Max(0, next.MinDays-e.Days),
		RemainingHours:           math.Max(0, next.MinHours-e.Hours),
		DayRatio:                 ratio(e.Days, next.MinDays),
		HourRatio:                ratio(e.Hours, next.MinHours),
		RemainingDiamondsToFloor: max(0, t.FloorDiamonds-e.Diamonds),
	}
}

// MaxLevel 表中最高等级
func (t BonusTable) MaxLevel() int {
	top := 0
	for _, lv := range t.Levels {
		top = max(top, lv.Level)
	}
	return top
}

func (t BonusTable) find(level int) (BonusLevelDefinition, bool) {
	for _, lv := range t.Levels {
		if lv.Level == level {
			return lv, true
		}
	}
	return BonusLevelDefinition{}, false
}

func ratio(v, threshold float64) float64 {
	if threshold == 0 {
		return 0
	}
	return math.Min(1, v/threshold)
}
