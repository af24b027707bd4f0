package model

// Period 表示统计周期
type Period string

const (
	PeriodPrevious Period = "previous"
	PeriodCurrent  Period = "current"
)

// Periods 按固定顺序列出所有周期（上期在前）
var Periods = []Period{PeriodPrevious, PeriodCurrent}

// Valid 判断周期是否合法
func (p Period) Valid() bool {
	return p == PeriodPrevious || p == PeriodCurrent
}

// Other 返回另一个周期，用于查找回退
func (p Period) Other() Period {
	if p == PeriodCurrent {
		return PeriodPrevious
	}
	return PeriodCurrent
}

// Entry 表示某个段位、某个周期内一名主播的统计数据
// 由 Normalize 生成，字段均已补齐默认值
type Entry struct {
	ID             string
	Diamonds       int64
	LiveMatchCount int64
	Days           float64
	Hours          float64
	// 以下为可选的预计算字段，nil 表示缺失
	Points     *float64
	Multiplier *float64
	BonusLevel *int
	IconURL    string
}

// TierConfig 段位配置
// Capacity 为 0 表示不限定员
type TierConfig struct {
	ID           string
	Label        string
	Capacity     int
	PromoteTop   int
	DemoteBottom int
}

// RankedEntry 排名后的条目，Position 从 1 开始
type RankedEntry struct {
	Entry
	Score    int64
	Position int
}

// Snapshot 一次加载得到的只读数据快照
type Snapshot struct {
	// Tiers 保持数据源声明的顺序
	Tiers   []TierConfig
	Buckets map[string]map[Period][]Entry
}

// Tier 按 id 查找段位配置
func (s *Snapshot) Tier(id string) (TierConfig, bool) {
	if s == nil {
		return TierConfig{}, false
	}
	for _, t := range s.Tiers {
		if t.ID == id {
			return t, true
		}
	}
	return TierConfig{}, false
}

// Entries 返回某段位某周期的原始条目，不存在时返回 nil
func (s *Snapshot) Entries(tierID string, period Period) []Entry {
	if s == nil {
		return nil
	}
	return s.Buckets[tierID][period]
}

// Eligible 钻石数达到 10000 才计入登龙门
func Eligible(e Entry) bool {
	return e.Diamonds >= EligibleDiamonds
}

// EligibleDiamonds 参与资格的钻石下限
const EligibleDiamonds = 10000
