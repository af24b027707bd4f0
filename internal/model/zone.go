package model

// Zone 升降级区域
type Zone int

const (
	ZoneNone Zone = iota
	ZonePromote
	ZoneDemote
)

func (z Zone) String() string {
	switch z {
	case ZonePromote:
		return "promote"
	case ZoneDemote:
		return "demote"
	default:
		return "none"
	}
}

// Badge 行徽章，不满足资格时优先显示
type Badge string

const (
	BadgeNone       Badge = ""
	BadgeIneligible Badge = "ineligible"
	BadgePromote    Badge = "promote"
	BadgeDemote     Badge = "demote"
)

// DemoteStart 降级区起始名次，从定员边界往前数，而不是从列表末尾
func DemoteStart(cfg TierConfig) int {
	return max(1, cfg.Capacity-cfg.DemoteBottom+1)
}

// ClassifyZone 只看名次与段位配置，与积分无关
// 升级区与降级区重叠时以升级区为准；不限定员的段位没有降级区
func ClassifyZone(e RankedEntry, cfg TierConfig) Zone {
	pos := e.Position
	if pos <= 0 {
		return ZoneNone
	}
	if cfg.PromoteTop > 0 && pos <= cfg.PromoteTop {
		return ZonePromote
	}
	if hasDemoteZone(cfg) && pos >= DemoteStart(cfg) {
		return ZoneDemote
	}
	return ZoneNone
}

// BadgeFor 计算行徽章
func BadgeFor(e RankedEntry, zone Zone) Badge {
	if !Eligible(e.Entry) {
		return BadgeIneligible
	}
	switch zone {
	case ZonePromote:
		return BadgePromote
	case ZoneDemote:
		return BadgeDemote
	}
	return BadgeNone
}

// Boundaries 分隔线位置，0 表示不画
type Boundaries struct {
	PromoteAfter int
	DemoteFrom   int
}

// ZoneBoundaries 返回升级区之后第一名与降级区第一名的名次
func ZoneBoundaries(cfg TierConfig) Boundaries {
	var b Boundaries
	if cfg.PromoteTop > 0 {
		b.PromoteAfter = cfg.PromoteTop + 1
	}
	if hasDemoteZone(cfg) {
		b.DemoteFrom = DemoteStart(cfg)
	}
	return b
}

func hasDemoteZone(cfg TierConfig) bool {
	return cfg.DemoteBottom > 0 && cfg.Capacity > 0
}
