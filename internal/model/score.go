package model

import "math"

// CalcScore 计算条目的积分
// 有预计算的 Points 时直接取整返回；否则按 (钻石 + LIVE Match) / 1000 × 倍率 计算
// 结果不会小于 0
func CalcScore(e Entry) int64 {
	if e.Points != nil && isFinite(*e.Points) {
		return clampRound(*e.Points)
	}
	base := float64(e.Diamonds+e.LiveMatchCount) / 1000
	mult := 1.0
	if e.Multiplier != nil && isFinite(*e.Multiplier) {
		mult = *e.Multiplier
	}
	return clampRound(base * mult)
}

func clampRound(v float64) int64 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	return int64(r)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
