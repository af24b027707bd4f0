package model

import (
	"fmt"
	"strings"
)

// WindowPolicy 决定排名列表中哪一部分会被展示
type WindowPolicy int

const (
	// WindowCapped 取前 min(定员, 100) 名
	WindowCapped WindowPolicy = iota
	// WindowUncapped 忽略定员，始终取前 100 名
	WindowUncapped
	// WindowSplit 取前 50 名与后 50 名
	WindowSplit
)

const (
	maxDisplay = 100
	splitTop   = 50
	splitBot   = 50
)

func (p WindowPolicy) String() string {
	switch p {
	case WindowUncapped:
		return "uncapped"
	case WindowSplit:
		return "split"
	default:
		return "capped"
	}
}

// ParseWindowPolicy 解析配置中的策略名
func ParseWindowPolicy(s string) (WindowPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "capped", "":
		return WindowCapped, nil
	case "uncapped":
		return WindowUncapped, nil
	case "split":
		return WindowSplit, nil
	}
	return WindowCapped, fmt.Errorf("unknown window policy %q", s)
}

// DefaultWindowPolicies silver 展示首尾各 50 名，bronze 不设定员
var DefaultWindowPolicies = map[string]WindowPolicy{
	"silver": WindowSplit,
	"bronze": WindowUncapped,
}

// Windower 按段位选择展示窗口
type Windower struct {
	policies map[string]WindowPolicy
}

// NewWindower policies 为 nil 时使用 DefaultWindowPolicies
func NewWindower(policies map[string]WindowPolicy) *Windower {
	if policies == nil {
		policies = DefaultWindowPolicies
	}
	return &Windower{policies: policies}
}

// Policy 未配置的段位按定员截断
func (w *Windower) Policy(tierID string) WindowPolicy {
	if p, ok := w.policies[tierID]; ok {
		return p
	}
	return WindowCapped
}

// Select 只决定展示哪些条目，名次与区域在此之前已按完整列表算好
func (w *Windower) Select(tierID string, ranked []RankedEntry, cfg TierConfig) []RankedEntry {
	return SelectWindow(w.Policy(tierID), ranked, cfg)
}

// SelectWindow 按策略截取展示窗口，返回新切片
func SelectWindow(policy WindowPolicy, ranked []RankedEntry, cfg TierConfig) []RankedEntry {
	n := len(ranked)
	switch policy {
	case WindowSplit:
		top := ranked[:min(splitTop, n)]
		out := make([]RankedEntry, 0, min(n, splitTop+splitBot))
		out = append(out, top...)
		seen := make(map[string]struct{}, len(top))
		for _, e := range top {
			seen[e.ID] = struct{}{}
		}
		for _, e := range ranked[max(0, n-splitBot):] {
			if _, dup := seen[e.ID]; dup {
				continue
			}
			out = append(out, e)
		}
		return out
	case WindowUncapped:
		return slicePrefix(ranked, maxDisplay)
	default:
		limit := maxDisplay
		if cfg.Capacity > 0 {
			limit = min(cfg.Capacity, maxDisplay)
		}
		return slicePrefix(ranked, limit)
	}
}

func slicePrefix(ranked []RankedEntry, limit int) []RankedEntry {
	out := make([]RankedEntry, min(limit, len(ranked)))
	copy(out, ranked)
	return out
}
