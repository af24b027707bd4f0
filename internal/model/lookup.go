package model

import (
	"slices"
	"strings"
)

// Located 查找结果：原始条目及其所属段位、周期，不含名次
type Located struct {
	Entry
	TierID string
	Period Period
}

// MatchKind 搜索命中方式
type MatchKind string

const (
	MatchExact    MatchKind = "exact"
	MatchContains MatchKind = "contains"
)

// FindByID 按 ID（不区分大小写）查找条目
// allowFallback 为 true 时先查 preferred 周期再查另一个周期；
// 同一周期内按段位声明顺序查找，命中即返回
func (s *Snapshot) FindByID(id string, preferred Period, allowFallback bool) (Located, bool) {
	if s == nil {
		return Located{}, false
	}
	periods := []Period{preferred}
	if allowFallback {
		periods = append(periods, preferred.Other())
	}
	for _, p := range periods {
		for _, tier := range s.searchOrder() {
			for _, e := range s.Buckets[tier][p] {
				if strings.EqualFold(e.ID, id) {
					return Located{Entry: e, TierID: tier, Period: p}, true
				}
			}
		}
	}
	return Located{}, false
}

// Search 先做精确查找（允许回退），未命中时做子串匹配
// 子串匹配区分大小写，按段位声明顺序、上期再本期的顺序取第一个
func (s *Snapshot) Search(query string, preferred Period) (Located, MatchKind, bool) {
	query = strings.TrimSpace(query)
	if query == "" || s == nil {
		return Located{}, "", false
	}
	if hit, ok := s.FindByID(query, preferred, true); ok {
		return hit, MatchExact, true
	}
	for _, tier := range s.searchOrder() {
		for _, p := range Periods {
			for _, e := range s.Buckets[tier][p] {
				if strings.Contains(e.ID, query) {
					return Located{Entry: e, TierID: tier, Period: p}, MatchContains, true
				}
			}
		}
	}
	return Located{}, "", false
}

// searchOrder 先按声明顺序列出已配置段位，再按 ID 排序追加没有配置的段位
func (s *Snapshot) searchOrder() []string {
	order := make([]string, 0, len(s.Buckets))
	declared := make(map[string]struct{}, len(s.Tiers))
	for _, t := range s.Tiers {
		order = append(order, t.ID)
		declared[t.ID] = struct{}{}
	}
	var rest []string
	for id := range s.Buckets {
		if _, ok := declared[id]; !ok {
			rest = append(rest, id)
		}
	}
	slices.Sort(rest)
	return append(order, rest...)
}
