package model

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale 同分时按日语排序规则比较 ID
var DefaultLocale = language.Japanese

// Ranker 负责排序并分配名次
type Ranker struct {
	locale language.Tag
}

// NewRanker 创建 Ranker，locale 决定同分时 ID 的比较规则
func NewRanker(locale language.Tag) *Ranker {
	return &Ranker{locale: locale}
}

// Rank 返回排好序的新切片，不修改入参
// 规则：积分降序；同分按 ID 的本地化排序升序，排序规则认为相等时再按字节序
func (r *Ranker) Rank(entries []Entry) []RankedEntry {
	ranked := make([]RankedEntry, len(entries))
	for i, e := range entries {
		ranked[i] = RankedEntry{Entry: e, Score: CalcScore(e)}
	}

	// Collator 非并发安全，每次排序单独创建
	col := collate.New(r.locale)
	slices.SortStableFunc(ranked, func(a, b RankedEntry) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if c := col.CompareString(a.ID, b.ID); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	for i := range ranked {
		ranked[i].Position = i + 1
	}
	return ranked
}
