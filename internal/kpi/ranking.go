package kpi

import (
	"sort"

	"github.com/emiranda028/hoteles-sub000/internal/model"
)

// Tally 按标签累计数量，保留首次出现顺序
type Tally struct {
	order  []string
	values map[string]float64
	total  float64
}

// NewTally 创建空计数器
func NewTally() *Tally {
	return &Tally{values: make(map[string]float64)}
}

// Add 在 label 下累计 v
func (t *Tally) Add(label string, v float64) {
	if !finite(v) {
		return
	}
	if _, ok := t.values[label]; !ok {
		t.order = append(t.order, label)
	}
	t.values[label] += v
	t.total += v
}

// Total 返回所有标签之和
func (t *Tally) Total() float64 {
	return t.total
}

// Rank 按值降序排列，相同时保持首次出现顺序
// 占比按截断前的总数计算；topN <= 0 保留全部
func Rank(t *Tally, topN int) []model.RankingEntry {
	if t == nil || len(t.order) == 0 {
		return []model.RankingEntry{}
	}
	out := make([]model.RankingEntry, 0, len(t.order))
	for _, label := range t.order {
		v := t.values[label]
		out = append(out, model.RankingEntry{Label: label, Value: v, Share: SafeDiv(v, t.total)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}
