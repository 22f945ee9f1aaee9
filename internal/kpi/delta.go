// Package kpi 在规范化记录上计算加权 KPI、同比变化、排名与结构分析
// 所有除法都经过 SafeDiv，结果不会是 NaN 或无穷
package kpi

import (
	"math"

	"github.com/emiranda028/hoteles-sub000/internal/model"
)

// SafeDiv 返回 a/b；b 为 0 或任一侧非有限值时返回 0
func SafeDiv(a, b float64) float64 {
	if b == 0 || !finite(a) || !finite(b) {
		return 0
	}
	r := a / b
	if !finite(r) {
		return 0
	}
	return r
}

// DeltaOf 比率变化 (current-base)/base；基准为0或非有限值时标记 NoBase
func DeltaOf(current, base float64) model.Delta {
	d := model.Delta{Current: current, Base: base}
	if base == 0 || !finite(base) || !finite(current) {
		d.NoBase = true
		return d
	}
	d.Change = (current - base) / base
	return d
}

// PointDelta 两个比例之差（百分点）；不需要分母，仅输入非有限时标记 NoBase
func PointDelta(current, base float64) model.Delta {
	d := model.Delta{Current: current, Base: base, Points: true}
	if !finite(base) || !finite(current) {
		d.NoBase = true
		return d
	}
	d.Change = current - base
	return d
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
