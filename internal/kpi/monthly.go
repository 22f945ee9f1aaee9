package kpi

import "github.com/emiranda028/hoteles-sub000/internal/model"

// MonthlySeries 逐月对比 f.Year 与基准年
// 基准年月份数少于本年时，只比较两年都有数据的月份并设置 IncompleteBase；
// 否则任一年有数据的月份都可比较
func MonthlySeries(records []model.OperationalDay, f model.Filter) model.MonthlySeries {
	baseYear := f.Base()
	var cur, base [13]sums
	var hasCur, hasBase [13]bool

	for _, r := range records {
		m := int(r.Date.Month())
		switch {
		case matchesDay(r, f.Year, f):
			cur[m].add(r)
			hasCur[m] = true
		case matchesDay(r, baseYear, f):
			base[m].add(r)
			hasBase[m] = true
		}
	}

	nCur, nBase := 0, 0
	for m := 1; m <= 12; m++ {
		if hasCur[m] {
			nCur++
		}
		if hasBase[m] {
			nBase++
		}
	}

	out := model.MonthlySeries{
		Year:             f.Year,
		BaseYear:         baseYear,
		IncompleteBase:   nBase < nCur,
		Months:           make([]model.MonthPoint, 0, 12),
		ComparableMonths: []int{},
	}

	var curTotal, baseTotal sums
	for m := 1; m <= 12; m++ {
		if !f.MatchesMonth(m) {
			continue
		}
		comparable := hasCur[m] || hasBase[m]
		if out.IncompleteBase {
			comparable = hasCur[m] && hasBase[m]
		}
		p := model.MonthPoint{
			Month:      m,
			Current:    cur[m].aggregate(),
			Base:       base[m].aggregate(),
			HasCurrent: hasCur[m],
			HasBase:    hasBase[m],
			Comparable: comparable,
		}
		p.Occupancy = DeltaOf(p.Current.Occupancy, p.Base.Occupancy)
		p.Revenue = DeltaOf(p.Current.Revenue, p.Base.Revenue)
		out.Months = append(out.Months, p)

		if comparable {
			out.ComparableMonths = append(out.ComparableMonths, m)
			curTotal.merge(cur[m])
			baseTotal.merge(base[m])
		}
	}

	out.Current = curTotal.aggregate()
	out.Base = baseTotal.aggregate()
	out.Occupancy = DeltaOf(out.Current.Occupancy, out.Base.Occupancy)
	out.AverageRate = DeltaOf(out.Current.AverageRate, out.Base.AverageRate)
	out.Revenue = DeltaOf(out.Current.Revenue, out.Base.Revenue)
	return out
}
