package kpi

import (
	"sort"

	"github.com/emiranda028/hoteles-sub000/internal/model"
	"github.com/emiranda028/hoteles-sub000/internal/normalize"
)

// ByWeekday 按星期聚合所选年份（不区分月份）
// 始终返回七个星期，入住率降序；相同时保持周一在前的顺序
func ByWeekday(records []model.OperationalDay, f model.Filter) []model.WeekdayEntry {
	var days [7]sums
	for _, r := range records {
		if !matchesDay(r, f.Year, f) {
			continue
		}
		idx := normalize.WeekdayIndex(normalize.Weekday(r.Weekday))
		if idx < 0 {
			idx = normalize.WeekdayIndex(normalize.WeekdayOf(r.Date))
		}
		days[idx].add(r)
	}

	out := make([]model.WeekdayEntry, 0, len(days))
	for i, s := range days {
		out = append(out, model.WeekdayEntry{Weekday: normalize.Weekdays[i], Aggregate: s.aggregate()})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Occupancy > out[j].Occupancy
	})
	return out
}

// ByHotel 按酒店聚合，按收入降序；Share 为收入占比
func ByHotel(records []model.OperationalDay, f model.Filter) []model.HotelEntry {
	var order []string
	perHotel := make(map[string]*sums)
	var total float64
	for _, r := range records {
		if !matchesDay(r, f.Year, f) {
			continue
		}
		s, ok := perHotel[r.Hotel]
		if !ok {
			s = &sums{}
			perHotel[r.Hotel] = s
			order = append(order, r.Hotel)
		}
		s.add(r)
		total += r.RoomRevenue
	}

	out := make([]model.HotelEntry, 0, len(order))
	for _, h := range order {
		agg := perHotel[h].aggregate()
		out = append(out, model.HotelEntry{Hotel: h, Share: SafeDiv(agg.Revenue, total), Aggregate: agg})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Revenue > out[j].Revenue
	})
	return out
}
