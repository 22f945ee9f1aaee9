package kpi

import "github.com/emiranda028/hoteles-sub000/internal/model"

// sums 预聚合的加权累计值
type sums struct {
	occupancyW float64 // Σ occupancy·weight
	rateW      float64 // Σ averageRate·weight
	weight     float64
	revenue    float64
	persons    float64
	days       int
}

func (s *sums) add(r model.OperationalDay) {
	w := r.Weight()
	s.occupancyW += r.Occupancy * w
	s.rateW += r.AverageRate * w
	s.weight += w
	s.revenue += r.RoomRevenue
	s.persons += float64(r.PersonsInHouse)
	s.days++
}

func (s *sums) merge(o sums) {
	s.occupancyW += o.occupancyW
	s.rateW += o.rateW
	s.weight += o.weight
	s.revenue += o.revenue
	s.persons += o.persons
	s.days += o.days
}

func (s sums) aggregate() model.Aggregate {
	occ := SafeDiv(s.occupancyW, s.weight)
	rate := SafeDiv(s.rateW, s.weight)
	return model.Aggregate{
		Occupancy:       occ,
		AverageRate:     rate,
		Revenue:         s.revenue,
		DoubleOccupancy: SafeDiv(s.persons, max(1, s.weight)),
		RevPAR:          rate * occ,
		Weight:          s.weight,
		Persons:         s.persons,
		Days:            s.days,
	}
}

// Select 筛选 year 年且满足酒店、模式、月份、季度条件的记录；无日期的记录不匹配
func Select(records []model.OperationalDay, year int, f model.Filter) []model.OperationalDay {
	var out []model.OperationalDay
	for _, r := range records {
		if matchesDay(r, year, f) {
			out = append(out, r)
		}
	}
	return out
}

func matchesDay(r model.OperationalDay, year int, f model.Filter) bool {
	if r.Date.IsZero() || r.Date.Year() != year {
		return false
	}
	return f.MatchesHotel(r.Hotel) && mode(f).Includes(r.HoF) && f.MatchesMonth(int(r.Date.Month()))
}

func mode(f model.Filter) model.Mode {
	if f.Mode == "" {
		return model.ModeAll
	}
	return f.Mode
}

// Summarize 计算加权入住率、平均房价、收入、双人入住率与 RevPAR
func Summarize(records []model.OperationalDay) model.Aggregate {
	var s sums
	for _, r := range records {
		s.add(r)
	}
	return s.aggregate()
}

// Compare 在相同筛选条件下对比 f.Year 与基准年
func Compare(records []model.OperationalDay, f model.Filter) model.Comparison {
	var cur, base sums
	baseYear := f.Base()
	for _, r := range records {
		switch {
		case matchesDay(r, f.Year, f):
			cur.add(r)
		case matchesDay(r, baseYear, f):
			base.add(r)
		}
	}
	return comparison(f.Year, baseYear, cur.aggregate(), base.aggregate())
}

func comparison(year, baseYear int, cur, base model.Aggregate) model.Comparison {
	return model.Comparison{
		Year:            year,
		BaseYear:        baseYear,
		Current:         cur,
		Base:            base,
		Occupancy:       DeltaOf(cur.Occupancy, base.Occupancy),
		OccupancyPoints: PointDelta(cur.Occupancy, base.Occupancy),
		AverageRate:     DeltaOf(cur.AverageRate, base.AverageRate),
		Revenue:         DeltaOf(cur.Revenue, base.Revenue),
		DoubleOccupancy: DeltaOf(cur.DoubleOccupancy, base.DoubleOccupancy),
		RevPAR:          DeltaOf(cur.RevPAR, base.RevPAR),
	}
}
