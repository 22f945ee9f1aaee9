package kpi

import (
	"github.com/emiranda028/hoteles-sub000/internal/model"
	"github.com/emiranda028/hoteles-sub000/internal/normalize"
)

type tierTotals struct {
	tiers  *Tally
	hotels *Tally
	elite  float64
}

func (t *tierTotals) add(r model.Membership) {
	tier := normalize.Tier(r.Tier)
	n := float64(r.Count)
	t.tiers.Add(string(tier), n)
	t.hotels.Add(r.Hotel, n)
	if tier.Elite() {
		t.elite += n
	}
}

// MembershipMix 会员等级分桶，并对比 f.Year 与基准年的 Elite 占比
// 占比差为百分点，任一年份无数据时标记 NoBase；总量的比率变化在基准为 0 时标记 NoBase
func MembershipMix(records []model.Membership, f model.Filter, topN int) model.MembershipMix {
	baseYear := f.Base()
	cur := tierTotals{tiers: NewTally(), hotels: NewTally()}
	base := tierTotals{tiers: NewTally(), hotels: NewTally()}

	for _, r := range records {
		if !f.MatchesHotel(r.Hotel) || !f.MatchesMonth(r.Month) {
			continue
		}
		switch r.Year {
		case f.Year:
			cur.add(r)
		case baseYear:
			base.add(r)
		}
	}

	total := cur.tiers.Total()
	baseTotal := base.tiers.Total()
	out := model.MembershipMix{
		Year:           f.Year,
		BaseYear:       baseYear,
		Tiers:          Rank(cur.tiers, topN),
		Hotels:         Rank(cur.hotels, 0),
		Total:          total,
		Elite:          cur.elite,
		NonElite:       total - cur.elite,
		EliteShare:     SafeDiv(cur.elite, total),
		BaseTotal:      baseTotal,
		BaseElite:      base.elite,
		BaseEliteShare: SafeDiv(base.elite, baseTotal),
		TotalDelta:     DeltaOf(total, baseTotal),
		EliteDelta:     DeltaOf(cur.elite, base.elite),
	}
	out.EliteShareDiff = PointDelta(out.EliteShare, out.BaseEliteShare)
	if total == 0 || baseTotal == 0 {
		out.EliteShareDiff.NoBase = true
		out.EliteShareDiff.Change = 0
	}
	return out
}

// NationalityRanking f.Year 的国家与大洲排名；来源中大洲为空的记为 "Unknown"
func NationalityRanking(records []model.Nationality, f model.Filter, topN int) model.NationalityReport {
	baseYear := f.Base()
	countries := NewTally()
	continents := NewTally()
	var baseTotal float64

	for _, r := range records {
		if !f.MatchesMonth(r.Month) {
			continue
		}
		switch r.Year {
		case f.Year:
			countries.Add(r.Country, r.Count)
			continent := r.Continent
			if continent == "" {
				continent = normalize.ContinentUnknown
			}
			continents.Add(continent, r.Count)
		case baseYear:
			if finite(r.Count) {
				baseTotal += r.Count
			}
		}
	}

	return model.NationalityReport{
		Year:       f.Year,
		BaseYear:   baseYear,
		Countries:  Rank(countries, topN),
		Continents: Rank(continents, 0),
		Total:      countries.Total(),
		BaseTotal:  baseTotal,
		TotalDelta: DeltaOf(countries.Total(), baseTotal),
	}
}
