package model

// Aggregate 一组经营记录的加权指标
type Aggregate struct {
	Occupancy       float64 `json:"occupancy"`       // 0-1
	AverageRate     float64 `json:"averageRate"`     // currency units
	Revenue         float64 `json:"revenue"`         // currency units
	DoubleOccupancy float64 `json:"doubleOccupancy"` // persons per weighted room
	RevPAR          float64 `json:"revpar"`          // averageRate * occupancy
	Weight          float64 `json:"weight"`
	Persons         float64 `json:"persons"`
	Days            int     `json:"days"`
}

// RankingEntry 排名条目
type RankingEntry struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Share float64 `json:"share"` // 0-1
}

// Delta 同比变化
type Delta struct {
	Current float64 `json:"current"`
	Base    float64 `json:"base"`
	Change  float64 `json:"change"`
	Points  bool    `json:"points"` // Change is a difference, not a ratio
	NoBase  bool    `json:"noBase"`
}

// Comparison 本年与基准年对比
type Comparison struct {
	Year            int       `json:"year"`
	BaseYear        int       `json:"baseYear"`
	Current         Aggregate `json:"current"`
	Base            Aggregate `json:"base"`
	Occupancy       Delta     `json:"occupancy"`
	OccupancyPoints Delta     `json:"occupancyPoints"`
	AverageRate     Delta     `json:"averageRate"`
	Revenue         Delta     `json:"revenue"`
	DoubleOccupancy Delta     `json:"doubleOccupancy"`
	RevPAR          Delta     `json:"revpar"`
}

// MonthPoint 月度序列中的一个月
type MonthPoint struct {
	Month      int       `json:"month"`
	Current    Aggregate `json:"current"`
	Base       Aggregate `json:"base"`
	HasCurrent bool      `json:"hasCurrent"`
	HasBase    bool      `json:"hasBase"`
	Comparable bool      `json:"comparable"`
	Occupancy  Delta     `json:"occupancy"`
	Revenue    Delta     `json:"revenue"`
}

// MonthlySeries 月度对比序列
type MonthlySeries struct {
	Year             int          `json:"year"`
	BaseYear         int          `json:"baseYear"`
	Months           []MonthPoint `json:"months"`
	ComparableMonths []int        `json:"comparableMonths"`
	IncompleteBase   bool         `json:"incompleteBase"`
	Current          Aggregate    `json:"current"` // over ComparableMonths
	Base             Aggregate    `json:"base"`    // over ComparableMonths
	Occupancy        Delta        `json:"occupancy"`
	AverageRate      Delta        `json:"averageRate"`
	Revenue          Delta        `json:"revenue"`
}

// WeekdayEntry 按星期聚合
type WeekdayEntry struct {
	Weekday string `json:"weekday"`
	Aggregate
}

// HotelEntry 按酒店聚合
type HotelEntry struct {
	Hotel string  `json:"hotel"`
	Share float64 `json:"share"` // revenue share
	Aggregate
}

// MembershipMix 会员结构
type MembershipMix struct {
	Year           int            `json:"year"`
	BaseYear       int            `json:"baseYear"`
	Tiers          []RankingEntry `json:"tiers"`
	Hotels         []RankingEntry `json:"hotels"`
	Total          float64        `json:"total"`
	Elite          float64        `json:"elite"`
	NonElite       float64        `json:"nonElite"`
	EliteShare     float64        `json:"eliteShare"`
	BaseTotal      float64        `json:"baseTotal"`
	BaseElite      float64        `json:"baseElite"`
	BaseEliteShare float64        `json:"baseEliteShare"`
	EliteShareDiff Delta          `json:"eliteShareDiff"` // percentage points
	TotalDelta     Delta          `json:"totalDelta"`
	EliteDelta     Delta          `json:"eliteDelta"`
}

// NationalityReport 客源国排名
type NationalityReport struct {
	Year       int            `json:"year"`
	BaseYear   int            `json:"baseYear"`
	Countries  []RankingEntry `json:"countries"`
	Continents []RankingEntry `json:"continents"`
	Total      float64        `json:"total"`
	BaseTotal  float64        `json:"baseTotal"`
	TotalDelta Delta          `json:"totalDelta"`
}
