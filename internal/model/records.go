package model

import "time"

// HistoryForecast 实际/预测标记
type HistoryForecast int

const (
	HoFUnknown HistoryForecast = iota
	HoFHistory
	HoFForecast
)

func (h HistoryForecast) String() string {
	switch h {
	case HoFHistory:
		return "History"
	case HoFForecast:
		return "Forecast"
	}
	return "Unknown"
}

// MarshalText JSON 中按名称输出
func (h HistoryForecast) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// 规范酒店标识
const (
	HotelMarriott    = "MARRIOTT"
	HotelSheratonBCR = "SHERATON BCR"
	HotelSheratonMDQ = "SHERATON MDQ"
	HotelMaitei      = "MAITEI"
)

// OperationalDay 单酒店单日经营记录
type OperationalDay struct {
	Date           time.Time       `json:"date"`
	Hotel          string          `json:"hotel"`
	HoF            HistoryForecast `json:"hof"`
	Weekday        string          `json:"weekday"`
	Occupancy      float64         `json:"occupancy"` // 0-1
	AverageRate    float64         `json:"averageRate"`
	RoomRevenue    float64         `json:"roomRevenue"`
	TotalOccupied  int             `json:"totalOccupied"`
	HouseUse       int             `json:"houseUse"`
	PersonsInHouse int             `json:"personsInHouse"`
}

// Weight 加权平均使用的房间权重
func (r OperationalDay) Weight() float64 {
	w := r.TotalOccupied - r.HouseUse
	if w < 0 {
		return 0
	}
	return float64(w)
}

// Period 年份加可选月份（只知道年份时月份为 0）
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// PeriodOf 日期所在的年月
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: int(t.Month())}
}

// Membership 会员等级记录
type Membership struct {
	Period
	Hotel string `json:"hotel"`
	Tier  string `json:"tier"` // raw label
	Count int    `json:"count"`
}

// Nationality 客源国记录
type Nationality struct {
	Period
	Country   string  `json:"country"`
	Continent string  `json:"continent"`
	Count     float64 `json:"count"`
}

// Tier 会员等级分桶
type Tier string

const (
	TierAmbassador Tier = "Ambassador"
	TierTitanium   Tier = "Titanium"
	TierPlatinum   Tier = "Platinum"
	TierGold       Tier = "Gold"
	TierSilver     Tier = "Silver"
	TierMember     Tier = "Member"
	TierOther      Tier = "Other"
)

// Elite 是否属于 Elite 分桶
func (t Tier) Elite() bool {
	switch t {
	case TierAmbassador, TierTitanium, TierPlatinum, TierGold:
		return true
	}
	return false
}
