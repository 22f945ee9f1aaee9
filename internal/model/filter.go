package model

import (
	"fmt"
	"strings"
)

// Mode 实际/预测筛选
type Mode string

const (
	ModeHistory  Mode = "history"
	ModeForecast Mode = "forecast"
	ModeAll      Mode = "all"
)

// ParseMode 接受 history/forecast/all（不区分大小写），空串视为 all
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "todos":
		return ModeAll, nil
	case "history", "h", "hist", "historico":
		return ModeHistory, nil
	case "forecast", "f", "fcst", "pronostico":
		return ModeForecast, nil
	}
	return ModeAll, fmt.Errorf("unknown mode %q", s)
}

// Includes 标记为 h 的记录是否满足模式；无标记的行视为实际
func (m Mode) Includes(h HistoryForecast) bool {
	switch m {
	case ModeHistory:
		return h != HoFForecast
	case ModeForecast:
		return h == HoFForecast
	}
	return true
}

// HotelAll 选择全部酒店
const HotelAll = "ALL"

// Filter 聚合查询参数
type Filter struct {
	Year     int    `json:"year"`
	BaseYear int    `json:"baseYear"` // 0 means Year-1
	Hotel    string `json:"hotel"`    // canonical identifier, "" or ALL for every hotel
	Mode     Mode   `json:"mode"`
	Month    int    `json:"month"`   // 1-12, 0 = all
	Quarter  int    `json:"quarter"` // 1-4, 0 = all
}

// Base 返回基准年
func (f Filter) Base() int {
	if f.BaseYear != 0 {
		return f.BaseYear
	}
	return f.Year - 1
}

// Validate 校验可选的月份、季度范围
func (f Filter) Validate() error {
	if f.Month < 0 || f.Month > 12 {
		return fmt.Errorf("month must be 0-12, got %d", f.Month)
	}
	if f.Quarter < 0 || f.Quarter > 4 {
		return fmt.Errorf("quarter must be 0-4, got %d", f.Quarter)
	}
	return nil
}

// AllHotels 未设置酒店筛选
func (f Filter) AllHotels() bool {
	h := strings.ToUpper(strings.TrimSpace(f.Hotel))
	return h == "" || h == HotelAll || h == "TODOS"
}

// MatchesHotel 规范酒店名是否满足筛选
func (f Filter) MatchesHotel(hotel string) bool {
	if f.AllHotels() {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(f.Hotel), hotel)
}

// MatchesMonth 应用月份与季度条件；月份为 0（仅有年份）的记录只在两者都未设置时通过
func (f Filter) MatchesMonth(month int) bool {
	if f.Month == 0 && f.Quarter == 0 {
		return true
	}
	if month < 1 || month > 12 {
		return false
	}
	if f.Month != 0 && month != f.Month {
		return false
	}
	if f.Quarter != 0 && (month-1)/3+1 != f.Quarter {
		return false
	}
	return true
}
