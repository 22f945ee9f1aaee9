package parser

import (
	"github.com/emiranda028/hoteles-sub000/internal/model"
	"github.com/emiranda028/hoteles-sub000/internal/normalize"
)

// OperationalBuilder 每日经营记录构建器
type OperationalBuilder struct {
	m             Mapping
	fallbackHotel string
}

// NewOperationalBuilder 为一个已解析的表头创建构建器；缺少酒店列时由以已知酒店命名的表提供
func NewOperationalBuilder(m Mapping, tableName string) *OperationalBuilder {
	return &OperationalBuilder{m: m, fallbackHotel: hotelFromName(tableName)}
}

// Build 构建一行；缺少日期或酒店时返回 Rejection
func (b *OperationalBuilder) Build(rowNo int, row []model.Cell) (model.OperationalDay, *Rejection) {
	var rec model.OperationalDay

	if !b.m.Has(FieldDate) {
		return rec, &Rejection{Row: rowNo, Reason: ReasonUnresolvedField, Field: FieldDate}
	}
	date, ok := normalize.Date(cellAt(row, b.m, FieldDate))
	if !ok {
		return rec, &Rejection{Row: rowNo, Reason: ReasonMissingDate, Field: FieldDate}
	}

	hotel := normalize.Hotel(normalize.Text(cellAt(row, b.m, FieldHotel)))
	if hotel == "" {
		hotel = b.fallbackHotel
	}
	if hotel == "" {
		if !b.m.Has(FieldHotel) {
			return rec, &Rejection{Row: rowNo, Reason: ReasonUnresolvedField, Field: FieldHotel}
		}
		return rec, &Rejection{Row: rowNo, Reason: ReasonMissingHotel, Field: FieldHotel}
	}

	rec.Date = date
	rec.Hotel = hotel
	rec.HoF = normalize.HistoryForecast(cellAt(row, b.m, FieldHoF))
	rec.Weekday = normalize.Weekday(normalize.Text(cellAt(row, b.m, FieldWeekday)))
	if rec.Weekday == "" {
		rec.Weekday = normalize.WeekdayOf(date)
	}
	rec.Occupancy = normalize.Clamp01(normalize.Fraction(cellAt(row, b.m, FieldOccupancy)))
	rec.AverageRate = normalize.NonNegative(cellAt(row, b.m, FieldAverageRate))
	rec.RoomRevenue = normalize.NonNegative(cellAt(row, b.m, FieldRoomRevenue))
	rec.TotalOccupied = normalize.Count(cellAt(row, b.m, FieldTotalOccupied))
	rec.HouseUse = normalize.Count(cellAt(row, b.m, FieldHouseUse))
	rec.PersonsInHouse = normalize.Count(cellAt(row, b.m, FieldPersons))
	return rec, nil
}

func hotelFromName(name string) string {
	if h := normalize.Hotel(name); normalize.KnownHotel(h) {
		return h
	}
	return ""
}
