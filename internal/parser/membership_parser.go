package parser

import (
	"github.com/emiranda028/hoteles-sub000/internal/model"
	"github.com/emiranda028/hoteles-sub000/internal/normalize"
)

// MembershipBuilder 会员等级记录构建器
type MembershipBuilder struct {
	m             Mapping
	fallbackHotel string
	fallbackYear  int
}

// NewMembershipBuilder 创建构建器；表格缺少酒店或年份列时可由表名提供
func NewMembershipBuilder(m Mapping, tableName string) *MembershipBuilder {
	return &MembershipBuilder{
		m:             m,
		fallbackHotel: hotelFromName(tableName),
		fallbackYear:  normalize.YearFromName(tableName),
	}
}

// Build 构建一行；缺少酒店、等级或年份时返回 Rejection
func (b *MembershipBuilder) Build(rowNo int, row []model.Cell) (model.Membership, *Rejection) {
	var rec model.Membership

	hotel := normalize.Hotel(normalize.Text(cellAt(row, b.m, FieldHotel)))
	if hotel == "" {
		hotel = b.fallbackHotel
	}
	if hotel == "" {
		return rec, &Rejection{Row: rowNo, Reason: ReasonMissingHotel, Field: FieldHotel}
	}

	tier := normalize.Text(cellAt(row, b.m, FieldTier))
	if tier == "" {
		return rec, &Rejection{Row: rowNo, Reason: ReasonMissingTier, Field: FieldTier}
	}

	period := periodOf(row, b.m)
	if period.Year == 0 {
		period.Year = b.fallbackYear
	}
	if period.Year == 0 {
		return rec, &Rejection{Row: rowNo, Reason: ReasonMissingDate, Field: FieldDate}
	}

	rec.Period = period
	rec.Hotel = hotel
	rec.Tier = tier
	rec.Count = 1
	if b.m.Has(FieldCount) {
		rec.Count = normalize.Count(cellAt(row, b.m, FieldCount))
	}
	return rec, nil
}

// periodOf 先读日期列（纯数字年份只取年），再读年、月列
func periodOf(row []model.Cell, m Mapping) model.Period {
	if m.Has(FieldDate) {
		v := cellAt(row, m, FieldDate)
		if y, ok := normalize.PlainYear(v); ok {
			p := model.Period{Year: y}
			if m.Has(FieldMonth) {
				p.Month = normalize.Month(cellAt(row, m, FieldMonth))
			}
			return p
		}
		if d, ok := normalize.Date(v); ok {
			return model.PeriodOf(d)
		}
	}
	var p model.Period
	if m.Has(FieldYear) {
		p.Year = normalize.Year(cellAt(row, m, FieldYear))
	}
	if m.Has(FieldMonth) {
		p.Month = normalize.Month(cellAt(row, m, FieldMonth))
	}
	return p
}
