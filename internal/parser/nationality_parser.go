package parser

import (
	"github.com/emiranda028/hoteles-sub000/internal/model"
	"github.com/emiranda028/hoteles-sub000/internal/normalize"
)

// NationalityBuilder 客源国记录构建器
type NationalityBuilder struct {
	m Mapping
}

// NewNationalityBuilder 为一个已解析的表头创建构建器
func NewNationalityBuilder(m Mapping) *NationalityBuilder {
	return &NationalityBuilder{m: m}
}

// Build 构建一行；缺少年份或国家时返回 Rejection
func (b *NationalityBuilder) Build(rowNo int, row []model.Cell) (model.Nationality, *Rejection) {
	var rec model.Nationality

	if !b.m.Has(FieldCountry) {
		return rec, &Rejection{Row: rowNo, Reason: ReasonUnresolvedField, Field: FieldCountry}
	}
	country := normalize.Country(normalize.Text(cellAt(row, b.m, FieldCountry)))
	if country == "" {
		return rec, &Rejection{Row: rowNo, Reason: ReasonMissingCountry, Field: FieldCountry}
	}

	period := periodOf(row, b.m)
	if period.Year == 0 {
		return rec, &Rejection{Row: rowNo, Reason: ReasonMissingDate, Field: FieldDate}
	}

	rec.Period = period
	rec.Country = country
	if raw := normalize.Text(cellAt(row, b.m, FieldContinent)); raw != "" {
		rec.Continent = normalize.Continent(raw)
	} else {
		rec.Continent = normalize.ContinentOf(country)
	}
	rec.Count = 1
	if b.m.Has(FieldCount) {
		rec.Count = normalize.NonNegative(cellAt(row, b.m, FieldCount))
	}
	return rec, nil
}
