package parser

import "github.com/emiranda028/hoteles-sub000/internal/model"

// 规范字段名
const (
	FieldDate          = "date"
	FieldHotel         = "hotel"
	FieldHoF           = "hof"
	FieldWeekday       = "weekday"
	FieldOccupancy     = "occupancy"
	FieldAverageRate   = "averageRate"
	FieldRoomRevenue   = "roomRevenue"
	FieldTotalOccupied = "totalOccupied"
	FieldHouseUse      = "houseUse"
	FieldPersons       = "personsInHouse"
	FieldTier          = "tier"
	FieldCount         = "count"
	FieldYear          = "year"
	FieldMonth         = "month"
	FieldCountry       = "country"
	FieldContinent     = "continent"
)

// OperationalFields 每日经营报表字段；同义词按优先级排列
var OperationalFields = []Field{
	{Name: FieldDate, Required: true, Synonyms: []string{"FECHA", "DATE", "BUSINESS DATE", "FECHA OPERATIVA", "DIA/FECHA"}},
	{Name: FieldHotel, Required: true, Synonyms: []string{"EMPRESA", "HOTEL", "PROPERTY", "PROPIEDAD", "ESTABLECIMIENTO"}},
	{Name: FieldHoF, Synonyms: []string{"HOF", "HISTORY/FORECAST", "HISTORY FORECAST", "HIST/FCST", "H/F"}},
	{Name: FieldWeekday, Synonyms: []string{"DIA DE LA SEMANA", "WEEKDAY", "DAY OF WEEK", "DOW", "DIA SEMANA"}},
	{Name: FieldTotalOccupied, Synonyms: []string{"TOTAL OCC.", "TOTAL OCC", "TOTAL OCCUPIED", "TOTAL OCCUPIED ROOMS", "ROOMS OCCUPIED", "HABITACIONES OCUPADAS", "HAB. OCUPADAS"}},
	{Name: FieldOccupancy, Synonyms: []string{"OCC.%", "OCC %", "OCC%", "OCCUPANCY %", "OCUPACION %", "% OCUPACION", "OCCUPANCY", "OCUPACION"}},
	{Name: FieldAverageRate, Synonyms: []string{"AVERAGE RATE", "AVG RATE", "ADR", "TARIFA PROMEDIO", "TARIFA MEDIA", "AVERAGE"}},
	{Name: FieldRoomRevenue, Synonyms: []string{"ROOM REVENUE", "ROOMS REVENUE", "INGRESO HABITACIONES", "INGRESOS HABITACIONES", "REVENUE", "INGRESOS"}},
	{Name: FieldHouseUse, Synonyms: []string{"HOUSE USE", "HOUSE USE ROOMS", "USO CASA", "USO DE CASA", "USO INTERNO"}},
	{Name: FieldPersons, Synonyms: []string{"ADL. & CHL.", "ADL & CHL", "ADULTS & CHILDREN", "PERSONS IN HOUSE", "PERSONAS", "PERSONS", "PAX", "HUESPEDES"}},
}

// MembershipFields 会员等级报表字段
var MembershipFields = []Field{
	{Name: FieldHotel, Required: true, Synonyms: []string{"EMPRESA", "HOTEL", "PROPERTY", "PROPIEDAD"}},
	{Name: FieldTier, Required: true, Synonyms: []string{"MEMBERSHIP", "MEMBERSHIP LEVEL", "NIVEL", "TIER", "CATEGORIA", "BONVOY"}},
	{Name: FieldCount, Synonyms: []string{"CANTIDAD", "CANT.", "CANT", "COUNT", "QTY", "TOTAL"}},
	{Name: FieldDate, Synonyms: []string{"FECHA", "DATE", "PERIODO", "PERIOD"}},
	{Name: FieldYear, Synonyms: []string{"AÑO", "ANO", "YEAR"}},
	{Name: FieldMonth, Synonyms: []string{"MES", "MONTH"}},
}

// NationalityFields 客源国报表字段
var NationalityFields = []Field{
	{Name: FieldCountry, Required: true, Synonyms: []string{"PAÍS", "PAIS", "COUNTRY", "NACIONALIDAD", "NATIONALITY", "PAIS DE ORIGEN"}},
	{Name: FieldContinent, Synonyms: []string{"CONTINENTE", "CONTINENT", "REGION"}},
	{Name: FieldCount, Synonyms: []string{"CANTIDAD", "CANT.", "CANT", "COUNT", "HUESPEDES", "GUESTS", "PAX", "TOTAL"}},
	{Name: FieldDate, Synonyms: []string{"FECHA", "DATE", "PERIODO", "PERIOD"}},
	{Name: FieldYear, Synonyms: []string{"AÑO", "ANO", "YEAR"}},
	{Name: FieldMonth, Synonyms: []string{"MES", "MONTH"}},
}

// FieldsFor 返回记录类型的字段表
func FieldsFor(kind model.RecordKind) []Field {
	switch kind {
	case model.RecordOperational:
		return OperationalFields
	case model.RecordMembership:
		return MembershipFields
	case model.RecordNationality:
		return NationalityFields
	}
	return nil
}
