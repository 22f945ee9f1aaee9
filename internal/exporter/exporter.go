package exporter

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/emiranda028/hoteles-sub000/internal/kpi"
	"github.com/emiranda028/hoteles-sub000/internal/model"
)

// Exporter 报表导出器：把一个数据集的 KPI 写成工作簿
type Exporter struct {
	topN int
}

// NewExporter 创建导出器
func NewExporter(topN int) *Exporter {
	if topN <= 0 {
		topN = 10
	}
	return &Exporter{topN: topN}
}

// Export 导出 Excel；费率为 0-1 小数，金额为原币种单位
func (e *Exporter) Export(ds *model.Dataset, filter model.Filter) (*excelize.File, error) {
	if ds == nil {
		return nil, errors.New("nil dataset")
	}
	f := excelize.NewFile()

	var err error
	switch ds.Kind {
	case model.RecordOperational:
		err = e.fillOperational(f, ds, filter)
	case model.RecordMembership:
		err = e.fillMembership(f, ds, filter)
	case model.RecordNationality:
		err = e.fillNationality(f, ds, filter)
	default:
		err = fmt.Errorf("unsupported record kind %q", ds.Kind)
	}
	if err == nil {
		err = e.fillSource(f, ds)
	}
	if err == nil {
		err = f.DeleteSheet("Sheet1")
	}
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

func (e *Exporter) fillOperational(f *excelize.File, ds *model.Dataset, filter model.Filter) error {
	cmp := kpi.Compare(ds.Operational, filter)
	summary := [][]any{
		{"Indicador", cmp.Year, cmp.BaseYear, "Variación"},
		deltaRow("Ocupación", cmp.Occupancy),
		{"Ocupación (p.p.)", round4(cmp.OccupancyPoints.Current), round4(cmp.OccupancyPoints.Base), changeCell(cmp.OccupancyPoints)},
		deltaRow("Tarifa promedio", cmp.AverageRate),
		deltaRow("Ingresos habitaciones", cmp.Revenue),
		deltaRow("Doble ocupación", cmp.DoubleOccupancy),
		deltaRow("RevPAR", cmp.RevPAR),
	}
	if err := writeSheet(f, "Resumen", summary); err != nil {
		return err
	}

	series := kpi.MonthlySeries(ds.Operational, filter)
	monthly := [][]any{{"Mes", "Ocupación", "Ocupación base", "Ingresos", "Ingresos base", "Comparable"}}
	for _, m := range series.Months {
		monthly = append(monthly, []any{
			m.Month,
			round4(m.Current.Occupancy),
			round4(m.Base.Occupancy),
			roundHalfUp(m.Current.Revenue, 2),
			roundHalfUp(m.Base.Revenue, 2),
			m.Comparable,
		})
	}
	if series.IncompleteBase {
		monthly = append(monthly, []any{"Base incompleta", "", "", "", "", true})
	}
	if err := writeSheet(f, "Mensual", monthly); err != nil {
		return err
	}

	weekdays := [][]any{{"Día", "Ocupación", "Tarifa promedio", "Ingresos", "Días"}}
	for _, w := range kpi.ByWeekday(ds.Operational, filter) {
		weekdays = append(weekdays, []any{w.Weekday, round4(w.Occupancy), roundHalfUp(w.AverageRate, 2), roundHalfUp(w.Revenue, 2), w.Days})
	}
	if err := writeSheet(f, "Semana", weekdays); err != nil {
		return err
	}

	hotels := [][]any{{"Hotel", "Ocupación", "Tarifa promedio", "Ingresos", "Participación"}}
	for _, h := range kpi.ByHotel(ds.Operational, filter) {
		hotels = append(hotels, []any{h.Hotel, round4(h.Occupancy), roundHalfUp(h.AverageRate, 2), roundHalfUp(h.Revenue, 2), round4(h.Share)})
	}
	return writeSheet(f, "Hoteles", hotels)
}

func (e *Exporter) fillMembership(f *excelize.File, ds *model.Dataset, filter model.Filter) error {
	mix := kpi.MembershipMix(ds.Membership, filter, 0)
	summary := [][]any{
		{"Indicador", mix.Year, mix.BaseYear, "Variación"},
		deltaRow("Total", mix.TotalDelta),
		deltaRow("Elite", mix.EliteDelta),
		{"Participación Elite", round4(mix.EliteShare), round4(mix.BaseEliteShare), changeCell(mix.EliteShareDiff)},
	}
	if err := writeSheet(f, "Resumen", summary); err != nil {
		return err
	}
	if err := writeRanking(f, "Niveles", "Nivel", mix.Tiers); err != nil {
		return err
	}
	return writeRanking(f, "Hoteles", "Hotel", mix.Hotels)
}

func (e *Exporter) fillNationality(f *excelize.File, ds *model.Dataset, filter model.Filter) error {
	rep := kpi.NationalityRanking(ds.Nationality, filter, e.topN)
	summary := [][]any{
		{"Indicador", rep.Year, rep.BaseYear, "Variación"},
		deltaRow("Huéspedes", rep.TotalDelta),
	}
	if err := writeSheet(f, "Resumen", summary); err != nil {
		return err
	}
	if err := writeRanking(f, "Países", "País", rep.Countries); err != nil {
		return err
	}
	return writeRanking(f, "Continentes", "Continente", rep.Continents)
}

// fillSource 数据来源与诊断
func (e *Exporter) fillSource(f *excelize.File, ds *model.Dataset) error {
	rows := [][]any{
		{"Archivo", ds.Path},
		{"Hoja", ds.Sheet},
		{"Fila de encabezado", ds.HeaderRow + 1},
		{"Registros", ds.Accepted},
		{"Descartados", ds.RejectedTotal()},
	}
	reasons := make([]string, 0, len(ds.Rejected))
	for reason := range ds.Rejected {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		rows = append(rows, []any{"Descartados: " + reason, ds.Rejected[reason]})
	}
	return writeSheet(f, "Origen", rows)
}

func writeRanking(f *excelize.File, sheet, label string, entries []model.RankingEntry) error {
	rows := [][]any{{label, "Cantidad", "Participación"}}
	for _, e := range entries {
		rows = append(rows, []any{e.Label, e.Value, round4(e.Share)})
	}
	return writeSheet(f, sheet, rows)
}

func writeSheet(f *excelize.File, sheet string, rows [][]any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func deltaRow(label string, d model.Delta) []any {
	return []any{label, round4(d.Current), round4(d.Base), changeCell(d)}
}

// changeCell 无可比基准时写 "s/d"，而不是 0
func changeCell(d model.Delta) any {
	if d.NoBase {
		return "s/d"
	}
	return round4(d.Change)
}

func round4(v float64) float64 {
	return roundHalfUp(v, 4)
}

func roundHalfUp(v float64, digits int) float64 {
	if digits < 0 {
		return v
	}
	scale := math.Pow10(digits)
	x := v * scale
	if x >= 0 {
		return math.Floor(x+0.5) / scale
	}
	return -math.Floor(-x+0.5) / scale
}
