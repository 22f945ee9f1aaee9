package exporter

import (
	"fmt"
	"testing"
	"time"

	"github.com/emiranda028/hoteles-sub000/internal/model"
)

func TestExport_Operational(t *testing.T) {
	t.Parallel()

	ds := &model.Dataset{
		Path:     "daily.csv",
		Kind:     model.RecordOperational,
		Sheet:    "daily",
		Accepted: 2,
		Rejected: map[string]int{"missing_date": 1},
		Operational: []model.OperationalDay{
			{Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Hotel: model.HotelMarriott, Occupancy: 0.6, TotalOccupied: 100, RoomRevenue: 1000},
			{Date: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), Hotel: model.HotelMarriott, Occupancy: 0.8, TotalOccupied: 50, RoomRevenue: 500},
		},
	}

	f, err := NewExporter(0).Export(ds, model.Filter{Year: 2025})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	defer f.Close()

	want := []string{"Resumen", "Mensual", "Semana", "Hoteles", "Origen"}
	got := f.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("sheets want=%v got=%v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sheets want=%v got=%v", want, got)
		}
	}

	occ, err := f.GetCellValue("Resumen", "B2")
	if err != nil {
		t.Fatalf("read B2: %v", err)
	}
	if occ != "0.6667" {
		t.Fatalf("occupancy want=0.6667 got=%s", occ)
	}
	change, _ := f.GetCellValue("Resumen", "D2")
	if change != "s/d" {
		t.Fatalf("no-base change want=s/d got=%s", change)
	}
}

func TestExport_SourceSheetSortsReasons(t *testing.T) {
	t.Parallel()

	ds := &model.Dataset{
		Path:     "n.csv",
		Kind:     model.RecordNationality,
		Accepted: 1,
		Rejected: map[string]int{"missing_date": 2, "missing_country": 1, "unresolved_field": 3},
		Nationality: []model.Nationality{
			{Period: model.Period{Year: 2025}, Country: "Argentina", Continent: "América", Count: 1},
		},
	}
	want := []string{"Descartados: missing_country", "Descartados: missing_date", "Descartados: unresolved_field"}
	for i := 0; i < 5; i++ {
		f, err := NewExporter(0).Export(ds, model.Filter{Year: 2025})
		if err != nil {
			t.Fatalf("Export failed: %v", err)
		}
		for j, label := range want {
			got, _ := f.GetCellValue("Origen", fmt.Sprintf("A%d", 6+j))
			if got != label {
				_ = f.Close()
				t.Fatalf("Origen row %d want=%q got=%q", 6+j, label, got)
			}
		}
		_ = f.Close()
	}
}

func TestExport_Nationality(t *testing.T) {
	t.Parallel()

	ds := &model.Dataset{
		Kind: model.RecordNationality,
		Nationality: []model.Nationality{
			{Period: model.Period{Year: 2025}, Country: "Argentina", Continent: "América", Count: 3},
			{Period: model.Period{Year: 2025}, Country: "Chile", Continent: "América", Count: 1},
		},
	}
	f, err := NewExporter(5).Export(ds, model.Filter{Year: 2025})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	defer f.Close()

	top, _ := f.GetCellValue("Países", "A2")
	share, _ := f.GetCellValue("Países", "C2")
	if top != "Argentina" || share != "0.75" {
		t.Fatalf("top country want=Argentina/0.75 got=%s/%s", top, share)
	}
}

func TestExport_RejectsUnknownKind(t *testing.T) {
	t.Parallel()

	if _, err := NewExporter(0).Export(&model.Dataset{}, model.Filter{}); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
	if _, err := NewExporter(0).Export(nil, model.Filter{}); err == nil {
		t.Fatalf("expected error for nil dataset")
	}
}

func TestRoundHalfUp(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in     float64
		digits int
		want   float64
	}{
		{0.66666, 4, 0.6667},
		{-0.125, 2, -0.13},
		{2, 4, 2},
	}
	for _, c := range cases {
		if got := roundHalfUp(c.in, c.digits); got != c.want {
			t.Fatalf("roundHalfUp(%v) want=%v got=%v", c.in, c.want, got)
		}
	}
}
