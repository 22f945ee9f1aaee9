package ingest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/emiranda028/hoteles-sub000/internal/cache"
	"github.com/emiranda028/hoteles-sub000/internal/model"
	"github.com/emiranda028/hoteles-sub000/internal/observability/metrics"
)

const nationalityCSV = "Informe de nacionalidades;;;\n" +
	"Generado por PMS;;;\n" +
	"País;Continente;Cantidad;Fecha\n" +
	"Argentina;América;10;15/01/2025\n" +
	"Chile;;4;2025-02-01\n" +
	";Europa;3;2025-02-01\n"

type countingFetcher struct {
	inner Fetcher
	calls atomic.Int32
}

func (c *countingFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	c.calls.Add(1)
	return c.inner.Fetch(ctx, path)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoad_DelimitedAndCache(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "nacionalidades.csv", nationalityCSV)

	fetcher := &countingFetcher{inner: FileFetcher{Root: dir}}
	svc := NewService(fetcher, cache.NewMemory(), Options{})

	res, err := svc.Load(context.Background(), Request{Path: "nacionalidades.csv"}, nil)
	require.NoError(t, err)
	require.Equal(t, StatusOK, res.Status)
	assert.False(t, res.Cached)

	ds := res.Dataset
	require.NotNil(t, ds)
	assert.NotEmpty(t, ds.ID)
	assert.Equal(t, model.SourceDelimited, ds.Source)
	assert.Equal(t, model.RecordNationality, ds.Kind)
	assert.Equal(t, 2, ds.HeaderRow)
	require.Len(t, ds.Nationality, 2)
	assert.Equal(t, "Argentina", ds.Nationality[0].Country)
	assert.Equal(t, "América", ds.Nationality[1].Continent, "continent derived from the country")
	assert.Equal(t, 1, ds.Rejected["missing_country"])
	assert.Equal(t, "País", res.Diagnostics.Resolved["country"])
	assert.Contains(t, res.Diagnostics.Headers, "Cantidad")

	again, err := svc.Load(context.Background(), Request{Path: "nacionalidades.csv"}, nil)
	require.NoError(t, err)
	assert.True(t, again.Cached)
	assert.Same(t, ds, again.Dataset)
	assert.Equal(t, int32(1), fetcher.calls.Load())

	assert.True(t, svc.Reload("nacionalidades.csv"))
	assert.False(t, svc.Reload("nacionalidades.csv"))
	third, err := svc.Load(context.Background(), Request{Path: "nacionalidades.csv"}, nil)
	require.NoError(t, err)
	assert.False(t, third.Cached)
	assert.NotEqual(t, ds.ID, third.Dataset.ID)
	assert.Equal(t, int32(2), fetcher.calls.Load())
}

func TestLoad_DifferentKindReparses(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "n.csv", nationalityCSV)
	fetcher := &countingFetcher{inner: FileFetcher{Root: dir}}
	svc := NewService(fetcher, nil, Options{})

	_, err := svc.Load(context.Background(), Request{Path: "n.csv"}, nil)
	require.NoError(t, err)

	res, err := svc.Load(context.Background(), Request{Path: "n.csv", Records: model.RecordOperational}, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusEmpty, res.Status)
	assert.False(t, res.Cached)
	assert.Equal(t, int32(2), fetcher.calls.Load())
	assert.Equal(t, []string{"n.csv"}, svc.Cached(), "one entry per path")
}

func TestLoad_MissingFileIsUnreadable(t *testing.T) {
	svc := NewService(FileFetcher{Root: t.TempDir()}, nil, Options{})

	res, err := svc.Load(context.Background(), Request{Path: "nope.csv"}, nil)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, model.ErrSourceUnreadable))

	var se *model.SourceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "nope.csv", se.Path)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	svc := NewService(FileFetcher{Root: t.TempDir()}, nil, Options{})

	_, err := svc.Load(context.Background(), Request{Path: "report.pdf"}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUnsupportedKind))
	assert.False(t, errors.Is(err, model.ErrSourceUnreadable))
}

func TestLoad_SupersededIsDiscarded(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "n.csv", nationalityCSV)
	store := cache.NewMemory()
	svc := NewService(FileFetcher{Root: dir}, store, Options{})

	res, err := svc.Load(context.Background(), Request{Path: "n.csv"}, func() bool { return false })
	require.NoError(t, err)
	assert.Equal(t, StatusDiscarded, res.Status)
	assert.Nil(t, res.Dataset)
	assert.Empty(t, store.Paths())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err = svc.Load(ctx, Request{Path: "n.csv"}, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusDiscarded, res.Status)
	assert.Empty(t, store.Paths())
}

func TestLoad_HTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/n.csv":
			_, _ = w.Write([]byte(nationalityCSV))
		default:
			http.Error(w, "gone", http.StatusNotFound)
		}
	}))
	defer srv.Close()

	router := Router{Local: FileFetcher{}, Remote: NewHTTPFetcher(5*time.Second, "test")}
	svc := NewService(router, nil, Options{})

	res, err := svc.Load(context.Background(), Request{Path: srv.URL + "/n.csv"}, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusOK, res.Status)
	assert.Len(t, res.Dataset.Nationality, 2)

	_, err = svc.Load(context.Background(), Request{Path: srv.URL + "/missing.csv"}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrSourceUnreadable))
}

func TestLoad_WorkbookSheetSelection(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Portada"))
	require.NoError(t, f.SetSheetRow("Portada", "A1", &[]any{"Informe mensual"}))

	_, err := f.NewSheet("Marriott 2025")
	require.NoError(t, err)
	rows := [][]any{
		{"Fecha", "HoF", "Total Occ.", "Occ.%", "Average Rate", "Room Revenue", "House Use"},
		{"01/03/2025", "History", 110, "60%", 100, 1000, 10},
		{"02/03/2025", "History", 50, "80%", 130, 500, 0},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, f.SetSheetRow("Marriott 2025", cell, &row))
	}

	dir := t.TempDir()
	require.NoError(t, f.SaveAs(filepath.Join(dir, "hotel.xlsx")))
	svc := NewService(FileFetcher{Root: dir}, nil, Options{})

	res, err := svc.Load(context.Background(), Request{Path: "hotel.xlsx"}, nil)
	require.NoError(t, err)
	require.Equal(t, StatusOK, res.Status)
	assert.Equal(t, "Marriott 2025", res.Dataset.Sheet)
	assert.Equal(t, []string{"Portada", "Marriott 2025"}, res.Dataset.Sheets)
	require.Len(t, res.Dataset.Operational, 2)
	assert.Equal(t, model.HotelMarriott, res.Dataset.Operational[0].Hotel)

	res, err = svc.Load(context.Background(), Request{Path: "hotel.xlsx", Sheet: "Otra"}, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusEmpty, res.Status)
	assert.Contains(t, res.Diagnostics.Reason, model.ErrSheetNotFound.Error())
	assert.Equal(t, []string{"Portada", "Marriott 2025"}, res.Diagnostics.Sheets)

	res, err = svc.Load(context.Background(), Request{Path: "hotel.xlsx", Sheet: "Portada"}, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusEmpty, res.Status)
	assert.Equal(t, -1, res.Diagnostics.HeaderRow)
}

// metrics register once per process
var metricsRegistry = prometheus.NewRegistry()

func cacheEntriesGauge(t *testing.T, reg *prometheus.Registry) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == "hoteles_cache_entries" {
			return mf.GetMetric()[0].GetGauge().GetValue()
		}
	}
	t.Fatalf("hoteles_cache_entries not registered")
	return 0
}

func TestLoad_CacheEntriesGauge(t *testing.T) {
	reg := metricsRegistry
	metrics.InitWith(reg)

	dir := t.TempDir()
	writeFile(t, dir, "a.csv", nationalityCSV)
	writeFile(t, dir, "b.csv", nationalityCSV)
	svc := NewService(FileFetcher{Root: dir}, cache.NewMemory(), Options{})

	for _, p := range []string{"a.csv", "b.csv"} {
		_, err := svc.Load(context.Background(), Request{Path: p}, nil)
		require.NoError(t, err)
	}
	assert.Equal(t, 2.0, cacheEntriesGauge(t, reg))

	svc.Reload("a.csv")
	assert.Equal(t, 1.0, cacheEntriesGauge(t, reg))
}
