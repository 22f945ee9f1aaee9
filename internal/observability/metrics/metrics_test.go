package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestHelpersAreSafeAndCount(t *testing.T) {
	reg := prometheus.NewRegistry()
	InitWith(reg)
	InitWith(reg)

	ObserveLoad("delimited", ResultOK, 20*time.Millisecond)
	ObserveLoad("delimited", ResultOK, 0)
	ObserveLoad("", ResultUnreadable, 0)
	AddRows("nationality", 3, map[string]int{"missing_country": 2, "missing_date": 0})
	IncCacheLookup(true)
	IncCacheLookup(false)
	IncCacheLookup(false)
	SetCacheEntries(4)
	ObserveReport("summary", time.Millisecond)

	if got := testutil.ToFloat64(loadTotal.WithLabelValues("delimited", ResultOK)); got != 2 {
		t.Fatalf("loads want=2 got=%v", got)
	}
	if got := testutil.ToFloat64(loadTotal.WithLabelValues("unknown", ResultUnreadable)); got != 1 {
		t.Fatalf("unreadable loads want=1 got=%v", got)
	}
	if got := testutil.ToFloat64(rowsRejected.WithLabelValues("nationality", "missing_country")); got != 2 {
		t.Fatalf("rejections want=2 got=%v", got)
	}
	if got := testutil.ToFloat64(cacheLookups.WithLabelValues("miss")); got != 2 {
		t.Fatalf("misses want=2 got=%v", got)
	}
	if got := testutil.ToFloat64(cacheEntries); got != 4 {
		t.Fatalf("entries want=4 got=%v", got)
	}
}
