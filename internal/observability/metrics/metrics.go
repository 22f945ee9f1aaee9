// Package metrics exposes prometheus counters for source loads, parsed
// rows and cache lookups. Every helper is a no-op until Init runs.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "hoteles_"

	ResultOK         = "ok"
	ResultEmpty      = "empty"
	ResultDiscarded  = "discarded"
	ResultUnreadable = "unreadable"
)

var (
	registerOnce sync.Once

	loadTotal     *prometheus.CounterVec
	loadLatency   *prometheus.HistogramVec
	rowsAccepted  *prometheus.CounterVec
	rowsRejected  *prometheus.CounterVec
	cacheLookups  *prometheus.CounterVec
	cacheEntries  prometheus.Gauge
	reportLatency *prometheus.HistogramVec
)

// Init registers the metrics with the default registry.
func Init() {
	InitWith(prometheus.DefaultRegisterer)
}

// InitWith registers the metrics with reg; only the first call has effect.
func InitWith(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		loadTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "source_loads_total",
				Help: "Total source loads by kind and result",
			},
			[]string{"kind", "result"},
		)
		loadLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "source_load_latency_seconds",
				Help:    "Fetch-and-parse latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		)
		rowsAccepted = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "rows_accepted_total",
				Help: "Total rows turned into records by record kind",
			},
			[]string{"kind"},
		)
		rowsRejected = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "rows_rejected_total",
				Help: "Total rows dropped by record kind and reason",
			},
			[]string{"kind", "reason"},
		)
		cacheLookups = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "cache_lookups_total",
				Help: "Parsed-source cache lookups by outcome",
			},
			[]string{"outcome"},
		)
		cacheEntries = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: metricPrefix + "cache_entries",
				Help: "Parsed sources currently cached",
			},
		)
		reportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "report_latency_seconds",
				Help:    "Report request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"report"},
		)

		reg.MustRegister(
			loadTotal,
			loadLatency,
			rowsAccepted,
			rowsRejected,
			cacheLookups,
			cacheEntries,
			reportLatency,
		)
	})
}

// ObserveLoad records one source load and, for parsed loads, its latency.
func ObserveLoad(kind, result string, duration time.Duration) {
	if kind == "" {
		kind = "unknown"
	}
	if result == "" {
		result = ResultOK
	}
	if loadTotal != nil {
		loadTotal.WithLabelValues(kind, result).Inc()
	}
	if loadLatency != nil && duration > 0 {
		loadLatency.WithLabelValues(kind).Observe(duration.Seconds())
	}
}

// AddRows counts accepted rows and rejections per reason.
func AddRows(kind string, accepted int, rejected map[string]int) {
	if kind == "" {
		kind = "unknown"
	}
	if rowsAccepted != nil && accepted > 0 {
		rowsAccepted.WithLabelValues(kind).Add(float64(accepted))
	}
	if rowsRejected == nil {
		return
	}
	for reason, n := range rejected {
		if n > 0 {
			rowsRejected.WithLabelValues(kind, reason).Add(float64(n))
		}
	}
}

// IncCacheLookup records a cache hit or miss.
func IncCacheLookup(hit bool) {
	if cacheLookups == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	cacheLookups.WithLabelValues(outcome).Inc()
}

// SetCacheEntries sets the cached-source gauge.
func SetCacheEntries(n int) {
	if cacheEntries != nil {
		cacheEntries.Set(float64(n))
	}
}

// ObserveReport records report latency.
func ObserveReport(report string, duration time.Duration) {
	if report == "" {
		report = "unknown"
	}
	if reportLatency != nil {
		reportLatency.WithLabelValues(report).Observe(duration.Seconds())
	}
}
