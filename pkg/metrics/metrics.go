package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "capex_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	reportRunsTotal   *prometheus.CounterVec
	reportRunsLatency *prometheus.HistogramVec
	reportRows        *prometheus.CounterVec

	rateCacheLookups  *prometheus.CounterVec
	rateCachePreloads *prometheus.CounterVec
	rateCacheEntries  *prometheus.GaugeVec

	closeExecutions *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
)

// Init registra as métricas no registry padrão. Pode ser chamado várias vezes.
func Init() {
	registerOnce.Do(func() {
		reportRunsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_runs_total",
				Help: "Total report runs by operation, country and result",
			},
			[]string{"operation", "country", "result"},
		)
		reportRunsLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "report_run_latency_seconds",
				Help:    "Report run latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "country"},
		)
		reportRows = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_rows_total",
				Help: "Detail rows handled by kind (processed, inserted, duplicated)",
			},
			[]string{"country", "kind"},
		)

		rateCacheLookups = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "rate_cache_lookups_total",
				Help: "Rate cache lookups by country and result",
			},
			[]string{"country", "result"},
		)
		rateCachePreloads = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "rate_cache_preloads_total",
				Help: "Rate cache preloads by country and result",
			},
			[]string{"country", "result"},
		)
		rateCacheEntries = prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: metricPrefix + "rate_cache_entries",
				Help: "Rate entries currently cached per country",
			},
			[]string{"country"},
		)

		closeExecutions = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "close_executions_total",
				Help: "Monthly close executions per country",
			},
			[]string{"country"},
		)

		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		)
		httpLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		)

		prometheus.MustRegister(
			reportRunsTotal,
			reportRunsLatency,
			reportRows,
			rateCacheLookups,
			rateCachePreloads,
			rateCacheEntries,
			closeExecutions,
			httpRequests,
			httpLatency,
		)
	})
}

// Handler expõe o endpoint /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveReportRun registra duração e resultado de uma execução
func ObserveReportRun(operation, country string, err error, duration time.Duration) {
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	if reportRunsTotal != nil {
		reportRunsTotal.WithLabelValues(operation, country, result).Inc()
	}
	if reportRunsLatency != nil {
		reportRunsLatency.WithLabelValues(operation, country).Observe(duration.Seconds())
	}
}

func AddReportRows(country, kind string, count int) {
	if count <= 0 || reportRows == nil {
		return
	}
	reportRows.WithLabelValues(country, kind).Add(float64(count))
}

func IncRateLookup(country string, hit bool) {
	if rateCacheLookups == nil {
		return
	}
	result := "hit"
	if !hit {
		result = "miss"
	}
	rateCacheLookups.WithLabelValues(country, result).Inc()
}

func ObserveRatePreload(country string, entries int, err error) {
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	if rateCachePreloads != nil {
		rateCachePreloads.WithLabelValues(country, result).Inc()
	}
	if err == nil && rateCacheEntries != nil {
		rateCacheEntries.WithLabelValues(country).Set(float64(entries))
	}
}

// ResetRateEntries zera o gauge após limpeza do cache
func ResetRateEntries() {
	if rateCacheEntries != nil {
		rateCacheEntries.Reset()
	}
}

func IncCloseExecution(country string) {
	if closeExecutions != nil {
		closeExecutions.WithLabelValues(country).Inc()
	}
}

func ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unknown"
	}
	if httpRequests != nil {
		httpRequests.WithLabelValues(method, route, http.StatusText(status)).Inc()
	}
	if httpLatency != nil {
		httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
	}
}

// Exported constants for callers.
const (
	RowsProcessed  = "processed"
	RowsInserted   = "inserted"
	RowsDuplicated = "duplicated"
)
