package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "geobounds"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "path"})

	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Total packed cache hits",
	}, []string{"operation"})

	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Total packed cache misses",
	}, []string{"operation"})

	// ImportRows counts CSV import rows by outcome: imported, empty_bounds, rejected.
	ImportRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "csv",
		Name:      "import_rows_total",
		Help:      "CSV import rows by outcome",
	}, []string{"outcome"})

	Exports = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "csv",
		Name:      "exports_total",
		Help:      "CSV exports uploaded to object storage",
	})
)

// DecodeFailures counts stored representations that could not be read back
// and were treated as an empty field.
var DecodeFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "field",
	Name:      "decode_failures_total",
	Help:      "Unreadable packed or CSV bounds values treated as empty",
}, []string{"source"})
