// Package metrics holds the Prometheus collectors of the service.
// Collectors are registered on the default registry at package init.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	rateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"endpoint"},
	)

	fetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scraper_fetch_total",
			Help: "Total number of remote document fetches",
		},
		[]string{"host", "outcome"},
	)

	fetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scraper_fetch_duration_seconds",
			Help:    "Remote document fetch duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8, 16},
		},
		[]string{"host"},
	)

	extractionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "word_extraction_total",
			Help: "Total number of word extractions by outcome",
		},
		[]string{"outcome"},
	)

	importItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "word_import_items_total",
			Help: "Total number of batch import lines by mode and outcome",
		},
		[]string{"mode", "outcome"},
	)
)

// ObserveHTTP records one finished HTTP request.
func ObserveHTTP(method, endpoint string, status int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(method, endpoint, statusLabel(status)).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}

// HTTPInFlight returns the in-flight request gauge.
func HTTPInFlight() prometheus.Gauge { return httpRequestsInFlight }

// ObserveRateLimited records one request rejected with 429.
func ObserveRateLimited(endpoint string) {
	rateLimitedTotal.WithLabelValues(endpoint).Inc()
}

// ObserveFetch records one remote fetch against host.
func ObserveFetch(host string, err error, elapsed time.Duration) {
	fetchTotal.WithLabelValues(host, outcome(err)).Inc()
	fetchDuration.WithLabelValues(host).Observe(elapsed.Seconds())
}

// ObserveExtraction records the outcome of one Extract call.
// kind is OutcomeOK or the error type reported to callers.
func ObserveExtraction(kind string) {
	extractionTotal.WithLabelValues(kind).Inc()
}

// ObserveImportItem records the outcome of one batch import line.
func ObserveImportItem(mode, kind string) {
	importItemsTotal.WithLabelValues(mode, kind).Inc()
}

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
