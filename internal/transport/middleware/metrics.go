package middleware

import (
	"net/http"
	"time"

	"github.com/heartmarshall/learnenglish-backend/internal/metrics"
)

// Metrics records request count, latency and in-flight requests per route
// pattern. It must wrap the ServeMux directly so the matched pattern is visible.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inFlight := metrics.HTTPInFlight()
		inFlight.Inc()
		defer inFlight.Dec()

		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		metrics.ObserveHTTP(r.Method, endpoint(r), sw.status, time.Since(start))
	})
}

// endpoint is the matched route pattern, so path ids do not explode label cardinality.
func endpoint(r *http.Request) string {
	if r.Pattern == "" {
		return "unmatched"
	}
	return r.Pattern
}
