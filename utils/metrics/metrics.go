// Package metrics provides Prometheus instrumentation for the humidor API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// CigarsSmoked counts cigars removed from humidors by the smoke action.
	CigarsSmoked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "humidor_cigars_smoked_total",
		Help: "Total number of cigars smoked",
	})

	// HumidorRejections counts ledger writes refused by quantity checks.
	HumidorRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "humidor_ledger_rejections_total",
		Help: "Ledger writes rejected by quantity invariants",
	}, []string{"operation"})

	// ListingsCreated counts listings by type and initial status.
	ListingsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "humidor_listings_created_total",
		Help: "Total number of marketplace listings created",
	}, []string{"type", "status"})

	// ListingTransitions counts status changes.
	ListingTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "humidor_listing_transitions_total",
		Help: "Listing status transitions",
	}, []string{"from", "to"})

	// MagicLinksIssued counts sign-in links handed out.
	MagicLinksIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "humidor_magic_links_issued_total",
		Help: "Total number of magic sign-in links issued",
	})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "humidor_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "humidor_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"method", "path"})
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request count and latency per route template.
func Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			path := routeTemplate(r)
			HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.status)).Inc()
			HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		})
	}
}

// routeTemplate keeps label cardinality bounded: /listings/{id} instead of /listings/42.
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
