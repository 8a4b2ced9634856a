package http

import (
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/MKhiriev/beichen-observer/internal/utils"
)

// metrics owns a private registry so handlers built in tests do not clash
// on the default one.
type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)
	return &metrics{
		registry: registry,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "beichen",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "beichen",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		// unmatched paths share one label to keep cardinality bounded
		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		h.metrics.requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		h.metrics.observeDuration(r, route, time.Since(start).Seconds())
	})
}

// maxExemplarTraceID keeps client-supplied trace ids inside the exemplar
// label limit.
const maxExemplarTraceID = 64

// observeDuration attaches the request trace id as an exemplar when it fits.
func (m *metrics) observeDuration(r *http.Request, route string, seconds float64) {
	observer := m.duration.WithLabelValues(route, r.Method)

	traceID, ok := utils.GetTraceIDFromContext(r.Context())
	exemplar, canExemplar := observer.(prometheus.ExemplarObserver)
	if !ok || !canExemplar || len(traceID) > maxExemplarTraceID || !utf8.ValidString(traceID) {
		observer.Observe(seconds)
		return
	}
	exemplar.ObserveWithExemplar(seconds, prometheus.Labels{"trace_id": traceID})
}
