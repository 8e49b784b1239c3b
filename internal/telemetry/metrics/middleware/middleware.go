package middleware

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Middleware instruments wrapped handlers with per-route duration, in-flight
// and total-requests metrics, registered on the given registerer.
type Middleware struct {
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	inFlight        prometheus.Gauge
}

func New(reg prometheus.Registerer, buckets []float64) *Middleware {
	factory := promauto.With(reg)

	if buckets == nil {
		buckets = prometheus.ExponentialBuckets(0.1, 1.5, 5)
	}

	return &Middleware{
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Tracks the latencies for HTTP requests.",
			Buckets: buckets,
		}, []string{"method", "route", "code"}),
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Tracks the number of HTTP requests.",
		}, []string{"method", "route", "code"}),
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Tracks the number of HTTP requests currently being served.",
		}),
	}
}

func (m *Middleware) WrapHandler(route string, handler http.Handler) http.HandlerFunc {
	wrapped := promhttpInstrument(m, route, handler)
	return wrapped.ServeHTTP
}

func promhttpInstrument(m *Middleware, route string, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
			m.requestDuration.WithLabelValues(r.Method, route, httpStatusLabel(sw.status)).Observe(v)
		}))
		defer timer.ObserveDuration()

		handler.ServeHTTP(sw, r)

		m.requestsTotal.WithLabelValues(r.Method, route, httpStatusLabel(sw.status)).Inc()
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func httpStatusLabel(status int) string {
	return strconv.Itoa(status)
}
