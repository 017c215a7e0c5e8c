// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dashcam_catalog"

// Metrics holds the application collectors together with the registry they
// are registered in.
type Metrics struct {
	HTTPRequestTotal    *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// URLCheckTotal counts outbound video URL liveness checks by result.
	URLCheckTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics creates the collectors and registers them, together with the
// Go runtime and process collectors, in a fresh registry.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(prometheus.NewRegistry())
}

// NewMetricsWithRegistry is NewMetrics with a caller-supplied registry.
// Collectors already present in reg are reused.
func NewMetricsWithRegistry(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		HTTPRequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),

		URLCheckTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "url_checks_total",
			Help:      "Total number of video URL liveness checks",
		}, []string{"result"}),

		registry: reg,
	}

	m.HTTPRequestTotal = registerOrGet(reg, m.HTTPRequestTotal)
	m.HTTPRequestDuration = registerOrGet(reg, m.HTTPRequestDuration)
	m.URLCheckTotal = registerOrGet(reg, m.URLCheckTotal)
	registerOrGet(reg, collectors.NewGoCollector())
	registerOrGet(reg, collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	m.HTTPRequestTotal.WithLabelValues(method, route, code).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route, code).Observe(duration.Seconds())
}

// ObserveURLCheck records the outcome of one liveness check. A nil err
// counts as "ok".
func (m *Metrics) ObserveURLCheck(err error) {
	result := "ok"
	if err != nil {
		result = "failed"
	}
	m.URLCheckTotal.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// registerOrGet registers c in reg, or returns the collector registered
// earlier under the same descriptor.
func registerOrGet[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
	}
	return c
}
