package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "dockeeper"

type metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec

	rateLimitAllowed  prometheus.Counter
	rateLimitRejected prometheus.Counter
}

func newMetrics(reg *prometheus.Registry) *metrics {
	m := &metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: metricsNamespace, Name: "http_requests_total", Help: "Number of handled HTTP requests."},
			[]string{"method", "route", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Namespace: metricsNamespace, Name: "http_request_duration_seconds", Help: "Duration of handled HTTP requests.", Buckets: prometheus.DefBuckets},
			[]string{"method", "route"},
		),
		rateLimitAllowed: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: metricsNamespace, Name: "login_rate_limit_allowed_total", Help: "Number of login attempts let through by the rate limiter."},
		),
		rateLimitRejected: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: metricsNamespace, Name: "login_rate_limit_rejected_total", Help: "Number of login attempts rejected by the rate limiter."},
		),
	}

	reg.MustRegister(m.requests, m.duration, m.rateLimitAllowed, m.rateLimitRejected)
	return m
}

// handler serves the registry in the Prometheus exposition format.
func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
