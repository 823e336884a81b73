// Package metrics provides Prometheus-compatible metrics for the activities service.
//
// The package supports two modes of operation:
//   - Scrape mode: request and registry counters registered with a Prometheus
//     registry and exposed via the /metrics endpoint
//   - Push mode: roster snapshot gauges pushed to a VictoriaMetrics/Prometheus
//     remote write endpoint on a schedule
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collectors holds the scrape-mode counters for the service.
type Collectors struct {
	registry       *prometheus.Registry
	signups        prometheus.Counter
	unregisters    prometheus.Counter
	registryErrors *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
}

// NewCollectors creates and registers the service counters.
// All metric names are prefixed with the given namespace.
func NewCollectors(namespace string) *Collectors {
	registry := prometheus.NewRegistry()

	c := &Collectors{
		registry: registry,
		signups: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signups_total",
			Help:      "Total number of successful activity signups.",
		}),
		unregisters: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unregisters_total",
			Help:      "Total number of successful activity unregistrations.",
		}),
		registryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registry_errors_total",
			Help:      "Total number of failed registry operations by kind.",
		}, []string{"kind"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code.",
		}, []string{"method", "path", "code"}),
	}

	registry.MustRegister(c.signups, c.unregisters, c.registryErrors, c.httpRequests)
	return c
}

// Handler returns the HTTP handler for the /metrics endpoint.
func (c *Collectors) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// IncSignup records a successful signup.
func (c *Collectors) IncSignup() {
	c.signups.Inc()
}

// IncUnregister records a successful unregistration.
func (c *Collectors) IncUnregister() {
	c.unregisters.Inc()
}

// IncRegistryError records a failed registry operation.
// Kind is one of "not_found", "already_signed_up", "not_signed_up".
func (c *Collectors) IncRegistryError(kind string) {
	c.registryErrors.WithLabelValues(kind).Inc()
}

// IncHTTPRequest records a completed HTTP request.
func (c *Collectors) IncHTTPRequest(method, path, code string) {
	c.httpRequests.WithLabelValues(method, path, code).Inc()
}
