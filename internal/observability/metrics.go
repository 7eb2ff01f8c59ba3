package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters for the forecast service.
type Metrics struct {
	Resolutions      *prometheus.CounterVec // labels: outcome={city,prefecture,not_found,unavailable}
	UpstreamRequests *prometheus.CounterVec // labels: endpoint={overview,forecast}, outcome={success,error}
	Reports          *prometheus.CounterVec // labels: report={overview,short_term,weekly}, outcome={success,error}
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Resolutions,
		m.UpstreamRequests,
		m.Reports,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registration to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mcp_weather",
			Name:      "location_resolutions_total",
			Help:      "Location resolution attempts by outcome.",
		}, []string{"outcome"}),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mcp_weather",
			Name:      "upstream_requests_total",
			Help:      "JMA API requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		Reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mcp_weather",
			Name:      "reports_total",
			Help:      "Generated reports by type and outcome.",
		}, []string{"report", "outcome"}),
	}
}
