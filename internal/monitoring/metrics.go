package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Service metrics
	ToolCalls    *prometheus.CounterVec
	ToolDuration *prometheus.HistogramVec
	ToolErrors   *prometheus.CounterVec

	// Registry metrics
	RegistryServices prometheus.Gauge

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates a new metrics collector
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),

		ToolCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mathforge_tool_calls_total",
				Help: "Total number of tool executions",
			},
			[]string{"service", "tool"},
		),
		ToolDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mathforge_tool_duration_seconds",
				Help:    "Tool execution duration in seconds",
				Buckets: []float64{.00001, .0001, .001, .01, .1, 1},
			},
			[]string{"service", "tool"},
		),
		ToolErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mathforge_tool_errors_total",
				Help: "Total number of failed tool executions",
			},
			[]string{"service", "tool"},
		),

		RegistryServices: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "mathforge_registry_services",
				Help: "Number of registered services",
			},
		),

		Uptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "mathforge_uptime_seconds",
				Help: "Process uptime in seconds",
			},
		),
	}
}

// RecordToolCall records a single tool execution
func (m *Metrics) RecordToolCall(service, tool string, duration time.Duration, success bool) {
	m.ToolCalls.WithLabelValues(service, tool).Inc()
	m.ToolDuration.WithLabelValues(service, tool).Observe(duration.Seconds())
	if !success {
		m.ToolErrors.WithLabelValues(service, tool).Inc()
	}
}

// SetRegisteredServices updates the registered-services gauge
func (m *Metrics) SetRegisteredServices(n int) {
	m.RegistryServices.Set(float64(n))
}

// UpdateUptime refreshes the uptime gauge
func (m *Metrics) UpdateUptime() {
	m.Uptime.Set(time.Since(m.startTime).Seconds())
}
