// Package metrics provides Prometheus-compatible metrics for report runs.
//
// goreport is a run-to-completion tool, so metrics are pushed to a
// VictoriaMetrics/Prometheus remote write endpoint rather than exposed for
// scraping. When monitoring is not configured, a no-op registry keeps the
// call sites unconditional.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Gauge is a metric that represents a single numerical value that can go up and down.
type Gauge interface {
	// Set sets the Gauge to the given value.
	Set(float64)
}

// Counter is a metric that represents a single monotonically increasing counter.
type Counter interface {
	// Inc increments the counter by 1.
	Inc()
	// Add adds the given value to the counter. It panics if the value is negative.
	Add(float64)
}

// CounterVec is a Counter with labels.
type CounterVec interface {
	// With returns the Counter for the given Labels.
	With(prometheus.Labels) Counter
}

// Registry creates metrics. Implementations decide where samples go.
type Registry interface {
	// NewGauge creates a new Gauge.
	NewGauge(opts prometheus.GaugeOpts) (Gauge, error)

	// NewCounter creates a new Counter.
	NewCounter(opts prometheus.CounterOpts) (Counter, error)

	// NewCounterVec creates a new CounterVec.
	NewCounterVec(opts prometheus.CounterOpts, labels []string) (CounterVec, error)
}
