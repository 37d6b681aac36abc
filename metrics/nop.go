package metrics

import "github.com/prometheus/client_golang/prometheus"

// NopRegistry implements Registry with metrics that discard every sample.
// Used when no monitoring endpoint is configured.
type NopRegistry struct{}

// NewNopRegistry creates a NopRegistry.
func NewNopRegistry() *NopRegistry {
	return &NopRegistry{}
}

func (NopRegistry) NewGauge(opts prometheus.GaugeOpts) (Gauge, error) {
	return nopMetric{}, nil
}

func (NopRegistry) NewCounter(opts prometheus.CounterOpts) (Counter, error) {
	return nopMetric{}, nil
}

func (NopRegistry) NewCounterVec(opts prometheus.CounterOpts, labels []string) (CounterVec, error) {
	return nopMetric{}, nil
}

type nopMetric struct{}

func (nopMetric) Set(float64) {}

func (nopMetric) Inc() {}

func (nopMetric) Add(v float64) {}

func (nopMetric) With(prometheus.Labels) Counter { return nopMetric{} }
