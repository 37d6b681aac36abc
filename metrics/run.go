package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// RunMetrics bundles the metrics recorded for each report run.
type RunMetrics struct {
	// Runs counts report runs, labeled by status (ok, error).
	Runs CounterVec
	// UsersConsidered counts users seen in the input roster.
	UsersConsidered Counter
	// UsersSelected counts users that qualified for the report.
	UsersSelected Counter
	// ActivityLines counts formatted activity lines emitted.
	ActivityLines Counter
	// Duration records the wall time of the last run in seconds.
	Duration Gauge
}

// NewRunMetrics creates the report run metrics on the given registry.
func NewRunMetrics(reg Registry) (*RunMetrics, error) {
	runs, err := reg.NewCounterVec(prometheus.CounterOpts{
		Name: "runs_total",
		Help: "Report runs by status.",
	}, []string{"status"})
	if err != nil {
		return nil, fmt.Errorf("creating runs counter: %w", err)
	}

	considered, err := reg.NewCounter(prometheus.CounterOpts{
		Name: "users_considered_total",
		Help: "Users read from the input roster.",
	})
	if err != nil {
		return nil, fmt.Errorf("creating users considered counter: %w", err)
	}

	selected, err := reg.NewCounter(prometheus.CounterOpts{
		Name: "users_selected_total",
		Help: "Users that qualified for the report.",
	})
	if err != nil {
		return nil, fmt.Errorf("creating users selected counter: %w", err)
	}

	lines, err := reg.NewCounter(prometheus.CounterOpts{
		Name: "activity_lines_total",
		Help: "Formatted activity lines emitted.",
	})
	if err != nil {
		return nil, fmt.Errorf("creating activity lines counter: %w", err)
	}

	duration, err := reg.NewGauge(prometheus.GaugeOpts{
		Name: "run_duration_seconds",
		Help: "Wall time of the last report run.",
	})
	if err != nil {
		return nil, fmt.Errorf("creating duration gauge: %w", err)
	}

	return &RunMetrics{
		Runs:            runs,
		UsersConsidered: considered,
		UsersSelected:   selected,
		ActivityLines:   lines,
		Duration:        duration,
	}, nil
}
