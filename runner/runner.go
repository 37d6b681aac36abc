// Package runner executes one report run end to end: load the user roster,
// render the report, write it to the configured destination, and record
// metrics. The report pipeline itself stays pure; all I/O lives here.
package runner

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nomis52/goreport/config"
	"github.com/nomis52/goreport/metrics"
	"github.com/nomis52/goreport/report"
	"github.com/nomis52/goreport/roster"
)

// Runner generates reports according to its configuration. It implements
// schedule.Runnable, so a single Runner serves both one-shot and scheduled
// operation.
type Runner struct {
	cfg     config.Config
	logger  *slog.Logger
	metrics *metrics.RunMetrics
	output  io.Writer // overrides cfg.Output.Path when set
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput redirects report output to w instead of the configured path.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.output = w
	}
}

// New creates a Runner.
func New(cfg config.Config, logger *slog.Logger, rm *metrics.RunMetrics, opts ...Option) *Runner {
	r := &Runner{
		cfg:     cfg,
		logger:  logger,
		metrics: rm,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run performs one report run.
func (r *Runner) Run() error {
	start := time.Now()
	runID := uuid.NewString()
	logger := r.logger.With("run_id", runID)

	err := r.run(logger)

	r.metrics.Duration.Set(time.Since(start).Seconds())
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.metrics.Runs.With(prometheus.Labels{"status": status}).Inc()

	if err != nil {
		logger.Error("report run failed", "error", err)
		return err
	}
	logger.Info("report run completed", "duration", time.Since(start))
	return nil
}

func (r *Runner) run(logger *slog.Logger) error {
	users, err := roster.Load(r.cfg.Input.UsersFile)
	if err != nil {
		return fmt.Errorf("loading roster: %w", err)
	}
	r.metrics.UsersConsidered.Add(float64(len(users)))
	logger.Info("roster loaded", "users", len(users), "file", r.cfg.Input.UsersFile)

	entries, err := report.Render(users, r.cfg.Report.Options())
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	r.metrics.UsersSelected.Add(float64(len(entries)))
	lines := 0
	for _, e := range entries {
		lines += len(e.Activities)
	}
	r.metrics.ActivityLines.Add(float64(lines))
	logger.Info("report rendered", "entries", len(entries), "activity_lines", lines)

	if err := r.write(entries); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// write emits the rendered entries in the configured format.
func (r *Runner) write(entries []report.Entry) error {
	out, closeOut, err := r.openOutput()
	if err != nil {
		return err
	}
	defer closeOut()

	switch r.cfg.Output.Format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	default: // text
		blocks := make([]string, 0, len(entries))
		for _, e := range entries {
			blocks = append(blocks, report.FormatEntry(e))
		}
		_, err := io.WriteString(out, strings.Join(blocks, "\n"))
		return err
	}
}

// openOutput resolves the output destination. The returned close function is
// a no-op for stdout/stderr and injected writers.
func (r *Runner) openOutput() (io.Writer, func(), error) {
	if r.output != nil {
		return r.output, func() {}, nil
	}
	switch r.cfg.Output.Path {
	case "", "stdout":
		return os.Stdout, func() {}, nil
	case "stderr":
		return os.Stderr, func() {}, nil
	default:
		f, err := os.Create(r.cfg.Output.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening output file %q: %w", r.cfg.Output.Path, err)
		}
		return f, func() { f.Close() }, nil
	}
}
