// Package schedule provides cron-based scheduling for recurring report runs.
//
// The Trigger type wraps a Runnable and executes it according to a cron
// schedule. It is designed to be started once and run until the context is
// cancelled. Runs execute serially; a slow run delays the next one rather
// than overlapping it.
//
// Example usage:
//
//	trigger, err := schedule.NewTrigger("0 6 * * *", runner, logger)
//	if err != nil {
//	    return err
//	}
//	trigger.Start(ctx)  // Returns immediately, runs in background
//	<-ctx.Done()        // Wait for shutdown signal
package schedule

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// ErrInvalidCronSpec is returned when the cron specification cannot be parsed.
var ErrInvalidCronSpec = errors.New("invalid cron spec")

// Runnable is implemented by anything the scheduler can trigger.
type Runnable interface {
	Run() error
}

// Trigger executes a Runnable according to a cron schedule.
type Trigger struct {
	spec     string
	schedule cron.Schedule
	runnable Runnable
	logger   *slog.Logger
}

// NewTrigger creates a Trigger with the given cron specification.
// The spec follows standard cron format (5 fields: minute, hour, day, month,
// weekday). Returns ErrInvalidCronSpec if the specification cannot be parsed.
func NewTrigger(spec string, runnable Runnable, logger *slog.Logger) (*Trigger, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	schedule, err := parser.Parse(spec)
	if err != nil {
		return nil, errors.Join(ErrInvalidCronSpec, err)
	}

	return &Trigger{
		spec:     spec,
		schedule: schedule,
		runnable: runnable,
		logger:   logger,
	}, nil
}

// Start launches a goroutine that triggers runs according to the cron
// schedule. Returns immediately. The goroutine exits when ctx is cancelled.
func (t *Trigger) Start(ctx context.Context) {
	go t.loop(ctx)
}

// NextRun returns the next scheduled run time from now.
func (t *Trigger) NextRun() time.Time {
	return t.schedule.Next(time.Now())
}

// loop is the main scheduling loop that runs in a goroutine.
func (t *Trigger) loop(ctx context.Context) {
	for {
		nextRun := t.schedule.Next(time.Now())

		t.logger.Debug("waiting for next scheduled report",
			"spec", t.spec,
			"next_run", nextRun,
		)

		select {
		case <-ctx.Done():
			t.logger.Info("report schedule shutting down")
			return
		case <-time.After(time.Until(nextRun)):
			t.execute()
		}
	}
}

// execute performs one scheduled run.
func (t *Trigger) execute() {
	t.logger.Info("starting scheduled report run", "spec", t.spec)
	if err := t.runnable.Run(); err != nil {
		t.logger.Error("scheduled report run failed", "error", err)
		return
	}
	t.logger.Info("scheduled report run completed")
}
