package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nomis52/goreport/buildinfo"
	"github.com/nomis52/goreport/config"
	"github.com/nomis52/goreport/logging"
	"github.com/nomis52/goreport/metrics"
	"github.com/nomis52/goreport/runner"
	"github.com/nomis52/goreport/schedule"
)

type Args struct {
	ConfigPath string
	Once       bool
}

func main() {
	if err := doMain(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func doMain() error {
	args := parseArgs()
	if args.ConfigPath == "" {
		return fmt.Errorf("-c or --config flag is required")
	}

	cfg, err := config.LoadConfig(args.ConfigPath)
	if err != nil {
		return fmt.Errorf("Error loading config: %w", err)
	}

	logger, err := logging.New(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Output:    cfg.Logging.Output,
		AddSource: cfg.Logging.AddSource,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	build := buildinfo.Get()
	logger.Info("goreport started",
		"config_path", args.ConfigPath,
		"build_time", build.BuildTime,
		"git_commit", build.GitCommit,
	)

	registry, err := newRegistry(cfg)
	if err != nil {
		return err
	}
	runMetrics, err := metrics.NewRunMetrics(registry)
	if err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}

	run := runner.New(cfg, logger, runMetrics)

	if cfg.Schedule.CronSpec == "" || args.Once {
		return run.Run()
	}

	trigger, err := schedule.NewTrigger(cfg.Schedule.CronSpec, run, logger)
	if err != nil {
		return fmt.Errorf("invalid schedule: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	trigger.Start(ctx)
	logger.Info("report schedule started",
		"spec", cfg.Schedule.CronSpec,
		"next_run", trigger.NextRun(),
	)
	<-ctx.Done()
	logger.Info("goreport shutting down")
	return nil
}

// newRegistry selects the metrics backend from the monitoring config.
func newRegistry(cfg config.Config) (metrics.Registry, error) {
	if cfg.Monitoring.VictoriaMetricsURL == "" {
		return metrics.NewNopRegistry(), nil
	}
	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("Error getting hostname: %w", err)
	}
	return metrics.NewPushRegistry(metrics.PushConfig{
		URL:      cfg.Monitoring.VictoriaMetricsURL,
		Prefix:   cfg.Monitoring.MetricsPrefix,
		Job:      cfg.Monitoring.JobName,
		Instance: hostname,
	}), nil
}

func parseArgs() Args {
	configPath := flag.String("config", "", "Path to config file")
	configPathShort := flag.String("c", "", "Path to config file (shorthand)")
	once := flag.Bool("once", false, "Generate one report and exit, ignoring any schedule")
	flag.Parse()

	path := *configPath
	if path == "" && *configPathShort != "" {
		path = *configPathShort
	}
	return Args{ConfigPath: path, Once: *once}
}
