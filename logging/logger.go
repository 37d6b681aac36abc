// Package logging provides structured logging for goreport.
// It wraps the standard library slog package and is configured from the
// same YAML config as the rest of the tool.
//
// Example usage:
//
//	logger, err := logging.New(logging.Config{Level: "info", Format: "json"})
//	logger.Info("report generated", "run_id", runID, "entries", len(entries))
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Config holds the configuration for the logger.
type Config struct {
	// Level sets the minimum log level. Valid values: debug, info, warn, error.
	Level string `yaml:"level"`
	// Format sets the output format. Valid values: json, text.
	Format string `yaml:"format"`
	// Output sets the destination. Valid values: stdout, stderr, or a file path.
	Output string `yaml:"output"`
	// AddSource adds source code positions to log records.
	AddSource bool `yaml:"add_source"`
}

// New creates a logger from cfg. Unset fields default to info/json/stdout.
func New(cfg Config) (*slog.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid logging config: %w", err)
	}

	writer, err := openWriter(cfg.Output)
	if err != nil {
		return nil, fmt.Errorf("invalid logging config: %w", err)
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.AddSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}

	var handler slog.Handler
	switch cfg.Format {
	case "", "json":
		handler = slog.NewJSONHandler(writer, opts)
	case "text":
		handler = slog.NewTextHandler(writer, opts)
	default:
		return nil, fmt.Errorf("invalid logging config: unsupported format %q", cfg.Format)
	}

	return slog.New(handler), nil
}

// parseLevel converts a string level to slog.Level. Empty means info.
func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown level %q", level)
	}
}

// openWriter returns the writer for the given output destination.
// Empty means stdout; anything other than stdout/stderr is a file path.
func openWriter(output string) (io.Writer, error) {
	switch output {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file %q: %w", output, err)
		}
		return f, nil
	}
}
