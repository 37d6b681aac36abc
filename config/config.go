package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nomis52/goreport/dateformat"
	"github.com/nomis52/goreport/report"
)

const (
	// Default report settings
	defaultMinAge     = 18
	defaultDateFormat = dateformat.DefaultPattern

	// Default output settings
	defaultOutputFormat = "text"
	defaultOutputPath   = "stdout"

	// Default monitoring settings
	defaultMetricsPrefix = "goreport"
	defaultJobName       = "goreport"

	// Default logging settings
	defaultLogLevel  = "info"
	defaultLogFormat = "json"
	defaultLogOutput = "stderr"
)

// Config represents the complete application configuration
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Report     ReportConfig     `yaml:"report"`
	Output     OutputConfig     `yaml:"output"`
	Schedule   ScheduleConfig   `yaml:"schedule"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// InputConfig names the data sources for a report run
type InputConfig struct {
	// UsersFile is the path to the YAML user roster
	UsersFile string `yaml:"users_file"`
}

// ReportConfig controls report filtering and formatting
type ReportConfig struct {
	// MinAge is the minimum user age. Omitted means 18; an explicit 0
	// admits all ages.
	MinAge *int `yaml:"min_age"`

	// IncludeInactive admits users whose active flag is false
	IncludeInactive bool `yaml:"include_inactive"`

	// DateFormat is the pattern for activity timestamps (YYYY, MM, DD tokens)
	DateFormat string `yaml:"date_format"`

	// ExcludeVerbs drops activities with any of these verbs from the report
	ExcludeVerbs []string `yaml:"exclude_verbs"`
}

// OutputConfig controls where and how the report is written
type OutputConfig struct {
	Format string `yaml:"format"` // report format: text, json
	Path   string `yaml:"path"`   // stdout, stderr, or a file path
}

// ScheduleConfig enables periodic report generation
type ScheduleConfig struct {
	// CronSpec is a standard 5-field cron expression. Empty disables scheduling.
	CronSpec string `yaml:"cron_spec"`
}

// MonitoringConfig holds metrics settings
type MonitoringConfig struct {
	// VictoriaMetricsURL is the remote write endpoint. Empty disables metrics.
	VictoriaMetricsURL string `yaml:"victoriametrics_url"`
	MetricsPrefix      string `yaml:"metrics_prefix"`
	JobName            string `yaml:"jobname"`
}

// LoggingConfig defines logging behavior settings
type LoggingConfig struct {
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	Output    string `yaml:"output"`
	AddSource bool   `yaml:"add_source"`
}

// Validate performs basic validation on the configuration
func (c *Config) Validate() error {
	if c.Input.UsersFile == "" {
		return fmt.Errorf("input users_file is required")
	}
	if c.Report.MinAge != nil && *c.Report.MinAge < 0 {
		return fmt.Errorf("report min_age must not be negative")
	}
	for _, v := range c.Report.ExcludeVerbs {
		switch report.Verb(v) {
		case report.VerbLogin, report.VerbLogout, report.VerbPurchase:
		default:
			return fmt.Errorf("unknown verb %q in exclude_verbs", v)
		}
	}
	validFormats := []string{"text", "json"}
	if !slices.Contains(validFormats, c.Output.Format) {
		return fmt.Errorf("output format must be one of: %s", strings.Join(validFormats, ", "))
	}
	return nil
}

// SetDefaults sets reasonable default values for optional fields
func (c *Config) SetDefaults() {
	if c.Report.MinAge == nil {
		minAge := defaultMinAge
		c.Report.MinAge = &minAge
	}
	if c.Report.DateFormat == "" {
		c.Report.DateFormat = defaultDateFormat
	}
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	if c.Output.Path == "" {
		c.Output.Path = defaultOutputPath
	}
	if c.Monitoring.MetricsPrefix == "" {
		c.Monitoring.MetricsPrefix = defaultMetricsPrefix
	}
	if c.Monitoring.JobName == "" {
		c.Monitoring.JobName = defaultJobName
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if c.Logging.Output == "" {
		c.Logging.Output = defaultLogOutput
	}
}

// Options builds the report options described by the configuration.
func (r ReportConfig) Options() report.Options {
	opts := report.DefaultOptions()
	if r.MinAge != nil {
		opts.MinAge = *r.MinAge
	}
	opts.IncludeInactive = r.IncludeInactive
	if r.DateFormat != "" {
		opts.DateFormat = r.DateFormat
	}
	if len(r.ExcludeVerbs) > 0 {
		excluded := make(map[report.Verb]bool, len(r.ExcludeVerbs))
		for _, v := range r.ExcludeVerbs {
			excluded[report.Verb(v)] = true
		}
		opts.ActivityFilter = func(a report.Activity) bool {
			return !excluded[a.Verb]
		}
	}
	return opts
}

// LoadConfig reads the YAML config file at the given path and returns a Config struct
func LoadConfig(path string) (Config, error) {
	var cfg Config
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
