package runner

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomis52/goreport/config"
	"github.com/nomis52/goreport/metrics"
	"github.com/nomis52/goreport/report"
)

const testRoster = `
users:
  - name: Alice
    age: 25
    active: true
    role: Admin
    address:
      street: 123 Main St
      city: Metropolis
      country: USA
    activities:
      - verb: login
        timestamp: 2023-01-01
      - verb: purchase
        timestamp: 2023-02-15
  - name: Bob
    age: 17
    active: false
    role: User
    address:
      street: 456 Elm St
      city: Gotham
      country: USA
    activities:
      - verb: logout
        timestamp: 2023-03-22
  - name: Charlie
    age: 30
    active: true
    role: Guest
    address:
      street: 789 Oak St
      city: Star City
      country: USA
    activities:
      - verb: login
        timestamp: 2023-04-10
`

func writeRoster(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testRoster), 0644))
	return path
}

func testConfig(t *testing.T, mutate func(*config.Config)) config.Config {
	t.Helper()
	cfg := config.Config{Input: config.InputConfig{UsersFile: writeRoster(t)}}
	cfg.SetDefaults()
	if mutate != nil {
		mutate(&cfg)
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

func newTestRunner(t *testing.T, cfg config.Config, out *bytes.Buffer) *Runner {
	t.Helper()
	rm, err := metrics.NewRunMetrics(metrics.NewNopRegistry())
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return New(cfg, logger, rm, WithOutput(out))
}

func TestRunner_TextReport(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(t, func(c *config.Config) {
		c.Report.IncludeInactive = true
		c.Report.ExcludeVerbs = []string{"logout"}
	})

	require.NoError(t, newTestRunner(t, cfg, &out).Run())

	text := out.String()
	// Bob fails the age filter despite include_inactive.
	assert.NotContains(t, text, "Name: Bob")
	assert.Contains(t, text, "Name: Alice\nAge: 25\nStatus: Active\nRole: Admin\nAddress: 123 Main St, Metropolis, USA\n")
	assert.Contains(t, text, " - Alice performed purchase on 2023-02-15\n")
	assert.Contains(t, text, " - Charlie performed login on 2023-04-10\n")
}

func TestRunner_JSONReport(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(t, func(c *config.Config) {
		c.Output.Format = "json"
	})

	require.NoError(t, newTestRunner(t, cfg, &out).Run())

	var entries []report.Entry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "Alice", entries[0].Name)
	assert.Equal(t, "Charlie", entries[1].Name)
	assert.Equal(t, []string{
		"Charlie performed login on 2023-04-10",
	}, entries[1].Activities)
}

func TestRunner_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	cfg := testConfig(t, func(c *config.Config) {
		c.Output.Path = path
	})
	rm, err := metrics.NewRunMetrics(metrics.NewNopRegistry())
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	require.NoError(t, New(cfg, logger, rm).Run())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Name: Alice")
}

func TestRunner_MissingRosterFails(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(t, func(c *config.Config) {
		c.Input.UsersFile = filepath.Join(t.TempDir(), "nope.yaml")
	})

	err := newTestRunner(t, cfg, &out).Run()
	require.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRunner_EmptyRosterWritesEmptyReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.yaml")
	require.NoError(t, os.WriteFile(path, []byte("users: []\n"), 0644))

	var out bytes.Buffer
	cfg := testConfig(t, func(c *config.Config) {
		c.Input.UsersFile = path
	})

	require.NoError(t, newTestRunner(t, cfg, &out).Run())
	assert.Empty(t, out.String())
}
