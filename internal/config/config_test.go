package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Empty(t, cfg.Database.Path)
	assert.Equal(t, 5*time.Second, cfg.Tracker.PollInterval)
	assert.Equal(t, time.Second, cfg.Tracker.MinPollInterval)
	assert.Equal(t, 300*time.Second, cfg.Tracker.MaxPollInterval)
	assert.Contains(t, cfg.Daemon.PIDFile, "/tmp/xfocus-")
	assert.Equal(t, "localhost", cfg.Web.Host)
	assert.Equal(t, 10000+os.Getuid(), cfg.Web.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Development)
	assert.Equal(t, "Local", cfg.Report.TimeZone)

	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"poll interval too low", func(c *Config) { c.Tracker.PollInterval = 100 * time.Millisecond }, "cannot be less than"},
		{"poll interval too high", func(c *Config) { c.Tracker.PollInterval = time.Hour }, "cannot be greater than"},
		{"port zero", func(c *Config) { c.Web.Port = 0 }, "web port"},
		{"port too high", func(c *Config) { c.Web.Port = 70000 }, "web port"},
		{"empty host", func(c *Config) { c.Web.Host = "" }, "web host"},
		{"empty pid file", func(c *Config) { c.Daemon.PIDFile = "" }, "PID file"},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, "log level"},
		{"bad time zone", func(c *Config) { c.Report.TimeZone = "Mars/Olympus_Mons" }, "time zone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSetPollInterval(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.SetPollInterval(30*time.Second))
	assert.Equal(t, 30*time.Second, cfg.Tracker.PollInterval)
	assert.Equal(t, int64(30), cfg.GetPollIntervalSeconds())

	assert.Error(t, cfg.SetPollInterval(500*time.Millisecond))
	assert.Error(t, cfg.SetPollInterval(10*time.Minute))
	assert.Equal(t, 30*time.Second, cfg.Tracker.PollInterval)
}

func TestSetWebPort(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.SetWebPort(8080))
	assert.Equal(t, 8080, cfg.Web.Port)
	assert.Error(t, cfg.SetWebPort(-1))
	assert.Equal(t, 8080, cfg.Web.Port)
}

func TestLocation(t *testing.T) {
	cfg := Default()
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	cfg.Report.TimeZone = "UTC"
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("XFOCUS_DB_PATH", "/var/lib/xfocus.db")
	t.Setenv("XFOCUS_POLL_INTERVAL", "2s")
	t.Setenv("XFOCUS_PID_FILE", "/run/xfocus.pid")
	t.Setenv("XFOCUS_WEB_HOST", "127.0.0.1")
	t.Setenv("XFOCUS_WEB_PORT", "9000")
	t.Setenv("XFOCUS_LOG_LEVEL", "debug")
	t.Setenv("XFOCUS_LOG_DEV", "true")
	t.Setenv("XFOCUS_TIMEZONE", "UTC")

	cfg := Default()
	require.NoError(t, LoadFromEnv(cfg))

	assert.Equal(t, "/var/lib/xfocus.db", cfg.Database.Path)
	assert.Equal(t, 2*time.Second, cfg.Tracker.PollInterval)
	assert.Equal(t, "/run/xfocus.pid", cfg.Daemon.PIDFile)
	assert.Equal(t, "127.0.0.1", cfg.Web.Host)
	assert.Equal(t, 9000, cfg.Web.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, "UTC", cfg.Report.TimeZone)
}

func TestLoadFromEnvKeepsUnsetValues(t *testing.T) {
	t.Setenv("XFOCUS_WEB_PORT", "9001")

	cfg := Default()
	cfg.Database.Path = "/from/file.db"
	require.NoError(t, LoadFromEnv(cfg))

	assert.Equal(t, 9001, cfg.Web.Port)
	assert.Equal(t, "/from/file.db", cfg.Database.Path)
	assert.Equal(t, 5*time.Second, cfg.Tracker.PollInterval)
}

func TestLoadFromEnvInvalid(t *testing.T) {
	t.Setenv("XFOCUS_WEB_PORT", "not-a-port")

	cfg := Default()
	assert.Error(t, LoadFromEnv(cfg))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
database:
  path: /tmp/test.db
tracker:
  poll_interval: 15s
web:
  port: 8088
log:
  level: warn
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := Default()
	require.NoError(t, LoadFile(cfg, path))

	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.Equal(t, 15*time.Second, cfg.Tracker.PollInterval)
	assert.Equal(t, 8088, cfg.Web.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "localhost", cfg.Web.Host, "unset key changed")
	assert.Equal(t, time.Second, cfg.Tracker.MinPollInterval)
}

func TestLoadFileMissing(t *testing.T) {
	cfg := Default()
	require.NoError(t, LoadFile(cfg, filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Equal(t, Default().String(), cfg.String())
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tracker: [not, a, map"), 0644))

	err := LoadFile(Default(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("web:\n  port: 8088\n  host: 0.0.0.0\n"), 0644))
	t.Setenv("XFOCUS_WEB_PORT", "9100")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Web.Port, "environment should win over file")
	assert.Equal(t, "0.0.0.0", cfg.Web.Host)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tracker:\n  poll_interval: 10ms\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestString(t *testing.T) {
	s := Default().String()
	assert.Contains(t, s, "Poll Interval: 5s")
	assert.Contains(t, s, "Level: info")
}
