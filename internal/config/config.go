package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Database configuration
	Database DatabaseConfig `yaml:"database"`

	// Tracker configuration
	Tracker TrackerConfig `yaml:"tracker"`

	// Daemon configuration
	Daemon DaemonConfig `yaml:"daemon"`

	// Report configuration
	Report ReportConfig `yaml:"report"`

	// Web server configuration
	Web WebConfig `yaml:"web"`

	// Logging configuration
	Log LogConfig `yaml:"log"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Path string `yaml:"path"` // Path to SQLite database file
}

// TrackerConfig holds polling behavior configuration
type TrackerConfig struct {
	PollInterval    time.Duration `yaml:"poll_interval"` // How often to resolve the focused application
	MinPollInterval time.Duration `yaml:"-"`
	MaxPollInterval time.Duration `yaml:"-"`
}

// DaemonConfig holds daemon process configuration
type DaemonConfig struct {
	PIDFile string `yaml:"pid_file"`
}

// ReportConfig holds report generation configuration
type ReportConfig struct {
	TimeZone string `yaml:"timezone"`
}

// WebConfig holds web server configuration
type WebConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "", // Empty means use default ~/.config/xfocus/xfocus.db
		},
		Tracker: TrackerConfig{
			PollInterval:    5 * time.Second,
			MinPollInterval: 1 * time.Second,
			MaxPollInterval: 300 * time.Second,
		},
		Daemon: DaemonConfig{
			PIDFile: fmt.Sprintf("/tmp/xfocus-%d.pid", os.Getuid()),
		},
		Report: ReportConfig{
			TimeZone: "Local",
		},
		Web: WebConfig{
			Host: "localhost",
			Port: 10000 + os.Getuid(),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Tracker.PollInterval < c.Tracker.MinPollInterval {
		return fmt.Errorf("poll interval (%v) cannot be less than minimum (%v)",
			c.Tracker.PollInterval, c.Tracker.MinPollInterval)
	}

	if c.Tracker.PollInterval > c.Tracker.MaxPollInterval {
		return fmt.Errorf("poll interval (%v) cannot be greater than maximum (%v)",
			c.Tracker.PollInterval, c.Tracker.MaxPollInterval)
	}

	if c.Web.Port < 1 || c.Web.Port > 65535 {
		return fmt.Errorf("web port must be between 1 and 65535, got %d", c.Web.Port)
	}

	if c.Web.Host == "" {
		return fmt.Errorf("web host cannot be empty")
	}

	if c.Daemon.PIDFile == "" {
		return fmt.Errorf("PID file path cannot be empty")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid report time zone %q: %w", c.Report.TimeZone, err)
	}

	return nil
}

// SetPollInterval sets the poll interval with validation
func (c *Config) SetPollInterval(interval time.Duration) error {
	if interval < c.Tracker.MinPollInterval {
		return fmt.Errorf("poll interval cannot be less than %v", c.Tracker.MinPollInterval)
	}
	if interval > c.Tracker.MaxPollInterval {
		return fmt.Errorf("poll interval cannot be greater than %v", c.Tracker.MaxPollInterval)
	}
	c.Tracker.PollInterval = interval
	return nil
}

// SetWebPort sets the web server port with validation
func (c *Config) SetWebPort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", port)
	}
	c.Web.Port = port
	return nil
}

// GetPollIntervalSeconds returns the poll interval in whole seconds
func (c *Config) GetPollIntervalSeconds() int64 {
	return int64(c.Tracker.PollInterval.Seconds())
}

// Location returns the time zone reports are computed in
func (c *Config) Location() (*time.Location, error) {
	if c.Report.TimeZone == "" || c.Report.TimeZone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Report.TimeZone)
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf(`Configuration:
  Database:
    Path: %s
  Tracker:
    Poll Interval: %v
    Min Interval: %v
    Max Interval: %v
  Daemon:
    PID File: %s
  Report:
    Time Zone: %s
  Web:
    Host: %s
    Port: %d
  Log:
    Level: %s
    Development: %v`,
		c.Database.Path,
		c.Tracker.PollInterval,
		c.Tracker.MinPollInterval,
		c.Tracker.MaxPollInterval,
		c.Daemon.PIDFile,
		c.Report.TimeZone,
		c.Web.Host,
		c.Web.Port,
		c.Log.Level,
		c.Log.Development,
	)
}
