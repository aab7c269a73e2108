package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// EnvPrefix is prepended to every environment variable name, e.g. XFOCUS_DB_PATH
const EnvPrefix = "XFOCUS"

// envOverrides maps XFOCUS_* variables; nil fields were not set
type envOverrides struct {
	DBPath       *string        `split_words:"true"`
	PollInterval *time.Duration `split_words:"true"`
	PIDFile      *string        `split_words:"true"`
	WebHost      *string        `split_words:"true"`
	WebPort      *int           `split_words:"true"`
	LogLevel     *string        `split_words:"true"`
	LogDev       *bool          `split_words:"true"`
	Timezone     *string
}

// LoadFromEnv loads configuration from environment variables.
// Only variables that are set override the current values.
func LoadFromEnv(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return errors.Wrap(err, "failed to load configuration from environment")
	}

	if env.DBPath != nil {
		cfg.Database.Path = *env.DBPath
	}
	if env.PollInterval != nil {
		cfg.Tracker.PollInterval = *env.PollInterval
	}
	if env.PIDFile != nil {
		cfg.Daemon.PIDFile = *env.PIDFile
	}
	if env.WebHost != nil {
		cfg.Web.Host = *env.WebHost
	}
	if env.WebPort != nil {
		cfg.Web.Port = *env.WebPort
	}
	if env.LogLevel != nil {
		cfg.Log.Level = *env.LogLevel
	}
	if env.LogDev != nil {
		cfg.Log.Development = *env.LogDev
	}
	if env.Timezone != nil {
		cfg.Report.TimeZone = *env.Timezone
	}
	return nil
}
