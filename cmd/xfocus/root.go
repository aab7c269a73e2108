package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xfocus/xfocus/internal/config"
	"github.com/xfocus/xfocus/internal/logging"
	"github.com/xfocus/xfocus/pkg/client"
	"github.com/xfocus/xfocus/pkg/detector"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

const appName = "xfocus"

// app holds the state shared by all subcommands
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger

	// newClient builds the focus client for the session
	newClient func(logger *zap.Logger) client.Client
}

func newApp() *app {
	return &app{
		logger:    logging.NewNop(),
		newClient: detector.New,
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Focused application lookup and focus time tracking for X11",
		Long: `xfocus reports which application holds keyboard focus on an X11 display.

It can print the focused application once, or sample it on an interval,
store the samples in sqlite and summarise them as time reports.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "",
		"Path to config file (default: ~/.config/xfocus/config.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"Enable debug logging")

	root.AddCommand(
		newCurrentCmd(a),
		newSupportedCmd(a),
		newWatchCmd(a),
		newServeCmd(a),
		newStopCmd(a),
		newStatusCmd(a),
		newReportCmd(a),
		newClearCmd(a),
		newVersionCmd(),
	)

	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	a.cfg = cfg

	logCfg := logging.FromConfig(cfg.Log)
	if a.verbose {
		logCfg.Level = "debug"
	}

	logger, err := logging.New(logCfg)
	if err != nil {
		logger = logging.NewDefault()
		logger.Warn("failed to create configured logger, using defaults", zap.Error(err))
	}
	a.logger = logger.Named(appName)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s version %s\n", appName, version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", buildTime)
		},
	}
}
