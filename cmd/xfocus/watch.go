package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xfocus/xfocus/internal/daemon"
	"github.com/xfocus/xfocus/internal/database"
	"github.com/xfocus/xfocus/internal/tracker"
	"github.com/xfocus/xfocus/internal/web"
	"github.com/xfocus/xfocus/pkg/client"
	"github.com/xfocus/xfocus/pkg/detector"
)

func newWatchCmd(a *app) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Sample the focused application in the foreground",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("interval") {
				if err := a.cfg.SetPollInterval(interval); err != nil {
					return err
				}
			}
			return a.runTracker(cmd.Context(), false)
		},
	}

	cmd.Flags().DurationVarP(&interval, "interval", "i", 0, "Poll interval (default from config)")
	return cmd
}

func newServeCmd(a *app) *cobra.Command {
	var (
		interval time.Duration
		port     int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Sample the focused application and serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("interval") {
				if err := a.cfg.SetPollInterval(interval); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("port") {
				if err := a.cfg.SetWebPort(port); err != nil {
					return err
				}
			}
			return a.runTracker(cmd.Context(), true)
		},
	}

	cmd.Flags().DurationVarP(&interval, "interval", "i", 0, "Poll interval (default from config)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP API port (default from config)")
	return cmd
}

func (a *app) runTracker(parent context.Context, withWeb bool) error {
	if parent == nil {
		parent = context.Background()
	}

	dm := daemon.New(a.cfg.Daemon.PIDFile)
	running, pid, err := dm.IsRunning()
	if err != nil {
		return errors.Wrap(err, "failed to check watcher status")
	}
	if running {
		return errors.Errorf("watcher is already running (PID: %d)", pid)
	}

	db, err := database.Connect(a.cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Initialize(); err != nil {
		return err
	}

	if err := dm.WritePID(); err != nil {
		return err
	}
	defer func() {
		if err := dm.RemovePID(); err != nil {
			a.logger.Warn("failed to remove PID file", zap.Error(err))
		}
	}()

	displayServer := detector.DetectDisplayServer()
	focus := client.Serialized(a.newClient(a.logger))
	repo := database.NewRepository(db)
	trackerSvc := tracker.NewService(a.cfg, repo, focus, displayServer, a.logger)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.logger.Info("starting xfocus",
		zap.String("display_server", displayServer),
		zap.String("pid_file", dm.PIDFile()),
	)
	a.logger.Debug("configuration\n" + a.cfg.String())

	var webServer *web.Server
	if withWeb {
		webServer = web.NewServer(a.cfg, repo, focus, a.logger)
		go func() {
			if err := webServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.logger.Error("web server error", zap.Error(err))
				stop()
			}
		}()
		a.logger.Info("web API available", zap.String("address", "http://"+webServer.GetAddress()))
	}

	err = trackerSvc.Start(ctx)

	if webServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := webServer.Shutdown(shutdownCtx); err != nil {
			a.logger.Warn("web server shutdown failed", zap.Error(err))
		}
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrap(err, "tracker error")
	}

	a.logger.Info("xfocus stopped")
	return nil
}
