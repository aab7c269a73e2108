package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/xfocus/xfocus/internal/daemon"
	"github.com/xfocus/xfocus/pkg/detector"
)

func newStopCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop a running watcher",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			dm := daemon.New(a.cfg.Daemon.PIDFile)

			running, pid, err := dm.IsRunning()
			if err != nil {
				return errors.Wrap(err, "failed to check watcher status")
			}
			if !running {
				fmt.Fprintln(out, "Watcher is not running")
				return nil
			}

			fmt.Fprintf(out, "Stopping watcher (PID: %d)...\n", pid)
			if err := dm.Stop(); err != nil {
				return errors.Wrap(err, "failed to stop watcher")
			}
			fmt.Fprintln(out, "Watcher stopped")
			return nil
		},
	}
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show watcher status and the focused application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			dm := daemon.New(a.cfg.Daemon.PIDFile)

			running, pid, err := dm.IsRunning()
			if err != nil {
				return errors.Wrap(err, "failed to check watcher status")
			}

			if running {
				fmt.Fprintf(out, "Status: Running (PID: %d)\n", pid)
				fmt.Fprintf(out, "Poll Interval: %v\n", a.cfg.Tracker.PollInterval)
			} else {
				fmt.Fprintln(out, "Status: Not running")
			}

			displayServer := detector.DetectDisplayServer()
			c := a.newClient(a.logger)

			fmt.Fprintf(out, "\nDisplay Server: %s\n", displayServer)
			fmt.Fprintf(out, "Supported: %v\n", c.Supported())
			if name, ok := c.CurrentApplication(); ok {
				fmt.Fprintf(out, "Current App: %s\n", name)
			} else {
				fmt.Fprintln(out, "Current App: (none)")
			}
			return nil
		},
	}
}
