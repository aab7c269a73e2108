package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCurrentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Print the application that holds keyboard focus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.newClient(a.logger)
			name, ok := c.CurrentApplication()
			if !ok {
				return exitCode(1)
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}

func newSupportedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "supported",
		Short: "Report whether focus lookup works in this session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			supported := a.newClient(a.logger).Supported()
			fmt.Fprintln(cmd.OutOrStdout(), supported)
			if !supported {
				return exitCode(1)
			}
			return nil
		},
	}
}
