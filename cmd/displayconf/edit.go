package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/1broseidon/displayconf/internal/monitor"
	"github.com/1broseidon/displayconf/internal/tui"
)

func (a *app) editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the display config interactively",
		Long: `Opens a form for every display config key. Fullscreen choices come from
the attached monitors. Changes are shown as a diff together with the window
attributes they produce before anything is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.loadConfig()
			if err != nil {
				return err
			}
			path := res.File
			if path == "" {
				if path, err = a.configPath(); err != nil {
					return err
				}
			}

			var monitors monitor.List
			backend, err := a.openBackend(a.v.GetString("display"), a.logger)
			if err != nil {
				a.logger.Warn("no monitor backend; fullscreen choices limited to the configured value", "error", err)
			} else {
				handles, err := backend.Monitors()
				backend.Close()
				if err != nil {
					return err
				}
				monitors = monitor.List(handles)
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			result, err := tui.Run(ctx, tui.Options{
				Path:     path,
				Config:   res.Config,
				Monitors: monitors,
				Input:    cmd.InOrStdin(),
				Output:   cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}
			if result.Saved {
				a.logger.Info("saved config", "path", path)
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
			}
			return nil
		},
	}
}
