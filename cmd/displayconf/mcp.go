package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/1broseidon/displayconf/internal/mcp"
	"github.com/1broseidon/displayconf/internal/monitor"
)

func (a *app) mcpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Model Context Protocol server",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server on stdio",
		Long: `Start the MCP server on stdio. Designed to be invoked by MCP clients.

Tools: list_monitors, build_window, default_config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var lister monitor.Lister
			backend, err := a.openBackend(a.v.GetString("display"), a.logger)
			if err != nil {
				a.logger.Warn("no monitor backend; fullscreen configs will not resolve", "error", err)
			} else {
				defer backend.Close()
				lister = backend
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return mcp.NewServer(lister, a.logger).Run(ctx)
		},
	})
	return cmd
}
