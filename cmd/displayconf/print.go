package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/1broseidon/displayconf/internal/config"
)

func (a *app) printCmd() *cobra.Command {
	var defaults bool
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the effective display config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultDisplayConfig()
			if !defaults {
				res, err := a.loadConfig()
				if err != nil {
					return err
				}
				cfg = res.Config
			}
			data, err := config.Encode(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, "Print the built-in defaults instead of the loaded config")
	return cmd
}

func (a *app) initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default display config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.configPath()
			if err != nil {
				return err
			}
			if !force {
				_, err := os.Stat(path)
				switch {
				case err == nil:
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				case !os.IsNotExist(err):
					return fmt.Errorf("failed to check %s: %w", path, err)
				}
			}
			if err := config.Save(path, config.DefaultDisplayConfig()); err != nil {
				return err
			}
			a.logger.Info("wrote default config", "path", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}
