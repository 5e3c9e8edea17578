package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/1broseidon/displayconf/internal/config"
	"github.com/1broseidon/displayconf/internal/yamlutil"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the display config decodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.loadConfig()
			if err != nil {
				var serr *config.SchemaError
				if errors.As(err, &serr) {
					a.logger.Error("invalid display config", "path", serr.Path, "at", serr.Source.String())
				}
				return err
			}
			where := res.File
			if where == "" {
				where = "defaults (no config file)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %s\n", where)
			return nil
		},
	}
}

func (a *app) explainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <key>",
		Short: "Show a config value and where it came from",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.loadConfig()
			if err != nil {
				return err
			}
			value, src, err := config.Explain(res, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s (%s)\n", args[0], inlineYAML(value), src)
			return nil
		},
	}
}

// inlineYAML renders v on one line, the way it would be written in a config.
func inlineYAML(v any) string {
	out, err := yamlutil.Inline(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return out
}
