package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (a *app) builderCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "builder",
		Short: "Print the window attributes the config produces",
		Long: `Loads the display config and converts it to window builder attributes.
The display server is only queried when fullscreen is set; an ident that
matches no attached monitor is an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.loadConfig()
			if err != nil {
				return err
			}

			monitors, closeFn, err := a.monitorsFor(res.Config)
			if err != nil {
				return err
			}
			defer closeFn()

			b, err := res.Config.ToBuilder(monitors)
			if err != nil {
				return err
			}
			if b.Window.Fullscreen != nil {
				a.logger.Debug("fullscreen target", "monitor", b.Window.Fullscreen.Name)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(b)
			}
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(b); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of YAML")
	return cmd
}
