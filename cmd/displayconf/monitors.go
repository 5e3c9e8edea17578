package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/1broseidon/displayconf/internal/monitor"
)

func (a *app) monitorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "monitors",
		Short: "List attached monitors and their fullscreen idents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := a.openBackend(a.v.GetString("display"), a.logger)
			if err != nil {
				return err
			}
			defer backend.Close()

			handles, err := backend.Monitors()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(handles) == 0 {
				fmt.Fprintln(w, "No monitors found.")
				return nil
			}

			maxNameLen := len("NAME")
			for _, h := range handles {
				if len(h.Name) > maxNameLen {
					maxNameLen = len(h.Name)
				}
			}

			fmt.Fprintf(w, "  %-5s  %-*s  %-22s  %s\n", "INDEX", maxNameLen, "NAME", "GEOMETRY", "IDENT")
			for _, h := range handles {
				geom := fmt.Sprintf("%dx%d+%d+%d", h.Width, h.Height, h.X, h.Y)
				ident := inlineYAML(monitor.IdentOf(h))
				if h.Primary {
					geom += " *"
				}
				fmt.Fprintf(w, "  %-5d  %-*s  %-22s  %s\n", h.Index, maxNameLen, h.Name, geom, ident)
			}

			if primary, ok := monitor.Primary(monitor.List(handles)); ok {
				fmt.Fprintln(w)
				fmt.Fprintf(w, "Primary: %s. Set 'fullscreen: %s' to use it.\n", primary.Name, inlineYAML(monitor.IdentOf(primary)))
			}
			return nil
		},
	}
}
