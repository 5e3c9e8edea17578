package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/1broseidon/displayconf/internal/config"
	"github.com/1broseidon/displayconf/internal/monitor"
	"github.com/1broseidon/displayconf/internal/platform"
)

// app carries state shared by every subcommand.
type app struct {
	v      *viper.Viper
	logger *slog.Logger

	// openBackend is swapped out in tests.
	openBackend func(display string, logger *slog.Logger) (platform.Backend, error)
}

func newApp() *app {
	return &app{
		v:           viper.New(),
		logger:      slog.Default(),
		openBackend: platform.New,
	}
}

func newRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "displayconf",
		Short: "Turn display settings into window builder attributes",
		Long: `displayconf reads a display config (title, size limits, decorations,
fullscreen monitor, ...) and produces the attributes a window is created with.

Keys missing from the config file take their defaults.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), a.v.GetString("log-level"))
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Path to display config (default: ~/.config/displayconf/display.yaml)")
	pf.String("display", "", "X display to query for monitors (default: $DISPLAY)")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.Bool("strict", false, "Reject unknown keys in the config file")

	a.v.SetEnvPrefix("DISPLAYCONF")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(pf); err != nil {
		panic(err)
	}

	root.AddCommand(
		a.printCmd(),
		a.initCmd(),
		a.editCmd(),
		a.validateCmd(),
		a.explainCmd(),
		a.monitorsCmd(),
		a.builderCmd(),
		a.mcpCmd(),
	)
	return root
}

// newLogger returns an slog logger backed by charmbracelet/log. Output is
// human-readable on a terminal and logfmt otherwise.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	formatter := log.LogfmtFormatter
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		formatter = log.TextFormatter
	}

	handler := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "displayconf",
		Formatter:       formatter,
	})
	return slog.New(handler), nil
}

func (a *app) configPath() (string, error) {
	if path := a.v.GetString("config"); path != "" {
		return path, nil
	}
	return config.DefaultConfigPath()
}

func (a *app) loadConfig() (*config.LoadResult, error) {
	path, err := a.configPath()
	if err != nil {
		return nil, err
	}
	res, err := config.LoadFromPath(path, config.LoadOptions{Strict: a.v.GetBool("strict")})
	if err != nil {
		return nil, err
	}
	if res.File == "" {
		a.logger.Debug("no config file, using defaults", "path", path)
	} else {
		a.logger.Debug("loaded config", "path", res.File)
	}
	return res, nil
}

// monitorsFor opens the monitor backend only when cfg needs one.
func (a *app) monitorsFor(cfg config.DisplayConfig) (monitor.Access, func(), error) {
	if cfg.Fullscreen == nil {
		return nil, func() {}, nil
	}
	backend, err := a.openBackend(a.v.GetString("display"), a.logger)
	if err != nil {
		return nil, nil, err
	}
	return backend, backend.Close, nil
}
