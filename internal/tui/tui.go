// Package tui is an interactive editor for the display config.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/1broseidon/displayconf/internal/config"
	"github.com/1broseidon/displayconf/internal/monitor"
)

// Options configures an editor session.
type Options struct {
	// Path is where the config is saved.
	Path string
	// Config is the starting point, usually the loaded config.
	Config config.DisplayConfig
	// Monitors fills the fullscreen choices and resolves the preview. May be
	// empty when no display server is reachable.
	Monitors monitor.List

	Input  io.Reader
	Output io.Writer
}

// Result reports how a session ended.
type Result struct {
	Saved  bool
	Config config.DisplayConfig
}

// Run starts the editor and blocks until the user quits or ctx is done.
func Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if !isTerminal(opts.Input) || !isTerminal(opts.Output) {
		return Result{}, fmt.Errorf("edit requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	e, err := newEditor(opts)
	if err != nil {
		return Result{}, err
	}

	p := tea.NewProgram(
		e,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(opts.Input),
		tea.WithOutput(opts.Output),
	)
	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	ed, ok := final.(*editor)
	if !ok {
		return Result{}, fmt.Errorf("unexpected model %T", final)
	}
	if ed.saved {
		return Result{Saved: true, Config: ed.current}, nil
	}
	return Result{Config: ed.original}, nil
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
