package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/1broseidon/displayconf/internal/config"
	"github.com/1broseidon/displayconf/internal/monitor"
	"github.com/1broseidon/displayconf/internal/window"
)

type phase int

const (
	phaseForm    phase = iota
	phasePreview       // showing diff and builder, awaiting confirm
	phaseResult        // showing outcome message
)

// editor is the root bubbletea model for the config editor.
type editor struct {
	path     string
	original config.DisplayConfig
	current  config.DisplayConfig
	monitors monitor.List
	save     func(path string, cfg config.DisplayConfig) error

	phase  phase
	form   *huh.Form
	values *formValues

	// Preview state
	diff         []diffLine
	builder      *window.Builder
	builderErr   error
	scrollOffset int

	saved bool
	err   error

	width  int
	height int
}

func newEditor(opts Options) (*editor, error) {
	e := &editor{
		path:     opts.Path,
		original: opts.Config,
		current:  opts.Config,
		monitors: opts.Monitors,
		save:     config.Save,
	}
	if err := e.startEditing(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *editor) startEditing() error {
	values, err := valuesFromConfig(e.current)
	if err != nil {
		return err
	}
	form, err := newForm(values, e.monitors, e.width)
	if err != nil {
		return err
	}
	e.values = values
	e.form = form
	e.phase = phaseForm
	return nil
}

// showPreview applies the submitted form and prepares the diff and the
// builder it would produce.
func (e *editor) showPreview() error {
	cfg, err := e.values.apply(e.current)
	if err != nil {
		return err
	}
	diff, err := configDiff(e.original, cfg)
	if err != nil {
		return err
	}

	e.current = cfg
	e.diff = diff
	e.scrollOffset = 0
	e.builder, e.builderErr = cfg.ToBuilder(e.monitors)
	e.phase = phasePreview
	return nil
}

// Init implements tea.Model.
func (e *editor) Init() tea.Cmd {
	if e.form == nil {
		return nil
	}
	return e.form.Init()
}

// Update implements tea.Model.
func (e *editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return e, tea.Quit
		}
	case tea.WindowSizeMsg:
		e.width = msg.Width
		e.height = msg.Height
		if e.form != nil {
			e.form = e.form.WithWidth(max(e.width-4, 40))
		}
	}

	switch e.phase {
	case phaseForm:
		return e.updateForm(msg)
	case phasePreview:
		return e.updatePreview(msg)
	case phaseResult:
		if _, ok := msg.(tea.KeyMsg); ok {
			return e, tea.Quit
		}
	}
	return e, nil
}

func (e *editor) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		return e, tea.Quit
	}

	form, cmd := e.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		e.form = f
	}

	switch e.form.State {
	case huh.StateCompleted:
		if err := e.showPreview(); err != nil {
			e.err = err
			e.phase = phaseResult
		}
		return e, nil
	case huh.StateAborted:
		return e, tea.Quit
	}
	return e, cmd
}

func (e *editor) updatePreview(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return e, nil
	}
	switch km.String() {
	case "esc", "q", "n":
		return e, tea.Quit
	case "e":
		if err := e.startEditing(); err != nil {
			e.err = err
			e.phase = phaseResult
			return e, nil
		}
		return e, e.form.Init()
	case "enter", "y":
		if len(e.diff) == 0 {
			e.err = fmt.Errorf("no changes to save")
		} else {
			e.err = e.save(e.path, e.current)
			e.saved = e.err == nil
		}
		e.phase = phaseResult
	case "up", "k":
		if e.scrollOffset > 0 {
			e.scrollOffset--
		}
	case "down", "j":
		e.scrollOffset++
	}
	return e, nil
}

// View implements tea.Model.
func (e *editor) View() string {
	switch e.phase {
	case phasePreview:
		return e.viewPreview()
	case phaseResult:
		return e.viewResult()
	default:
		return e.viewForm()
	}
}
