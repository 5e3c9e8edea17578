package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/1broseidon/displayconf/internal/config"
	"github.com/1broseidon/displayconf/internal/monitor"
	"github.com/1broseidon/displayconf/internal/yamlutil"
)

// formValues holds what the huh form binds to. Text fields are strings for
// huh and converted on submit.
type formValues struct {
	Title         string
	Fullscreen    string // inline YAML ident, "" for windowed
	Dimensions    string
	MinDimensions string
	MaxDimensions string

	Visibility  bool
	AlwaysOnTop bool
	Decorations bool
	Maximized   bool
	Multitouch  bool
	Resizable   bool
	Transparent bool
}

func valuesFromConfig(cfg config.DisplayConfig) (*formValues, error) {
	v := &formValues{
		Title:         cfg.Title,
		Dimensions:    dimensionsText(cfg.Dimensions),
		MinDimensions: dimensionsText(cfg.MinDimensions),
		MaxDimensions: dimensionsText(cfg.MaxDimensions),
		Visibility:    cfg.Visibility,
		AlwaysOnTop:   cfg.AlwaysOnTop,
		Decorations:   cfg.Decorations,
		Maximized:     cfg.Maximized,
		Multitouch:    cfg.Multitouch,
		Resizable:     cfg.Resizable,
		Transparent:   cfg.Transparent,
	}
	if cfg.Fullscreen != nil {
		ident, err := yamlutil.Inline(*cfg.Fullscreen)
		if err != nil {
			return nil, err
		}
		v.Fullscreen = ident
	}
	return v, nil
}

// apply returns base with the form values written over it.
func (v *formValues) apply(base config.DisplayConfig) (config.DisplayConfig, error) {
	out := base
	out.Title = v.Title

	fullscreen, err := parseFullscreen(v.Fullscreen)
	if err != nil {
		return base, fmt.Errorf("fullscreen: %w", err)
	}
	out.Fullscreen = fullscreen

	if out.Dimensions, err = parseDimensions(v.Dimensions); err != nil {
		return base, fmt.Errorf("dimensions: %w", err)
	}
	if out.MinDimensions, err = parseDimensions(v.MinDimensions); err != nil {
		return base, fmt.Errorf("min_dimensions: %w", err)
	}
	if out.MaxDimensions, err = parseDimensions(v.MaxDimensions); err != nil {
		return base, fmt.Errorf("max_dimensions: %w", err)
	}

	out.Visibility = v.Visibility
	out.AlwaysOnTop = v.AlwaysOnTop
	out.Decorations = v.Decorations
	out.Maximized = v.Maximized
	out.Multitouch = v.Multitouch
	out.Resizable = v.Resizable
	out.Transparent = v.Transparent
	return out, nil
}

func dimensionsText(d *config.Dimensions) string {
	if d == nil {
		return ""
	}
	return d.String()
}

// parseDimensions reads "WIDTHxHEIGHT". Empty means unset.
func parseDimensions(s string) (*config.Dimensions, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return nil, fmt.Errorf("expected WIDTHxHEIGHT, got %q", s)
	}
	width, err := strconv.ParseUint(strings.TrimSpace(w), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("width %q: not a pixel count", w)
	}
	height, err := strconv.ParseUint(strings.TrimSpace(h), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("height %q: not a pixel count", h)
	}
	return &config.Dimensions{Width: uint32(width), Height: uint32(height)}, nil
}

func validateDimensions(s string) error {
	_, err := parseDimensions(s)
	return err
}

func parseFullscreen(s string) (*monitor.Ident, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var id monitor.Ident
	if err := yaml.Unmarshal([]byte(s), &id); err != nil {
		return nil, err
	}
	return &id, nil
}

// fullscreenOptions lists windowed mode and every attached monitor. A
// configured ident that matches none of them is kept as its own option so
// opening the editor never rewrites it.
func fullscreenOptions(monitors monitor.List, current string) ([]huh.Option[string], error) {
	opts := []huh.Option[string]{huh.NewOption("Windowed", "")}
	seen := current == ""
	for _, h := range monitors {
		ident, err := yamlutil.Inline(monitor.IdentOf(h))
		if err != nil {
			return nil, err
		}
		label := fmt.Sprintf("%s  %dx%d+%d+%d", h.Name, h.Width, h.Height, h.X, h.Y)
		if h.Primary {
			label += "  (primary)"
		}
		opts = append(opts, huh.NewOption(label, ident))
		if ident == current {
			seen = true
		}
	}
	if !seen {
		opts = append(opts, huh.NewOption(current+"  (configured)", current))
	}
	return opts, nil
}

func newForm(v *formValues, monitors monitor.List, width int) (*huh.Form, error) {
	fullscreenOpts, err := fullscreenOptions(monitors, v.Fullscreen)
	if err != nil {
		return nil, err
	}

	w := width - 4
	if w < 40 {
		w = 40
	}

	confirm := func(key, title, desc string, value *bool) huh.Field {
		return huh.NewConfirm().
			Key(key).
			Title(title).
			Description(desc).
			Affirmative("Yes").
			Negative("No").
			Value(value)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Title").
				Description("Name of the application window").
				Value(&v.Title),

			huh.NewSelect[string]().
				Key("fullscreen").
				Title("Fullscreen").
				Description("Monitor to go fullscreen on").
				Options(fullscreenOpts...).
				Value(&v.Fullscreen),

			huh.NewInput().
				Key("dimensions").
				Title("Dimensions").
				Description("Initial size as WIDTHxHEIGHT, empty to let the platform pick").
				Placeholder("1280x720").
				Validate(validateDimensions).
				Value(&v.Dimensions),

			huh.NewInput().
				Key("min_dimensions").
				Title("Minimum Dimensions").
				Description("WIDTHxHEIGHT, empty for no limit").
				Validate(validateDimensions).
				Value(&v.MinDimensions),

			huh.NewInput().
				Key("max_dimensions").
				Title("Maximum Dimensions").
				Description("WIDTHxHEIGHT, empty for no limit").
				Validate(validateDimensions).
				Value(&v.MaxDimensions),
		),
		huh.NewGroup(
			confirm("visibility", "Visible", "Show the window once created", &v.Visibility),
			confirm("always_on_top", "Always On Top", "Keep above other windows", &v.AlwaysOnTop),
			confirm("decorations", "Decorations", "Draw borders and a title bar", &v.Decorations),
			confirm("maximized", "Maximized", "Start maximized", &v.Maximized),
			confirm("multitouch", "Multitouch", "Enable touch input", &v.Multitouch),
			confirm("resizable", "Resizable", "Let the user resize the window", &v.Resizable),
			confirm("transparent", "Transparent", "Honor alpha in the window background", &v.Transparent),
		),
	).WithWidth(w).WithShowHelp(true).WithShowErrors(true)

	return form, nil
}
