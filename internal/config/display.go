package config

import (
	"fmt"

	"github.com/1broseidon/displayconf/internal/monitor"
	"github.com/1broseidon/displayconf/internal/window"
	"gopkg.in/yaml.v3"
)

// DisplayConfig holds window-creation preferences.
//
// It is typically loaded from display.yaml; any key missing from the file
// takes the default listed in DefaultDisplayConfig.
type DisplayConfig struct {
	// Title is the name of the application window.
	Title string `yaml:"title"`
	// Fullscreen enables fullscreen on the given monitor. Nil means windowed.
	Fullscreen *monitor.Ident `yaml:"fullscreen"`
	// Dimensions is the initial window size in pixels.
	Dimensions *Dimensions `yaml:"dimensions"`
	// MinDimensions is the smallest size the window may be resized to.
	MinDimensions *Dimensions `yaml:"min_dimensions"`
	// MaxDimensions is the largest size the window may be resized to.
	MaxDimensions *Dimensions `yaml:"max_dimensions"`
	Visibility    bool        `yaml:"visibility"`
	// AlwaysOnTop keeps the window above other windows.
	AlwaysOnTop bool `yaml:"always_on_top"`
	// Decorations controls borders and the title bar.
	Decorations bool `yaml:"decorations"`
	// Maximized starts the window maximized.
	Maximized bool `yaml:"maximized"`
	// Multitouch enables touch input on platforms that have it.
	Multitouch bool `yaml:"multitouch"`
	Resizable  bool `yaml:"resizable"`
	// Transparent makes colors written with alpha below 1.0 show through.
	Transparent bool `yaml:"transparent"`
}

func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		Title:       defaultTitle(),
		Visibility:  defaultVisibility(),
		Decorations: defaultDecorations(),
		Resizable:   defaultResizable(),
	}
}

func defaultTitle() string {
	return "Amethyst game"
}

func defaultVisibility() bool {
	return true
}

func defaultDecorations() bool {
	return true
}

func defaultResizable() bool {
	return true
}

// ToBuilder maps the config onto a window builder.
//
// monitors is only consulted when Fullscreen is set. A fullscreen ident that
// does not resolve fails the whole conversion; there is no fallback monitor.
// The icon is always left unset.
func (c DisplayConfig) ToBuilder(monitors monitor.Access) (*window.Builder, error) {
	var fullscreen *monitor.Handle
	if c.Fullscreen != nil {
		if monitors == nil {
			return nil, &monitor.ResolutionError{Ident: *c.Fullscreen}
		}
		h, err := monitors.Resolve(*c.Fullscreen)
		if err != nil {
			return nil, err
		}
		fullscreen = &h
	}

	b := window.NewBuilder()
	b.Window = window.Attributes{
		Dimensions:    c.Dimensions.logical(),
		MaxDimensions: c.MaxDimensions.logical(),
		MinDimensions: c.MinDimensions.logical(),
		Title:         c.Title,
		Maximized:     c.Maximized,
		Visible:       c.Visibility,
		Transparent:   c.Transparent,
		Decorations:   c.Decorations,
		AlwaysOnTop:   c.AlwaysOnTop,
		WindowIcon:    nil,
		Fullscreen:    fullscreen,
		Resizable:     c.Resizable,
		Multitouch:    c.Multitouch,
	}
	return b, nil
}

// Dimensions is a width/height pair in pixels.
//
// In YAML it is written as a two-element sequence:
//
//	dimensions: [1280, 720]
//
// A mapping with width and height keys is accepted as well.
type Dimensions struct {
	Width  uint32
	Height uint32
}

func (d *Dimensions) logical() *window.LogicalSize {
	if d == nil {
		return nil
	}
	size := window.NewLogicalSize(d.Width, d.Height)
	return &size
}

func (d *Dimensions) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		if len(value.Content) != 2 {
			return fmt.Errorf("expected [width, height], got %d element(s)", len(value.Content))
		}
		var out Dimensions
		if err := value.Content[0].Decode(&out.Width); err != nil {
			return fmt.Errorf("width: %w", err)
		}
		if err := value.Content[1].Decode(&out.Height); err != nil {
			return fmt.Errorf("height: %w", err)
		}
		*d = out
		return nil

	case yaml.MappingNode:
		var out Dimensions
		var seenW, seenH bool
		for i := 0; i+1 < len(value.Content); i += 2 {
			key := value.Content[i].Value
			val := value.Content[i+1]
			switch key {
			case "width":
				if err := val.Decode(&out.Width); err != nil {
					return fmt.Errorf("width: %w", err)
				}
				seenW = true
			case "height":
				if err := val.Decode(&out.Height); err != nil {
					return fmt.Errorf("height: %w", err)
				}
				seenH = true
			default:
				return fmt.Errorf("unknown dimensions field %q", key)
			}
		}
		if !seenW || !seenH {
			return fmt.Errorf("dimensions mapping needs both width and height")
		}
		*d = out
		return nil

	default:
		return fmt.Errorf("expected [width, height], got %s", describeNode(value))
	}
}

func (d Dimensions) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []uint32{d.Width, d.Height} {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: fmt.Sprintf("%d", v),
		})
	}
	return node, nil
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}
