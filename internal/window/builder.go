package window

import (
	"fmt"

	"github.com/1broseidon/displayconf/internal/monitor"
)

// DefaultTitle is the title NewBuilder starts with.
const DefaultTitle = "winit window"

// LogicalSize is a size in logical (DPI-independent) pixels.
type LogicalSize struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// NewLogicalSize converts a whole-pixel pair.
func NewLogicalSize(width, height uint32) LogicalSize {
	return LogicalSize{Width: float64(width), Height: float64(height)}
}

// Attributes is the full set of window-creation parameters.
type Attributes struct {
	Dimensions    *LogicalSize    `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
	MaxDimensions *LogicalSize    `json:"max_dimensions,omitempty" yaml:"max_dimensions,omitempty"`
	MinDimensions *LogicalSize    `json:"min_dimensions,omitempty" yaml:"min_dimensions,omitempty"`
	Title         string          `json:"title" yaml:"title"`
	Maximized     bool            `json:"maximized" yaml:"maximized"`
	Visible       bool            `json:"visible" yaml:"visible"`
	Transparent   bool            `json:"transparent" yaml:"transparent"`
	Decorations   bool            `json:"decorations" yaml:"decorations"`
	AlwaysOnTop   bool            `json:"always_on_top" yaml:"always_on_top"`
	WindowIcon    *Icon           `json:"window_icon,omitempty" yaml:"window_icon,omitempty"`
	Fullscreen    *monitor.Handle `json:"fullscreen,omitempty" yaml:"fullscreen,omitempty"`
	Resizable     bool            `json:"resizable" yaml:"resizable"`
	Multitouch    bool            `json:"multitouch" yaml:"multitouch"`
}

// DefaultAttributes returns the attributes of an unconfigured window.
func DefaultAttributes() Attributes {
	return Attributes{
		Title:       DefaultTitle,
		Visible:     true,
		Decorations: true,
		Resizable:   true,
	}
}

// Builder carries Attributes to the window-creation step.
type Builder struct {
	Window Attributes `json:"window" yaml:"window"`
}

// NewBuilder returns a builder populated with DefaultAttributes.
func NewBuilder() *Builder {
	return &Builder{Window: DefaultAttributes()}
}

// WithWindowIcon sets the icon. A nil icon clears it.
func (b *Builder) WithWindowIcon(icon *Icon) *Builder {
	b.Window.WindowIcon = icon
	return b
}

// WithTitle sets the window title.
func (b *Builder) WithTitle(title string) *Builder {
	b.Window.Title = title
	return b
}

// WithFullscreen targets a monitor, or disables fullscreen when nil.
func (b *Builder) WithFullscreen(h *monitor.Handle) *Builder {
	b.Window.Fullscreen = h
	return b
}

// Icon is an RGBA8 window icon.
type Icon struct {
	RGBA   []byte `json:"-" yaml:"-"`
	Width  uint32 `json:"width" yaml:"width"`
	Height uint32 `json:"height" yaml:"height"`
}

// BadIconError reports a pixel buffer that does not match its dimensions.
type BadIconError struct {
	Width, Height uint32
	Len           int
}

func (e *BadIconError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Len%4 != 0 {
		return fmt.Sprintf("icon buffer length %d is not a multiple of 4", e.Len)
	}
	return fmt.Sprintf("icon buffer holds %d pixels, %dx%d needs %d", e.Len/4, e.Width, e.Height, uint64(e.Width)*uint64(e.Height))
}

// NewIconFromRGBA wraps rgba, which must hold exactly width*height*4 bytes.
func NewIconFromRGBA(rgba []byte, width, height uint32) (*Icon, error) {
	if len(rgba)%4 != 0 || uint64(len(rgba)/4) != uint64(width)*uint64(height) {
		return nil, &BadIconError{Width: width, Height: height, Len: len(rgba)}
	}
	return &Icon{RGBA: rgba, Width: width, Height: height}, nil
}
