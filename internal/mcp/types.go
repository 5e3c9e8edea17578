package mcp

import (
	"github.com/1broseidon/displayconf/internal/monitor"
	"github.com/1broseidon/displayconf/internal/window"
)

// ListMonitorsInput is the input for the list_monitors tool.
type ListMonitorsInput struct{}

// MonitorInfo describes one attached monitor.
type MonitorInfo struct {
	Monitor monitor.Handle `json:"monitor"`
	Ident   string         `json:"ident" jsonschema:"Value to put under fullscreen in a display config"`
}

// ListMonitorsOutput is the output for the list_monitors tool.
type ListMonitorsOutput struct {
	Monitors []MonitorInfo `json:"monitors"`
}

// BuildWindowInput is the input for the build_window tool.
type BuildWindowInput struct {
	ConfigYAML string `json:"config_yaml,omitempty" jsonschema:"Display config document in YAML. Empty means all defaults."`
}

// BuildWindowOutput is the output for the build_window tool.
type BuildWindowOutput struct {
	Window window.Attributes `json:"window"`
}

// DefaultConfigInput is the input for the default_config tool.
type DefaultConfigInput struct{}

// DefaultConfigOutput is the output for the default_config tool.
type DefaultConfigOutput struct {
	YAML string `json:"yaml"`
}
