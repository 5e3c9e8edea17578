package config

import (
	"fmt"
	"strings"
)

// Explain returns the effective value of a top-level key and its source.
//
// Supported paths are the DisplayConfig keys:
//
//	title
//	fullscreen
//	dimensions
//	min_dimensions
//	max_dimensions
//	visibility
//	always_on_top
//	decorations
//	maximized
//	multitouch
//	resizable
//	transparent
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}

	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault, Name: "defaults"}, nil
}

func lookupValue(cfg DisplayConfig, path string) (any, error) {
	switch path {
	case "title":
		return cfg.Title, nil
	case "fullscreen":
		if cfg.Fullscreen == nil {
			return nil, nil
		}
		return *cfg.Fullscreen, nil
	case "dimensions":
		return dimensionsValue(cfg.Dimensions), nil
	case "min_dimensions":
		return dimensionsValue(cfg.MinDimensions), nil
	case "max_dimensions":
		return dimensionsValue(cfg.MaxDimensions), nil
	case "visibility":
		return cfg.Visibility, nil
	case "always_on_top":
		return cfg.AlwaysOnTop, nil
	case "decorations":
		return cfg.Decorations, nil
	case "maximized":
		return cfg.Maximized, nil
	case "multitouch":
		return cfg.Multitouch, nil
	case "resizable":
		return cfg.Resizable, nil
	case "transparent":
		return cfg.Transparent, nil
	default:
		return nil, fmt.Errorf("unknown path: %s", path)
	}
}

func dimensionsValue(d *Dimensions) any {
	if d == nil {
		return nil
	}
	return *d
}
