package monitor

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts any of:
//
//	fullscreen: 1
//	fullscreen: "HDMI-1"
//	fullscreen:
//	  index: 1
//	  name: HDMI-1
func (id *Ident) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		switch value.Tag {
		case "!!int":
			var n int
			if err := value.Decode(&n); err != nil {
				return fmt.Errorf("monitor index %q: %w", value.Value, err)
			}
			if n < 0 {
				return fmt.Errorf("monitor index must be >= 0, got %d", n)
			}
			*id = ByIndex(n)
			return nil
		case "!!str":
			if value.Value == "" {
				return fmt.Errorf("monitor name must not be empty")
			}
			*id = ByName(value.Value)
			return nil
		default:
			return fmt.Errorf("monitor ident must be an index, a name or a mapping, got %s", value.Tag)
		}

	case yaml.MappingNode:
		var out Ident
		for i := 0; i+1 < len(value.Content); i += 2 {
			key := value.Content[i].Value
			val := value.Content[i+1]
			switch key {
			case "index":
				var n int
				if err := val.Decode(&n); err != nil {
					return fmt.Errorf("index: %w", err)
				}
				if n < 0 {
					return fmt.Errorf("index: must be >= 0, got %d", n)
				}
				out.Index = &n
			case "name":
				var name string
				if err := val.Decode(&name); err != nil {
					return fmt.Errorf("name: %w", err)
				}
				if name == "" {
					return fmt.Errorf("name: must not be empty")
				}
				out.Name = name
			default:
				return fmt.Errorf("unknown monitor ident field %q", key)
			}
		}
		if out.Index == nil && out.Name == "" {
			return fmt.Errorf("monitor ident needs an index or a name")
		}
		*id = out
		return nil

	default:
		return fmt.Errorf("monitor ident must be an index, a name or a mapping")
	}
}

// MarshalYAML emits the shortest form that decodes back to id.
func (id Ident) MarshalYAML() (interface{}, error) {
	switch {
	case id.Index != nil && id.Name != "":
		return identMapping{Index: *id.Index, Name: id.Name}, nil
	case id.Index != nil:
		return *id.Index, nil
	default:
		return id.Name, nil
	}
}

// MarshalJSON mirrors MarshalYAML so tool output matches config files.
func (id Ident) MarshalJSON() ([]byte, error) {
	v, err := id.MarshalYAML()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

type identMapping struct {
	Index int    `yaml:"index" json:"index"`
	Name  string `yaml:"name" json:"name"`
}
