package config

import (
	"bytes"
	"fmt"

	"github.com/1broseidon/displayconf/internal/monitor"
	"gopkg.in/yaml.v3"
)

var displayConfigKeys = []string{
	"title",
	"fullscreen",
	"dimensions",
	"min_dimensions",
	"max_dimensions",
	"visibility",
	"always_on_top",
	"decorations",
	"maximized",
	"multitouch",
	"resizable",
	"transparent",
}

// Decode parses a YAML document into a DisplayConfig. An empty document
// yields DefaultDisplayConfig. Unknown keys are ignored.
func Decode(data []byte) (DisplayConfig, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return DisplayConfig{}, &SchemaError{Err: err}
	}
	return decodeDocument(&doc)
}

func decodeDocument(doc *yaml.Node) (DisplayConfig, error) {
	cfg := DefaultDisplayConfig()
	if doc.Kind == 0 || (doc.Kind == yaml.DocumentNode && len(doc.Content) == 0) {
		return cfg, nil
	}
	if err := cfg.UnmarshalYAML(doc); err != nil {
		return DisplayConfig{}, err
	}
	return cfg, nil
}

// Encode renders c as YAML, writing every key.
func Encode(c DisplayConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("failed to marshal display config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal display config: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalYAML decodes each key on its own and calls the key's default
// provider when it is absent, so a partial document keeps the documented
// defaults for everything it leaves out.
func (c *DisplayConfig) UnmarshalYAML(value *yaml.Node) error {
	root, err := mappingRoot(value)
	if err != nil {
		return err
	}
	fields, err := mappingFields(root)
	if err != nil {
		return err
	}

	var out DisplayConfig
	if out.Title, err = valueField(fields, "title", defaultTitle); err != nil {
		return err
	}
	if out.Fullscreen, err = optionalField[monitor.Ident](fields, "fullscreen"); err != nil {
		return err
	}
	if out.Dimensions, err = optionalField[Dimensions](fields, "dimensions"); err != nil {
		return err
	}
	if out.MinDimensions, err = optionalField[Dimensions](fields, "min_dimensions"); err != nil {
		return err
	}
	if out.MaxDimensions, err = optionalField[Dimensions](fields, "max_dimensions"); err != nil {
		return err
	}
	if out.Visibility, err = valueField(fields, "visibility", defaultVisibility); err != nil {
		return err
	}
	if out.AlwaysOnTop, err = valueField(fields, "always_on_top", zero[bool]); err != nil {
		return err
	}
	if out.Decorations, err = valueField(fields, "decorations", defaultDecorations); err != nil {
		return err
	}
	if out.Maximized, err = valueField(fields, "maximized", zero[bool]); err != nil {
		return err
	}
	if out.Multitouch, err = valueField(fields, "multitouch", zero[bool]); err != nil {
		return err
	}
	if out.Resizable, err = valueField(fields, "resizable", defaultResizable); err != nil {
		return err
	}
	if out.Transparent, err = valueField(fields, "transparent", zero[bool]); err != nil {
		return err
	}

	*c = out
	return nil
}

// mappingRoot unwraps documents and aliases. A null root decodes as an
// empty mapping.
func mappingRoot(value *yaml.Node) (*yaml.Node, error) {
	node := value
	for node != nil {
		switch node.Kind {
		case yaml.DocumentNode:
			if len(node.Content) == 0 {
				return &yaml.Node{Kind: yaml.MappingNode}, nil
			}
			node = node.Content[0]
		case yaml.AliasNode:
			node = node.Alias
		case yaml.MappingNode:
			return node, nil
		default:
			if isNull(node) {
				return &yaml.Node{Kind: yaml.MappingNode}, nil
			}
			return nil, schemaErrorAt("", node, fmt.Errorf("display config must be a mapping, got %s", describeNode(node)))
		}
	}
	return &yaml.Node{Kind: yaml.MappingNode}, nil
}

// mappingFields indexes a mapping by key. A key may appear only once.
func mappingFields(node *yaml.Node) (map[string]*yaml.Node, error) {
	fields := make(map[string]*yaml.Node, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if first, ok := fields[key.Value]; ok {
			return nil, schemaErrorAt(key.Value, key, fmt.Errorf("duplicate field, first defined at line %d", first.Line))
		}
		fields[key.Value] = node.Content[i+1]
	}
	return fields, nil
}

func valueField[T any](fields map[string]*yaml.Node, key string, def func() T) (T, error) {
	node, ok := fields[key]
	if !ok {
		return def(), nil
	}
	var v T
	if isNull(node) {
		return v, schemaErrorAt(key, node, fmt.Errorf("must not be null"))
	}
	if err := node.Decode(&v); err != nil {
		return v, schemaErrorAt(key, node, err)
	}
	return v, nil
}

func optionalField[T any](fields map[string]*yaml.Node, key string) (*T, error) {
	node, ok := fields[key]
	if !ok || isNull(node) {
		return nil, nil
	}
	v := new(T)
	if err := node.Decode(v); err != nil {
		return nil, schemaErrorAt(key, node, err)
	}
	return v, nil
}

func zero[T any]() T {
	var v T
	return v
}

func isNull(node *yaml.Node) bool {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node != nil && node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}

// unknownKeys returns the key nodes of root that DisplayConfig does not
// define, in document order.
func unknownKeys(root *yaml.Node) []*yaml.Node {
	known := make(map[string]struct{}, len(displayConfigKeys))
	for _, k := range displayConfigKeys {
		known[k] = struct{}{}
	}
	var out []*yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		if _, ok := known[root.Content[i].Value]; !ok {
			out = append(out, root.Content[i])
		}
	}
	return out
}
