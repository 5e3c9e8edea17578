// Package yamlutil holds YAML rendering helpers shared by the CLI and the
// MCP server.
package yamlutil

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Inline renders v on a single line in flow style, the way it would be
// written after a key in a config file. Nil renders as null.
func Inline(v any) (string, error) {
	if v == nil {
		return "null", nil
	}
	node := &yaml.Node{}
	if err := node.Encode(v); err != nil {
		return "", err
	}
	setFlow(node)
	data, err := yaml.Marshal(node)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func setFlow(n *yaml.Node) {
	if n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode {
		n.Style = yaml.FlowStyle
	}
	for _, c := range n.Content {
		setFlow(c)
	}
}
