package config

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type SourceKind string

const (
	SourceDefault SourceKind = "default"
	SourceFile    SourceKind = "file"
)

// Source records where a value came from.
type Source struct {
	Kind   SourceKind
	Name   string // for default
	File   string
	Line   int
	Column int
}

func (s Source) String() string {
	switch {
	case s.Kind == SourceFile && s.File != "":
		return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
	case s.Kind == SourceDefault:
		return "default"
	case s.Line > 0:
		return fmt.Sprintf("line %d, column %d", s.Line, s.Column)
	default:
		return string(s.Kind)
	}
}

// SchemaError reports a value whose shape does not match its field.
type SchemaError struct {
	Path   string
	Source Source
	Err    error
}

func (e *SchemaError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Source.Line > 0 && e.Path != "" {
		return fmt.Sprintf("line %d, column %d: %s: %v", e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

func schemaErrorAt(path string, node *yaml.Node, err error) *SchemaError {
	var serr *SchemaError
	if errors.As(err, &serr) {
		if serr.Path == "" {
			serr.Path = path
		} else if path != "" {
			serr.Path = path + "." + serr.Path
		}
		return serr
	}
	return &SchemaError{
		Path: path,
		Source: Source{
			Kind:   SourceFile,
			Line:   node.Line,
			Column: node.Column,
		},
		Err: cleanYAMLError(err),
	}
}

// cleanYAMLError flattens yaml.TypeError so messages stay on one line.
func cleanYAMLError(err error) error {
	terr, ok := err.(*yaml.TypeError)
	if !ok || len(terr.Errors) == 0 {
		return err
	}
	msgs := make([]string, 0, len(terr.Errors))
	for _, m := range terr.Errors {
		if idx := strings.Index(m, ": "); idx >= 0 && strings.HasPrefix(m, "line ") {
			m = m[idx+2:]
		}
		msgs = append(msgs, m)
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describeNode(n *yaml.Node) string {
	switch n.Kind {
	case yaml.ScalarNode:
		return fmt.Sprintf("%s %q", strings.TrimPrefix(n.Tag, "!!"), n.Value)
	case yaml.MappingNode:
		return "a mapping"
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.AliasNode:
		return "an alias"
	default:
		return "an empty document"
	}
}
