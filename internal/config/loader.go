package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	configDirName  = "displayconf"
	configFileName = "display.yaml"
)

// LoadOptions controls how a config file is read.
type LoadOptions struct {
	// Strict rejects keys DisplayConfig does not define.
	Strict bool
}

type LoadResult struct {
	Config  DisplayConfig
	File    string            // empty when no file existed
	Sources map[string]Source // YAML key -> position in File
}

func DefaultConfigPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, configDirName, configFileName), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", configDirName, configFileName), nil
}

// Load reads the config from the standard location.
func Load(opts LoadOptions) (*LoadResult, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path, opts)
}

// LoadFromPath reads the config at path. A missing file yields defaults.
func LoadFromPath(path string, opts LoadOptions) (*LoadResult, error) {
	exists, err := pathExists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return &LoadResult{
			Config:  DefaultDisplayConfig(),
			Sources: map[string]Source{},
		}, nil
	}

	canon, err := canonicalPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(canon)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read: %w", canon, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: failed to parse yaml: %w", canon, err)
	}

	cfg, err := decodeDocument(&doc)
	if err != nil {
		return nil, attachFile(err, canon)
	}

	if opts.Strict {
		if root, err := mappingRoot(&doc); err == nil {
			if keys := unknownKeys(root); len(keys) > 0 {
				k := keys[0]
				return nil, &SchemaError{
					Path:   k.Value,
					Source: Source{Kind: SourceFile, File: canon, Line: k.Line, Column: k.Column},
					Err:    fmt.Errorf("field %s not found in display config", k.Value),
				}
			}
		}
	}

	return &LoadResult{
		Config:  cfg,
		File:    canon,
		Sources: collectSources(&doc, canon),
	}, nil
}

// Save writes c to path, creating parent directories.
//
// Note: this marshals the config and will not preserve comments from an
// existing file.
func Save(path string, c DisplayConfig) error {
	data, err := Encode(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func attachFile(err error, file string) error {
	serr, ok := err.(*SchemaError)
	if !ok || serr == nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	serr.Source.File = file
	serr.Source.Kind = SourceFile
	return serr
}

func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		// Best-effort; still use abs.
		return abs, nil
	}
	return real, nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func collectSources(doc *yaml.Node, file string) map[string]Source {
	out := make(map[string]Source)
	root, err := mappingRoot(doc)
	if err != nil {
		return out
	}
	collectSourcesRec(root, file, "", out)
	return out
}

func collectSourcesRec(node *yaml.Node, file string, prefix string, out map[string]Source) {
	if node == nil || node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		path := keyNode.Value
		if prefix != "" {
			path = prefix + "." + path
		}
		out[path] = Source{
			Kind:   SourceFile,
			File:   file,
			Line:   valNode.Line,
			Column: valNode.Column,
		}
		collectSourcesRec(valNode, file, path, out)
	}
}
