package modfile

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"def-modifier/internal/common"
	"def-modifier/internal/diagnostic"
	"def-modifier/modifier"
)

// Format is a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat parses a format name as given on the command line.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q, expected yaml or json", s)
	}
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot tell the format of %s without an extension", path)
	}

	return ParseFormat(ext)
}

// File is a named list of modifier definitions.
type File struct {
	Name      string                `yaml:"name,omitempty" json:"name,omitempty"`
	Modifiers []modifier.Definition `yaml:"modifiers" json:"modifiers"`
}

// fileObject has the fields of File without its methods.
type fileObject File

// UnmarshalYAML implements custom YAML unmarshaling for File.
// Accepts either a list of definitions or an object with name and modifiers.
func (f *File) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var defs []modifier.Definition

		if err := node.Decode(&defs); err != nil {
			return err
		}

		*f = File{Modifiers: defs}

		return nil

	case yaml.MappingNode:
		var obj fileObject

		if err := node.Decode(&obj); err != nil {
			return err
		}

		*f = File(obj)

		return nil

	default:
		return fmt.Errorf("expected list or mapping of modifiers, got %v", node.Kind)
	}
}

// UnmarshalJSON implements custom JSON unmarshaling for File.
// Accepts either an array of definitions or an object with name and modifiers.
func (f *File) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("empty mod file")
	}

	switch data[0] {
	case '[':
		var defs []modifier.Definition

		if err := json.Unmarshal(data, &defs); err != nil {
			return err
		}

		*f = File{Modifiers: defs}

		return nil

	case '{':
		var obj fileObject

		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}

		*f = File(obj)

		return nil

	default:
		return fmt.Errorf("expected array or object of modifiers, got %.20s", data)
	}
}

// IsEmpty returns true if the file has no definitions.
func (f *File) IsEmpty() bool {
	return common.IsEmpty(f.Modifiers)
}

// Apply applies every definition of the file against repo, keeping going past
// failures.
func (f *File) Apply(repo modifier.Repository, opts ...modifier.Option) *diagnostic.Diagnostics {
	return modifier.NewModFile(f.Name, repo, opts...).Apply(f.Modifiers)
}
