package modfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"def-modifier/store"
)

const filePerm = 0o644

// LoadFile loads and parses a mod file from the given path.
func LoadFile(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mod file %s: %w", path, err)
	}

	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if f.Name == "" {
		base := filepath.Base(path)
		f.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return f, nil
}

// Parse parses mod file data in the given format.
func Parse(data []byte, format Format) (*File, error) {
	var f File

	if err := unmarshal(data, format, &f); err != nil {
		return nil, fmt.Errorf("failed to parse mod file %s: %w", format, err)
	}

	return &f, nil
}

// Marshal serializes v in the given format.
func Marshal(v any, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(v)
	case FormatJSON:
		return json.MarshalIndent(v, "", "  ")
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// WriteFile writes v to path in the format implied by its extension.
func WriteFile(v any, path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	data, err := Marshal(v, format)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", format, err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// LoadDefs reads a defs document and registers every top-level entry in a
// new store.Memory under its key.
func LoadDefs(path string) (*store.Memory, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read defs %s: %w", path, err)
	}

	return ParseDefs(data, format)
}

// ParseDefs parses a defs document into a new store.Memory. Every entry must
// be a mapping, since a path always starts with a member name.
func ParseDefs(data []byte, format Format) (*store.Memory, error) {
	doc, err := decodeDefs(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse defs %s: %w", format, err)
	}

	ids := make([]string, 0, len(doc))
	for id := range doc {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	repo := store.NewMemory()

	for _, id := range ids {
		def, ok := doc[id].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("definition %q is %T, expected a mapping", id, doc[id])
		}

		if err := repo.Add(id, def); err != nil {
			return nil, err
		}
	}

	return repo, nil
}

// decodeDefs decodes a defs document. JSON numbers keep their literal so that
// integers load as int and the rest as float64, the way yaml.v3 types them.
func decodeDefs(data []byte, format Format) (map[string]any, error) {
	var doc map[string]any

	if format != FormatJSON {
		err := unmarshal(data, format, &doc)
		return doc, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}

	for k, v := range doc {
		doc[k] = numbersToScalars(v)
	}

	return doc, nil
}

func numbersToScalars(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, e := range v {
			v[k] = numbersToScalars(e)
		}

		return v
	case []any:
		for i, e := range v {
			v[i] = numbersToScalars(e)
		}

		return v
	case json.Number:
		if i, err := strconv.ParseInt(v.String(), 10, 0); err == nil {
			return int(i)
		}

		if f, err := v.Float64(); err == nil {
			return f
		}

		return v.String()
	default:
		return v
	}
}

func unmarshal(data []byte, format Format, v any) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	case FormatJSON:
		return json.Unmarshal(data, v)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
