// Package loader reads schema and instance documents from files or streams.
// JSON and YAML are supported; the format is chosen by file extension, with
// JSON as the fallback for unknown extensions and streams.
package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// LoadSchema reads a schema document from path. The document must be a JSON
// object at the top level.
func LoadSchema(path string) (map[string]any, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	schema, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: schema must be an object, got %T", path, doc)
	}
	return schema, nil
}

// LoadDocument reads any JSON or YAML document from path.
func LoadDocument(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := Parse(raw, isYAML(path))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// ReadDocument reads a document from r, parsed as JSON.
func ReadDocument(r io.Reader) (any, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stream: %w", err)
	}
	return Parse(raw, false)
}

// Parse decodes raw into plain Go values (map[string]any, []any, float64,
// string, bool, nil). YAML documents are normalized so map keys are always
// strings.
func Parse(raw []byte, asYAML bool) (any, error) {
	var doc any
	if asYAML {
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		return normalizeYAML(doc), nil
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// normalizeYAML rewrites YAML decoding artifacts into the same shapes
// encoding/json produces, so downstream code sees a single representation.
func normalizeYAML(doc any) any {
	switch v := doc.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, value := range v {
			out[key] = normalizeYAML(value)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, value := range v {
			out[fmt.Sprint(key)] = normalizeYAML(value)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeYAML(item)
		}
		return out
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	default:
		return v
	}
}
