/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/strata/fs"
)

// DocumentParser parses JSON, JSON-with-comments and YAML documents.
type DocumentParser struct{}

// NewDocumentParser creates a new document parser.
func NewDocumentParser() *DocumentParser {
	return &DocumentParser{}
}

// ParseFile reads and parses a document file.
func (p *DocumentParser) ParseFile(filesystem fs.FileSystem, path string) (map[string]any, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := p.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse parses JSON or YAML data and returns the root object.
// Numbers are normalized to float64 and YAML timestamps to ISO dates,
// so downstream code sees the same shapes regardless of source format.
func (p *DocumentParser) Parse(data []byte) (map[string]any, error) {
	var raw any

	// Detect format: JSON typically starts with '{' or whitespace then '{'
	// YAML uses indentation-based structure
	if isLikelyJSON(data) {
		// JSON path: strip comments and trailing commas
		cleanJSON := jsonc.ToJSON(data)
		if err := json.Unmarshal(cleanJSON, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	root, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document root must be an object")
	}
	return root, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{', '[':
			return true
		default:
			return false
		}
	}
	return false
}

// normalize recursively converts YAML-specific shapes to their JSON equivalents.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalize(val)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, val := range x {
			result[fmt.Sprintf("%v", k)] = normalize(val)
		}
		return result
	case []any:
		for i, val := range x {
			x[i] = normalize(val)
		}
		return x
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case uint64:
		return float64(x)
	case float32:
		return float64(x)
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format(time.DateOnly)
		}
		return x.Format(time.RFC3339)
	default:
		return v
	}
}
