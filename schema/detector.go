/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DetectionConfig provides configuration for document kind detection.
type DetectionConfig struct {
	// DefaultKind is used when no other detection method succeeds.
	DefaultKind Kind
}

// DetectKind detects the document kind from file content.
// Priority order:
// 1. $schema field in file root
// 2. Duck typing (fields unique to each kind)
// 3. Config default kind
func DetectKind(content []byte, config *DetectionConfig) (Kind, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return Unknown, fmt.Errorf("invalid YAML/JSON: %w", err)
	}
	return DetectKindOf(data, config)
}

// DetectKindOf detects the kind of already-decoded document data.
func DetectKindOf(data map[string]any, config *DetectionConfig) (Kind, error) {
	// 1. Check for explicit $schema field
	if schemaURL, ok := data["$schema"].(string); ok {
		if kind, err := FromURL(schemaURL); err == nil {
			return kind, nil
		}
	}

	// 2. Duck typing
	if kind := duckTypeKind(data); kind != Unknown {
		return kind, nil
	}

	// 3. Check config default
	if config != nil && config.DefaultKind != Unknown {
		return config.DefaultKind, nil
	}

	return Unknown, ErrUnknownKind
}

// duckTypeKind attempts to detect the kind from root fields.
func duckTypeKind(data map[string]any) Kind {
	switch {
	case hasAll(data, "platformId", "tokenOverrides"):
		return Extension
	case hasAll(data, "themeId", "overrides"):
		return ThemeOverrides
	case hasAll(data, "tokens", "dimensions"), hasAll(data, "tokens", "resolvedValueTypes"):
		return System
	default:
		return Unknown
	}
}

func hasAll(data map[string]any, fields ...string) bool {
	for _, f := range fields {
		if _, ok := data[f]; !ok {
			return false
		}
	}
	return true
}
