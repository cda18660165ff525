/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema_test

import (
	"errors"
	"testing"

	"bennypowers.dev/strata/schema"
)

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		config   *schema.DetectionConfig
		expected schema.Kind
		wantErr  bool
	}{
		{
			name:     "explicit system schema",
			content:  `{"$schema": "https://strata.bennypowers.dev/schemas/token-system.json"}`,
			expected: schema.System,
		},
		{
			name:     "explicit extension schema",
			content:  `{"$schema": "https://strata.bennypowers.dev/schemas/platform-extension.json"}`,
			expected: schema.Extension,
		},
		{
			name:     "duck type system",
			content:  `{"systemId": "acme", "tokens": [], "dimensions": []}`,
			expected: schema.System,
		},
		{
			name:     "duck type extension",
			content:  `{"platformId": "ios", "tokenOverrides": []}`,
			expected: schema.Extension,
		},
		{
			name:     "duck type theme overrides in YAML",
			content:  "themeId: brand-dark\noverrides: []\n",
			expected: schema.ThemeOverrides,
		},
		{
			name:     "config default",
			content:  `{"name": "something"}`,
			config:   &schema.DetectionConfig{DefaultKind: schema.System},
			expected: schema.System,
		},
		{
			name:     "unknown document",
			content:  `{"name": "something"}`,
			expected: schema.Unknown,
			wantErr:  true,
		},
		{
			name:     "unrecognized schema URL falls back to duck typing",
			content:  `{"$schema": "https://example.com/x.json", "platformId": "web", "tokenOverrides": []}`,
			expected: schema.Extension,
		},
		{
			name:    "invalid content",
			content: `{not yaml: [`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schema.DetectKind([]byte(tt.content), tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DetectKind() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("DetectKind() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDetectKind_UnknownIsSentinel(t *testing.T) {
	_, err := schema.DetectKind([]byte(`{}`), nil)
	if !errors.Is(err, schema.ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestKind_RoundTrip(t *testing.T) {
	for _, k := range []schema.Kind{schema.System, schema.Extension, schema.ThemeOverrides} {
		fromURL, err := schema.FromURL(k.URL())
		if err != nil || fromURL != k {
			t.Errorf("FromURL(%q) = %v, %v; want %v", k.URL(), fromURL, err, k)
		}
		fromString, err := schema.FromString(k.String())
		if err != nil || fromString != k {
			t.Errorf("FromString(%q) = %v, %v; want %v", k.String(), fromString, err, k)
		}
	}

	if _, err := schema.FromString("draft"); !errors.Is(err, schema.ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind for unknown string, got %v", err)
	}
}
