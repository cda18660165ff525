/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package schema identifies token system document kinds.
package schema

import "fmt"

// Kind is the kind of a token system document.
type Kind int

const (
	// Unknown represents an undetected or unrecognized document.
	Unknown Kind = iota

	// System is a core token system.
	System

	// Extension is a platform extension overlay.
	Extension

	// ThemeOverrides is a standalone theme override document.
	ThemeOverrides
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case System:
		return "system"
	case Extension:
		return "extension"
	case ThemeOverrides:
		return "theme-overrides"
	default:
		return "unknown"
	}
}

// URL returns the JSON Schema URL documents of this kind may declare in $schema.
func (k Kind) URL() string {
	switch k {
	case System:
		return "https://strata.bennypowers.dev/schemas/token-system.json"
	case Extension:
		return "https://strata.bennypowers.dev/schemas/platform-extension.json"
	case ThemeOverrides:
		return "https://strata.bennypowers.dev/schemas/theme-overrides.json"
	default:
		return ""
	}
}

// FromURL returns the kind from a JSON Schema URL.
func FromURL(url string) (Kind, error) {
	for _, k := range []Kind{System, Extension, ThemeOverrides} {
		if k.URL() == url {
			return k, nil
		}
	}
	return Unknown, fmt.Errorf("%w: unrecognized schema URL: %s", ErrUnknownKind, url)
}

// FromString returns the kind from a string representation.
func FromString(s string) (Kind, error) {
	switch s {
	case "system", "core", "token-system":
		return System, nil
	case "extension", "platform-extension", "platform":
		return Extension, nil
	case "theme-overrides", "theme", "themes":
		return ThemeOverrides, nil
	default:
		return Unknown, fmt.Errorf("%w: %s", ErrUnknownKind, s)
	}
}
