/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"fmt"
	"strings"

	"bennypowers.dev/strata/convert/formatter"
	"bennypowers.dev/strata/convert/formatter/android"
	"bennypowers.dev/strata/convert/formatter/css"
	"bennypowers.dev/strata/convert/formatter/flatjson"
	"bennypowers.dev/strata/convert/formatter/yaml"
)

// Format represents an output format for a platform rendering.
type Format string

const (
	// FormatCSS outputs CSS custom properties (default).
	FormatCSS Format = "css"

	// FormatJSON outputs flat name-to-value JSON.
	FormatJSON Format = "json"

	// FormatAndroid outputs Android-style XML resources.
	FormatAndroid Format = "android"

	// FormatYAML outputs a name-to-value YAML mapping.
	FormatYAML Format = "yaml"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatCSS),
		string(FormatJSON),
		string(FormatAndroid),
		string(FormatYAML),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "css", "":
		return FormatCSS, nil
	case "json", "flat", "flat-json":
		return FormatJSON, nil
	case "android", "xml":
		return FormatAndroid, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// FormatEntries serializes entries to the specified output format.
func FormatEntries(entries []formatter.Entry, format Format, opts Options) ([]byte, error) {
	var f formatter.Formatter
	switch format {
	case FormatCSS, "":
		f = css.New(opts.Selector)
	case FormatJSON:
		f = flatjson.New()
	case FormatAndroid:
		f = android.New()
	case FormatYAML:
		f = yaml.New()
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return f.Format(entries, formatter.Options{Header: opts.Header})
}
