/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css provides CSS custom property formatting for platform entries.
package css

import (
	"fmt"
	"strings"

	"bennypowers.dev/strata/convert/formatter"
)

// DefaultSelector is the rule selector used when none is configured.
const DefaultSelector = ":root"

// Formatter outputs a single CSS rule of custom properties.
type Formatter struct {
	selector string
}

// New creates a CSS formatter writing into the given selector.
// An empty selector uses DefaultSelector.
func New(selector string) *Formatter {
	if selector == "" {
		selector = DefaultSelector
	}
	return &Formatter{selector: selector}
}

// Format converts entries to CSS custom properties.
// Names not already written as custom properties get a "--" prefix.
func (f *Formatter) Format(entries []formatter.Entry, opts formatter.Options) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(formatter.FormatHeader(opts.Header, formatter.CStyleComments))
	fmt.Fprintf(&sb, "%s {\n", f.selector)

	for _, e := range entries {
		if e.Description != "" {
			fmt.Fprintf(&sb, "  /* %s */\n", escapeComment(e.Description))
		}
		if e.Deprecated {
			sb.WriteString("  /* deprecated */\n")
		}
		fmt.Fprintf(&sb, "  %s: %s;\n", propertyName(e.Name), e.Value)
	}

	sb.WriteString("}\n")
	return []byte(sb.String()), nil
}

func propertyName(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	return "--" + name
}

func escapeComment(s string) string {
	return strings.ReplaceAll(s, "*/", "*\\/")
}
