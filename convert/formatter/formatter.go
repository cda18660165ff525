/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for platform formatters.
package formatter

import (
	"sort"
	"strings"
	"unicode"
)

// Entry is one token rendered for a platform: its platform name and its
// literal value already formatted by the platform's value rules.
type Entry struct {
	// TokenID is the catalog id of the token.
	TokenID string

	// Name is the platform code name.
	Name string

	// Type is the standard value type kind, e.g. COLOR. Empty for custom types.
	Type string

	// Value is the formatted literal.
	Value string

	Description string
	Deprecated  bool
}

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format serializes entries to the target format.
	Format(entries []Entry, opts Options) ([]byte, error)
}

// Options configures formatter behavior.
type Options struct {
	// Header is written as a comment at the top of the output, where the
	// format has comments.
	Header string
}

// CommentStyle describes how a format writes comments.
type CommentStyle struct {
	Open  string
	Line  string
	Close string
}

var (
	// CStyleComments are /* */ block comments.
	CStyleComments = CommentStyle{Open: "/*", Line: " * ", Close: " */"}

	// XMLComments are <!-- --> comments.
	XMLComments = CommentStyle{Open: "<!--", Line: "  ", Close: "-->"}

	// HashComments are # line comments.
	HashComments = CommentStyle{Line: "# "}
)

// FormatHeader renders a header comment followed by a blank line.
// An empty header yields an empty string.
func FormatHeader(header string, style CommentStyle) string {
	header = strings.TrimRight(header, "\n")
	if header == "" {
		return ""
	}
	lines := strings.Split(header, "\n")

	var sb strings.Builder
	if len(lines) == 1 && style.Open == "" {
		sb.WriteString(style.Line + lines[0] + "\n\n")
		return sb.String()
	}
	if style.Open != "" {
		sb.WriteString(style.Open + "\n")
	}
	for _, line := range lines {
		sb.WriteString(strings.TrimRight(style.Line+line, " ") + "\n")
	}
	if style.Close != "" {
		sb.WriteString(style.Close + "\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

// SortEntries returns a copy of entries sorted by name.
func SortEntries(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// SplitIntoWords splits a string on hyphens, underscores, dots, slashes,
// spaces and camelCase boundaries.
func SplitIntoWords(s string) []string {
	var words []string
	var current strings.Builder

	prev := rune(0)
	for _, r := range s {
		switch {
		case r == '-' || r == '_' || r == '.' || r == '/' || r == ' ':
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
		prev = r
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

// ToSnakeCase converts a string to snake_case.
func ToSnakeCase(s string) string {
	return strings.ToLower(strings.Join(SplitIntoWords(s), "_"))
}

// EscapeXML escapes special XML characters.
func EscapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
