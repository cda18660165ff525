/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package android provides Android XML resource formatting for platform entries.
package android

import (
	"fmt"
	"strings"

	"bennypowers.dev/strata/convert/formatter"
	"bennypowers.dev/strata/token"
)

// Formatter outputs Android-style XML resources.
type Formatter struct{}

// New creates a new Android formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts entries to Android XML resource format, sorted by name.
func (f *Formatter) Format(entries []formatter.Entry, opts formatter.Options) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="utf-8"?>`)
	sb.WriteString("\n")
	sb.WriteString(formatter.FormatHeader(opts.Header, formatter.XMLComments))
	sb.WriteString("<resources>\n")

	for _, e := range formatter.SortEntries(entries) {
		name := formatter.ToSnakeCase(e.Name)
		resType := xmlType(e.Type)
		fmt.Fprintf(&sb, "    <%s name=\"%s\">%s</%s>\n",
			resType, formatter.EscapeXML(name), formatter.EscapeXML(e.Value), resType)
	}

	sb.WriteString("</resources>\n")
	return []byte(sb.String()), nil
}

func xmlType(kind string) string {
	switch {
	case kind == token.TypeColor:
		return "color"
	case token.IsDimensional(kind):
		return "dimen"
	case kind == token.TypeBoolean:
		return "bool"
	case kind == token.TypeFontWeight:
		return "integer"
	default:
		return "string"
	}
}
