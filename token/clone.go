/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"maps"
	"slices"
)

// Clone returns a deep copy of the token.
func (t Token) Clone() Token {
	out := t
	out.Taxonomies = cloneSlice(t.Taxonomies)
	out.PropertyTypes = cloneSlice(t.PropertyTypes)
	out.CodeSyntax = cloneStringMap(t.CodeSyntax)
	out.ValuesByMode = CloneModeValues(t.ValuesByMode)
	return out
}

// Clone returns a deep copy of the mode value.
func (mv ModeValue) Clone() ModeValue {
	out := mv
	out.ModeIDs = slices.Clone(mv.ModeIDs)
	if out.ModeIDs == nil {
		out.ModeIDs = []string{}
	}
	out.PlatformOverrides = cloneSlice(mv.PlatformOverrides)
	out.Metadata = CloneMetadata(mv.Metadata)
	return out
}

// CloneModeValues deep-copies a valuesByMode list.
func CloneModeValues(values []ModeValue) []ModeValue {
	if values == nil {
		return nil
	}
	out := make([]ModeValue, len(values))
	for i, mv := range values {
		out[i] = mv.Clone()
	}
	return out
}

// CloneMetadata copies a metadata map one level deep.
func CloneMetadata(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	return maps.Clone(m)
}

// Clone returns a deep copy of the platform.
func (p Platform) Clone() Platform {
	out := p
	if p.SyntaxPatterns != nil {
		sp := *p.SyntaxPatterns
		out.SyntaxPatterns = &sp
	}
	if p.ValueFormatters != nil {
		vf := p.ValueFormatters.Clone()
		out.ValueFormatters = &vf
	}
	if p.ExtensionSource != nil {
		es := *p.ExtensionSource
		out.ExtensionSource = &es
	}
	return out
}

// Clone returns a copy of the formatters.
func (vf ValueFormatters) Clone() ValueFormatters {
	out := vf
	if vf.NumberPrecision != nil {
		n := *vf.NumberPrecision
		out.NumberPrecision = &n
	}
	return out
}

// CloneTokens deep-copies a token list.
func CloneTokens(tokens []Token) []Token {
	out := make([]Token, len(tokens))
	for i, t := range tokens {
		out[i] = t.Clone()
	}
	return out
}

// ClonePlatforms deep-copies a platform list.
func ClonePlatforms(platforms []Platform) []Platform {
	out := make([]Platform, len(platforms))
	for i, p := range platforms {
		out[i] = p.Clone()
	}
	return out
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return slices.Clone(s)
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	return maps.Clone(m)
}
