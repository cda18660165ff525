/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert renders a merged catalog for one platform: code names
// from the platform's syntax patterns, literal values from its value
// formatters, serialized as css, json, android XML or yaml.
package convert

import (
	"errors"
	"fmt"

	"bennypowers.dev/strata/convert/formatter"
	"bennypowers.dev/strata/merge"
	"bennypowers.dev/strata/query"
	"bennypowers.dev/strata/schema"
	"bennypowers.dev/strata/token"
)

// Options configures a conversion.
type Options struct {
	// PlatformID selects the naming and value rules. Empty uses defaults.
	PlatformID string

	// Selection picks the mode of each dimension. Unset dimensions use
	// their default mode.
	Selection query.Selection

	// Format specifies the output format (default FormatCSS).
	Format Format

	// IncludePrivate also renders private tokens.
	IncludePrivate bool

	// Header is written as a comment at the top of the output.
	Header string

	// Selector is the CSS rule selector (default ":root").
	Selector string
}

// Output is the result of a conversion.
type Output struct {
	Data []byte

	// Skipped lists tokens left out because an alias in their chain
	// points at a token missing from the catalog.
	Skipped []string
}

// Convert renders a merge result for a platform.
func Convert(data *merge.MergedData, opts Options) (*Output, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: merged data is nil", schema.ErrInvalidDocument)
	}
	entries, skipped, err := Entries(query.FromMerged(data), opts)
	if err != nil {
		return nil, err
	}
	out, err := FormatEntries(entries, opts.Format, opts)
	if err != nil {
		return nil, err
	}
	return &Output{Data: out, Skipped: skipped}, nil
}

// Entries renders the tokens of a system for a platform, in catalog order.
// Tokens whose alias chain dangles are returned in skipped; a circular
// chain or an invalid selection is an error.
func Entries(sys *token.System, opts Options) (entries []formatter.Entry, skipped []string, err error) {
	var (
		sp *token.SyntaxPatterns
		vf *token.ValueFormatters
	)
	if opts.PlatformID != "" {
		p, ok := sys.Platform(opts.PlatformID)
		if !ok {
			return nil, nil, fmt.Errorf("%w: unknown platform %q", schema.ErrUnresolvedReference, opts.PlatformID)
		}
		sp, vf = p.SyntaxPatterns, p.ValueFormatters
	}

	entries = []formatter.Entry{}
	skipped = []string{}
	for i := range sys.Tokens {
		t := &sys.Tokens[i]
		if t.Private && !opts.IncludePrivate {
			continue
		}

		resolved, err := query.ResolveValue(sys, t.ID, opts.Selection)
		switch {
		case errors.Is(err, schema.ErrUnresolvedReference):
			skipped = append(skipped, t.ID)
			continue
		case err != nil:
			return nil, nil, fmt.Errorf("token %q: %w", t.ID, err)
		}

		value := resolved.Value
		if override, ok := platformOverride(t, resolved.ModeIDs, opts.PlatformID); ok {
			value = override
		}

		kind := ""
		if vt, ok := sys.ValueType(t.ResolvedValueTypeID); ok {
			kind = vt.Type
		}

		entries = append(entries, formatter.Entry{
			TokenID:     t.ID,
			Name:        codeName(t, opts.PlatformID, sp),
			Type:        kind,
			Value:       FormatValue(value, kind, vf),
			Description: t.Description,
			Deprecated:  t.IsDeprecated(),
		})
	}
	return entries, skipped, nil
}

// codeName prefers the token's explicit code syntax for the platform.
func codeName(t *token.Token, platformID string, sp *token.SyntaxPatterns) string {
	if name, ok := t.CodeSyntax[platformID]; ok && platformID != "" && name != "" {
		return name
	}
	return PlatformName(t.ID, sp)
}

// platformOverride returns the literal platform override of the chosen
// entry for the platform.
func platformOverride(t *token.Token, modeIDs []string, platformID string) (token.Value, bool) {
	if platformID == "" {
		return token.Value{}, false
	}
	mv, ok := t.ValueFor(modeIDs)
	if !ok {
		return token.Value{}, false
	}
	for _, po := range mv.PlatformOverrides {
		if po.PlatformID == platformID && !po.Value.IsAlias() && !po.Value.IsZero() {
			return po.Value, true
		}
	}
	return token.Value{}, false
}
