/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package merge

import (
	"maps"
	"slices"

	"bennypowers.dev/strata/token"
)

// applyExtension applies one platform extension to the working set.
func (w *workingSet) applyExtension(ext *token.Extension, includeOmitted bool) {
	w.applyPlatformRules(ext)

	for i := range ext.TokenOverrides {
		o := &ext.TokenOverrides[i]
		drop := o.Omit && !includeOmitted
		existing, found := w.lookup(o.ID)
		switch {
		case found && drop:
			w.remove(o.ID)
			w.omittedTokens.add(o.ID)
		case found:
			*existing = overlay(*existing, o, w.dims)
		case !drop:
			t := o.AsToken()
			if t.ValuesByMode == nil {
				t.ValuesByMode = []token.ModeValue{}
			}
			w.add(t)
			// A later extension may restore a token an earlier one omitted.
			w.omittedTokens.remove(o.ID)
		}
	}

	w.omittedModes.add(ext.OmittedModes...)
	w.omittedDimensions.add(ext.OmittedDimensions...)
}

// applyPlatformRules replaces the naming and formatting rules of the platform
// the extension targets. Rules are replaced whole, never merged field by field.
func (w *workingSet) applyPlatformRules(ext *token.Extension) {
	i := slices.IndexFunc(w.platforms, func(p token.Platform) bool { return p.ID == ext.PlatformID })
	if i < 0 || (ext.SyntaxPatterns == nil && ext.ValueFormatters == nil) {
		return
	}
	p := &w.platforms[i]
	if ext.SyntaxPatterns != nil {
		sp := *ext.SyntaxPatterns
		if sp.Capitalization == token.CapitalizationCamel {
			sp.Capitalization = token.CapitalizationNone
		}
		p.SyntaxPatterns = &sp
	}
	if ext.ValueFormatters != nil {
		vf := ext.ValueFormatters.Clone()
		p.ValueFormatters = &vf
	}
	// The rules now live on the platform itself.
	p.ExtensionSource = nil
}

// overlay returns t with every field the override sets replaced.
// Values are combined by mode combination rather than replaced.
func overlay(t token.Token, o *token.TokenOverride, dims []token.Dimension) token.Token {
	if o.DisplayName != "" {
		t.DisplayName = o.DisplayName
	}
	if o.Description != "" {
		t.Description = o.Description
	}
	if o.ResolvedValueTypeID != "" {
		t.ResolvedValueTypeID = o.ResolvedValueTypeID
	}
	if o.TokenTier != "" {
		t.TokenTier = o.TokenTier
	}
	if o.TokenCollectionID != "" {
		t.TokenCollectionID = o.TokenCollectionID
	}
	if o.Private != nil {
		t.Private = *o.Private
	}
	if o.Themeable != nil {
		t.Themeable = *o.Themeable
	}
	if o.Status != "" {
		t.Status = o.Status
	}
	if o.Taxonomies != nil {
		t.Taxonomies = slices.Clone(o.Taxonomies)
	}
	if o.PropertyTypes != nil {
		t.PropertyTypes = slices.Clone(o.PropertyTypes)
	}
	if o.CodeSyntax != nil {
		t.CodeSyntax = maps.Clone(o.CodeSyntax)
	}
	if len(o.ValuesByMode) > 0 {
		t.ValuesByMode = MergeValuesByMode(t.ValuesByMode, o.ValuesByMode, dims)
	}
	return t
}
