/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package testutil

import "bennypowers.dev/strata/token"

// NewSystem returns a small, consistent token system.
//
// It declares a color-scheme dimension (mode-light default, mode-dark) and a
// density dimension (comfortable default, compact), web and ios platforms,
// and these tokens:
//
//	color.brand    global #111111
//	color.bg       mode-light #ffffff, mode-dark #000000
//	color.text     global alias to color.brand
//	space.small    compact 4px, comfortable 8px
func NewSystem() *token.System {
	precision := 2
	return &token.System{
		SystemName: "Acme",
		SystemID:   "acme",
		Version:    "1.0.0",
		VersionHistory: []token.VersionEntry{
			{Version: "1.0.0", Dimensions: []string{"color-scheme", "density"}, Date: "2026-01-15"},
		},
		Dimensions: []token.Dimension{
			{
				ID: "color-scheme", DisplayName: "Color Scheme", DefaultMode: "mode-light",
				Modes: []token.Mode{{ID: "mode-light", Name: "Light"}, {ID: "mode-dark", Name: "Dark"}},
			},
			{
				ID: "density", DisplayName: "Density", DefaultMode: "comfortable",
				Modes: []token.Mode{{ID: "comfortable", Name: "Comfortable"}, {ID: "compact", Name: "Compact"}},
			},
		},
		ResolvedValueTypes: []token.ValueType{
			{ID: "color", DisplayName: "Color", Type: token.TypeColor},
			{ID: "spacing", DisplayName: "Spacing", Type: token.TypeSpacing},
		},
		TokenCollections: []token.Collection{
			{ID: "colors", Name: "Colors", ResolvedValueTypeIDs: []string{"color"}},
			{ID: "spacing", Name: "Spacing", ResolvedValueTypeIDs: []string{"spacing"}},
		},
		Taxonomies: []token.Taxonomy{
			{ID: "category", Name: "Category", Terms: []token.Term{{ID: "brand", Name: "Brand"}, {ID: "layout", Name: "Layout"}}},
		},
		Platforms: []token.Platform{
			{
				ID: "web", DisplayName: "Web",
				SyntaxPatterns:  &token.SyntaxPatterns{Prefix: "--", Delimiter: "-", Capitalization: token.CapitalizationLowercase},
				ValueFormatters: &token.ValueFormatters{ColorFormat: "hex", DimensionUnit: "px", NumberPrecision: &precision},
			},
			{
				ID: "ios", DisplayName: "iOS",
				SyntaxPatterns: &token.SyntaxPatterns{Delimiter: "", Capitalization: token.CapitalizationCapitalize},
			},
		},
		Themes: []token.Theme{{ID: "brand-dark", DisplayName: "Brand Dark"}},
		Tokens: []token.Token{
			{
				ID: "color.brand", DisplayName: "Brand", ResolvedValueTypeID: "color",
				TokenTier: token.TierPrimitive, TokenCollectionID: "colors", Themeable: true,
				Taxonomies:   []token.TaxonomyRef{{TaxonomyID: "category", TermID: "brand"}},
				ValuesByMode: Global(token.StringValue("#111111")),
			},
			{
				ID: "color.bg", DisplayName: "Background", ResolvedValueTypeID: "color",
				TokenTier: token.TierPrimitive, TokenCollectionID: "colors",
				Taxonomies: []token.TaxonomyRef{},
				ValuesByMode: []token.ModeValue{
					In(token.StringValue("#ffffff"), "mode-light"),
					In(token.StringValue("#000000"), "mode-dark"),
				},
			},
			{
				ID: "color.text", DisplayName: "Text", ResolvedValueTypeID: "color",
				TokenTier: token.TierSemantic, TokenCollectionID: "colors",
				Taxonomies:   []token.TaxonomyRef{},
				ValuesByMode: Global(token.AliasValue("color.brand")),
			},
			{
				ID: "space.small", DisplayName: "Small space", ResolvedValueTypeID: "spacing",
				TokenTier: token.TierPrimitive, TokenCollectionID: "spacing",
				Taxonomies: []token.TaxonomyRef{{TaxonomyID: "category", TermID: "layout"}},
				ValuesByMode: []token.ModeValue{
					In(token.DimensionValue(4, "px"), "compact"),
					In(token.DimensionValue(8, "px"), "comfortable"),
				},
			},
		},
	}
}

// Global returns a single global valuesByMode entry.
func Global(v token.Value) []token.ModeValue {
	return []token.ModeValue{{ModeIDs: []string{}, Value: v}}
}

// In returns a valuesByMode entry for a mode combination.
func In(v token.Value, modeIDs ...string) token.ModeValue {
	if modeIDs == nil {
		modeIDs = []string{}
	}
	return token.ModeValue{ModeIDs: modeIDs, Value: v}
}

// NewExtension returns a platform extension with the given overrides.
func NewExtension(platformID, fileKey string, overrides ...token.TokenOverride) *token.Extension {
	if overrides == nil {
		overrides = []token.TokenOverride{}
	}
	return &token.Extension{
		SystemID:          "acme",
		PlatformID:        platformID,
		Version:           "1.0.0",
		FigmaFileKey:      fileKey,
		TokenOverrides:    overrides,
		OmittedModes:      []string{},
		OmittedDimensions: []string{},
	}
}
