/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator

import (
	"bennypowers.dev/strata/token"
)

var repositoryVisibilities = []string{"public", "private"}

func (d *decoder) extension(m map[string]any) *token.Extension {
	ext := &token.Extension{
		SystemID:        d.id(m, "systemId", "", true),
		PlatformID:      d.id(m, "platformId", "", true),
		Version:         d.semver(m, "version", "", true),
		FigmaFileKey:    d.str(m, "figmaFileKey", "", true),
		SyntaxPatterns:  d.syntaxPatterns(m, "", token.ExtensionCapitalizations),
		ValueFormatters: d.valueFormatters(m, ""),
	}
	if meta := d.obj(m, "metadata", "", false); meta != nil {
		ext.Metadata = &token.ExtensionMetadata{
			Name:                 d.str(meta, "name", "metadata", true),
			Description:          d.str(meta, "description", "metadata", false),
			Maintainer:           d.str(meta, "maintainer", "metadata", false),
			LastUpdated:          d.str(meta, "lastUpdated", "metadata", false),
			RepositoryVisibility: d.enum(meta, "repositoryVisibility", "metadata", false, repositoryVisibilities),
		}
	}

	ext.TokenOverrides = []token.TokenOverride{}
	d.objects(d.arr(m, "tokenOverrides", "", true, false), "tokenOverrides", func(e map[string]any, p string) {
		ext.TokenOverrides = append(ext.TokenOverrides, d.tokenOverride(e, p))
	})
	d.unique("tokenOverrides", "token override", idsOf(ext.TokenOverrides, func(v token.TokenOverride) string { return v.ID }))

	d.objects(d.arr(m, "algorithmVariableOverrides", "", false, false), "algorithmVariableOverrides", func(e map[string]any, p string) {
		ext.AlgorithmVariableOverrides = append(ext.AlgorithmVariableOverrides, token.AlgorithmVariableOverride{
			AlgorithmID:  d.id(e, "algorithmId", p, true),
			VariableID:   d.id(e, "variableId", p, true),
			ValuesByMode: d.valuesByMode(e, p, true),
		})
	})

	ext.OmittedModes = d.ids(m, "omittedModes", "", false, false)
	if ext.OmittedModes == nil {
		ext.OmittedModes = []string{}
	}
	ext.OmittedDimensions = d.ids(m, "omittedDimensions", "", false, false)
	if ext.OmittedDimensions == nil {
		ext.OmittedDimensions = []string{}
	}
	return ext
}

// tokenOverride decodes an override. Every field but the id is optional;
// values cannot be checked against a type here because types live in the core.
func (d *decoder) tokenOverride(m map[string]any, path string) token.TokenOverride {
	o := token.TokenOverride{
		ID:                  d.id(m, "id", path, true),
		DisplayName:         d.str(m, "displayName", path, false),
		Description:         d.str(m, "description", path, false),
		ResolvedValueTypeID: d.id(m, "resolvedValueTypeId", path, false),
		TokenTier:           token.Tier(d.enum(m, "tokenTier", path, false, enumStrings(token.Tiers))),
		TokenCollectionID:   d.id(m, "tokenCollectionId", path, false),
		Private:             d.optBool(m, "private", path),
		Themeable:           d.optBool(m, "themeable", path),
		Status:              token.Status(d.enum(m, "status", path, false, enumStrings(token.Statuses))),
		PropertyTypes:       d.stringList(m, "propertyTypes", path),
		CodeSyntax:          d.stringMap(m, "codeSyntax", path),
		Omit:                d.boolean(m, "omit", path),
		ValuesByMode:        d.valuesByMode(m, path, false),
	}
	if _, ok := m["taxonomies"]; ok {
		o.Taxonomies = d.taxonomyRefs(m, path)
	}
	return o
}

func (d *decoder) themeOverrideFile(m map[string]any) *token.ThemeOverrideFile {
	file := &token.ThemeOverrideFile{
		SystemID:     d.id(m, "systemId", "", true),
		ThemeID:      d.id(m, "themeId", "", true),
		FigmaFileKey: d.str(m, "figmaFileKey", "", true),
		Overrides:    []token.ThemeOverride{},
	}
	d.objects(d.arr(m, "overrides", "", true, false), "overrides", func(e map[string]any, p string) {
		file.Overrides = append(file.Overrides, d.themeOverride(e, p))
	})
	return file
}
