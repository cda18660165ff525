/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator

import (
	"fmt"
	"regexp"
	"slices"

	"bennypowers.dev/strata/token"
)

func (d *decoder) system(m map[string]any) *token.System {
	sys := &token.System{
		SystemName:  d.str(m, "systemName", "", true),
		SystemID:    d.id(m, "systemId", "", true),
		Description: d.str(m, "description", "", false),
		Version:     d.semver(m, "version", "", true),
	}

	d.objects(d.arr(m, "versionHistory", "", true, true), "versionHistory", func(e map[string]any, p string) {
		sys.VersionHistory = append(sys.VersionHistory, token.VersionEntry{
			Version:           d.semver(e, "version", p, true),
			Dimensions:        d.ids(e, "dimensions", p, true, false),
			Date:              d.str(e, "date", p, true),
			MigrationStrategy: d.str(e, "migrationStrategy", p, false),
		})
	})

	sys.ResolvedValueTypes = []token.ValueType{}
	d.objects(d.arr(m, "resolvedValueTypes", "", true, false), "resolvedValueTypes", func(e map[string]any, p string) {
		sys.ResolvedValueTypes = append(sys.ResolvedValueTypes, d.valueType(e, p))
	})
	d.unique("resolvedValueTypes", "value type", idsOf(sys.ResolvedValueTypes, func(v token.ValueType) string { return v.ID }))

	sys.Dimensions = []token.Dimension{}
	d.objects(d.arr(m, "dimensions", "", true, false), "dimensions", func(e map[string]any, p string) {
		sys.Dimensions = append(sys.Dimensions, d.dimension(e, p))
	})
	dimIDs := idsOf(sys.Dimensions, func(v token.Dimension) string { return v.ID })
	d.unique("dimensions", "dimension", dimIDs)
	d.uniqueModes(sys.Dimensions)
	sys.DimensionOrder = d.ids(m, "dimensionOrder", "", false, false)
	d.subset("dimensionOrder", "dimension", sys.DimensionOrder, dimIDs)

	sys.TokenCollections = []token.Collection{}
	d.objects(d.arr(m, "tokenCollections", "", true, false), "tokenCollections", func(e map[string]any, p string) {
		sys.TokenCollections = append(sys.TokenCollections, d.collection(e, p))
	})
	d.unique("tokenCollections", "collection", idsOf(sys.TokenCollections, func(v token.Collection) string { return v.ID }))

	types := make(map[string]*token.ValueType, len(sys.ResolvedValueTypes))
	for i := range sys.ResolvedValueTypes {
		types[sys.ResolvedValueTypes[i].ID] = &sys.ResolvedValueTypes[i]
	}
	sys.Tokens = []token.Token{}
	d.objects(d.arr(m, "tokens", "", true, false), "tokens", func(e map[string]any, p string) {
		sys.Tokens = append(sys.Tokens, d.token(e, p, types))
	})
	d.unique("tokens", "token", idsOf(sys.Tokens, func(v token.Token) string { return v.ID }))

	sys.Platforms = []token.Platform{}
	d.objects(d.arr(m, "platforms", "", true, false), "platforms", func(e map[string]any, p string) {
		sys.Platforms = append(sys.Platforms, d.platform(e, p))
	})
	d.unique("platforms", "platform", idsOf(sys.Platforms, func(v token.Platform) string { return v.ID }))

	d.objects(d.arr(m, "themes", "", false, false), "themes", func(e map[string]any, p string) {
		sys.Themes = append(sys.Themes, d.theme(e, p))
	})
	d.unique("themes", "theme", idsOf(sys.Themes, func(v token.Theme) string { return v.ID }))

	if buckets := d.obj(m, "themeOverrides", "", false); buckets != nil {
		sys.ThemeOverrides = make(token.ThemeOverrides, len(buckets))
		for themeID, raw := range buckets {
			p := at("themeOverrides", themeID)
			if !idPattern.MatchString(themeID) {
				d.fail(p, fmt.Sprintf("invalid theme id %q", themeID), "")
			}
			items, ok := raw.([]any)
			if !ok {
				d.fail(p, fmt.Sprintf("expected array of overrides, got %s", typeName(raw)), "")
				continue
			}
			list := make([]token.ThemeOverride, 0, len(items))
			d.objects(items, p, func(e map[string]any, ep string) {
				list = append(list, d.themeOverride(e, ep))
			})
			sys.ThemeOverrides[themeID] = list
		}
	}

	sys.Taxonomies = []token.Taxonomy{}
	d.objects(d.arr(m, "taxonomies", "", true, false), "taxonomies", func(e map[string]any, p string) {
		sys.Taxonomies = append(sys.Taxonomies, d.taxonomy(e, p))
	})
	taxIDs := idsOf(sys.Taxonomies, func(v token.Taxonomy) string { return v.ID })
	d.unique("taxonomies", "taxonomy", taxIDs)
	sys.TaxonomyOrder = d.ids(m, "taxonomyOrder", "", false, false)
	d.subset("taxonomyOrder", "taxonomy", sys.TaxonomyOrder, taxIDs)

	return sys
}

func (d *decoder) valueType(m map[string]any, path string) token.ValueType {
	vt := token.ValueType{
		ID:          d.id(m, "id", path, true),
		DisplayName: d.str(m, "displayName", path, true),
		Type:        d.enum(m, "type", path, false, token.StandardTypes),
		Description: d.str(m, "description", path, false),
	}
	v := d.obj(m, "validation", path, false)
	if v == nil {
		return vt
	}
	vp := at(path, "validation")
	rules := &token.ValueValidation{
		Pattern: d.str(v, "pattern", vp, false),
		Minimum: d.number(v, "minimum", vp),
		Maximum: d.number(v, "maximum", vp),
	}
	if rules.Pattern != "" {
		if _, err := regexp.Compile(rules.Pattern); err != nil {
			d.fail(at(vp, "pattern"), fmt.Sprintf("invalid pattern: %v", err), "")
		}
	}
	if rules.Minimum != nil && rules.Maximum != nil && *rules.Minimum > *rules.Maximum {
		d.fail(vp, "minimum is greater than maximum", "")
	}
	if allowed := d.arr(v, "allowedValues", vp, false, true); allowed != nil {
		rules.AllowedValues = allowed
	}
	vt.Validation = rules
	return vt
}

func (d *decoder) dimension(m map[string]any, path string) token.Dimension {
	dim := token.Dimension{
		ID:                   d.id(m, "id", path, true),
		DisplayName:          d.str(m, "displayName", path, true),
		Description:          d.str(m, "description", path, false),
		DefaultMode:          d.id(m, "defaultMode", path, true),
		Required:             d.boolean(m, "required", path),
		ResolvedValueTypeIDs: d.ids(m, "resolvedValueTypeIds", path, false, false),
	}
	d.objects(d.arr(m, "modes", path, true, true), at(path, "modes"), func(e map[string]any, p string) {
		dim.Modes = append(dim.Modes, token.Mode{
			ID:           d.id(e, "id", p, true),
			Name:         d.str(e, "name", p, true),
			Description:  d.str(e, "description", p, false),
			Dependencies: d.ids(e, "dependencies", p, false, false),
		})
	})
	modeIDs := dim.ModeIDs()
	d.unique(at(path, "modes"), "mode", modeIDs)
	if dim.DefaultMode != "" && len(modeIDs) > 0 && !slices.Contains(modeIDs, dim.DefaultMode) {
		d.fail(at(path, "defaultMode"), fmt.Sprintf("default mode %q is not one of the dimension's modes", dim.DefaultMode),
			"set defaultMode to one of: "+fmt.Sprint(modeIDs))
	}
	return dim
}

// uniqueModes requires every mode id to belong to exactly one dimension,
// since mode sets name modes without naming their dimension.
func (d *decoder) uniqueModes(dims []token.Dimension) {
	owner := make(map[string]string)
	for i, dim := range dims {
		for _, mode := range dim.Modes {
			if mode.ID == "" {
				continue
			}
			if other, ok := owner[mode.ID]; ok && other != dim.ID {
				d.fail(at(idx("dimensions", i), "modes"),
					fmt.Sprintf("mode %q is already declared by dimension %q", mode.ID, other),
					"mode ids must be unique across dimensions")
				continue
			}
			owner[mode.ID] = dim.ID
		}
	}
}

func (d *decoder) collection(m map[string]any, path string) token.Collection {
	c := token.Collection{
		ID:                   d.id(m, "id", path, true),
		Name:                 d.str(m, "name", path, true),
		Description:          d.str(m, "description", path, false),
		ResolvedValueTypeIDs: d.ids(m, "resolvedValueTypeIds", path, true, true),
		Private:              d.boolean(m, "private", path),
	}
	if s := d.obj(m, "modeResolutionStrategy", path, false); s != nil {
		sp := at(path, "modeResolutionStrategy")
		c.ModeResolutionStrategy = &token.ModeResolutionStrategy{
			PriorityByType:   d.ids(s, "priorityByType", sp, true, false),
			FallbackStrategy: token.FallbackStrategy(d.enum(s, "fallbackStrategy", sp, true, enumStrings(token.FallbackStrategies))),
		}
	}
	return c
}

func (d *decoder) token(m map[string]any, path string, types map[string]*token.ValueType) token.Token {
	t := token.Token{
		ID:                   d.id(m, "id", path, true),
		DisplayName:          d.str(m, "displayName", path, true),
		Description:          d.str(m, "description", path, false),
		ResolvedValueTypeID:  d.id(m, "resolvedValueTypeId", path, true),
		TokenTier:            token.Tier(d.enum(m, "tokenTier", path, true, enumStrings(token.Tiers))),
		TokenCollectionID:    d.id(m, "tokenCollectionId", path, false),
		Private:              d.boolean(m, "private", path),
		Themeable:            d.boolean(m, "themeable", path),
		Status:               token.Status(d.enum(m, "status", path, false, enumStrings(token.Statuses))),
		Taxonomies:           d.taxonomyRefs(m, path),
		PropertyTypes:        d.stringList(m, "propertyTypes", path),
		CodeSyntax:           d.stringMap(m, "codeSyntax", path),
		GeneratedByAlgorithm: d.boolean(m, "generatedByAlgorithm", path),
		AlgorithmID:          d.id(m, "algorithmId", path, false),
	}
	if t.GeneratedByAlgorithm && t.AlgorithmID == "" {
		d.fail(at(path, "algorithmId"), "generated tokens must name their algorithm", "")
	}
	t.ValuesByMode = d.valuesByMode(m, path, true)
	if vt := types[t.ResolvedValueTypeID]; vt != nil {
		for i, mv := range t.ValuesByMode {
			mp := idx(at(path, "valuesByMode"), i)
			d.checkValue(at(mp, "value"), mv.Value, vt)
			for j, po := range mv.PlatformOverrides {
				d.checkValue(at(idx(at(mp, "platformOverrides"), j), "value"), po.Value, vt)
			}
		}
	}
	return t
}

func (d *decoder) taxonomyRefs(m map[string]any, path string) []token.TaxonomyRef {
	refs := []token.TaxonomyRef{}
	d.objects(d.arr(m, "taxonomies", path, false, false), at(path, "taxonomies"), func(e map[string]any, p string) {
		refs = append(refs, token.TaxonomyRef{
			TaxonomyID: d.id(e, "taxonomyId", p, true),
			TermID:     d.id(e, "termId", p, true),
		})
	})
	return refs
}

// valuesByMode decodes a valuesByMode array and enforces its shape:
// either exactly one global entry, or entries with distinct non-empty mode sets.
func (d *decoder) valuesByMode(m map[string]any, path string, required bool) []token.ModeValue {
	base := at(path, "valuesByMode")
	items := d.arr(m, "valuesByMode", path, required, true)
	if items == nil {
		return nil
	}
	values := make([]token.ModeValue, 0, len(items))
	d.objects(items, base, func(e map[string]any, p string) {
		mv := token.ModeValue{
			ModeIDs:  d.ids(e, "modeIds", p, true, false),
			Value:    d.value(e, "value", p),
			Metadata: d.obj(e, "metadata", p, false),
		}
		if mv.ModeIDs == nil {
			mv.ModeIDs = []string{}
		}
		d.unique(at(p, "modeIds"), "mode", mv.ModeIDs)
		mv.PlatformOverrides = d.platformOverrides(e, p)
		values = append(values, mv)
	})

	if len(values) > 1 {
		for i, mv := range values {
			if mv.IsGlobal() {
				d.fail(idx(base, i), "a global value (empty modeIds) must be the only entry",
					"either list one entry per mode combination or a single global entry")
			}
		}
	}
	seen := make(map[string]int, len(values))
	for i, mv := range values {
		key := mv.ModeKey()
		if first, ok := seen[key]; ok && !mv.IsGlobal() {
			d.fail(idx(base, i), fmt.Sprintf("duplicate mode combination %v (first at index %d)", mv.ModeIDs, first), "")
			continue
		}
		seen[key] = i
	}
	return values
}

func (d *decoder) platformOverrides(m map[string]any, path string) []token.PlatformOverride {
	var out []token.PlatformOverride
	base := at(path, "platformOverrides")
	d.objects(d.arr(m, "platformOverrides", path, false, false), base, func(e map[string]any, p string) {
		out = append(out, token.PlatformOverride{
			PlatformID: d.id(e, "platformId", p, true),
			Value:      d.value(e, "value", p),
		})
	})
	d.unique(base, "platform", idsOf(out, func(v token.PlatformOverride) string { return v.PlatformID }))
	return out
}

func (d *decoder) value(m map[string]any, key, path string) token.Value {
	if d.missing(m, key, path) {
		return token.Value{}
	}
	v := token.FromAny(m[key])
	if v.IsZero() {
		d.fail(at(path, key), "value must not be null", "")
	}
	if v.IsAlias() && !idPattern.MatchString(v.AliasID) {
		d.fail(at(path, key), fmt.Sprintf("invalid alias target %q", v.AliasID), "")
	}
	return v
}

func (d *decoder) platform(m map[string]any, path string) token.Platform {
	p := token.Platform{
		ID:              d.id(m, "id", path, true),
		DisplayName:     d.str(m, "displayName", path, true),
		Description:     d.str(m, "description", path, false),
		SyntaxPatterns:  d.syntaxPatterns(m, path, token.PlatformCapitalizations),
		ValueFormatters: d.valueFormatters(m, path),
	}
	if src := d.obj(m, "extensionSource", path, false); src != nil {
		p.ExtensionSource = d.extensionSource(src, at(path, "extensionSource"))
		if p.SyntaxPatterns != nil || p.ValueFormatters != nil {
			d.fail(path, "a platform declares either an extensionSource or syntaxPatterns/valueFormatters, not both",
				"move the formatting rules into the extension document")
		}
	}
	return p
}

func (d *decoder) extensionSource(m map[string]any, path string) *token.ExtensionSource {
	return &token.ExtensionSource{
		RepositoryURI: d.str(m, "repositoryUri", path, true),
		FilePath:      d.str(m, "filePath", path, true),
	}
}

func (d *decoder) syntaxPatterns(m map[string]any, path string, caps []token.Capitalization) *token.SyntaxPatterns {
	s := d.obj(m, "syntaxPatterns", path, false)
	if s == nil {
		return nil
	}
	sp := at(path, "syntaxPatterns")
	return &token.SyntaxPatterns{
		Prefix:         d.str(s, "prefix", sp, false),
		Suffix:         d.str(s, "suffix", sp, false),
		Delimiter:      d.enum(s, "delimiter", sp, false, token.Delimiters),
		Capitalization: token.Capitalization(d.enum(s, "capitalization", sp, false, enumStrings(caps))),
		FormatString:   d.str(s, "formatString", sp, false),
	}
}

func (d *decoder) valueFormatters(m map[string]any, path string) *token.ValueFormatters {
	f := d.obj(m, "valueFormatters", path, false)
	if f == nil {
		return nil
	}
	fp := at(path, "valueFormatters")
	vf := &token.ValueFormatters{
		ColorFormat:   d.enum(f, "colorFormat", fp, false, token.ColorFormats),
		DimensionUnit: d.enum(f, "dimensionUnit", fp, false, token.DimensionUnits),
	}
	if n := d.number(f, "numberPrecision", fp); n != nil {
		if *n != float64(int(*n)) || *n < 0 || *n > 10 {
			d.fail(at(fp, "numberPrecision"), fmt.Sprintf("invalid precision %v", *n), "use an integer between 0 and 10")
		} else {
			precision := int(*n)
			vf.NumberPrecision = &precision
		}
	}
	return vf
}

func (d *decoder) theme(m map[string]any, path string) token.Theme {
	t := token.Theme{
		ID:          d.id(m, "id", path, true),
		DisplayName: d.str(m, "displayName", path, true),
		Description: d.str(m, "description", path, false),
		Status:      token.Status(d.enum(m, "status", path, false, enumStrings(token.Statuses))),
	}
	if src := d.obj(m, "overrideSource", path, false); src != nil {
		t.OverrideSource = d.extensionSource(src, at(path, "overrideSource"))
	}
	return t
}

func (d *decoder) themeOverride(m map[string]any, path string) token.ThemeOverride {
	o := token.ThemeOverride{
		TokenID:           d.id(m, "tokenId", path, true),
		PlatformOverrides: d.platformOverrides(m, path),
	}
	if _, ok := m["value"]; ok || len(o.PlatformOverrides) == 0 {
		o.Value = d.value(m, "value", path)
	}
	return o
}

func (d *decoder) taxonomy(m map[string]any, path string) token.Taxonomy {
	t := token.Taxonomy{
		ID:          d.id(m, "id", path, true),
		Name:        d.str(m, "name", path, true),
		Description: d.str(m, "description", path, false),
	}
	d.objects(d.arr(m, "terms", path, true, true), at(path, "terms"), func(e map[string]any, p string) {
		t.Terms = append(t.Terms, token.Term{
			ID:          d.id(e, "id", p, true),
			Name:        d.str(e, "name", p, true),
			Description: d.str(e, "description", p, false),
		})
	})
	d.unique(at(path, "terms"), "term", idsOf(t.Terms, func(v token.Term) string { return v.ID }))
	return t
}

func idsOf[T any](items []T, id func(T) string) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = id(item)
	}
	return ids
}

func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
