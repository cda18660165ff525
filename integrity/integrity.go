/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package integrity checks cross-entity references in a schema-valid token system.
//
// Every check is a pure function returning human-readable violations,
// sorted, with an empty list meaning the system is consistent.
package integrity

import (
	"fmt"
	"slices"

	"bennypowers.dev/strata/resolver"
	"bennypowers.dev/strata/token"
)

// TaxonomyRefs reports token taxonomy references that do not resolve
// to an existing taxonomy and term.
func TaxonomyRefs(sys *token.System) []string {
	var violations []string
	for _, t := range sys.Tokens {
		for _, ref := range t.Taxonomies {
			tax, ok := sys.Taxonomy(ref.TaxonomyID)
			switch {
			case !ok:
				violations = append(violations, fmt.Sprintf(
					"token %q references unknown taxonomy %q", t.ID, ref.TaxonomyID))
			case !tax.HasTerm(ref.TermID):
				violations = append(violations, fmt.Sprintf(
					"token %q references unknown term %q in taxonomy %q", t.ID, ref.TermID, ref.TaxonomyID))
			}
		}
	}
	return sorted(violations)
}

// CollectionTypes reports tokens placed in a missing collection or in a
// collection that does not accept their value type, and collection
// resolution strategies that prioritize undeclared dimensions.
func CollectionTypes(sys *token.System) []string {
	var violations []string
	for _, t := range sys.Tokens {
		if t.TokenCollectionID == "" {
			continue
		}
		c, ok := sys.Collection(t.TokenCollectionID)
		if !ok {
			violations = append(violations, fmt.Sprintf(
				"token %q references unknown collection %q", t.ID, t.TokenCollectionID))
			continue
		}
		if !c.Accepts(t.ResolvedValueTypeID) {
			violations = append(violations, fmt.Sprintf(
				"token %q has value type %q, which collection %q does not accept (accepts %v)",
				t.ID, t.ResolvedValueTypeID, c.ID, c.ResolvedValueTypeIDs))
		}
	}
	for _, c := range sys.TokenCollections {
		if c.ModeResolutionStrategy == nil {
			continue
		}
		for _, dimID := range c.ModeResolutionStrategy.PriorityByType {
			if _, ok := sys.Dimension(dimID); !ok {
				violations = append(violations, fmt.Sprintf(
					"collection %q prioritizes unknown dimension %q", c.ID, dimID))
			}
		}
	}
	return sorted(violations)
}

// ValueTypeRefs reports value type ids that name no declared ResolvedValueType.
func ValueTypeRefs(sys *token.System) []string {
	var violations []string
	check := func(owner, id string) {
		if _, ok := sys.ValueType(id); !ok {
			violations = append(violations, fmt.Sprintf("%s references unknown value type %q", owner, id))
		}
	}
	for _, t := range sys.Tokens {
		check(fmt.Sprintf("token %q", t.ID), t.ResolvedValueTypeID)
	}
	for _, c := range sys.TokenCollections {
		for _, id := range c.ResolvedValueTypeIDs {
			check(fmt.Sprintf("collection %q", c.ID), id)
		}
	}
	for _, d := range sys.Dimensions {
		for _, id := range d.ResolvedValueTypeIDs {
			check(fmt.Sprintf("dimension %q", d.ID), id)
		}
	}
	return sorted(violations)
}

// ModeRefs reports mode ids that belong to no declared dimension, and
// omitted dimensions that are not declared. It covers core token values,
// token overrides, algorithm variable overrides and omission lists.
func ModeRefs(sys *token.System, exts []*token.Extension) []string {
	known := make(map[string]bool)
	for _, d := range sys.Dimensions {
		for _, m := range d.Modes {
			known[m.ID] = true
		}
	}

	var violations []string
	checkValues := func(owner string, values []token.ModeValue) {
		for _, mv := range values {
			for _, id := range mv.ModeIDs {
				if !known[id] {
					violations = append(violations, fmt.Sprintf("%s references unknown mode %q", owner, id))
				}
			}
		}
	}

	for _, t := range sys.Tokens {
		checkValues(fmt.Sprintf("token %q", t.ID), t.ValuesByMode)
	}
	for _, ext := range exts {
		for _, o := range ext.TokenOverrides {
			checkValues(fmt.Sprintf("platform %q override of token %q", ext.PlatformID, o.ID), o.ValuesByMode)
		}
		for _, a := range ext.AlgorithmVariableOverrides {
			checkValues(fmt.Sprintf("platform %q override of algorithm variable %q/%q", ext.PlatformID, a.AlgorithmID, a.VariableID), a.ValuesByMode)
		}
		for _, id := range ext.OmittedModes {
			if !known[id] {
				violations = append(violations, fmt.Sprintf("platform %q omits unknown mode %q", ext.PlatformID, id))
			}
		}
		for _, id := range ext.OmittedDimensions {
			if _, ok := sys.Dimension(id); !ok {
				violations = append(violations, fmt.Sprintf("platform %q omits unknown dimension %q", ext.PlatformID, id))
			}
		}
	}
	return sorted(violations)
}

// RequiredModes reports mode-specific tokens that leave a mode of a
// required dimension without a value. Tokens with a global value cover every mode.
func RequiredModes(sys *token.System) []string {
	var violations []string
	for _, t := range sys.Tokens {
		if t.HasGlobalValue() {
			continue
		}
		covered := make(map[string]bool)
		for _, mv := range t.ValuesByMode {
			for _, id := range mv.ModeIDs {
				covered[id] = true
			}
		}
		for _, d := range sys.Dimensions {
			if !d.Required || !addresses(d, covered) {
				continue
			}
			for _, m := range d.Modes {
				if !covered[m.ID] {
					violations = append(violations, fmt.Sprintf(
						"token %q has no value for mode %q of required dimension %q", t.ID, m.ID, d.ID))
				}
			}
		}
	}
	return sorted(violations)
}

// addresses reports whether a token uses any mode of the dimension.
// Tokens that vary along other dimensions only are not held to it.
func addresses(d token.Dimension, covered map[string]bool) bool {
	for _, m := range d.Modes {
		if covered[m.ID] {
			return true
		}
	}
	return false
}

// AliasRefs reports aliases to missing tokens and alias cycles.
func AliasRefs(sys *token.System) []string {
	graph := resolver.BuildDependencyGraph(sys.Tokens)
	var violations []string
	for _, ref := range graph.Unresolved() {
		violations = append(violations, fmt.Sprintf("token %q aliases unknown token %q", ref.From, ref.To))
	}
	if cycle := graph.FindCycle(); cycle != nil {
		violations = append(violations, fmt.Sprintf("circular alias: %v", cycle))
	}
	return sorted(violations)
}

// ThemeRefs reports theme override buckets and theme files naming an
// undeclared theme. Systems that declare no themes accept any theme id.
func ThemeRefs(sys *token.System, themeFiles []*token.ThemeOverrideFile) []string {
	if len(sys.Themes) == 0 {
		return nil
	}
	declared := make(map[string]bool, len(sys.Themes))
	for _, th := range sys.Themes {
		declared[th.ID] = true
	}
	var violations []string
	for _, id := range sys.ThemeOverrides.ThemeIDs() {
		if !declared[id] {
			violations = append(violations, fmt.Sprintf("theme overrides reference undeclared theme %q", id))
		}
	}
	for _, f := range themeFiles {
		if !declared[f.ThemeID] {
			violations = append(violations, fmt.Sprintf("theme file %s references undeclared theme %q", describeFile(f.FilePath), f.ThemeID))
		}
	}
	return sorted(violations)
}

// SystemRefs reports extensions and theme files written for another system.
func SystemRefs(sys *token.System, exts []*token.Extension, themeFiles []*token.ThemeOverrideFile) []string {
	var violations []string
	for _, ext := range exts {
		if ext.SystemID != sys.SystemID {
			violations = append(violations, fmt.Sprintf(
				"platform %q extension targets system %q, not %q", ext.PlatformID, ext.SystemID, sys.SystemID))
		}
	}
	for _, f := range themeFiles {
		if f.SystemID != sys.SystemID {
			violations = append(violations, fmt.Sprintf(
				"theme %q overrides target system %q, not %q", f.ThemeID, f.SystemID, sys.SystemID))
		}
	}
	return sorted(violations)
}

func describeFile(path string) string {
	if path == "" {
		return "(inline)"
	}
	return path
}

func sorted(violations []string) []string {
	slices.Sort(violations)
	return slices.Compact(violations)
}
