/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package merge layers platform extensions and theme overrides onto a core
// token system.
//
// Layers apply in a fixed order: core, then each platform extension in the
// order given, then themes. Merge never mutates its inputs and keeps no
// state between calls, so concurrent calls need no coordination.
package merge

import (
	"fmt"
	"maps"
	"slices"

	"bennypowers.dev/strata/integrity"
	"bennypowers.dev/strata/schema"
	"bennypowers.dev/strata/token"
)

// Options restricts and tunes a merge.
type Options struct {
	// TargetPlatformID restricts the platform layer to one extension.
	TargetPlatformID string

	// TargetThemeID restricts the theme layer to one theme.
	TargetThemeID string

	// IncludeOmitted keeps tokens that extensions mark with omit.
	IncludeOmitted bool
}

// MergedData is the result of one merge.
type MergedData struct {
	Core               *token.System         `json:"core" yaml:"core"`
	PlatformExtensions []*token.Extension    `json:"platformExtensions" yaml:"platformExtensions"`
	ThemeOverrides     token.ThemeOverrides  `json:"themeOverrides" yaml:"themeOverrides"`
	MergedTokens       []token.Token         `json:"mergedTokens" yaml:"mergedTokens"`
	MergedPlatforms    []token.Platform      `json:"mergedPlatforms" yaml:"mergedPlatforms"`
	OmittedModes       []string              `json:"omittedModes" yaml:"omittedModes"`
	OmittedDimensions  []string              `json:"omittedDimensions" yaml:"omittedDimensions"`

	// PlatformOmittedTokens lists the core tokens removed by an extension's omit flag.
	PlatformOmittedTokens []string `json:"platformOmittedTokens" yaml:"platformOmittedTokens"`

	Analytics Analytics `json:"analytics" yaml:"analytics"`
}

// Token returns the merged token with the given id.
func (m *MergedData) Token(id string) (*token.Token, bool) {
	for i := range m.MergedTokens {
		if m.MergedTokens[i].ID == id {
			return &m.MergedTokens[i], true
		}
	}
	return nil, false
}

// Platform returns the merged platform with the given id.
func (m *MergedData) Platform(id string) (*token.Platform, bool) {
	for i := range m.MergedPlatforms {
		if m.MergedPlatforms[i].ID == id {
			return &m.MergedPlatforms[i], true
		}
	}
	return nil, false
}

// Merge resolves the core system, platform extensions and theme overrides
// into one catalog.
//
// The only error is a precondition failure: a missing or duplicate
// figmaFileKey among the extensions aborts the merge before any layer is
// applied. Every other anomaly is counted in the analytics and skipped.
// A nil themes map applies no theme layer; pass core.ThemeOverrides to use
// the themes embedded in the system.
func Merge(core *token.System, exts []*token.Extension, themes token.ThemeOverrides, opts Options) (*MergedData, error) {
	if core == nil {
		return nil, fmt.Errorf("%w: core system is nil", schema.ErrInvalidDocument)
	}
	if err := integrity.RequireUniqueFileKeys(exts); err != nil {
		return nil, err
	}

	applied := filterExtensions(exts, opts.TargetPlatformID)
	themes = filterThemes(themes, opts.TargetThemeID)

	w := newWorkingSet(core)
	for _, ext := range applied {
		w.applyExtension(ext, opts.IncludeOmitted)
	}
	excluded := w.applyThemes(themes)

	data := &MergedData{
		Core:                  core,
		PlatformExtensions:    applied,
		ThemeOverrides:        themes,
		MergedTokens:          w.tokens,
		MergedPlatforms:       w.platforms,
		OmittedModes:          w.omittedModes.items,
		OmittedDimensions:     w.omittedDimensions.items,
		PlatformOmittedTokens: w.omittedTokens.items,
	}
	data.Analytics = analyze(core.Tokens, data.MergedTokens)
	data.Analytics.PlatformCount = len(applied)
	data.Analytics.ThemeCount = len(themes)
	data.Analytics.TotalThemeOverrides = themes.Count()
	data.Analytics.ExcludedThemeOverrides = excluded
	data.Analytics.ValidThemeOverrides = data.Analytics.TotalThemeOverrides - excluded
	return data, nil
}

func filterExtensions(exts []*token.Extension, platformID string) []*token.Extension {
	applied := make([]*token.Extension, 0, len(exts))
	for _, ext := range exts {
		if platformID == "" || ext.PlatformID == platformID {
			applied = append(applied, ext)
		}
	}
	return applied
}

func filterThemes(themes token.ThemeOverrides, themeID string) token.ThemeOverrides {
	filtered := make(token.ThemeOverrides)
	for _, id := range slices.Sorted(maps.Keys(themes)) {
		if themeID == "" || id == themeID {
			filtered[id] = themes[id]
		}
	}
	return filtered
}

// orderedSet is an insertion-ordered set of strings.
type orderedSet struct {
	items []string
	seen  map[string]bool
}

func newOrderedSet() *orderedSet {
	return &orderedSet{items: []string{}, seen: make(map[string]bool)}
}

func (s *orderedSet) add(values ...string) {
	for _, v := range values {
		if !s.seen[v] {
			s.seen[v] = true
			s.items = append(s.items, v)
		}
	}
}

func (s *orderedSet) has(v string) bool {
	return s.seen[v]
}

func (s *orderedSet) remove(v string) {
	if !s.seen[v] {
		return
	}
	delete(s.seen, v)
	s.items = slices.DeleteFunc(s.items, func(item string) bool { return item == v })
}
