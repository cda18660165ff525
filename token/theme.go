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

// Theme is a named set of alternate token values.
type Theme struct {
	ID             string           `json:"id" yaml:"id"`
	DisplayName    string           `json:"displayName" yaml:"displayName"`
	Description    string           `json:"description,omitempty" yaml:"description,omitempty"`
	OverrideSource *ExtensionSource `json:"overrideSource,omitempty" yaml:"overrideSource,omitempty"`
	Status         Status           `json:"status,omitempty" yaml:"status,omitempty"`
}

// ThemeOverride selects an alternate value for one token.
type ThemeOverride struct {
	TokenID           string             `json:"tokenId" yaml:"tokenId"`
	Value             Value              `json:"value" yaml:"value"`
	PlatformOverrides []PlatformOverride `json:"platformOverrides,omitempty" yaml:"platformOverrides,omitempty"`
}

// ThemeOverrides maps theme id to that theme's overrides.
type ThemeOverrides map[string][]ThemeOverride

// ThemeIDs returns the theme ids in sorted order.
func (t ThemeOverrides) ThemeIDs() []string {
	return slices.Sorted(maps.Keys(t))
}

// Count returns the total number of overrides across themes.
func (t ThemeOverrides) Count() int {
	n := 0
	for _, list := range t {
		n += len(list)
	}
	return n
}

// ThemeOverrideFile is a standalone theme override document.
type ThemeOverrideFile struct {
	SystemID     string          `json:"systemId" yaml:"systemId"`
	ThemeID      string          `json:"themeId" yaml:"themeId"`
	FigmaFileKey string          `json:"figmaFileKey" yaml:"figmaFileKey"`
	Overrides    []ThemeOverride `json:"overrides" yaml:"overrides"`

	// FilePath is the document the overrides were loaded from.
	FilePath string `json:"-" yaml:"-"`
}
