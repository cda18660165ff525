/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the design token system data model.
package token

import (
	"slices"
	"strings"
)

// Tier classifies a token's role in the system.
type Tier string

const (
	// TierPrimitive tokens hold raw palette values.
	TierPrimitive Tier = "PRIMITIVE"

	// TierSemantic tokens express intent and usually alias primitives.
	TierSemantic Tier = "SEMANTIC"

	// TierComponent tokens are scoped to a single component.
	TierComponent Tier = "COMPONENT"
)

// Tiers lists every valid tier.
var Tiers = []Tier{TierPrimitive, TierSemantic, TierComponent}

// Status is a token's lifecycle status.
type Status string

const (
	StatusExperimental Status = "experimental"
	StatusStable       Status = "stable"
	StatusDeprecated   Status = "deprecated"
)

// Statuses lists every valid status.
var Statuses = []Status{StatusExperimental, StatusStable, StatusDeprecated}

// Token is a named, typed design value, possibly varying by mode combination.
type Token struct {
	// ID is the token's identifier (e.g., "color.brand.primary").
	ID string `json:"id" yaml:"id"`

	// DisplayName is the human-readable name.
	DisplayName string `json:"displayName" yaml:"displayName"`

	// Description is optional documentation for the token.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// ResolvedValueTypeID names the ValueType of every value in ValuesByMode.
	ResolvedValueTypeID string `json:"resolvedValueTypeId" yaml:"resolvedValueTypeId"`

	// TokenTier is the token's role classification.
	TokenTier Tier `json:"tokenTier" yaml:"tokenTier"`

	// TokenCollectionID optionally places the token in a collection.
	TokenCollectionID string `json:"tokenCollectionId,omitempty" yaml:"tokenCollectionId,omitempty"`

	Private   bool   `json:"private,omitempty" yaml:"private,omitempty"`
	Themeable bool   `json:"themeable,omitempty" yaml:"themeable,omitempty"`
	Status    Status `json:"status,omitempty" yaml:"status,omitempty"`

	// Taxonomies are controlled-vocabulary classifications.
	Taxonomies []TaxonomyRef `json:"taxonomies" yaml:"taxonomies"`

	// PropertyTypes lists the style properties the token applies to.
	PropertyTypes []string `json:"propertyTypes,omitempty" yaml:"propertyTypes,omitempty"`

	// CodeSyntax maps platform id to an explicit code name.
	CodeSyntax map[string]string `json:"codeSyntax,omitempty" yaml:"codeSyntax,omitempty"`

	// GeneratedByAlgorithm marks tokens produced by the generation subsystem.
	GeneratedByAlgorithm bool   `json:"generatedByAlgorithm,omitempty" yaml:"generatedByAlgorithm,omitempty"`
	AlgorithmID          string `json:"algorithmId,omitempty" yaml:"algorithmId,omitempty"`

	// ValuesByMode holds either one global entry or one entry per mode combination.
	ValuesByMode []ModeValue `json:"valuesByMode" yaml:"valuesByMode"`
}

// TaxonomyRef points at a term in a taxonomy.
type TaxonomyRef struct {
	TaxonomyID string `json:"taxonomyId" yaml:"taxonomyId"`
	TermID     string `json:"termId" yaml:"termId"`
}

// ModeValue is the value of a token for one mode combination.
type ModeValue struct {
	// ModeIDs is the mode combination; empty means the single global value.
	ModeIDs []string `json:"modeIds" yaml:"modeIds"`

	Value Value `json:"value" yaml:"value"`

	PlatformOverrides []PlatformOverride `json:"platformOverrides,omitempty" yaml:"platformOverrides,omitempty"`

	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// PlatformOverride is a platform-specific replacement value.
type PlatformOverride struct {
	PlatformID string `json:"platformId" yaml:"platformId"`
	Value      Value  `json:"value" yaml:"value"`
}

// IsGlobal reports whether the entry applies to every mode.
func (mv ModeValue) IsGlobal() bool {
	return len(mv.ModeIDs) == 0
}

// ModeKey returns an order-independent key for the entry's mode set.
func (mv ModeValue) ModeKey() string {
	return ModeSetKey(mv.ModeIDs)
}

// ModeSetKey returns an order-independent key for a set of mode ids.
func ModeSetKey(modeIDs []string) string {
	sorted := slices.Clone(modeIDs)
	slices.Sort(sorted)
	return strings.Join(sorted, "\x00")
}

// SameModeSet compares two mode id lists as sets.
func SameModeSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	return ModeSetKey(a) == ModeSetKey(b)
}

// HasGlobalValue reports whether the token uses the single-global-value shape.
func (t *Token) HasGlobalValue() bool {
	return len(t.ValuesByMode) == 1 && t.ValuesByMode[0].IsGlobal()
}

// ValueFor returns the entry matching a mode set exactly.
func (t *Token) ValueFor(modeIDs []string) (ModeValue, bool) {
	key := ModeSetKey(modeIDs)
	for _, mv := range t.ValuesByMode {
		if mv.ModeKey() == key {
			return mv, true
		}
	}
	return ModeValue{}, false
}

// IsDeprecated reports whether the token should no longer be used.
func (t *Token) IsDeprecated() bool {
	return t.Status == StatusDeprecated
}
