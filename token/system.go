/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// System is the root aggregate of a design token catalog.
type System struct {
	SystemName     string         `json:"systemName" yaml:"systemName"`
	SystemID       string         `json:"systemId" yaml:"systemId"`
	Description    string         `json:"description,omitempty" yaml:"description,omitempty"`
	Version        string         `json:"version" yaml:"version"`
	VersionHistory []VersionEntry `json:"versionHistory" yaml:"versionHistory"`

	Dimensions     []Dimension `json:"dimensions" yaml:"dimensions"`
	DimensionOrder []string    `json:"dimensionOrder,omitempty" yaml:"dimensionOrder,omitempty"`

	TokenCollections []Collection `json:"tokenCollections" yaml:"tokenCollections"`
	Tokens           []Token      `json:"tokens" yaml:"tokens"`
	Platforms        []Platform   `json:"platforms" yaml:"platforms"`

	Themes         []Theme        `json:"themes,omitempty" yaml:"themes,omitempty"`
	ThemeOverrides ThemeOverrides `json:"themeOverrides,omitempty" yaml:"themeOverrides,omitempty"`

	Taxonomies    []Taxonomy `json:"taxonomies" yaml:"taxonomies"`
	TaxonomyOrder []string   `json:"taxonomyOrder,omitempty" yaml:"taxonomyOrder,omitempty"`

	ResolvedValueTypes []ValueType `json:"resolvedValueTypes" yaml:"resolvedValueTypes"`

	// FilePath is the document the system was loaded from.
	FilePath string `json:"-" yaml:"-"`
}

// VersionEntry records one release of the system.
type VersionEntry struct {
	Version           string   `json:"version" yaml:"version"`
	Dimensions        []string `json:"dimensions" yaml:"dimensions"`
	Date              string   `json:"date" yaml:"date"`
	MigrationStrategy string   `json:"migrationStrategy,omitempty" yaml:"migrationStrategy,omitempty"`
}

// Token returns the token with the given id.
func (s *System) Token(id string) (*Token, bool) {
	for i := range s.Tokens {
		if s.Tokens[i].ID == id {
			return &s.Tokens[i], true
		}
	}
	return nil, false
}

// Dimension returns the dimension with the given id.
func (s *System) Dimension(id string) (*Dimension, bool) {
	for i := range s.Dimensions {
		if s.Dimensions[i].ID == id {
			return &s.Dimensions[i], true
		}
	}
	return nil, false
}

// Collection returns the collection with the given id.
func (s *System) Collection(id string) (*Collection, bool) {
	for i := range s.TokenCollections {
		if s.TokenCollections[i].ID == id {
			return &s.TokenCollections[i], true
		}
	}
	return nil, false
}

// Platform returns the platform with the given id.
func (s *System) Platform(id string) (*Platform, bool) {
	for i := range s.Platforms {
		if s.Platforms[i].ID == id {
			return &s.Platforms[i], true
		}
	}
	return nil, false
}

// Taxonomy returns the taxonomy with the given id.
func (s *System) Taxonomy(id string) (*Taxonomy, bool) {
	for i := range s.Taxonomies {
		if s.Taxonomies[i].ID == id {
			return &s.Taxonomies[i], true
		}
	}
	return nil, false
}

// ValueType returns the resolved value type with the given id.
func (s *System) ValueType(id string) (*ValueType, bool) {
	for i := range s.ResolvedValueTypes {
		if s.ResolvedValueTypes[i].ID == id {
			return &s.ResolvedValueTypes[i], true
		}
	}
	return nil, false
}

// OrderedDimensions returns dimensions in DimensionOrder when present,
// followed by any dimension the order does not name.
func (s *System) OrderedDimensions() []Dimension {
	if len(s.DimensionOrder) == 0 {
		return cloneSlice(s.Dimensions)
	}
	result := make([]Dimension, 0, len(s.Dimensions))
	seen := make(map[string]bool, len(s.Dimensions))
	for _, id := range s.DimensionOrder {
		if d, ok := s.Dimension(id); ok && !seen[id] {
			result = append(result, *d)
			seen[id] = true
		}
	}
	for _, d := range s.Dimensions {
		if !seen[d.ID] {
			result = append(result, d)
		}
	}
	return result
}
