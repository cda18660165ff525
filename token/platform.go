/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Capitalization controls how platform code names are cased.
type Capitalization string

const (
	CapitalizationNone       Capitalization = "none"
	CapitalizationUppercase  Capitalization = "uppercase"
	CapitalizationLowercase  Capitalization = "lowercase"
	CapitalizationCapitalize Capitalization = "capitalize"

	// CapitalizationCamel is only valid on platform extensions.
	CapitalizationCamel Capitalization = "camel"
)

// PlatformCapitalizations are valid on a Platform.
var PlatformCapitalizations = []Capitalization{
	CapitalizationNone,
	CapitalizationUppercase,
	CapitalizationLowercase,
	CapitalizationCapitalize,
}

// ExtensionCapitalizations are valid on a PlatformExtension.
var ExtensionCapitalizations = append([]Capitalization{CapitalizationCamel}, PlatformCapitalizations...)

// Delimiters lists the valid name delimiters.
var Delimiters = []string{"", "_", "-", ".", "/"}

// ColorFormats lists the valid color output formats.
var ColorFormats = []string{"hex", "rgb", "rgba", "hsl", "hsla"}

// DimensionUnits lists the valid dimension output units.
var DimensionUnits = []string{"px", "rem", "em", "pt", "dp", "sp"}

// Platform is a build target with its naming and formatting rules.
// SyntaxPatterns/ValueFormatters and ExtensionSource are mutually exclusive.
type Platform struct {
	ID          string `json:"id" yaml:"id"`
	DisplayName string `json:"displayName" yaml:"displayName"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	SyntaxPatterns  *SyntaxPatterns  `json:"syntaxPatterns,omitempty" yaml:"syntaxPatterns,omitempty"`
	ValueFormatters *ValueFormatters `json:"valueFormatters,omitempty" yaml:"valueFormatters,omitempty"`
	ExtensionSource *ExtensionSource `json:"extensionSource,omitempty" yaml:"extensionSource,omitempty"`
}

// SyntaxPatterns are platform naming rules.
type SyntaxPatterns struct {
	Prefix         string         `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Suffix         string         `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Delimiter      string         `json:"delimiter" yaml:"delimiter"`
	Capitalization Capitalization `json:"capitalization,omitempty" yaml:"capitalization,omitempty"`
	FormatString   string         `json:"formatString,omitempty" yaml:"formatString,omitempty"`
}

// ValueFormatters are platform value formatting rules.
type ValueFormatters struct {
	ColorFormat     string `json:"colorFormat,omitempty" yaml:"colorFormat,omitempty"`
	DimensionUnit   string `json:"dimensionUnit,omitempty" yaml:"dimensionUnit,omitempty"`
	NumberPrecision *int   `json:"numberPrecision,omitempty" yaml:"numberPrecision,omitempty"`
}

// ExtensionSource points at a platform's extension document.
type ExtensionSource struct {
	RepositoryURI string `json:"repositoryUri" yaml:"repositoryUri"`
	FilePath      string `json:"filePath" yaml:"filePath"`
}

// Extension is a platform overlay applied on top of the core catalog.
type Extension struct {
	SystemID     string             `json:"systemId" yaml:"systemId"`
	PlatformID   string             `json:"platformId" yaml:"platformId"`
	Version      string             `json:"version" yaml:"version"`
	FigmaFileKey string             `json:"figmaFileKey" yaml:"figmaFileKey"`
	Metadata     *ExtensionMetadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	SyntaxPatterns  *SyntaxPatterns  `json:"syntaxPatterns,omitempty" yaml:"syntaxPatterns,omitempty"`
	ValueFormatters *ValueFormatters `json:"valueFormatters,omitempty" yaml:"valueFormatters,omitempty"`

	TokenOverrides             []TokenOverride             `json:"tokenOverrides" yaml:"tokenOverrides"`
	AlgorithmVariableOverrides []AlgorithmVariableOverride `json:"algorithmVariableOverrides,omitempty" yaml:"algorithmVariableOverrides,omitempty"`
	OmittedModes               []string                    `json:"omittedModes" yaml:"omittedModes"`
	OmittedDimensions          []string                    `json:"omittedDimensions" yaml:"omittedDimensions"`

	// FilePath is the document the extension was loaded from.
	FilePath string `json:"-" yaml:"-"`
}

// ExtensionMetadata describes an extension document.
type ExtensionMetadata struct {
	Name                 string `json:"name" yaml:"name"`
	Description          string `json:"description,omitempty" yaml:"description,omitempty"`
	Maintainer           string `json:"maintainer,omitempty" yaml:"maintainer,omitempty"`
	LastUpdated          string `json:"lastUpdated,omitempty" yaml:"lastUpdated,omitempty"`
	RepositoryVisibility string `json:"repositoryVisibility,omitempty" yaml:"repositoryVisibility,omitempty"`
}

// TokenOverride overrides or adds a token for one platform.
// Empty scalar fields and nil pointers mean "keep the core value".
type TokenOverride struct {
	ID                  string            `json:"id" yaml:"id"`
	DisplayName         string            `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Description         string            `json:"description,omitempty" yaml:"description,omitempty"`
	ResolvedValueTypeID string            `json:"resolvedValueTypeId,omitempty" yaml:"resolvedValueTypeId,omitempty"`
	TokenTier           Tier              `json:"tokenTier,omitempty" yaml:"tokenTier,omitempty"`
	TokenCollectionID   string            `json:"tokenCollectionId,omitempty" yaml:"tokenCollectionId,omitempty"`
	Private             *bool             `json:"private,omitempty" yaml:"private,omitempty"`
	Themeable           *bool             `json:"themeable,omitempty" yaml:"themeable,omitempty"`
	Status              Status            `json:"status,omitempty" yaml:"status,omitempty"`
	Taxonomies          []TaxonomyRef     `json:"taxonomies,omitempty" yaml:"taxonomies,omitempty"`
	PropertyTypes       []string          `json:"propertyTypes,omitempty" yaml:"propertyTypes,omitempty"`
	CodeSyntax          map[string]string `json:"codeSyntax,omitempty" yaml:"codeSyntax,omitempty"`

	// Omit removes the token for this platform.
	Omit bool `json:"omit,omitempty" yaml:"omit,omitempty"`

	ValuesByMode []ModeValue `json:"valuesByMode,omitempty" yaml:"valuesByMode,omitempty"`
}

// AlgorithmVariableOverride replaces an algorithm input for one platform.
type AlgorithmVariableOverride struct {
	AlgorithmID  string      `json:"algorithmId" yaml:"algorithmId"`
	VariableID   string      `json:"variableId" yaml:"variableId"`
	ValuesByMode []ModeValue `json:"valuesByMode" yaml:"valuesByMode"`
}

// AsToken converts an override into a brand-new token.
func (o *TokenOverride) AsToken() Token {
	t := Token{
		ID:                  o.ID,
		DisplayName:         o.DisplayName,
		Description:         o.Description,
		ResolvedValueTypeID: o.ResolvedValueTypeID,
		TokenTier:           o.TokenTier,
		TokenCollectionID:   o.TokenCollectionID,
		Status:              o.Status,
		Taxonomies:          cloneSlice(o.Taxonomies),
		PropertyTypes:       cloneSlice(o.PropertyTypes),
		CodeSyntax:          cloneStringMap(o.CodeSyntax),
		ValuesByMode:        CloneModeValues(o.ValuesByMode),
	}
	if o.Private != nil {
		t.Private = *o.Private
	}
	if o.Themeable != nil {
		t.Themeable = *o.Themeable
	}
	if t.Taxonomies == nil {
		t.Taxonomies = []TaxonomyRef{}
	}
	return t
}
