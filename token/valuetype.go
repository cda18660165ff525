/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Standard value type kinds.
const (
	TypeColor         = "COLOR"
	TypeDimension     = "DIMENSION"
	TypeSpacing       = "SPACING"
	TypeFontFamily    = "FONT_FAMILY"
	TypeFontWeight    = "FONT_WEIGHT"
	TypeFontSize      = "FONT_SIZE"
	TypeLineHeight    = "LINE_HEIGHT"
	TypeLetterSpacing = "LETTER_SPACING"
	TypeDuration      = "DURATION"
	TypeCubicBezier   = "CUBIC_BEZIER"
	TypeBlur          = "BLUR"
	TypeSpread        = "SPREAD"
	TypeRadius        = "RADIUS"
	TypeNumber        = "NUMBER"
	TypeString        = "STRING"
	TypeBoolean       = "BOOLEAN"
)

// StandardTypes lists every recognized value type kind.
var StandardTypes = []string{
	TypeColor, TypeDimension, TypeSpacing, TypeFontFamily, TypeFontWeight,
	TypeFontSize, TypeLineHeight, TypeLetterSpacing, TypeDuration,
	TypeCubicBezier, TypeBlur, TypeSpread, TypeRadius, TypeNumber,
	TypeString, TypeBoolean,
}

// ValueType is a named primitive kind with optional validation rules.
type ValueType struct {
	ID          string `json:"id" yaml:"id"`
	DisplayName string `json:"displayName" yaml:"displayName"`

	// Type is the standard kind, e.g. COLOR. Empty for custom types.
	Type        string           `json:"type,omitempty" yaml:"type,omitempty"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Validation  *ValueValidation `json:"validation,omitempty" yaml:"validation,omitempty"`
}

// ValueValidation constrains the literal values of a ValueType.
type ValueValidation struct {
	Pattern       string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Minimum       *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum       *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	AllowedValues []any    `json:"allowedValues,omitempty" yaml:"allowedValues,omitempty"`
}

// IsDimensional reports whether the kind carries a length.
func IsDimensional(kind string) bool {
	switch kind {
	case TypeDimension, TypeSpacing, TypeFontSize, TypeLetterSpacing,
		TypeBlur, TypeSpread, TypeRadius:
		return true
	default:
		return false
	}
}
