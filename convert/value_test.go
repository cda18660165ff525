/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert_test

import (
	"testing"

	"bennypowers.dev/strata/convert"
	"bennypowers.dev/strata/token"
)

func intPtr(n int) *int { return &n }

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		value    token.Value
		kind     string
		vf       *token.ValueFormatters
		expected string
	}{
		{"nil formatters", token.StringValue("#FF0000"), token.TypeColor, nil, "#FF0000"},
		{"hex", token.StringValue("rgb(0, 128, 255)"), token.TypeColor, &token.ValueFormatters{ColorFormat: "hex"}, "#0080ff"},
		{"rgb", token.StringValue("#ff0000"), token.TypeColor, &token.ValueFormatters{ColorFormat: "rgb"}, "rgb(255, 0, 0)"},
		{"rgba", token.StringValue("#ff0000"), token.TypeColor, &token.ValueFormatters{ColorFormat: "rgba"}, "rgba(255, 0, 0, 1)"},
		{"hsl", token.StringValue("#ff0000"), token.TypeColor, &token.ValueFormatters{ColorFormat: "hsl"}, "hsl(0, 100%, 50%)"},
		{"hsla", token.StringValue("#ff0000"), token.TypeColor, &token.ValueFormatters{ColorFormat: "hsla"}, "hsla(0, 100%, 50%, 1)"},
		{"unparseable color", token.StringValue("brandish"), token.TypeColor, &token.ValueFormatters{ColorFormat: "hex"}, "brandish"},
		{"string of other kind", token.StringValue("#ff0000"), token.TypeString, &token.ValueFormatters{ColorFormat: "rgb"}, "#ff0000"},
		{"px to rem", token.DimensionValue(24, "px"), token.TypeSpacing, &token.ValueFormatters{DimensionUnit: "rem"}, "1.5rem"},
		{"rem to px", token.DimensionValue(1.5, "rem"), token.TypeSpacing, &token.ValueFormatters{DimensionUnit: "px"}, "24px"},
		{"unconvertible unit", token.DimensionValue(10, "%"), token.TypeSpacing, &token.ValueFormatters{DimensionUnit: "rem"}, "10%"},
		{"dimension precision", token.DimensionValue(10, "px"), token.TypeSpacing, &token.ValueFormatters{DimensionUnit: "rem", NumberPrecision: intPtr(2)}, "0.63rem"},
		{"number precision", token.NumberValue(1.23456), token.TypeNumber, &token.ValueFormatters{NumberPrecision: intPtr(2)}, "1.23"},
		{"zero precision", token.NumberValue(2.5), token.TypeNumber, &token.ValueFormatters{NumberPrecision: intPtr(0)}, "3"},
		{"cubic bezier", token.CubicBezierValue(0.4, 0, 0.2, 1), token.TypeCubicBezier, nil, "cubic-bezier(0.4, 0, 0.2, 1)"},
		{"boolean", token.BoolValue(true), token.TypeBoolean, nil, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := convert.FormatValue(tt.value, tt.kind, tt.vf)
			if result != tt.expected {
				t.Errorf("FormatValue(%v) = %q, expected %q", tt.value, result, tt.expected)
			}
		})
	}
}

func TestPlatformName(t *testing.T) {
	tests := []struct {
		id       string
		sp       *token.SyntaxPatterns
		expected string
	}{
		{"color.brand.primary", nil, "color-brand-primary"},
		{"color.brand.primary", &token.SyntaxPatterns{Delimiter: "_", Capitalization: token.CapitalizationUppercase}, "COLOR_BRAND_PRIMARY"},
		{"color.brand.primary", &token.SyntaxPatterns{Capitalization: token.CapitalizationCapitalize}, "ColorBrandPrimary"},
		{"color.brand.primary", &token.SyntaxPatterns{Capitalization: token.CapitalizationCamel}, "colorBrandPrimary"},
		{"color.brandPrimary", &token.SyntaxPatterns{Delimiter: "_", Capitalization: token.CapitalizationLowercase}, "color_brand_primary"},
		{"Color.Brand", &token.SyntaxPatterns{Delimiter: ".", Capitalization: token.CapitalizationNone}, "Color.Brand"},
		{"color.brand", &token.SyntaxPatterns{Prefix: "$", Suffix: "-token", Delimiter: "-"}, "$color-brand-token"},
		{"color.brand", &token.SyntaxPatterns{Prefix: "--", Delimiter: "-", FormatString: "var({name})"}, "var(--color-brand)"},
		{"color.brand", &token.SyntaxPatterns{Delimiter: "-", FormatString: "no placeholder"}, "color-brand"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := convert.PlatformName(tt.id, tt.sp)
			if result != tt.expected {
				t.Errorf("PlatformName(%q) = %q, expected %q", tt.id, result, tt.expected)
			}
		})
	}
}
