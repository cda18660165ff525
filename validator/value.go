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
	"strings"

	"bennypowers.dev/strata/token"
	"github.com/mazznoer/csscolorparser"
)

var (
	lengthPattern   = regexp.MustCompile(`^-?\d+(\.\d+)?(px|rem|em|pt|dp|sp|%|vw|vh)?$`)
	durationPattern = regexp.MustCompile(`^\d+(\.\d+)?(ms|s)$`)
	durationUnits   = []string{"ms", "s"}
)

// fontWeightKeywords are the named weights accepted in place of a number.
var fontWeightKeywords = []string{
	"thin", "hairline", "extra-light", "ultra-light", "light", "normal", "regular",
	"book", "medium", "semi-bold", "demi-bold", "bold", "extra-bold", "ultra-bold",
	"black", "heavy", "extra-black", "ultra-black",
}

// checkValue validates a literal value against its value type.
// Aliases are skipped; reference checks belong to the integrity checker.
func (d *decoder) checkValue(path string, v token.Value, vt *token.ValueType) {
	if v.IsZero() || v.IsAlias() {
		return
	}
	if msg := kindMismatch(v, vt.Type); msg != "" {
		d.fail(path, msg, fmt.Sprintf("value type %q is %s", vt.ID, vt.Type))
		return
	}
	if vt.Validation == nil {
		return
	}
	rules := vt.Validation
	if rules.Pattern != "" && v.Kind == token.KindString {
		if re, err := regexp.Compile(rules.Pattern); err == nil && !re.MatchString(v.Str) {
			d.fail(path, fmt.Sprintf("%q does not match pattern %s", v.Str, rules.Pattern), "")
		}
	}
	if n, ok := magnitude(v); ok {
		if rules.Minimum != nil && n < *rules.Minimum {
			d.fail(path, fmt.Sprintf("%s is below the minimum %v", v, *rules.Minimum), "")
		}
		if rules.Maximum != nil && n > *rules.Maximum {
			d.fail(path, fmt.Sprintf("%s is above the maximum %v", v, *rules.Maximum), "")
		}
	}
	if len(rules.AllowedValues) > 0 && !allowed(v, rules.AllowedValues) {
		d.fail(path, fmt.Sprintf("%s is not an allowed value", v), fmt.Sprintf("allowed values: %v", rules.AllowedValues))
	}
}

// kindMismatch returns a message when the value's shape cannot represent the type.
func kindMismatch(v token.Value, kind string) string {
	switch {
	case kind == token.TypeColor:
		if v.Kind != token.KindString {
			return fmt.Sprintf("expected a color string, got %s", v.Kind)
		}
		if _, err := csscolorparser.Parse(v.Str); err != nil {
			return fmt.Sprintf("invalid color %q", v.Str)
		}
	case token.IsDimensional(kind):
		switch v.Kind {
		case token.KindNumber, token.KindDimension:
		case token.KindString:
			if !lengthPattern.MatchString(strings.TrimSpace(v.Str)) {
				return fmt.Sprintf("invalid length %q", v.Str)
			}
		default:
			return fmt.Sprintf("expected a length, got %s", v.Kind)
		}
	case kind == token.TypeDuration:
		switch v.Kind {
		case token.KindNumber:
		case token.KindDimension:
			if !slices.Contains(durationUnits, v.Unit) {
				return fmt.Sprintf("invalid duration unit %q", v.Unit)
			}
		case token.KindString:
			if !durationPattern.MatchString(v.Str) {
				return fmt.Sprintf("invalid duration %q", v.Str)
			}
		default:
			return fmt.Sprintf("expected a duration, got %s", v.Kind)
		}
	case kind == token.TypeCubicBezier:
		if v.Kind != token.KindCubicBezier {
			return fmt.Sprintf("expected four numbers, got %s", v.Kind)
		}
		for _, x := range []float64{v.Bezier[0], v.Bezier[2]} {
			if x < 0 || x > 1 {
				return fmt.Sprintf("cubic bezier x coordinate %v is outside [0, 1]", x)
			}
		}
	case kind == token.TypeFontWeight:
		switch v.Kind {
		case token.KindNumber:
			if v.Num < 1 || v.Num > 1000 {
				return fmt.Sprintf("font weight %v is outside [1, 1000]", v.Num)
			}
		case token.KindString:
			if !slices.Contains(fontWeightKeywords, strings.ToLower(v.Str)) {
				return fmt.Sprintf("unknown font weight %q", v.Str)
			}
		default:
			return fmt.Sprintf("expected a font weight, got %s", v.Kind)
		}
	case kind == token.TypeLineHeight:
		if v.Kind != token.KindNumber && v.Kind != token.KindDimension && v.Kind != token.KindString {
			return fmt.Sprintf("expected a line height, got %s", v.Kind)
		}
	case kind == token.TypeNumber:
		if v.Kind != token.KindNumber {
			return fmt.Sprintf("expected a number, got %s", v.Kind)
		}
	case kind == token.TypeFontFamily:
		if v.Kind != token.KindString && !isStringList(v) {
			return fmt.Sprintf("expected a font family, got %s", v.Kind)
		}
	case kind == token.TypeString:
		if v.Kind != token.KindString {
			return fmt.Sprintf("expected a string, got %s", v.Kind)
		}
	case kind == token.TypeBoolean:
		if v.Kind != token.KindBoolean {
			return fmt.Sprintf("expected a boolean, got %s", v.Kind)
		}
	}
	return ""
}

func magnitude(v token.Value) (float64, bool) {
	switch v.Kind {
	case token.KindNumber, token.KindDimension:
		return v.Num, true
	default:
		return 0, false
	}
}

func allowed(v token.Value, values []any) bool {
	for _, a := range values {
		if v.Equal(token.FromAny(a)) {
			return true
		}
	}
	return false
}

func isStringList(v token.Value) bool {
	items, ok := v.Raw.([]any)
	if v.Kind != token.KindRaw || !ok || len(items) == 0 {
		return false
	}
	for _, item := range items {
		if _, ok := item.(string); !ok {
			return false
		}
	}
	return true
}
