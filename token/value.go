/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ValueKind discriminates the shapes a token value can take.
type ValueKind int

const (
	// KindNull is the zero Value.
	KindNull ValueKind = iota

	// KindString is a literal string such as "#FF6B35" or "Inter".
	KindString

	// KindNumber is a bare number.
	KindNumber

	// KindBoolean is a literal boolean.
	KindBoolean

	// KindDimension is a {value, unit} pair.
	KindDimension

	// KindCubicBezier is four control point numbers.
	KindCubicBezier

	// KindAlias references another token by id.
	KindAlias

	// KindRaw is any other JSON payload, kept verbatim.
	KindRaw
)

// String returns the name of the kind.
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindDimension:
		return "dimension"
	case KindCubicBezier:
		return "cubicBezier"
	case KindAlias:
		return "alias"
	case KindRaw:
		return "raw"
	default:
		return "null"
	}
}

// Value is a token's literal value.
// Only the fields matching Kind are meaningful.
type Value struct {
	Kind ValueKind

	Str    string
	Num    float64
	Bool   bool
	Unit   string
	Bezier [4]float64

	// AliasID is the referenced token id when Kind is KindAlias.
	AliasID string

	// aliasString records that the alias was written as "{id}" rather than {"tokenId": id}.
	aliasString bool

	// Raw holds the decoded payload when Kind is KindRaw.
	Raw any
}

// StringValue creates a string value.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// NumberValue creates a number value.
func NumberValue(n float64) Value {
	return Value{Kind: KindNumber, Num: n}
}

// BoolValue creates a boolean value.
func BoolValue(b bool) Value {
	return Value{Kind: KindBoolean, Bool: b}
}

// DimensionValue creates a dimension value such as 16px.
func DimensionValue(n float64, unit string) Value {
	return Value{Kind: KindDimension, Num: n, Unit: unit}
}

// CubicBezierValue creates a cubic bezier value.
func CubicBezierValue(x1, y1, x2, y2 float64) Value {
	return Value{Kind: KindCubicBezier, Bezier: [4]float64{x1, y1, x2, y2}}
}

// AliasValue creates an alias to another token.
func AliasValue(tokenID string) Value {
	return Value{Kind: KindAlias, AliasID: tokenID}
}

// IsZero reports whether the value is unset.
func (v Value) IsZero() bool {
	return v.Kind == KindNull
}

// IsAlias reports whether the value references another token.
func (v Value) IsAlias() bool {
	return v.Kind == KindAlias
}

// FromAny builds a Value from decoded JSON or YAML data.
func FromAny(raw any) Value {
	switch x := raw.(type) {
	case nil:
		return Value{}
	case Value:
		return x
	case string:
		if id, ok := ParseAliasString(x); ok {
			return Value{Kind: KindAlias, AliasID: id, aliasString: true}
		}
		return StringValue(x)
	case bool:
		return BoolValue(x)
	case float64:
		return NumberValue(x)
	case float32:
		return NumberValue(float64(x))
	case int:
		return NumberValue(float64(x))
	case int64:
		return NumberValue(float64(x))
	case uint64:
		return NumberValue(float64(x))
	case map[string]any:
		if id, ok := parseAliasObject(x); ok {
			return AliasValue(id)
		}
		if len(x) == 2 {
			n, okNum := asFloat(x["value"])
			unit, okUnit := x["unit"].(string)
			if okNum && okUnit {
				return DimensionValue(n, unit)
			}
		}
		return Value{Kind: KindRaw, Raw: x}
	case []any:
		if len(x) == 4 {
			var b [4]float64
			ok := true
			for i, e := range x {
				n, isNum := asFloat(e)
				if !isNum {
					ok = false
					break
				}
				b[i] = n
			}
			if ok {
				return Value{Kind: KindCubicBezier, Bezier: b}
			}
		}
		return Value{Kind: KindRaw, Raw: x}
	default:
		return Value{Kind: KindRaw, Raw: x}
	}
}

// Any returns the value in its plain decoded-JSON form.
func (v Value) Any() any {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return v.Num
	case KindBoolean:
		return v.Bool
	case KindDimension:
		return map[string]any{"value": v.Num, "unit": v.Unit}
	case KindCubicBezier:
		return []any{v.Bezier[0], v.Bezier[1], v.Bezier[2], v.Bezier[3]}
	case KindAlias:
		if v.aliasString {
			return AliasString(v.AliasID)
		}
		return map[string]any{"tokenId": v.AliasID}
	case KindRaw:
		return v.Raw
	default:
		return nil
	}
}

// String returns a human-readable rendering of the value.
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return formatNumber(v.Num)
	case KindBoolean:
		return strconv.FormatBool(v.Bool)
	case KindDimension:
		return formatNumber(v.Num) + v.Unit
	case KindCubicBezier:
		parts := make([]string, 4)
		for i, n := range v.Bezier {
			parts[i] = formatNumber(n)
		}
		return "cubic-bezier(" + strings.Join(parts, ", ") + ")"
	case KindAlias:
		return AliasString(v.AliasID)
	case KindRaw:
		data, err := json.Marshal(v.Raw)
		if err != nil {
			return fmt.Sprintf("%v", v.Raw)
		}
		return string(data)
	default:
		return ""
	}
}

// Equal reports whether two values encode the same payload.
func (v Value) Equal(other Value) bool {
	a, errA := json.Marshal(v)
	b, errB := json.Marshal(other)
	return errA == nil && errB == nil && bytes.Equal(a, b)
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any())
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = FromAny(raw)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	return v.Any(), nil
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func asFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
