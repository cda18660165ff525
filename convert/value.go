/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/strata/token"
)

// BaseFontSize is the pixel size of 1rem and 1em for unit conversion.
const BaseFontSize = 16.0

// pxPerUnit converts each supported unit to pixels.
// dp and sp are treated as density-independent pixels.
var pxPerUnit = map[string]float64{
	"px":  1,
	"rem": BaseFontSize,
	"em":  BaseFontSize,
	"pt":  4.0 / 3.0,
	"dp":  1,
	"sp":  1,
}

// FormatValue renders a literal value with a platform's value formatters.
// kind is the standard value type kind of the token. Nil formatters
// render the value as written.
func FormatValue(v token.Value, kind string, vf *token.ValueFormatters) string {
	if vf == nil {
		vf = &token.ValueFormatters{}
	}

	switch v.Kind {
	case token.KindString:
		if kind == token.TypeColor && vf.ColorFormat != "" {
			if s, ok := formatColor(v.Str, vf.ColorFormat); ok {
				return s
			}
		}
		return v.Str
	case token.KindDimension:
		n, unit := convertUnit(v.Num, v.Unit, vf.DimensionUnit)
		return formatNumber(n, vf.NumberPrecision) + unit
	case token.KindNumber:
		return formatNumber(v.Num, vf.NumberPrecision)
	default:
		return v.String()
	}
}

func formatColor(s, format string) (string, bool) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return "", false
	}
	r, g, b, _ := c.RGBA255()
	alpha := strconv.FormatFloat(round(c.A, 3), 'f', -1, 64)

	switch format {
	case "hex":
		return c.HexString(), true
	case "rgb":
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b), true
	case "rgba":
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, alpha), true
	case "hsl", "hsla":
		h, sat, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
		if math.IsNaN(h) {
			h = 0
		}
		hsl := fmt.Sprintf("%s, %s%%, %s%%",
			strconv.FormatFloat(round(h, 0), 'f', -1, 64),
			strconv.FormatFloat(round(sat*100, 1), 'f', -1, 64),
			strconv.FormatFloat(round(l*100, 1), 'f', -1, 64))
		if format == "hsla" {
			return "hsla(" + hsl + ", " + alpha + ")", true
		}
		return "hsl(" + hsl + ")", true
	default:
		return "", false
	}
}

// convertUnit converts n from one unit to another. Units without a known
// pixel ratio, such as % or ms, are left alone.
func convertUnit(n float64, from, to string) (float64, string) {
	if to == "" || from == to {
		return n, from
	}
	fromPx, okFrom := pxPerUnit[from]
	toPx, okTo := pxPerUnit[to]
	if !okFrom || !okTo {
		return n, from
	}
	return n * fromPx / toPx, to
}

func formatNumber(n float64, precision *int) string {
	if precision != nil {
		n = round(n, *precision)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func round(n float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(n*p) / p
}
