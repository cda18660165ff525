/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package query

import (
	"fmt"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/strata/token"
)

// nearDuplicateDistance is the CIEDE2000 distance under which two colors
// are hard to tell apart.
const nearDuplicateDistance = 1.0

// Result is the outcome of a structural check on one entity.
type Result struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

type results struct {
	errors   []string
	warnings []string
}

func (r *results) errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *results) warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func (r *results) result() Result {
	return Result{
		IsValid:  len(r.errors) == 0,
		Errors:   append([]string{}, r.errors...),
		Warnings: append([]string{}, r.warnings...),
	}
}

// ValidateToken checks a token against the system it belongs to.
func ValidateToken(sys *token.System, t token.Token) Result {
	var r results

	if t.ID == "" {
		r.errorf("token has no id")
	}
	if len(t.ValuesByMode) == 0 {
		r.errorf("token %q has no values", t.ID)
	}
	if len(t.ValuesByMode) > 1 && slices.ContainsFunc(t.ValuesByMode, token.ModeValue.IsGlobal) {
		r.errorf("token %q mixes a global value with mode-specific values", t.ID)
	}

	vt, ok := sys.ValueType(t.ResolvedValueTypeID)
	if !ok {
		r.errorf("token %q has unknown value type %q", t.ID, t.ResolvedValueTypeID)
	}
	if t.TokenCollectionID != "" {
		c, ok := sys.Collection(t.TokenCollectionID)
		switch {
		case !ok:
			r.errorf("token %q is in unknown collection %q", t.ID, t.TokenCollectionID)
		case !c.Accepts(t.ResolvedValueTypeID):
			r.errorf("collection %q does not accept value type %q", c.ID, t.ResolvedValueTypeID)
		}
	}

	aliases := 0
	for _, mv := range t.ValuesByMode {
		for _, id := range mv.ModeIDs {
			if _, ok := token.DimensionOfMode(sys.Dimensions, id); !ok {
				r.errorf("token %q uses unknown mode %q", t.ID, id)
			}
		}
		if mv.Value.IsAlias() {
			aliases++
			if _, ok := sys.Token(mv.Value.AliasID); !ok {
				r.errorf("token %q aliases unknown token %q", t.ID, mv.Value.AliasID)
			}
		}
	}

	if t.Description == "" {
		r.warnf("token %q has no description", t.ID)
	}
	if t.IsDeprecated() {
		r.warnf("token %q is deprecated", t.ID)
	}
	switch {
	case t.TokenTier == token.TierPrimitive && aliases > 0:
		r.warnf("primitive token %q aliases another token", t.ID)
	case t.TokenTier != token.TierPrimitive && aliases == 0 && len(t.ValuesByMode) > 0:
		r.warnf("%s token %q holds literal values instead of aliasing primitives", t.TokenTier, t.ID)
	}
	if ok && vt.Type == token.TypeColor && t.TokenTier == token.TierPrimitive {
		for _, other := range nearDuplicateColors(sys, t) {
			r.warnf("token %q is nearly indistinguishable from %q", t.ID, other)
		}
	}

	return r.result()
}

// nearDuplicateColors returns the other primitive color tokens whose value
// for some shared mode set is perceptually almost equal to the token's.
func nearDuplicateColors(sys *token.System, t token.Token) []string {
	var dupes []string
	for _, other := range sys.Tokens {
		if other.ID == t.ID || other.TokenTier != token.TierPrimitive || other.ResolvedValueTypeID != t.ResolvedValueTypeID {
			continue
		}
		for _, mv := range t.ValuesByMode {
			theirs, ok := other.ValueFor(mv.ModeIDs)
			if !ok {
				continue
			}
			a, okA := toColorful(mv.Value)
			b, okB := toColorful(theirs.Value)
			if okA && okB && a.DistanceCIEDE2000(b) < nearDuplicateDistance {
				dupes = append(dupes, other.ID)
				break
			}
		}
	}
	return dupes
}

func toColorful(v token.Value) (colorful.Color, bool) {
	if v.Kind != token.KindString {
		return colorful.Color{}, false
	}
	c, err := csscolorparser.Parse(v.Str)
	if err != nil {
		return colorful.Color{}, false
	}
	return colorful.Color{R: c.R, G: c.G, B: c.B}, true
}

// ValidateCollection checks a collection against the system it belongs to.
func ValidateCollection(sys *token.System, c token.Collection) Result {
	var r results

	if len(c.ResolvedValueTypeIDs) == 0 {
		r.errorf("collection %q accepts no value types", c.ID)
	}
	for _, id := range c.ResolvedValueTypeIDs {
		if _, ok := sys.ValueType(id); !ok {
			r.errorf("collection %q accepts unknown value type %q", c.ID, id)
		}
	}
	if s := c.ModeResolutionStrategy; s != nil {
		for _, id := range s.PriorityByType {
			if _, ok := sys.Dimension(id); !ok {
				r.errorf("collection %q prioritizes unknown dimension %q", c.ID, id)
			}
		}
		if !slices.Contains(token.FallbackStrategies, s.FallbackStrategy) {
			r.errorf("collection %q has unknown fallback strategy %q", c.ID, s.FallbackStrategy)
		}
	}

	if len(ByCollection(sys.Tokens, c.ID)) == 0 {
		r.warnf("collection %q is empty", c.ID)
	}
	return r.result()
}

// ValidateDimension checks a dimension against the system it belongs to.
func ValidateDimension(sys *token.System, d token.Dimension) Result {
	var r results

	if len(d.Modes) == 0 {
		r.errorf("dimension %q has no modes", d.ID)
	}
	if !d.HasMode(d.DefaultMode) {
		r.errorf("dimension %q default mode %q is not one of its modes", d.ID, d.DefaultMode)
	}
	seen := make(map[string]bool, len(d.Modes))
	for _, m := range d.Modes {
		if seen[m.ID] {
			r.errorf("dimension %q declares mode %q twice", d.ID, m.ID)
		}
		seen[m.ID] = true
		for _, dep := range m.Dependencies {
			if _, ok := token.DimensionOfMode(sys.Dimensions, dep); !ok {
				r.errorf("mode %q depends on unknown mode %q", m.ID, dep)
			}
		}
	}

	if len(d.Modes) == 1 {
		r.warnf("dimension %q has a single mode", d.ID)
	}
	if len(sys.DimensionOrder) > 0 && !slices.Contains(sys.DimensionOrder, d.ID) {
		r.warnf("dimension %q is missing from dimensionOrder", d.ID)
	}
	return r.result()
}

// ValidatePlatform checks a platform's naming and formatting rules.
func ValidatePlatform(p token.Platform) Result {
	var r results

	if p.ExtensionSource != nil && (p.SyntaxPatterns != nil || p.ValueFormatters != nil) {
		r.errorf("platform %q declares both an extension source and formatting rules", p.ID)
	}
	if sp := p.SyntaxPatterns; sp != nil {
		if !slices.Contains(token.PlatformCapitalizations, sp.Capitalization) && sp.Capitalization != "" {
			r.errorf("platform %q has unsupported capitalization %q", p.ID, sp.Capitalization)
		}
		if !slices.Contains(token.Delimiters, sp.Delimiter) {
			r.errorf("platform %q has unsupported delimiter %q", p.ID, sp.Delimiter)
		}
	}
	if vf := p.ValueFormatters; vf != nil {
		if vf.ColorFormat != "" && !slices.Contains(token.ColorFormats, vf.ColorFormat) {
			r.errorf("platform %q has unsupported color format %q", p.ID, vf.ColorFormat)
		}
		if vf.DimensionUnit != "" && !slices.Contains(token.DimensionUnits, vf.DimensionUnit) {
			r.errorf("platform %q has unsupported dimension unit %q", p.ID, vf.DimensionUnit)
		}
	}

	if p.SyntaxPatterns == nil && p.ValueFormatters == nil && p.ExtensionSource == nil {
		r.warnf("platform %q declares no naming or formatting rules", p.ID)
	}
	return r.result()
}
