/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/strata/token"
)

func TestFromAny(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		kind token.ValueKind
		str  string
	}{
		{"hex string", "#FF6B35", token.KindString, "#FF6B35"},
		{"curly alias", "{color.brand}", token.KindAlias, "{color.brand}"},
		{"alias with spaces", "{ color.brand }", token.KindAlias, "{color.brand}"},
		{"not an alias", "{a}{b}", token.KindString, "{a}{b}"},
		{"object alias", map[string]any{"tokenId": "color.brand"}, token.KindAlias, "{color.brand}"},
		{"number", 1.5, token.KindNumber, "1.5"},
		{"yaml int", 400, token.KindNumber, "400"},
		{"boolean", true, token.KindBoolean, "true"},
		{"dimension", map[string]any{"value": 16.0, "unit": "px"}, token.KindDimension, "16px"},
		{"cubic bezier", []any{0.4, 0.0, 0.2, 1.0}, token.KindCubicBezier, "cubic-bezier(0.4, 0, 0.2, 1)"},
		{"shadow object", map[string]any{"x": 0.0, "y": 2.0, "blur": 4.0}, token.KindRaw, `{"blur":4,"x":0,"y":2}`},
		{"nil", nil, token.KindNull, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := token.FromAny(tt.raw)
			assert.Equal(t, tt.kind, v.Kind)
			assert.Equal(t, tt.str, v.String())
		})
	}
}

func TestValue_JSONKeepsAliasForm(t *testing.T) {
	var mv token.ModeValue
	require.NoError(t, json.Unmarshal([]byte(`{"modeIds":[],"value":"{color.brand}"}`), &mv))
	require.True(t, mv.Value.IsAlias())
	assert.Equal(t, "color.brand", mv.Value.AliasID)

	out, err := json.Marshal(mv)
	require.NoError(t, err)
	assert.JSONEq(t, `{"modeIds":[],"value":"{color.brand}"}`, string(out))

	obj := token.AliasValue("color.brand")
	out, err = json.Marshal(obj)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tokenId":"color.brand"}`, string(out))
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, token.StringValue("#111111").Equal(token.FromAny("#111111")))
	assert.False(t, token.StringValue("#111111").Equal(token.StringValue("#222222")))
	assert.True(t, token.DimensionValue(4, "px").Equal(token.FromAny(map[string]any{"unit": "px", "value": 4})))
	assert.False(t, token.NumberValue(4).Equal(token.DimensionValue(4, "px")))
}

func TestSameModeSet(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want bool
	}{
		{"both empty", nil, []string{}, true},
		{"same order", []string{"light", "compact"}, []string{"light", "compact"}, true},
		{"different order", []string{"compact", "light"}, []string{"light", "compact"}, true},
		{"subset", []string{"light"}, []string{"light", "compact"}, false},
		{"different modes", []string{"light"}, []string{"dark"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, token.SameModeSet(tt.a, tt.b))
		})
	}
}

func TestToken_ValueFor(t *testing.T) {
	tok := token.Token{
		ID: "color.surface",
		ValuesByMode: []token.ModeValue{
			{ModeIDs: []string{"light", "compact"}, Value: token.StringValue("#FFFFFF")},
			{ModeIDs: []string{"dark", "compact"}, Value: token.StringValue("#000000")},
		},
	}

	mv, ok := tok.ValueFor([]string{"compact", "dark"})
	require.True(t, ok)
	assert.Equal(t, "#000000", mv.Value.Str)

	_, ok = tok.ValueFor([]string{"dark"})
	assert.False(t, ok)
	assert.False(t, tok.HasGlobalValue())
}

func TestToken_CloneIsIndependent(t *testing.T) {
	orig := token.Token{
		ID:         "color.brand",
		Taxonomies: []token.TaxonomyRef{{TaxonomyID: "usage", TermID: "background"}},
		CodeSyntax: map[string]string{"ios": "colorBrand"},
		ValuesByMode: []token.ModeValue{
			{ModeIDs: []string{"light"}, Value: token.StringValue("#111111"), Metadata: map[string]any{"source": "core"}},
		},
	}

	clone := orig.Clone()
	clone.ValuesByMode[0].ModeIDs[0] = "dark"
	clone.ValuesByMode[0].Metadata["source"] = "ios"
	clone.Taxonomies[0].TermID = "text"
	clone.CodeSyntax["ios"] = "brand"

	assert.Equal(t, "light", orig.ValuesByMode[0].ModeIDs[0])
	assert.Equal(t, "core", orig.ValuesByMode[0].Metadata["source"])
	assert.Equal(t, "background", orig.Taxonomies[0].TermID)
	assert.Equal(t, "colorBrand", orig.CodeSyntax["ios"])
}

func TestSystem_OrderedDimensions(t *testing.T) {
	sys := token.System{
		Dimensions: []token.Dimension{
			{ID: "density", DefaultMode: "regular"},
			{ID: "scheme", DefaultMode: "light"},
			{ID: "contrast", DefaultMode: "standard"},
		},
		DimensionOrder: []string{"scheme", "density"},
	}

	ordered := sys.OrderedDimensions()
	ids := make([]string, len(ordered))
	for i, d := range ordered {
		ids[i] = d.ID
	}
	assert.Equal(t, []string{"scheme", "density", "contrast"}, ids)
	assert.Equal(t, []string{"regular", "light", "standard"}, token.DefaultModeIDs(sys.Dimensions))
}

func TestTokenOverride_AsToken(t *testing.T) {
	private := true
	o := token.TokenOverride{
		ID:                  "ios.haptic.strength",
		DisplayName:         "Haptic strength",
		ResolvedValueTypeID: "number",
		TokenTier:           token.TierPrimitive,
		Private:             &private,
		ValuesByMode:        []token.ModeValue{{ModeIDs: []string{}, Value: token.NumberValue(0.5)}},
	}

	tok := o.AsToken()
	assert.Equal(t, "ios.haptic.strength", tok.ID)
	assert.True(t, tok.Private)
	assert.False(t, tok.Themeable)
	assert.NotNil(t, tok.Taxonomies)
	assert.True(t, tok.HasGlobalValue())
}

func TestParseAliasString(t *testing.T) {
	id, ok := token.ParseAliasString("{spacing.md}")
	assert.True(t, ok)
	assert.Equal(t, "spacing.md", id)

	_, ok = token.ParseAliasString("{}")
	assert.False(t, ok)

	_, ok = token.ParseAliasString("prefix {spacing.md}")
	assert.False(t, ok)
}
