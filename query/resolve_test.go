/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/strata/query"
	"bennypowers.dev/strata/schema"
	"bennypowers.dev/strata/testutil"
	"bennypowers.dev/strata/token"
)

func TestResolveValue(t *testing.T) {
	sys := testutil.NewSystem()

	tests := []struct {
		name      string
		tokenID   string
		sel       query.Selection
		want      token.Value
		wantModes []string
		wantChain []string
	}{
		{"global", "color.brand", nil, token.StringValue("#111111"), []string{}, nil},
		{"default mode", "color.bg", nil, token.StringValue("#ffffff"), []string{"mode-light"}, nil},
		{"selected mode", "color.bg", query.Selection{"color-scheme": "mode-dark"}, token.StringValue("#000000"), []string{"mode-dark"}, nil},
		{"other dimension", "space.small", query.Selection{"density": "compact"}, token.DimensionValue(4, "px"), []string{"compact"}, nil},
		{"default in other dimension", "space.small", query.Selection{"color-scheme": "mode-dark"}, token.DimensionValue(8, "px"), []string{"comfortable"}, nil},
		{"alias", "color.text", nil, token.StringValue("#111111"), []string{}, []string{"color.brand"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := query.ResolveValue(sys, tt.tokenID, tt.sel)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value)
			assert.Equal(t, tt.wantModes, got.ModeIDs)
			assert.Equal(t, tt.wantChain, got.Chain)
		})
	}
}

func TestResolveValue_AliasFollowsSelection(t *testing.T) {
	sys := testutil.NewSystem()
	sys.Tokens[2].ValuesByMode = testutil.Global(token.AliasValue("color.bg"))

	got, err := query.ResolveValue(sys, "color.text", query.Selection{"color-scheme": "mode-dark"})
	require.NoError(t, err)
	assert.Equal(t, token.StringValue("#000000"), got.Value)
	assert.Equal(t, []string{"color.bg"}, got.Chain)
}

func TestResolveValue_Errors(t *testing.T) {
	sys := testutil.NewSystem()

	_, err := query.ResolveValue(sys, "color.bg", query.Selection{"color-scheme": "mode-sepia"})
	require.ErrorIs(t, err, schema.ErrInvalidSelection)

	_, err = query.ResolveValue(sys, "color.bg", query.Selection{"size": "large"})
	require.ErrorIs(t, err, schema.ErrInvalidSelection)

	_, err = query.ResolveValue(sys, "color.missing", nil)
	require.ErrorIs(t, err, schema.ErrUnresolvedReference)

	sys.Tokens[2].ValuesByMode = testutil.Global(token.AliasValue("color.gone"))
	_, err = query.ResolveValue(sys, "color.text", nil)
	require.ErrorIs(t, err, schema.ErrUnresolvedReference)

	sys.Tokens[0].ValuesByMode = testutil.Global(token.AliasValue("color.text"))
	sys.Tokens[2].ValuesByMode = testutil.Global(token.AliasValue("color.brand"))
	_, err = query.ResolveValue(sys, "color.text", nil)
	require.ErrorIs(t, err, schema.ErrCircularReference)
}

func TestResolveValue_Strategies(t *testing.T) {
	dark := query.Selection{"color-scheme": "mode-dark", "density": "compact"}

	tests := []struct {
		name     string
		strategy *token.ModeResolutionStrategy
		want     token.Value
	}{
		{"most specific by default", nil, token.DimensionValue(1, "px")},
		{
			"most specific ties go to dimension order",
			&token.ModeResolutionStrategy{FallbackStrategy: token.FallbackMostSpecificMatch},
			token.DimensionValue(1, "px"),
		},
		{
			"dimension priority",
			&token.ModeResolutionStrategy{PriorityByType: []string{"density"}, FallbackStrategy: token.FallbackDimensionPriority},
			token.DimensionValue(2, "px"),
		},
		{
			"default value",
			&token.ModeResolutionStrategy{FallbackStrategy: token.FallbackDefaultValue},
			token.DimensionValue(3, "px"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := testutil.NewSystem()
			sys.TokenCollections[1].ModeResolutionStrategy = tt.strategy
			sys.Tokens[3].ValuesByMode = []token.ModeValue{
				testutil.In(token.DimensionValue(1, "px"), "mode-dark"),
				testutil.In(token.DimensionValue(2, "px"), "compact"),
				testutil.In(token.DimensionValue(3, "px"), "mode-light"),
			}

			got, err := query.ResolveValue(sys, "space.small", dark)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value)
		})
	}
}

func TestResolveValue_PrefersSpecificEntry(t *testing.T) {
	sys := testutil.NewSystem()
	sys.Tokens[3].ValuesByMode = []token.ModeValue{
		testutil.In(token.DimensionValue(2, "px"), "compact"),
		testutil.In(token.DimensionValue(1, "px"), "mode-dark", "compact"),
	}

	got, err := query.ResolveValue(sys, "space.small", query.Selection{"color-scheme": "mode-dark", "density": "compact"})
	require.NoError(t, err)
	assert.Equal(t, token.DimensionValue(1, "px"), got.Value)

	got, err = query.ResolveValue(sys, "space.small", query.Selection{"density": "compact"})
	require.NoError(t, err)
	assert.Equal(t, token.DimensionValue(2, "px"), got.Value)
}
