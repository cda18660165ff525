/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package merge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/strata/merge"
	"bennypowers.dev/strata/testutil"
	"bennypowers.dev/strata/token"
)

func TestMergeValuesByMode_MatchesModeSetsInAnyOrder(t *testing.T) {
	dims := testutil.NewSystem().Dimensions
	existing := []token.ModeValue{
		testutil.In(str("a"), "mode-light", "compact"),
		testutil.In(str("b"), "mode-dark", "compact"),
	}

	got := merge.MergeValuesByMode(existing, []token.ModeValue{
		testutil.In(str("c"), "compact", "mode-light"),
	}, dims)

	assert.Equal(t, []token.ModeValue{
		testutil.In(str("c"), "mode-light", "compact"),
		testutil.In(str("b"), "mode-dark", "compact"),
	}, got)
	assert.Equal(t, str("a"), existing[0].Value, "existing list must not change")
}

func TestMergeValuesByMode_AppendsUnknownCombinations(t *testing.T) {
	dims := testutil.NewSystem().Dimensions
	existing := []token.ModeValue{testutil.In(str("a"), "mode-light")}

	got := merge.MergeValuesByMode(existing, []token.ModeValue{testutil.In(str("b"), "mode-dark")}, dims)

	assert.Equal(t, []token.ModeValue{
		testutil.In(str("a"), "mode-light"),
		testutil.In(str("b"), "mode-dark"),
	}, got)
}

func TestMergeValuesByMode_EmptyModesResolveToDefaults(t *testing.T) {
	t.Run("one dimension", func(t *testing.T) {
		dims := testutil.NewSystem().Dimensions[:1]
		existing := []token.ModeValue{
			testutil.In(str("light"), "mode-light"),
			testutil.In(str("dark"), "mode-dark"),
		}
		incoming := []token.ModeValue{testutil.In(str("new"))}

		once := merge.MergeValuesByMode(existing, incoming, dims)
		twice := merge.MergeValuesByMode(once, incoming, dims)

		want := []token.ModeValue{
			testutil.In(str("new"), "mode-light"),
			testutil.In(str("dark"), "mode-dark"),
		}
		assert.Equal(t, want, once)
		assert.Equal(t, want, twice)
	})

	t.Run("every dimension contributes its default", func(t *testing.T) {
		dims := testutil.NewSystem().Dimensions
		existing := []token.ModeValue{
			testutil.In(str("light"), "mode-light"),
			testutil.In(str("dark"), "mode-dark"),
		}
		incoming := []token.ModeValue{testutil.In(str("new"))}

		once := merge.MergeValuesByMode(existing, incoming, dims)
		twice := merge.MergeValuesByMode(once, incoming, dims)

		require.Len(t, once, 3)
		assert.ElementsMatch(t, []string{"mode-light", "comfortable"}, once[2].ModeIDs)
		assert.Equal(t, str("new"), once[2].Value)
		assert.Equal(t, once, twice, "second application overwrites instead of duplicating")
	})
}

func TestMergeValuesByMode_GlobalValue(t *testing.T) {
	dims := testutil.NewSystem().Dimensions
	global := testutil.Global(str("#111111"))

	t.Run("global incoming replaces global in place", func(t *testing.T) {
		got := merge.MergeValuesByMode(global, []token.ModeValue{testutil.In(str("#222222"))}, dims)
		assert.Equal(t, testutil.Global(str("#222222")), got)
	})

	t.Run("mode-specific incoming expands the global over its dimension", func(t *testing.T) {
		got := merge.MergeValuesByMode(global, []token.ModeValue{testutil.In(str("#222222"), "mode-light")}, dims)
		assert.Equal(t, []token.ModeValue{
			testutil.In(str("#222222"), "mode-light"),
			testutil.In(str("#111111"), "mode-dark"),
		}, got)
	})

	t.Run("expansion covers every touched dimension", func(t *testing.T) {
		got := merge.MergeValuesByMode(global, []token.ModeValue{testutil.In(str("#333333"), "compact", "mode-dark")}, dims)
		assert.Equal(t, []token.ModeValue{
			testutil.In(str("#111111"), "mode-light", "comfortable"),
			testutil.In(str("#111111"), "mode-light", "compact"),
			testutil.In(str("#111111"), "mode-dark", "comfortable"),
			testutil.In(str("#333333"), "mode-dark", "compact"),
		}, got)
	})

	t.Run("unknown modes keep the global at the default combination", func(t *testing.T) {
		got := merge.MergeValuesByMode(global, []token.ModeValue{testutil.In(str("#444444"), "mode-sepia")}, dims)
		assert.Equal(t, []token.ModeValue{
			testutil.In(str("#111111"), "mode-light", "comfortable"),
			testutil.In(str("#444444"), "mode-sepia"),
		}, got)
	})

	t.Run("global into an empty list", func(t *testing.T) {
		got := merge.MergeValuesByMode(nil, []token.ModeValue{testutil.In(str("#555555"))}, dims)
		assert.Equal(t, testutil.Global(str("#555555")), got)
	})

	t.Run("no dimensions", func(t *testing.T) {
		existing := []token.ModeValue{testutil.In(str("a"), "x")}
		got := merge.MergeValuesByMode(existing, []token.ModeValue{testutil.In(str("b"))}, nil)
		assert.Equal(t, testutil.Global(str("b")), got)
	})
}

func TestMergeValuesByMode_Metadata(t *testing.T) {
	dims := testutil.NewSystem().Dimensions
	existing := []token.ModeValue{{
		ModeIDs:           []string{"mode-light"},
		Value:             str("a"),
		Metadata:          map[string]any{"source": "core", "reviewed": true},
		PlatformOverrides: []token.PlatformOverride{{PlatformID: "ios", Value: str("ios-a")}},
	}}

	got := merge.MergeValuesByMode(existing, []token.ModeValue{{
		ModeIDs:  []string{"mode-light"},
		Value:    str("b"),
		Metadata: map[string]any{"source": "ios"},
	}}, dims)

	require.Len(t, got, 1)
	assert.Equal(t, str("b"), got[0].Value)
	assert.Equal(t, map[string]any{"source": "ios", "reviewed": true}, got[0].Metadata)
	assert.Equal(t, existing[0].PlatformOverrides, got[0].PlatformOverrides)
	assert.Equal(t, "core", existing[0].Metadata["source"])
}
