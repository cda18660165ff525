/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load_test

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/strata/config"
	"bennypowers.dev/strata/internal/logger"
	"bennypowers.dev/strata/internal/mapfs"
	"bennypowers.dev/strata/load"
	"bennypowers.dev/strata/merge"
	"bennypowers.dev/strata/schema"
	"bennypowers.dev/strata/testutil"
	"bennypowers.dev/strata/token"
	"bennypowers.dev/strata/validator"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestLoad_Workspace(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/basic", "/project")

	ws, err := load.Load(t.Context(), load.Options{Root: "/project", FS: mfs})
	require.NoError(t, err)

	assert.Equal(t, "/project", ws.Root)
	assert.Equal(t, "acme", ws.System.SystemID)
	assert.Equal(t, "/project/tokens.json", ws.System.FilePath)
	assert.Len(t, ws.System.Tokens, 4)

	require.Len(t, ws.Extensions, 2)
	assert.Equal(t, "android", ws.Extensions[0].PlatformID)
	assert.Equal(t, "/project/extensions/android.yaml", ws.Extensions[0].FilePath)
	assert.Equal(t, []string{"compact"}, ws.Extensions[0].OmittedModes)
	assert.Equal(t, "ios", ws.Extensions[1].PlatformID)

	require.Len(t, ws.ThemeFiles, 1)
	assert.Equal(t, "brand-dark", ws.ThemeFiles[0].ThemeID)

	assert.Len(t, ws.Config.Outputs, 3)
}

func TestLoad_ParsesValues(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/basic", "/project")

	ws, err := load.Load(t.Context(), load.Options{Root: "/project", FS: mfs})
	require.NoError(t, err)

	text, ok := ws.System.Token("color.text")
	require.True(t, ok)
	assert.Equal(t, token.AliasValue("color.brand").AliasID, text.ValuesByMode[0].Value.AliasID)
	assert.True(t, text.ValuesByMode[0].Value.IsAlias())

	small, ok := ws.System.Token("space.small")
	require.True(t, ok)
	assert.Equal(t, token.DimensionValue(4, "px"), small.ValuesByMode[0].Value)

	spacing, ok := ws.System.Collection("spacing")
	require.True(t, ok)
	require.NotNil(t, spacing.ModeResolutionStrategy)
	assert.Equal(t, token.FallbackDimensionPriority, spacing.ModeResolutionStrategy.FallbackStrategy)
}

func TestWorkspace_ThemeOverrides(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/basic", "/project")

	ws, err := load.Load(t.Context(), load.Options{Root: "/project", FS: mfs})
	require.NoError(t, err)

	themes := ws.ThemeOverrides()
	require.Len(t, themes["brand-dark"], 3)
	assert.Equal(t, "color.bg", themes["brand-dark"][0].TokenID)
	assert.Equal(t, "color.brand", themes["brand-dark"][1].TokenID)
	assert.Equal(t, "color.text", themes["brand-dark"][2].TokenID)

	// The embedded list is not modified.
	assert.Len(t, ws.System.ThemeOverrides["brand-dark"], 1)

	ws.ThemeFiles = nil
	ws.System.ThemeOverrides = nil
	assert.Nil(t, ws.ThemeOverrides())
}

func TestWorkspace_Merge(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/basic", "/project")

	ws, err := load.Load(t.Context(), load.Options{Root: "/project", FS: mfs})
	require.NoError(t, err)

	data, err := ws.Merge(merge.Options{})
	require.NoError(t, err)

	_, ok := data.Token("color.text")
	assert.False(t, ok)
	assert.Equal(t, []string{"color.text"}, data.PlatformOmittedTokens)
	assert.Equal(t, []string{"compact"}, data.OmittedModes)

	brand, ok := data.Token("color.brand")
	require.True(t, ok)
	assert.Equal(t, token.StringValue("#333333"), brand.ValuesByMode[0].Value)

	tint, ok := data.Token("color.tint")
	require.True(t, ok)
	assert.Equal(t, token.StringValue("#007aff"), tint.ValuesByMode[0].Value)

	ios, ok := data.Platform("ios")
	require.True(t, ok)
	assert.Equal(t, token.CapitalizationNone, ios.SyntaxPatterns.Capitalization)

	assert.Equal(t, 2, data.Analytics.PlatformCount)
	assert.Equal(t, 1, data.Analytics.ThemeCount)
	assert.Equal(t, 1, data.Analytics.ExcludedThemeOverrides)

	iosOnly, err := ws.Merge(merge.Options{TargetPlatformID: "ios"})
	require.NoError(t, err)
	_, ok = iosOnly.Token("color.text")
	assert.True(t, ok)
	assert.Equal(t, 1, iosOnly.Analytics.PlatformCount)
}

func TestLoad_OptionsOverrideConfig(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/basic", "/project")

	ws, err := load.Load(t.Context(), load.Options{
		Root:       "/project",
		FS:         mfs,
		Extensions: []string{"extensions/ios.json"},
		Themes:     []string{},
	})
	require.NoError(t, err)
	require.Len(t, ws.Extensions, 1)
	assert.Equal(t, "ios", ws.Extensions[0].PlatformID)
	assert.Empty(t, ws.ThemeFiles)
}

func TestLoad_WithoutConfig(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/tokens.json", string(testutil.LoadFixtureFile(t, "fixtures/basic/tokens.json")), 0644)

	ws, err := load.Load(t.Context(), load.Options{Root: "/project", FS: mfs})
	require.NoError(t, err)
	assert.Equal(t, "acme", ws.System.SystemID)
	assert.Empty(t, ws.Extensions)
	assert.Equal(t, config.Default().Format, ws.Config.Format)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("invalid document", func(t *testing.T) {
		mfs := testutil.NewFixtureFS(t, "fixtures/broken", "/project")
		_, err := load.Load(t.Context(), load.Options{Root: "/project", FS: mfs})
		require.ErrorIs(t, err, schema.ErrInvalidDocument)

		var verrs validator.Errors
		require.True(t, errors.As(err, &verrs))
		assert.Equal(t, "/project/ext.json", verrs[0].FilePath)
	})

	t.Run("wrong kind", func(t *testing.T) {
		mfs := testutil.NewFixtureFS(t, "fixtures/basic", "/project")
		_, err := load.Load(t.Context(), load.Options{
			Root:       "/project",
			FS:         mfs,
			Extensions: []string{"themes/brand-dark.json"},
		})
		require.ErrorIs(t, err, schema.ErrInvalidDocument)
		assert.Contains(t, err.Error(), "is a theme-overrides document, expected extension")
	})

	t.Run("missing core", func(t *testing.T) {
		mfs := testutil.NewFixtureFS(t, "fixtures/basic", "/project")
		_, err := load.Load(t.Context(), load.Options{Root: "/project", FS: mfs, Core: "nope.json"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nope.json")
	})

	t.Run("invalid config", func(t *testing.T) {
		mfs := testutil.NewFixtureFS(t, "fixtures/config/invalid", "/project")
		_, err := load.Load(t.Context(), load.Options{Root: "/project", FS: mfs})
		require.Error(t, err)
	})

	t.Run("canceled", func(t *testing.T) {
		mfs := testutil.NewFixtureFS(t, "fixtures/basic", "/project")
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		_, err := load.Load(ctx, load.Options{Root: "/project", FS: mfs})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestLoadDocument(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/basic", "/project")

	tests := []struct {
		path string
		kind schema.Kind
	}{
		{"/project/tokens.json", schema.System},
		{"/project/extensions/android.yaml", schema.Extension},
		{"/project/themes/brand-dark.json", schema.ThemeOverrides},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			doc, err := load.LoadDocument(mfs, tt.path)
			if err != nil {
				t.Fatalf("LoadDocument() error = %v", err)
			}
			if doc.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", doc.Kind, tt.kind)
			}
		})
	}

	_, err := load.LoadDocument(mfs, "/project/.config/strata.yaml")
	require.ErrorIs(t, err, schema.ErrUnknownKind)
}
