/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/strata/config"
	"bennypowers.dev/strata/internal/logger"
	"bennypowers.dev/strata/internal/mapfs"
	"bennypowers.dev/strata/load"
	"bennypowers.dev/strata/testutil"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newConverter(t *testing.T) (converter, *mapfs.MapFileSystem, *bytes.Buffer) {
	t.Helper()
	mfs := testutil.NewFixtureFS(t, "fixtures/basic", "/project")
	ws, err := load.Load(t.Context(), load.Options{Root: "/project", FS: mfs})
	require.NoError(t, err)

	var stdout bytes.Buffer
	return converter{ws: ws, fs: mfs, stdout: &stdout}, mfs, &stdout
}

func TestConvertAll_ConfigOutputs(t *testing.T) {
	c, mfs, stdout := newConverter(t)

	require.NoError(t, c.convertAll(c.ws.Config.Outputs))
	assert.Empty(t, stdout.String())

	css, err := mfs.ReadFile("/project/dist/tokens.css")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(css), ":root {\n"), string(css))
	assert.Contains(t, string(css), "  /* Primary brand color */\n  --color-brand: #333333;\n")
	assert.Contains(t, string(css), "  --color-tint: #007aff;\n")
	assert.NotContains(t, string(css), "color-text")

	data, err := mfs.ReadFile("/project/dist/ios.json")
	require.NoError(t, err)
	var ios map[string]string
	require.NoError(t, json.Unmarshal(data, &ios))
	assert.Equal(t, "#007aff", ios["colortint"])
	assert.Equal(t, "#eeeeee", ios["colortext"], "ios keeps the token android omits")

	dark, err := mfs.ReadFile("/project/dist/dark.css")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(dark), "/*\n * Generated by strata\n */\n\n[data-scheme=\"dark\"] {\n"), string(dark))
}

func TestConvert_Stdout(t *testing.T) {
	c, _, stdout := newConverter(t)

	err := c.convert(config.Output{Platform: "android", Format: "android"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout.String(), `<?xml version="1.0" encoding="utf-8"?>`), stdout.String())
	assert.Contains(t, stdout.String(), `<color name="color_brand">#333333</color>`)
	assert.NotContains(t, stdout.String(), "color_tint", "tint only exists on ios")
}

func TestConvert_ThemeFilter(t *testing.T) {
	c, _, stdout := newConverter(t)
	c.theme = "no-such-theme"

	require.NoError(t, c.convert(config.Output{Format: "json"}))
	var got map[string]string
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, "#111111", got["color-brand"])
}

func TestConvert_Errors(t *testing.T) {
	c, _, _ := newConverter(t)

	assert.Error(t, c.convert(config.Output{Format: "swift"}))
	assert.Error(t, c.convert(config.Output{Platform: "watchos"}))
	assert.Error(t, c.convert(config.Output{Modes: map[string]string{"color-scheme": "sepia"}}))

	err := c.convertAll([]config.Output{
		{Path: "dist/ok.css"},
		{Path: "dist/bad.css", Modes: map[string]string{"nope": "x"}},
	})
	require.Error(t, err)
	assert.Equal(t, "failed to generate 1 output(s)", err.Error())
}
