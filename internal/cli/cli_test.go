/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cli

import (
	"bytes"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/strata/internal/mapfs"
	"bennypowers.dev/strata/query"
	"bennypowers.dev/strata/testutil"
)

func TestParseSelection(t *testing.T) {
	sel, err := ParseSelection([]string{"color-scheme=mode-dark", "density=compact"})
	require.NoError(t, err)
	assert.Equal(t, query.Selection{"color-scheme": "mode-dark", "density": "compact"}, sel)

	sel, err = ParseSelection(nil)
	require.NoError(t, err)
	assert.Nil(t, sel)

	for _, bad := range []string{"mode-dark", "=mode-dark", "color-scheme="} {
		_, err := ParseSelection([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestDocumentPaths(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/basic", "/project")

	paths, err := DocumentPaths(mfs, "/project")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/project/tokens.json",
		"/project/extensions/android.yaml",
		"/project/extensions/ios.json",
		"/project/themes/brand-dark.json",
	}, paths)
}

func TestDocumentPaths_NoConfig(t *testing.T) {
	paths, err := DocumentPaths(mapfs.New(), "/empty")
	require.NoError(t, err)
	assert.Equal(t, []string{"/empty/tokens.json"}, paths)
}

func TestNewTable(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTable(&buf, table.Row{"Token", "Value"})
	tw.AppendRow(table.Row{"color.brand", "#111111"})
	tw.Render()

	assert.Contains(t, buf.String(), "color.brand")
	assert.Contains(t, buf.String(), "#111111")
	assert.Contains(t, buf.String(), "┌")
}

func TestIsColorTerminal(t *testing.T) {
	assert.False(t, IsColorTerminal(&bytes.Buffer{}))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, map[string]int{"tokens": 4}))
	assert.Equal(t, "{\n  \"tokens\": 4\n}\n", buf.String())
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, map[string][]string{"omittedModes": {"compact"}}))
	assert.Equal(t, "omittedModes:\n  - compact\n", buf.String())
}

func TestDocumentPaths_InvalidConfig(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/invalid", "/project")

	_, err := DocumentPaths(mfs, "/project")
	assert.Error(t, err)
}
