/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/strata/internal/cli"
	"bennypowers.dev/strata/testutil"
	"bennypowers.dev/strata/token"
)

func TestValidateFiles_Project(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/basic", "/project")
	files, err := cli.DocumentPaths(mfs, "/project")
	require.NoError(t, err)
	require.Len(t, files, 4)

	var out, errOut bytes.Buffer
	ok := validateFiles(mfs, files, &out, &errOut, options{})
	assert.True(t, ok, errOut.String())
	assert.Contains(t, out.String(), "Validating /project/tokens.json...\n  system ok, 4 tokens\n")
	assert.Contains(t, out.String(), "  extension ok, 2 overrides\n")
	assert.Contains(t, out.String(), "  theme-overrides ok, 2 overrides\n")
	assert.Contains(t, out.String(), "All files valid.\n")
	assert.Contains(t, errOut.String(), `warning: token color.bg: token "color.bg" has no description`)
}

func TestValidateFiles_StrictWarnings(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/basic", "/project")

	var out, errOut bytes.Buffer
	ok := validateFiles(mfs, []string{"/project/tokens.json"}, &out, &errOut, options{strict: true, quiet: true})
	assert.False(t, ok)
	assert.Empty(t, out.String())
}

func TestValidateFiles_Invalid(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/broken", "/project")

	var out, errOut bytes.Buffer
	ok := validateFiles(mfs, []string{"/project/ext.json", "/project/missing.json"}, &out, &errOut, options{})
	assert.False(t, ok)
	assert.Contains(t, errOut.String(), "  error: figmaFileKey: required field is missing\n")
	assert.NotContains(t, out.String(), "All files valid.")
}

func TestAdviseSystem(t *testing.T) {
	sys := testutil.NewSystem()
	sys.Tokens[2].ValuesByMode[0].Value = token.AliasValue("color.gone")

	res := adviseSystem(sys)
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Errors, `token color.text: token "color.text" aliases unknown token "color.gone"`)
	assert.Contains(t, res.Warnings, `token color.brand: token "color.brand" has no description`)
}
