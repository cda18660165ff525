/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package check

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"bennypowers.dev/strata/integrity"
	"bennypowers.dev/strata/testutil"
)

func TestWriteReport_OK(t *testing.T) {
	report := integrity.Check(testutil.NewSystem(), nil, nil)

	var buf bytes.Buffer
	writeReport(&buf, report, false)
	out := buf.String()
	assert.Contains(t, out, "taxonomies")
	assert.Contains(t, out, "file keys")
	assert.NotContains(t, out, "FAIL")
	assert.True(t, strings.HasSuffix(out, "All checks passed.\n"), out)

	buf.Reset()
	writeReport(&buf, report, true)
	assert.Empty(t, buf.String())
}

func TestWriteReport_Violations(t *testing.T) {
	report := integrity.Report{Results: []integrity.Result{
		{Name: "aliases", Violations: []string{`token "color.text" aliases unknown token "color.gone"`}},
		{Name: "themes"},
	}}

	var buf bytes.Buffer
	writeReport(&buf, report, true)
	assert.Equal(t, "aliases: token \"color.text\" aliases unknown token \"color.gone\"\n", buf.String())

	buf.Reset()
	writeReport(&buf, report, false)
	assert.Contains(t, buf.String(), "FAIL")
	assert.NotContains(t, buf.String(), "All checks passed.")
}
