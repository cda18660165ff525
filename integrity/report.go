/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package integrity

import "bennypowers.dev/strata/token"

// Result holds the violations found by one check.
type Result struct {
	Name       string
	Violations []string
}

// Report is the outcome of running every check.
type Report struct {
	Results []Result
}

// OK reports whether no check found a violation.
func (r Report) OK() bool {
	return r.Count() == 0
}

// Count returns the total number of violations.
func (r Report) Count() int {
	n := 0
	for _, res := range r.Results {
		n += len(res.Violations)
	}
	return n
}

// Check runs every integrity check, in a fixed order.
func Check(sys *token.System, exts []*token.Extension, themeFiles []*token.ThemeOverrideFile) Report {
	return Report{Results: []Result{
		{Name: "taxonomies", Violations: TaxonomyRefs(sys)},
		{Name: "collections", Violations: CollectionTypes(sys)},
		{Name: "value types", Violations: ValueTypeRefs(sys)},
		{Name: "modes", Violations: ModeRefs(sys, exts)},
		{Name: "required modes", Violations: RequiredModes(sys)},
		{Name: "aliases", Violations: AliasRefs(sys)},
		{Name: "themes", Violations: ThemeRefs(sys, themeFiles)},
		{Name: "systems", Violations: SystemRefs(sys, exts, themeFiles)},
		{Name: "file keys", Violations: FileKeys(exts, themeFiles)},
	}}
}
