/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package merge

import (
	"bennypowers.dev/strata/token"
)

// applyThemes applies theme overrides in theme id order and returns the
// number of overrides excluded because their token is missing or was
// omitted by a platform.
func (w *workingSet) applyThemes(themes token.ThemeOverrides) int {
	excluded := 0
	for _, themeID := range themes.ThemeIDs() {
		for _, o := range themes[themeID] {
			t, ok := w.lookup(o.TokenID)
			if !ok || w.omittedTokens.has(o.TokenID) {
				excluded++
				continue
			}
			t.ValuesByMode = MergeValuesByMode(t.ValuesByMode, []token.ModeValue{{
				ModeIDs: []string{},
				Value:   themeValue(o),
			}}, w.dims)
		}
	}
	return excluded
}

// themeValue is the value a theme override contributes. The first platform
// override wins over the override's own value.
func themeValue(o token.ThemeOverride) token.Value {
	if len(o.PlatformOverrides) > 0 {
		return o.PlatformOverrides[0].Value
	}
	return o.Value
}
