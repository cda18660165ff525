/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package merge

import (
	"bytes"
	"encoding/json"

	"bennypowers.dev/strata/token"
)

// Analytics summarizes what a merge changed.
//
// OmittedTokens always equals TotalTokens - len(MergedTokens) + NewTokens,
// and ValidThemeOverrides equals TotalThemeOverrides - ExcludedThemeOverrides.
type Analytics struct {
	TotalTokens            int `json:"totalTokens" yaml:"totalTokens"`
	OverriddenTokens       int `json:"overriddenTokens" yaml:"overriddenTokens"`
	NewTokens              int `json:"newTokens" yaml:"newTokens"`
	OmittedTokens          int `json:"omittedTokens" yaml:"omittedTokens"`
	PlatformCount          int `json:"platformCount" yaml:"platformCount"`
	ThemeCount             int `json:"themeCount" yaml:"themeCount"`
	TotalThemeOverrides    int `json:"totalThemeOverrides" yaml:"totalThemeOverrides"`
	ExcludedThemeOverrides int `json:"excludedThemeOverrides" yaml:"excludedThemeOverrides"`
	ValidThemeOverrides    int `json:"validThemeOverrides" yaml:"validThemeOverrides"`
}

func analyze(core, merged []token.Token) Analytics {
	coreValues := make(map[string][]byte, len(core))
	for _, t := range core {
		coreValues[t.ID] = serialize(t.ValuesByMode)
	}

	a := Analytics{TotalTokens: len(core)}
	for _, t := range merged {
		before, ok := coreValues[t.ID]
		switch {
		case !ok:
			a.NewTokens++
		case !bytes.Equal(before, serialize(t.ValuesByMode)):
			a.OverriddenTokens++
		}
	}
	a.OmittedTokens = len(core) - len(merged) + a.NewTokens
	return a
}

// serialize encodes values with nil mode lists normalized to empty ones.
func serialize(values []token.ModeValue) []byte {
	data, err := json.Marshal(token.CloneModeValues(values))
	if err != nil {
		// Values decoded from JSON or YAML always marshal.
		return nil
	}
	return data
}
