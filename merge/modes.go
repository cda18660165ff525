/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package merge

import (
	"slices"

	"bennypowers.dev/strata/token"
)

// MergeValuesByMode merges incoming mode entries into existing ones and
// returns a new list; neither argument is modified.
//
// Each incoming entry replaces the value of the existing entry with the same
// mode set (compared order-independently) or is appended when there is none,
// so combinations the incoming list does not mention are kept unchanged.
// An incoming entry with no modes addresses the default mode of every
// dimension.
//
// The result never mixes a global entry with mode-specific ones:
//   - An incoming global entry replaces an existing global value in place.
//   - An incoming mode-specific entry first expands an existing global value
//     into one entry per mode combination of the dimensions the incoming
//     modes belong to, each carrying the global value, and then matches
//     against those entries.
func MergeValuesByMode(existing, incoming []token.ModeValue, dims []token.Dimension) []token.ModeValue {
	result := token.CloneModeValues(existing)
	if result == nil {
		result = []token.ModeValue{}
	}

	for _, in := range incoming {
		modes := in.ModeIDs
		if len(modes) == 0 {
			if len(result) == 0 || isGlobal(result) {
				result = replaceGlobal(result, in)
				continue
			}
			modes = token.DefaultModeIDs(dims)
			if len(modes) == 0 {
				// Without dimensions there is nothing to key by, so the
				// incoming value becomes the token's only value.
				result = replaceGlobal(nil, in)
				continue
			}
		} else if isGlobal(result) {
			result = expandGlobal(result[0], modes, dims)
		}

		i := slices.IndexFunc(result, func(mv token.ModeValue) bool {
			return token.SameModeSet(mv.ModeIDs, modes)
		})
		if i >= 0 {
			result[i] = apply(result[i], in)
			continue
		}
		entry := in.Clone()
		entry.ModeIDs = slices.Clone(modes)
		result = append(result, entry)
	}
	return result
}

func isGlobal(values []token.ModeValue) bool {
	return len(values) == 1 && values[0].IsGlobal()
}

func replaceGlobal(values []token.ModeValue, in token.ModeValue) []token.ModeValue {
	if len(values) == 0 {
		entry := in.Clone()
		entry.ModeIDs = []string{}
		return []token.ModeValue{entry}
	}
	return []token.ModeValue{apply(values[0], in)}
}

// apply overwrites an entry's value with an incoming one. Incoming metadata
// keys win over existing ones; incoming platform overrides replace existing
// ones when present.
func apply(mv token.ModeValue, in token.ModeValue) token.ModeValue {
	mv.Value = in.Value
	if len(in.PlatformOverrides) > 0 {
		mv.PlatformOverrides = slices.Clone(in.PlatformOverrides)
	}
	if in.Metadata != nil {
		merged := token.CloneMetadata(mv.Metadata)
		if merged == nil {
			merged = make(map[string]any, len(in.Metadata))
		}
		for k, v := range in.Metadata {
			merged[k] = v
		}
		mv.Metadata = merged
	}
	return mv
}

// expandGlobal turns a global entry into one entry per combination of the
// modes of every dimension that modeIDs touches. When no mode belongs to a
// declared dimension the global value is kept for the default combination.
func expandGlobal(global token.ModeValue, modeIDs []string, dims []token.Dimension) []token.ModeValue {
	var touched []token.Dimension
	for _, d := range dims {
		if slices.ContainsFunc(modeIDs, d.HasMode) {
			touched = append(touched, d)
		}
	}

	var combos [][]string
	if len(touched) == 0 {
		if defaults := token.DefaultModeIDs(dims); len(defaults) > 0 {
			combos = [][]string{defaults}
		}
	} else {
		combos = [][]string{{}}
		for _, d := range touched {
			next := make([][]string, 0, len(combos)*len(d.Modes))
			for _, combo := range combos {
				for _, m := range d.Modes {
					next = append(next, append(slices.Clone(combo), m.ID))
				}
			}
			combos = next
		}
	}

	expanded := make([]token.ModeValue, 0, len(combos))
	for _, combo := range combos {
		entry := global.Clone()
		entry.ModeIDs = combo
		expanded = append(expanded, entry)
	}
	return expanded
}
