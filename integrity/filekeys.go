/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package integrity

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"bennypowers.dev/strata/schema"
	"bennypowers.dev/strata/token"
)

// FileKeys reports figmaFileKey collisions across platform extensions and
// theme override files, and extensions without a key.
func FileKeys(exts []*token.Extension, themeFiles []*token.ThemeOverrideFile) []string {
	owners := make(map[string][]string)
	var violations []string
	for _, ext := range exts {
		if ext.FigmaFileKey == "" {
			violations = append(violations, fmt.Sprintf("platform extension %q has no figmaFileKey", ext.PlatformID))
			continue
		}
		owners[ext.FigmaFileKey] = append(owners[ext.FigmaFileKey], fmt.Sprintf("platform extension %q", ext.PlatformID))
	}
	for _, f := range themeFiles {
		if f.FigmaFileKey == "" {
			continue
		}
		owners[f.FigmaFileKey] = append(owners[f.FigmaFileKey], fmt.Sprintf("theme overrides %q", f.ThemeID))
	}
	for _, key := range slices.Sorted(maps.Keys(owners)) {
		if users := owners[key]; len(users) > 1 {
			violations = append(violations, fmt.Sprintf("figmaFileKey %q is shared by %s", key, strings.Join(users, ", ")))
		}
	}
	return sorted(violations)
}

// RequireUniqueFileKeys is the fatal form of FileKeys for platform extensions.
// The returned error joins one error per problem; each wraps
// schema.ErrMissingFileKey or schema.ErrDuplicateFileKey.
func RequireUniqueFileKeys(exts []*token.Extension) error {
	var errs []error
	first := make(map[string]string)
	for i, ext := range exts {
		if ext == nil {
			errs = append(errs, fmt.Errorf("%w: extension at index %d is nil", schema.ErrMissingFileKey, i))
			continue
		}
		key := ext.FigmaFileKey
		if strings.TrimSpace(key) == "" {
			errs = append(errs, fmt.Errorf("%w: platform extension %q", schema.ErrMissingFileKey, ext.PlatformID))
			continue
		}
		if platform, ok := first[key]; ok {
			errs = append(errs, fmt.Errorf("%w: %q used by platform extensions %q and %q",
				schema.ErrDuplicateFileKey, key, platform, ext.PlatformID))
			continue
		}
		first[key] = ext.PlatformID
	}
	return errors.Join(errs...)
}
