/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	strataFS "bennypowers.dev/strata/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "strata"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/strata.{yaml,yml,json} from rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem strataFS.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := Default()
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", configPath, err)
			}
		case ".json":
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", configPath, err)
			}
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", configPath, err)
		}

		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns config or defaults if not found.
func LoadOrDefault(filesystem strataFS.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// CorePath returns the absolute path of the core document.
func (c *Config) CorePath(rootDir string) string {
	return absPath(rootDir, c.Core)
}

// ExpandExtensions expands the extension globs into sorted, unique paths.
func (c *Config) ExpandExtensions(filesystem strataFS.FileSystem, rootDir string) ([]string, error) {
	return expandPatterns(filesystem, rootDir, c.Extensions)
}

// ExpandThemes expands the theme globs into sorted, unique paths.
func (c *Config) ExpandThemes(filesystem strataFS.FileSystem, rootDir string) ([]string, error) {
	return expandPatterns(filesystem, rootDir, c.Themes)
}

func expandPatterns(filesystem strataFS.FileSystem, rootDir string, patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	result := []string{}

	for _, pattern := range patterns {
		expanded, err := expandFilePath(filesystem, rootDir, pattern)
		if err != nil {
			return nil, err
		}
		for _, p := range expanded {
			if !seen[p] {
				seen[p] = true
				result = append(result, p)
			}
		}
	}

	sort.Strings(result)
	return result, nil
}

func absPath(rootDir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(rootDir, p)
}

// expandFilePath expands a single file path which may contain globs.
func expandFilePath(filesystem strataFS.FileSystem, rootDir, pattern string) ([]string, error) {
	pattern = absPath(rootDir, pattern)

	if !containsGlob(pattern) {
		// Not a glob; a missing file is reported when it is read.
		return []string{pattern}, nil
	}

	return expandGlob(filesystem, pattern)
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob expands a glob pattern against the filesystem.
func expandGlob(filesystem strataFS.FileSystem, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
		return nil, fmt.Errorf("invalid glob pattern: %s", pattern)
	}

	// Find the base directory (non-glob prefix)
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}
	if !filesystem.Exists(baseDir) {
		return nil, nil
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string

	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't read
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

		if matched, _ := doublestar.Match(filepath.ToSlash(relPattern), filepath.ToSlash(relPath)); matched {
			matches = append(matches, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return matches, nil
}
