/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides project configuration loading for strata.
package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/strata/convert"
	"bennypowers.dev/strata/merge"
	"bennypowers.dev/strata/query"
)

// Config represents a strata project configuration.
type Config struct {
	// Core is the path of the core system document.
	Core string `yaml:"core" json:"core"`

	// Extensions lists platform extension documents (paths or globs).
	Extensions []string `yaml:"extensions" json:"extensions"`

	// Themes lists theme override documents (paths or globs).
	Themes []string `yaml:"themes" json:"themes"`

	// Platform restricts merging to one platform extension.
	Platform string `yaml:"platform" json:"platform"`

	// Theme restricts merging to one theme.
	Theme string `yaml:"theme" json:"theme"`

	// IncludeOmitted keeps tokens that extensions mark with omit.
	IncludeOmitted bool `yaml:"includeOmitted" json:"includeOmitted"`

	// Format is the default output format for convert.
	Format string `yaml:"format" json:"format"`

	// Outputs are the files written by convert when no output flag is given.
	Outputs []Output `yaml:"outputs" json:"outputs"`
}

// Output describes one converted file.
// It can be specified as a simple string path or as an object.
type Output struct {
	// Path is the file to write.
	Path string `yaml:"path" json:"path"`

	// Format overrides the format; empty infers it from Path.
	Format string `yaml:"format" json:"format"`

	// Platform overrides the naming and value rules.
	Platform string `yaml:"platform" json:"platform"`

	// Modes selects a mode per dimension.
	Modes map[string]string `yaml:"modes" json:"modes"`

	// Header is written as a comment at the top of the file.
	Header string `yaml:"header" json:"header"`

	// Selector is the CSS rule selector.
	Selector string `yaml:"selector" json:"selector"`
}

// UnmarshalYAML handles both string and object forms for Output.
func (o *Output) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		o.Path = node.Value
		return nil
	}

	type rawOutput Output
	return node.Decode((*rawOutput)(o))
}

// UnmarshalJSON handles both string and object forms for Output.
func (o *Output) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		o.Path = s
		return nil
	}

	type rawOutput Output
	return json.Unmarshal(data, (*rawOutput)(o))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Core:   "tokens.json",
		Format: string(convert.FormatCSS),
	}
}

// MergeOptions returns the merge options the config selects.
func (c *Config) MergeOptions() merge.Options {
	return merge.Options{
		TargetPlatformID: c.Platform,
		TargetThemeID:    c.Theme,
		IncludeOmitted:   c.IncludeOmitted,
	}
}

// Validate checks the config's formats.
func (c *Config) Validate() error {
	if _, err := convert.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config format: %w", err)
	}
	for i, out := range c.Outputs {
		if out.Path == "" {
			return fmt.Errorf("outputs[%d]: path is required", i)
		}
		if _, err := out.ConvertFormat(c.Format); err != nil {
			return fmt.Errorf("outputs[%d]: %w", i, err)
		}
	}
	return nil
}

// ConvertFormat returns the output's format: its own, else the one its
// path's extension names, else fallback.
func (o Output) ConvertFormat(fallback string) (convert.Format, error) {
	if o.Format != "" {
		return convert.ParseFormat(o.Format)
	}
	switch strings.ToLower(filepath.Ext(o.Path)) {
	case ".css":
		return convert.FormatCSS, nil
	case ".json":
		return convert.FormatJSON, nil
	case ".xml":
		return convert.FormatAndroid, nil
	case ".yaml", ".yml":
		return convert.FormatYAML, nil
	}
	return convert.ParseFormat(fallback)
}

// ConvertOptions returns the convert options for the output. The output's
// platform wins over the config's.
func (c *Config) ConvertOptions(o Output) (convert.Options, error) {
	format, err := o.ConvertFormat(c.Format)
	if err != nil {
		return convert.Options{}, err
	}
	platform := o.Platform
	if platform == "" {
		platform = c.Platform
	}
	return convert.Options{
		PlatformID: platform,
		Selection:  query.Selection(o.Modes),
		Format:     format,
		Header:     o.Header,
		Selector:   o.Selector,
	}, nil
}
