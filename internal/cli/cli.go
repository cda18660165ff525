/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cli holds helpers shared by the strata commands.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/strata/config"
	"bennypowers.dev/strata/fs"
	"bennypowers.dev/strata/load"
	"bennypowers.dev/strata/query"
)

// BindFlags binds the running command's flags to viper, so flag values
// take precedence over STRATA_* environment variables.
// Use it as a command's PreRunE.
func BindFlags(cmd *cobra.Command, _ []string) error {
	return viper.BindPFlags(cmd.Flags())
}

// Root returns the project directory the --root flag selects.
func Root() string {
	if root := viper.GetString("root"); root != "" {
		return root
	}
	return "."
}

// LoadWorkspace loads the workspace under Root from the OS filesystem.
func LoadWorkspace(ctx context.Context) (*load.Workspace, error) {
	return load.Load(ctx, load.Options{
		Root: Root(),
		FS:   fs.NewOSFileSystem(),
	})
}

// DocumentPaths lists every document the project config names: the core
// document first, then extensions and themes.
func DocumentPaths(filesystem fs.FileSystem, root string) ([]string, error) {
	cfg, err := config.Load(filesystem, root)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default()
	}
	exts, err := cfg.ExpandExtensions(filesystem, root)
	if err != nil {
		return nil, fmt.Errorf("error expanding extensions: %w", err)
	}
	themes, err := cfg.ExpandThemes(filesystem, root)
	if err != nil {
		return nil, fmt.Errorf("error expanding themes: %w", err)
	}
	paths := []string{cfg.CorePath(root)}
	paths = append(paths, exts...)
	return append(paths, themes...), nil
}

// ParseSelection parses dimension=mode pairs from a repeatable flag.
func ParseSelection(pairs []string) (query.Selection, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	sel := make(query.Selection, len(pairs))
	for _, pair := range pairs {
		dim, mode, found := strings.Cut(pair, "=")
		if !found || dim == "" || mode == "" {
			return nil, fmt.Errorf("invalid mode %q: expected dimension=mode", pair)
		}
		sel[dim] = mode
	}
	return sel, nil
}

// NewTable returns a table that renders to w.
func NewTable(w io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	return t
}

// IsColorTerminal reports whether w is a terminal that accepts ANSI color.
// Setting NO_COLOR disables color.
func IsColorTerminal(w io.Writer) bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteYAML writes v as YAML.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
