/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load provides a high-level API for loading a token workspace:
// the core system, its platform extensions and its theme override files.
package load

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"golang.org/x/sync/errgroup"

	"bennypowers.dev/strata/config"
	"bennypowers.dev/strata/fs"
	"bennypowers.dev/strata/internal/logger"
	"bennypowers.dev/strata/merge"
	"bennypowers.dev/strata/schema"
	"bennypowers.dev/strata/token"
)

// DefaultConcurrency is the number of documents read at once.
const DefaultConcurrency = 4

// Options configures how a workspace is loaded.
type Options struct {
	// Root is the project directory. Relative paths resolve against it.
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Config supplies the document paths. Nil loads .config/strata.* from
	// Root, falling back to defaults.
	Config *config.Config

	// Core overrides the config's core document path.
	Core string

	// Extensions overrides the config's extension patterns when non-nil.
	Extensions []string

	// Themes overrides the config's theme patterns when non-nil.
	Themes []string

	// Concurrency bounds parallel reads. Defaults to DefaultConcurrency.
	Concurrency int
}

// Workspace is a loaded and validated set of documents.
type Workspace struct {
	Root       string
	Config     *config.Config
	System     *token.System
	Extensions []*token.Extension
	ThemeFiles []*token.ThemeOverrideFile
}

// Load loads a workspace.
//
// The loading process:
//  1. Loads config from .config/strata.{yaml,yml,json} unless given
//  2. Applies Options values (they take precedence over config)
//  3. Expands extension and theme globs
//  4. Reads, parses, detects and validates every document concurrently
//  5. Returns the documents in path order
func Load(ctx context.Context, opts Options) (*Workspace, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root path: %w", err)
		}
		root = absRoot
	}

	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.Load(filesystem, root)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		if cfg == nil {
			cfg = config.Default()
		}
	}
	effective := *cfg
	if opts.Core != "" {
		effective.Core = opts.Core
	}
	if opts.Extensions != nil {
		effective.Extensions = opts.Extensions
	}
	if opts.Themes != nil {
		effective.Themes = opts.Themes
	}

	extPaths, err := effective.ExpandExtensions(filesystem, root)
	if err != nil {
		return nil, fmt.Errorf("failed to expand extensions: %w", err)
	}
	themePaths, err := effective.ExpandThemes(filesystem, root)
	if err != nil {
		return nil, fmt.Errorf("failed to expand themes: %w", err)
	}

	type job struct {
		path string
		kind schema.Kind
	}
	jobs := []job{{effective.CorePath(root), schema.System}}
	for _, p := range extPaths {
		jobs = append(jobs, job{p, schema.Extension})
	}
	for _, p := range themePaths {
		jobs = append(jobs, job{p, schema.ThemeOverrides})
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	docs := make([]*Document, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := expect(filesystem, j.path, j.kind)
			if err != nil {
				return err
			}
			logger.Debug("loaded %s %s", doc.Kind, j.path)
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ws := &Workspace{
		Root:       root,
		Config:     &effective,
		System:     docs[0].System,
		Extensions: []*token.Extension{},
		ThemeFiles: []*token.ThemeOverrideFile{},
	}
	for _, doc := range docs[1:] {
		switch doc.Kind {
		case schema.Extension:
			ws.Extensions = append(ws.Extensions, doc.Extension)
		case schema.ThemeOverrides:
			ws.ThemeFiles = append(ws.ThemeFiles, doc.ThemeFile)
		}
	}
	logger.Info("loaded %s with %d extension(s) and %d theme file(s)",
		ws.System.SystemID, len(ws.Extensions), len(ws.ThemeFiles))
	return ws, nil
}

// ThemeOverrides returns the system's embedded theme overrides followed by
// the overrides of each theme file, keyed by theme id. Later entries for
// the same token win when the theme layer applies them in order.
func (w *Workspace) ThemeOverrides() token.ThemeOverrides {
	if w.System.ThemeOverrides == nil && len(w.ThemeFiles) == 0 {
		return nil
	}
	themes := make(token.ThemeOverrides)
	for id, list := range w.System.ThemeOverrides {
		themes[id] = slices.Clone(list)
	}
	for _, f := range w.ThemeFiles {
		if f.SystemID != w.System.SystemID {
			logger.Warn("%s targets system %q, not %q", f.FilePath, f.SystemID, w.System.SystemID)
		}
		themes[f.ThemeID] = append(themes[f.ThemeID], f.Overrides...)
	}
	return themes
}

// Merge merges the workspace with the config's merge options, overridden
// by any non-zero field of opts.
func (w *Workspace) Merge(opts merge.Options) (*merge.MergedData, error) {
	effective := w.Config.MergeOptions()
	if opts.TargetPlatformID != "" {
		effective.TargetPlatformID = opts.TargetPlatformID
	}
	if opts.TargetThemeID != "" {
		effective.TargetThemeID = opts.TargetThemeID
	}
	if opts.IncludeOmitted {
		effective.IncludeOmitted = true
	}
	return merge.Merge(w.System, w.Extensions, w.ThemeOverrides(), effective)
}
