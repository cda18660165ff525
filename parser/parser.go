/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser decodes token system documents into untyped data.
//
// Parsing only establishes syntax. The validator package turns the
// resulting maps into typed entities.
package parser

import (
	"bennypowers.dev/strata/fs"
)

// Parser parses token system documents.
type Parser interface {
	// Parse parses document data and returns its root object.
	Parse(data []byte) (map[string]any, error)

	// ParseFile parses a document file and returns its root object.
	ParseFile(filesystem fs.FileSystem, path string) (map[string]any, error)
}
