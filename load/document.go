/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load

import (
	"fmt"

	"bennypowers.dev/strata/fs"
	"bennypowers.dev/strata/parser"
	"bennypowers.dev/strata/schema"
	"bennypowers.dev/strata/token"
	"bennypowers.dev/strata/validator"
)

// Document is one validated token system document.
// Exactly one of System, Extension and ThemeFile is set, matching Kind.
type Document struct {
	Path string
	Kind schema.Kind

	System    *token.System
	Extension *token.Extension
	ThemeFile *token.ThemeOverrideFile
}

// LoadDocument reads, parses and validates a document of any kind.
// A document with validation errors yields validator.Errors, which match
// schema.ErrInvalidDocument.
func LoadDocument(filesystem fs.FileSystem, path string) (*Document, error) {
	raw, err := parser.NewDocumentParser().ParseFile(filesystem, path)
	if err != nil {
		return nil, err
	}

	kind, err := schema.DetectKindOf(raw, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	doc := &Document{Path: path, Kind: kind}
	var errs validator.Errors
	switch kind {
	case schema.System:
		doc.System, errs = validator.ValidateSystemWithPath(raw, path)
	case schema.Extension:
		doc.Extension, errs = validator.ValidateExtensionWithPath(raw, path)
	case schema.ThemeOverrides:
		doc.ThemeFile, errs = validator.ValidateThemeOverrideFileWithPath(raw, path)
	default:
		return nil, fmt.Errorf("%s: %w", path, schema.ErrUnknownKind)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return doc, nil
}

// expect loads a document and requires it to be of the given kind.
func expect(filesystem fs.FileSystem, path string, kind schema.Kind) (*Document, error) {
	doc, err := LoadDocument(filesystem, path)
	if err != nil {
		return nil, err
	}
	if doc.Kind != kind {
		return nil, fmt.Errorf("%w: %s is a %s document, expected %s",
			schema.ErrInvalidDocument, path, doc.Kind, kind)
	}
	return doc, nil
}
