/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import "errors"

// Sentinel errors for token system documents.
var (
	// ErrUnknownKind indicates a document whose kind could not be determined.
	ErrUnknownKind = errors.New("unknown document kind")

	// ErrInvalidDocument indicates a document failed schema validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrDuplicateFileKey indicates two overlays share one external file key.
	ErrDuplicateFileKey = errors.New("duplicate figmaFileKey")

	// ErrMissingFileKey indicates a platform extension without an external file key.
	ErrMissingFileKey = errors.New("missing figmaFileKey")

	// ErrCircularReference indicates a circular alias was detected.
	ErrCircularReference = errors.New("circular reference detected")

	// ErrUnresolvedReference indicates an alias target does not exist.
	ErrUnresolvedReference = errors.New("unresolved token reference")
)

// ErrInvalidSelection indicates a mode selection naming an unknown dimension or mode.
var ErrInvalidSelection = errors.New("invalid mode selection")
