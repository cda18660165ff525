/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator is the admission gate for token system documents.
//
// It turns untyped document data into typed entities, enforcing field
// constraints and structural refinements. Validation fails closed: any
// violation yields every error found and no entity.
package validator

import (
	"fmt"
	"strings"

	"bennypowers.dev/strata/schema"
	"bennypowers.dev/strata/token"
)

// ValidationError represents a schema violation.
type ValidationError struct {
	// FilePath is the path to the file containing the error.
	FilePath string
	// Path is the JSON path to the problematic element.
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Errors is the full list of violations found in one document.
type Errors []ValidationError

// Error implements the error interface.
func (e Errors) Error() string {
	switch len(e) {
	case 0:
		return "no validation errors"
	case 1:
		return e[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:", len(e))
	for i := range e {
		sb.WriteString("\n  ")
		sb.WriteString(e[i].Error())
	}
	return sb.String()
}

// Unwrap lets callers match errors.Is(err, schema.ErrInvalidDocument).
func (e Errors) Unwrap() error {
	return schema.ErrInvalidDocument
}

// Err returns nil when the list is empty, so callers can return it as an error.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// ValidateSystem validates a core token system document.
func ValidateSystem(raw map[string]any) (*token.System, Errors) {
	return ValidateSystemWithPath(raw, "")
}

// ValidateSystemWithPath validates a core token system and includes the file path in errors.
func ValidateSystemWithPath(raw map[string]any, filePath string) (*token.System, Errors) {
	d := &decoder{filePath: filePath}
	sys := d.system(raw)
	if len(d.errs) > 0 {
		return nil, d.errs
	}
	sys.FilePath = filePath
	return sys, nil
}

// ValidateExtension validates a platform extension document.
func ValidateExtension(raw map[string]any) (*token.Extension, Errors) {
	return ValidateExtensionWithPath(raw, "")
}

// ValidateExtensionWithPath validates a platform extension and includes the file path in errors.
func ValidateExtensionWithPath(raw map[string]any, filePath string) (*token.Extension, Errors) {
	d := &decoder{filePath: filePath}
	ext := d.extension(raw)
	if len(d.errs) > 0 {
		return nil, d.errs
	}
	ext.FilePath = filePath
	return ext, nil
}

// ValidateThemeOverrideFile validates a standalone theme override document.
func ValidateThemeOverrideFile(raw map[string]any) (*token.ThemeOverrideFile, Errors) {
	return ValidateThemeOverrideFileWithPath(raw, "")
}

// ValidateThemeOverrideFileWithPath validates theme overrides and includes the file path in errors.
func ValidateThemeOverrideFileWithPath(raw map[string]any, filePath string) (*token.ThemeOverrideFile, Errors) {
	d := &decoder{filePath: filePath}
	file := d.themeOverrideFile(raw)
	if len(d.errs) > 0 {
		return nil, d.errs
	}
	file.FilePath = filePath
	return file, nil
}
