/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"
)

var (
	idPattern     = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
	semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?(\+[0-9A-Za-z.-]+)?$`)
)

// decoder walks untyped data, collecting path-qualified errors as it goes.
// Getters return zero values on failure so decoding always continues.
type decoder struct {
	filePath string
	errs     Errors
}

func (d *decoder) fail(path, message, suggestion string) {
	d.errs = append(d.errs, ValidationError{
		FilePath:   d.filePath,
		Path:       path,
		Message:    message,
		Suggestion: suggestion,
	})
}

func at(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func idx(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		if _, ok := asFloat(v); ok {
			return "number"
		}
		return fmt.Sprintf("%T", v)
	}
}

func (d *decoder) missing(m map[string]any, key, path string) bool {
	if _, ok := m[key]; !ok {
		d.fail(at(path, key), "required field is missing", "")
		return true
	}
	return false
}

func (d *decoder) str(m map[string]any, key, path string, required bool) string {
	raw, ok := m[key]
	if !ok {
		if required {
			d.fail(at(path, key), "required field is missing", "")
		}
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		d.fail(at(path, key), fmt.Sprintf("expected string, got %s", typeName(raw)), "")
		return ""
	}
	if required && strings.TrimSpace(s) == "" {
		d.fail(at(path, key), "must not be empty", "")
	}
	return s
}

func (d *decoder) id(m map[string]any, key, path string, required bool) string {
	s := d.str(m, key, path, required)
	if s != "" && !idPattern.MatchString(s) {
		d.fail(at(path, key), fmt.Sprintf("invalid id %q", s),
			"ids start with a letter or digit and contain only letters, digits, '.', '_' and '-'")
	}
	return s
}

func (d *decoder) semver(m map[string]any, key, path string, required bool) string {
	s := d.str(m, key, path, required)
	if s != "" && !semverPattern.MatchString(s) {
		d.fail(at(path, key), fmt.Sprintf("invalid version %q", s), "use semantic versioning, e.g. 1.2.0")
	}
	return s
}

func (d *decoder) enum(m map[string]any, key, path string, required bool, allowed []string) string {
	s := d.str(m, key, path, required)
	if s != "" && !slices.Contains(allowed, s) {
		d.fail(at(path, key), fmt.Sprintf("invalid value %q", s),
			"expected one of: "+strings.Join(allowed, ", "))
	}
	return s
}

func (d *decoder) boolean(m map[string]any, key, path string) bool {
	raw, ok := m[key]
	if !ok {
		return false
	}
	b, ok := raw.(bool)
	if !ok {
		d.fail(at(path, key), fmt.Sprintf("expected boolean, got %s", typeName(raw)), "")
	}
	return b
}

func (d *decoder) optBool(m map[string]any, key, path string) *bool {
	if _, ok := m[key]; !ok {
		return nil
	}
	b := d.boolean(m, key, path)
	return &b
}

func (d *decoder) number(m map[string]any, key, path string) *float64 {
	raw, ok := m[key]
	if !ok {
		return nil
	}
	n, ok := asFloat(raw)
	if !ok || math.IsNaN(n) {
		d.fail(at(path, key), fmt.Sprintf("expected number, got %s", typeName(raw)), "")
		return nil
	}
	return &n
}

func (d *decoder) obj(m map[string]any, key, path string, required bool) map[string]any {
	raw, ok := m[key]
	if !ok {
		if required {
			d.fail(at(path, key), "required field is missing", "")
		}
		return nil
	}
	o, ok := raw.(map[string]any)
	if !ok {
		d.fail(at(path, key), fmt.Sprintf("expected object, got %s", typeName(raw)), "")
		return nil
	}
	return o
}

func (d *decoder) arr(m map[string]any, key, path string, required, nonEmpty bool) []any {
	raw, ok := m[key]
	if !ok {
		if required {
			d.fail(at(path, key), "required field is missing", "")
		}
		return nil
	}
	a, ok := raw.([]any)
	if !ok {
		d.fail(at(path, key), fmt.Sprintf("expected array, got %s", typeName(raw)), "")
		return nil
	}
	if nonEmpty && len(a) == 0 {
		d.fail(at(path, key), "must contain at least one entry", "")
	}
	return a
}

// objects iterates over an array of objects, reporting non-object elements.
func (d *decoder) objects(items []any, path string, fn func(m map[string]any, path string)) {
	for i, item := range items {
		p := idx(path, i)
		m, ok := item.(map[string]any)
		if !ok {
			d.fail(p, fmt.Sprintf("expected object, got %s", typeName(item)), "")
			continue
		}
		fn(m, p)
	}
}

// ids decodes an array of ids. The result is never nil when the field is present.
func (d *decoder) ids(m map[string]any, key, path string, required, nonEmpty bool) []string {
	items := d.arr(m, key, path, required, nonEmpty)
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	base := at(path, key)
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			d.fail(idx(base, i), fmt.Sprintf("expected string, got %s", typeName(item)), "")
			continue
		}
		if !idPattern.MatchString(s) {
			d.fail(idx(base, i), fmt.Sprintf("invalid id %q", s), "")
			continue
		}
		out = append(out, s)
	}
	return out
}

func (d *decoder) stringList(m map[string]any, key, path string) []string {
	items := d.arr(m, key, path, false, false)
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	base := at(path, key)
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			d.fail(idx(base, i), fmt.Sprintf("expected string, got %s", typeName(item)), "")
			continue
		}
		out = append(out, s)
	}
	return out
}

func (d *decoder) stringMap(m map[string]any, key, path string) map[string]string {
	o := d.obj(m, key, path, false)
	if o == nil {
		return nil
	}
	out := make(map[string]string, len(o))
	for k, v := range o {
		s, ok := v.(string)
		if !ok {
			d.fail(at(at(path, key), k), fmt.Sprintf("expected string, got %s", typeName(v)), "")
			continue
		}
		out[k] = s
	}
	return out
}

// unique reports ids appearing more than once in a list.
func (d *decoder) unique(path, what string, ids []string) {
	seen := make(map[string]bool, len(ids))
	reported := make(map[string]bool)
	for _, id := range ids {
		if id == "" {
			continue
		}
		if seen[id] && !reported[id] {
			d.fail(path, fmt.Sprintf("duplicate %s id %q", what, id), "ids must be unique")
			reported[id] = true
		}
		seen[id] = true
	}
}

// subset reports entries of an order list that name no declared entity.
func (d *decoder) subset(path, what string, order, declared []string) {
	for i, id := range order {
		if !slices.Contains(declared, id) {
			d.fail(idx(path, i), fmt.Sprintf("%s %q is not declared", what, id),
				fmt.Sprintf("add the %s or remove it from the order", what))
		}
	}
}

func asFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
