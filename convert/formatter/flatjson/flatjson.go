/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flatjson provides flat key-value JSON formatting for platform entries.
package flatjson

import (
	"encoding/json"

	"bennypowers.dev/strata/convert/formatter"
)

// Formatter outputs flat key-value JSON.
type Formatter struct{}

// New creates a new flat JSON formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts entries to a JSON object keyed by platform name.
// JSON has no comments, so the header is dropped.
func (f *Formatter) Format(entries []formatter.Entry, _ formatter.Options) ([]byte, error) {
	result := make(map[string]string, len(entries))
	for _, e := range entries {
		result[e.Name] = e.Value
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
