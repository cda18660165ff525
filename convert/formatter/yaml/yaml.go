/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package yaml provides YAML mapping formatting for platform entries.
package yaml

import (
	"bytes"

	goyaml "gopkg.in/yaml.v3"

	"bennypowers.dev/strata/convert/formatter"
)

// Formatter outputs a YAML mapping of platform name to value, in entry order.
type Formatter struct{}

// New creates a new YAML formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts entries to a YAML mapping.
func (f *Formatter) Format(entries []formatter.Entry, opts formatter.Options) ([]byte, error) {
	doc := &goyaml.Node{Kind: goyaml.MappingNode}
	for _, e := range entries {
		key := &goyaml.Node{Kind: goyaml.ScalarNode, Tag: "!!str", Value: e.Name}
		value := &goyaml.Node{Kind: goyaml.ScalarNode, Tag: "!!str", Value: e.Value}
		if e.Description != "" {
			key.HeadComment = e.Description
		}
		doc.Content = append(doc.Content, key, value)
	}

	var buf bytes.Buffer
	buf.WriteString(formatter.FormatHeader(opts.Header, formatter.HashComments))
	if len(entries) == 0 {
		buf.WriteString("{}\n")
		return buf.Bytes(), nil
	}
	enc := goyaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
