/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Taxonomy is a controlled vocabulary tokens may reference.
type Taxonomy struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Terms       []Term `json:"terms" yaml:"terms"`
}

// Term is one entry of a Taxonomy.
type Term struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// HasTerm reports whether the taxonomy defines the term.
func (t *Taxonomy) HasTerm(termID string) bool {
	for _, term := range t.Terms {
		if term.ID == termID {
			return true
		}
	}
	return false
}
