/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package merge

import (
	"slices"

	"bennypowers.dev/strata/token"
)

// workingSet is the merge's private copy of the catalog.
// It is cloned from the core once and never shares memory with any input.
type workingSet struct {
	dims      []token.Dimension
	tokens    []token.Token
	index     map[string]int
	platforms []token.Platform

	omittedTokens     *orderedSet
	omittedModes      *orderedSet
	omittedDimensions *orderedSet
}

func newWorkingSet(core *token.System) *workingSet {
	w := &workingSet{
		dims:              core.Dimensions,
		tokens:            token.CloneTokens(core.Tokens),
		platforms:         token.ClonePlatforms(core.Platforms),
		omittedTokens:     newOrderedSet(),
		omittedModes:      newOrderedSet(),
		omittedDimensions: newOrderedSet(),
	}
	w.reindex()
	return w
}

func (w *workingSet) reindex() {
	w.index = make(map[string]int, len(w.tokens))
	for i, t := range w.tokens {
		w.index[t.ID] = i
	}
}

func (w *workingSet) lookup(id string) (*token.Token, bool) {
	i, ok := w.index[id]
	if !ok {
		return nil, false
	}
	return &w.tokens[i], true
}

func (w *workingSet) remove(id string) {
	i, ok := w.index[id]
	if !ok {
		return
	}
	w.tokens = slices.Delete(w.tokens, i, i+1)
	w.reindex()
}

func (w *workingSet) add(t token.Token) {
	w.index[t.ID] = len(w.tokens)
	w.tokens = append(w.tokens, t)
}
