/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"

	"bennypowers.dev/strata/schema"
	"bennypowers.dev/strata/token"
)

// Picker selects the value of a token that an alias to it should see,
// e.g. the entry for the active mode selection.
type Picker func(tok *token.Token) (token.Value, bool)

// Lookup finds a token by id.
type Lookup func(id string) (*token.Token, bool)

// Follow walks an alias chain starting at v until it reaches a literal.
// It returns the literal and the ids of every token visited on the way.
func Follow(v token.Value, lookup Lookup, pick Picker) (token.Value, []string, error) {
	var chain []string
	seen := make(map[string]bool)
	for v.IsAlias() {
		id := v.AliasID
		if seen[id] {
			return token.Value{}, chain, fmt.Errorf("%w: %v", schema.ErrCircularReference, append(chain, id))
		}
		seen[id] = true
		chain = append(chain, id)

		tok, ok := lookup(id)
		if !ok {
			return token.Value{}, chain, fmt.Errorf("%w: %q", schema.ErrUnresolvedReference, id)
		}
		next, ok := pick(tok)
		if !ok {
			return token.Value{}, chain, fmt.Errorf("%w: token %q has no value for the selection", schema.ErrUnresolvedReference, id)
		}
		v = next
	}
	return v, chain, nil
}

// ResolveAliases resolves every token to a literal value.
// The picker chooses which of a token's entries represents it.
// Tokens whose chain ends at a missing token are left out of the result.
func ResolveAliases(tokens []token.Token, pick Picker) (map[string]token.Value, error) {
	graph := BuildDependencyGraph(tokens)

	sortedIDs, err := graph.TopologicalSort()
	if err != nil {
		return nil, err
	}

	tokenByID := make(map[string]*token.Token, len(tokens))
	for i := range tokens {
		tokenByID[tokens[i].ID] = &tokens[i]
	}

	resolved := make(map[string]token.Value, len(tokens))
	for _, id := range sortedIDs {
		tok := tokenByID[id]
		if tok == nil {
			continue
		}
		v, ok := pick(tok)
		if !ok {
			continue
		}
		if v.IsAlias() {
			// Dependencies come first, so the target is already resolved if it can be.
			target, ok := resolved[v.AliasID]
			if !ok {
				continue
			}
			v = target
		}
		resolved[id] = v
	}

	return resolved, nil
}
