/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package query provides read-only accessors over token systems.
//
// Nothing in this package modifies the tokens or systems passed to it;
// results are new slices holding copies of the matching tokens.
package query

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"bennypowers.dev/strata/merge"
	"bennypowers.dev/strata/token"
)

// ByID returns the token with the given id.
func ByID(tokens []token.Token, id string) (token.Token, bool) {
	for _, t := range tokens {
		if t.ID == id {
			return t, true
		}
	}
	return token.Token{}, false
}

// ByCollection returns the tokens placed in a collection.
func ByCollection(tokens []token.Token, collectionID string) []token.Token {
	return where(tokens, func(t *token.Token) bool { return t.TokenCollectionID == collectionID })
}

// ByValueType returns the tokens of a resolved value type.
func ByValueType(tokens []token.Token, valueTypeID string) []token.Token {
	return where(tokens, func(t *token.Token) bool { return t.ResolvedValueTypeID == valueTypeID })
}

// ByTier returns the tokens of a tier.
func ByTier(tokens []token.Token, tier token.Tier) []token.Token {
	return where(tokens, func(t *token.Token) bool { return t.TokenTier == tier })
}

// Filter narrows a token list. Empty fields match everything.
type Filter struct {
	CollectionID string
	ValueTypeID  string
	Tier         token.Tier
}

// Apply returns the tokens matching every set field of the filter.
func (f Filter) Apply(tokens []token.Token) []token.Token {
	return where(tokens, func(t *token.Token) bool {
		return (f.CollectionID == "" || t.TokenCollectionID == f.CollectionID) &&
			(f.ValueTypeID == "" || t.ResolvedValueTypeID == f.ValueTypeID) &&
			(f.Tier == "" || t.TokenTier == f.Tier)
	})
}

// SearchOptions configures Search.
type SearchOptions struct {
	// Regex treats the query as a regular expression.
	Regex bool

	// NameOnly restricts matching to the id and display name.
	NameOnly bool
}

// Search returns tokens whose id, display name or description match the
// query, sorted by id. Plain queries match case-insensitive substrings.
func Search(tokens []token.Token, q string, opts SearchOptions) ([]token.Token, error) {
	var pattern *regexp.Regexp
	if opts.Regex {
		var err error
		pattern, err = regexp.Compile(q)
		if err != nil {
			return nil, fmt.Errorf("invalid regex: %w", err)
		}
	}

	matches := where(tokens, func(t *token.Token) bool {
		if matchString(t.ID, q, pattern) || matchString(t.DisplayName, q, pattern) {
			return true
		}
		return !opts.NameOnly && matchString(t.Description, q, pattern)
	})
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].ID < matches[j].ID
	})
	return matches, nil
}

func matchString(s, q string, pattern *regexp.Regexp) bool {
	if pattern != nil {
		return pattern.MatchString(s)
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(q))
}

// FromMerged returns a system view of a merge result: the core system with
// its tokens and platforms replaced by their merged forms. Theme overrides
// are already applied, so the view carries none.
func FromMerged(data *merge.MergedData) *token.System {
	view := &token.System{}
	if data.Core != nil {
		*view = *data.Core
	}
	view.Tokens = token.CloneTokens(data.MergedTokens)
	view.Platforms = token.ClonePlatforms(data.MergedPlatforms)
	view.ThemeOverrides = nil
	return view
}

func where(tokens []token.Token, keep func(*token.Token) bool) []token.Token {
	out := []token.Token{}
	for i := range tokens {
		if keep(&tokens[i]) {
			out = append(out, tokens[i].Clone())
		}
	}
	return out
}
