/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"errors"
	"testing"

	"bennypowers.dev/strata/resolver"
	"bennypowers.dev/strata/schema"
	"bennypowers.dev/strata/token"
)

func tok(id string, v token.Value) token.Token {
	return token.Token{
		ID:           id,
		ValuesByMode: []token.ModeValue{{ModeIDs: []string{}, Value: v}},
	}
}

func global(t *token.Token) (token.Value, bool) {
	if len(t.ValuesByMode) == 0 {
		return token.Value{}, false
	}
	return t.ValuesByMode[0].Value, true
}

func lookupIn(tokens []token.Token) resolver.Lookup {
	return func(id string) (*token.Token, bool) {
		for i := range tokens {
			if tokens[i].ID == id {
				return &tokens[i], true
			}
		}
		return nil, false
	}
}

func TestDependencyGraph_NoCycle(t *testing.T) {
	tokens := []token.Token{
		tok("a", token.StringValue("1")),
		tok("b", token.AliasValue("a")),
		tok("c", token.AliasValue("b")),
	}

	graph := resolver.BuildDependencyGraph(tokens)

	if graph.HasCycle() {
		t.Error("expected no cycle")
	}
	if deps := graph.Dependencies("c"); len(deps) != 1 || deps[0] != "b" {
		t.Errorf("expected c to depend on b, got %v", deps)
	}
	if dependents := graph.Dependents("a"); len(dependents) != 1 || dependents[0] != "b" {
		t.Errorf("expected b to depend on a, got %v", dependents)
	}

	order, err := graph.TopologicalSort()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if order[i] != id {
			t.Fatalf("expected order %v, got %v", want, order)
		}
	}
}

func TestDependencyGraph_Cycle(t *testing.T) {
	tokens := []token.Token{
		tok("a", token.AliasValue("c")),
		tok("b", token.AliasValue("a")),
		tok("c", token.AliasValue("b")),
	}

	graph := resolver.BuildDependencyGraph(tokens)

	if !graph.HasCycle() {
		t.Error("expected cycle")
	}

	cycle := graph.FindCycle()
	if cycle == nil {
		t.Fatal("expected to find cycle path")
	}
	if cycle[0] != cycle[len(cycle)-1] {
		t.Errorf("expected cycle to close on itself, got %v", cycle)
	}

	if _, err := graph.TopologicalSort(); !errors.Is(err, schema.ErrCircularReference) {
		t.Errorf("expected ErrCircularReference, got %v", err)
	}
}

func TestDependencyGraph_PlatformOverrideEdges(t *testing.T) {
	tokens := []token.Token{
		tok("base", token.StringValue("#fff")),
		{
			ID: "surface",
			ValuesByMode: []token.ModeValue{{
				ModeIDs: []string{},
				Value:   token.StringValue("#eee"),
				PlatformOverrides: []token.PlatformOverride{
					{PlatformID: "ios", Value: token.AliasValue("base")},
				},
			}},
		},
		tok("ghost", token.AliasValue("missing")),
	}

	graph := resolver.BuildDependencyGraph(tokens)

	if deps := graph.Dependencies("surface"); len(deps) != 1 || deps[0] != "base" {
		t.Errorf("expected platform override alias edge, got %v", deps)
	}
	unresolved := graph.Unresolved()
	if len(unresolved) != 1 || unresolved[0] != (resolver.Reference{From: "ghost", To: "missing"}) {
		t.Errorf("expected one unresolved reference, got %v", unresolved)
	}
}

func TestResolveAliases(t *testing.T) {
	tokens := []token.Token{
		tok("base", token.StringValue("#FF6B35")),
		tok("primary", token.AliasValue("base")),
		tok("action", token.AliasValue("primary")),
		tok("broken", token.AliasValue("nowhere")),
	}

	resolved, err := resolver.ResolveAliases(tokens, global)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, id := range []string{"base", "primary", "action"} {
		if got := resolved[id]; got != token.StringValue("#FF6B35") {
			t.Errorf("expected %s to resolve to #FF6B35, got %v", id, got)
		}
	}
	if _, ok := resolved["broken"]; ok {
		t.Error("expected broken alias to stay unresolved")
	}
}

func TestFollow(t *testing.T) {
	tokens := []token.Token{
		tok("base", token.DimensionValue(4, "px")),
		tok("space", token.AliasValue("base")),
		tok("loop-a", token.AliasValue("loop-b")),
		tok("loop-b", token.AliasValue("loop-a")),
	}
	lookup := lookupIn(tokens)

	v, chain, err := resolver.Follow(token.AliasValue("space"), lookup, global)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != token.DimensionValue(4, "px") {
		t.Errorf("expected 4px, got %v", v)
	}
	if len(chain) != 2 || chain[0] != "space" || chain[1] != "base" {
		t.Errorf("unexpected chain %v", chain)
	}

	if _, _, err := resolver.Follow(token.AliasValue("loop-a"), lookup, global); !errors.Is(err, schema.ErrCircularReference) {
		t.Errorf("expected ErrCircularReference, got %v", err)
	}
	if _, _, err := resolver.Follow(token.AliasValue("absent"), lookup, global); !errors.Is(err, schema.ErrUnresolvedReference) {
		t.Errorf("expected ErrUnresolvedReference, got %v", err)
	}

	literal, chain, err := resolver.Follow(token.NumberValue(1), lookup, global)
	if err != nil || literal != token.NumberValue(1) || len(chain) != 0 {
		t.Errorf("expected literal passthrough, got %v %v %v", literal, chain, err)
	}
}
