/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver provides token alias resolution.
package resolver

import (
	"fmt"
	"maps"
	"slices"

	"bennypowers.dev/strata/schema"
	"bennypowers.dev/strata/token"
)

// Reference is an alias edge from one token to another.
type Reference struct {
	From string
	To   string
}

// DependencyGraph represents a directed graph of token aliases.
type DependencyGraph struct {
	dependencies map[string][]string
	dependents   map[string][]string
	nodes        map[string]bool
}

// BuildDependencyGraph builds a dependency graph from a list of tokens.
// Every value and platform override value of every mode entry contributes edges.
func BuildDependencyGraph(tokens []token.Token) *DependencyGraph {
	graph := &DependencyGraph{
		dependencies: make(map[string][]string),
		dependents:   make(map[string][]string),
		nodes:        make(map[string]bool),
	}

	for _, tok := range tokens {
		graph.nodes[tok.ID] = true
	}

	for i := range tokens {
		tok := &tokens[i]
		deps := extractDependencies(tok)
		if len(deps) > 0 {
			graph.dependencies[tok.ID] = deps
			for _, dep := range deps {
				graph.dependents[dep] = append(graph.dependents[dep], tok.ID)
			}
		}
	}

	return graph
}

// extractDependencies returns the sorted, distinct ids a token aliases.
func extractDependencies(tok *token.Token) []string {
	seen := make(map[string]bool)
	for _, mv := range tok.ValuesByMode {
		if mv.Value.IsAlias() {
			seen[mv.Value.AliasID] = true
		}
		for _, po := range mv.PlatformOverrides {
			if po.Value.IsAlias() {
				seen[po.Value.AliasID] = true
			}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Dependencies returns the list of tokens that the given token depends on.
func (g *DependencyGraph) Dependencies(tokenID string) []string {
	if deps, ok := g.dependencies[tokenID]; ok {
		return deps
	}
	return []string{}
}

// Dependents returns the list of tokens that depend on the given token.
func (g *DependencyGraph) Dependents(tokenID string) []string {
	if deps, ok := g.dependents[tokenID]; ok {
		return deps
	}
	return []string{}
}

// Unresolved returns every alias whose target is not a token in the graph.
func (g *DependencyGraph) Unresolved() []Reference {
	var refs []Reference
	for _, node := range g.sortedNodes() {
		for _, dep := range g.dependencies[node] {
			if !g.nodes[dep] {
				refs = append(refs, Reference{From: node, To: dep})
			}
		}
	}
	return refs
}

// HasCycle returns true if the graph contains a circular dependency.
func (g *DependencyGraph) HasCycle() bool {
	return g.FindCycle() != nil
}

// FindCycle returns the cycle path if one exists, or nil if no cycle.
// Nodes are visited in sorted order so the reported cycle is stable.
func (g *DependencyGraph) FindCycle() []string {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)
	path := []string{}

	for _, node := range g.sortedNodes() {
		if cycle := g.findCycleDFS(node, visited, recStack, path); cycle != nil {
			return cycle
		}
	}
	return nil
}

func (g *DependencyGraph) findCycleDFS(node string, visited, recStack map[string]bool, path []string) []string {
	if recStack[node] {
		cycleStart := slices.Index(path, node)
		if cycleStart == -1 {
			panic(fmt.Sprintf("cycle detection invariant violated: node %q in recStack but not in path %v", node, path))
		}
		return append(slices.Clone(path[cycleStart:]), node)
	}
	if visited[node] {
		return nil
	}

	visited[node] = true
	recStack[node] = true
	path = append(path, node)

	for _, dep := range g.dependencies[node] {
		if cycle := g.findCycleDFS(dep, visited, recStack, path); cycle != nil {
			return cycle
		}
	}

	recStack[node] = false
	return nil
}

// TopologicalSort returns tokens in dependency order (dependencies first).
// Returns error if graph contains a cycle.
func (g *DependencyGraph) TopologicalSort() ([]string, error) {
	if cycle := g.FindCycle(); cycle != nil {
		return nil, fmt.Errorf("%w: %v", schema.ErrCircularReference, cycle)
	}

	visited := make(map[string]bool)
	result := []string{}

	for _, node := range g.sortedNodes() {
		if !visited[node] {
			g.topologicalSortDFS(node, visited, &result)
		}
	}

	return result, nil
}

func (g *DependencyGraph) topologicalSortDFS(node string, visited map[string]bool, stack *[]string) {
	visited[node] = true

	for _, dep := range g.dependencies[node] {
		if !visited[dep] && g.nodes[dep] {
			g.topologicalSortDFS(dep, visited, stack)
		}
	}

	*stack = append(*stack, node)
}

func (g *DependencyGraph) sortedNodes() []string {
	return slices.Sorted(maps.Keys(g.nodes))
}
