/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package query

import (
	"fmt"
	"slices"

	"bennypowers.dev/strata/resolver"
	"bennypowers.dev/strata/schema"
	"bennypowers.dev/strata/token"
)

// Selection maps dimension id to the selected mode id.
// Dimensions it leaves out use their default mode.
type Selection map[string]string

// Resolved is a token's value for a mode selection.
type Resolved struct {
	// Value is the literal value after following aliases.
	Value token.Value

	// ModeIDs are the modes of the entry chosen on the token itself.
	ModeIDs []string

	// Chain lists the tokens visited while following aliases.
	Chain []string
}

// ResolveValue returns a token's literal value for a mode selection.
//
// Each token in an alias chain chooses its entry with its collection's
// mode resolution strategy, or most-specific-match when it has none.
func ResolveValue(sys *token.System, tokenID string, sel Selection) (Resolved, error) {
	active, err := activeModes(sys, sel)
	if err != nil {
		return Resolved{}, err
	}

	tok, ok := sys.Token(tokenID)
	if !ok {
		return Resolved{}, fmt.Errorf("%w: %q", schema.ErrUnresolvedReference, tokenID)
	}
	entry, ok := pickEntry(sys, tok, active)
	if !ok {
		return Resolved{}, fmt.Errorf("%w: token %q has no values", schema.ErrUnresolvedReference, tokenID)
	}

	pick := func(t *token.Token) (token.Value, bool) {
		mv, ok := pickEntry(sys, t, active)
		return mv.Value, ok
	}
	value, chain, err := resolver.Follow(entry.Value, sys.Token, pick)
	if err != nil {
		return Resolved{}, err
	}
	return Resolved{Value: value, ModeIDs: entry.ModeIDs, Chain: chain}, nil
}

// activeModes completes a selection with default modes, in dimension order.
func activeModes(sys *token.System, sel Selection) ([]string, error) {
	for dimID, modeID := range sel {
		d, ok := sys.Dimension(dimID)
		if !ok {
			return nil, fmt.Errorf("%w: unknown dimension %q", schema.ErrInvalidSelection, dimID)
		}
		if !d.HasMode(modeID) {
			return nil, fmt.Errorf("%w: dimension %q has no mode %q", schema.ErrInvalidSelection, dimID, modeID)
		}
	}
	active := make([]string, 0, len(sys.Dimensions))
	for _, d := range sys.OrderedDimensions() {
		if modeID, ok := sel[d.ID]; ok {
			active = append(active, modeID)
		} else if d.DefaultMode != "" {
			active = append(active, d.DefaultMode)
		}
	}
	return active, nil
}

// pickEntry chooses the entry of a token that applies to the active modes.
func pickEntry(sys *token.System, t *token.Token, active []string) (token.ModeValue, bool) {
	if len(t.ValuesByMode) == 0 {
		return token.ModeValue{}, false
	}
	if t.HasGlobalValue() {
		return t.ValuesByMode[0], true
	}

	strategy := token.ModeResolutionStrategy{FallbackStrategy: token.FallbackMostSpecificMatch}
	if c, ok := sys.Collection(t.TokenCollectionID); ok && c.ModeResolutionStrategy != nil {
		strategy = *c.ModeResolutionStrategy
	}

	if mv, ok := t.ValueFor(active); ok {
		return mv, true
	}

	// Candidates name only active modes, so they apply to the selection.
	var candidates []token.ModeValue
	for _, mv := range t.ValuesByMode {
		if subset(mv.ModeIDs, active) {
			candidates = append(candidates, mv)
		}
	}

	switch strategy.FallbackStrategy {
	case token.FallbackDimensionPriority:
		if mv, ok := byPriority(sys, candidates, active, strategy.PriorityByType); ok {
			return mv, true
		}
	case token.FallbackDefaultValue:
		// Only an exact match counts; otherwise use the default combination.
	default:
		if mv, ok := mostSpecific(sys, candidates, active, strategy.PriorityByType); ok {
			return mv, true
		}
	}
	return defaultEntry(sys, t)
}

func subset(modeIDs, active []string) bool {
	for _, id := range modeIDs {
		if !slices.Contains(active, id) {
			return false
		}
	}
	return true
}

// mostSpecific prefers the candidate naming the most modes; ties go to the
// candidate covering the higher-priority dimension.
func mostSpecific(sys *token.System, candidates []token.ModeValue, active, priority []string) (token.ModeValue, bool) {
	if len(candidates) == 0 {
		return token.ModeValue{}, false
	}
	best := candidates[0]
	for _, mv := range candidates[1:] {
		switch {
		case len(mv.ModeIDs) > len(best.ModeIDs):
			best = mv
		case len(mv.ModeIDs) == len(best.ModeIDs) && comparePriority(sys, mv, best, active, priority) > 0:
			best = mv
		}
	}
	return best, true
}

// byPriority prefers the candidate covering the highest-priority dimensions,
// then the more specific one.
func byPriority(sys *token.System, candidates []token.ModeValue, active, priority []string) (token.ModeValue, bool) {
	if len(candidates) == 0 {
		return token.ModeValue{}, false
	}
	best := candidates[0]
	for _, mv := range candidates[1:] {
		c := comparePriority(sys, mv, best, active, priority)
		if c > 0 || (c == 0 && len(mv.ModeIDs) > len(best.ModeIDs)) {
			best = mv
		}
	}
	return best, true
}

// comparePriority compares two entries dimension by dimension in priority
// order; an entry that names the active mode of a dimension beats one that
// does not.
func comparePriority(sys *token.System, a, b token.ModeValue, active, priority []string) int {
	for _, dimID := range priorityOrder(sys, priority) {
		d, ok := sys.Dimension(dimID)
		if !ok {
			continue
		}
		mode := activeModeOf(d, active)
		inA := slices.Contains(a.ModeIDs, mode)
		inB := slices.Contains(b.ModeIDs, mode)
		switch {
		case inA && !inB:
			return 1
		case inB && !inA:
			return -1
		}
	}
	return 0
}

// priorityOrder lists the prioritized dimensions first, then the rest in
// system order.
func priorityOrder(sys *token.System, priority []string) []string {
	order := slices.Clone(priority)
	for _, d := range sys.OrderedDimensions() {
		if !slices.Contains(order, d.ID) {
			order = append(order, d.ID)
		}
	}
	return order
}

func activeModeOf(d *token.Dimension, active []string) string {
	for _, id := range active {
		if d.HasMode(id) {
			return id
		}
	}
	return ""
}

// defaultEntry returns the entry for the default mode combination, the most
// specific entry made only of default modes, or the first entry.
func defaultEntry(sys *token.System, t *token.Token) (token.ModeValue, bool) {
	defaults := token.DefaultModeIDs(sys.Dimensions)
	if mv, ok := t.ValueFor(defaults); ok {
		return mv, true
	}
	var candidates []token.ModeValue
	for _, mv := range t.ValuesByMode {
		if subset(mv.ModeIDs, defaults) {
			candidates = append(candidates, mv)
		}
	}
	if mv, ok := mostSpecific(sys, candidates, defaults, nil); ok {
		return mv, true
	}
	return t.ValuesByMode[0], true
}
