/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "slices"

// FallbackStrategy decides which value a consumer picks when no entry matches a mode selection exactly.
type FallbackStrategy string

const (
	FallbackMostSpecificMatch FallbackStrategy = "MOST_SPECIFIC_MATCH"
	FallbackDimensionPriority FallbackStrategy = "DIMENSION_PRIORITY"
	FallbackDefaultValue      FallbackStrategy = "DEFAULT_VALUE"
)

// FallbackStrategies lists every valid fallback strategy.
var FallbackStrategies = []FallbackStrategy{
	FallbackMostSpecificMatch,
	FallbackDimensionPriority,
	FallbackDefaultValue,
}

// Collection is a named, typed bucket of tokens.
type Collection struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// ResolvedValueTypeIDs is the non-empty set of value types the collection accepts.
	ResolvedValueTypeIDs []string `json:"resolvedValueTypeIds" yaml:"resolvedValueTypeIds"`

	Private bool `json:"private,omitempty" yaml:"private,omitempty"`

	// ModeResolutionStrategy is used by consumers, never by the merge engine.
	ModeResolutionStrategy *ModeResolutionStrategy `json:"modeResolutionStrategy,omitempty" yaml:"modeResolutionStrategy,omitempty"`
}

// ModeResolutionStrategy orders dimensions and names a fallback policy.
type ModeResolutionStrategy struct {
	PriorityByType   []string         `json:"priorityByType" yaml:"priorityByType"`
	FallbackStrategy FallbackStrategy `json:"fallbackStrategy" yaml:"fallbackStrategy"`
}

// Accepts reports whether the collection accepts the value type.
func (c *Collection) Accepts(valueTypeID string) bool {
	return slices.Contains(c.ResolvedValueTypeIDs, valueTypeID)
}
