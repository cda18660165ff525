/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Dimension is a variation axis owning an ordered set of modes.
type Dimension struct {
	ID          string `json:"id" yaml:"id"`
	DisplayName string `json:"displayName" yaml:"displayName"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Modes is ordered and non-empty.
	Modes []Mode `json:"modes" yaml:"modes"`

	// DefaultMode must name one of Modes.
	DefaultMode string `json:"defaultMode" yaml:"defaultMode"`

	// Required means every token must supply a value for each mode.
	Required bool `json:"required,omitempty" yaml:"required,omitempty"`

	// ResolvedValueTypeIDs restricts the dimension to these value types when set.
	ResolvedValueTypeIDs []string `json:"resolvedValueTypeIds,omitempty" yaml:"resolvedValueTypeIds,omitempty"`
}

// Mode is one concrete value of a Dimension.
type Mode struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description,omitempty" yaml:"description,omitempty"`
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// HasMode reports whether the dimension owns the mode.
func (d *Dimension) HasMode(modeID string) bool {
	for _, m := range d.Modes {
		if m.ID == modeID {
			return true
		}
	}
	return false
}

// ModeIDs returns the dimension's mode ids in declaration order.
func (d *Dimension) ModeIDs() []string {
	ids := make([]string, len(d.Modes))
	for i, m := range d.Modes {
		ids[i] = m.ID
	}
	return ids
}

// DefaultModeIDs returns the default mode of every dimension.
func DefaultModeIDs(dims []Dimension) []string {
	ids := make([]string, 0, len(dims))
	for _, d := range dims {
		if d.DefaultMode != "" {
			ids = append(ids, d.DefaultMode)
		}
	}
	return ids
}

// DimensionOfMode returns the dimension owning modeID.
func DimensionOfMode(dims []Dimension, modeID string) (*Dimension, bool) {
	for i := range dims {
		if dims[i].HasMode(modeID) {
			return &dims[i], true
		}
	}
	return nil, false
}
