/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package css_test

import (
	"testing"

	"bennypowers.dev/strata/convert/formatter"
	"bennypowers.dev/strata/convert/formatter/css"
)

func TestFormat(t *testing.T) {
	entries := []formatter.Entry{
		{Name: "color-brand", Value: "#111111", Description: "Brand */ color"},
		{Name: "--space-small", Value: "8px", Deprecated: true},
	}

	tests := []struct {
		name     string
		selector string
		expected string
	}{
		{
			name: "root",
			expected: `:root {
  /* Brand *\/ color */
  --color-brand: #111111;
  /* deprecated */
  --space-small: 8px;
}
`,
		},
		{
			name:     "host",
			selector: ":host",
			expected: `:host {
  /* Brand *\/ color */
  --color-brand: #111111;
  /* deprecated */
  --space-small: 8px;
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := css.New(tt.selector).Format(entries, formatter.Options{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(out) != tt.expected {
				t.Errorf("output mismatch\nexpected:\n%s\ngot:\n%s", tt.expected, out)
			}
		})
	}
}

func TestFormat_Empty(t *testing.T) {
	out, err := css.New("").Format(nil, formatter.Options{Header: "Generated"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "/*\n * Generated\n */\n\n:root {\n}\n"
	if string(out) != expected {
		t.Errorf("expected %q, got %q", expected, out)
	}
}
