/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package search

import (
	"bytes"
	"encoding/json"
	"testing"

	"bennypowers.dev/strata/query"
	"bennypowers.dev/strata/testutil"
)

func TestWrite(t *testing.T) {
	sys := testutil.NewSystem()
	matches, err := query.Search(sys.Tokens, "color", query.SearchOptions{NameOnly: true})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("names", func(t *testing.T) {
		var buf bytes.Buffer
		if err := write(&buf, matches, "names"); err != nil {
			t.Fatal(err)
		}
		want := "color.bg\ncolor.brand\ncolor.text\n"
		if buf.String() != want {
			t.Errorf("names output = %q, want %q", buf.String(), want)
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := write(&buf, matches, "json"); err != nil {
			t.Fatal(err)
		}
		var got []match
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatal(err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 matches, got %d", len(got))
		}
		if got[1].ID != "color.brand" || got[1].Name != "Brand" || got[1].Type != "color" {
			t.Errorf("unexpected match %+v", got[1])
		}
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		if err := write(&buf, matches, "table"); err != nil {
			t.Fatal(err)
		}
		if !bytes.Contains(buf.Bytes(), []byte("Background")) {
			t.Errorf("table missing display name:\n%s", buf.String())
		}
	})

	t.Run("empty table", func(t *testing.T) {
		var buf bytes.Buffer
		if err := write(&buf, nil, "table"); err != nil {
			t.Fatal(err)
		}
		if buf.String() != "(0 tokens)\n" {
			t.Errorf("empty output = %q", buf.String())
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if err := write(&bytes.Buffer{}, matches, "csv"); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}
