// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package settings

import (
	"testing"

	"github.com/blockbatch/settings/internal/model"
)

func TestSuggestTimezones(t *testing.T) {
	cases := []struct {
		input string
		first string
	}{
		{"berlin", "Europe/Berlin"},
		{"Berln", "Europe/Berlin"},
		{"tokio", "Asia/Tokyo"},
		{"new_york", "America/New_York"},
	}
	for _, c := range cases {
		got := SuggestTimezones(c.input, 3)
		if len(got) == 0 || got[0] != c.first {
			t.Fatalf("SuggestTimezones(%q) = %v, want first %q", c.input, got, c.first)
		}
		if len(got) > 3 {
			t.Fatalf("SuggestTimezones(%q) returned %d suggestions", c.input, len(got))
		}
	}
}

func TestSuggestTimezones_NoSuggestion(t *testing.T) {
	for _, in := range []string{"", "   ", "UTC", "europe/berlin", "zzzzzzzz"} {
		if got := SuggestTimezones(in, 3); len(got) != 0 {
			t.Fatalf("SuggestTimezones(%q) = %v, want none", in, got)
		}
	}
	if got := SuggestTimezones("berlin", 0); got != nil {
		t.Fatalf("n=0 should yield nil, got %v", got)
	}
}

func TestPageSuggestTimezones(t *testing.T) {
	p := New()
	if err := p.SetProfileField(model.FieldTimezone, "paris"); err != nil {
		t.Fatalf("SetProfileField: %v", err)
	}
	if got := p.SuggestTimezones(1); len(got) != 1 || got[0] != "Europe/Paris" {
		t.Fatalf("got %v", got)
	}
}
