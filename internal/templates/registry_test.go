package templates

import (
	"sort"
	"testing"
)

func TestLookup_IsCaseInsensitive(t *testing.T) {
	for _, in := range []string{"button", "Button", "  BUTTON  "} {
		tmpl, ok := Lookup(in)
		if !ok {
			t.Fatalf("expected ok=true for %q", in)
		}
		if tmpl.Name != "Button" {
			t.Fatalf("unexpected template name: got=%q want=%q", tmpl.Name, "Button")
		}
	}
}

func TestLookup_RejectsUnknownType(t *testing.T) {
	if _, ok := Lookup("carousel"); ok {
		t.Fatalf("expected ok=false for unknown type")
	}
	if _, ok := Lookup(""); ok {
		t.Fatalf("expected ok=false for empty type")
	}
}

func TestSupportedTypes_IsSortedAndComplete(t *testing.T) {
	got := SupportedTypes()
	want := []string{"button", "card", "form", "input", "modal"}
	if len(got) != len(want) {
		t.Fatalf("unexpected type count: got=%d want=%d", len(got), len(want))
	}
	if !sort.StringsAreSorted(got) {
		t.Fatalf("expected sorted types, got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected type at %d: got=%q want=%q", i, got[i], want[i])
		}
	}
}

func TestRelevantProps_MatchesNameAndDescription(t *testing.T) {
	tmpl, ok := Lookup("button")
	if !ok {
		t.Fatalf("expected button template")
	}

	props := RelevantProps("a button with a LABEL that fires onclick", tmpl)
	names := make(map[string]bool, len(props))
	for _, p := range props {
		names[p.Name] = true
	}
	if !names["label"] {
		t.Fatalf("expected label prop to match, got %v", props)
	}
	if !names["onClick"] {
		t.Fatalf("expected onClick prop to match, got %v", props)
	}
}

func TestRelevantProps_EmptyForUnrelatedDescription(t *testing.T) {
	tmpl, ok := Lookup("button")
	if !ok {
		t.Fatalf("expected button template")
	}
	if props := RelevantProps("zzzz qqqq", tmpl); len(props) != 0 {
		t.Fatalf("expected no props, got %v", props)
	}
}

func TestRelevantProps_NilTemplate(t *testing.T) {
	if props := RelevantProps("anything", nil); props != nil {
		t.Fatalf("expected nil props for nil template, got %v", props)
	}
}
