package services

import (
	"strings"
	"testing"

	"github.com/uiforge/uiforge-backend/internal/templates"
)

func TestGenerateComponentName(t *testing.T) {
	cases := []struct {
		description string
		want        string
	}{
		{"a primary button", "APrimaryButtonComponent"},
		{"red SUBMIT button with icon", "RedSubmitButtonComponent"},
		{"modal", "ModalComponent"},
		{"  spaced   out   words   here  ", "SpacedOutWordsComponent"},
	}
	for _, tc := range cases {
		if got := GenerateComponentName(tc.description); got != tc.want {
			t.Fatalf("GenerateComponentName(%q): got=%q want=%q", tc.description, got, tc.want)
		}
	}
}

func TestGenerateComponentName_IsDeterministic(t *testing.T) {
	a := GenerateComponentName("login form with validation")
	b := GenerateComponentName("login form with validation")
	if a != b {
		t.Fatalf("expected identical names: %q vs %q", a, b)
	}
}

func TestBuildPrompts_IncludesDescriptionAndProps(t *testing.T) {
	tmpl, ok := templates.Lookup("button")
	if !ok {
		t.Fatalf("expected button template")
	}
	description := "a button with a label"
	prompts := BuildPrompts(tmpl.Name, description, tmpl)

	for name, p := range map[string]string{
		"research":  prompts.Research,
		"structure": prompts.Structure,
	} {
		if !strings.Contains(p, description) {
			t.Fatalf("%s prompt missing description", name)
		}
		if !strings.Contains(p, "label") {
			t.Fatalf("%s prompt missing relevant prop", name)
		}
	}
	if !strings.Contains(prompts.Style, tmpl.DefaultClasses) {
		t.Fatalf("style prompt missing default classes")
	}
}

func TestBuildPrompts_EveryPromptRequestsJSONShape(t *testing.T) {
	tmpl, _ := templates.Lookup("card")
	prompts := BuildPrompts(tmpl.Name, "a pricing card", tmpl)
	for name, p := range map[string]string{
		"research":  prompts.Research,
		"structure": prompts.Structure,
		"style":     prompts.Style,
	} {
		if !strings.Contains(p, `"code"`) || !strings.Contains(p, `"notes"`) {
			t.Fatalf("%s prompt does not request the code/notes JSON shape", name)
		}
	}
}
