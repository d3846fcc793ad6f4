package templates

import (
	"sort"
	"strings"
)

// Prop describes one expected prop of a component type.
type Prop struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Template is the static descriptor of a component type: its display name,
// expected props, a types block for the generated code, and optional default
// style classes. Templates are defined at process start and never mutated.
type Template struct {
	Name           string
	Props          []Prop
	Types          string
	DefaultClasses string
}

var registry = map[string]*Template{
	"button": {
		Name: "Button",
		Props: []Prop{
			{Name: "label", Type: "string", Description: "Text to display on the button"},
			{Name: "onClick", Type: "function", Description: "Function to call on button click"},
		},
		Types: `type ButtonProps = {
  label: string;
  onClick: () => void;
  className?: string;
};`,
		DefaultClasses: "w-40 h-12 text-base font-medium rounded-md",
	},
	"input": {
		Name: "Input",
		Props: []Prop{
			{Name: "placeholder", Type: "string", Description: "Placeholder text for the input"},
			{Name: "type", Type: "string", Description: "Type of input (text, password, etc.)"},
			{Name: "value", Type: "string", Description: "Value of the input field"},
			{Name: "onChange", Type: "function", Description: "Function to call when input value changes"},
		},
		Types: `type InputProps = {
  placeholder?: string;
  type?: string;
  value: string;
  onChange: (e: React.ChangeEvent<HTMLInputElement>) => void;
};`,
	},
	"card": {
		Name: "Card",
		Props: []Prop{
			{Name: "title", Type: "string", Description: "Title text to display at the top of the card"},
			{Name: "content", Type: "string", Description: "Content text to display inside the card"},
		},
		Types: `type CardProps = {
  title: string;
  content: string;
};`,
	},
	"modal": {
		Name: "Modal",
		Props: []Prop{
			{Name: "isOpen", Type: "boolean", Description: "Controls whether the modal is visible"},
			{Name: "onClose", Type: "function", Description: "Function to call when modal should close"},
			{Name: "children", Type: "ReactNode", Description: "Content to display inside the modal"},
		},
		Types: `type ModalProps = {
  isOpen: boolean;
  onClose: () => void;
  children: React.ReactNode;
};`,
	},
	"form": {
		Name: "Form",
		Props: []Prop{
			{Name: "onSubmit", Type: "function", Description: "Function to call when form is submitted"},
			{Name: "children", Type: "ReactNode", Description: "Form fields and components to render inside the form"},
			{Name: "validationSchema", Type: "object", Description: "Schema to validate form inputs"},
			{Name: "initialValues", Type: "object", Description: "Initial values for the form fields"},
		},
		Types: `type FormProps = {
  onSubmit: (e: React.FormEvent<HTMLFormElement>) => void;
  children: React.ReactNode;
  validationSchema?: object;
  initialValues?: object;
};`,
		DefaultClasses: "p-6 space-y-4 border border-gray-300 rounded-lg shadow-md",
	},
}

// Lookup returns the template registered for the given component type.
// Matching is case-insensitive. A missing key is an expected outcome and
// signals an unsupported type.
func Lookup(componentType string) (*Template, bool) {
	t, ok := registry[strings.ToLower(strings.TrimSpace(componentType))]
	return t, ok
}

// SupportedTypes returns the sorted list of registered component-type keys.
func SupportedTypes() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RelevantProps filters the template's props down to those whose name or
// description appears (case-insensitively) as a substring of the user's
// description. Best-effort relevance heuristic, not authoritative; order of
// the template's prop list is preserved.
func RelevantProps(description string, t *Template) []Prop {
	if t == nil {
		return nil
	}
	lowered := strings.ToLower(description)
	var relevant []Prop
	for _, p := range t.Props {
		if strings.Contains(lowered, strings.ToLower(p.Name)) ||
			strings.Contains(lowered, strings.ToLower(p.Description)) {
			relevant = append(relevant, p)
		}
	}
	return relevant
}
